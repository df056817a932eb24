package transport

import (
	"net/http"

	esapi "github.com/esbridge/esbridge/api/es"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// (POST /2015-01-01/es/domain)
func (h *TransportHandler) CreateElasticsearchDomain(w http.ResponseWriter, r *http.Request) {
	var request esapi.CreateElasticsearchDomainRequest
	if err := decodeBody(r, &request); err != nil {
		SetParseFailureResponse(w, err)
		return
	}

	body, err := h.serviceHandler.CreateElasticsearchDomain(r.Context(), &request)
	SetResponse(w, body, err)
}

// (DELETE /2015-01-01/es/domain/{name})
func (h *TransportHandler) DeleteElasticsearchDomain(w http.ResponseWriter, r *http.Request) {
	request := esapi.DeleteElasticsearchDomainRequest{
		DomainName: lo.ToPtr(chi.URLParam(r, "name")),
	}

	body, err := h.serviceHandler.DeleteElasticsearchDomain(r.Context(), &request)
	SetResponse(w, body, err)
}

// (GET /2015-01-01/es/domain/{name})
func (h *TransportHandler) DescribeElasticsearchDomain(w http.ResponseWriter, r *http.Request) {
	request := esapi.DescribeElasticsearchDomainRequest{
		DomainName: lo.ToPtr(chi.URLParam(r, "name")),
	}

	body, err := h.serviceHandler.DescribeElasticsearchDomain(r.Context(), &request)
	SetResponse(w, body, err)
}

// (GET /2015-01-01/es/domain/{name}/config)
func (h *TransportHandler) DescribeElasticsearchDomainConfig(w http.ResponseWriter, r *http.Request) {
	request := esapi.DescribeElasticsearchDomainConfigRequest{
		DomainName: lo.ToPtr(chi.URLParam(r, "name")),
	}

	body, err := h.serviceHandler.DescribeElasticsearchDomainConfig(r.Context(), &request)
	SetResponse(w, body, err)
}

// (POST /2015-01-01/es/domain-info)
func (h *TransportHandler) DescribeElasticsearchDomains(w http.ResponseWriter, r *http.Request) {
	var request esapi.DescribeElasticsearchDomainsRequest
	if err := decodeBody(r, &request); err != nil {
		SetParseFailureResponse(w, err)
		return
	}

	body, err := h.serviceHandler.DescribeElasticsearchDomains(r.Context(), &request)
	SetResponse(w, body, err)
}

// (GET /2015-01-01/domain)
func (h *TransportHandler) ListDomainNames(w http.ResponseWriter, r *http.Request) {
	request := esapi.ListDomainNamesRequest{
		EngineType: queryParam(r, "engineType"),
	}

	body, err := h.serviceHandler.ListDomainNames(r.Context(), &request)
	SetResponse(w, body, err)
}
