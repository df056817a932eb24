package transport

import (
	"net/http"

	esapi "github.com/esbridge/esbridge/api/es"
)

// (GET /2015-01-01/es/versions)
func (h *TransportHandler) ListElasticsearchVersions(w http.ResponseWriter, r *http.Request) {
	maxResults, err := queryParamInt32(r, "maxResults")
	if err != nil {
		SetResponse(w, nil, err)
		return
	}
	request := esapi.ListElasticsearchVersionsRequest{
		MaxResults: maxResults,
		NextToken:  queryParam(r, "nextToken"),
	}

	body, err := h.serviceHandler.ListElasticsearchVersions(r.Context(), &request)
	SetResponse(w, body, err)
}

// (GET /2015-01-01/es/compatibleVersions)
func (h *TransportHandler) GetCompatibleElasticsearchVersions(w http.ResponseWriter, r *http.Request) {
	request := esapi.GetCompatibleElasticsearchVersionsRequest{
		DomainName: queryParam(r, "domainName"),
	}

	body, err := h.serviceHandler.GetCompatibleElasticsearchVersions(r.Context(), &request)
	SetResponse(w, body, err)
}
