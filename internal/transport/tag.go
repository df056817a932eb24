package transport

import (
	"net/http"

	esapi "github.com/esbridge/esbridge/api/es"
)

// (POST /2015-01-01/tags)
func (h *TransportHandler) AddTags(w http.ResponseWriter, r *http.Request) {
	var request esapi.AddTagsRequest
	if err := decodeBody(r, &request); err != nil {
		SetParseFailureResponse(w, err)
		return
	}

	body, err := h.serviceHandler.AddTags(r.Context(), &request)
	SetResponse(w, body, err)
}

// (GET /2015-01-01/tags/)
func (h *TransportHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	request := esapi.ListTagsRequest{
		ARN: queryParam(r, "arn"),
	}

	body, err := h.serviceHandler.ListTags(r.Context(), &request)
	SetResponse(w, body, err)
}

// (POST /2015-01-01/tags-removal)
func (h *TransportHandler) RemoveTags(w http.ResponseWriter, r *http.Request) {
	var request esapi.RemoveTagsRequest
	if err := decodeBody(r, &request); err != nil {
		SetParseFailureResponse(w, err)
		return
	}

	body, err := h.serviceHandler.RemoveTags(r.Context(), &request)
	SetResponse(w, body, err)
}
