package service

import (
	"context"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
)

func (h *ServiceHandler) ListElasticsearchVersions(ctx context.Context, request *esapi.ListElasticsearchVersionsRequest) (*esapi.ListElasticsearchVersionsResponse, error) {
	backendResponse, err := h.backend.ListVersions(ctx, &osapi.ListVersionsRequest{
		MaxResults: request.MaxResults,
		NextToken:  request.NextToken,
	})
	if err != nil {
		return nil, err
	}

	versions := VersionListFromOpenSearch(backendResponse.Versions)
	if versions == nil {
		versions = []string{}
	}
	return &esapi.ListElasticsearchVersionsResponse{
		ElasticsearchVersions: versions,
		NextToken:             backendResponse.NextToken,
	}, nil
}

func (h *ServiceHandler) GetCompatibleElasticsearchVersions(ctx context.Context, request *esapi.GetCompatibleElasticsearchVersionsRequest) (*esapi.GetCompatibleElasticsearchVersionsResponse, error) {
	backendResponse, err := h.backend.GetCompatibleVersions(ctx, &osapi.GetCompatibleVersionsRequest{DomainName: request.DomainName})
	if err != nil {
		return nil, err
	}

	return &esapi.GetCompatibleElasticsearchVersionsResponse{
		CompatibleElasticsearchVersions: CompatibleVersionsFromOpenSearch(backendResponse.CompatibleVersions),
	}, nil
}
