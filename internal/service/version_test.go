package service

import (
	"context"
	"testing"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestListElasticsearchVersions(t *testing.T) {
	require := require.New(t)

	var received *osapi.ListVersionsRequest
	backend := &TestBackend{
		ListVersionsFn: func(ctx context.Context, request *osapi.ListVersionsRequest) (*osapi.ListVersionsResponse, error) {
			received = request
			return &osapi.ListVersionsResponse{
				Versions:  []string{"OpenSearch_1.1", "OpenSearch_1.0", "Elasticsearch_7.10", "Elasticsearch_6.8"},
				NextToken: lo.ToPtr("next-page"),
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.ListElasticsearchVersions(context.Background(), &esapi.ListElasticsearchVersionsRequest{
		MaxResults: lo.ToPtr(int32(4)),
		NextToken:  lo.ToPtr("page-token"),
	})
	require.NoError(err)

	// Paging parameters pass through untouched.
	require.Equal(int32(4), lo.FromPtr(received.MaxResults))
	require.Equal("page-token", lo.FromPtr(received.NextToken))
	require.Equal("next-page", lo.FromPtr(response.NextToken))

	// Engine versions come back in backend order, prefixes stripped.
	require.Equal([]string{"OpenSearch_1.1", "OpenSearch_1.0", "7.10", "6.8"}, response.ElasticsearchVersions)
}

func TestListElasticsearchVersionsEmpty(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	response, err := handler.ListElasticsearchVersions(context.Background(), &esapi.ListElasticsearchVersionsRequest{})
	require.NoError(err)
	require.NotNil(response.ElasticsearchVersions)
	require.Empty(response.ElasticsearchVersions)
	require.Nil(response.NextToken)
}

func TestGetCompatibleElasticsearchVersions(t *testing.T) {
	require := require.New(t)

	var received *osapi.GetCompatibleVersionsRequest
	backend := &TestBackend{
		GetCompatibleVersionsFn: func(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error) {
			received = request
			return &osapi.GetCompatibleVersionsResponse{
				CompatibleVersions: []osapi.CompatibleVersionsMap{
					{
						SourceVersion:  lo.ToPtr("Elasticsearch_6.8"),
						TargetVersions: []string{"Elasticsearch_7.10", "OpenSearch_1.1"},
					},
					{
						SourceVersion:  lo.ToPtr("Elasticsearch_7.10"),
						TargetVersions: []string{"OpenSearch_1.0", "OpenSearch_1.1"},
					},
				},
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.GetCompatibleElasticsearchVersions(context.Background(), &esapi.GetCompatibleElasticsearchVersionsRequest{
		DomainName: lo.ToPtr("my-domain"),
	})
	require.NoError(err)
	require.Equal("my-domain", lo.FromPtr(received.DomainName))

	require.Len(response.CompatibleElasticsearchVersions, 2)
	require.Equal("6.8", lo.FromPtr(response.CompatibleElasticsearchVersions[0].SourceVersion))
	require.Equal([]string{"7.10", "OpenSearch_1.1"}, response.CompatibleElasticsearchVersions[0].TargetVersions)
	require.Equal("7.10", lo.FromPtr(response.CompatibleElasticsearchVersions[1].SourceVersion))
	require.Equal([]string{"OpenSearch_1.0", "OpenSearch_1.1"}, response.CompatibleElasticsearchVersions[1].TargetVersions)
}

func TestGetCompatibleElasticsearchVersionsAllDomains(t *testing.T) {
	require := require.New(t)

	var received *osapi.GetCompatibleVersionsRequest
	backend := &TestBackend{
		GetCompatibleVersionsFn: func(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error) {
			received = request
			return &osapi.GetCompatibleVersionsResponse{}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	// Without a domain name the query covers all domains.
	response, err := handler.GetCompatibleElasticsearchVersions(context.Background(), &esapi.GetCompatibleElasticsearchVersionsRequest{})
	require.NoError(err)
	require.Nil(received.DomainName)
	require.Empty(response.CompatibleElasticsearchVersions)
}
