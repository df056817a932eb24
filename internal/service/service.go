// Package service implements the legacy Elasticsearch Service dialect on top
// of an OpenSearch Service management backend: requests are translated to the
// 2021-01-01 vocabulary, forwarded, and the responses translated back.
package service

import (
	"context"

	esapi "github.com/esbridge/esbridge/api/es"
)

type Service interface {
	// Domain
	CreateElasticsearchDomain(ctx context.Context, request *esapi.CreateElasticsearchDomainRequest) (*esapi.CreateElasticsearchDomainResponse, error)
	DeleteElasticsearchDomain(ctx context.Context, request *esapi.DeleteElasticsearchDomainRequest) (*esapi.DeleteElasticsearchDomainResponse, error)
	DescribeElasticsearchDomain(ctx context.Context, request *esapi.DescribeElasticsearchDomainRequest) (*esapi.DescribeElasticsearchDomainResponse, error)
	DescribeElasticsearchDomains(ctx context.Context, request *esapi.DescribeElasticsearchDomainsRequest) (*esapi.DescribeElasticsearchDomainsResponse, error)
	DescribeElasticsearchDomainConfig(ctx context.Context, request *esapi.DescribeElasticsearchDomainConfigRequest) (*esapi.DescribeElasticsearchDomainConfigResponse, error)
	ListDomainNames(ctx context.Context, request *esapi.ListDomainNamesRequest) (*esapi.ListDomainNamesResponse, error)

	// Version
	ListElasticsearchVersions(ctx context.Context, request *esapi.ListElasticsearchVersionsRequest) (*esapi.ListElasticsearchVersionsResponse, error)
	GetCompatibleElasticsearchVersions(ctx context.Context, request *esapi.GetCompatibleElasticsearchVersionsRequest) (*esapi.GetCompatibleElasticsearchVersionsResponse, error)

	// Tag
	AddTags(ctx context.Context, request *esapi.AddTagsRequest) (*esapi.AddTagsResponse, error)
	ListTags(ctx context.Context, request *esapi.ListTagsRequest) (*esapi.ListTagsResponse, error)
	RemoveTags(ctx context.Context, request *esapi.RemoveTagsRequest) (*esapi.RemoveTagsResponse, error)
}
