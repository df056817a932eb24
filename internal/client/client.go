// Package client talks to the OpenSearch Service management API (dialect
// 2021-01-01) over REST-JSON. The shim forwards every translated call through
// the Client interface; tests substitute their own implementation.
package client

import (
	"context"

	osapi "github.com/esbridge/esbridge/api/opensearch"
)

type Client interface {
	// Domain
	CreateDomain(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error)
	DeleteDomain(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error)
	DescribeDomain(ctx context.Context, request *osapi.DescribeDomainRequest) (*osapi.DescribeDomainResponse, error)
	DescribeDomains(ctx context.Context, request *osapi.DescribeDomainsRequest) (*osapi.DescribeDomainsResponse, error)
	DescribeDomainConfig(ctx context.Context, request *osapi.DescribeDomainConfigRequest) (*osapi.DescribeDomainConfigResponse, error)
	ListDomainNames(ctx context.Context, request *osapi.ListDomainNamesRequest) (*osapi.ListDomainNamesResponse, error)

	// Version
	ListVersions(ctx context.Context, request *osapi.ListVersionsRequest) (*osapi.ListVersionsResponse, error)
	GetCompatibleVersions(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error)

	// Tag
	AddTags(ctx context.Context, request *osapi.AddTagsRequest) (*osapi.AddTagsResponse, error)
	ListTags(ctx context.Context, request *osapi.ListTagsRequest) (*osapi.ListTagsResponse, error)
	RemoveTags(ctx context.Context, request *osapi.RemoveTagsRequest) (*osapi.RemoveTagsResponse, error)

	CheckHealth(ctx context.Context) error
}
