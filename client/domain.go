package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	esapi "github.com/esbridge/esbridge/api/es"
	"github.com/samber/lo"
)

// CreateElasticsearchDomain provisions a new domain.
func (c *Client) CreateElasticsearchDomain(ctx context.Context, request *esapi.CreateElasticsearchDomainRequest) (*esapi.CreateElasticsearchDomainResponse, error) {
	out := &esapi.CreateElasticsearchDomainResponse{}
	path := fmt.Sprintf("/%s/es/domain", esapi.APIVersion)
	if err := c.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteElasticsearchDomain deletes a domain and all of its data.
func (c *Client) DeleteElasticsearchDomain(ctx context.Context, domainName string) (*esapi.DeleteElasticsearchDomainResponse, error) {
	out := &esapi.DeleteElasticsearchDomainResponse{}
	path := fmt.Sprintf("/%s/es/domain/%s", esapi.APIVersion, url.PathEscape(domainName))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeElasticsearchDomain fetches the status of a single domain.
func (c *Client) DescribeElasticsearchDomain(ctx context.Context, domainName string) (*esapi.DescribeElasticsearchDomainResponse, error) {
	out := &esapi.DescribeElasticsearchDomainResponse{}
	path := fmt.Sprintf("/%s/es/domain/%s", esapi.APIVersion, url.PathEscape(domainName))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeElasticsearchDomains fetches the status of several domains at once.
func (c *Client) DescribeElasticsearchDomains(ctx context.Context, domainNames []string) (*esapi.DescribeElasticsearchDomainsResponse, error) {
	out := &esapi.DescribeElasticsearchDomainsResponse{}
	path := fmt.Sprintf("/%s/es/domain-info", esapi.APIVersion)
	request := &esapi.DescribeElasticsearchDomainsRequest{DomainNames: domainNames}
	if err := c.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeElasticsearchDomainConfig fetches the change-tracked configuration
// of a domain.
func (c *Client) DescribeElasticsearchDomainConfig(ctx context.Context, domainName string) (*esapi.DescribeElasticsearchDomainConfigResponse, error) {
	out := &esapi.DescribeElasticsearchDomainConfigResponse{}
	path := fmt.Sprintf("/%s/es/domain/%s/config", esapi.APIVersion, url.PathEscape(domainName))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDomainNames lists the domains owned by the caller, optionally filtered
// by engine type.
func (c *Client) ListDomainNames(ctx context.Context, engineType *string) (*esapi.ListDomainNamesResponse, error) {
	out := &esapi.ListDomainNamesResponse{}
	query := url.Values{}
	if engineType != nil {
		query.Set("engineType", lo.FromPtr(engineType))
	}
	path := fmt.Sprintf("/%s/domain", esapi.APIVersion)
	if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
