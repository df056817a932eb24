package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	esapi "github.com/esbridge/esbridge/api/es"
)

// ListElasticsearchVersions pages through the engine versions the backend
// supports, reported in legacy notation.
func (c *Client) ListElasticsearchVersions(ctx context.Context, maxResults *int32, nextToken *string) (*esapi.ListElasticsearchVersionsResponse, error) {
	out := &esapi.ListElasticsearchVersionsResponse{}
	query := url.Values{}
	if maxResults != nil {
		query.Set("maxResults", strconv.Itoa(int(*maxResults)))
	}
	if nextToken != nil {
		query.Set("nextToken", *nextToken)
	}
	path := fmt.Sprintf("/%s/es/versions", esapi.APIVersion)
	if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCompatibleElasticsearchVersions reports upgrade paths, for all domains
// or for a single one.
func (c *Client) GetCompatibleElasticsearchVersions(ctx context.Context, domainName *string) (*esapi.GetCompatibleElasticsearchVersionsResponse, error) {
	out := &esapi.GetCompatibleElasticsearchVersionsResponse{}
	query := url.Values{}
	if domainName != nil {
		query.Set("domainName", *domainName)
	}
	path := fmt.Sprintf("/%s/es/compatibleVersions", esapi.APIVersion)
	if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
