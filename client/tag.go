package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	esapi "github.com/esbridge/esbridge/api/es"
	"github.com/samber/lo"
)

// AddTags attaches tags to the domain identified by its ARN.
func (c *Client) AddTags(ctx context.Context, arn string, tags []esapi.Tag) error {
	path := fmt.Sprintf("/%s/tags", esapi.APIVersion)
	request := &esapi.AddTagsRequest{ARN: lo.ToPtr(arn), TagList: tags}
	return c.do(ctx, http.MethodPost, path, nil, request, nil)
}

// ListTags returns all tags attached to the domain identified by its ARN.
func (c *Client) ListTags(ctx context.Context, arn string) (*esapi.ListTagsResponse, error) {
	out := &esapi.ListTagsResponse{}
	query := url.Values{}
	query.Set("arn", arn)
	path := fmt.Sprintf("/%s/tags/", esapi.APIVersion)
	if err := c.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveTags detaches the named tag keys from the domain identified by its
// ARN.
func (c *Client) RemoveTags(ctx context.Context, arn string, tagKeys []string) error {
	path := fmt.Sprintf("/%s/tags-removal", esapi.APIVersion)
	request := &esapi.RemoveTagsRequest{ARN: lo.ToPtr(arn), TagKeys: tagKeys}
	return c.do(ctx, http.MethodPost, path, nil, request, nil)
}
