// Package client is the programmatic client for the legacy domain-management
// API served by esbridge. It speaks the 2015-01-01 dialect, so existing
// callers can be pointed at a bridge instead of the retired upstream service
// without changing request shapes.
package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/pkg/reqid"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const signingName = "es"

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithSigV4 signs requests, for bridges deployed behind an IAM-enforcing
// gateway.
func WithSigV4(credentials aws.CredentialsProvider, region string) ClientOption {
	return func(c *Client) {
		c.credentials = credentials
		c.region = region
		c.signer = v4.NewSigner()
	}
}

// Client issues legacy-dialect management calls against an esbridge server.
type Client struct {
	server      string
	client      *http.Client
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	region      string
}

// NewClient creates a client for the given server base URL.
func NewClient(server string, opts ...ClientOption) *Client {
	c := &Client{
		server: strings.TrimSuffix(server, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	endpoint := c.server + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(chimiddleware.RequestIDHeader, reqid.NextRequestID())

	if c.signer != nil {
		credentials, err := c.credentials.Retrieve(ctx)
		if err != nil {
			return fmt.Errorf("retrieving credentials: %w", err)
		}
		digest := sha256.Sum256(payload)
		if err := c.signer.SignHTTP(ctx, credentials, req, hex.EncodeToString(digest[:]), signingName, c.region, time.Now().UTC()); err != nil {
			return err
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return awserr.Decode(resp.StatusCode, resp.Header, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
