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
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/pkg/reqid"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"
)

// signingName is the SigV4 service name shared by both dialects of the
// domain-management API.
const signingName = "es"

type ClientOption func(*Management)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(m *Management) {
		m.client = client
	}
}

// WithSigV4 enables request signing against backends that enforce IAM
// authentication.
func WithSigV4(credentials aws.CredentialsProvider, region string) ClientOption {
	return func(m *Management) {
		m.credentials = credentials
		m.region = region
		m.signer = v4.NewSigner()
	}
}

// Management is the HTTP implementation of Client.
type Management struct {
	server      string
	client      *http.Client
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	region      string
}

var _ Client = (*Management)(nil)

func NewManagement(server string, opts ...ClientOption) *Management {
	m := &Management{
		server: strings.TrimSuffix(server, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Management) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	endpoint := m.server + path
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

	requestID := chimiddleware.GetReqID(ctx)
	if requestID == "" {
		requestID = reqid.NextRequestID()
	}
	req.Header.Set(chimiddleware.RequestIDHeader, requestID)

	if m.signer != nil {
		if err := m.sign(ctx, req, payload); err != nil {
			return err
		}
	}

	resp, err := m.client.Do(req)
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

func (m *Management) sign(ctx context.Context, req *http.Request, payload []byte) error {
	credentials, err := m.credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieving credentials: %w", err)
	}
	digest := sha256.Sum256(payload)
	return m.signer.SignHTTP(ctx, credentials, req, hex.EncodeToString(digest[:]), signingName, m.region, time.Now().UTC())
}

func (m *Management) CreateDomain(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error) {
	out := &osapi.CreateDomainResponse{}
	path := fmt.Sprintf("/%s/opensearch/domain", osapi.APIVersion)
	if err := m.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) DeleteDomain(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error) {
	out := &osapi.DeleteDomainResponse{}
	path := fmt.Sprintf("/%s/opensearch/domain/%s", osapi.APIVersion, url.PathEscape(lo.FromPtr(request.DomainName)))
	if err := m.do(ctx, http.MethodDelete, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) DescribeDomain(ctx context.Context, request *osapi.DescribeDomainRequest) (*osapi.DescribeDomainResponse, error) {
	out := &osapi.DescribeDomainResponse{}
	path := fmt.Sprintf("/%s/opensearch/domain/%s", osapi.APIVersion, url.PathEscape(lo.FromPtr(request.DomainName)))
	if err := m.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) DescribeDomains(ctx context.Context, request *osapi.DescribeDomainsRequest) (*osapi.DescribeDomainsResponse, error) {
	out := &osapi.DescribeDomainsResponse{}
	path := fmt.Sprintf("/%s/opensearch/domain-info", osapi.APIVersion)
	if err := m.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) DescribeDomainConfig(ctx context.Context, request *osapi.DescribeDomainConfigRequest) (*osapi.DescribeDomainConfigResponse, error) {
	out := &osapi.DescribeDomainConfigResponse{}
	path := fmt.Sprintf("/%s/opensearch/domain/%s/config", osapi.APIVersion, url.PathEscape(lo.FromPtr(request.DomainName)))
	if err := m.do(ctx, http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) ListDomainNames(ctx context.Context, request *osapi.ListDomainNamesRequest) (*osapi.ListDomainNamesResponse, error) {
	out := &osapi.ListDomainNamesResponse{}
	query := url.Values{}
	if request.EngineType != nil {
		query.Set("engineType", *request.EngineType)
	}
	path := fmt.Sprintf("/%s/domain", osapi.APIVersion)
	if err := m.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) ListVersions(ctx context.Context, request *osapi.ListVersionsRequest) (*osapi.ListVersionsResponse, error) {
	out := &osapi.ListVersionsResponse{}
	query := url.Values{}
	if request.MaxResults != nil {
		query.Set("maxResults", strconv.Itoa(int(*request.MaxResults)))
	}
	if request.NextToken != nil {
		query.Set("nextToken", *request.NextToken)
	}
	path := fmt.Sprintf("/%s/opensearch/versions", osapi.APIVersion)
	if err := m.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) GetCompatibleVersions(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error) {
	out := &osapi.GetCompatibleVersionsResponse{}
	query := url.Values{}
	if request.DomainName != nil {
		query.Set("domainName", *request.DomainName)
	}
	path := fmt.Sprintf("/%s/opensearch/compatibleVersions", osapi.APIVersion)
	if err := m.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) AddTags(ctx context.Context, request *osapi.AddTagsRequest) (*osapi.AddTagsResponse, error) {
	out := &osapi.AddTagsResponse{}
	path := fmt.Sprintf("/%s/tags", osapi.APIVersion)
	if err := m.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) ListTags(ctx context.Context, request *osapi.ListTagsRequest) (*osapi.ListTagsResponse, error) {
	out := &osapi.ListTagsResponse{}
	query := url.Values{}
	if request.ARN != nil {
		query.Set("arn", *request.ARN)
	}
	path := fmt.Sprintf("/%s/tags/", osapi.APIVersion)
	if err := m.do(ctx, http.MethodGet, path, query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Management) RemoveTags(ctx context.Context, request *osapi.RemoveTagsRequest) (*osapi.RemoveTagsResponse, error) {
	out := &osapi.RemoveTagsResponse{}
	path := fmt.Sprintf("/%s/tags-removal", osapi.APIVersion)
	if err := m.do(ctx, http.MethodPost, path, nil, request, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckHealth verifies the backend answers the cheapest list call.
func (m *Management) CheckHealth(ctx context.Context) error {
	_, err := m.ListDomainNames(ctx, &osapi.ListDomainNamesRequest{})
	return err
}
