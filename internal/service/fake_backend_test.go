package service

import (
	"context"

	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/analytics"
	"github.com/esbridge/esbridge/internal/client"
	"github.com/sirupsen/logrus"
)

// TestBackend is a configurable fake of the management backend. Operations
// without a function installed succeed with an empty response.
type TestBackend struct {
	CreateDomainFn          func(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error)
	DeleteDomainFn          func(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error)
	DescribeDomainFn        func(ctx context.Context, request *osapi.DescribeDomainRequest) (*osapi.DescribeDomainResponse, error)
	DescribeDomainsFn       func(ctx context.Context, request *osapi.DescribeDomainsRequest) (*osapi.DescribeDomainsResponse, error)
	DescribeDomainConfigFn  func(ctx context.Context, request *osapi.DescribeDomainConfigRequest) (*osapi.DescribeDomainConfigResponse, error)
	ListDomainNamesFn       func(ctx context.Context, request *osapi.ListDomainNamesRequest) (*osapi.ListDomainNamesResponse, error)
	ListVersionsFn          func(ctx context.Context, request *osapi.ListVersionsRequest) (*osapi.ListVersionsResponse, error)
	GetCompatibleVersionsFn func(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error)
	AddTagsFn               func(ctx context.Context, request *osapi.AddTagsRequest) (*osapi.AddTagsResponse, error)
	ListTagsFn              func(ctx context.Context, request *osapi.ListTagsRequest) (*osapi.ListTagsResponse, error)
	RemoveTagsFn            func(ctx context.Context, request *osapi.RemoveTagsRequest) (*osapi.RemoveTagsResponse, error)
	CheckHealthFn           func(ctx context.Context) error
}

var _ client.Client = (*TestBackend)(nil)

func (b *TestBackend) CreateDomain(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error) {
	if b.CreateDomainFn != nil {
		return b.CreateDomainFn(ctx, request)
	}
	return &osapi.CreateDomainResponse{}, nil
}

func (b *TestBackend) DeleteDomain(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error) {
	if b.DeleteDomainFn != nil {
		return b.DeleteDomainFn(ctx, request)
	}
	return &osapi.DeleteDomainResponse{}, nil
}

func (b *TestBackend) DescribeDomain(ctx context.Context, request *osapi.DescribeDomainRequest) (*osapi.DescribeDomainResponse, error) {
	if b.DescribeDomainFn != nil {
		return b.DescribeDomainFn(ctx, request)
	}
	return &osapi.DescribeDomainResponse{}, nil
}

func (b *TestBackend) DescribeDomains(ctx context.Context, request *osapi.DescribeDomainsRequest) (*osapi.DescribeDomainsResponse, error) {
	if b.DescribeDomainsFn != nil {
		return b.DescribeDomainsFn(ctx, request)
	}
	return &osapi.DescribeDomainsResponse{}, nil
}

func (b *TestBackend) DescribeDomainConfig(ctx context.Context, request *osapi.DescribeDomainConfigRequest) (*osapi.DescribeDomainConfigResponse, error) {
	if b.DescribeDomainConfigFn != nil {
		return b.DescribeDomainConfigFn(ctx, request)
	}
	return &osapi.DescribeDomainConfigResponse{}, nil
}

func (b *TestBackend) ListDomainNames(ctx context.Context, request *osapi.ListDomainNamesRequest) (*osapi.ListDomainNamesResponse, error) {
	if b.ListDomainNamesFn != nil {
		return b.ListDomainNamesFn(ctx, request)
	}
	return &osapi.ListDomainNamesResponse{}, nil
}

func (b *TestBackend) ListVersions(ctx context.Context, request *osapi.ListVersionsRequest) (*osapi.ListVersionsResponse, error) {
	if b.ListVersionsFn != nil {
		return b.ListVersionsFn(ctx, request)
	}
	return &osapi.ListVersionsResponse{}, nil
}

func (b *TestBackend) GetCompatibleVersions(ctx context.Context, request *osapi.GetCompatibleVersionsRequest) (*osapi.GetCompatibleVersionsResponse, error) {
	if b.GetCompatibleVersionsFn != nil {
		return b.GetCompatibleVersionsFn(ctx, request)
	}
	return &osapi.GetCompatibleVersionsResponse{}, nil
}

func (b *TestBackend) AddTags(ctx context.Context, request *osapi.AddTagsRequest) (*osapi.AddTagsResponse, error) {
	if b.AddTagsFn != nil {
		return b.AddTagsFn(ctx, request)
	}
	return &osapi.AddTagsResponse{}, nil
}

func (b *TestBackend) ListTags(ctx context.Context, request *osapi.ListTagsRequest) (*osapi.ListTagsResponse, error) {
	if b.ListTagsFn != nil {
		return b.ListTagsFn(ctx, request)
	}
	return &osapi.ListTagsResponse{}, nil
}

func (b *TestBackend) RemoveTags(ctx context.Context, request *osapi.RemoveTagsRequest) (*osapi.RemoveTagsResponse, error) {
	if b.RemoveTagsFn != nil {
		return b.RemoveTagsFn(ctx, request)
	}
	return &osapi.RemoveTagsResponse{}, nil
}

func (b *TestBackend) CheckHealth(ctx context.Context) error {
	if b.CheckHealthFn != nil {
		return b.CheckHealthFn(ctx)
	}
	return nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []analytics.Event
}

func (p *recordingPublisher) Publish(event analytics.Event) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Close() {}

func newTestHandler(backend client.Client) (*ServiceHandler, *recordingPublisher) {
	events := &recordingPublisher{}
	return NewServiceHandler(backend, events, logrus.New()), events
}
