package service

import (
	"context"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/analytics"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/pkg/log"
	"github.com/samber/lo"
)

func (h *ServiceHandler) CreateElasticsearchDomain(ctx context.Context, request *esapi.CreateElasticsearchDomainRequest) (*esapi.CreateElasticsearchDomainResponse, error) {
	if err := requireMember("domainName", request.DomainName); err != nil {
		return nil, err
	}

	log := log.WithReqIDFromCtx(ctx, h.log)
	backendResponse, err := h.backend.CreateDomain(ctx, CreateDomainRequestToOpenSearch(request))
	if err != nil {
		return nil, err
	}
	log.WithField("domain", lo.FromPtr(request.DomainName)).Info("Created domain")
	h.publishDomainEvent(analytics.EventDomainCreated, lo.FromPtr(request.DomainName))

	return &esapi.CreateElasticsearchDomainResponse{
		DomainStatus: DomainStatusFromOpenSearch(backendResponse.DomainStatus),
	}, nil
}

func (h *ServiceHandler) DeleteElasticsearchDomain(ctx context.Context, request *esapi.DeleteElasticsearchDomainRequest) (*esapi.DeleteElasticsearchDomainResponse, error) {
	if err := requireMember("domainName", request.DomainName); err != nil {
		return nil, err
	}

	log := log.WithReqIDFromCtx(ctx, h.log)
	backendResponse, err := h.backend.DeleteDomain(ctx, &osapi.DeleteDomainRequest{DomainName: request.DomainName})
	if err != nil {
		return nil, err
	}
	log.WithField("domain", lo.FromPtr(request.DomainName)).Info("Deleted domain")
	h.publishDomainEvent(analytics.EventDomainDeleted, lo.FromPtr(request.DomainName))

	return &esapi.DeleteElasticsearchDomainResponse{
		DomainStatus: DomainStatusFromOpenSearch(backendResponse.DomainStatus),
	}, nil
}

func (h *ServiceHandler) DescribeElasticsearchDomain(ctx context.Context, request *esapi.DescribeElasticsearchDomainRequest) (*esapi.DescribeElasticsearchDomainResponse, error) {
	if err := requireMember("domainName", request.DomainName); err != nil {
		return nil, err
	}

	backendResponse, err := h.backend.DescribeDomain(ctx, &osapi.DescribeDomainRequest{DomainName: request.DomainName})
	if err != nil {
		return nil, err
	}

	return &esapi.DescribeElasticsearchDomainResponse{
		DomainStatus: DomainStatusFromOpenSearch(backendResponse.DomainStatus),
	}, nil
}

func (h *ServiceHandler) DescribeElasticsearchDomains(ctx context.Context, request *esapi.DescribeElasticsearchDomainsRequest) (*esapi.DescribeElasticsearchDomainsResponse, error) {
	if request.DomainNames == nil {
		return nil, awserr.NewValidation("1 validation error detected: Value null at 'domainNames' failed to satisfy constraint: Member must not be null")
	}

	backendResponse, err := h.backend.DescribeDomains(ctx, &osapi.DescribeDomainsRequest{DomainNames: request.DomainNames})
	if err != nil {
		return nil, err
	}

	return &esapi.DescribeElasticsearchDomainsResponse{
		DomainStatusList: DomainStatusListFromOpenSearch(backendResponse.DomainStatusList),
	}, nil
}

func (h *ServiceHandler) DescribeElasticsearchDomainConfig(ctx context.Context, request *esapi.DescribeElasticsearchDomainConfigRequest) (*esapi.DescribeElasticsearchDomainConfigResponse, error) {
	if err := requireMember("domainName", request.DomainName); err != nil {
		return nil, err
	}

	backendResponse, err := h.backend.DescribeDomainConfig(ctx, &osapi.DescribeDomainConfigRequest{DomainName: request.DomainName})
	if err != nil {
		return nil, err
	}

	return &esapi.DescribeElasticsearchDomainConfigResponse{
		DomainConfig: DomainConfigFromOpenSearch(backendResponse.DomainConfig),
	}, nil
}

func (h *ServiceHandler) ListDomainNames(ctx context.Context, request *esapi.ListDomainNamesRequest) (*esapi.ListDomainNamesResponse, error) {
	backendResponse, err := h.backend.ListDomainNames(ctx, &osapi.ListDomainNamesRequest{EngineType: request.EngineType})
	if err != nil {
		return nil, err
	}

	domainNames := backendResponse.DomainNames
	if domainNames == nil {
		domainNames = []esapi.DomainInfo{}
	}
	return &esapi.ListDomainNamesResponse{DomainNames: domainNames}, nil
}
