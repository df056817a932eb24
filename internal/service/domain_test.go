package service

import (
	"context"
	"testing"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/analytics"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestCreateElasticsearchDomain(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	var received *osapi.CreateDomainRequest
	backend := &TestBackend{
		CreateDomainFn: func(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error) {
			received = request
			return &osapi.CreateDomainResponse{
				DomainStatus: &osapi.DomainStatus{
					DomainName:    request.DomainName,
					EngineVersion: request.EngineVersion,
					ClusterConfig: request.ClusterConfig,
					Created:       lo.ToPtr(true),
				},
			}, nil
		},
	}
	handler, events := newTestHandler(backend)

	response, err := handler.CreateElasticsearchDomain(ctx, &esapi.CreateElasticsearchDomainRequest{
		DomainName:           lo.ToPtr("my-domain"),
		ElasticsearchVersion: lo.ToPtr("7.10"),
		ElasticsearchClusterConfig: &esapi.ElasticsearchClusterConfig{
			InstanceType: lo.ToPtr("m5.large.elasticsearch"),
		},
	})
	require.NoError(err)

	// The backend sees the 2021 dialect.
	require.Equal("Elasticsearch_7.10", lo.FromPtr(received.EngineVersion))
	require.Equal("m5.large.search", lo.FromPtr(received.ClusterConfig.InstanceType))

	// The caller gets the 2015 dialect back.
	require.Equal("7.10", lo.FromPtr(response.DomainStatus.ElasticsearchVersion))
	require.Equal("m5.large.elasticsearch", lo.FromPtr(response.DomainStatus.ElasticsearchClusterConfig.InstanceType))
	require.True(lo.FromPtr(response.DomainStatus.Created))

	require.Len(events.events, 1)
	require.Equal(analytics.EventDomainCreated, events.events[0].Name)
	require.Equal(analytics.Hash("my-domain"), events.events[0].Payload["n"])
}

func TestCreateElasticsearchDomainRequiresName(t *testing.T) {
	require := require.New(t)

	called := false
	backend := &TestBackend{
		CreateDomainFn: func(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error) {
			called = true
			return &osapi.CreateDomainResponse{}, nil
		},
	}
	handler, events := newTestHandler(backend)

	_, err := handler.CreateElasticsearchDomain(context.Background(), &esapi.CreateElasticsearchDomainRequest{})
	var svcErr *awserr.Error
	require.ErrorAs(err, &svcErr)
	require.Equal(awserr.CodeValidationException, svcErr.Type)
	require.False(called)
	require.Empty(events.events)
}

func TestCreateElasticsearchDomainBackendError(t *testing.T) {
	require := require.New(t)

	backendErr := awserr.New(409, "ResourceAlreadyExistsException", "domain my-domain already exists")
	backend := &TestBackend{
		CreateDomainFn: func(ctx context.Context, request *osapi.CreateDomainRequest) (*osapi.CreateDomainResponse, error) {
			return nil, backendErr
		},
	}
	handler, events := newTestHandler(backend)

	_, err := handler.CreateElasticsearchDomain(context.Background(), &esapi.CreateElasticsearchDomainRequest{
		DomainName: lo.ToPtr("my-domain"),
	})
	require.ErrorIs(err, backendErr)

	// No event for an attempt the backend rejected.
	require.Empty(events.events)
}

func TestDeleteElasticsearchDomain(t *testing.T) {
	require := require.New(t)

	backend := &TestBackend{
		DeleteDomainFn: func(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error) {
			return &osapi.DeleteDomainResponse{
				DomainStatus: &osapi.DomainStatus{
					DomainName:    request.DomainName,
					EngineVersion: lo.ToPtr("Elasticsearch_7.10"),
					Deleted:       lo.ToPtr(true),
				},
			}, nil
		},
	}
	handler, events := newTestHandler(backend)

	response, err := handler.DeleteElasticsearchDomain(context.Background(), &esapi.DeleteElasticsearchDomainRequest{
		DomainName: lo.ToPtr("my-domain"),
	})
	require.NoError(err)
	require.Equal("7.10", lo.FromPtr(response.DomainStatus.ElasticsearchVersion))
	require.True(lo.FromPtr(response.DomainStatus.Deleted))

	require.Len(events.events, 1)
	require.Equal(analytics.EventDomainDeleted, events.events[0].Name)
	require.Equal(analytics.Hash("my-domain"), events.events[0].Payload["n"])
}

func TestDeleteElasticsearchDomainBackendError(t *testing.T) {
	require := require.New(t)

	backend := &TestBackend{
		DeleteDomainFn: func(ctx context.Context, request *osapi.DeleteDomainRequest) (*osapi.DeleteDomainResponse, error) {
			return nil, awserr.New(409, awserr.CodeResourceNotFound, "domain missing not found")
		},
	}
	handler, events := newTestHandler(backend)

	_, err := handler.DeleteElasticsearchDomain(context.Background(), &esapi.DeleteElasticsearchDomainRequest{
		DomainName: lo.ToPtr("missing"),
	})
	require.Error(err)
	require.Empty(events.events)
}

func TestDescribeElasticsearchDomain(t *testing.T) {
	require := require.New(t)

	backend := &TestBackend{
		DescribeDomainFn: func(ctx context.Context, request *osapi.DescribeDomainRequest) (*osapi.DescribeDomainResponse, error) {
			require.Equal("my-domain", lo.FromPtr(request.DomainName))
			return &osapi.DescribeDomainResponse{
				DomainStatus: &osapi.DomainStatus{
					DomainName:    request.DomainName,
					EngineVersion: lo.ToPtr("OpenSearch_1.1"),
					Endpoint:      lo.ToPtr("my-domain.us-east-1.es.localhost.localstack.cloud:4566"),
				},
			}, nil
		},
	}
	handler, events := newTestHandler(backend)

	response, err := handler.DescribeElasticsearchDomain(context.Background(), &esapi.DescribeElasticsearchDomainRequest{
		DomainName: lo.ToPtr("my-domain"),
	})
	require.NoError(err)

	// OpenSearch engines surface with their prefix intact.
	require.Equal("OpenSearch_1.1", lo.FromPtr(response.DomainStatus.ElasticsearchVersion))
	require.NotNil(response.DomainStatus.Endpoint)
	require.Empty(events.events)
}

func TestDescribeElasticsearchDomains(t *testing.T) {
	require := require.New(t)

	var received *osapi.DescribeDomainsRequest
	backend := &TestBackend{
		DescribeDomainsFn: func(ctx context.Context, request *osapi.DescribeDomainsRequest) (*osapi.DescribeDomainsResponse, error) {
			received = request
			return &osapi.DescribeDomainsResponse{
				DomainStatusList: []osapi.DomainStatus{
					{DomainName: lo.ToPtr("first"), EngineVersion: lo.ToPtr("Elasticsearch_7.10")},
					{DomainName: lo.ToPtr("second"), EngineVersion: lo.ToPtr("OpenSearch_1.1")},
				},
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.DescribeElasticsearchDomains(context.Background(), &esapi.DescribeElasticsearchDomainsRequest{
		DomainNames: []string{"first", "second"},
	})
	require.NoError(err)
	require.Equal([]string{"first", "second"}, received.DomainNames)
	require.Len(response.DomainStatusList, 2)
	require.Equal("7.10", lo.FromPtr(response.DomainStatusList[0].ElasticsearchVersion))
	require.Equal("OpenSearch_1.1", lo.FromPtr(response.DomainStatusList[1].ElasticsearchVersion))
}

func TestDescribeElasticsearchDomainsRequiresNames(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	_, err := handler.DescribeElasticsearchDomains(context.Background(), &esapi.DescribeElasticsearchDomainsRequest{})
	var svcErr *awserr.Error
	require.ErrorAs(err, &svcErr)
	require.Equal(awserr.CodeValidationException, svcErr.Type)

	// An empty list is a valid query, unlike a missing one.
	response, err := handler.DescribeElasticsearchDomains(context.Background(), &esapi.DescribeElasticsearchDomainsRequest{
		DomainNames: []string{},
	})
	require.NoError(err)
	require.Empty(response.DomainStatusList)
}

func TestDescribeElasticsearchDomainConfig(t *testing.T) {
	require := require.New(t)

	backend := &TestBackend{
		DescribeDomainConfigFn: func(ctx context.Context, request *osapi.DescribeDomainConfigRequest) (*osapi.DescribeDomainConfigResponse, error) {
			require.Equal("my-domain", lo.FromPtr(request.DomainName))
			return &osapi.DescribeDomainConfigResponse{
				DomainConfig: &osapi.DomainConfig{
					EngineVersion: &osapi.VersionStatus{
						Options: lo.ToPtr("Elasticsearch_7.10"),
						Status:  &osapi.OptionStatus{State: lo.ToPtr("Active")},
					},
				},
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.DescribeElasticsearchDomainConfig(context.Background(), &esapi.DescribeElasticsearchDomainConfigRequest{
		DomainName: lo.ToPtr("my-domain"),
	})
	require.NoError(err)
	require.Equal("7.10", lo.FromPtr(response.DomainConfig.ElasticsearchVersion.Options))
	require.Equal("Active", lo.FromPtr(response.DomainConfig.ElasticsearchVersion.Status.State))
}

func TestListDomainNames(t *testing.T) {
	require := require.New(t)

	var received *osapi.ListDomainNamesRequest
	backend := &TestBackend{
		ListDomainNamesFn: func(ctx context.Context, request *osapi.ListDomainNamesRequest) (*osapi.ListDomainNamesResponse, error) {
			received = request
			return &osapi.ListDomainNamesResponse{
				DomainNames: []osapi.DomainInfo{
					{DomainName: lo.ToPtr("my-domain"), EngineType: lo.ToPtr("Elasticsearch")},
				},
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.ListDomainNames(context.Background(), &esapi.ListDomainNamesRequest{
		EngineType: lo.ToPtr("Elasticsearch"),
	})
	require.NoError(err)
	require.Equal("Elasticsearch", lo.FromPtr(received.EngineType))
	require.Len(response.DomainNames, 1)
	require.Equal("my-domain", lo.FromPtr(response.DomainNames[0].DomainName))
}

func TestListDomainNamesEmpty(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	response, err := handler.ListDomainNames(context.Background(), &esapi.ListDomainNamesRequest{})
	require.NoError(err)
	require.NotNil(response.DomainNames)
	require.Empty(response.DomainNames)
}
