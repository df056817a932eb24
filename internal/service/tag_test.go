package service

import (
	"context"
	"testing"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const testDomainARN = "arn:aws:es:us-east-1:000000000000:domain/my-domain"

func TestAddTags(t *testing.T) {
	require := require.New(t)

	var received *osapi.AddTagsRequest
	backend := &TestBackend{
		AddTagsFn: func(ctx context.Context, request *osapi.AddTagsRequest) (*osapi.AddTagsResponse, error) {
			received = request
			return &osapi.AddTagsResponse{}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	tags := []esapi.Tag{
		{Key: lo.ToPtr("team"), Value: lo.ToPtr("search")},
		{Key: lo.ToPtr("env"), Value: lo.ToPtr("prod")},
	}
	_, err := handler.AddTags(context.Background(), &esapi.AddTagsRequest{
		ARN:     lo.ToPtr(testDomainARN),
		TagList: tags,
	})
	require.NoError(err)
	require.Equal(testDomainARN, lo.FromPtr(received.ARN))
	require.Equal(tags, received.TagList)
}

func TestAddTagsValidation(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	tests := []struct {
		name    string
		request *esapi.AddTagsRequest
	}{
		{name: "missing arn", request: &esapi.AddTagsRequest{TagList: []esapi.Tag{}}},
		{name: "missing tag list", request: &esapi.AddTagsRequest{ARN: lo.ToPtr(testDomainARN)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.AddTags(context.Background(), tt.request)
			var svcErr *awserr.Error
			require.ErrorAs(err, &svcErr)
			require.Equal(awserr.CodeValidationException, svcErr.Type)
		})
	}
}

func TestListTags(t *testing.T) {
	require := require.New(t)

	backend := &TestBackend{
		ListTagsFn: func(ctx context.Context, request *osapi.ListTagsRequest) (*osapi.ListTagsResponse, error) {
			require.Equal(testDomainARN, lo.FromPtr(request.ARN))
			return &osapi.ListTagsResponse{
				TagList: []osapi.Tag{
					{Key: lo.ToPtr("team"), Value: lo.ToPtr("search")},
				},
			}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	response, err := handler.ListTags(context.Background(), &esapi.ListTagsRequest{ARN: lo.ToPtr(testDomainARN)})
	require.NoError(err)
	require.Len(response.TagList, 1)
	require.Equal("team", lo.FromPtr(response.TagList[0].Key))
	require.Equal("search", lo.FromPtr(response.TagList[0].Value))
}

func TestListTagsEmpty(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	response, err := handler.ListTags(context.Background(), &esapi.ListTagsRequest{ARN: lo.ToPtr(testDomainARN)})
	require.NoError(err)
	require.NotNil(response.TagList)
	require.Empty(response.TagList)
}

func TestListTagsRequiresARN(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	_, err := handler.ListTags(context.Background(), &esapi.ListTagsRequest{})
	var svcErr *awserr.Error
	require.ErrorAs(err, &svcErr)
	require.Equal(awserr.CodeValidationException, svcErr.Type)
}

func TestRemoveTags(t *testing.T) {
	require := require.New(t)

	var received *osapi.RemoveTagsRequest
	backend := &TestBackend{
		RemoveTagsFn: func(ctx context.Context, request *osapi.RemoveTagsRequest) (*osapi.RemoveTagsResponse, error) {
			received = request
			return &osapi.RemoveTagsResponse{}, nil
		},
	}
	handler, _ := newTestHandler(backend)

	_, err := handler.RemoveTags(context.Background(), &esapi.RemoveTagsRequest{
		ARN:     lo.ToPtr(testDomainARN),
		TagKeys: []string{"team", "env"},
	})
	require.NoError(err)
	require.Equal(testDomainARN, lo.FromPtr(received.ARN))
	require.Equal([]string{"team", "env"}, received.TagKeys)
}

func TestRemoveTagsValidation(t *testing.T) {
	require := require.New(t)

	handler, _ := newTestHandler(&TestBackend{})

	tests := []struct {
		name    string
		request *esapi.RemoveTagsRequest
	}{
		{name: "missing arn", request: &esapi.RemoveTagsRequest{TagKeys: []string{"team"}}},
		{name: "missing tag keys", request: &esapi.RemoveTagsRequest{ARN: lo.ToPtr(testDomainARN)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.RemoveTags(context.Background(), tt.request)
			var svcErr *awserr.Error
			require.ErrorAs(err, &svcErr)
			require.Equal(awserr.CodeValidationException, svcErr.Type)
		})
	}
}
