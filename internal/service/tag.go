package service

import (
	"context"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/esbridge/esbridge/internal/awserr"
)

func (h *ServiceHandler) AddTags(ctx context.Context, request *esapi.AddTagsRequest) (*esapi.AddTagsResponse, error) {
	if err := requireMember("arn", request.ARN); err != nil {
		return nil, err
	}
	if request.TagList == nil {
		return nil, awserr.NewValidation("1 validation error detected: Value null at 'tagList' failed to satisfy constraint: Member must not be null")
	}

	if _, err := h.backend.AddTags(ctx, &osapi.AddTagsRequest{ARN: request.ARN, TagList: request.TagList}); err != nil {
		return nil, err
	}
	return &esapi.AddTagsResponse{}, nil
}

func (h *ServiceHandler) ListTags(ctx context.Context, request *esapi.ListTagsRequest) (*esapi.ListTagsResponse, error) {
	if err := requireMember("arn", request.ARN); err != nil {
		return nil, err
	}

	backendResponse, err := h.backend.ListTags(ctx, &osapi.ListTagsRequest{ARN: request.ARN})
	if err != nil {
		return nil, err
	}

	tagList := backendResponse.TagList
	if tagList == nil {
		tagList = []esapi.Tag{}
	}
	return &esapi.ListTagsResponse{TagList: tagList}, nil
}

func (h *ServiceHandler) RemoveTags(ctx context.Context, request *esapi.RemoveTagsRequest) (*esapi.RemoveTagsResponse, error) {
	if err := requireMember("arn", request.ARN); err != nil {
		return nil, err
	}
	if request.TagKeys == nil {
		return nil, awserr.NewValidation("1 validation error detected: Value null at 'tagKeys' failed to satisfy constraint: Member must not be null")
	}

	if _, err := h.backend.RemoveTags(ctx, &osapi.RemoveTagsRequest{ARN: request.ARN, TagKeys: request.TagKeys}); err != nil {
		return nil, err
	}
	return &esapi.RemoveTagsResponse{}, nil
}
