package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/esbridge/esbridge/internal/config"
)

// NewFromConfig returns a management client for the configured backend.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Management, error) {
	backend := cfg.Backend
	if backend == nil || backend.Endpoint == "" {
		return nil, fmt.Errorf("backend endpoint is not configured")
	}

	var opts []ClientOption
	if backend.RequestTimeout > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{Timeout: time.Duration(backend.RequestTimeout)}))
	}
	if backend.SigV4 != nil && backend.SigV4.Enabled {
		credentialsProvider, err := newCredentialsProvider(ctx, backend)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSigV4(credentialsProvider, backend.Region))
	}
	return NewManagement(backend.Endpoint, opts...), nil
}

func newCredentialsProvider(ctx context.Context, backend *config.BackendConfig) (aws.CredentialsProvider, error) {
	sigv4 := backend.SigV4
	if sigv4.AccessKeyId != "" {
		return credentials.NewStaticCredentialsProvider(sigv4.AccessKeyId, sigv4.SecretAccessKey, sigv4.SessionToken), nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(backend.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS credentials: %w", err)
	}
	return awsCfg.Credentials, nil
}
