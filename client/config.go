package client

import (
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"sigs.k8s.io/yaml"
)

// Config holds the information needed to connect to an esbridge server
type Config struct {
	Service  Service  `json:"service"`
	AuthInfo AuthInfo `json:"authentication"`
}

// Service describes how to reach the esbridge server.
type Service struct {
	// Server is the URL of the esbridge server (the part before /2015-01-01/...).
	Server string `json:"server"`
}

// AuthInfo carries optional signing credentials for bridges deployed behind
// an IAM-enforcing gateway. When empty, requests are sent unsigned.
type AuthInfo struct {
	Region          string `json:"region,omitempty"`
	AccessKeyId     string `json:"access-key-id,omitempty"`
	SecretAccessKey string `json:"secret-access-key,omitempty" datapolicy:"security-key"`
	SessionToken    string `json:"session-token,omitempty"`
}

// NewFromConfig returns a new esbridge client from the given config.
func NewFromConfig(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	var opts []ClientOption
	if config.AuthInfo.AccessKeyId != "" {
		provider := credentials.NewStaticCredentialsProvider(
			config.AuthInfo.AccessKeyId, config.AuthInfo.SecretAccessKey, config.AuthInfo.SessionToken)
		opts = append(opts, WithSigV4(provider, config.AuthInfo.Region))
	}
	return NewClient(config.Service.Server, opts...), nil
}

// NewFromConfigFile returns a new esbridge client using the config read from the given file.
func NewFromConfigFile(filename string) (*Client, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %v", err)
	}
	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return nil, fmt.Errorf("decoding config: %v", err)
	}
	return NewFromConfig(&config)
}

// WriteConfig writes a client config file using the given parameters.
func WriteConfig(filename string, server string) error {
	config := Config{
		Service: Service{
			Server: server,
		},
	}
	contents, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %v", err)
	}
	if err := os.WriteFile(filename, contents, 0600); err != nil {
		return fmt.Errorf("writing config: %v", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Service.Server == "" {
		return fmt.Errorf("invalid configuration: no server found")
	}
	u, err := url.Parse(c.Service.Server)
	if err != nil {
		return fmt.Errorf("invalid configuration: server %q: %v", c.Service.Server, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid configuration: server %q must be an http(s) URL", c.Service.Server)
	}
	if c.AuthInfo.AccessKeyId != "" && c.AuthInfo.SecretAccessKey == "" {
		return fmt.Errorf("invalid configuration: access key set without a secret key")
	}
	return nil
}
