// Package config holds the file-based configuration of the esbridge service:
// where to listen, which OpenSearch management endpoint to forward to, and
// the optional metrics, rate limit, and usage analytics settings.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/esbridge/esbridge/internal/util"
	"sigs.k8s.io/yaml"
)

const appName = "esbridge"

type Config struct {
	Service   *ServiceConfig   `json:"service,omitempty"`
	Backend   *BackendConfig   `json:"backend,omitempty"`
	Metrics   *MetricsConfig   `json:"metrics,omitempty"`
	Analytics *AnalyticsConfig `json:"analytics,omitempty"`
}

// ServiceConfig holds the settings of the legacy-dialect HTTP listener.
type ServiceConfig struct {
	Address               string              `json:"address,omitempty"`
	BaseUrl               string              `json:"baseUrl,omitempty"`
	LogLevel              string              `json:"logLevel,omitempty"`
	HttpReadTimeout       util.Duration       `json:"httpReadTimeout,omitempty"`
	HttpReadHeaderTimeout util.Duration       `json:"httpReadHeaderTimeout,omitempty"`
	HttpWriteTimeout      util.Duration       `json:"httpWriteTimeout,omitempty"`
	HttpIdleTimeout       util.Duration       `json:"httpIdleTimeout,omitempty"`
	HttpMaxHeaderBytes    int                 `json:"httpMaxHeaderBytes,omitempty"`
	HttpMaxRequestSize    int                 `json:"httpMaxRequestSize,omitempty"`
	HttpMaxNumHeaders     int                 `json:"httpMaxNumHeaders,omitempty"`
	HttpMaxUrlLength      int                 `json:"httpMaxUrlLength,omitempty"`
	RateLimit             *RateLimitConfig    `json:"rateLimit,omitempty"`
	HealthChecks          *HealthChecksConfig `json:"healthChecks,omitempty"`
}

// BackendConfig holds the settings for reaching the OpenSearch Service
// management API the shim forwards to.
type BackendConfig struct {
	Endpoint       string        `json:"endpoint,omitempty"`
	Region         string        `json:"region,omitempty"`
	RequestTimeout util.Duration `json:"requestTimeout,omitempty"`
	SigV4          *SigV4Config  `json:"sigv4,omitempty"`
}

// SigV4Config enables request signing. With an empty access key the default
// AWS credential chain (environment, shared config, IMDS) is used.
type SigV4Config struct {
	Enabled         bool   `json:"enabled,omitempty"`
	AccessKeyId     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
	SessionToken    string `json:"sessionToken,omitempty"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Address string `json:"address,omitempty"`
	// SloMax is the latency in seconds above which a successful response
	// counts as an SLO violation.
	SloMax float64 `json:"sloMax,omitempty"`
	// LatencyBins overrides the default histogram buckets for request
	// latencies.
	LatencyBins []float64 `json:"latencyBins,omitempty"`
}

// AnalyticsConfig controls the fire-and-forget usage events emitted on
// domain creation and deletion.
type AnalyticsConfig struct {
	Enabled        bool          `json:"enabled,omitempty"`
	Endpoint       string        `json:"endpoint,omitempty"`
	BufferSize     int           `json:"bufferSize,omitempty"`
	RequestTimeout util.Duration `json:"requestTimeout,omitempty"`
}

type RateLimitConfig struct {
	Enabled        bool          `json:"enabled,omitempty"`
	Requests       int           `json:"requests,omitempty"`
	Window         util.Duration `json:"window,omitempty"`
	TrustedProxies []string      `json:"trustedProxies,omitempty"`
}

type HealthChecksConfig struct {
	Enabled          bool          `json:"enabled,omitempty"`
	ReadinessPath    string        `json:"readinessPath,omitempty"`
	LivenessPath     string        `json:"livenessPath,omitempty"`
	ReadinessTimeout util.Duration `json:"readinessTimeout,omitempty"`
}

func ConfigDir() string {
	return filepath.Join(util.MustString(os.UserHomeDir), "."+appName)
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func ClientConfigFile() string {
	return filepath.Join(ConfigDir(), "client.yaml")
}

// ConfigOption is a functional option for adjusting a default config.
type ConfigOption func(*Config)

// WithBackendEndpoint points the shim at the given management endpoint.
func WithBackendEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Backend.Endpoint = endpoint
	}
}

// WithSigV4 enables signing with static credentials.
func WithSigV4(region, accessKeyId, secretAccessKey string) ConfigOption {
	return func(c *Config) {
		c.Backend.Region = region
		c.Backend.SigV4 = &SigV4Config{
			Enabled:         true,
			AccessKeyId:     accessKeyId,
			SecretAccessKey: secretAccessKey,
		}
	}
}

// WithAnalytics enables usage event publishing to the given endpoint.
func WithAnalytics(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Analytics = &AnalyticsConfig{
			Enabled:  true,
			Endpoint: endpoint,
		}
	}
}

func NewDefault(opts ...ConfigOption) *Config {
	c := &Config{
		Service: &ServiceConfig{
			Address:               ":8080",
			BaseUrl:               "http://localhost:8080",
			LogLevel:              "info",
			HttpReadTimeout:       util.Duration(5 * time.Minute),
			HttpReadHeaderTimeout: util.Duration(5 * time.Minute),
			HttpWriteTimeout:      util.Duration(5 * time.Minute),
			HttpIdleTimeout:       util.Duration(5 * time.Minute),
			HttpMaxHeaderBytes:    32 * 1024,
			HttpMaxRequestSize:    1024 * 1024,
			HttpMaxNumHeaders:     32,
			HttpMaxUrlLength:      2000,
			HealthChecks: &HealthChecksConfig{
				Enabled:          true,
				ReadinessPath:    "/readyz",
				LivenessPath:     "/healthz",
				ReadinessTimeout: util.Duration(2 * time.Second),
			},
		},
		Backend: &BackendConfig{
			Endpoint:       "http://localhost:4566",
			Region:         "us-east-1",
			RequestTimeout: util.Duration(30 * time.Second),
		},
		Metrics: &MetricsConfig{
			Enabled: true,
			Address: ":15690",
			SloMax:  4.0,
		},
		Analytics: &AnalyticsConfig{
			Enabled:        false,
			BufferSize:     100,
			RequestTimeout: util.Duration(5 * time.Second),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewFromFile(cfgFile string) (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadOrGenerate(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfgFile), os.FileMode(0755)); err != nil {
			return nil, fmt.Errorf("creating directory for config file: %w", err)
		}
		if err := Save(NewDefault(), cfgFile); err != nil {
			return nil, err
		}
	}
	return NewFromFile(cfgFile)
}

// Load reads the file over a default config, so omitted sections keep their
// default values.
func Load(cfgFile string) (*Config, error) {
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := NewDefault()
	if err := yaml.Unmarshal(contents, c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	c.applyEnvOverrides()
	return c, nil
}

func Save(cfg *Config, cfgFile string) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(cfgFile, contents, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if endpoint := os.Getenv("ESBRIDGE_BACKEND_ENDPOINT"); endpoint != "" {
		c.Backend.Endpoint = endpoint
	}
	if c.Backend.Region == "" {
		c.Backend.Region = os.Getenv("AWS_REGION")
	}
}

func (c *Config) Validate() error {
	if c.Service == nil || c.Service.Address == "" {
		return fmt.Errorf("service address must be set")
	}
	if c.Backend == nil || c.Backend.Endpoint == "" {
		return fmt.Errorf("backend endpoint must be set")
	}
	u, err := url.Parse(c.Backend.Endpoint)
	if err != nil {
		return fmt.Errorf("parsing backend endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend endpoint must be an http(s) URL, got %q", c.Backend.Endpoint)
	}
	if rl := c.Service.RateLimit; rl != nil && rl.Enabled {
		if rl.Requests <= 0 || rl.Window <= 0 {
			return fmt.Errorf("rate limit requires positive requests and window")
		}
	}
	if c.Analytics != nil && c.Analytics.Enabled && c.Analytics.Endpoint == "" {
		return fmt.Errorf("analytics endpoint must be set when analytics is enabled")
	}
	return nil
}

// String returns a JSON representation with credentials redacted.
func (c *Config) String() string {
	contents, err := json.Marshal(c.sanitizeForLogging())
	if err != nil {
		return "<error>"
	}
	return string(contents)
}

func (c *Config) sanitizeForLogging() *Config {
	if c == nil {
		return nil
	}
	sanitized := *c
	if c.Backend != nil && c.Backend.SigV4 != nil {
		backend := *c.Backend
		sigv4 := *backend.SigV4
		if sigv4.SecretAccessKey != "" {
			sigv4.SecretAccessKey = "[redacted]"
		}
		if sigv4.SessionToken != "" {
			sigv4.SessionToken = "[redacted]"
		}
		backend.SigV4 = &sigv4
		sanitized.Backend = &backend
	}
	return &sanitized
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() string {
	if c.Service != nil && c.Service.LogLevel != "" {
		return c.Service.LogLevel
	}
	return "info"
}
