package analytics

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/esbridge/esbridge/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultBufferSize     = 100
	defaultRequestTimeout = 5 * time.Second
	flushTimeout          = 5 * time.Second
)

type envelope struct {
	EventId   string         `json:"eventId"`
	Name      string         `json:"name"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type PublisherOption func(*HTTPPublisher)

// WithDropCallback is invoked once per dropped or failed event.
func WithDropCallback(onDrop func()) PublisherOption {
	return func(p *HTTPPublisher) {
		p.onDrop = onDrop
	}
}

// HTTPPublisher posts event envelopes to a collector endpoint from a single
// worker goroutine behind a bounded buffer.
type HTTPPublisher struct {
	endpoint  string
	client    *http.Client
	log       logrus.FieldLogger
	onDrop    func()
	events    chan Event
	done      chan struct{}
	drained   chan struct{}
	closeOnce sync.Once
}

var _ Publisher = (*HTTPPublisher)(nil)

func NewHTTPPublisher(endpoint string, bufferSize int, timeout time.Duration, log logrus.FieldLogger, opts ...PublisherOption) *HTTPPublisher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	p := &HTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
		events:   make(chan Event, bufferSize),
		done:     make(chan struct{}),
		drained:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.run()
	return p
}

// NewFromConfig returns an HTTPPublisher when analytics is enabled, a noop
// publisher otherwise.
func NewFromConfig(cfg *config.Config, log logrus.FieldLogger, opts ...PublisherOption) Publisher {
	if cfg.Analytics == nil || !cfg.Analytics.Enabled || cfg.Analytics.Endpoint == "" {
		return NewNoop()
	}
	return NewHTTPPublisher(
		cfg.Analytics.Endpoint,
		cfg.Analytics.BufferSize,
		time.Duration(cfg.Analytics.RequestTimeout),
		log,
		opts...,
	)
}

func (p *HTTPPublisher) Publish(event Event) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.events <- event:
	default:
		p.drop(event, "buffer full")
	}
}

// Close stops the worker after draining buffered events, giving up after a
// flush timeout.
func (p *HTTPPublisher) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	select {
	case <-p.drained:
	case <-time.After(flushTimeout):
	}
}

func (p *HTTPPublisher) run() {
	defer close(p.drained)
	for {
		select {
		case event := <-p.events:
			p.send(event)
		case <-p.done:
			for {
				select {
				case event := <-p.events:
					p.send(event)
				default:
					return
				}
			}
		}
	}
}

func (p *HTTPPublisher) send(event Event) {
	body, err := json.Marshal(envelope{
		EventId:   uuid.NewString(),
		Name:      event.Name,
		Timestamp: time.Now().Unix(),
		Payload:   event.Payload,
	})
	if err != nil {
		p.drop(event, err.Error())
		return
	}
	resp, err := p.client.Post(p.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		p.drop(event, err.Error())
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		p.drop(event, resp.Status)
	}
}

func (p *HTTPPublisher) drop(event Event, reason string) {
	p.log.WithField("event", event.Name).WithField("reason", reason).Debug("dropping usage event")
	if p.onDrop != nil {
		p.onDrop()
	}
}
