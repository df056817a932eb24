package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/esbridge/esbridge/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	require := require.New(t)

	require.Regexp(regexp.MustCompile(`^[0-9a-f]{12}$`), Hash("my-domain"))
	require.Equal(Hash("my-domain"), Hash("my-domain"))
	require.NotEqual(Hash("my-domain"), Hash("other-domain"))
	require.NotContains(Hash("my-domain"), "my-domain")
}

func TestHTTPPublisherDeliversEnvelopes(t *testing.T) {
	require := require.New(t)

	received := make(chan envelope, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env envelope
		require.NoError(json.NewDecoder(r.Body).Decode(&env))
		received <- env
	}))
	defer server.Close()

	publisher := NewHTTPPublisher(server.URL, 10, time.Second, logrus.New())
	defer publisher.Close()

	publisher.Publish(Event{Name: EventDomainCreated, Payload: map[string]any{"n": Hash("my-domain")}})

	select {
	case env := <-received:
		require.Equal(EventDomainCreated, env.Name)
		require.Equal(Hash("my-domain"), env.Payload["n"])
		require.NotEmpty(env.EventId)
		require.NotZero(env.Timestamp)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestHTTPPublisherDropsWhenFull(t *testing.T) {
	require := require.New(t)

	gate := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-gate
	}))
	defer server.Close()

	var dropped atomic.Int32
	publisher := NewHTTPPublisher(server.URL, 1, time.Second, logrus.New(),
		WithDropCallback(func() { dropped.Add(1) }))

	// One event can be in flight and one buffered; the third must be dropped.
	for i := 0; i < 3; i++ {
		publisher.Publish(Event{Name: EventDomainDeleted})
	}
	require.GreaterOrEqual(dropped.Load(), int32(1))

	close(gate)
	publisher.Close()
}

func TestHTTPPublisherCloseIsSafe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	publisher := NewHTTPPublisher(server.URL, 1, time.Second, logrus.New())
	publisher.Close()
	publisher.Close()
	publisher.Publish(Event{Name: EventDomainCreated})
}

func TestNewFromConfig(t *testing.T) {
	require := require.New(t)

	cfg := config.NewDefault()
	publisher := NewFromConfig(cfg, logrus.New())
	_, isNoop := publisher.(noop)
	require.True(isNoop)

	cfg = config.NewDefault(config.WithAnalytics("http://localhost:1"))
	publisher = NewFromConfig(cfg, logrus.New())
	_, isHTTP := publisher.(*HTTPPublisher)
	require.True(isHTTP)
	publisher.Close()
}
