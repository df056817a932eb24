// Package analytics emits fire-and-forget usage events. Publishing never
// blocks and never fails the operation that triggered it: when the buffer is
// full or the collector is unreachable, events are dropped.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
)

// Event names fired by the shim.
const (
	EventDomainCreated = "domain.created"
	EventDomainDeleted = "domain.deleted"
)

type Event struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(event Event)
	Close()
}

// Hash returns a short one-way digest of name. Usage events carry this
// instead of the domain name itself.
func Hash(name string) string {
	digest := sha256.Sum256([]byte(name))
	return hex.EncodeToString(digest[:])[:12]
}

// NewNoop returns a publisher that discards all events.
func NewNoop() Publisher {
	return noop{}
}

type noop struct{}

func (noop) Publish(Event) {}
func (noop) Close()        {}
