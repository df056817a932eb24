package service

import (
	"github.com/esbridge/esbridge/internal/analytics"
	"github.com/esbridge/esbridge/internal/awserr"
	"github.com/esbridge/esbridge/internal/client"
	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	backend client.Client
	events  analytics.Publisher
	log     logrus.FieldLogger
}

// Make sure we conform to Service
var _ Service = (*ServiceHandler)(nil)

func NewServiceHandler(backend client.Client, events analytics.Publisher, log logrus.FieldLogger) *ServiceHandler {
	return &ServiceHandler{
		backend: backend,
		events:  events,
		log:     log,
	}
}

func (h *ServiceHandler) publishDomainEvent(name, domainName string) {
	h.events.Publish(analytics.Event{
		Name:    name,
		Payload: map[string]any{"n": analytics.Hash(domainName)},
	})
}

func requireMember(member string, value *string) error {
	if value == nil || *value == "" {
		return awserr.NewValidation("1 validation error detected: Value null at '%s' failed to satisfy constraint: Member must not be null", member)
	}
	return nil
}
