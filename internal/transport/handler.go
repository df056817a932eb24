// Package transport binds the legacy management REST API to the service
// layer: route registration, request decoding, and response encoding.
package transport

import (
	esapi "github.com/esbridge/esbridge/api/es"
	"github.com/esbridge/esbridge/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type TransportHandler struct {
	serviceHandler service.Service
	log            logrus.FieldLogger
}

func NewTransportHandler(serviceHandler service.Service, log logrus.FieldLogger) *TransportHandler {
	return &TransportHandler{
		serviceHandler: serviceHandler,
		log:            log,
	}
}

// RegisterRoutes mounts the legacy API surface. Paths follow the wire
// bindings of the 2015-01-01 dialect, including the trailing slash on
// the tag listing route.
func (h *TransportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/"+esapi.APIVersion, func(r chi.Router) {
		r.Post("/es/domain", h.CreateElasticsearchDomain)
		r.Delete("/es/domain/{name}", h.DeleteElasticsearchDomain)
		r.Get("/es/domain/{name}", h.DescribeElasticsearchDomain)
		r.Get("/es/domain/{name}/config", h.DescribeElasticsearchDomainConfig)
		r.Post("/es/domain-info", h.DescribeElasticsearchDomains)
		r.Get("/domain", h.ListDomainNames)
		r.Get("/es/versions", h.ListElasticsearchVersions)
		r.Get("/es/compatibleVersions", h.GetCompatibleElasticsearchVersions)
		r.Post("/tags", h.AddTags)
		r.Get("/tags/", h.ListTags)
		r.Post("/tags-removal", h.RemoveTags)
	})
}
