package http

import (
	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/internal/usage"
	"github.com/fsarta/synapse/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    intent.UseCase
	meter usage.Meter
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase, meter usage.Meter) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		meter: meter,
	}
}
