package http

import (
	"github.com/fsarta/synapse/internal/user"
	"github.com/fsarta/synapse/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
