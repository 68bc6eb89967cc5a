package http

import (
	"github.com/tahiry-dev/wildlife-atlas/internal/catalog"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
)

// Handler owns the HTTP route handlers and their dependencies: the domain
// services, the read-only catalog, and the directory the copied animal
// photos are served from.
type Handler struct {
	services *service.Services
	catalog  *catalog.Catalog

	staticDir string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, cat *catalog.Catalog, staticDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		catalog:   cat,
		staticDir: staticDir,
		logger:    logger,
	}
}
