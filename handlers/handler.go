package handlers

import (
	"github.com/sirupsen/logrus"

	"farm-market-api/config"
	"farm-market-api/store"
)

// Handler is the dispatching collaborator: it validates requests, resolves
// the caller's identity and role, and turns requests into store actions.
type Handler struct {
	store *store.Store
	cfg   *config.Config
	log   *logrus.Logger
}

func New(s *store.Store, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{store: s, cfg: cfg, log: log}
}
