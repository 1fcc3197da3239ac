package api

import (
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/storage"
)

// Handler groups all card and battle HTTP handlers.
type Handler struct {
	repo   storage.Repository
	events []game.Event
}

// NewHandler creates a new Handler with the given repository and the
// config-defined event calendar.
func NewHandler(repo storage.Repository, events []game.Event) *Handler {
	return &Handler{repo: repo, events: events}
}
