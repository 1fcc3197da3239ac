package service

import (
	"errors"
	"time"

	"github.com/BowmanStephen/White-Dad-Pack-TCG-sub015/internal/game"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUnknownEventStatus = errors.New("unknown event status")
)

// EventView is an event annotated with its lifecycle phase at request
// time.
type EventView struct {
	game.Event
	Status game.EventStatus `json:"status"`
}

// ListEvents returns all configured events, optionally filtered by the
// status they hold at now.
func ListEvents(events []game.Event, statusFilter string, now time.Time) ([]EventView, error) {
	if statusFilter != "" && !game.IsValidEventStatus(statusFilter) {
		return nil, ErrUnknownEventStatus
	}
	out := make([]EventView, 0, len(events))
	for i := range events {
		status := events[i].StatusAt(now)
		if statusFilter != "" && status != game.EventStatus(statusFilter) {
			continue
		}
		out = append(out, EventView{Event: events[i], Status: status})
	}
	return out, nil
}

// GetEvent returns one configured event by ID.
func GetEvent(events []game.Event, id uint, now time.Time) (*EventView, error) {
	for i := range events {
		if events[i].ID == id {
			return &EventView{Event: events[i], Status: events[i].StatusAt(now)}, nil
		}
	}
	return nil, ErrEventNotFound
}
