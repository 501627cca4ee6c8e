package handlers

import (
	"ghseek/internal/eventbus"
	"ghseek/internal/logger"
	"ghseek/internal/ui/state"
)

// Outcome describes what a domain event changed
type Outcome struct {
	Applied bool   // state was updated
	Current bool   // the event belongs to the settled query
	Toast   string // error to show, "" for none
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	log   logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, log logger.Logger) *EventHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &EventHandler{
		state: appState,
		log:   log,
	}
}

// HandleEvent applies a fetch result to the cache. Results for requests that
// are no longer pending are dropped.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) Outcome {
	switch e := event.(type) {
	case eventbus.PageLoadedEvent:
		if !h.state.ApplyPage(e.Query, e.Page) {
			h.log.Debugf("dropped stale page %d for %q", e.Page.Number, e.Query)
			return Outcome{}
		}
		h.log.Debugf("page %d for %q: %d users, next %d", e.Page.Number, e.Query, len(e.Page.Users), e.Page.NextPage)
		return Outcome{Applied: true, Current: e.Query == h.state.SettledQuery}

	case eventbus.PageFailedEvent:
		if !h.state.FailFetch(e.Query, e.Page) {
			return Outcome{}
		}
		h.log.Warnf("page %d for %q failed: %v", e.Page, e.Query, e.Err)
		out := Outcome{Applied: true, Current: e.Query == h.state.SettledQuery}
		if out.Current {
			out.Toast = e.Message
		}
		return out
	}
	return Outcome{}
}
