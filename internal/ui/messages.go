package ui

import (
	"ghseek/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// toastExpiredMsg is sent when the display time of a toast has elapsed
type toastExpiredMsg struct {
	id int
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// browserOpenedMsg contains the result of opening a profile in the browser
type browserOpenedMsg struct {
	url string
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
