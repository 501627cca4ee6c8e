package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"ghseek/internal/eventbus"
	"ghseek/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// FetchPageCommand requests the next page of the settled query
type FetchPageCommand struct {
	ctx *CommandContext
}

// NewFetchPageCommand creates a new fetch page command
func NewFetchPageCommand(ctx *CommandContext) *FetchPageCommand {
	return &FetchPageCommand{ctx: ctx}
}

// Execute marks the page pending and publishes the request. Nothing happens
// when no further page is known or a fetch is already pending.
func (c *FetchPageCommand) Execute() tea.Cmd {
	page := c.ctx.State.BeginFetch()
	if page == 0 {
		return nil
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageRequestedEvent{
			Query: c.ctx.State.SettledQuery,
			Page:  page,
		})
	}
	return nil
}

// ClearCommand drops the query and every cached result
type ClearCommand struct {
	ctx *CommandContext
}

// NewClearCommand creates a new clear command
func NewClearCommand(ctx *CommandContext) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

// Execute resets the state and tells the search service to drop in-flight work
func (c *ClearCommand) Execute() tea.Cmd {
	c.ctx.State.Reset()
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.CacheClearedEvent{})
	}
	return nil
}
