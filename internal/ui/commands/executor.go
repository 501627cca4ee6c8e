package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"ghseek/internal/eventbus"
	"ghseek/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteFetchNext creates and executes a fetch page command
func (e *Executor) ExecuteFetchNext() tea.Cmd {
	return NewFetchPageCommand(e.ctx).Execute()
}

// ExecuteClear creates and executes a clear command
func (e *Executor) ExecuteClear() tea.Cmd {
	return NewClearCommand(e.ctx).Execute()
}
