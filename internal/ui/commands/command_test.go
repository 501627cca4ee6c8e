package commands

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghseek/internal/domain"
	"ghseek/internal/eventbus"
	"ghseek/internal/ui/state"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func TestFetchNextPublishesOncePerPage(t *testing.T) {
	s := state.NewAppState()
	bus := &recordingBus{}
	e := NewExecutor(s, bus)

	e.ExecuteFetchNext()
	assert.Empty(t, bus.events, "no settled query, no fetch")

	s.Settle("octocat")
	e.ExecuteFetchNext()
	e.ExecuteFetchNext()
	require.Len(t, bus.events, 1, "second call is a no-op while pending")
	assert.Equal(t, eventbus.PageRequestedEvent{Query: "octocat", Page: 1}, bus.events[0])

	s.ApplyPage("octocat", domain.Page{Number: 1, Users: make([]domain.User, 20), NextPage: 2})
	e.ExecuteFetchNext()
	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.PageRequestedEvent{Query: "octocat", Page: 2}, bus.events[1])
}

func TestFetchNextStopsAfterLastPage(t *testing.T) {
	s := state.NewAppState()
	bus := &recordingBus{}
	e := NewExecutor(s, bus)

	s.Settle("octocat")
	e.ExecuteFetchNext()
	s.ApplyPage("octocat", domain.Page{Number: 1, Users: make([]domain.User, 2)})

	e.ExecuteFetchNext()
	assert.Len(t, bus.events, 1)
}

func TestClearResetsAndPublishes(t *testing.T) {
	s := state.NewAppState()
	bus := &recordingBus{}
	e := NewExecutor(s, bus)

	s.Settle("octocat")
	e.ExecuteFetchNext()
	e.ExecuteClear()

	assert.Empty(t, s.SettledQuery)
	assert.Empty(t, s.Results)
	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.CacheClearedEvent{}, bus.events[1])
}
