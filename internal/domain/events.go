package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested EventType = "PageRequested"
	EventPageLoaded    EventType = "PageLoaded"
	EventPageFailed    EventType = "PageFailed"
	EventCacheCleared  EventType = "CacheCleared"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks the search service to fetch one page of a query
type PageRequestedEvent struct {
	Query string
	Page  int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a page has been fetched
type PageLoadedEvent struct {
	Query string
	Page  Page
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageFailedEvent is emitted when fetching a page failed
type PageFailedEvent struct {
	Query   string
	Page    int
	Message string // user-facing message
	Err     error
}

func (e PageFailedEvent) Type() EventType { return EventPageFailed }

// CacheClearedEvent is emitted when the user clears the search
type CacheClearedEvent struct{}

func (e CacheClearedEvent) Type() EventType { return EventCacheCleared }
