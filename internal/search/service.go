package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ghseek/internal/eventbus"
	"ghseek/internal/github"
	"ghseek/internal/logger"
)

type pageKey struct {
	query string
	page  int
}

type flight struct {
	cancel context.CancelFunc
}

// Service runs page requests published on the bus and reports the results
// back on the bus.
type Service struct {
	bus      eventbus.EventBus
	searcher github.Searcher
	timeout  time.Duration
	log      logger.Logger

	mu       sync.Mutex
	inFlight map[pageKey]*flight
	wg       sync.WaitGroup
	unsubs   []func()
}

// NewService creates the service and subscribes it to the bus
func NewService(bus eventbus.EventBus, searcher github.Searcher, timeout time.Duration, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		bus:      bus,
		searcher: searcher,
		timeout:  timeout,
		log:      log,
		inFlight: make(map[pageKey]*flight),
	}

	s.unsubs = append(s.unsubs,
		bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.PageRequestedEvent); ok {
				s.Request(event.Query, event.Page)
			}
		}),
		bus.Subscribe(eventbus.EventCacheCleared, func(e eventbus.DomainEvent) {
			s.CancelAll()
		}),
	)
	return s
}

// Request starts fetching one page unless the same page is already in flight
func (s *Service) Request(query string, page int) bool {
	if query == "" || page < 1 {
		return false
	}
	key := pageKey{query: query, page: page}

	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		s.log.Debugf("page %d of %q already in flight", page, query)
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	f := &flight{cancel: cancel}
	s.inFlight[key] = f
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(ctx, key, f)
	return true
}

func (s *Service) run(ctx context.Context, key pageKey, f *flight) {
	defer s.wg.Done()

	started := time.Now()
	page, err := s.searcher.SearchUsers(ctx, key.query, key.page)
	// Release the slot before publishing so a follow-up request for the
	// same page is not mistaken for a duplicate.
	if !s.finish(key, f) {
		s.log.Debugf("page %d of %q cancelled", key.page, key.query)
		return
	}

	if err != nil {
		s.log.Errorf("Failed to fetch page %d of %q: %v", key.page, key.query, err)
		s.bus.Publish(eventbus.PageFailedEvent{
			Query:   key.query,
			Page:    key.page,
			Message: github.UserMessage(err),
			Err:     fmt.Errorf("page %d of %q: %w", key.page, key.query, err),
		})
		return
	}

	s.log.Infof("Fetched page %d of %q: %d users in %s", key.page, key.query, len(page.Users), time.Since(started).Round(time.Millisecond))
	s.bus.Publish(eventbus.PageLoadedEvent{Query: key.query, Page: page})
}

// finish releases the slot of f. It returns false when f was cancelled, in
// which case its result must not be reported.
func (s *Service) finish(key pageKey, f *flight) bool {
	f.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] != f {
		return false
	}
	delete(s.inFlight, key)
	return true
}

// CancelAll aborts every in-flight request. Cancelled requests report nothing.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, f := range s.inFlight {
		f.cancel()
		delete(s.inFlight, key)
	}
}

// InFlight returns the number of requests currently running
func (s *Service) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inFlight)
}

// Close unsubscribes from the bus, cancels outstanding work and waits for it
func (s *Service) Close() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.CancelAll()
	s.wg.Wait()
}
