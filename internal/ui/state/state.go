package state

import (
	"ghseek/internal/domain"
)

// QueryResult holds every page fetched for one settled query
type QueryResult struct {
	Query      string
	Pages      []domain.Page
	Pending    int // page number currently being fetched, 0 when idle
	FailedPage int // page whose last fetch failed, 0 when none
}

// NextPage returns the page that would be fetched next, 0 when none is known
func (r *QueryResult) NextPage() int {
	if len(r.Pages) == 0 {
		return 1
	}
	return r.Pages[len(r.Pages)-1].NextPage
}

// HasNextPage reports whether a further page is known to exist
func (r *QueryResult) HasNextPage() bool {
	return len(r.Pages) > 0 && r.NextPage() > 0
}

// Users flattens all pages in fetch order
func (r *QueryResult) Users() []domain.User {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Users)
	}
	users := make([]domain.User, 0, n)
	for _, p := range r.Pages {
		users = append(users, p.Users...)
	}
	return users
}

// IsEmpty reports whether at least one page arrived and all pages are empty
func (r *QueryResult) IsEmpty() bool {
	if len(r.Pages) == 0 {
		return false
	}
	for _, p := range r.Pages {
		if len(p.Users) > 0 {
			return false
		}
	}
	return true
}

// Toast is a transient error notification
type Toast struct {
	Message string
	ID      int
}

// AppState contains all the application state
type AppState struct {
	RawQuery        string // current contents of the input
	SettledQuery    string // debounced value used to fetch
	ValidationError string // inline message beside the input

	Results map[string]*QueryResult // settled query -> pages

	Toast   *Toast
	toastID int

	// UI state
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Results:        make(map[string]*QueryResult),
		ViewportHeight: 10,
	}
}

// Current returns the cache entry of the settled query, nil when there is none
func (s *AppState) Current() *QueryResult {
	if s.SettledQuery == "" {
		return nil
	}
	return s.Results[s.SettledQuery]
}

// Users returns the result set of the settled query
func (s *AppState) Users() []domain.User {
	if r := s.Current(); r != nil {
		return r.Users()
	}
	return nil
}

// Settle switches the settled query. It returns true when the value changed.
// The selection is reset because a different result set is now shown.
func (s *AppState) Settle(query string) bool {
	if query == s.SettledQuery {
		return false
	}
	s.SettledQuery = query
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	if query != "" {
		if r, ok := s.Results[query]; ok {
			r.FailedPage = 0
		} else {
			s.Results[query] = &QueryResult{Query: query}
		}
	}
	return true
}

// BeginFetch marks the next page of the settled query as pending and returns
// its number. It returns 0 when fetching is disabled (empty query), a fetch is
// already pending, or no further page is known.
func (s *AppState) BeginFetch() int {
	r := s.Current()
	if r == nil || r.Pending != 0 {
		return 0
	}
	next := r.NextPage()
	if next == 0 {
		return 0
	}
	r.Pending = next
	return next
}

// CanFetchNext reports whether a further page exists and nothing is pending
func (s *AppState) CanFetchNext() bool {
	r := s.Current()
	return r != nil && r.Pending == 0 && r.HasNextPage()
}

// CanAutoFetchNext is CanFetchNext for fetches nobody asked for explicitly.
// A page that failed is only fetched again on request.
func (s *AppState) CanAutoFetchNext() bool {
	return s.CanFetchNext() && s.Current().FailedPage != s.Current().NextPage()
}

// IsLoading reports whether the first page of the settled query is pending
func (s *AppState) IsLoading() bool {
	r := s.Current()
	return r != nil && r.Pending != 0 && len(r.Pages) == 0
}

// IsFetchingNextPage reports whether a page after the first is pending
func (s *AppState) IsFetchingNextPage() bool {
	r := s.Current()
	return r != nil && r.Pending != 0 && len(r.Pages) > 0
}

// ApplyPage appends a fetched page to its query's entry. Pages are only
// accepted in order; anything else is stale and dropped. It returns true when
// the page was appended.
func (s *AppState) ApplyPage(query string, page domain.Page) bool {
	r, ok := s.Results[query]
	if !ok {
		return false
	}
	if page.Number != r.NextPage() || r.Pending != page.Number {
		return false
	}
	r.Pages = append(r.Pages, page)
	r.Pending = 0
	r.FailedPage = 0
	return true
}

// FailFetch records a failed fetch and clears the pending marker. It returns
// true when the failure belongs to a live request.
func (s *AppState) FailFetch(query string, page int) bool {
	r, ok := s.Results[query]
	if !ok || r.Pending != page {
		return false
	}
	r.Pending = 0
	r.FailedPage = page
	return true
}

// ClearCache drops every cached result
func (s *AppState) ClearCache() {
	s.Results = make(map[string]*QueryResult)
}

// Reset clears input, settled query and cache
func (s *AppState) Reset() {
	s.RawQuery = ""
	s.SettledQuery = ""
	s.ValidationError = ""
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	s.ClearCache()
}

// ShowToast replaces the current notification and returns its id
func (s *AppState) ShowToast(message string) int {
	s.toastID++
	s.Toast = &Toast{Message: message, ID: s.toastID}
	return s.toastID
}

// DismissToast hides the notification. A non-zero id only dismisses the
// toast it was issued for.
func (s *AppState) DismissToast(id int) {
	if s.Toast == nil {
		return
	}
	if id != 0 && s.Toast.ID != id {
		return
	}
	s.Toast = nil
}
