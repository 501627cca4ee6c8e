//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

type fakeUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// fakeAPI serves the user search endpoint from a fixed result set and
// records every request it answers.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string][]fakeUser
	failures map[string]string // query -> error message returned with 422
	requests []string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{
		users:    make(map[string][]fakeUser),
		failures: make(map[string]string),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// URL returns the search endpoint
func (f *fakeAPI) URL() string {
	return f.Server.URL + "/search/users"
}

func (f *fakeAPI) addUsers(query, prefix string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 1; i <= n; i++ {
		login := fmt.Sprintf("%s%02d", prefix, i)
		f.users[query] = append(f.users[query], fakeUser{
			ID:        int64(i),
			Login:     login,
			AvatarURL: "https://avatars.example.com/u/" + strconv.Itoa(i),
			HTMLURL:   "https://github.com/" + login,
		})
	}
}

func (f *fakeAPI) fail(query, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[query] = message
}

func (f *fakeAPI) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	f.mu.Lock()
	f.requests = append(f.requests, fmt.Sprintf("%s:%d", query, page))
	users := f.users[query]
	failure, failed := f.failures[query]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failed {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": failure})
		return
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(users) {
		start = len(users)
	}
	if end > len(users) {
		end = len(users)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total_count":        len(users),
		"incomplete_results": false,
		"items":              users[start:end],
	})
}
