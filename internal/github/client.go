package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ghseek/internal/domain"
	"ghseek/internal/logger"
)

const (
	acceptHeader = "application/vnd.github.v3+json"
	userAgent    = "ghseek"

	// FallbackMessage is shown when the server gives no usable message
	FallbackMessage = "Failed to fetch data"
)

// ErrFetchFailed marks transport and decoding failures
var ErrFetchFailed = errors.New("fetch failed")

// APIError is a non-success response from the search endpoint
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("search API returned %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the text to show for a fetch error: the server
// message when there is one, the fallback otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}

// Searcher fetches one page of user search results
type Searcher interface {
	SearchUsers(ctx context.Context, query string, page int) (domain.Page, error)
}

// Client talks to the user search endpoint
type Client struct {
	client  *http.Client
	baseURL string
	perPage int
	log     logger.Logger
}

// NewClient creates a search client. perPage is also the threshold used to
// infer whether a further page exists.
func NewClient(baseURL string, perPage int, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		baseURL: baseURL,
		perPage: perPage,
		log:     log,
	}
}

type searchResponse struct {
	TotalCount        int           `json:"total_count"`
	IncompleteResults bool          `json:"incomplete_results"`
	Items             []domain.User `json:"items"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// SearchUsers fetches page `page` (1-based) of users matching query
func (c *Client) SearchUsers(ctx context.Context, query string, page int) (domain.Page, error) {
	if query == "" {
		return domain.Page{Number: page}, nil
	}

	reqURL, err := c.pageURL(query, page)
	if err != nil {
		return domain.Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)

	c.log.Debugf("GET %s", reqURL)
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Page{}, c.decodeError(resp)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Page{}, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	p := domain.Page{Number: page, Users: result.Items}
	if p.Users == nil {
		p.Users = []domain.User{}
	}
	if len(result.Items) == c.perPage {
		p.NextPage = page + 1
	}
	c.log.Debugf("query %q page %d: %d users (total %d)", query, page, len(p.Users), result.TotalCount)
	return p, nil
}

func (c *Client) pageURL(query string, page int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid api url: %v", ErrFetchFailed, err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var payload errorResponse
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = FallbackMessage
	}
	c.log.Warnf("search request failed: %v", apiErr)
	return apiErr
}
