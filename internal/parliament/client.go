package parliament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Loader is the read-only surface of the API used by the rest of hansard.
// It is implemented by *Client and can be faked in tests.
type Loader interface {
	Search(ctx context.Context, query string) SearchOutcome
	FetchEntity(ctx context.Context, id int64) (Entity, error)
	FetchInterests(ctx context.Context, id int64) ([]InterestRecord, error)
	FetchStats(ctx context.Context) (Stats, error)
}

// Ensure Client implements Loader at compile time.
var _ Loader = (*Client)(nil)

// Client talks to the parliament interests HTTP API. It is the only
// component that touches the network.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase        = "127.0.0.1:8000"
	defaultUserAgent      = "hansard/0.1"
	defaultRequestTimeout = 5 * time.Second
	maxErrorBody          = 64 * 1024
)

// NewClient builds a Client for apiBase (host:port or URL). A non-positive
// timeout uses the default.
func NewClient(apiBase string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search looks an MP up by postcode, constituency or name. It never returns
// an error; every failure is folded into the outcome.
func (c *Client) Search(ctx context.Context, query string) SearchOutcome {
	values := url.Values{}
	values.Set("q", query)
	rel := &url.URL{Path: "/api/search/", RawQuery: values.Encode()}

	var payload searchResponse
	status, err := c.get(ctx, rel, &payload)
	if err != nil {
		log.Printf("search %q failed: %v", query, err)
		return NewTransportError()
	}
	// Only a JSON error body reaches here; anything else is a decodeError.
	if status >= http.StatusBadRequest {
		return NewNotFound(strings.TrimSpace(payload.Error))
	}
	if payload.InDatabase && payload.MemberID > 0 {
		return Found{MemberID: payload.MemberID}
	}
	return PartialMatch{
		Name:         payload.Name,
		Party:        payload.Party,
		Constituency: payload.Constituency,
	}
}

// FetchEntity retrieves a member profile. Missing or malformed profiles
// yield ErrNotFound; network failures yield ErrTransport.
func (c *Client) FetchEntity(ctx context.Context, id int64) (Entity, error) {
	if id <= 0 {
		return Entity{}, fmt.Errorf("member id %d: %w", id, ErrNotFound)
	}
	rel := &url.URL{Path: "/api/members/" + strconv.FormatInt(id, 10) + "/"}

	var payload Entity
	status, err := c.get(ctx, rel, &payload)
	if err != nil {
		var decodeErr *decodeError
		if errors.As(err, &decodeErr) {
			return Entity{}, fmt.Errorf("member %d: %v: %w", id, err, ErrNotFound)
		}
		return Entity{}, fmt.Errorf("member %d: %v: %w", id, err, ErrTransport)
	}
	if status >= http.StatusBadRequest {
		return Entity{}, fmt.Errorf("api %s returned status %d: %w", rel.Path, status, ErrNotFound)
	}
	if payload.ID == 0 {
		payload.ID = id
	}
	return payload, nil
}

// FetchInterests retrieves the declared interests for a member. Zero
// interests is a valid result and returns a non-nil empty slice.
func (c *Client) FetchInterests(ctx context.Context, id int64) ([]InterestRecord, error) {
	rel := &url.URL{Path: "/api/members/" + strconv.FormatInt(id, 10) + "/interests/"}

	var payload interestsResponse
	status, err := c.get(ctx, rel, &payload)
	if err != nil {
		return nil, fmt.Errorf("interests %d: %v: %w", id, err, ErrTransport)
	}
	if status >= http.StatusBadRequest {
		return nil, fmt.Errorf("api %s returned status %d: %w", rel.Path, status, ErrTransport)
	}
	if payload.Interests == nil {
		return []InterestRecord{}, nil
	}
	return payload.Interests, nil
}

// FetchStats retrieves the aggregate counts shown in the banner.
func (c *Client) FetchStats(ctx context.Context) (Stats, error) {
	rel := &url.URL{Path: "/api/stats/"}
	var payload Stats
	status, err := c.get(ctx, rel, &payload)
	if err != nil {
		return Stats{}, err
	}
	if status >= http.StatusBadRequest {
		return Stats{}, fmt.Errorf("api %s returned status %d", rel.Path, status)
	}
	return payload, nil
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

// get issues a GET and decodes the body into dest. Error statuses decode
// the body as an API error so callers can read the server's message; an
// error body that is not JSON is reported as a decodeError. Every request
// logs one line carrying its X-Request-ID.
func (c *Client) get(ctx context.Context, rel *url.URL, dest any) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("api GET %s failed (request %s): %v", rel.Path, requestID, err)
		return 0, fmt.Errorf("execute request %s: %w", requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()
	log.Printf("api GET %s returned status %d (request %s)", rel.Path, resp.StatusCode, requestID)

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return resp.StatusCode, &decodeError{err: err}
		}
		if sr, ok := dest.(*searchResponse); ok {
			sr.Error = apiErr.Error
		}
		return resp.StatusCode, nil
	}
	if dest == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return resp.StatusCode, &decodeError{err: err}
	}
	return resp.StatusCode, nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", apiBase)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
