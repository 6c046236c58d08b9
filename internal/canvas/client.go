package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"canvascal/internal/logging"
)

// requestTimeout bounds every outbound Canvas call. Exceeding it cancels
// the in-flight request and surfaces a TimeoutError, distinct from a
// generic network failure.
const requestTimeout = 30 * time.Second

// APIError is a non-2xx response from the Canvas API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas API returned status %d: %s", e.StatusCode, e.Body)
}

// TimeoutError is a Canvas request that exceeded the per-call timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("canvas request timed out after %s", e.Timeout)
}

// Client wraps the Canvas LMS REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Canvas client for the given instance base URL
// (e.g. "https://school.instructure.com") and API token.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     logging.WithService(logger, "canvas"),
	}
}

// get performs an authenticated GET against the Canvas API and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build canvas request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{Timeout: requestTimeout}
		}
		return fmt.Errorf("canvas request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read canvas response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode canvas response: %w", err)
	}
	return nil
}

// FetchCourses lists the courses the token holder is actively enrolled in.
func (c *Client) FetchCourses(ctx context.Context) ([]Course, error) {
	query := url.Values{}
	query.Set("enrollment_state", "active")
	query.Set("per_page", "50")

	var courses []Course
	if err := c.get(ctx, "/courses", query, &courses); err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return courses, nil
}

// FetchAssignments aggregates assignments across all active courses,
// annotates each with its owning course, filters to published items with a
// resolvable due date, and normalizes the survivors.
//
// A fetch failure for any single course aborts the whole operation;
// partial results are considered worse than total failure here. This is
// the opposite of the sync loop, which isolates per-item failures.
func (c *Client) FetchAssignments(ctx context.Context) ([]Assignment, error) {
	courses, err := c.FetchCourses(ctx)
	if err != nil {
		return nil, err
	}

	var items []Assignment
	dropped := 0
	for _, course := range courses {
		query := url.Values{}
		query.Set("per_page", "100")

		var raws []RawItem
		path := fmt.Sprintf("/courses/%d/assignments", course.ID)
		if err := c.get(ctx, path, query, &raws); err != nil {
			return nil, fmt.Errorf("failed to fetch assignments for course %q: %w", course.Name, err)
		}

		for i := range raws {
			raw := &raws[i]
			if !isPublished(raw) || !hasDueDate(raw) {
				continue
			}
			item := Normalize(raw, course.Name)
			if item == nil {
				dropped++
				continue
			}
			items = append(items, *item)
		}
	}

	c.logger.Debug("fetched assignments",
		logging.Operation("fetch_assignments"),
		slog.Int("courses", len(courses)),
		slog.Int("items", len(items)),
		slog.Int("dropped", dropped))

	return items, nil
}

// FetchUpcomingEvents lists the user's upcoming calendar events feed, which
// returns wrapper-shaped records with the assignment nested one level down,
// and runs them through the same normalizer.
func (c *Client) FetchUpcomingEvents(ctx context.Context) ([]Assignment, error) {
	query := url.Values{}
	query.Set("type", "assignment")
	query.Set("per_page", "50")

	var raws []RawItem
	if err := c.get(ctx, "/calendar_events", query, &raws); err != nil {
		return nil, fmt.Errorf("failed to fetch calendar events: %w", err)
	}

	var items []Assignment
	dropped := 0
	for i := range raws {
		item := Normalize(&raws[i], "")
		if item == nil {
			dropped++
			continue
		}
		items = append(items, *item)
	}

	c.logger.Debug("fetched upcoming events",
		logging.Operation("fetch_upcoming_events"),
		slog.Int("items", len(items)),
		slog.Int("dropped", dropped))

	return items, nil
}

// isPublished treats an absent published field as published; Canvas omits
// it on feeds scoped to the student view.
func isPublished(raw *RawItem) bool {
	return raw.Published == nil || *raw.Published
}

func hasDueDate(raw *RawItem) bool {
	if raw.DueAt != "" {
		return true
	}
	return raw.Assignment != nil && raw.Assignment.DueAt != ""
}
