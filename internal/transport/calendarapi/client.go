// Package calendarapi is an HTTP client for an external company calendar
// REST API.
package calendarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	calendaruc "github.com/cerebro-kb/cerebro/internal/usecase/calendar"
)

const maxEvents = 10

// Client fetches events from a calendar REST API. It implements
// calendar.Provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Config holds the calendar API settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// New creates a calendar API client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// UpcomingEvents lists events within the next days, ordered by start time.
func (c *Client) UpcomingEvents(ctx context.Context, days int) ([]calendaruc.Event, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	q.Set("max_results", strconv.Itoa(maxEvents))
	q.Set("order_by", "start")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build events request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("calendar API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Events []calendaruc.Event `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	return payload.Events, nil
}
