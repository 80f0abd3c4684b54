// Package calendar lists company events and holidays via an optional
// external provider.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/cerebro-kb/cerebro/internal/domain"
)

// Event is a calendar event from the external provider.
type Event struct {
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Holiday is a single company holiday.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Provider fetches events from an external calendar service.
type Provider interface {
	UpcomingEvents(ctx context.Context, days int) ([]Event, error)
}

// DefaultLookaheadDays is how far ahead events are listed.
const DefaultLookaheadDays = 30

// Service exposes calendar lookups.
type Service struct {
	provider      Provider
	lookaheadDays int
	now           func() time.Time
}

// New creates a calendar service. provider may be nil; events are then
// unavailable while the static holiday list keeps working.
func New(provider Provider, lookaheadDays int) *Service {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	return &Service{provider: provider, lookaheadDays: lookaheadDays, now: time.Now}
}

// UpcomingEvents lists events within the configured lookahead window.
func (s *Service) UpcomingEvents(ctx context.Context) ([]Event, error) {
	if s.provider == nil {
		return nil, domain.ErrCalendarUnavailable
	}
	events, err := s.provider.UpcomingEvents(ctx, s.lookaheadDays)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return events, nil
}

// Holidays returns the company holidays for the given year.
// year <= 0 uses the current year.
func (s *Service) Holidays(year int) (int, []Holiday) {
	if year <= 0 {
		year = s.now().Year()
	}
	return year, []Holiday{
		{Date: fmt.Sprintf("%d-01-01", year), Name: "New Year Day"},
		{Date: fmt.Sprintf("%d-05-01", year), Name: "Labour Day"},
		{Date: fmt.Sprintf("%d-12-25", year), Name: "Christmas Day"},
	}
}
