package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service runs a single lookup against the configured provider.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates a new Service. A timeout <= 0 leaves the deadline to
// the caller's context.
func NewService(provider Provider, timeout time.Duration) *Service {
	return &Service{
		provider: provider,
		timeout:  timeout,
	}
}

// FetchWeather validates the query and issues exactly one provider request.
// Empty queries fail with ErrInvalidInput before any network activity.
func (s *Service) FetchWeather(ctx context.Context, q LookupQuery) (WeatherReading, error) {
	q, err := NewLookupQuery(q.Location)
	if err != nil {
		return WeatherReading{}, err
	}
	if s.provider == nil {
		return WeatherReading{}, fmt.Errorf("no weather provider configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Printf("DEBUG: FetchWeather called for %q via %s", q.Location, s.provider.Name())

	start := time.Now()
	reading, err := s.provider.Fetch(ctx, q)
	if err != nil {
		log.Printf("provider %s fetch failed for %q after %s: %v", s.provider.Name(), q.Location, time.Since(start).Round(time.Millisecond), err)
		return WeatherReading{}, err
	}

	if reading.FetchedAt.IsZero() {
		reading.FetchedAt = time.Now().UTC()
	}
	return reading, nil
}
