package weather

import (
	"context"
)

// Provider abstracts the weather data source (OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q LookupQuery) (WeatherReading, error)
}
