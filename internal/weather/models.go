package weather

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// LookupQuery identifies the location a user asked weather for.
// Location is always trimmed and non-empty once built by NewLookupQuery.
type LookupQuery struct {
	Location string `json:"location" validate:"required"`
}

// NewLookupQuery trims the raw user input and rejects it when nothing is left.
func NewLookupQuery(raw string) (LookupQuery, error) {
	q := LookupQuery{Location: strings.TrimSpace(raw)}
	if err := validate.Struct(q); err != nil {
		return LookupQuery{}, ErrInvalidInput
	}
	return q, nil
}

// WeatherReading is the projection of one successful provider response.
// Values are in the provider's configured unit system.
type WeatherReading struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	IconCode    string    `json:"iconCode"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Condition   Condition `json:"condition"`
	FetchedAt   time.Time `json:"fetchedAt"` // always UTC
}
