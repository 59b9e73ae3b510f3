package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/i474232898/weather-widget/internal/weather"
)

// DefaultOpenWeatherURL is the current-weather endpoint of OpenWeatherMap.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	units   string
	client  *http.Client
}

// NewOpenWeatherProvider creates a provider. Empty baseURL and units fall
// back to the public endpoint and metric units.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL, units string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	if units == "" {
		units = "metric"
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		units:   units,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// owmPayload mirrors the fields of the current-weather response we render.
// Pointers distinguish an absent field from a zero value.
type owmPayload struct {
	Name    *string        `json:"name" validate:"required"`
	Weather []owmCondition `json:"weather" validate:"required,min=1,dive"`
	Main    *struct {
		Temp     *float64 `json:"temp" validate:"required"`
		Humidity *float64 `json:"humidity" validate:"required"`
	} `json:"main" validate:"required"`
	Wind *struct {
		Speed *float64 `json:"speed" validate:"required"`
	} `json:"wind" validate:"required"`
	Dt int64 `json:"dt"`
}

type owmCondition struct {
	Main        string  `json:"main"`
	Description *string `json:"description" validate:"required"`
	Icon        string  `json:"icon" validate:"required"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, q weather.LookupQuery) (weather.WeatherReading, error) {
	if p.apiKey == "" {
		return weather.WeatherReading{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", q.Location)
		values.Set("appid", p.apiKey)
		values.Set("units", p.units)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, buildRequest)
	if err != nil {
		return weather.WeatherReading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the body is not surfaced.
		_, _ = io.Copy(io.Discard, resp.Body)
		return weather.WeatherReading{}, &weather.NotFoundError{Location: q.Location, StatusCode: resp.StatusCode}
	}

	var payload owmPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherReading{}, &weather.MalformedResponseError{Err: err}
	}
	if err := validatePayload(payload); err != nil {
		return weather.WeatherReading{}, err
	}

	ts := time.Now().UTC()
	if payload.Dt > 0 {
		ts = time.Unix(payload.Dt, 0).UTC()
	}

	cond := payload.Weather[0]
	return weather.WeatherReading{
		Location:    *payload.Name,
		Temperature: *payload.Main.Temp,
		Description: *cond.Description,
		IconCode:    cond.Icon,
		Humidity:    *payload.Main.Humidity,
		WindSpeed:   *payload.Wind.Speed,
		Condition:   mapOpenWeatherCondition(cond.Main),
		FetchedAt:   ts,
	}, nil
}

func mapOpenWeatherCondition(main string) weather.Condition {
	switch main {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionCloudy
	case "Rain", "Drizzle":
		return weather.ConditionRain
	case "Snow":
		return weather.ConditionSnow
	case "Thunderstorm":
		return weather.ConditionStorm
	case "Mist", "Fog", "Haze", "Smoke":
		return weather.ConditionMist
	default:
		return weather.ConditionUnknown
	}
}
