package view

import (
	"time"

	"github.com/i474232898/weather-widget/internal/weather"
)

// Status is the rendered mode of the widget.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Category is the temperature-derived styling label.
type Category string

const (
	CategoryHot      Category = "hot"
	CategoryCold     Category = "cold"
	CategoryModerate Category = "moderate"
)

// WeatherView is a reading together with its display strings.
type WeatherView struct {
	Reading     weather.WeatherReading `json:"reading"`
	Location    string                 `json:"location"`
	Temperature string                 `json:"temperature"`
	Description string                 `json:"description"`
	Humidity    string                 `json:"humidity"`
	WindSpeed   string                 `json:"windSpeed"`
	IconURL     string                 `json:"iconUrl"`
	Category    Category               `json:"category"`
}

// ViewState is the single state of the widget. Values are immutable once
// committed; each lookup replaces the whole value.
type ViewState struct {
	Status    Status       `json:"status"`
	Seq       uint64       `json:"seq"`
	LookupID  string       `json:"lookupId,omitempty"`
	Query     string       `json:"query,omitempty"`
	Weather   *WeatherView `json:"weather,omitempty"`
	Message   string       `json:"message,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
