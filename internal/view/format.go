package view

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/i474232898/weather-widget/internal/weather"
)

// DefaultIconURL points at the provider's 2x icon assets.
const DefaultIconURL = "https://openweathermap.org/img/wn/{icon}@2x.png"

const (
	hotThreshold  = 25.0
	coldThreshold = 15.0
)

// Format builds the display strings for a reading. iconTemplate must
// contain the {icon} placeholder; an empty template uses DefaultIconURL.
func Format(r weather.WeatherReading, iconTemplate string) WeatherView {
	return WeatherView{
		Reading:     r,
		Location:    r.Location,
		Temperature: strconv.FormatFloat(r.Temperature, 'f', 1, 64),
		Description: capitalize(r.Description),
		Humidity:    formatNumber(r.Humidity) + "%",
		WindSpeed:   formatNumber(r.WindSpeed) + " m/s",
		IconURL:     IconURL(iconTemplate, r.IconCode),
		Category:    CategoryFor(r.Temperature),
	}
}

// CategoryFor maps a temperature to exactly one styling label.
// Both thresholds are inclusive.
func CategoryFor(temp float64) Category {
	switch {
	case temp >= hotThreshold:
		return CategoryHot
	case temp <= coldThreshold:
		return CategoryCold
	default:
		return CategoryModerate
	}
}

// IconURL resolves an icon code against the template.
func IconURL(template, code string) string {
	if template == "" {
		template = DefaultIconURL
	}
	return strings.ReplaceAll(template, "{icon}", code)
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// formatNumber prints the shortest representation, so 80 stays "80" and
// 3.6 stays "3.6".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
