package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-widget/internal/view"
	"github.com/i474232898/weather-widget/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	OpenWeatherAPIKey  string `validate:"required"`
	OpenWeatherBaseURL string `validate:"required,url"`
	Units              string `validate:"oneof=standard metric imperial"`

	// IconURLTemplate must contain the {icon} placeholder.
	IconURLTemplate string `validate:"required,contains={icon}"`

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// RefreshInterval re-submits the last lookup periodically (0 = disabled).
	RefreshInterval time.Duration `validate:"gte=0"`

	// Cities offered by the selection control.
	Cities []string

	// DefaultCity is looked up once at startup when set.
	DefaultCity string

	Port int `validate:"min=1,max=65535"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultOpenWeatherURL)
	cfg.Units = getenvDefault("OPENWEATHER_UNITS", "metric")
	cfg.IconURLTemplate = getenvDefault("WEATHER_ICON_URL", view.DefaultIconURL)

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	refresh, err := getenvDuration("REFRESH_INTERVAL", "0s")
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = refresh

	cfg.Cities = splitList(getenvDefault("WEATHER_CITIES", "Nairobi,Mombasa,London,New York,Tokyo,Sydney"))
	cfg.DefaultCity = strings.TrimSpace(os.Getenv("WEATHER_DEFAULT_CITY"))
	cfg.Port = getenvInt("PORT", 8080)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
