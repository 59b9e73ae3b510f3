package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-widget/internal/weather"
)

const nairobiBody = `{
	"name": "Nairobi",
	"dt": 1700000000,
	"weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 25.04, "humidity": 80},
	"wind": {"speed": 3.6}
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenWeatherProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenWeatherProvider(srv.Client(), "test-key", srv.URL, "metric")
}

func TestOpenWeatherFetchSuccess(t *testing.T) {
	var gotQuery map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "appid": q.Get("appid"), "units": q.Get("units")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nairobiBody))
	})

	r, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "Nairobi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["q"] != "Nairobi" || gotQuery["appid"] != "test-key" || gotQuery["units"] != "metric" {
		t.Fatalf("unexpected query parameters: %v", gotQuery)
	}
	if r.Location != "Nairobi" {
		t.Fatalf("expected location Nairobi, got %q", r.Location)
	}
	if r.Temperature != 25.04 || r.Humidity != 80 || r.WindSpeed != 3.6 {
		t.Fatalf("unexpected numeric fields: %+v", r)
	}
	if r.Description != "light rain" || r.IconCode != "10d" {
		t.Fatalf("unexpected condition fields: %+v", r)
	}
	if r.Condition != weather.ConditionRain {
		t.Fatalf("expected condition %q, got %q", weather.ConditionRain, r.Condition)
	}
	if !r.FetchedAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("unexpected timestamp %v", r.FetchedAt)
	}
}

func TestOpenWeatherFetchEncodesLocation(t *testing.T) {
	var got string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(nairobiBody))
	})

	if _, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "São Paulo & co"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "São Paulo & co" {
		t.Fatalf("expected location to round-trip, got %q", got)
	}
}

func TestOpenWeatherFetchNonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusInternalServerError} {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		})

		_, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "Atlantis"})
		var nf *weather.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("status %d: expected NotFoundError, got %v", status, err)
		}
		if nf.Location != "Atlantis" || nf.StatusCode != status {
			t.Fatalf("status %d: unexpected error fields %+v", status, nf)
		}
	}
}

func TestOpenWeatherFetchMalformed(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"missing wind": {
			body:  `{"name":"X","weather":[{"description":"d","icon":"01d"}],"main":{"temp":1,"humidity":2}}`,
			field: "wind",
		},
		"missing wind speed": {
			body:  `{"name":"X","weather":[{"description":"d","icon":"01d"}],"main":{"temp":1,"humidity":2},"wind":{}}`,
			field: "wind.speed",
		},
		"missing temp": {
			body:  `{"name":"X","weather":[{"description":"d","icon":"01d"}],"main":{"humidity":2},"wind":{"speed":1}}`,
			field: "main.temp",
		},
		"empty weather": {
			body:  `{"name":"X","weather":[],"main":{"temp":1,"humidity":2},"wind":{"speed":1}}`,
			field: "weather",
		},
		"missing description": {
			body:  `{"name":"X","weather":[{"icon":"01d"}],"main":{"temp":1,"humidity":2},"wind":{"speed":1}}`,
			field: "weather[0].description",
		},
		"missing name": {
			body:  `{"weather":[{"description":"d","icon":"01d"}],"main":{"temp":1,"humidity":2},"wind":{"speed":1}}`,
			field: "name",
		},
		"not json": {
			body: `<html>oops</html>`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "X"})
			var me *weather.MalformedResponseError
			if !errors.As(err, &me) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
			if me.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, me.Field)
			}
		})
	}
}

func TestOpenWeatherFetchZeroValuesAreValid(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Vostok","weather":[{"description":"clear sky","icon":"01n"}],"main":{"temp":0,"humidity":0},"wind":{"speed":0}}`))
	})

	r, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "Vostok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Temperature != 0 || r.WindSpeed != 0 {
		t.Fatalf("unexpected reading %+v", r)
	}
}

func TestOpenWeatherFetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewOpenWeatherProvider(&http.Client{}, "secret-key", url, "metric")
	_, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "Paris"})

	var ne *weather.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("error message leaks the api key: %v", err)
	}
}

func TestOpenWeatherFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Fetch(ctx, weather.LookupQuery{Location: "Paris"})
	var te *weather.TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Fatalf("error message leaks the api key: %v", err)
	}
}

func TestOpenWeatherFetchRequiresAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "", "", "")
	if _, err := p.Fetch(context.Background(), weather.LookupQuery{Location: "Paris"}); err == nil {
		t.Fatal("expected error without api key")
	}
}
