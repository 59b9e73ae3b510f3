package view

import (
	"log"
)

// Renderer is implemented by the UI layer. Calls are serialized and arrive
// in commit order. They run while the controller's state is locked, so a
// Renderer must not call back into the Controller (State, Submit, ...).
type Renderer interface {
	RenderLoading(query string)
	RenderSuccess(w WeatherView)
	RenderError(message string)
}

// Renderers fans every call out to each renderer in order.
type Renderers []Renderer

func (rs Renderers) RenderLoading(query string) {
	for _, r := range rs {
		r.RenderLoading(query)
	}
}

func (rs Renderers) RenderSuccess(w WeatherView) {
	for _, r := range rs {
		r.RenderSuccess(w)
	}
}

func (rs Renderers) RenderError(message string) {
	for _, r := range rs {
		r.RenderError(message)
	}
}

// LogRenderer writes every transition to the standard logger.
type LogRenderer struct{}

func (LogRenderer) RenderLoading(query string) {
	log.Printf("INFO: view: loading weather for %q", query)
}

func (LogRenderer) RenderSuccess(w WeatherView) {
	log.Printf("INFO: view: %s %s°, %s, humidity %s, wind %s [%s]",
		w.Location, w.Temperature, w.Description, w.Humidity, w.WindSpeed, w.Category)
}

func (LogRenderer) RenderError(message string) {
	log.Printf("INFO: view: error: %s", message)
}
