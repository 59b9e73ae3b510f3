package view

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/weather"
)

const (
	// MessageEmptyQuery is shown when a lookup is submitted without a city.
	MessageEmptyQuery = "Please enter a city name"
	// MessageClosed is shown for lookups submitted after Close.
	MessageClosed = "Weather lookups are no longer available"
)

// Fetcher performs one lookup. *weather.Service satisfies it.
type Fetcher interface {
	FetchWeather(ctx context.Context, q weather.LookupQuery) (weather.WeatherReading, error)
}

// Ticket identifies a submitted lookup. Started reports whether a fetch
// was issued; it is false when Submit went straight to the error state.
type Ticket struct {
	Seq      uint64 `json:"seq"`
	LookupID string `json:"lookupId"`
	Started  bool   `json:"started"`
}

// Controller is the widget's state machine: idle -> loading -> success|error.
type Controller struct {
	fetcher      Fetcher
	renderer     Renderer
	iconTemplate string
	state        *store.StateStore[ViewState]

	// ctx bounds every fetch started by Submit; cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu guards lastQuery and closed. closed is set before Close waits on
	// wg, and wg.Add only happens under mu while closed is false.
	mu        sync.Mutex
	lastQuery string
	closed    bool
}

// NewController creates a Controller in the idle state. renderer may be nil.
func NewController(fetcher Fetcher, renderer Renderer, iconTemplate string) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		fetcher:      fetcher,
		renderer:     renderer,
		iconTemplate: iconTemplate,
		state:        store.NewStateStore(ViewState{Status: StatusIdle, UpdatedAt: time.Now().UTC()}),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.state.Get()
}

// LastQuery returns the location of the last committed non-empty lookup.
func (c *Controller) LastQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastQuery
}

// Submit starts a lookup for name. The controller is in the loading state
// when Submit returns; the fetch resolves in the background. An empty name
// moves straight to the error state without a fetch.
func (c *Controller) Submit(name string) Ticket {
	t := Ticket{Seq: c.state.Next(), LookupID: uuid.NewString()}

	q, err := weather.NewLookupQuery(name)
	if err != nil {
		c.commit(t, ViewState{Status: StatusError, Message: MessageEmptyQuery})
		return t
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.commit(t, ViewState{Status: StatusError, Query: q.Location, Message: MessageClosed})
		return t
	}
	c.wg.Add(1)
	c.mu.Unlock()

	t.Started = true
	c.commit(t, ViewState{Status: StatusLoading, Query: q.Location})

	go func() {
		defer c.wg.Done()
		c.resolve(t, q)
	}()
	return t
}

func (c *Controller) resolve(t Ticket, q weather.LookupQuery) {
	reading, err := c.fetcher.FetchWeather(c.ctx, q)
	if err != nil {
		c.commit(t, ViewState{Status: StatusError, Query: q.Location, Message: ErrorMessage(q.Location, err)})
		return
	}

	w := Format(reading, c.iconTemplate)
	c.commit(t, ViewState{Status: StatusSuccess, Query: q.Location, Weather: &w})
}

func (c *Controller) commit(t Ticket, s ViewState) {
	s.Seq = t.Seq
	s.LookupID = t.LookupID
	s.UpdatedAt = time.Now().UTC()

	err := c.state.Commit(t.Seq, s, c.apply)
	if errors.Is(err, store.ErrStale) {
		log.Printf("DEBUG: discarding %s result of lookup %s (seq %d, latest %d)", s.Status, t.LookupID, t.Seq, c.state.Latest())
	}
}

// apply runs under the store lock for the commit that won the sequence check.
func (c *Controller) apply(s ViewState) {
	if s.Query != "" {
		c.mu.Lock()
		c.lastQuery = s.Query
		c.mu.Unlock()
	}
	c.render(s)
}

func (c *Controller) render(s ViewState) {
	if c.renderer == nil {
		return
	}
	switch s.Status {
	case StatusLoading:
		c.renderer.RenderLoading(s.Query)
	case StatusSuccess:
		c.renderer.RenderSuccess(*s.Weather)
	case StatusError:
		c.renderer.RenderError(s.Message)
	}
}

// Wait blocks until every started fetch has resolved.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight fetches and waits for them, or for ctx.
// Lookups submitted afterwards end in the error state without a fetch.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ErrorMessage derives the single-line message shown for a failed lookup.
func ErrorMessage(location string, err error) string {
	var nf *weather.NotFoundError
	switch {
	case errors.Is(err, weather.ErrInvalidInput):
		return MessageEmptyQuery
	case errors.As(err, &nf):
		return "City not found: " + location
	default:
		return strings.TrimSpace(err.Error())
	}
}
