package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-widget/internal/view"
)

// Submitter is the part of the view controller the scheduler drives.
type Submitter interface {
	Submit(name string) view.Ticket
	LastQuery() string
	State() view.ViewState
}

// Scheduler periodically re-submits the last lookup so the widget stays current.
type Scheduler struct {
	scheduler *gocron.Scheduler
	widget    Submitter
	interval  time.Duration
}

// New creates a new Scheduler. An interval <= 0 disables refreshing.
func New(interval time.Duration, widget Submitter) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		widget:    widget,
		interval:  interval,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: refresh interval not set; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(func() {
		s.refresh()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.Printf("INFO: scheduler: refreshing last lookup every %s", s.interval)
	return nil
}

// refresh re-submits the last lookup unless there is none or one is still loading.
func (s *Scheduler) refresh() bool {
	city := s.widget.LastQuery()
	if city == "" {
		return false
	}
	if s.widget.State().Status == view.StatusLoading {
		log.Printf("DEBUG: scheduler: lookup for %q still loading; skipping refresh", city)
		return false
	}

	t := s.widget.Submit(city)
	log.Printf("scheduler: refreshing %q (lookup %s)", city, t.LookupID)
	return true
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
