package scheduler

import (
	"testing"

	"github.com/i474232898/weather-widget/internal/view"
)

type fakeWidget struct {
	last      string
	status    view.Status
	submitted []string
}

func (w *fakeWidget) Submit(name string) view.Ticket {
	w.submitted = append(w.submitted, name)
	return view.Ticket{Seq: uint64(len(w.submitted))}
}

func (w *fakeWidget) LastQuery() string { return w.last }

func (w *fakeWidget) State() view.ViewState { return view.ViewState{Status: w.status} }

func TestRefreshResubmitsLastQuery(t *testing.T) {
	w := &fakeWidget{last: "Nairobi", status: view.StatusSuccess}
	s := New(0, w)

	if !s.refresh() {
		t.Fatal("expected refresh to submit")
	}
	if len(w.submitted) != 1 || w.submitted[0] != "Nairobi" {
		t.Fatalf("unexpected submits %v", w.submitted)
	}
}

func TestRefreshSkips(t *testing.T) {
	cases := map[string]*fakeWidget{
		"no lookup yet": {status: view.StatusIdle},
		"still loading": {last: "Paris", status: view.StatusLoading},
	}
	for name, w := range cases {
		s := New(0, w)
		if s.refresh() {
			t.Fatalf("%s: expected refresh to be skipped", name)
		}
		if len(w.submitted) != 0 {
			t.Fatalf("%s: unexpected submits %v", name, w.submitted)
		}
	}
}

func TestStartWithoutInterval(t *testing.T) {
	s := New(0, &fakeWidget{})
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}
