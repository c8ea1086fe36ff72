// Package report turns the events of one workflow run into a rendered
// summary. A Reporter listens on the event bus; the Report it produces
// renders as Markdown, as HTML via goldmark, or as JSON.
package report

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/go-leo/docflow/event"
)

var _ event.Listener = (*Reporter)(nil)

// Reporter captures workflow events in arrival order.
type Reporter struct {
	mu     sync.Mutex
	events []event.Event
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// Handle records the event. It never fails.
func (r *Reporter) Handle(e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Report snapshots the events captured so far.
func (r *Reporter) Report() *Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Report{events: slices.Clone(r.events)}
}
