package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/yuin/goldmark"
	"golang.org/x/exp/slices"

	"github.com/go-leo/docflow"
	"github.com/go-leo/docflow/event"
)

// Report is an immutable snapshot of one workflow run.
type Report struct {
	events []event.Event
}

// Events returns the captured events in arrival order.
func (r *Report) Events() []event.Event {
	return slices.Clone(r.events)
}

// Len returns the number of captured events.
func (r *Report) Len() int {
	return len(r.events)
}

// Markdown renders the run as a Markdown summary, one bullet per event
// in arrival order.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Document workflow run\n\n")
	if len(r.events) == 0 {
		sb.WriteString("No events recorded.\n")
		return sb.String()
	}
	for _, e := range r.events {
		fmt.Fprintf(&sb, "- **%s** `%s`: %s\n", e.Stage(), e.DocumentType(), e.Message())
	}
	return sb.String()
}

// HTML renders the Markdown summary to HTML in memory.
func (r *Report) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(r.Markdown()), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type jsonEvent struct {
	ID           string               `json:"id"`
	Stage        event.Stage          `json:"stage"`
	DocumentType docflow.DocumentType `json:"documentType"`
	Message      string               `json:"message"`
	OccurredOn   time.Time            `json:"occurredOn"`
}

// JSON marshals the run. An empty run marshals as an empty array, not null.
func (r *Report) JSON() ([]byte, error) {
	events := make([]jsonEvent, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, jsonEvent{
			ID:           e.ID(),
			Stage:        e.Stage(),
			DocumentType: e.DocumentType(),
			Message:      e.Message(),
			OccurredOn:   e.When(),
		})
	}
	run := struct {
		Events []jsonEvent `json:"events"`
	}{Events: events}
	return jsoniter.Marshal(run)
}
