package chain

import (
	"io"
	"os"

	"github.com/go-leo/docflow/event"
)

type option struct {
	Output io.Writer
	Bus    event.Bus
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return o
}

type Option func(*option)

// Output sets the writer progress lines are written to. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(o *option) {
		o.Output = w
	}
}

// Bus attaches an event bus the check publishes its progress to.
// Without one the check only writes progress lines.
func Bus(bus event.Bus) Option {
	return func(o *option) {
		o.Bus = bus
	}
}
