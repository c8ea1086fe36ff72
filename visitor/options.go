package visitor

import "github.com/go-leo/docflow/event"

type option struct {
	Bus event.Bus
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// Bus attaches an event bus the collection publishes visits to.
func Bus(bus event.Bus) Option {
	return func(o *option) {
		o.Bus = bus
	}
}
