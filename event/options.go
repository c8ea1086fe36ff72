package event

import (
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

type option struct {
	Pool       gopher.Gopher
	MaxBackoff int
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 16
	}
	return o
}

type Option func(*option)

// Pool sets the goroutine pool used by AsyncEmit.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

// MaxBackoff caps the spin backoff when the listener table is contended.
func MaxBackoff(n int) Option {
	return func(o *option) {
		o.MaxBackoff = n
	}
}

// NewBus creates a ready-to-use Bus.
func NewBus(opts ...Option) Bus {
	return &bus{
		listenerMap:     sync.Map{},
		onceListenerMap: sync.Map{},
		wg:              sync.WaitGroup{},
		inShutdown:      atomic.Bool{},
		options:         newOption(opts...),
	}
}
