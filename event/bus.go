package event

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/gox/syncx/chanx"
	"github.com/go-leo/gox/syncx/groupx"
)

// Bus dispatches workflow events to the listeners registered for their Stage.
type Bus interface {
	// On adds a Listener for the stage.
	On(stage Stage, lis Listener) error

	// Prepend adds the Listener to the beginning of the stage's listeners.
	Prepend(stage Stage, lis Listener) error

	// Once adds a one-time Listener for the stage.
	Once(stage Stage, lis Listener) error

	// PrependOnce adds a one-time Listener to the beginning of the stage's listeners.
	PrependOnce(stage Stage, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the
	// event's stage, in the order they were registered.
	Emit(e Event) error

	// AsyncEmit asynchronously calls each of the listeners registered for the
	// event's stage.
	AsyncEmit(e Event) <-chan error

	// Off removes the specified Listener from the stage's listeners.
	Off(stage Stage, lis Listener) error

	// OffAll removes all listeners for the stage.
	OffAll(stage Stage) error

	// Close bus gracefully.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	listenerMap     sync.Map
	onceListenerMap sync.Map
	wg              sync.WaitGroup
	inShutdown      atomic.Bool // true when bus is in shutdown
	options         *option
}

func (b *bus) On(stage Stage, lis Listener) error {
	if err := b.check(stage, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, stage, lis, b.appendListener)
	return nil
}

func (b *bus) Prepend(stage Stage, lis Listener) error {
	if err := b.check(stage, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, stage, lis, b.prependListener)
	return nil
}

func (b *bus) Once(stage Stage, lis Listener) error {
	if err := b.check(stage, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis, Once: sync.Once{}}
	b.spin(&b.onceListenerMap, stage, onceLis, b.appendListener)
	return nil
}

func (b *bus) PrependOnce(stage Stage, lis Listener) error {
	if err := b.check(stage, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis, Once: sync.Once{}}
	b.spin(&b.onceListenerMap, stage, onceLis, b.prependListener)
	return nil
}

func (b *bus) Emit(e Event) error {
	if err := b.checkEvent(e); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	listeners := b.stageListeners(e.Stage())
	errs := make([]error, 0, len(listeners))
	for _, listener := range listeners {
		errs = append(errs, listener.Handle(e))
	}
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(e Event) <-chan error {
	if err := b.checkEvent(e); err != nil {
		errC := make(chan error, 1)
		errC <- err
		close(errC)
		return errC
	}
	if b.shuttingDown() {
		errC := make(chan error, 1)
		errC <- ErrBusClosed
		close(errC)
		return errC
	}
	listeners := b.stageListeners(e.Stage())
	if len(listeners) == 0 {
		errC := make(chan error, 1)
		errC <- ErrListener{Stage: e.Stage()}
		close(errC)
		return errC
	}
	errCs := make([]<-chan error, 0, len(listeners))
	for _, listener := range listeners {
		listener := listener
		errC := make(chan error, 1)
		b.wg.Add(1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := listener.Handle(e); err != nil {
				errC <- err
			}
		})
		if err != nil {
			errC <- err
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (b *bus) Off(stage Stage, lis Listener) error {
	if err := b.check(stage, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, stage, lis, b.offListener)
	b.spin(&b.onceListenerMap, stage, lis, b.offOnceListener)
	return nil
}

func (b *bus) OffAll(stage Stage) error {
	if stage == "" {
		return ErrStageEmpty
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	b.listenerMap.Delete(stage)
	b.onceListenerMap.Delete(stage)
	return nil
}

func (b *bus) Close(ctx context.Context) error {
	if b.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-groupx.WaitNotify(&b.wg):
			return nil
		}
	}
	return ErrBusClosed
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

// stageListeners snapshots the persistent then the one-time listeners
// registered for the stage, in registration order.
func (b *bus) stageListeners(stage Stage) []Listener {
	var listeners []Listener
	if value, ok := b.listenerMap.Load(stage); ok {
		listeners = append(listeners, *(value.(*[]Listener))...)
	}
	if value, ok := b.onceListenerMap.Load(stage); ok {
		listeners = append(listeners, *(value.(*[]Listener))...)
	}
	return listeners
}

func (b *bus) check(stage Stage, lis Listener) error {
	if stage == "" {
		return ErrStageEmpty
	}
	if err := b.checkListener(lis); err != nil {
		return err
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (b *bus) checkEvent(e Event) error {
	if e == nil {
		return ErrEventNil
	}
	if e.Stage() == "" {
		return ErrStageEmpty
	}
	return nil
}

func (b *bus) checkListener(lis Listener) error {
	if lis == nil {
		return ErrListenerNil
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	return nil
}

func (*bus) loadAndOn(listenerMap *sync.Map, stage Stage, lis Listener, pendFunc func([]Listener, ...Listener) []Listener) (any, any, bool) {
	ptr := &[]Listener{lis}
	oldVal, ok := listenerMap.LoadOrStore(stage, ptr)
	if !ok {
		return oldVal, nil, false
	}
	newListeners := pendFunc(*ptr, *(oldVal.(*[]Listener))...)
	newVal := &newListeners
	return oldVal, newVal, true
}

func (b *bus) appendListener(listenerMap *sync.Map, stage Stage, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		return append(listener, listeners...)
	}
	return b.loadAndOn(listenerMap, stage, lis, pendFunc)
}

func (b *bus) prependListener(listenerMap *sync.Map, stage Stage, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		return append(listeners, listener...)
	}
	return b.loadAndOn(listenerMap, stage, lis, pendFunc)
}

func (*bus) loadAndOff(listenerMap *sync.Map, stage Stage, lis Listener, indexesFunc func([]Listener, Listener) []int) (any, any, bool) {
	oldVal, ok := listenerMap.Load(stage)
	if !ok {
		return oldVal, nil, false
	}
	oldPtr := oldVal.(*[]Listener)
	if len(*oldPtr) == 0 {
		return oldVal, nil, false
	}
	indexes := indexesFunc(*oldPtr, lis)
	if len(indexes) <= 0 {
		return oldVal, nil, false
	}
	newListeners := slicex.DeleteAll(*oldPtr, indexes...)
	newVal := &newListeners
	return oldVal, newVal, true
}

func (b *bus) offListener(listenerMap *sync.Map, stage Stage, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		return slicex.Indexes(listeners, lis)
	}
	return b.loadAndOff(listenerMap, stage, lis, indexesFunc)
}

func (b *bus) offOnceListener(listenerMap *sync.Map, stage Stage, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		f := func(onceLis Listener) bool {
			return onceLis.(*onceListener).Listener == lis
		}
		return slicex.IndexesFunc(listeners, f)
	}
	return b.loadAndOff(listenerMap, stage, lis, indexesFunc)
}

func (b *bus) spin(listenerMap *sync.Map, stage Stage, lis Listener, load func(listenerMap *sync.Map, stage Stage, lis Listener) (any, any, bool)) {
	oldVal, newVal, ok := load(listenerMap, stage, lis)
	if !ok {
		return
	}
	backoff := 1
	for !listenerMap.CompareAndSwap(stage, oldVal, newVal) {
		// Exponential backoff, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < b.options.MaxBackoff {
			backoff <<= 1
		}
		oldVal, newVal, ok = load(listenerMap, stage, lis)
		if !ok {
			return
		}
	}
}
