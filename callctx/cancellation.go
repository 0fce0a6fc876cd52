package callctx

import (
	"sync"
	"sync/atomic"
)

// WakeFunc is a zero-argument callback registered against a wake source.
// Implementations must not block and must not panic.
type WakeFunc func()

// Cancellation is a shared, set-once cancellation flag plus a wake list,
// grounded in the AbortController/AbortSignal pattern: a fast atomic flag
// for the hot-path read, with a mutex-guarded waker list for the cold-path
// registration/fan-out on cancel.
//
// Cancellation is monotone: once IsCancelled returns true, it never
// subsequently returns false. Cancel is idempotent and safe for concurrent
// use from any goroutine.
type Cancellation struct {
	mu      sync.Mutex
	wakers  []WakeFunc
	flag    atomic.Bool
	reason  any
	parent  *Cancellation
}

// NewCancellation returns a fresh, uncancelled Cancellation with no parent.
func NewCancellation() *Cancellation {
	return &Cancellation{}
}

// IsCancelled reports whether this Cancellation has been cancelled.
//
// Ordering: the Cancel store happens-before every subsequent IsCancelled
// load that observes true (acquire/release pairing on the same flag), so
// any state the canceller published before calling Cancel is visible to a
// goroutine that subsequently observes cancelled=true here.
func (c *Cancellation) IsCancelled() bool {
	return c.flag.Load() || (c.parent != nil && c.parent.IsCancelled())
}

// Reason returns the value passed to Cancel, or nil if not cancelled or no
// reason was given.
func (c *Cancellation) Reason() any {
	if !c.flag.Load() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

// Cancel sets the cancellation flag and wakes every registered waker
// exactly once. Subsequent calls are no-ops. reason is optional and
// recorded for observability/debugging; pass nil if not applicable.
func (c *Cancellation) Cancel(reason any) {
	c.mu.Lock()
	if c.flag.Load() {
		c.mu.Unlock()
		return
	}
	c.reason = reason
	c.flag.Store(true)
	wakers := c.wakers
	c.wakers = nil
	c.mu.Unlock()

	for _, w := range wakers {
		w()
	}
}

// OnCancel registers w to run when this Cancellation is cancelled. If
// already cancelled, w is invoked immediately (synchronously, outside any
// lock). Registration order is preserved for fan-out on Cancel.
func (c *Cancellation) OnCancel(w WakeFunc) {
	if w == nil {
		return
	}

	c.mu.Lock()
	if c.flag.Load() {
		c.mu.Unlock()
		w()
		return
	}
	c.wakers = append(c.wakers, w)
	c.mu.Unlock()
}

// NewChild returns a new Cancellation linked to this one: cancelling the
// parent cancels the child, but cancelling the child never affects the
// parent or any sibling. If the parent is already cancelled, the child is
// created already cancelled with the same reason.
func (c *Cancellation) NewChild() *Cancellation {
	child := &Cancellation{parent: c}
	c.OnCancel(func() {
		child.Cancel(c.Reason())
	})
	return child
}

// AnyCancelled returns a composite Cancellation that cancels as soon as any
// one of cs cancels, with the reason taken from whichever cancelled first.
// Grounded in the teacher's AbortAny composite-signal helper. Nil members
// are ignored; an already-cancelled member cancels the composite
// immediately.
func AnyCancelled(cs ...*Cancellation) *Cancellation {
	composite := &Cancellation{}
	if len(cs) == 0 {
		return composite
	}

	var once sync.Once
	for _, c := range cs {
		if c == nil {
			continue
		}
		c.OnCancel(func() {
			once.Do(func() {
				composite.Cancel(c.Reason())
			})
		})
	}
	return composite
}
