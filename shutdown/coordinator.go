package shutdown

import (
	"fmt"
	"sync"
	"time"

	"github.com/hlieu5402-collab/spark2026-sub000/observability"
	"golang.org/x/sync/errgroup"
)

// Coordinator drives registered targets through FIN → await half-close →
// release, escalating to force_close on deadline expiry.
type Coordinator struct {
	mu         sync.Mutex
	targets    []*registeredTarget
	clock      Clock
	logger     *observability.Logger
	auditTrace string
}

// New returns a Coordinator using clock for deadline timing. If clock is
// nil, RealClock{} is used. If logger is nil, a no-op logger is used.
func New(clock Clock, logger *observability.Logger) *Coordinator {
	if clock == nil {
		clock = RealClock{}
	}
	if logger == nil {
		logger = observability.NoOpLogger()
	}
	return &Coordinator{clock: clock, logger: logger}
}

// RegisterTarget registers a non-channel shutdown target under label.
func (c *Coordinator) RegisterTarget(label string, cb TargetCallbacks) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.targets {
		if t.label == label {
			return fmt.Errorf("shutdown: target %q already registered", label)
		}
	}
	c.targets = append(c.targets, &registeredTarget{label: label, cb: cb})
	return nil
}

// RegisterChannel registers ch as a shutdown target under label.
func (c *Coordinator) RegisterChannel(label string, ch Channel) error {
	return c.RegisterTarget(label, channelAdapter(ch))
}

// AddAuditTrace attaches a trace context string to subsequent shutdown
// logs.
func (c *Coordinator) AddAuditTrace(trace string) {
	c.mu.Lock()
	c.auditTrace = trace
	c.mu.Unlock()
}

// Shutdown broadcasts a ShutdownTriggered event, invokes trigger_graceful
// once on every registered target (in registration order, all of them
// before any await_closed resolves), then awaits each target's
// await_closed concurrently under the given deadline (zero meaning no
// deadline), force-closing any target that does not complete in time.
func (c *Coordinator) Shutdown(reason string, deadline time.Duration) Report {
	c.mu.Lock()
	targets := append([]*registeredTarget(nil), c.targets...)
	trace := c.auditTrace
	c.mu.Unlock()

	c.logger.Info().Str(observability.TraceParentKey, trace).Log("shutdown triggered")

	for _, t := range targets {
		if t.cb.TriggerGraceful != nil {
			t.cb.TriggerGraceful(reason)
		}
	}

	reports := make([]TargetReport, len(targets))
	var g errgroup.Group
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			reports[i] = c.awaitOne(t, deadline, trace)
			return nil
		})
	}
	_ = g.Wait()

	return Report{Targets: reports}
}

func (c *Coordinator) awaitOne(t *registeredTarget, deadline time.Duration, trace string) TargetReport {
	start := c.clock.Now()
	var timeout <-chan time.Time
	if deadline > 0 {
		timeout = c.clock.After(deadline)
	}

	done := t.cb.AwaitClosed()
	select {
	case err := <-done:
		elapsed := c.clock.Now().Sub(start)
		if err != nil {
			return TargetReport{Label: t.label, Status: Failed, Elapsed: elapsed, Err: err}
		}
		return TargetReport{Label: t.label, Status: Completed, Elapsed: elapsed}
	case <-timeout:
		if t.cb.ForceClose != nil {
			t.cb.ForceClose()
		}
		c.logger.Warning().Str(observability.TraceParentKey, trace).Log("shutdown target forced closed after deadline")
		elapsed := c.clock.Now().Sub(start)
		return TargetReport{Label: t.label, Status: ForcedTimeout, Elapsed: elapsed}
	}
}
