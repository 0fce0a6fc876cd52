package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hlieu5402-collab/spark2026-sub000/callctx"
	"github.com/hlieu5402-collab/spark2026-sub000/errtax"
)

// ErrHandlerNotFound is returned by RemoveHandler/ReplaceHandler/
// AddHandlerAfter when the named anchor or target handler does not
// exist in the current snapshot.
type ErrHandlerNotFound struct{ Name string }

func (e *ErrHandlerNotFound) Error() string {
	return fmt.Sprintf("pipeline: handler %q not found", e.Name)
}

// Pipeline owns one connection/channel's ordered handler chain. Writers
// (AddHandlerAfter/RemoveHandler/ReplaceHandler) serialize via mu;
// readers (Snapshot/dispatch) never block.
type Pipeline struct {
	mu        sync.Mutex
	snapshot  atomic.Pointer[[]HandlerEntry]
	epoch     atomic.Uint64
	Broadcast *Broadcaster
}

// New returns an empty Pipeline at epoch 0.
func New() *Pipeline {
	p := &Pipeline{Broadcast: NewBroadcaster()}
	empty := []HandlerEntry{}
	p.snapshot.Store(&empty)
	return p
}

// Epoch returns the current published epoch.
func (p *Pipeline) Epoch() uint64 { return p.epoch.Load() }

// Snapshot returns the currently published, immutable handler chain.
// Safe to hold for the duration of one dispatch; a concurrent swap never
// mutates the returned slice.
func (p *Pipeline) Snapshot() []HandlerEntry {
	return *p.snapshot.Load()
}

func indexOf(entries []HandlerEntry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// publish stores newEntries as the new snapshot, then bumps epoch. The
// snapshot store happens-before the epoch store (sequential program
// order on this goroutine, observed via atomic loads by readers), so a
// reader that observes the new epoch is guaranteed to observe at least
// the matching snapshot.
func (p *Pipeline) publish(newEntries []HandlerEntry) {
	p.snapshot.Store(&newEntries)
	p.epoch.Add(1)
}

// AddHandlerAfter inserts entry immediately after the handler named
// anchorName. If anchorName is empty, entry is inserted at the head of
// the chain.
func (p *Pipeline) AddHandlerAfter(anchorName string, entry HandlerEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.Snapshot()
	insertAt := 0
	if anchorName != "" {
		idx := indexOf(old, anchorName)
		if idx < 0 {
			return &ErrHandlerNotFound{Name: anchorName}
		}
		insertAt = idx + 1
	}

	next := make([]HandlerEntry, 0, len(old)+1)
	next = append(next, old[:insertAt]...)
	next = append(next, entry)
	next = append(next, old[insertAt:]...)

	p.publish(next)
	p.Broadcast.Publish(Event{Kind: HandlerAdded, HandlerName: entry.Name})
	return nil
}

// RemoveHandler removes the handler named name.
func (p *Pipeline) RemoveHandler(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.Snapshot()
	idx := indexOf(old, name)
	if idx < 0 {
		return &ErrHandlerNotFound{Name: name}
	}

	next := make([]HandlerEntry, 0, len(old)-1)
	next = append(next, old[:idx]...)
	next = append(next, old[idx+1:]...)

	p.publish(next)
	p.Broadcast.Publish(Event{Kind: HandlerRemoved, HandlerName: name})
	return nil
}

// ReplaceHandler swaps the handler named name for newEntry in place.
func (p *Pipeline) ReplaceHandler(name string, newEntry HandlerEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.Snapshot()
	idx := indexOf(old, name)
	if idx < 0 {
		return &ErrHandlerNotFound{Name: name}
	}

	next := make([]HandlerEntry, len(old))
	copy(next, old)
	next[idx] = newEntry

	p.publish(next)
	p.Broadcast.Publish(Event{Kind: HandlerReplaced, HandlerName: name})
	return nil
}

// DispatchInbound walks the currently published snapshot in order,
// forwarding event to every handler whose Direction is Inbound or
// Duplex, stopping at the first Consume or Fail verdict.
func (p *Pipeline) DispatchInbound(ctx *callctx.CallContext, event any) (consumed bool, err *errtax.CoreError) {
	entries := p.Snapshot()
	for _, e := range entries {
		if e.Direction == Outbound {
			continue
		}
		action, actionErr := e.Handler.HandleInbound(ctx, event)
		switch action {
		case Continue:
			continue
		case Consume:
			return true, nil
		case Fail:
			return false, actionErr
		}
	}
	return false, nil
}

// DispatchOutbound walks the currently published snapshot in reverse
// order, forwarding event to every handler whose Direction is Outbound
// or Duplex, stopping at the first Consume or Fail verdict.
func (p *Pipeline) DispatchOutbound(ctx *callctx.CallContext, event any) (consumed bool, err *errtax.CoreError) {
	entries := p.Snapshot()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Direction == Inbound {
			continue
		}
		action, actionErr := e.Handler.HandleOutbound(ctx, event)
		switch action {
		case Continue:
			continue
		case Consume:
			return true, nil
		case Fail:
			return false, actionErr
		}
	}
	return false, nil
}
