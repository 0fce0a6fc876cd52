package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/hlieu5402-collab/spark2026-sub000/ready"
)

// EventKind enumerates every PipelineEventKind value broadcast by a
// Pipeline (spec.md §4.4).
type EventKind int

const (
	HandlerAdded EventKind = iota
	HandlerRemoved
	HandlerReplaced
	ReadyStateChanged
	CloseInitiated
	ClosedHalfDuplex
	Closed
)

// Event is the payload broadcast on each pipeline lifecycle transition.
// Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind                EventKind
	HandlerName         string
	ReadyState          ready.State
	CloseReason         string
	HalfDuplexDirection Direction
}

// Subscription is a single subscriber's non-blocking event feed. Events
// the subscriber is too slow to receive are dropped and counted rather
// than blocking the publisher.
type Subscription struct {
	ch      chan Event
	dropped atomic.Uint64
}

// Events returns the channel to range over for delivered events.
func (s *Subscription) Events() <-chan Event { return s.ch }

// Dropped reports how many events this subscriber missed due to a full
// buffer.
func (s *Subscription) Dropped() uint64 { return s.dropped.Load() }

// Broadcaster fans lifecycle events out to any number of subscribers
// without ever blocking on a slow one.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new subscriber with the given channel buffer
// size and returns its Subscription.
func (b *Broadcaster) Subscribe(bufferSize int) *Subscription {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	sub := &Subscription{ch: make(chan Event, bufferSize)}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscriber; its channel is closed.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
	b.mu.Unlock()
}

// Publish delivers ev to every current subscriber; the order in which
// subscribers are visited is not defined. A subscriber whose buffer is
// full has the event dropped (and counted) instead of blocking this call.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- ev:
		default:
			sub.dropped.Add(1)
		}
	}
}
