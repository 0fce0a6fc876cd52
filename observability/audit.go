package observability

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditEvent is the fixed, hash-chained audit record schema from spec.md
// §6. EventID is a UUIDv7 so ordering is time-correlated, grounded in
// bassosimone-nop's NewSpanID helper (same "UUIDv7 as span/event id"
// pattern, generalized from span correlation to append-only audit
// entries).
type AuditEvent struct {
	EventID        string
	Sequence       uint64
	OccurredAt     time.Time
	ActorID        string
	Action         string
	EntityKind     string
	EntityID       string
	StatePrevHash  string
	StateCurrHash  string
	TSAEvidence    []byte // optional timestamp-authority evidence
}

// NewEventID returns a fresh UUIDv7 event identifier.
func NewEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// UUIDv7 generation only fails if the system CSPRNG is broken;
		// there is no meaningful recovery at the call site.
		panic(fmt.Errorf("observability: generate event id: %w", err))
	}
	return id.String()
}

// HashState computes the chained hash of arbitrary state bytes, as used for
// both StateCurrHash on append and the replay verification below.
func HashState(state []byte) string {
	sum := sha256.Sum256(state)
	return hex.EncodeToString(sum[:])
}

// ErrHashMismatch is returned by AuditLog.Append and Replay when an event's
// StatePrevHash doesn't match the running chain head.
var ErrHashMismatch = errors.New("observability: audit event prev-hash does not match chain head")

// AuditLog is an append-only, hash-chained, in-process audit trail.
// A recorder failure (Append returning an error) must roll back whatever
// state change triggered it — AuditLog itself enforces this by refusing to
// record the event and leaving the chain head untouched.
type AuditLog struct {
	mu       sync.Mutex
	events   []AuditEvent
	headHash string
	seq      uint64
}

// NewAuditLog returns an empty log whose chain head is the empty string,
// so the first event's StatePrevHash must be "".
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append validates ev.StatePrevHash against the current chain head, always
// assigns the next Sequence, fills EventID and OccurredAt if unset, and
// appends on success. On mismatch,
// nothing is recorded and ErrHashMismatch is returned so the caller can roll
// back its pending state change.
func (l *AuditLog) Append(ev AuditEvent) (AuditEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ev.StatePrevHash != l.headHash {
		return AuditEvent{}, ErrHashMismatch
	}
	if ev.EventID == "" {
		ev.EventID = NewEventID()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	l.seq++
	ev.Sequence = l.seq
	l.events = append(l.events, ev)
	l.headHash = ev.StateCurrHash
	return ev, nil
}

// Events returns a copy of the recorded event sequence.
func (l *AuditLog) Events() []AuditEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Replay reconstructs a configuration snapshot by applying events in
// sequence, rejecting (and stopping at) any event whose StatePrevHash does
// not match the running state. apply receives the accumulated snapshot and
// the next event, returning the updated snapshot.
//
// Replaying from genesis reproduces the live configuration snapshot
// byte-for-byte, per spec.md §8's round-trip law, provided apply is a pure
// function of (snapshot, event).
func Replay[S any](events []AuditEvent, initial S, apply func(S, AuditEvent) S) (S, error) {
	state := initial
	head := ""
	for i, ev := range events {
		if ev.StatePrevHash != head {
			return state, fmt.Errorf("observability: replay event %d (seq %d): %w", i, ev.Sequence, ErrHashMismatch)
		}
		state = apply(state, ev)
		head = ev.StateCurrHash
	}
	return state, nil
}
