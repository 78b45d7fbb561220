// Package eventlog wraps an ordered append-only log (Redis Streams) so
// higher layers see typed operations instead of raw commands: optimistic
// concurrency on publish, rehydration reads, and consumer-group delivery
// with pending-entry reclaim.
package eventlog

import (
	"context"
	"time"
)

// EventType enumerates the event kinds the account aggregate understands.
type EventType string

// Event kinds recognized by the aggregate fold. Other values are
// accepted by the log but contribute no funds change on rehydration.
const (
	EventCreate   EventType = "create"
	EventDeposit  EventType = "deposit"
	EventWithdraw EventType = "withdraw"
)

// Event is the wire shape of one entry on the account stream. Timestamp
// is assigned by the log at append time and is never set by a caller of
// Publish.
type Event struct {
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	Type      EventType `json:"type"`
	Amount    int64     `json:"amount,omitempty"`
	Timestamp string    `json:"-"`
}

// PublishResult carries the version and log-assigned timestamp of a
// successfully published event.
type PublishResult struct {
	Version   int64
	Timestamp string
}

// BatchHandler processes one non-empty delivery of events, whether from
// a live subscription poll or a pending-sweep reclaim.
type BatchHandler func(ctx context.Context, events []Event)

// Client is the set of primitives the write side (Account Service) and
// the read side (Account Projector) depend on.
//
//go:generate mockgen -source client.go -destination mock.go -package eventlog
type Client interface {
	// AddID inserts id into the named set and reports whether it was
	// newly added. Used by Create for id-uniqueness enforcement.
	AddID(ctx context.Context, namespace, id string) (bool, error)

	// Publish appends event to stream under optimistic concurrency. A
	// nil result with a nil error means a concurrent publisher won the
	// race for this id/version; the caller should surface a conflict
	// or retry. A non-nil error is a hard backend failure.
	Publish(ctx context.Context, stream string, event Event) (*PublishResult, error)

	// Get returns all entries for id strictly after sinceTimestamp, in
	// log order, each carrying its assigned Timestamp.
	Get(ctx context.Context, stream, id, sinceTimestamp string) ([]Event, error)

	// Subscribe lazily creates the stream's consumer group and polls it
	// every readInterval for new entries, dispatching non-empty
	// batches to handler. A single subscription per (stream, group) is
	// memoized; calling Subscribe again with the same stream is a
	// no-op.
	Subscribe(ctx context.Context, stream, consumerName string, readInterval time.Duration, handler BatchHandler) error

	// Ack acknowledges one entry for the group and returns the number
	// of entries acknowledged (1 for a caller's own entry, 0 if it was
	// already acknowledged).
	Ack(ctx context.Context, stream, timestamp string) (int64, error)

	// GetPending claims and returns pending entries idle at least
	// maxElapsed, transferring their ownership to consumer. Returns an
	// empty slice, not an error, if the consumer group does not exist
	// yet (cold start).
	GetPending(ctx context.Context, stream, consumer string, maxElapsed time.Duration) ([]Event, error)

	// Close stops all subscription polling and releases the backend
	// connection.
	Close() error
}
