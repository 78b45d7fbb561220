// Package viewstore wraps the document store backing the materialized
// account view: one record per account id, carrying a cumulative funds
// balance and the set of event timestamps already folded into it. The
// Store interface hides MongoDB's conditional-upsert idiom behind a
// single idempotent Apply call so the projector never has to reason
// about duplicate-key races itself.
package viewstore

import "context"

// Record is the read-side materialized view for one account.
type Record struct {
	ID         string   `bson:"_id"`
	Funds      int64    `bson:"funds"`
	Timestamps []string `bson:"timestamps"`
}

// Store is the subset of view-store operations the Account Projector
// depends on.
//
//go:generate mockgen -source client.go -destination mock.go -package viewstore
type Store interface {
	// Apply idempotently folds a signed delta into id's view record,
	// keyed by timestamp: if timestamp is already present in the
	// record's timestamps set, Apply is a no-op success. The record is
	// created on first application for an id.
	Apply(ctx context.Context, id string, timestamp string, delta int64) error

	// Get returns the current view record for id.
	Get(ctx context.Context, id string) (Record, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
