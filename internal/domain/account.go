// Package domain provides the shared types and sentinel errors for the
// account ledger: the aggregate snapshot plus the error kinds every
// layer maps to an HTTP status.
package domain

import "errors"

var (
	// ErrInvalidAmount indicates a non-positive deposit or withdrawal amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates a withdrawal would drive funds below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotFound indicates an id with no cached aggregate and no events on the log.
	ErrNotFound = errors.New("account not found")
	// ErrConflict indicates a duplicate create, or an optimistic-concurrency loss on publish.
	ErrConflict = errors.New("conflict")
)

// Snapshot is the read-side projection of an aggregate returned by
// Service.Fetch and rendered by the HTTP edge.
type Snapshot struct {
	ID        string `json:"id"`
	Version   int64  `json:"version"`
	Timestamp string `json:"timestamp"`
	Funds     int64  `json:"funds"`
}
