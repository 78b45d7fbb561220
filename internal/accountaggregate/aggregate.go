// Package accountaggregate holds the account aggregate: pure state plus
// command validation and event-folding rehydration. It has no
// dependency on the log, the view store, or any transport — the
// aggregate only knows how to mutate itself and how to fold a slice of
// eventlog.Event into its own state.
package accountaggregate

import (
	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
)

// Account is the write-side aggregate for a single account id.
type Account struct {
	ID        string
	Version   int64
	Timestamp string
	Funds     int64
}

// New returns a fresh aggregate at the given version/timestamp with
// zero funds, ready to be rehydrated.
func New(id string, version int64, timestamp string) *Account {
	return &Account{ID: id, Version: version, Timestamp: timestamp}
}

// Deposit increases Funds by amount. amount must be positive.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	a.Funds += amount

	return nil
}

// Withdraw decreases Funds by amount. amount must be positive and must
// not drive Funds below zero.
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	if a.Funds-amount < 0 {
		return domain.ErrInsufficientFunds
	}

	a.Funds -= amount

	return nil
}

// Rehydrate folds events into the aggregate in order. An event is
// skipped if it belongs to a different id, or if its timestamp matches
// the aggregate's current timestamp (already applied). Otherwise the
// aggregate's version and timestamp advance to the event's, and
// deposit/withdraw events adjust Funds; create and any other event
// type contribute no funds change but still advance version/timestamp.
func (a *Account) Rehydrate(events []eventlog.Event) {
	for _, e := range events {
		if e.ID != a.ID || e.Timestamp == a.Timestamp {
			continue
		}

		a.Version = e.Version
		a.Timestamp = e.Timestamp

		switch e.Type {
		case eventlog.EventDeposit:
			a.Funds += e.Amount
		case eventlog.EventWithdraw:
			a.Funds -= e.Amount
		}
	}
}

// Snapshot projects the aggregate to the read-side shape returned by
// Service.Fetch.
func (a *Account) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		ID:        a.ID,
		Version:   a.Version,
		Timestamp: a.Timestamp,
		Funds:     a.Funds,
	}
}
