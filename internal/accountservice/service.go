// Package accountservice implements the write-side command handler: it
// loads (or rehydrates) an aggregate, validates the command, appends an
// event under optimistic concurrency, and maintains a warm in-process
// cache of aggregates.
package accountservice

import (
	"context"
	"fmt"
	"sync"

	"github.com/joeywhelan/redisStreamEventStore/internal/accountaggregate"
	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
)

// idNamespace is the Redis set id registry keys live under; Create uses
// it to enforce id uniqueness before the first event is appended.
const idNamespace = "accountId"

// EventLog is the subset of eventlog.Client the account service needs.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type EventLog interface {
	AddID(ctx context.Context, namespace, id string) (bool, error)
	Publish(ctx context.Context, stream string, event eventlog.Event) (*eventlog.PublishResult, error)
	Get(ctx context.Context, stream, id, sinceTimestamp string) ([]eventlog.Event, error)
	Close() error
}

// Service facilitates account command handling and owns the
// process-wide aggregate cache.
type Service struct {
	log    EventLog
	stream string

	mu    sync.Mutex
	cache map[string]*accountaggregate.Account
	locks map[string]*sync.Mutex
}

// New returns an account service publishing to and reading from stream.
func New(log EventLog, stream string) *Service {
	return &Service{
		log:    log,
		stream: stream,
		cache:  make(map[string]*accountaggregate.Account),
		locks:  make(map[string]*sync.Mutex),
	}
}

// idLock returns the (lazily created) per-id mutex guarding the
// load-mutate-publish critical section for id. It only protects the
// in-process cached aggregate from concurrent mutation; correctness
// across processes still rests entirely on the log's optimistic
// concurrency check in Publish.
func (s *Service) idLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}

	return l
}

func (s *Service) cachedAccount(id string) (*accountaggregate.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.cache[id]

	return acc, ok
}

func (s *Service) storeAccount(id string, acc *accountaggregate.Account) {
	s.mu.Lock()
	s.cache[id] = acc
	s.mu.Unlock()
}

// Create registers id and publishes its create event. The new
// aggregate is inserted into the cache on success.
func (s *Service) Create(ctx context.Context, id string) (domain.Snapshot, error) {
	added, err := s.log.AddID(ctx, idNamespace, id)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("accountservice: create %s: %w", id, err)
	}

	if !added {
		return domain.Snapshot{}, domain.ErrConflict
	}

	result, err := s.log.Publish(ctx, s.stream, eventlog.Event{ID: id, Version: 0, Type: eventlog.EventCreate})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("accountservice: create %s: %w", id, err)
	}

	if result == nil {
		return domain.Snapshot{}, domain.ErrConflict
	}

	acc := accountaggregate.New(id, result.Version, result.Timestamp)
	s.storeAccount(id, acc)

	return acc.Snapshot(), nil
}

// Deposit applies a deposit of amount to id.
func (s *Service) Deposit(ctx context.Context, id string, amount int64) (domain.Snapshot, error) {
	return s.mutate(ctx, id, eventlog.EventDeposit, amount)
}

// Withdraw applies a withdrawal of amount from id.
func (s *Service) Withdraw(ctx context.Context, id string, amount int64) (domain.Snapshot, error) {
	return s.mutate(ctx, id, eventlog.EventWithdraw, amount)
}

func (s *Service) mutate(
	ctx context.Context, id string, typ eventlog.EventType, amount int64,
) (domain.Snapshot, error) {
	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	acc, err := s.load(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}

	if mutErr := applyMutation(acc, typ, amount); mutErr != nil {
		return domain.Snapshot{}, mutErr
	}

	result, err := s.log.Publish(ctx, s.stream, eventlog.Event{ID: id, Version: acc.Version, Type: typ, Amount: amount})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("accountservice: %s %s: %w", typ, id, err)
	}

	if result == nil {
		compensate(acc, typ, amount)
		return domain.Snapshot{}, domain.ErrConflict
	}

	acc.Version = result.Version
	acc.Timestamp = result.Timestamp
	s.storeAccount(id, acc)

	return acc.Snapshot(), nil
}

func applyMutation(acc *accountaggregate.Account, typ eventlog.EventType, amount int64) error {
	switch typ {
	case eventlog.EventDeposit:
		return acc.Deposit(amount)
	case eventlog.EventWithdraw:
		return acc.Withdraw(amount)
	default:
		return fmt.Errorf("accountservice: unsupported mutation %q", typ)
	}
}

// compensate reverses the single in-memory mutation applied before a
// publish that lost the optimistic-concurrency race. It assumes
// mutate never applies more than one mutation between load and
// publish.
func compensate(acc *accountaggregate.Account, typ eventlog.EventType, amount int64) {
	switch typ {
	case eventlog.EventDeposit:
		_ = acc.Withdraw(amount)
	case eventlog.EventWithdraw:
		_ = acc.Deposit(amount)
	}
}

// Fetch returns the current snapshot for id, rehydrating from the log
// as needed.
func (s *Service) Fetch(ctx context.Context, id string) (domain.Snapshot, error) {
	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	acc, err := s.load(ctx, id)
	if err != nil {
		return domain.Snapshot{}, err
	}

	return acc.Snapshot(), nil
}

// load returns the cached aggregate for id, advanced by any events on
// the log strictly newer than its last-seen timestamp. If id is not
// cached and the log holds no events for it, load fails with
// domain.ErrNotFound.
func (s *Service) load(ctx context.Context, id string) (*accountaggregate.Account, error) {
	acc, cached := s.cachedAccount(id)
	if !cached {
		acc = accountaggregate.New(id, 0, "")
	}

	events, err := s.log.Get(ctx, s.stream, id, acc.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("accountservice: load %s: %w", id, err)
	}

	if !cached && len(events) == 0 {
		return nil, domain.ErrNotFound
	}

	acc.Rehydrate(events)
	s.storeAccount(id, acc)

	return acc, nil
}

// Close releases the underlying event log connection.
func (s *Service) Close() error {
	return s.log.Close()
}
