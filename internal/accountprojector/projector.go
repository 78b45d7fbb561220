// Package accountprojector drains the account event stream through a
// named consumer group and folds each event into the view store
// idempotently, acknowledging on success and periodically reclaiming
// entries abandoned by a crashed delivery.
package accountprojector

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
	"github.com/joeywhelan/redisStreamEventStore/internal/viewstore"
)

// EventLog is the subset of eventlog.Client the projector needs.
//
//go:generate mockgen -source projector.go -destination projector_mock.go -package accountprojector
type EventLog interface {
	Subscribe(ctx context.Context, stream, consumerName string, readInterval time.Duration, handler eventlog.BatchHandler) error
	Ack(ctx context.Context, stream, timestamp string) (int64, error)
	GetPending(ctx context.Context, stream, consumer string, maxElapsed time.Duration) ([]eventlog.Event, error)
	Close() error
}

// Projector is the Account Projector: a long-running consumer that
// applies delivered events to a viewstore.Store.
type Projector struct {
	log    EventLog
	store  viewstore.Store
	logger zerolog.Logger

	stream          string
	consumerName    string
	readInterval    time.Duration
	pendingInterval time.Duration

	stopSweep chan struct{}
	wg        sync.WaitGroup
}

// New returns a Projector that has not yet connected.
func New(
	log EventLog, store viewstore.Store, stream string,
	readInterval, pendingInterval time.Duration, logger zerolog.Logger,
) *Projector {
	return &Projector{
		log:             log,
		store:           store,
		logger:          logger,
		stream:          stream,
		consumerName:    consumerName(),
		readInterval:    readInterval,
		pendingInterval: pendingInterval,
		stopSweep:       make(chan struct{}),
	}
}

// consumerName derives the stable per-process consumer identity
// "accountProjector:" + host + "_" + pid used to participate in the
// stream's consumer group.
func consumerName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return fmt.Sprintf("accountProjector:%s_%s", host, strconv.Itoa(os.Getpid()))
}

// Connect subscribes to the stream under its consumer group and starts
// the pending-sweep timer.
func (p *Projector) Connect(ctx context.Context) error {
	if err := p.log.Subscribe(ctx, p.stream, p.consumerName, p.readInterval, p.handleBatch); err != nil {
		return fmt.Errorf("accountprojector: subscribe: %w", err)
	}

	p.wg.Add(1)

	go p.sweepLoop()

	return nil
}

func (p *Projector) sweepLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.pendingInterval)
	defer ticker.Stop()

	ctx := context.Background()

	for {
		select {
		case <-p.stopSweep:
			return
		case <-ticker.C:
			p.sweepOnce(ctx)
		}
	}
}

func (p *Projector) sweepOnce(ctx context.Context) {
	events, err := p.log.GetPending(ctx, p.stream, p.consumerName, p.pendingInterval)
	if err != nil {
		p.logger.Error().Err(err).Str("consumer", p.consumerName).Msg("accountprojector: pending sweep failed")
		return
	}

	if len(events) == 0 {
		return
	}

	p.handleBatch(ctx, events)
}

// handleBatch is the batch handler shared by live subscription
// deliveries and pending-sweep reclaims. Every event in the batch is
// applied concurrently; the batch completes when all finish.
func (p *Projector) handleBatch(ctx context.Context, events []eventlog.Event) {
	var wg sync.WaitGroup

	for _, e := range events {
		e := e

		wg.Add(1)

		go func() {
			defer wg.Done()
			p.applyOne(ctx, e)
		}()
	}

	wg.Wait()
}

func (p *Projector) applyOne(ctx context.Context, e eventlog.Event) {
	delta := delta(e)

	if err := p.store.Apply(ctx, e.ID, e.Timestamp, delta); err != nil {
		p.logger.Error().Err(err).Str("id", e.ID).Str("timestamp", e.Timestamp).
			Msg("accountprojector: view store apply failed, leaving entry unacknowledged")
		return
	}

	n, err := p.log.Ack(ctx, p.stream, e.Timestamp)
	if err != nil {
		p.logger.Error().Err(err).Str("id", e.ID).Str("timestamp", e.Timestamp).
			Msg("accountprojector: ack failed")
		return
	}

	if n == 0 {
		p.logger.Warn().Str("id", e.ID).Str("timestamp", e.Timestamp).
			Msg("accountprojector: ack reported zero entries acknowledged")
	}
}

// delta returns the signed funds change event.Type contributes:
// create → 0, deposit → +amount, withdraw → -amount.
func delta(e eventlog.Event) int64 {
	switch e.Type {
	case eventlog.EventDeposit:
		return e.Amount
	case eventlog.EventWithdraw:
		return -e.Amount
	default:
		return 0
	}
}

// Close stops the pending-sweep timer and closes the event log
// connection.
func (p *Projector) Close() error {
	close(p.stopSweep)
	p.wg.Wait()

	return p.log.Close()
}
