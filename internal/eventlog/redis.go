package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// errOptimisticConflict signals that a concurrent publisher changed the
// watched version key between the read and the transaction; it never
// escapes RedisClient.Publish as an error, only as a nil result.
var errOptimisticConflict = errors.New("eventlog: optimistic concurrency loss")

// errVersionKeyMissing signals a non-create publish against an id whose
// version key does not exist on the log. Per the bootstrap rule, only
// version 0 (the create event) may proceed when the key is absent;
// this is a hard error, not a benign conflict, so a key evicted out
// from under a live account does not silently accept a stale version.
var errVersionKeyMissing = errors.New("eventlog: version key missing for non-create publish")

// RedisClient implements Client over Redis Streams. It holds a single
// connection pool (via *redis.Client) and a set of live subscription
// pollers, one per (stream, consumer group) pair.
type RedisClient struct {
	rdb    *redis.Client
	logger zerolog.Logger

	mu   sync.Mutex
	subs map[string]chan struct{}
}

// NewRedisClient returns a Client for addr (host:port). Connections are
// opened lazily on first use.
func NewRedisClient(addr string, logger zerolog.Logger) *RedisClient {
	return &RedisClient{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
		subs:   make(map[string]chan struct{}),
	}
}

func versionKey(id string) string { return "version:" + id }

// AddID implements Client.
func (c *RedisClient) AddID(ctx context.Context, namespace, id string) (bool, error) {
	n, err := c.rdb.SAdd(ctx, namespace, id).Result()
	if err != nil {
		return false, fmt.Errorf("eventlog: add id %q to %q: %w", id, namespace, err)
	}

	return n == 1, nil
}

// Publish implements Client. See spec for the watch/read/compare/
// transact protocol this follows.
func (c *RedisClient) Publish(ctx context.Context, stream string, event Event) (*PublishResult, error) {
	key := versionKey(event.ID)

	var result *PublishResult

	txf := func(tx *redis.Tx) error {
		v, err := tx.Get(ctx, key).Result()

		switch {
		case errors.Is(err, redis.Nil):
			if event.Version != 0 {
				return errVersionKeyMissing
			}
		case err != nil:
			return err
		default:
			current, convErr := strconv.ParseInt(v, 10, 64)
			if convErr != nil {
				return fmt.Errorf("eventlog: parse version key %q: %w", key, convErr)
			}

			if current != event.Version {
				return errOptimisticConflict
			}
		}

		published := event
		published.Version = event.Version + 1

		payload, err := json.Marshal(published)
		if err != nil {
			return fmt.Errorf("eventlog: marshal event: %w", err)
		}

		var incr *redis.IntCmd

		var xadd *redis.StringCmd

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			xadd = pipe.XAdd(ctx, &redis.XAddArgs{
				Stream: stream,
				Values: map[string]interface{}{"event": payload},
			})

			return nil
		})
		if err != nil {
			return err
		}

		newVersion, err := incr.Result()
		if err != nil {
			return err
		}

		timestamp, err := xadd.Result()
		if err != nil {
			return err
		}

		result = &PublishResult{Version: newVersion, Timestamp: timestamp}

		return nil
	}

	err := c.rdb.Watch(ctx, txf, key)

	switch {
	case errors.Is(err, errOptimisticConflict), errors.Is(err, redis.TxFailedErr):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("eventlog: publish %s version %d: %w", event.ID, event.Version, err)
	}

	return result, nil
}

// Get implements Client.
func (c *RedisClient) Get(ctx context.Context, stream, id, sinceTimestamp string) ([]Event, error) {
	start := "-"
	if sinceTimestamp != "" {
		start = "(" + sinceTimestamp
	}

	msgs, err := c.rdb.XRange(ctx, stream, start, "+").Result()
	if err != nil {
		return nil, fmt.Errorf("eventlog: get %s since %q: %w", id, sinceTimestamp, err)
	}

	events := make([]Event, 0, len(msgs))

	for _, m := range msgs {
		e, decErr := decodeMessage(m)
		if decErr != nil {
			return nil, fmt.Errorf("eventlog: decode entry %s: %w", m.ID, decErr)
		}

		if e.ID != id {
			continue
		}

		events = append(events, e)
	}

	return events, nil
}

// Subscribe implements Client.
func (c *RedisClient) Subscribe(
	ctx context.Context, stream, consumerName string, readInterval time.Duration, handler BatchHandler,
) error {
	group := stream + "Group"
	key := stream + "|" + group

	c.mu.Lock()
	if _, exists := c.subs[key]; exists {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if err := c.rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err(); err != nil && !isBusyGroup(err) {
		return fmt.Errorf("eventlog: create group %s on %s: %w", group, stream, err)
	}

	stop := make(chan struct{})

	c.mu.Lock()
	c.subs[key] = stop
	c.mu.Unlock()

	go c.pollLoop(stream, group, consumerName, readInterval, handler, stop)

	return nil
}

func (c *RedisClient) pollLoop(
	stream, group, consumer string, interval time.Duration, handler BatchHandler, stop chan struct{},
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := context.Background()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.pollOnce(ctx, stream, group, consumer, handler)
		}
	}
}

func (c *RedisClient) pollOnce(ctx context.Context, stream, group, consumer string, handler BatchHandler) {
	res, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error().Err(err).Str("stream", stream).Str("group", group).Msg("eventlog: poll failed")
		}

		return
	}

	for _, s := range res {
		if len(s.Messages) == 0 {
			continue
		}

		events := make([]Event, 0, len(s.Messages))

		for _, m := range s.Messages {
			e, decErr := decodeMessage(m)
			if decErr != nil {
				c.logger.Error().Err(decErr).Str("entry_id", m.ID).Msg("eventlog: decode delivered entry")
				continue
			}

			events = append(events, e)
		}

		if len(events) > 0 {
			handler(ctx, events)
		}
	}
}

// Ack implements Client.
func (c *RedisClient) Ack(ctx context.Context, stream, timestamp string) (int64, error) {
	group := stream + "Group"

	n, err := c.rdb.XAck(ctx, stream, group, timestamp).Result()
	if err != nil {
		return 0, fmt.Errorf("eventlog: ack %s on %s: %w", timestamp, stream, err)
	}

	return n, nil
}

// GetPending implements Client.
func (c *RedisClient) GetPending(
	ctx context.Context, stream, consumer string, maxElapsed time.Duration,
) ([]Event, error) {
	group := stream + "Group"

	pending, err := c.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: stream,
		Group:  group,
		Start:  "-",
		End:    "+",
		Count:  1000,
	}).Result()
	if err != nil {
		if isNoGroup(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("eventlog: get pending for %s: %w", stream, err)
	}

	toClaim := make([]string, 0, len(pending))

	for _, p := range pending {
		if p.Idle >= maxElapsed {
			toClaim = append(toClaim, p.ID)
		}
	}

	if len(toClaim) == 0 {
		return nil, nil
	}

	msgs, err := c.rdb.XClaim(ctx, &redis.XClaimArgs{
		Stream:   stream,
		Group:    group,
		Consumer: consumer,
		MinIdle:  maxElapsed,
		Messages: toClaim,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("eventlog: claim pending for %s: %w", stream, err)
	}

	events := make([]Event, 0, len(msgs))

	for _, m := range msgs {
		e, decErr := decodeMessage(m)
		if decErr != nil {
			c.logger.Error().Err(decErr).Str("entry_id", m.ID).Msg("eventlog: decode claimed entry")
			continue
		}

		events = append(events, e)
	}

	return events, nil
}

// Close implements Client.
func (c *RedisClient) Close() error {
	c.mu.Lock()
	for _, stop := range c.subs {
		close(stop)
	}
	c.subs = make(map[string]chan struct{})
	c.mu.Unlock()

	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("eventlog: close: %w", err)
	}

	return nil
}

func decodeMessage(m redis.XMessage) (Event, error) {
	raw, ok := m.Values["event"]
	if !ok {
		return Event{}, errors.New("entry missing \"event\" field")
	}

	s, ok := raw.(string)
	if !ok {
		return Event{}, errors.New("entry \"event\" field is not a string")
	}

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return Event{}, err
	}

	e.Timestamp = m.ID

	return e, nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}

func isNoGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "NOGROUP")
}
