package viewstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/joeywhelan/redisStreamEventStore/pkg/configpkg"
)

// testStore dials the MongoDB instance named by ../../configs/app.env.
// Skipped, not failed, when no Mongo is reachable so unit test runs
// that don't have the docker-compose stack up still pass.
func testStore(t *testing.T) *MongoStore {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Skipf("viewstore: cannot load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, config.MongoURI, config.MongoDatabase, fmt.Sprintf("testviews-%d", time.Now().UnixNano()), zerolog.Nop())
	if err != nil {
		t.Skipf("viewstore: mongo unreachable: %v", err)
	}

	t.Cleanup(func() {
		_ = s.coll.Drop(context.Background())
		_ = s.Close(context.Background())
	})

	return s
}

func TestMongoStore_ApplyCreatesRecordOnFirstEvent(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	ctx := context.Background()

	err := s.Apply(ctx, "acct-1", "1-0", 0)
	require.NoError(t, err)

	rec, err := s.Get(ctx, "acct-1")
	require.NoError(t, err)
	require.Equal(t, int64(0), rec.Funds)
	require.ElementsMatch(t, []string{"1-0"}, rec.Timestamps)
}

func TestMongoStore_ApplyAccumulatesDeltas(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Apply(ctx, "acct-2", "1-0", 0))
	require.NoError(t, s.Apply(ctx, "acct-2", "2-0", 100))
	require.NoError(t, s.Apply(ctx, "acct-2", "3-0", -30))

	rec, err := s.Get(ctx, "acct-2")
	require.NoError(t, err)
	require.Equal(t, int64(70), rec.Funds)
	require.ElementsMatch(t, []string{"1-0", "2-0", "3-0"}, rec.Timestamps)
}

func TestMongoStore_ApplyIsIdempotentOnRedelivery(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Apply(ctx, "acct-3", "1-0", 0))
	require.NoError(t, s.Apply(ctx, "acct-3", "2-0", 50))

	// Re-deliver the same event; funds must not double-apply.
	require.NoError(t, s.Apply(ctx, "acct-3", "2-0", 50))

	rec, err := s.Get(ctx, "acct-3")
	require.NoError(t, err)
	require.Equal(t, int64(50), rec.Funds)
	require.ElementsMatch(t, []string{"1-0", "2-0"}, rec.Timestamps)
}

func TestMongoStore_GetNotFound(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	_, err := s.Get(context.Background(), "ghost")
	require.Error(t, err)
}
