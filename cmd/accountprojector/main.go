// Command accountprojector drains the account event stream and
// applies events to the materialized view store until terminated.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/joeywhelan/redisStreamEventStore/internal/accountprojector"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
	"github.com/joeywhelan/redisStreamEventStore/internal/middleware"
	"github.com/joeywhelan/redisStreamEventStore/internal/viewstore"
	"github.com/joeywhelan/redisStreamEventStore/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := viewstore.NewMongoStore(ctx, config.MongoURI, config.MongoDatabase, config.MongoCollection, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to view store")
	}

	eventLog := eventlog.NewRedisClient(config.RedisAddr(), logger)

	projector := accountprojector.New(
		eventLog, store, config.StreamName, config.ReadInterval, config.PendingInterval, logger,
	)

	if err := projector.Connect(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot connect projector")
	}

	logger.Info().Msg("ACCOUNT PROJECTOR HAS STARTED")

	<-ctx.Done()

	logger.Info().Msg("ACCOUNT PROJECTOR SHUTTING DOWN")

	if err := projector.Close(); err != nil {
		logger.Error().Err(err).Msg("error during projector shutdown")
	}

	if err := store.Close(context.Background()); err != nil {
		logger.Error().Err(err).Msg("error closing view store")
	}
}
