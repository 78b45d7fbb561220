// Command accountapi serves the account write-side HTTP edge.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/joeywhelan/redisStreamEventStore/cmd/httpserver"
	"github.com/joeywhelan/redisStreamEventStore/internal/middleware"
	"github.com/joeywhelan/redisStreamEventStore/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server := httpserver.New(logger, config)
	defer server.Close()

	logger.Info().Msg("ACCOUNT API SERVER HAS STARTED")

	addr := fmt.Sprintf(":%d", config.ListenPort)
	if err := server.Engine.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
