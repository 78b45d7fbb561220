// Package httpserver wires the account write-side HTTP edge: it owns
// the Redis-backed event log connection, the account service built on
// top of it, and the gin router exposing the contract documented for
// the edge.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/joeywhelan/redisStreamEventStore/internal/accountdelivery"
	"github.com/joeywhelan/redisStreamEventStore/internal/accountservice"
	"github.com/joeywhelan/redisStreamEventStore/internal/eventlog"
	"github.com/joeywhelan/redisStreamEventStore/internal/middleware"
	"github.com/joeywhelan/redisStreamEventStore/pkg/configpkg"
)

// Server holds the event log connection, the router, and config.
type Server struct {
	Log    *eventlog.RedisClient
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close releases the event log connection.
func (s *Server) Close() error {
	return s.Log.Close()
}

// New creates a Server with the account service and its routes wired.
func New(logger zerolog.Logger, config configpkg.Config) *Server {
	log := eventlog.NewRedisClient(config.RedisAddr(), logger)
	accountService := accountservice.New(log, config.StreamName)
	accountHandler := accountdelivery.NewHandler(accountService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.POST("/accounts/:id/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdrawals", accountHandler.Withdraw)

	return &Server{
		Log:    log,
		Engine: engine,
		Config: config,
	}
}
