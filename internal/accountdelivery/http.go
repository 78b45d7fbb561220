// Package accountdelivery manages the HTTP edge documented as an
// external collaborator: it translates requests into account service
// calls and renders the flat JSON contract that edge exposes.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/joeywhelan/redisStreamEventStore/internal/domain"
	"github.com/joeywhelan/redisStreamEventStore/pkg/errorspkg"
	"github.com/joeywhelan/redisStreamEventStore/pkg/web"
)

// Service provides the service layer interface needed by the account
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, id string) (domain.Snapshot, error)
	Deposit(ctx context.Context, id string, amount int64) (domain.Snapshot, error)
	Withdraw(ctx context.Context, id string, amount int64) (domain.Snapshot, error)
	Fetch(ctx context.Context, id string) (domain.Snapshot, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns an account handler bound to service.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	ID string `json:"id" binding:"required"`
}

type createResponse struct {
	ID string `json:"id"`
}

// Create handles POST /accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(validationError(err)))

		return
	}

	snapshot, err := h.service.Create(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Str("id", req.ID).Msg("accountdelivery: create failed")
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, createResponse{ID: snapshot.ID})
}

type getRequest struct {
	ID string `uri:"id" binding:"required"`
}

type snapshotResponse struct {
	ID        string `json:"id"`
	Version   int64  `json:"version"`
	Timestamp string `json:"timestamp"`
	Funds     int64  `json:"funds"`
}

func toSnapshotResponse(s domain.Snapshot) snapshotResponse {
	return snapshotResponse{ID: s.ID, Version: s.Version, Timestamp: s.Timestamp, Funds: s.Funds}
}

// Get handles GET /accounts/:id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(validationError(err)))

		return
	}

	snapshot, err := h.service.Fetch(ctx, req.ID)
	if err != nil {
		writeFetchError(gctx, l, req.ID, err)
		return
	}

	gctx.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

type mutateResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// Deposit handles POST /accounts/:id/deposits.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.mutate(gctx, h.service.Deposit)
}

// Withdraw handles POST /accounts/:id/withdrawals.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.mutate(gctx, h.service.Withdraw)
}

type mutateFunc func(ctx context.Context, id string, amount int64) (domain.Snapshot, error)

func (h *Handler) mutate(gctx *gin.Context, mutate mutateFunc) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var idReq getRequest
	if err := gctx.ShouldBindUri(&idReq); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(validationError(err)))

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(validationError(err)))

		return
	}

	_, err := mutate(ctx, idReq.ID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrNotFound):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Str("id", idReq.ID).Msg("accountdelivery: mutate failed")
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, mutateResponse{ID: idReq.ID, Amount: req.Amount})
}

func writeFetchError(gctx *gin.Context, l *zerolog.Logger, id string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		l.Error().Err(err).Str("id", id).Msg("accountdelivery: fetch failed")
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func validationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return errors.New(ve[0].Field() + " " + ve[0].Tag())
	}

	return err
}
