package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/usecase"
)

// EventService is the read and reload surface the handlers need.
type EventService interface {
	ListEvents(ctx context.Context) ([]event.Summary, error)
	GetCard(ctx context.Context, eventID string) (fight.EventCard, error)
	GetFight(ctx context.Context, eventID, fightKey string) (fight.Breakdown, error)
	Reload(ctx context.Context) error
}

const maxReloadBodyBytes = 4 << 10

type Handler struct {
	events    EventService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(events EventService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		events:    events,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
	}
}

type cardParams struct {
	EventID string `validate:"required,max=128,printascii"`
}

type fightParams struct {
	EventID  string `validate:"required,max=128,printascii"`
	FightKey string `validate:"required,max=256"`
}

type reloadRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events, err := h.events.ListEvents(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, events)
}

func (h *Handler) GetEventCard(w http.ResponseWriter, r *http.Request) {
	params := cardParams{EventID: strings.TrimSpace(r.PathValue("eventID"))}
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventCard", eventAttrs(params.EventID, "")...)
	defer span.End()

	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	card, err := h.events.GetCard(ctx, params.EventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event card failed", "event_id", params.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, card)
}

func (h *Handler) GetFight(w http.ResponseWriter, r *http.Request) {
	params := fightParams{
		EventID:  strings.TrimSpace(r.PathValue("eventID")),
		FightKey: strings.TrimSpace(r.PathValue("fightKey")),
	}
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFight", eventAttrs(params.EventID, params.FightKey)...)
	defer span.End()

	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	breakdown, err := h.events.GetFight(ctx, params.EventID, params.FightKey)
	if err != nil {
		h.logger.WarnContext(ctx, "get fight failed",
			"event_id", params.EventID,
			"fight_key", params.FightKey,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdown)
}

// Reload drops every cached dataset and card. The body is optional.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Reload")
	defer span.End()

	var req reloadRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxReloadBodyBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.events.Reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reload failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	info := requestInfoFromContext(ctx)
	h.logger.InfoContext(ctx, "event data reloaded",
		"reason", req.Reason,
		"request_id", info.ID,
		"client_ip", info.ClientIP,
	)

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "reloaded"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
