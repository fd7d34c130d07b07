package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"catermatch/internal/delivery/api/response"
	"catermatch/internal/domain/entity"
	"catermatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// MatchHandler exposes the matching orchestrator over HTTP.
type MatchHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// MatchListResponse wraps the stored matches of one request.
type MatchListResponse struct {
	RequestID uuid.UUID       `json:"request_id"`
	Matches   []*entity.Match `json:"matches"`
}

// MatchRequest runs matching for an event request. With ?async=true the run is queued
// for the match worker and 202 is returned.
func (h *MatchHandler) MatchRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event request ID")
	}

	async := false
	if raw := c.QueryParam("async"); raw != "" {
		async, err = strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "async must be a boolean")
		}
	}

	ctx := c.Request().Context()

	if async {
		if err := h.matchingUC.RequestMatchingAsync(ctx, requestID); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, map[string]string{
			"request_id": requestID.String(),
			"status":     "queued",
		})
	}

	outcome, err := h.matchingUC.MatchRequest(ctx, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// ListMatches returns the persisted matches of an event request in rank order.
func (h *MatchHandler) ListMatches(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event request ID")
	}

	matches, err := h.matchingUC.ListMatches(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if matches == nil {
		matches = []*entity.Match{}
	}

	return response.Success(c, http.StatusOK, MatchListResponse{
		RequestID: requestID,
		Matches:   matches,
	})
}
