package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catermatch/internal/delivery/api/response"
	"catermatch/internal/domain/entity"
	"catermatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// LearnLocationRequest is the body of admin entries and user corrections.
type LearnLocationRequest struct {
	Alias     string  `json:"alias" validate:"required,max=200"`
	City      string  `json:"city" validate:"required,max=100"`
	Province  string  `json:"province" validate:"max=100"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// LearnedLocationResponse is the public view of a learned alias.
type LearnedLocationResponse struct {
	Alias     string  `json:"alias"`
	City      string  `json:"city"`
	Province  string  `json:"province"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UseCount  int64   `json:"use_count"`
	AddedBy   string  `json:"added_by"`
	LastUsed  string  `json:"last_used,omitempty"`
}

// ResolveLocation previews the resolver for ?q=.
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	q := c.QueryParam("q")
	if strings.TrimSpace(q) == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "q is required")
	}

	resolved := h.locationUC.Resolve(c.Request().Context(), q)

	return response.Success(c, http.StatusOK, resolved)
}

// PutLearnedLocation stores an admin mapping, replacing any earlier one.
func (h *LocationHandler) PutLearnedLocation(c echo.Context) error {
	return h.learn(c, entity.AddedByAdmin, http.StatusOK)
}

// CreateCorrection stores a user correction, replacing any earlier mapping.
func (h *LocationHandler) CreateCorrection(c echo.Context) error {
	return h.learn(c, entity.AddedByUserCorrection, http.StatusCreated)
}

func (h *LocationHandler) learn(c echo.Context, addedBy entity.AddedBy, status int) error {
	var req LearnLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid location input", err.Error())
	}

	learned, err := h.locationUC.LearnLocation(c.Request().Context(), &usecase.LearnLocationInput{
		Alias:     req.Alias,
		City:      req.City,
		Province:  req.Province,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AddedBy:   addedBy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, toLearnedLocationResponse(learned))
}

// ListLearnedLocations returns the most used aliases, ?limit= caps the list.
func (h *LocationHandler) ListLearnedLocations(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be a non-negative integer")
		}
		limit = n
	}

	learned, err := h.locationUC.ListLearnedLocations(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]LearnedLocationResponse, 0, len(learned))
	for _, l := range learned {
		out = append(out, toLearnedLocationResponse(l))
	}

	return response.Success(c, http.StatusOK, out)
}

func toLearnedLocationResponse(l *entity.LearnedLocation) LearnedLocationResponse {
	resp := LearnedLocationResponse{
		Alias:     l.Alias,
		City:      l.City,
		Province:  l.Province,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		UseCount:  l.UseCount,
		AddedBy:   string(l.AddedBy),
	}

	if !l.LastUsed.IsZero() {
		resp.LastUsed = l.LastUsed.UTC().Format(time.RFC3339)
	}

	return resp
}
