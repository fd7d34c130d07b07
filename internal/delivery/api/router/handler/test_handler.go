package handler

import (
	"net/http"

	"catermatch/internal/delivery/api/response"
	"catermatch/internal/domain/location"

	"github.com/labstack/echo/v4"
)

// TestHandler handles diagnostic endpoints that are only mounted when test routes are enabled
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TestNormalize shows how an input is normalized and segmented before lookup.
func (h *TestHandler) TestNormalize(c echo.Context) error {
	normalized := location.Normalize(c.QueryParam("q"))

	var aliasCity string
	if place, ok := location.LookupAliasInText(normalized); ok {
		aliasCity = place.City
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"normalized": normalized,
		"segments":   location.Segments(normalized),
		"alias_city": aliasCity,
	})
}
