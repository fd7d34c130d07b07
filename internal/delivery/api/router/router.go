// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catermatch/config"
	"catermatch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchHandler    *handler.MatchHandler
	LocationHandler *handler.LocationHandler
	TestHandler     *handler.TestHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	matchHandler    *handler.MatchHandler
	locationHandler *handler.LocationHandler
	testHandler     *handler.TestHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchHandler:    params.MatchHandler,
		locationHandler: params.LocationHandler,
		testHandler:     params.TestHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Matching routes
	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("/:id/match", r.matchHandler.MatchRequest)
		requestsGroup.GET("/:id/matches", r.matchHandler.ListMatches)
	}

	// Location resolver routes
	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.GET("/resolve", r.locationHandler.ResolveLocation)
		locationsGroup.GET("/learned", r.locationHandler.ListLearnedLocations)
		locationsGroup.PUT("/learned", r.locationHandler.PutLearnedLocation)
		locationsGroup.POST("/corrections", r.locationHandler.CreateCorrection)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/normalize", r.testHandler.TestNormalize)
	}
}
