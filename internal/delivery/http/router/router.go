// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"caltrack/internal/delivery/http/middleware"
	"caltrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiaryHandler          *handler.DiaryHandler
	SummaryHandler        *handler.SummaryHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	diaryHandler          *handler.DiaryHandler
	summaryHandler        *handler.SummaryHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		diaryHandler:          params.DiaryHandler,
		summaryHandler:        params.SummaryHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public recommendation: pure computation, no identity involved
	e.POST("/recommendations", r.recommendationHandler.Recommend)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/diary", r.diaryHandler.LogConsumption)
		userGroup.GET("/diary", r.diaryHandler.ListConsumption)
		userGroup.DELETE("/diary/:entryID", r.diaryHandler.RemoveConsumption)
		userGroup.GET("/summary", r.summaryHandler.GetDailySummary)
		userGroup.POST("/recommendations", r.recommendationHandler.RecommendForUser)
	}
}
