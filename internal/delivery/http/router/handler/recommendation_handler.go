package handler

import (
	"log/slog"
	"net/http"

	"caltrack/internal/delivery/http/response"
	"caltrack/internal/domain/entity"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for recommendation handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

// productResponse is the wire shape of one restricted product.
type productResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Calories float64   `json:"calories"`
}

// recommendationResponse is the wire shape of a computed recommendation.
type recommendationResponse struct {
	DailyCalories     float64            `json:"daily_calories"`
	ForbiddenProducts []*productResponse `json:"forbidden_products"`
	Length            int                `json:"length"`
}

func toRecommendationResponse(output *usecase.RecommendationOutput) *recommendationResponse {
	products := make([]*productResponse, 0, len(output.ForbiddenProducts))
	for _, product := range output.ForbiddenProducts {
		products = append(products, toProductResponse(product))
	}

	return &recommendationResponse{
		DailyCalories:     output.DailyCalories,
		ForbiddenProducts: products,
		Length:            output.Length,
	}
}

func toProductResponse(product *entity.Product) *productResponse {
	return &productResponse{
		ID:       product.ID,
		Title:    product.Title,
		Calories: product.Calories,
	}
}

// Recommend handles the public recommendation request. Nothing is persisted.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var input *usecase.RecommendationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Recommend(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecommendationResponse(output), "Recommendation computed successfully")
}

// RecommendForUser handles the authenticated variant, which stores the
// submitted profile before computing.
func (h *RecommendationHandler) RecommendForUser(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input *usecase.RecommendationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.RecommendForUser(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecommendationResponse(output), "Recommendation computed successfully")
}
