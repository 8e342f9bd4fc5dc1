package usecase

import (
	"context"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase computes a daily calorie target and a blood-type
// restricted food list from a biometric profile.
type RecommendationUsecase interface {
	// Recommend is the public variant: a pure function of the submitted
	// profile and the catalog.
	Recommend(ctx context.Context, input *RecommendationInput) (*RecommendationOutput, error)

	// RecommendForUser additionally persists the profile as the user's
	// current calculator profile (one per user, overwritten each call)
	// before computing the recommendation.
	RecommendForUser(ctx context.Context, userID uuid.UUID, input *RecommendationInput) (*RecommendationOutput, error)
}

// --- DTOs ---

// RecommendationInput carries the biometric profile of a recommendation
// request. All fields are required; pointers distinguish "absent" from zero.
type RecommendationInput struct {
	Height        *float64 `json:"height" validate:"required"`
	Age           *float64 `json:"age" validate:"required"`
	CurrentWeight *float64 `json:"current_weight" validate:"required"`
	DesiredWeight *float64 `json:"desired_weight" validate:"required"`
	BloodType     *string  `json:"blood_type" validate:"required"`
}

// RecommendationOutput is the computed recommendation.
type RecommendationOutput struct {
	DailyCalories     float64           `json:"dailyCalories"`
	ForbiddenProducts []*entity.Product `json:"forbiddenProducts"`
	Length            int               `json:"length"`
}
