package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"caltrack/config"
	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/domain/repository"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	txManager repository.TransactionManager
	cfg       *config.Config
	logger    *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// Recommend computes a recommendation from the submitted profile and the
// catalog alone; nothing is persisted.
func (srv *recommendationService) Recommend(ctx context.Context, input *usecase.RecommendationInput) (*usecase.RecommendationOutput, error) {
	bloodType, err := validateProfile(input)
	if err != nil {
		return nil, err
	}

	var output *usecase.RecommendationOutput

	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		computed, err := srv.compute(ctx, repoFactory.ProductRepo(), bloodType)
		if err != nil {
			return err
		}
		output = computed

		return nil
	})

	if txErr != nil {
		return nil, errors.Wrap(txErr, "failed to compute recommendation")
	}

	return output, nil
}

// RecommendForUser persists the profile as the user's current calculator
// profile, then computes the recommendation. The stored profile is overwritten
// on every call; only the most recent one is retained.
func (srv *recommendationService) RecommendForUser(ctx context.Context, userID uuid.UUID, input *usecase.RecommendationInput) (*usecase.RecommendationOutput, error) {
	bloodType, err := validateProfile(input)
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Storing calculator profile", "userID", userID, "bloodType", bloodType)

	var output *usecase.RecommendationOutput

	txErr := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile := &entity.CalculatorProfile{
			UserID:        userID,
			Height:        *input.Height,
			Age:           *input.Age,
			CurrentWeight: *input.CurrentWeight,
			DesiredWeight: *input.DesiredWeight,
			BloodType:     bloodType,
		}
		if err := repoFactory.CalculatorRepo().Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save calculator profile")
		}

		computed, err := srv.compute(ctx, repoFactory.ProductRepo(), bloodType)
		if err != nil {
			return err
		}
		output = computed

		return nil
	})

	if txErr != nil {
		return nil, errors.Wrap(txErr, "failed to compute recommendation")
	}

	return output, nil
}

// compute filters the catalog down to the foods restricted for the blood
// type, truncates to the configured limit and only then sorts by title. The
// truncate-before-sort order is part of the contract: it decides which items
// appear when more than the limit match.
func (srv *recommendationService) compute(ctx context.Context, productRepo repository.ProductRepository, bloodType entity.BloodType) (*usecase.RecommendationOutput, error) {
	products, err := productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	var forbidden []*entity.Product
	for _, product := range products {
		if product.RestrictedFor(bloodType) {
			forbidden = append(forbidden, product)
		}
	}

	if limit := srv.cfg.Recommendation.ForbiddenLimit; len(forbidden) > limit {
		forbidden = forbidden[:limit]
	}
	slices.SortFunc(forbidden, func(a, b *entity.Product) int {
		return strings.Compare(a.Title, b.Title)
	})

	return &usecase.RecommendationOutput{
		DailyCalories:     srv.cfg.Recommendation.DailyRate,
		ForbiddenProducts: forbidden,
		Length:            len(forbidden),
	}, nil
}

// validateProfile checks that all five profile fields are present and that
// the blood type is one of the four canonical codes.
func validateProfile(input *usecase.RecommendationInput) (entity.BloodType, error) {
	if input == nil ||
		input.Height == nil ||
		input.Age == nil ||
		input.CurrentWeight == nil ||
		input.DesiredWeight == nil ||
		input.BloodType == nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("all profile fields are required")
	}

	bloodType, ok := entity.ParseBloodType(*input.BloodType)
	if !ok {
		return 0, domainerrors.ErrInvalidBloodType.WrapMessage("unknown blood type code")
	}

	return bloodType, nil
}
