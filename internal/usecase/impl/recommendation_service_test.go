package impl

import (
	"context"
	"testing"

	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	mockRepo "caltrack/internal/mocks/repository"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recommendationServiceFixtures struct {
	service   usecase.RecommendationUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRecommendationService(txManager, newTestConfig(), newDiscardLogger())

	return recommendationServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func validRecommendationInput() *usecase.RecommendationInput {
	return &usecase.RecommendationInput{
		Height:        floatPtr(180),
		Age:           floatPtr(30),
		CurrentWeight: floatPtr(82),
		DesiredWeight: floatPtr(75),
		BloodType:     strPtr("A(II)"),
	}
}

// restrictedProduct builds a product forbidden for exactly one blood type.
func restrictedProduct(title string, bloodType entity.BloodType) *entity.Product {
	product := &entity.Product{ID: uuid.New(), Title: title, Calories: 100}
	product.GroupBloodNotAllowed[bloodType.Index()] = true

	return product
}

func TestRecommendationService_Recommend_FiltersTruncatesSorts(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()

	// Six products restricted for A(II), interleaved with allowed ones. The
	// first four in catalog order survive the cut, then come back sorted.
	catalog := []*entity.Product{
		restrictedProduct("Zucchini bread", entity.BloodTypeA),
		restrictedProduct("Ice cream", entity.BloodTypeB),
		restrictedProduct("Mango", entity.BloodTypeA),
		restrictedProduct("Bacon", entity.BloodTypeA),
		restrictedProduct("Tomato", entity.BloodTypeA),
		restrictedProduct("Avocado", entity.BloodTypeA),
		restrictedProduct("Cabbage", entity.BloodTypeA),
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindAll(ctx).Return(catalog, nil)
	})

	output, err := fx.service.Recommend(ctx, validRecommendationInput())

	require.NoError(t, err)
	assert.Equal(t, 2800.0, output.DailyCalories)
	assert.Equal(t, 4, output.Length)
	require.Len(t, output.ForbiddenProducts, 4)

	titles := make([]string, 0, len(output.ForbiddenProducts))
	for _, product := range output.ForbiddenProducts {
		titles = append(titles, product.Title)
	}
	assert.Equal(t, []string{"Bacon", "Mango", "Tomato", "Zucchini bread"}, titles)
}

func TestRecommendationService_Recommend_FewerThanLimit(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		restrictedProduct("Milk", entity.BloodType0),
		restrictedProduct("Wheat", entity.BloodType0),
		restrictedProduct("Lentils", entity.BloodTypeAB),
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)
		productRepo.EXPECT().FindAll(ctx).Return(catalog, nil)
	})

	input := validRecommendationInput()
	input.BloodType = strPtr("0(I)")

	output, err := fx.service.Recommend(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Length)
	require.Len(t, output.ForbiddenProducts, 2)
	assert.Equal(t, "Milk", output.ForbiddenProducts[0].Title)
	assert.Equal(t, "Wheat", output.ForbiddenProducts[1].Title)
}

func TestRecommendationService_Recommend_MissingField(t *testing.T) {
	fx := createTestRecommendationService(t)

	input := validRecommendationInput()
	input.Age = nil

	_, err := fx.service.Recommend(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecommendationService_Recommend_UnknownBloodType(t *testing.T) {
	fx := createTestRecommendationService(t)

	input := validRecommendationInput()
	input.BloodType = strPtr("X(V)")

	_, err := fx.service.Recommend(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBloodType))
}

func TestRecommendationService_RecommendForUser_PersistsProfile(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	var saved *entity.CalculatorProfile

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		calculatorRepo := mockRepo.NewMockCalculatorRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CalculatorRepo().Return(calculatorRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		calculatorRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.CalculatorProfile")).
			Run(func(ctx context.Context, profile *entity.CalculatorProfile) {
				saved = profile
			}).
			Return(nil)
		productRepo.EXPECT().FindAll(ctx).Return(nil, nil)
	})

	output, err := fx.service.RecommendForUser(ctx, userID, validRecommendationInput())

	require.NoError(t, err)
	assert.Equal(t, 2800.0, output.DailyCalories)
	assert.Zero(t, output.Length)

	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, 180.0, saved.Height)
	assert.Equal(t, 30.0, saved.Age)
	assert.Equal(t, 82.0, saved.CurrentWeight)
	assert.Equal(t, 75.0, saved.DesiredWeight)
	assert.Equal(t, entity.BloodTypeA, saved.BloodType)
}

func TestRecommendationService_RecommendForUser_InvalidProfileSkipsTx(t *testing.T) {
	fx := createTestRecommendationService(t)

	_, err := fx.service.RecommendForUser(context.Background(), uuid.New(), &usecase.RecommendationInput{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
