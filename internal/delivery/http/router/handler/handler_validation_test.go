package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caltrack/internal/delivery/http/validator"
	"caltrack/internal/domain/entity"
	domainerrors "caltrack/internal/domain/errors"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDiaryUsecase records whether the handler reached the use case.
type stubDiaryUsecase struct {
	called bool
}

func (s *stubDiaryUsecase) LogConsumption(ctx context.Context, userID uuid.UUID, input *usecase.LogConsumptionInput) (*entity.DiaryEntry, error) {
	s.called = true

	return &entity.DiaryEntry{ID: uuid.New(), ProductID: input.ProductID, Weight: input.Weight}, nil
}

func (s *stubDiaryUsecase) RemoveConsumption(ctx context.Context, userID uuid.UUID, date time.Time, entryID uuid.UUID) error {
	s.called = true

	return nil
}

func (s *stubDiaryUsecase) ListConsumption(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.DiaryEntry, error) {
	s.called = true

	return nil, nil
}

// stubRecommendationUsecase records whether the handler reached the use case.
type stubRecommendationUsecase struct {
	called bool
}

func (s *stubRecommendationUsecase) Recommend(ctx context.Context, input *usecase.RecommendationInput) (*usecase.RecommendationOutput, error) {
	s.called = true

	return &usecase.RecommendationOutput{DailyCalories: entity.DefaultDailyRate}, nil
}

func (s *stubRecommendationUsecase) RecommendForUser(ctx context.Context, userID uuid.UUID, input *usecase.RecommendationInput) (*usecase.RecommendationOutput, error) {
	s.called = true

	return &usecase.RecommendationOutput{DailyCalories: entity.DefaultDailyRate}, nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONContext builds an echo context with the real request validator, the
// way the server wires it.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireValidationFailed(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestDiaryHandler_LogConsumption_RejectsMissingProduct(t *testing.T) {
	stub := &stubDiaryUsecase{}
	h := NewDiaryHandler(stub, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/user/diary", `{"product_weight": 150}`)
	c.Set("userID", uuid.New())

	err := h.LogConsumption(c)

	requireValidationFailed(t, err)
	assert.False(t, stub.called)
}

func TestDiaryHandler_LogConsumption_RejectsNonPositiveWeight(t *testing.T) {
	stub := &stubDiaryUsecase{}
	h := NewDiaryHandler(stub, newDiscardLogger())

	body := `{"product_id": "` + uuid.NewString() + `", "product_weight": -20}`
	c, _ := newJSONContext(http.MethodPost, "/user/diary", body)
	c.Set("userID", uuid.New())

	err := h.LogConsumption(c)

	requireValidationFailed(t, err)
	assert.False(t, stub.called)
}

func TestDiaryHandler_LogConsumption_ValidBodyReachesUsecase(t *testing.T) {
	stub := &stubDiaryUsecase{}
	h := NewDiaryHandler(stub, newDiscardLogger())

	body := `{"product_id": "` + uuid.NewString() + `", "product_weight": 150}`
	c, rec := newJSONContext(http.MethodPost, "/user/diary", body)
	c.Set("userID", uuid.New())

	err := h.LogConsumption(c)

	require.NoError(t, err)
	assert.True(t, stub.called)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecommendationHandler_Recommend_RejectsMissingProfileFields(t *testing.T) {
	stub := &stubRecommendationUsecase{}
	h := NewRecommendationHandler(stub, newDiscardLogger())

	// age is absent; the remaining fields alone must not pass.
	c, _ := newJSONContext(http.MethodPost, "/recommendations",
		`{"height": 180, "current_weight": 82, "desired_weight": 75, "blood_type": "A(II)"}`)

	err := h.Recommend(c)

	requireValidationFailed(t, err)
	assert.False(t, stub.called)
}

func TestRecommendationHandler_RecommendForUser_RejectsMissingProfileFields(t *testing.T) {
	stub := &stubRecommendationUsecase{}
	h := NewRecommendationHandler(stub, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/user/recommendations", `{}`)
	c.Set("userID", uuid.New())

	err := h.RecommendForUser(c)

	requireValidationFailed(t, err)
	assert.False(t, stub.called)
}
