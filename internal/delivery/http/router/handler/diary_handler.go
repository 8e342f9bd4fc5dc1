package handler

import (
	"log/slog"
	"net/http"
	"time"

	"caltrack/internal/delivery/http/response"
	"caltrack/internal/domain/entity"
	"caltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiaryHandler holds dependencies for diary-related handlers.
type DiaryHandler struct {
	uc     usecase.DiaryUsecase
	logger *slog.Logger
}

// NewDiaryHandler is the constructor for DiaryHandler, injected by Fx.
func NewDiaryHandler(uc usecase.DiaryUsecase, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// entryResponse is the wire shape of one diary entry.
type entryResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Weight    float64   `json:"product_weight"`
	Calories  float64   `json:"calories"`
	EatenAt   time.Time `json:"eaten_at"`
}

func toEntryResponse(entry *entity.DiaryEntry) *entryResponse {
	return &entryResponse{
		ID:        entry.ID,
		ProductID: entry.ProductID,
		Weight:    entry.Weight,
		Calories:  entry.Calories,
		EatenAt:   entry.EatenAt,
	}
}

// LogConsumption handles logging a consumed product into today's diary.
func (h *DiaryHandler) LogConsumption(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var input *usecase.LogConsumptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consumption input")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	entry, err := h.uc.LogConsumption(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEntryResponse(entry), "Consumption logged successfully")
}

// ListConsumption handles listing the entries of one calendar day.
func (h *DiaryHandler) ListConsumption(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return err
	}

	entries, err := h.uc.ListConsumption(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	responses := make([]*entryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return response.Success(c, http.StatusOK, responses, "Diary entries retrieved successfully")
}

// RemoveConsumption handles deleting one diary entry.
func (h *DiaryHandler) RemoveConsumption(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(c.Param("entryID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return err
	}

	if err := h.uc.RemoveConsumption(c.Request().Context(), userID, date, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Diary entry removed successfully")
}
