package handler

import (
	"log/slog"
	"net/http"

	"caltrack/internal/delivery/http/response"
	"caltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SummaryHandler holds dependencies for summary-related handlers.
type SummaryHandler struct {
	uc     usecase.SummaryUsecase
	logger *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler, injected by Fx.
func NewSummaryHandler(uc usecase.SummaryUsecase, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// summaryResponse is the wire shape of one daily summary.
type summaryResponse struct {
	Day           string  `json:"day"`
	DailyRate     float64 `json:"daily_rate"`
	DailyConsumed float64 `json:"daily_consumed"`
	DailyLeft     float64 `json:"daily_left"`
	Percentage    float64 `json:"percentage"`
}

// GetDailySummary handles computing and returning the summary of one day.
func (h *SummaryHandler) GetDailySummary(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return err
	}

	record, err := h.uc.GetDailySummary(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &summaryResponse{
		Day:           record.Day.Format(dateLayout),
		DailyRate:     record.DailyRate,
		DailyConsumed: record.DailyConsumed,
		DailyLeft:     record.DailyLeft,
		Percentage:    record.Percentage,
	}, "Daily summary computed successfully")
}
