// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	domainerrors "caltrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the calendar-date format accepted by the date query parameter.
const dateLayout = "2006-01-02"

// parseDate parses the client-supplied date parameter. Plain calendar dates
// are the documented format; full RFC 3339 timestamps are accepted and
// truncated to their day. Anything else is rejected as invalid input.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domainerrors.ErrInvalidDate.WithDetails("date query parameter is required")
	}

	if parsed, err := time.Parse(dateLayout, raw); err == nil {
		return parsed.UTC(), nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}

	return time.Time{}, domainerrors.ErrInvalidDate.WithDetails("unparsable date: " + raw)
}

// userIDFromContext reads the user id the auth middleware verified.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("user id missing from request context")
	}

	return userID, nil
}
