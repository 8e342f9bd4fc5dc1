package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDailyRate is the reference daily calorie budget applied when no
// deployment override is configured. The biometric profile is stored but does
// not yet influence the budget.
const DefaultDailyRate = 2800

// CalculatorProfile holds the biometric inputs a user submitted with their
// most recent recommendation request. Exactly one profile exists per user;
// each new request overwrites it.
type CalculatorProfile struct {
	ID            uuid.UUID // Unique identifier of the stored profile.
	UserID        uuid.UUID // The owning user; unique across profiles.
	Height        float64   // Height in centimeters.
	Age           float64   // Age in years.
	CurrentWeight float64   // Current weight in kilograms.
	DesiredWeight float64   // Target weight in kilograms.
	BloodType     BloodType // One of the four canonical blood groups.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
