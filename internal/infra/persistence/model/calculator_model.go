package model

import (
	"time"

	"github.com/google/uuid"
)

// CalculatorModel mirrors the 'calculators' table. One row per user,
// overwritten in place on every authenticated recommendation request.
type CalculatorModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Height        float64   `gorm:"not null"`
	Age           float64   `gorm:"not null"`
	CurrentWeight float64   `gorm:"not null"`
	DesiredWeight float64   `gorm:"not null"`
	BloodType     int16     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalculatorModel) TableName() string {
	return "calculators"
}
