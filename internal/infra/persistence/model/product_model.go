// Package model contains the GORM-specific structs that mirror the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The catalog is seeded by an
// external system; this service treats it as read-only.
type ProductModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title    string    `gorm:"type:varchar(255);unique;not null"`
	Calories float64   `gorm:"not null"`

	// Restriction flags per blood group, positional ([0(I), A(II), B(III), AB(IV)]).
	GroupBloodNotAllowed [4]bool `gorm:"type:jsonb;serializer:json;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
