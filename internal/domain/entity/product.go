package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item with a calorie density and per-blood-type
// restriction flags. The catalog is maintained elsewhere; this service only
// reads it.
type Product struct {
	ID       uuid.UUID // Unique identifier of the product.
	Title    string    // Display name, unique within the catalog.
	Calories float64   // Calories per 100 grams.

	// GroupBloodNotAllowed flags, indexed by BloodType, whether the product
	// is restricted for that blood group.
	GroupBloodNotAllowed [4]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestrictedFor reports whether the product is restricted for the given
// blood type.
func (p *Product) RestrictedFor(bloodType BloodType) bool {
	if !bloodType.Valid() {
		return false
	}

	return p.GroupBloodNotAllowed[bloodType.Index()]
}
