package repository

import (
	"context"
	"errors"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only view of the product catalog this service
// consumes. The catalog itself is maintained by another system.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves every product in the catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)
}
