// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"caltrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiaryNotFound is a domain-specific error returned when a user has no diary.
var ErrDiaryNotFound = errors.New("diary not found")

// ErrEntryNotFound is a domain-specific error returned when a diary entry does not exist.
var ErrEntryNotFound = errors.New("diary entry not found")

// ErrDiaryExists is returned when creating a diary for a user who already has
// one. It only happens when two first logs for the same user race; the loser
// re-reads the winner's diary.
var ErrDiaryExists = errors.New("diary already exists")

// DiaryRepository defines the standard operations for diary persistence.
// The application layer will depend on this interface, not the concrete implementation.
type DiaryRepository interface {
	// FindByUserID retrieves the user's diary with all entries in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Diary, error)

	// FindByUserIDForUpdate retrieves the user's diary and locks it for the
	// duration of the surrounding transaction. Concurrent writers for the same
	// user serialize on this lock, which keeps the per-(product, day) upsert
	// free of duplicates.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Diary, error)

	// Create persists a new, empty diary for a user.
	Create(ctx context.Context, diary *entity.Diary) error

	// UpsertEntry persists a reconciled entry: an existing id is overwritten,
	// a new id is inserted.
	UpsertEntry(ctx context.Context, entry *entity.DiaryEntry) error

	// DeleteEntry removes one entry of the given diary by the entry's own id.
	// Returns ErrEntryNotFound if no row was deleted.
	DeleteEntry(ctx context.Context, diaryID, entryID uuid.UUID) error
}
