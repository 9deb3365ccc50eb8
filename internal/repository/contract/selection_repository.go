package contract

import (
	"context"

	"soulful-home-be/internal/entity"
)

type SelectionRepository interface {
	// FindAll returns an empty set when nothing was recorded yet.
	FindAll(ctx context.Context) (entity.SelectionSet, error)
	// Upsert replaces the whole entry for questionId.
	Upsert(ctx context.Context, questionId string, selection entity.Selection) error
}
