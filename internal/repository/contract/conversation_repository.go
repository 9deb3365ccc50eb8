package contract

import (
	"context"

	"soulful-home-be/internal/entity"
)

// StartNewRunFunc decides whether a turn opens a new run instead of
// continuing the stored log. It receives an empty log when nothing is
// stored and nil when the stored log is unreadable; returning true then
// discards it.
type StartNewRunFunc func(current entity.ConversationLog) bool

type ConversationRepository interface {
	FindAll(ctx context.Context) (entity.ConversationLog, error)
	// Append stores turn and returns the resulting log.
	Append(ctx context.Context, turn entity.ConversationTurn, startNew StartNewRunFunc) (entity.ConversationLog, error)
	Reset(ctx context.Context) error
}
