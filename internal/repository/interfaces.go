package repository

import (
	"context"

	"promptlink/internal/model"
)

// LinkStore is the mode-selected persistence contract behind the handlers.
// The process picks one implementation at startup (persisted records in
// production, ephemeral tokens in demo) and every operation goes through
// it; handlers never branch on the mode themselves.
type LinkStore interface {
	Create(ctx context.Context, prompt string) (*model.Link, error)
	Get(ctx context.Context, id string) (*model.Link, error)
	Increment(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Link, error)
	Delete(ctx context.Context, id string) error
}
