package repository

import (
	"context"
	"time"

	"promptlink/internal/encoding"
	apperrors "promptlink/internal/errors"
	"promptlink/internal/model"
)

// EphemeralLinkStore is the demo-mode variant. Nothing is stored anywhere:
// the "id" it hands out is the prompt itself, encoded into a URL query
// fragment, so no operation here ever contacts a datastore.
type EphemeralLinkStore struct{}

func NewEphemeralLinkStore() *EphemeralLinkStore {
	return &EphemeralLinkStore{}
}

func (s *EphemeralLinkStore) Create(ctx context.Context, prompt string) (*model.Link, error) {
	return &model.Link{
		ID:        "?q=" + encoding.EncodePrompt(prompt),
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *EphemeralLinkStore) Get(ctx context.Context, id string) (*model.Link, error) {
	return nil, apperrors.ErrUnsupportedInMode
}

func (s *EphemeralLinkStore) Increment(ctx context.Context, id string) error {
	return apperrors.ErrUnsupportedInMode
}

// List reports an empty collection rather than an error so the admin view
// stays usable in demo mode.
func (s *EphemeralLinkStore) List(ctx context.Context) ([]model.Link, error) {
	return []model.Link{}, nil
}

func (s *EphemeralLinkStore) Delete(ctx context.Context, id string) error {
	return apperrors.ErrUnsupportedInMode
}
