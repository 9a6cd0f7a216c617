package repository

import (
	"context"

	apperrors "promptlink/internal/errors"
	"promptlink/internal/model"
)

// UnconfiguredLinkStore stands in when production mode was selected without
// database settings. The process stays up and every operation reports the
// misconfiguration to the caller instead of the server refusing to boot.
type UnconfiguredLinkStore struct{}

func NewUnconfiguredLinkStore() *UnconfiguredLinkStore {
	return &UnconfiguredLinkStore{}
}

func (s *UnconfiguredLinkStore) Create(ctx context.Context, prompt string) (*model.Link, error) {
	return nil, apperrors.ErrNotConfigured
}

func (s *UnconfiguredLinkStore) Get(ctx context.Context, id string) (*model.Link, error) {
	return nil, apperrors.ErrNotConfigured
}

func (s *UnconfiguredLinkStore) Increment(ctx context.Context, id string) error {
	return apperrors.ErrNotConfigured
}

func (s *UnconfiguredLinkStore) List(ctx context.Context) ([]model.Link, error) {
	return nil, apperrors.ErrNotConfigured
}

func (s *UnconfiguredLinkStore) Delete(ctx context.Context, id string) error {
	return apperrors.ErrNotConfigured
}
