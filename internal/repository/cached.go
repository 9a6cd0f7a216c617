package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"promptlink/internal/cache"
	"promptlink/internal/model"
)

// CachedLinkStore wraps a LinkStore with a Redis read cache. Cache failures
// are logged and swallowed: the store underneath stays the source of truth.
type CachedLinkStore struct {
	store LinkStore
	cache *cache.RedisClient
}

func NewCachedLinkStore(store LinkStore, cache *cache.RedisClient) *CachedLinkStore {
	return &CachedLinkStore{
		store: store,
		cache: cache,
	}
}

func (s *CachedLinkStore) Create(ctx context.Context, prompt string) (*model.Link, error) {
	link, err := s.store.Create(ctx, prompt)
	if err != nil {
		return nil, err
	}

	key := s.cache.GetKeyBuilder().Link(link.ID)
	if err := s.cache.Set(ctx, key, link); err != nil {
		logrus.WithError(err).WithField("id", link.ID).Warn("failed to cache link")
	}

	return link, nil
}

func (s *CachedLinkStore) Get(ctx context.Context, id string) (*model.Link, error) {
	key := s.cache.GetKeyBuilder().Link(id)

	var cached model.Link
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if err != cache.ErrCacheMiss {
		logrus.WithError(err).WithField("id", id).Warn("cache read failed")
	}

	link, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, link); err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to cache link")
	}

	return link, nil
}

// Increment invalidates the cached record; the counter lives in the
// database and a stale cached value would undercount clicks on reads.
func (s *CachedLinkStore) Increment(ctx context.Context, id string) error {
	if err := s.store.Increment(ctx, id); err != nil {
		return err
	}

	key := s.cache.GetKeyBuilder().Link(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to invalidate cached link")
	}

	return nil
}

// List always goes to the store: the admin view wants fresh click counts.
func (s *CachedLinkStore) List(ctx context.Context) ([]model.Link, error) {
	return s.store.List(ctx)
}

func (s *CachedLinkStore) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	key := s.cache.GetKeyBuilder().Link(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("id", id).Warn("failed to invalidate cached link")
	}

	return nil
}
