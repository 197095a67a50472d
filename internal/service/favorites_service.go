package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"estate-catalog/internal/domain"
	"estate-catalog/internal/repository"
)

// FavoritesService tracks the listing ids the viewer has marked on this
// device. Membership is a set, but insertion order is kept for stable display.
type FavoritesService struct {
	binding repository.Binding
	logger  *logrus.Logger
	ids     []string
}

func NewFavoritesService(ctx context.Context, binding repository.Binding, logger *logrus.Logger) *FavoritesService {
	return &FavoritesService{
		binding: binding,
		logger:  logger,
		ids:     repository.Load(ctx, logger, binding, keyFavorites, []string{}),
	}
}

// Toggle adds the id when absent and removes it when present, so a repeated
// toggle restores the previous state. Ids are not checked against the listing
// collection: a stale reference is tolerated and dereferences to nothing.
func (s *FavoritesService) Toggle(ctx context.Context, id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.persist(ctx)
			return
		}
	}
	s.ids = append(s.ids, id)
	s.persist(ctx)
}

// Remove drops the id if present. Hard delete uses it to purge references.
func (s *FavoritesService) Remove(ctx context.Context, id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

func (s *FavoritesService) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a snapshot of the marked ids in insertion order.
func (s *FavoritesService) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Resolve maps the marked ids onto the given collection, skipping stale
// references to listings that no longer exist.
func (s *FavoritesService) Resolve(listings []domain.Listing) []domain.Listing {
	byID := make(map[string]domain.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	out := make([]domain.Listing, 0, len(s.ids))
	for _, id := range s.ids {
		if l, ok := byID[id]; ok {
			out = append(out, l.Clone())
		}
	}
	return out
}

func (s *FavoritesService) persist(ctx context.Context) {
	repository.Save(ctx, s.logger, s.binding, keyFavorites, s.ids)
}
