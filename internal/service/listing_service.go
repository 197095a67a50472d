package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"estate-catalog/internal/domain"
	"estate-catalog/internal/repository"
)

// ErrForbidden indicates a command that requires a role the caller does not
// hold.
var ErrForbidden = errors.New("forbidden")

// ListingService owns the ordered listing collection, newest first. Every
// mutation is a single in-memory transform followed by one persistence write.
type ListingService struct {
	binding   repository.Binding
	logger    *logrus.Logger
	favorites *FavoritesService
	listings  []domain.Listing
}

func NewListingService(ctx context.Context, binding repository.Binding, favorites *FavoritesService, logger *logrus.Logger) *ListingService {
	return &ListingService{
		binding:   binding,
		logger:    logger,
		favorites: favorites,
		listings:  repository.Load(ctx, logger, binding, keyListings, domain.SeedListings()),
	}
}

// Listings returns a snapshot of the collection, removed entries included.
// Entries are deep copies; mutating them cannot reach store state.
func (s *ListingService) Listings() []domain.Listing {
	out := make([]domain.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out
}

// Get returns a copy of the listing with the given id, if it exists.
func (s *ListingService) Get(id string) (domain.Listing, bool) {
	for _, l := range s.listings {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return domain.Listing{}, false
}

// Create normalizes the draft, assigns a fresh id and prepends the listing so
// the newest entry sorts first without any explicit sort elsewhere. The
// returned slice names every coercion the normalization applied.
func (s *ListingService) Create(ctx context.Context, draft domain.ListingDraft) (domain.Listing, []string) {
	listing, coercions := domain.NormalizeListing(draft)
	listing.ID = uuid.NewString()

	s.listings = append([]domain.Listing{listing}, s.listings...)
	s.persist(ctx)

	s.logger.WithField("id", listing.ID).Debug("listing created")
	return listing.Clone(), coercions
}

// SoftRemove hides a listing from browsing without destroying its record.
// Unknown ids are ignored. The favorites set is untouched.
func (s *ListingService) SoftRemove(ctx context.Context, id string) {
	s.setRemoved(ctx, id, true)
}

// Restore brings a soft-removed listing back into browsing. Unknown ids are
// ignored.
func (s *ListingService) Restore(ctx context.Context, id string) {
	s.setRemoved(ctx, id, false)
}

func (s *ListingService) setRemoved(ctx context.Context, id string, removed bool) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings[i].Removed = removed
			s.persist(ctx)
			return
		}
	}
}

// HardDelete irreversibly removes a listing and purges its id from the
// favorites set. The caller's role is an explicit argument so the admin gate
// is part of the contract rather than ambient state; non-admins get
// ErrForbidden. An unknown id still purges favorites and succeeds.
func (s *ListingService) HardDelete(ctx context.Context, role domain.Role, id string) error {
	if role != domain.RoleAdmin {
		return ErrForbidden
	}

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			s.persist(ctx)
			s.logger.WithField("id", id).Debug("listing hard-deleted")
			break
		}
	}
	s.favorites.Remove(ctx, id)
	return nil
}

func (s *ListingService) persist(ctx context.Context) {
	repository.Save(ctx, s.logger, s.binding, keyListings, s.listings)
}
