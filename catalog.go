// Package catalog wires the listing, favorites and auth stores behind the
// single command surface a presentation shell consumes. Every command is
// synchronous and runs to completion before the next one; the package does no
// locking and must not be driven from multiple goroutines.
package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"estate-catalog/internal/config"
	"estate-catalog/internal/domain"
	"estate-catalog/internal/repository/sqlite"
	"estate-catalog/internal/service"
)

// Re-exported domain and query types, so callers never import internal
// packages.
type (
	Listing      = domain.Listing
	ListingDraft = domain.ListingDraft
	Coordinate   = domain.Coordinate
	Role         = domain.Role
	FilterQuery  = service.FilterQuery
)

const (
	RoleAnonymous = domain.RoleAnonymous
	RoleUser      = domain.RoleUser
	RoleAdmin     = domain.RoleAdmin

	TabFavorites = service.TabFavorites
)

var (
	ErrDuplicateUser      = service.ErrDuplicateUser
	ErrInvalidCredentials = service.ErrInvalidCredentials
	ErrForbidden          = service.ErrForbidden
)

// Options configures a catalog instance.
type Options struct {
	DatabasePath    string
	AdminUsername   string
	AdminCredential string
	LogLevel        string
}

// LoadOptions reads options from environment variables (prefix ESTATE), an
// optional config file and .env.
func LoadOptions() (Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return Options{}, err
	}
	return Options{
		DatabasePath:    cfg.Database.Path,
		AdminUsername:   cfg.Admin.Username,
		AdminCredential: cfg.Admin.Credential,
		LogLevel:        cfg.Log.Level,
	}, nil
}

// App owns the persisted stores and exposes the command surface.
type App struct {
	logger    *logrus.Logger
	kv        *sqlite.KV
	listings  *service.ListingService
	favorites *service.FavoritesService
	users     *service.UserService
}

// New opens the local store and initializes every persisted root from storage
// or its seeded default: demo listings, empty favorites, a single admin
// account, no session. A nil logger gets a default one; a non-empty
// opts.LogLevel is applied to whichever logger is used.
func New(ctx context.Context, opts Options, logger *logrus.Logger) (*App, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if opts.LogLevel != "" {
		level, err := logrus.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		logger.SetLevel(level)
	}

	kv, err := sqlite.Open(opts.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := kv.Init(ctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("init local store: %w", err)
	}

	favorites := service.NewFavoritesService(ctx, kv, logger)
	listings := service.NewListingService(ctx, kv, favorites, logger)
	users := service.NewUserService(ctx, kv, logger, opts.AdminUsername, opts.AdminCredential)

	return &App{
		logger:    logger,
		kv:        kv,
		listings:  listings,
		favorites: favorites,
		users:     users,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error { return a.kv.Close() }

// CreateListing validates and normalizes the draft, then prepends the new
// listing. The returned slice names every coercion applied.
func (a *App) CreateListing(ctx context.Context, draft ListingDraft) (Listing, []string) {
	return a.listings.Create(ctx, draft)
}

// SoftRemove hides a listing; unknown ids are ignored.
func (a *App) SoftRemove(ctx context.Context, id string) { a.listings.SoftRemove(ctx, id) }

// Restore unhides a listing; unknown ids are ignored.
func (a *App) Restore(ctx context.Context, id string) { a.listings.Restore(ctx, id) }

// HardDelete irreversibly deletes a listing and purges it from favorites. The
// current session's role is resolved and passed into the store explicitly;
// anyone but an admin gets ErrForbidden.
func (a *App) HardDelete(ctx context.Context, id string) error {
	return a.listings.HardDelete(ctx, a.users.CurrentRole(), id)
}

// ToggleFavorite flips the membership of id in the device's favorites set.
func (a *App) ToggleFavorite(ctx context.Context, id string) { a.favorites.Toggle(ctx, id) }

// Register creates an account with role user.
func (a *App) Register(ctx context.Context, username, credential string) error {
	return a.users.Register(ctx, username, credential)
}

// Login binds the session to a matching account.
func (a *App) Login(ctx context.Context, username, credential string) error {
	return a.users.Login(ctx, username, credential)
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) { a.users.Logout(ctx) }

// CurrentRole is the live role of the session holder, RoleAnonymous when none.
func (a *App) CurrentRole() Role { return a.users.CurrentRole() }

// CurrentUsername is the session's username, empty when anonymous.
func (a *App) CurrentUsername() string { return a.users.CurrentUsername() }

// Listings returns the full collection snapshot, removed entries included.
func (a *App) Listings() []Listing { return a.listings.Listings() }

// Favorites returns the marked listing ids in insertion order.
func (a *App) Favorites() []string { return a.favorites.IDs() }

// FavoriteListings resolves the favorites set against the collection. Stale
// ids dereference to nothing and are skipped.
func (a *App) FavoriteListings() []Listing {
	return a.favorites.Resolve(a.listings.Listings())
}

// Filter derives the browsable sequence from current store state.
func (a *App) Filter(q FilterQuery) []Listing {
	return service.Filter(a.listings.Listings(), q, a.favorites.IDs())
}

// Provinces enumerates the area taxonomy for UI pickers.
func Provinces() []string { return domain.ProvinceNames() }

// Districts lists a province's districts, nil for an unknown province.
func Districts(province string) []string { return domain.Districts(province) }
