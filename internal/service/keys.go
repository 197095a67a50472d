package service

// Storage keys of the four independently persisted roots. Each falls back to
// its own default when missing or corrupt, without affecting the others.
const (
	keyListings  = "listings"
	keyFavorites = "favorites"
	keyUsers     = "users"
	keySession   = "session"
)
