package models

// List names for the two per-user collections.
const (
	ListFavorites = "favorites"
	ListWatchlist = "watchlist"
)

// Supported media types. TMDB calls series "tv" and we keep that name on
// the wire so stored items line up with upstream endpoints.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// IsValidMediaType reports whether t is one of the two supported types.
func IsValidMediaType(t string) bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// IsValidList reports whether name is a known collection list.
func IsValidList(name string) bool {
	return name == ListFavorites || name == ListWatchlist
}

// CollectionItem is a single saved entry: a TMDB id plus its media type.
// Equality is structural over both fields; each user list holds a set of
// these, never duplicates.
type CollectionItem struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
}

// Key returns a stable identifier combining media type and id.
func (c CollectionItem) Key() string {
	return c.MediaType + ":" + c.ID
}

// UserCollections is the read shape for one owner: both sets at once.
// Slices are always non-nil so unknown owners serialize as empty arrays.
type UserCollections struct {
	Favorites []CollectionItem `json:"favorites"`
	Watchlist []CollectionItem `json:"watchlist"`
}

// CollectionUpsert captures the add-request body. The item id arrives as
// loosely-typed JSON from clients (some send numbers), so it is coerced to
// a string during validation.
type CollectionUpsert struct {
	ItemID    any    `json:"itemId"`
	MediaType string `json:"mediaType"`
}
