package models

// MediaDetail is an item as returned by the metadata upstream, normalized
// so media_type is always present. Field names mirror the upstream JSON;
// movies populate Title/ReleaseDate, series populate Name/FirstAirDate.
// Not persisted; fetched on demand and held only while a response renders.
type MediaDetail struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	VoteCount    int64   `json:"vote_count,omitempty"`
	Popularity   float64 `json:"popularity,omitempty"`
	GenreIDs     []int64 `json:"genre_ids,omitempty"`
}

// DisplayName returns whichever of the two upstream name fields is set.
func (m MediaDetail) DisplayName() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// BrowsePage is one page of trending or multi-search results.
type BrowsePage struct {
	Results    []MediaDetail `json:"results"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"page"`
}

// CatalogEntry is one row of the built-in browsable catalog. The catalog
// ships with the binary; filtering over it is purely in-memory.
type CatalogEntry struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	AltTitle string   `json:"alt_title,omitempty"`
	Year     int      `json:"year"`
	Status   string   `json:"status"`
	Genres   []string `json:"genres"`
	Studios  []string `json:"studios"`
	Synopsis string   `json:"synopsis,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}
