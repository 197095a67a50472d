package domain

// Coordinate is a geographic point attached to a listing. Both fields are
// always set together; a listing without a location carries no Coordinate at
// all.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing represents a single catalog entry. The collection that owns it is
// ordered newest-first; Removed hides the entry from browsing without
// destroying the record.
type Listing struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Price       float64     `json:"price"`
	Province    string      `json:"province"`
	District    string      `json:"district"`
	AreaSqm     float64     `json:"areaSqm"`
	Rooms       int         `json:"rooms"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	Coord       *Coordinate `json:"coord,omitempty"`
	Removed     bool        `json:"removed"`
}

// Clone returns a deep copy of the listing, so snapshots handed to callers
// share no backing storage with the owning collection.
func (l Listing) Clone() Listing {
	out := l
	out.Images = make([]string, len(l.Images))
	copy(out.Images, l.Images)
	if l.Coord != nil {
		coord := *l.Coord
		out.Coord = &coord
	}
	return out
}
