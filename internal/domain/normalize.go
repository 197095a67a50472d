package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultTitle replaces a blank title on create.
	DefaultTitle = "İsimsiz ilan"
	// MaxImages caps the image reference sequence; extras are dropped.
	MaxImages = 25
)

// ListingDraft carries raw create input before normalization. Image references
// arrive already resolved (local content-URL placeholders or external URLs).
type ListingDraft struct {
	Title       string
	Price       float64
	Province    string
	District    string
	AreaSqm     float64
	Rooms       int
	Description string
	Images      []string
	Coord       *Coordinate
}

// NormalizeListing coerces a draft into a valid listing without identity and
// reports every coercion applied. Malformed input is defaulted, never
// rejected: blank title, negative or non-finite numbers, provinces and
// districts outside the taxonomy, oversized image sequences and non-finite
// coordinates all fall back to sane values.
func NormalizeListing(d ListingDraft) (Listing, []string) {
	var coercions []string

	l := Listing{
		Title:       strings.TrimSpace(d.Title),
		Province:    d.Province,
		District:    d.District,
		Rooms:       d.Rooms,
		Description: strings.TrimSpace(d.Description),
	}

	if l.Title == "" {
		l.Title = DefaultTitle
		coercions = append(coercions, "title: blank, used default")
	}

	var ok bool
	if l.Price, ok = sanitizeAmount(d.Price); !ok {
		coercions = append(coercions, "price: invalid, set to 0")
	}
	if l.AreaSqm, ok = sanitizeAmount(d.AreaSqm); !ok {
		coercions = append(coercions, "areaSqm: invalid, set to 0")
	}
	if l.Rooms < 0 {
		l.Rooms = 0
		coercions = append(coercions, "rooms: negative, set to 0")
	}

	if !ValidProvince(l.Province) {
		l.Province = provinces[0].name
		coercions = append(coercions, "province: unknown, reset to "+l.Province)
	}
	if !ValidDistrict(l.Province, l.District) {
		l.District = Districts(l.Province)[0]
		coercions = append(coercions, "district: outside province, reset to "+l.District)
	}

	images := d.Images
	if len(images) > MaxImages {
		coercions = append(coercions, fmt.Sprintf("images: %d references, kept first %d", len(images), MaxImages))
		images = images[:MaxImages]
	}
	l.Images = make([]string, len(images))
	copy(l.Images, images)

	if d.Coord != nil {
		if isFinite(d.Coord.Lat) && isFinite(d.Coord.Lng) {
			l.Coord = &Coordinate{Lat: d.Coord.Lat, Lng: d.Coord.Lng}
		} else {
			coercions = append(coercions, "coord: non-finite, dropped")
		}
	}

	return l, coercions
}

func sanitizeAmount(v float64) (float64, bool) {
	if !isFinite(v) || v < 0 {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
