package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListingKeepsValidDraft(t *testing.T) {
	draft := ListingDraft{
		Title:       "Edremit'te bahçeli müstakil ev",
		Price:       3500000,
		Province:    "Balıkesir",
		District:    "Edremit",
		AreaSqm:     140,
		Rooms:       5,
		Description: "Geniş bahçe, kapalı otopark.",
		Images:      []string{"blob:local-0001", "https://example.com/front.jpg"},
		Coord:       &Coordinate{Lat: 39.5961, Lng: 27.0244},
	}

	listing, coercions := NormalizeListing(draft)

	assert.Empty(t, coercions)
	assert.Equal(t, draft.Title, listing.Title)
	assert.Equal(t, draft.Province, listing.Province)
	assert.Equal(t, draft.District, listing.District)
	assert.Equal(t, draft.Images, listing.Images)
	assert.Equal(t, *draft.Coord, *listing.Coord)
	assert.False(t, listing.Removed)
}

func TestNormalizeListingDefaultsBlankAndInvalidFields(t *testing.T) {
	listing, coercions := NormalizeListing(ListingDraft{
		Title:   "   ",
		Price:   -500,
		AreaSqm: math.NaN(),
		Rooms:   -2,
	})

	assert.Equal(t, DefaultTitle, listing.Title)
	assert.Zero(t, listing.Price)
	assert.Zero(t, listing.AreaSqm)
	assert.Zero(t, listing.Rooms)
	assert.Len(t, coercions, 6) // title, price, area, rooms, province, district
}

func TestNormalizeListingEnforcesDistrictInvariant(t *testing.T) {
	// district from another province resets to the province's first district
	listing, coercions := NormalizeListing(ListingDraft{
		Title:    "Test",
		Province: "İzmir",
		District: "Akçay",
	})

	assert.Equal(t, "İzmir", listing.Province)
	assert.Equal(t, Districts("İzmir")[0], listing.District)
	assert.True(t, ValidDistrict(listing.Province, listing.District))
	assert.NotEmpty(t, coercions)

	// unknown province resets both levels
	listing, _ = NormalizeListing(ListingDraft{Title: "Test", Province: "Atlantis", District: "Akçay"})
	assert.True(t, ValidProvince(listing.Province))
	assert.True(t, ValidDistrict(listing.Province, listing.District))
}

func TestNormalizeListingClampsImages(t *testing.T) {
	images := make([]string, MaxImages+7)
	for i := range images {
		images[i] = "blob:local"
	}

	listing, coercions := NormalizeListing(ListingDraft{
		Title:    "Test",
		Province: "Balıkesir",
		District: "Akçay",
		Images:   images,
	})

	assert.Len(t, listing.Images, MaxImages)
	assert.Len(t, coercions, 1)
}

func TestNormalizeListingDropsNonFiniteCoordinate(t *testing.T) {
	listing, coercions := NormalizeListing(ListingDraft{
		Title:    "Test",
		Province: "Balıkesir",
		District: "Akçay",
		Coord:    &Coordinate{Lat: math.Inf(1), Lng: 27.0},
	})

	assert.Nil(t, listing.Coord)
	assert.Len(t, coercions, 1)
}

func TestTaxonomy(t *testing.T) {
	assert.Contains(t, ProvinceNames(), "Balıkesir")
	assert.Contains(t, Districts("Balıkesir"), "Akçay")
	assert.Nil(t, Districts("Atlantis"))
	assert.True(t, ValidDistrict("Balıkesir", "Akçay"))
	assert.False(t, ValidDistrict("İzmir", "Akçay"))
	assert.False(t, ValidDistrict("Atlantis", "Akçay"))
}
