package domain

// SeedListings returns the demo catalog used when no persisted collection
// exists. Ordered newest-first, like the live collection.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:          "7f4c2d7e-9b1a-4f6e-8c3d-2a5b9e0f1c64",
			Title:       "Akçay'da denize yürüme mesafesinde 3+1 yazlık",
			Price:       2850000,
			Province:    "Balıkesir",
			District:    "Akçay",
			AreaSqm:     110,
			Rooms:       4,
			Description: "Site içinde, eşyalı, plaja 5 dakika.",
			Images:      []string{"https://picsum.photos/seed/akcay/800/600"},
			Coord:       &Coordinate{Lat: 39.5773, Lng: 26.9184},
		},
		{
			ID:          "c1a8e3b2-4d6f-4a90-b7e5-8f2c0d9a3e17",
			Title:       "Karşıyaka'da körfez manzaralı 2+1 daire",
			Price:       4200000,
			Province:    "İzmir",
			District:    "Karşıyaka",
			AreaSqm:     95,
			Rooms:       3,
			Description: "Çarşıya yakın, asansörlü binada ara kat.",
			Images:      []string{"https://picsum.photos/seed/karsiyaka/800/600"},
			Coord:       &Coordinate{Lat: 38.4606, Lng: 27.1121},
		},
	}
}
