package domain

// The area taxonomy is a static two-level province → district mapping,
// read-only at runtime. Listings must keep district ∈ districts(province).
var provinces = []struct {
	name      string
	districts []string
}{
	{"Balıkesir", []string{"Akçay", "Edremit", "Ayvalık", "Burhaniye", "Bandırma"}},
	{"İstanbul", []string{"Kadıköy", "Beşiktaş", "Üsküdar", "Maltepe"}},
	{"İzmir", []string{"Karşıyaka", "Bornova", "Konak", "Çeşme"}},
	{"Muğla", []string{"Bodrum", "Marmaris", "Fethiye", "Datça"}},
}

// ProvinceNames returns the taxonomy's provinces in display order.
func ProvinceNames() []string {
	names := make([]string, len(provinces))
	for i, p := range provinces {
		names[i] = p.name
	}
	return names
}

// Districts returns the ordered district list of a province, nil when the
// province is unknown.
func Districts(province string) []string {
	for _, p := range provinces {
		if p.name == province {
			out := make([]string, len(p.districts))
			copy(out, p.districts)
			return out
		}
	}
	return nil
}

// ValidProvince reports whether name is a taxonomy province.
func ValidProvince(name string) bool {
	for _, p := range provinces {
		if p.name == name {
			return true
		}
	}
	return false
}

// ValidDistrict reports whether district belongs to province's district set.
func ValidDistrict(province, district string) bool {
	for _, p := range provinces {
		if p.name == province {
			for _, d := range p.districts {
				if d == district {
					return true
				}
			}
			return false
		}
	}
	return false
}
