// Package location answers hierarchical-membership queries against the
// static division → district → city → area dataset used by the cascading
// address form. Lookups are pure: unknown keys yield empty results, never
// errors, so the form can clear downstream selections freely.
package location

// Coverage is one service-coverage record. Each (division, district) pair
// owns exactly one city and its area list.
type Coverage struct {
	Division string
	District string
	City     string
	Areas    []string
}

// Divisions returns all administrative divisions.
func Divisions() []string {
	out := make([]string, len(divisions))
	copy(out, divisions)
	return out
}

// Districts returns the districts registered under a division.
// Unknown divisions yield an empty slice.
func Districts(division string) []string {
	districts := []string{}
	seen := make(map[string]struct{})
	for _, c := range coverage {
		if c.Division != division {
			continue
		}
		if _, ok := seen[c.District]; ok {
			continue
		}
		seen[c.District] = struct{}{}
		districts = append(districts, c.District)
	}
	return districts
}

// Cities returns the cities for an exact (division, district) pair.
// The dataset maps each pair to at most one city.
func Cities(division, district string) []string {
	for _, c := range coverage {
		if c.Division == division && c.District == district {
			return []string{c.City}
		}
	}
	return []string{}
}

// Areas returns the covered areas for an exact (division, district, city)
// triple, or an empty slice when there is no match.
func Areas(division, district, city string) []string {
	for _, c := range coverage {
		if c.Division == division && c.District == district && c.City == city {
			out := make([]string, len(c.Areas))
			copy(out, c.Areas)
			return out
		}
	}
	return []string{}
}

// ServesArea reports whether the given area is covered under the exact
// (division, district, city) triple.
func ServesArea(division, district, city, area string) bool {
	for _, a := range Areas(division, district, city) {
		if a == area {
			return true
		}
	}
	return false
}
