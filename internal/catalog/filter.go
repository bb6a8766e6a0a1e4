package catalog

import "strings"

// ArchiveFilter returns the records whose title, English title, category or
// district contains query, ignoring case. Order follows the input and each
// record appears at most once. An empty query returns the input unchanged.
func ArchiveFilter(records []Specimen, query string) []Specimen {
	if query == "" {
		return records
	}
	needle := strings.ToLower(query)
	out := make([]Specimen, 0, len(records))
	for _, rec := range records {
		if matchesQuery(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesQuery(rec Specimen, needle string) bool {
	fields := [...]string{rec.Title, rec.TitleEn, string(rec.Category), string(rec.District)}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// DistrictFilter returns the records belonging to district. The empty
// district selects everything; DistrictOutskirts selects the whole
// peripheral group.
func DistrictFilter(records []Specimen, district District) []Specimen {
	if district == "" {
		return records
	}
	out := make([]Specimen, 0, len(records))
	for _, rec := range records {
		if district == DistrictOutskirts {
			if rec.District.IsOutskirts() {
				out = append(out, rec)
			}
			continue
		}
		if rec.District == district {
			out = append(out, rec)
		}
	}
	return out
}
