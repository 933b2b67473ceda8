package department

// All returns the catalog in display order.
func All() []Department {
	out := make([]Department, len(catalog))
	copy(out, catalog)
	return out
}

// Codes returns the department codes, the values ELMS stores on records.
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, d := range catalog {
		codes[i] = d.Code
	}
	return codes
}

// IsValid reports whether code is exactly one of the catalog codes.
func IsValid(code string) bool {
	for _, d := range catalog {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Lookup resolves a code, a full name or a legacy registration id
// ("1", "2", "3") to its department. Matching is exact.
func Lookup(v string) (Department, bool) {
	for _, d := range catalog {
		if v == d.Code || v == d.Name || (d.LegacyID != "" && v == d.LegacyID) {
			return d, true
		}
	}
	return Department{}, false
}

// Count is the number of departments.
func Count() int {
	return len(catalog)
}
