package core

// Filter is a conjunction of optional constraints used to narrow a
// query. A nil/zero field means no constraint on that dimension; all
// present constraints must hold (logical AND). Bounds are inclusive.
type Filter struct {
	From      *Date
	To        *Date
	Category  string // exact match, case-insensitive
	MinAmount *float64
	MaxAmount *float64
}

// IsZero reports whether the filter constrains nothing, making it
// equivalent to "all records".
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && f.Category == "" &&
		f.MinAmount == nil && f.MaxAmount == nil
}

// Matches reports whether r satisfies every present constraint.
func (f Filter) Matches(r Record) bool {
	if f.From != nil && r.Date.Time.Before(f.From.Time) {
		return false
	}
	if f.To != nil && r.Date.Time.After(f.To.Time) {
		return false
	}
	if f.Category != "" && !equalFoldASCII(f.Category, r.Category) {
		return false
	}
	if f.MinAmount != nil && r.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && r.Amount > *f.MaxAmount {
		return false
	}
	return true
}

// equalFoldASCII compares two strings case-insensitively over ASCII
// letters only, matching SQLite's lower() so this predicate and the
// store's SQL translation agree on every input.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
