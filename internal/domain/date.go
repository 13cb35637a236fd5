package domain

import "time"

// The portal displays dates as dd/mm/yyyy; normalized dates are ISO
// yyyy-mm-dd strings, with "" meaning absent. ISO strings compare
// chronologically as plain strings, which is how eligibility checks use
// them.

const (
	displayLayout = "02/01/2006"
	isoLayout     = "2006-01-02"
)

// ToISO normalizes a portal display date. Unparsable input normalizes to
// "" (absent), never an error.
func ToISO(display string) string {
	t, err := time.Parse(displayLayout, display)
	if err != nil {
		return ""
	}
	return t.Format(isoLayout)
}

// ParseISO converts a normalized date back to a time.Time. ok is false
// for absent or malformed values.
func ParseISO(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ISODate formats t in the normalized form.
func ISODate(t time.Time) string {
	return t.Format(isoLayout)
}
