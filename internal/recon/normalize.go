package recon

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeFlag normalizes boolean-like roster text. Only a trimmed,
// case-folded "yes" counts as true; blank, missing, and anything else is
// false. Total by design, it never fails on odd input.
func NormalizeFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// ParseEmployeeID coerces identifier text to the integer join domain.
// Identifiers arrive as plain integers on one feed and as float-looking
// text ("1001.0") on the other; both must land on the same number or the
// join silently yields zero matches. Returns false for empty and
// non-numeric input.
func ParseEmployeeID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
