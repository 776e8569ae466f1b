package predicate

import (
	"strconv"
	"strings"
)

// sizeUnits maps a case-insensitive unit suffix to its byte multiplier.
// Decimal units use powers of 10; binary units use powers of 2. Longer
// suffixes are checked before shorter ones so "kib" is not mistaken for
// a malformed "kb".
var sizeUnits = []struct {
	suffix string
	mult   int64
}{
	{"kib", 1 << 10},
	{"mib", 1 << 20},
	{"gib", 1 << 30},
	{"kb", 1_000},
	{"mb", 1_000_000},
	{"gb", 1_000_000_000},
	{"b", 1},
}

// ParseSize parses a human size expression such as "10MB", "512KiB", or a
// bare number of bytes. Parsing is case-insensitive.
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	for _, u := range sizeUnits {
		if strings.HasSuffix(lower, u.suffix) {
			numPart := strings.TrimSpace(trimmed[:len(trimmed)-len(u.suffix)])
			if numPart == "" {
				continue
			}
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return 0, &ParseError{What: "size", Input: s}
			}
			return int64(n * float64(u.mult)), nil
		}
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &ParseError{What: "size", Input: s}
	}
	return n, nil
}
