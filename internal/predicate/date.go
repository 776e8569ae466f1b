package predicate

import (
	"strconv"
	"strings"
	"time"

	"github.com/devkit-go/devkit/internal/metadata"
)

// unitDurations maps a relative-date unit (singular or plural) to the
// duration of one unit. Month and year use fixed approximations (30 and
// 365 days) since the relative expressions are calendar-approximate by
// design, not calendar-exact.
var unitDurations = map[string]time.Duration{
	"day": 24 * time.Hour, "days": 24 * time.Hour,
	"week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour, "months": 30 * 24 * time.Hour,
	"year": 365 * 24 * time.Hour, "years": 365 * 24 * time.Hour,
}

// ParseDate parses an ISO-8601 date/datetime, a relative expression of the
// form "N {unit} ago", or the keywords "yesterday"/"today". Relative
// expressions resolve against now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	switch lower {
	case "today":
		return now, nil
	case "yesterday":
		return now.Add(-24 * time.Hour), nil
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		return t, nil
	}

	if strings.HasSuffix(lower, "ago") {
		fields := strings.Fields(lower)
		if len(fields) == 3 && fields[2] == "ago" {
			n, err := strconv.Atoi(fields[0])
			if err == nil {
				if dur, ok := unitDurations[fields[1]]; ok {
					return now.Add(-time.Duration(n) * dur), nil
				}
			}
		}
	}

	return time.Time{}, &ParseError{What: "date", Input: s}
}

// MTimeRange accepts entries whose MTime falls within [from, to], inclusive.
// A zero time.Time on either side disables that bound.
func MTimeRange(from, to time.Time) Predicate {
	return func(e metadata.Entry) bool {
		if !from.IsZero() && e.MTime.Before(from) {
			return false
		}
		if !to.IsZero() && e.MTime.After(to) {
			return false
		}
		return true
	}
}
