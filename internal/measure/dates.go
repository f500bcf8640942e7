package measure

import (
	"strings"
	"time"
)

// End Date formats seen in Timely and Effective Care exports. The
// two-digit-year form is the primary format CMS ships; the rest are
// fallbacks for hand-edited or re-exported files.
var endDateFormats = []string{
	"1/2/06",
	"1/2/2006",
	"2006-01-02",
	"01-02-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseEndDate attempts each known format in order. ok=false when the input
// is empty or matches none of them.
func ParseEndDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range endDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
