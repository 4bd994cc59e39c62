package handlers

import (
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

// parseDate parses a YYYY-MM-DD query value in the salon's timezone.
func parseDate(value, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, timezone.Location(tz))
}
