package service

import (
	"strings"
	"time"
)

var timeOfDayLayouts = []string{
	"3:04:05 pm",
	"3:04:05pm",
	"3:04 pm",
	"3:04pm",
	"3 pm",
	"3pm",
	"15:04:05",
	"15:04",
}

// parseTimeOfDay reads a clock time such as "1:45 pm" or "13:45" and places
// it on the same calendar day as now. The second return value is false when
// the value is empty or does not look like a time of day.
func parseTimeOfDay(value string, now time.Time) (time.Time, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, false
	}
	value = strings.NewReplacer("a.m.", "am", "p.m.", "pm").Replace(value)

	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location()), true
	}
	return time.Time{}, false
}
