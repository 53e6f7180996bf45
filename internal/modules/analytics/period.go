package analytics

import "time"

const dateLayout = "2006-01-02"

// ResolveWindow turns a period kind plus optional explicit bounds into an
// inclusive [start, end] date pair. Explicit bounds always win over the
// period default. Weekly is the current ISO week (Monday through Sunday,
// UTC); anything that is not "weekly" gets the current calendar month.
func ResolveWindow(period, start, end string, now time.Time) (string, string, error) {
	now = now.UTC()

	var defStart, defEnd time.Time
	if period == "weekly" {
		offset := (int(now.Weekday()) + 6) % 7
		monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -offset)
		defStart = monday
		defEnd = monday.AddDate(0, 0, 6)
	} else {
		defStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		defEnd = defStart.AddDate(0, 1, -1)
	}

	resolvedStart := defStart.Format(dateLayout)
	resolvedEnd := defEnd.Format(dateLayout)

	if start != "" {
		if _, err := time.Parse(dateLayout, start); err != nil {
			return "", "", ErrValidation
		}
		resolvedStart = start
	}
	if end != "" {
		if _, err := time.Parse(dateLayout, end); err != nil {
			return "", "", ErrValidation
		}
		resolvedEnd = end
	}
	if resolvedStart > resolvedEnd {
		return "", "", ErrValidation
	}
	return resolvedStart, resolvedEnd, nil
}
