package broadcast

import (
	"fmt"
	"regexp"
	"time"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// minLead is how far in the future a start time must be at minimum.
const minLead = time.Minute

// Normalize converts a (month, day, HH:MM) triple in the current UTC year
// into a concrete instant. A time that lands in the past is not rejected:
// it is clamped forward to now+1m, so callers must use the returned value,
// not their input.
func Normalize(month, day int, hhmm string, now time.Time) (time.Time, error) {
	if !hhmmPattern.MatchString(hhmm) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	hour := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	minute := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')

	now = now.UTC()
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: month=%d day=%d", ErrInvalidCalendarDate, month, day)
	}
	candidate := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject that instead
	if candidate.Month() != time.Month(month) || candidate.Day() != day {
		return time.Time{}, fmt.Errorf("%w: month=%d day=%d", ErrInvalidCalendarDate, month, day)
	}

	if earliest := now.Add(minLead); candidate.Before(earliest) {
		return earliest, nil
	}
	return candidate, nil
}
