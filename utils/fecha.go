package utils

import "time"

// FechaHoraLayout is the wire format the backend expects for appointment
// date-times.
const FechaHoraLayout = "2006-01-02 15:04:05"

func FormatFechaHora(t time.Time) string {
	return t.Format(FechaHoraLayout)
}

func ParseFechaHora(s string) (time.Time, error) {
	return time.Parse(FechaHoraLayout, s)
}

// FromUTCToTimezone converts an appointment time to the clinic's timezone for
// display. Falls back to the UTC time when the timezone name is unknown.
func FromUTCToTimezone(utcTime time.Time, timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return utcTime
	}
	return utcTime.In(loc)
}
