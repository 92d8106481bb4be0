package domain

import "time"

const (
	ShowtimeDateLayout = "Mon/02/Jan"
	scheduleDays       = 5
)

var showtimeSlots = []string{"10:00 AM", "02:00 PM", "06:30 PM", "09:45 PM"}

type Schedule struct {
	Dates []string
	Times []string
}

// NewSchedule lists the bookable dates starting at from, in the format the
// mobile client shows on its date picker ("Mon/15/Apr").
func NewSchedule(from time.Time) Schedule {
	dates := make([]string, scheduleDays)
	for i := range dates {
		dates[i] = from.AddDate(0, 0, i).Format(ShowtimeDateLayout)
	}

	times := make([]string, len(showtimeSlots))
	copy(times, showtimeSlots)

	return Schedule{
		Dates: dates,
		Times: times,
	}
}
