package domain

import (
	"fmt"
	"strings"
)

// BookingKey identifies one physical seat of one showtime.
type BookingKey struct {
	FilmID FilmID
	Date   string
	Time   string
	Seat   string
}

func (k BookingKey) String() string {
	return fmt.Sprintf("seat %s for film %s on %s at %s", k.Seat, k.FilmID, k.Date, k.Time)
}

func BookingKeys(items []CartItem) []BookingKey {
	var keys []BookingKey

	for _, item := range items {
		for _, seat := range item.SeatNames {
			keys = append(keys, BookingKey{
				FilmID: item.FilmID,
				Date:   item.Date,
				Time:   item.Time,
				Seat:   seat,
			})
		}
	}

	return keys
}

type DuplicateBookingError struct {
	Duplicates []BookingKey
}

func (e *DuplicateBookingError) Error() string {
	described := make([]string, len(e.Duplicates))
	for i, k := range e.Duplicates {
		described[i] = k.String()
	}

	return fmt.Sprintf(
		"duplicate seat booking detected: %s selected more than once for the same showtime, please review your cart",
		strings.Join(described, "; "),
	)
}

func (e *DuplicateBookingError) Unwrap() error {
	return ErrDuplicateBooking
}

// ValidateBookings rejects a cart snapshot in which two entries reserve the same
// seat of the same showtime. Duplicates are reported in first-seen order.
func ValidateBookings(items []CartItem) error {
	counts := make(map[BookingKey]int)
	var order []BookingKey

	for _, key := range BookingKeys(items) {
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var duplicates []BookingKey
	for _, key := range order {
		if counts[key] > 1 {
			duplicates = append(duplicates, key)
		}
	}

	if len(duplicates) > 0 {
		return &DuplicateBookingError{Duplicates: duplicates}
	}

	return nil
}
