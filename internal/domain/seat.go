package domain

import (
	"fmt"
	"strconv"
)

type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatSelected    SeatStatus = "selected"
	SeatUnavailable SeatStatus = "unavailable"
)

var (
	seatRows    = []string{"A", "B", "C", "D"}
	seatColumns = 8
)

type Seat struct {
	Name   string
	Row    string
	Col    int
	Status SeatStatus
}

// SeatGrid is the seat map of one showtime. It is a value type: Toggle returns a
// new grid and never mutates the receiver, so grids can be stored in a session
// and compared in tests.
type SeatGrid struct {
	FilmID FilmID
	Date   string
	Time   string
	Seats  []Seat
}

type SeatSelection struct {
	SeatNames []string
	Count     int
}

// NewSeatGrid generates the grid for a showtime. Availability is mocked: row B
// beyond column 5 and every third seat of row D are sold.
func NewSeatGrid(filmID FilmID, date, time string) SeatGrid {
	seats := make([]Seat, 0, len(seatRows)*seatColumns)

	for _, row := range seatRows {
		for col := 1; col <= seatColumns; col++ {
			status := SeatAvailable
			if (row == "B" && col > 5) || (row == "D" && col%3 == 0) {
				status = SeatUnavailable
			}

			seats = append(seats, Seat{
				Name:   row + strconv.Itoa(col),
				Row:    row,
				Col:    col,
				Status: status,
			})
		}
	}

	return SeatGrid{
		FilmID: filmID,
		Date:   date,
		Time:   time,
		Seats:  seats,
	}
}

func (g SeatGrid) Toggle(seatName string) (SeatGrid, error) {
	idx := g.indexOf(seatName)
	if idx < 0 {
		return g, fmt.Errorf("%w: %s", ErrSeatNotFound, seatName)
	}

	next := g
	next.Seats = make([]Seat, len(g.Seats))
	copy(next.Seats, g.Seats)

	switch next.Seats[idx].Status {
	case SeatAvailable:
		next.Seats[idx].Status = SeatSelected
	case SeatSelected:
		next.Seats[idx].Status = SeatAvailable
	case SeatUnavailable:
		// sold seats stay sold
	}

	return next, nil
}

func (g SeatGrid) Seat(seatName string) (Seat, bool) {
	idx := g.indexOf(seatName)
	if idx < 0 {
		return Seat{}, false
	}

	return g.Seats[idx], true
}

func (g SeatGrid) Selection() SeatSelection {
	names := []string{}

	for _, s := range g.Seats {
		if s.Status == SeatSelected {
			names = append(names, s.Name)
		}
	}

	return SeatSelection{
		SeatNames: names,
		Count:     len(names),
	}
}

func (g SeatGrid) indexOf(seatName string) int {
	for i, s := range g.Seats {
		if s.Name == seatName {
			return i
		}
	}

	return -1
}
