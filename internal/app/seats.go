package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/shopspring/decimal"
)

var errNoSeatGrid = errors.New("no seat map is open for this film, please choose a showtime first")

// GetSeatMap opens a fresh grid for the requested showtime and keeps it in the
// session. Any grid opened earlier is discarded.
func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request, filmId string, params api.GetSeatMapParams) {
	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	grid := domain.NewSeatGrid(film.ID, params.Date, params.Time)
	app.sessionManager.Put(r.Context(), SessionKeySeatGrid.String(), grid)

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(grid, film.Price), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ToggleSeat(w http.ResponseWriter, r *http.Request, filmId string, seatName string) {
	logger := app.contextGetLogger(r)

	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	grid, ok := app.sessionGetSeatGrid(r)
	if !ok || grid.FilmID != id {
		app.notFoundResponseWithErr(w, r, errNoSeatGrid)
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	next, err := grid.Toggle(seatName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if seat, _ := next.Seat(seatName); seat.Status == domain.SeatUnavailable {
		logger.Debug("toggle ignored for unavailable seat", "seat", seatName)
	}

	app.sessionManager.Put(r.Context(), SessionKeySeatGrid.String(), next)

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(next, film.Price), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AddSelectionToCart turns the open grid's selection into a cart item and
// closes the grid.
func (app *Application) AddSelectionToCart(w http.ResponseWriter, r *http.Request, filmId string) {
	logger := app.contextGetLogger(r)
	userId := app.contextGetUserId(r)

	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	grid, ok := app.sessionGetSeatGrid(r)
	if !ok || grid.FilmID != id {
		app.notFoundResponseWithErr(w, r, errNoSeatGrid)
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	item, err := domain.NewCartItemFromGrid(*film, grid)
	if err != nil {
		logger.Warn("selection rejected", "error", err)
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	added, err := app.carts.AddItem(r.Context(), userId, item)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySelection), errors.Is(err, domain.ErrShowtimeRequired):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sessionManager.Remove(r.Context(), SessionKeySeatGrid.String())

	err = app.writeJSON(w, http.StatusCreated, toApiCartItem(added), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(grid domain.SeatGrid, price decimal.Decimal) api.SeatMapResponse {
	seats := make([]api.Seat, len(grid.Seats))
	for i, s := range grid.Seats {
		seats[i] = api.Seat{
			Name:   s.Name,
			Row:    s.Row,
			Column: s.Col,
			Status: api.SeatStatus(s.Status),
		}
	}

	selection := grid.Selection()

	return api.SeatMapResponse{
		FilmId: int64(grid.FilmID),
		Date:   grid.Date,
		Time:   grid.Time,
		Seats:  seats,
		Selection: api.SeatSelection{
			SeatNames:  selection.SeatNames,
			Count:      selection.Count,
			TotalPrice: price.Mul(decimal.NewFromInt(int64(selection.Count))),
		},
	}
}
