package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/jsonutil"
)

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

// parseFilmID normalises a film id path parameter. It writes a 400 response and
// returns false when the id is unusable.
func (app *Application) parseFilmID(w http.ResponseWriter, r *http.Request, raw string) (domain.FilmID, bool) {
	id, err := domain.ParseFilmID(raw)
	if err != nil || id <= 0 {
		app.badRequestResponse(w, r, fmt.Errorf("invalid film id %q", raw))
		return 0, false
	}

	return id, true
}

// getFilm loads a film and writes the matching error response when it cannot.
func (app *Application) getFilm(w http.ResponseWriter, r *http.Request, id domain.FilmID) (*domain.Film, bool) {
	film, err := app.filmRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return film, true
}
