package app

import (
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

func (app *Application) ListFilms(w http.ResponseWriter, r *http.Request, params api.ListFilmsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	collection := domain.CollectionItems
	if params.Collection != nil {
		collection = domain.FilmCollection(*params.Collection)
	}

	films, err := app.filmRepo.GetByCollection(r.Context(), collection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FilmListResponse{
		Collection: api.FilmCollection(collection),
		Films:      toFilmSummaries(films),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilm(w http.ResponseWriter, r *http.Request, filmId string) {
	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	resp := api.FilmResponse{
		Film: toApiFilm(film),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request, filmId string) {
	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	schedule := domain.NewSchedule(app.now())

	resp := api.ShowtimesResponse{
		FilmId: int64(film.ID),
		Dates:  schedule.Dates,
		Times:  schedule.Times,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toFilmSummaries(films []domain.Film) []api.FilmSummary {
	summaries := make([]api.FilmSummary, len(films))

	for i, film := range films {
		summaries[i] = toFilmSummary(film)
	}

	return summaries
}

func toFilmSummary(film domain.Film) api.FilmSummary {
	return api.FilmSummary{
		Id:        int64(film.ID),
		Title:     film.Title,
		PosterUrl: film.PosterUrl,
		Year:      film.Year,
		Price:     film.Price,
	}
}

func toApiFilm(film *domain.Film) api.Film {
	casts := make([]api.Cast, len(film.Casts))
	for i, c := range film.Casts {
		casts[i] = api.Cast{
			Name:       c.Name,
			PictureUrl: c.PictureUrl,
		}
	}

	genres := film.Genres
	if genres == nil {
		genres = []string{}
	}

	return api.Film{
		Id:          int64(film.ID),
		Title:       film.Title,
		Description: film.Description,
		PosterUrl:   film.PosterUrl,
		TrailerUrl:  film.TrailerUrl,
		Year:        film.Year,
		Runtime:     film.Runtime,
		Imdb:        int64(film.ID),
		Price:       film.Price,
		Genres:      genres,
		Casts:       casts,
	}
}
