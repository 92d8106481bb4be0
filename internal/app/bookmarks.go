package app

import (
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

func (app *Application) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	films, err := app.bookmarkRepo.List(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookmarkListResponse(films), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) StreamBookmarks(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	feed, err := app.bookmarkRepo.Observe(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	streamFeed(app, w, r, "bookmarks", feed, toBookmarkListResponse)
}

func (app *Application) GetBookmark(w http.ResponseWriter, r *http.Request, filmId string) {
	userId := app.contextGetUserId(r)

	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	bookmarked, err := app.bookmarkRepo.Contains(r.Context(), userId, id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookmarkStatus(w, r, id, bookmarked)
}

// AddBookmark stores a copy of the film so the list can be rendered without
// going back to the catalog. Adding a film twice keeps a single entry.
func (app *Application) AddBookmark(w http.ResponseWriter, r *http.Request, filmId string) {
	userId := app.contextGetUserId(r)

	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	film, ok := app.getFilm(w, r, id)
	if !ok {
		return
	}

	err := app.bookmarkRepo.Add(r.Context(), userId, *film)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookmarkStatus(w, r, id, true)
}

func (app *Application) RemoveBookmark(w http.ResponseWriter, r *http.Request, filmId string) {
	userId := app.contextGetUserId(r)

	id, ok := app.parseFilmID(w, r, filmId)
	if !ok {
		return
	}

	err := app.bookmarkRepo.Remove(r.Context(), userId, id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookmarkStatus(w, r, id, false)
}

func (app *Application) writeBookmarkStatus(w http.ResponseWriter, r *http.Request, id domain.FilmID, bookmarked bool) {
	resp := api.BookmarkStatusResponse{
		FilmId:     int64(id),
		Bookmarked: bookmarked,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookmarkListResponse(films []domain.Film) api.BookmarkListResponse {
	return api.BookmarkListResponse{
		Films: toFilmSummaries(films),
	}
}
