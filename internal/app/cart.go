package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	appvalidator "github.com/metinatakli/cinema-ticketing/internal/validator"
)

func (app *Application) GetCart(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	snapshot, err := app.carts.Snapshot(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCartResponse(snapshot), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearCart(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	err := app.carts.Clear(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) StreamCart(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	feed, err := app.carts.Observe(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	streamFeed(app, w, r, "cart", feed, toCartResponse)
}

func (app *Application) AddCartItem(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var input api.CreateCartItemRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filmID, err := domain.ParseFilmID(input.FilmId)
	if err != nil || filmID <= 0 {
		app.validationErrorResponse(w, r, []api.ValidationError{
			{Field: "FilmId", Issue: appvalidator.ErrDefaultInvalid},
		})
		return
	}

	item := domain.CartItem{
		FilmID:        filmID,
		FilmTitle:     input.FilmTitle,
		FilmPosterUrl: input.FilmPosterUrl,
		UnitPrice:     input.Price,
		Date:          input.Date,
		Time:          input.Time,
		SeatNames:     input.SeatNames,
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

	err = app.writeJSON(w, http.StatusCreated, toApiCartItem(added), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) RemoveCartItem(w http.ResponseWriter, r *http.Request, itemId string) {
	userId := app.contextGetUserId(r)

	err := app.carts.RemoveItem(r.Context(), userId, itemId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCartItemNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCartResponse(snapshot domain.CartSnapshot) api.CartResponse {
	items := make([]api.CartItem, len(snapshot.Items))
	for i, item := range snapshot.Items {
		items[i] = toApiCartItem(item)
	}

	return api.CartResponse{
		Items:      items,
		ItemCount:  len(items),
		TotalPrice: snapshot.TotalPrice,
	}
}

func toApiCartItem(item domain.CartItem) api.CartItem {
	return api.CartItem{
		Id:            item.ID,
		FilmId:        int64(item.FilmID),
		FilmTitle:     item.FilmTitle,
		FilmPosterUrl: item.FilmPosterUrl,
		Price:         item.UnitPrice,
		Date:          item.Date,
		Time:          item.Time,
		SeatNames:     item.SeatNames,
		Quantity:      item.Quantity,
		TotalPrice:    item.TotalPrice,
		CreatedAt:     item.CreatedAt,
	}
}
