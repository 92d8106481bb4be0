package app

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId   = sessionKey("userID")
	SessionKeyGuest    = sessionKey("guest")
	SessionKeySeatGrid = sessionKey("seatGrid")
)

// Seat grids are stored in the session, so the session codec must know them.
func init() {
	gob.Register(domain.SeatGrid{})
}

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// contextGetLogger returns the application logger annotated with the request id
// and, for authenticated requests, the user id.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

	if userId, ok := r.Context().Value(SessionKeyUserId).(int); ok {
		logger = logger.With("user_id", userId)
	}

	return logger
}

func (app *Application) sessionGetSeatGrid(r *http.Request) (domain.SeatGrid, bool) {
	grid, ok := app.sessionManager.Get(r.Context(), SessionKeySeatGrid.String()).(domain.SeatGrid)
	return grid, ok
}
