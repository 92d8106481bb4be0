package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListBookmarks(t *testing.T) {
	tests := []struct {
		name           string
		films          []domain.Film
		listErr        error
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.BookmarkListResponse
	}{
		{
			name:       "bookmarked films",
			films:      []domain.Film{*testFilm},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookmarkListResponse{
				Films: []api.FilmSummary{toFilmSummary(*testFilm)},
			},
		},
		{
			name:       "nothing bookmarked",
			films:      []domain.Film{},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookmarkListResponse{
				Films: []api.FilmSummary{},
			},
		},
		{
			name:           "store error",
			listErr:        errors.New("redis down"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBookmarkRepo)
			if tt.listErr != nil {
				repo.On("List", mock.Anything, 1).Return(nil, tt.listErr)
			} else {
				repo.On("List", mock.Anything, 1).Return(tt.films, nil)
			}

			app := newTestApplication(func(a *Application) {
				a.bookmarkRepo = repo
			})

			w, r := executeRequest(t, http.MethodGet, "/bookmarks", nil)
			r = setupTestSession(t, app, r, 1)

			app.Routes().ServeHTTP(w, r)

			if tt.wantResponse != nil {
				response := decodeResponse[api.BookmarkListResponse](t, w)

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("Mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
			repo.AssertExpectations(t)
		})
	}
}

func TestBookmarkStatusOperations(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		setup          func(*mocks.MockBookmarkRepo)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.BookmarkStatusResponse
	}{
		{
			name:   "bookmarked film",
			method: http.MethodGet,
			url:    "/bookmarks/1375666",
			setup: func(m *mocks.MockBookmarkRepo) {
				m.On("Contains", mock.Anything, 1, domain.FilmID(1375666)).Return(true, nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.BookmarkStatusResponse{FilmId: 1375666, Bookmarked: true},
		},
		{
			name:   "string shaped id resolves to the same key",
			method: http.MethodGet,
			url:    "/bookmarks/1375666.0",
			setup: func(m *mocks.MockBookmarkRepo) {
				m.On("Contains", mock.Anything, 1, domain.FilmID(1375666)).Return(false, nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.BookmarkStatusResponse{FilmId: 1375666, Bookmarked: false},
		},
		{
			name:   "add stores the catalog copy",
			method: http.MethodPut,
			url:    "/bookmarks/1375666",
			setup: func(m *mocks.MockBookmarkRepo) {
				m.On("Add", mock.Anything, 1, *testFilm).Return(nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.BookmarkStatusResponse{FilmId: 1375666, Bookmarked: true},
		},
		{
			name:           "add unknown film",
			method:         http.MethodPut,
			url:            "/bookmarks/42",
			setup:          func(m *mocks.MockBookmarkRepo) {},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:   "add store error",
			method: http.MethodPut,
			url:    "/bookmarks/1375666",
			setup: func(m *mocks.MockBookmarkRepo) {
				m.On("Add", mock.Anything, 1, *testFilm).Return(errors.New("redis down"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			url:    "/bookmarks/1375666",
			setup: func(m *mocks.MockBookmarkRepo) {
				m.On("Remove", mock.Anything, 1, domain.FilmID(1375666)).Return(nil)
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.BookmarkStatusResponse{FilmId: 1375666, Bookmarked: false},
		},
		{
			name:           "invalid id",
			method:         http.MethodDelete,
			url:            "/bookmarks/abc",
			setup:          func(m *mocks.MockBookmarkRepo) {},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `invalid film id "abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBookmarkRepo)
			tt.setup(repo)

			app := newTestApplication(withFilm(testFilm), func(a *Application) {
				a.bookmarkRepo = repo
			})

			w, r := executeRequest(t, tt.method, tt.url, nil)
			r = setupTestSession(t, app, r, 1)

			app.Routes().ServeHTTP(w, r)

			if tt.wantResponse != nil {
				response := decodeResponse[api.BookmarkStatusResponse](t, w)

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("Mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
			repo.AssertExpectations(t)
		})
	}
}

func TestStreamBookmarks(t *testing.T) {
	updates := make(chan []domain.Film, 2)
	updates <- []domain.Film{}

	closed := make(chan struct{})
	feed := domain.NewFeed(updates, func() error {
		close(closed)
		return nil
	})

	repo := new(mocks.MockBookmarkRepo)
	repo.On("Observe", mock.Anything, 1).Return(feed, nil)

	app := newTestApplication(func(a *Application) {
		a.bookmarkRepo = repo
	})

	srv := httptest.NewServer(app.Routes())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/bookmarks/events", nil)
	require.NoError(t, err)
	req.AddCookie(authenticatedCookie(t, app, 1))

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	events := make(chan sseEvent, 4)
	go readEvents(bufio.NewReader(resp.Body), events)

	first := nextBookmarkEvent(t, events)
	assert.Empty(t, first.Films)

	updates <- []domain.Film{*testFilm}

	second := nextBookmarkEvent(t, events)
	require.Len(t, second.Films, 1)
	assert.Equal(t, int64(1375666), second.Films[0].Id)

	cancel()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("feed was not closed after the client left")
	}

	repo.AssertExpectations(t)
}

func nextBookmarkEvent(t *testing.T, events <-chan sseEvent) api.BookmarkListResponse {
	t.Helper()

	select {
	case ev, ok := <-events:
		require.True(t, ok, "stream ended")
		require.Equal(t, "bookmarks", ev.name)

		var resp api.BookmarkListResponse
		require.NoError(t, json.Unmarshal([]byte(ev.data), &resp))
		return resp

	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bookmark event")
	}

	return api.BookmarkListResponse{}
}
