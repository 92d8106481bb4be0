package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/app"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"updatedAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for i := range cookies {
		req.AddCookie(&cookies[i])
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, elem := range nested {
				if obj, ok := elem.(map[string]any); ok {
					cleanMap(obj)
				}
			}
		}
	}
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

// do serves a single request against the application, for flows that span
// several calls sharing one session.
func (a *TestApp) do(t testing.TB, method, path, body string, cookies []http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := prepareRequest(method, path, reader, nil, cookies)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	t.Cleanup(func() { res.Body.Close() })

	return res
}

// authenticatedUserCookies stores a signed-in session for TestUserId directly
// in Redis and returns the cookie that refers to it.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	return a.sessionCookies(t, TestUserId)
}

func (a *TestApp) sessionCookies(t testing.TB, userId int) []http.Cookie {
	t.Helper()

	sm := a.SessionManager

	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)

	sm.Put(ctx, app.SessionKeyUserId.String(), userId)

	token, _, err := sm.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: sm.Cookie.Name, Value: token}}
}

func defaultTestUser(t testing.TB) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:  TestUserName,
		Email: TestUserEmail,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	return user
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, user *domain.User) {
	t.Helper()

	query := `INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := db.QueryRow(context.Background(), query, user.Name, user.Email, user.Password.Hash).
		Scan(&user.ID, &user.CreatedAt)
	require.NoError(t, err)
}

func insertTestFilm(t testing.TB, db *pgxpool.Pool, id int64, title, price string, collections ...domain.FilmCollection) {
	t.Helper()

	casts := `[{"name": "Leonardo DiCaprio", "pictureUrl": "https://example.com/leo.jpg"}]`

	_, err := db.Exec(context.Background(), `
		INSERT INTO films (id, title, description, poster_url, trailer_url, year, runtime, price, genres, casts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10::jsonb)`,
		id, title, TestFilmDescription, TestFilmPosterUrl, TestFilmTrailerUrl,
		TestFilmYear, TestFilmRuntime, price, TestFilmGenres, casts,
	)
	require.NoError(t, err)

	for i, collection := range collections {
		_, err = db.Exec(context.Background(),
			`INSERT INTO film_collections (collection, film_id, position) VALUES ($1, $2, $3)`,
			string(collection), id, i)
		require.NoError(t, err)
	}
}

func setupFilmCatalog(t testing.TB, app *TestApp) {
	t.Helper()

	truncateFilms(t, app.DB)
	insertTestFilm(t, app.DB, TestFilmId, TestFilmTitle, TestFilmPrice, domain.CollectionItems, domain.CollectionBanners)
	insertTestFilm(t, app.DB, TestSecondFilmId, TestSecondFilmTitle, "90000", domain.CollectionItems)
}

func truncateUsers(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func truncateFilms(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE films RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

// clearUserState drops the Redis-held cart and bookmarks of a user. Sessions
// are left alone so cookies built for a scenario stay valid.
func clearUserState(t testing.TB, a *TestApp, userId int) {
	t.Helper()

	err := a.Redis.Del(context.Background(),
		fmt.Sprintf("cart:%d", userId),
		fmt.Sprintf("bookmarks:%d", userId),
	).Err()
	require.NoError(t, err)
}

func cartItemBody(filmId any, seats ...string) string {
	body := map[string]any{
		"filmId":        filmId,
		"filmTitle":     TestFilmTitle,
		"filmPosterUrl": TestFilmPosterUrl,
		"price":         TestFilmPrice,
		"date":          TestShowDate,
		"time":          TestShowTime,
		"seatNames":     seats,
	}

	data, _ := json.Marshal(body)
	return string(data)
}
