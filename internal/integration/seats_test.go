package integration_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SeatMapTestSuite struct {
	BaseSuite
}

func TestSeatMapSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(SeatMapTestSuite))
}

type seatMapBody struct {
	FilmId int64  `json:"filmId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Seats  []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"seats"`
	Selection struct {
		SeatNames  []string `json:"seatNames"`
		Count      int      `json:"count"`
		TotalPrice string   `json:"totalPrice"`
	} `json:"selection"`
}

func (b seatMapBody) status(seat string) string {
	for _, s := range b.Seats {
		if s.Name == seat {
			return s.Status
		}
	}

	return ""
}

func seatMapURL(filmId int64) string {
	query := url.Values{}
	query.Set("date", TestShowDate)
	query.Set("time", TestShowTime)

	return fmt.Sprintf("/films/%d/seats?%s", filmId, query.Encode())
}

func (s *SeatMapTestSuite) TestGetSeatMap() {
	scenarios := []Scenario{
		{
			Name:           "returns 404 for unknown film",
			Method:         "GET",
			URL:            seatMapURL(42),
			BeforeTestFunc: setupFilmCatalog,
			ExpectedStatus: 404,
		},
		{
			Name:           "returns a fresh grid without selection",
			Method:         "GET",
			URL:            seatMapURL(TestFilmId),
			BeforeTestFunc: setupFilmCatalog,
			ExpectedStatus: 200,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				body := decodeBody[seatMapBody](t, res)

				assert.Equal(t, int64(TestFilmId), body.FilmId)
				assert.Equal(t, TestShowDate, body.Date)
				assert.Equal(t, TestShowTime, body.Time)
				assert.Equal(t, "available", body.status("A1"))
				assert.Equal(t, "unavailable", body.status("B7"))
				assert.Equal(t, 0, body.Selection.Count)
				assert.Equal(t, "0", body.Selection.TotalPrice)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *SeatMapTestSuite) TestSelectSeatsAndAddToCart() {
	t := s.T()

	setupFilmCatalog(t, s.app)
	clearUserState(t, s.app, TestUserId)

	cookies := s.app.authenticatedUserCookies(t)

	res := s.app.do(t, "POST", fmt.Sprintf("/films/%d/seats/C3/toggle", TestFilmId), "", cookies)
	require.Equal(t, http.StatusNotFound, res.StatusCode, "toggling without an open grid")

	res = s.app.do(t, "GET", seatMapURL(TestFilmId), "", cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	for _, seat := range []string{"C3", "C4", "B7"} {
		res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/seats/%s/toggle", TestFilmId, seat), "", cookies)
		require.Equal(t, http.StatusOK, res.StatusCode, seat)
	}

	grid := decodeBody[seatMapBody](t, res)
	assert.Equal(t, "selected", grid.status("C3"))
	assert.Equal(t, "unavailable", grid.status("B7"), "sold seats ignore toggles")
	assert.Equal(t, []string{"C3", "C4"}, grid.Selection.SeatNames)
	assert.Equal(t, "150000", grid.Selection.TotalPrice)

	res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/seats/Z99/toggle", TestFilmId), "", cookies)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/cart", TestSecondFilmId), "", cookies)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "grid belongs to another film")

	res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/cart", TestFilmId), "", cookies)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	item := decodeBody[map[string]any](t, res)
	assert.Equal(t, float64(2), item["quantity"])
	assert.Equal(t, "150000", item["totalPrice"])
	assert.Equal(t, []any{"C3", "C4"}, item["seatNames"])

	res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/cart", TestFilmId), "", cookies)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "grid is closed after adding to cart")

	res = s.app.do(t, "GET", "/cart", "", cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	cart := decodeBody[map[string]any](t, res)
	assert.Equal(t, float64(1), cart["itemCount"])
	assert.Equal(t, "150000", cart["totalPrice"])
}

func (s *SeatMapTestSuite) TestAddSelectionToCartEmptySelection() {
	t := s.T()

	setupFilmCatalog(t, s.app)
	cookies := s.app.authenticatedUserCookies(t)

	res := s.app.do(t, "GET", seatMapURL(TestFilmId), "", cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = s.app.do(t, "POST", fmt.Sprintf("/films/%d/cart", TestFilmId), "", cookies)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	body := decodeBody[map[string]any](t, res)
	assert.Equal(t, "please select at least one seat", body["message"])
}
