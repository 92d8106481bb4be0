package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FilmID is the canonical identifier of a film. Catalog records carry the numeric
// IMDb-style id in different shapes (int, float, string); all of them are
// normalised with ParseFilmID before they reach the stores.
type FilmID int64

// Key is the only string form used when a film id becomes part of a store key.
func (id FilmID) Key() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id FilmID) String() string {
	return id.Key()
}

func ParseFilmID(v any) (FilmID, error) {
	var (
		n   int64
		err error
	)

	switch t := v.(type) {
	case FilmID:
		n = int64(t)
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint32:
		n = int64(t)
	case float64:
		n, err = integralFloat(t)
	case float32:
		n, err = integralFloat(float64(t))
	case json.Number:
		n, err = parseNumericString(t.String())
	case string:
		n, err = parseNumericString(t)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidFilmID, v)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFilmID, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidFilmID)
	}

	return FilmID(n), nil
}

func parseNumericString(s string) (int64, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	return integralFloat(f)
}

func integralFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integral value", f)
	}

	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is out of range", f)
	}

	return int64(f), nil
}

type Cast struct {
	Name       string `json:"name"`
	PictureUrl string `json:"pictureUrl"`
}

type Film struct {
	ID          FilmID
	Title       string
	Description string
	PosterUrl   string
	TrailerUrl  string
	Year        int
	Runtime     string
	Price       decimal.Decimal
	Genres      []string
	Casts       []Cast
}

type FilmCollection string

const (
	CollectionItems    FilmCollection = "items"
	CollectionBanners  FilmCollection = "banners"
	CollectionUpcoming FilmCollection = "upcoming"
)

func (c FilmCollection) Valid() bool {
	switch c {
	case CollectionItems, CollectionBanners, CollectionUpcoming:
		return true
	}

	return false
}

type FilmRepository interface {
	GetByCollection(ctx context.Context, collection FilmCollection) ([]Film, error)
	GetById(ctx context.Context, id FilmID) (*Film, error)
}
