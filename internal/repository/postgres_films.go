package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresFilmRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFilmRepository(db *pgxpool.Pool) *PostgresFilmRepository {
	return &PostgresFilmRepository{
		db: db,
	}
}

const filmColumns = `f.id, f.title, f.description, f.poster_url, f.trailer_url, f.year, f.runtime,
	f.price, f.genres, f.casts`

func (p *PostgresFilmRepository) GetByCollection(ctx context.Context, collection domain.FilmCollection) ([]domain.Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM film_collections fc
		JOIN films f
			ON fc.film_id = f.id
		WHERE fc.collection = $1
		ORDER BY fc.position, f.id
	`

	rows, err := p.db.Query(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := []domain.Film{}

	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}

		films = append(films, *film)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return films, nil
}

func (p *PostgresFilmRepository) GetById(ctx context.Context, id domain.FilmID) (*domain.Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM films f
		WHERE f.id = $1
	`

	film, err := scanFilm(p.db.QueryRow(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return film, nil
}

func scanFilm(row pgx.Row) (*domain.Film, error) {
	var (
		film  domain.Film
		id    int64
		price pgtype.Numeric
	)

	err := row.Scan(
		&id,
		&film.Title,
		&film.Description,
		&film.PosterUrl,
		&film.TrailerUrl,
		&film.Year,
		&film.Runtime,
		&price,
		&film.Genres,
		&film.Casts,
	)
	if err != nil {
		return nil, err
	}

	film.ID = domain.FilmID(id)
	film.Price = numericToDecimal(price)

	if film.Genres == nil {
		film.Genres = []string{}
	}

	if film.Casts == nil {
		film.Casts = []domain.Cast{}
	}

	return &film, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}
