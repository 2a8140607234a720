package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

const partsTable = "parts"

var partColumns = []string{"id", "name", "image", "price", "type", "retailer", "specifications", "created_at"}

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db DB
	sb sq.StatementBuilderType
}

func NewPartRepository(db DB) *repository {
	return &repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) listQuery() sq.SelectBuilder {
	return r.sb.Select(partColumns...).From(partsTable).OrderBy("created_at DESC")
}

func (r *repository) byTypeQuery(t models.ComponentType) sq.SelectBuilder {
	return r.sb.Select(partColumns...).From(partsTable).
		Where(sq.Eq{"type": string(t)}).
		OrderBy("price ASC")
}

func (r *repository) compareQuery(name string) sq.SelectBuilder {
	return r.sb.Select("name", "price", "retailer").From(partsTable).
		Where(sq.ILike{"name": "%" + name + "%"}).
		OrderBy("price ASC")
}

func (r *repository) List(ctx context.Context) ([]*models.Component, error) {
	return r.queryParts(ctx, r.listQuery())
}

func (r *repository) ByType(ctx context.Context, t models.ComponentType) ([]*models.Component, error) {
	return r.queryParts(ctx, r.byTypeQuery(t))
}

func (r *repository) ByID(ctx context.Context, id int64) (*models.Component, error) {
	q := r.sb.Select(partColumns...).From(partsTable).Where(sq.Eq{"id": id})
	return r.queryPart(ctx, q)
}

func (r *repository) ComparePrices(ctx context.Context, name string) ([]models.PriceQuote, error) {
	sqlStr, args, err := r.compareQuery(name).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []models.PriceQuote{}
	for rows.Next() {
		var (
			q        models.PriceQuote
			retailer *string
		)
		if err := rows.Scan(&q.Name, &q.Price, &retailer); err != nil {
			return nil, err
		}
		q.Retailer = deref(retailer)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *repository) Create(ctx context.Context, c *models.Component) (*models.Component, error) {
	specs, err := specificationsOf(c)
	if err != nil {
		return nil, err
	}

	q := r.sb.
		Insert(partsTable).
		Columns("name", "price", "image", "type", "retailer", "specifications").
		Values(c.Name, c.Price, nullable(c.Image), string(c.Type), nullable(c.Retailer), specs).
		Suffix(returningAll())

	return r.queryPart(ctx, q)
}

func (r *repository) Update(ctx context.Context, c *models.Component) (*models.Component, error) {
	specs, err := specificationsOf(c)
	if err != nil {
		return nil, err
	}

	q := r.sb.
		Update(partsTable).
		SetMap(sq.Eq{
			"name":           c.Name,
			"price":          c.Price,
			"image":          nullable(c.Image),
			"type":           string(c.Type),
			"retailer":       nullable(c.Retailer),
			"specifications": specs,
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returningAll())

	return r.queryPart(ctx, q)
}

func (r *repository) Delete(ctx context.Context, id int64) (*models.Component, error) {
	q := r.sb.
		Delete(partsTable).
		Where(sq.Eq{"id": id}).
		Suffix(returningAll())

	return r.queryPart(ctx, q)
}

func returningAll() string {
	return "RETURNING " + strings.Join(partColumns, ", ")
}

func (r *repository) queryPart(ctx context.Context, q sq.Sqlizer) (*models.Component, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	row, err := scanRow(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPartNotFound
		}
		return nil, err
	}
	return toComponent(row)
}

func (r *repository) queryParts(ctx context.Context, q sq.Sqlizer) ([]*models.Component, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Component{}
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		c, err := toComponent(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}
	return out, nil
}

func scanRow(row pgx.Row) (partRow, error) {
	var r partRow
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Image,
		&r.Price,
		&r.Type,
		&r.Retailer,
		&r.Specifications,
		&r.CreatedAt,
	)
	return r, err
}
