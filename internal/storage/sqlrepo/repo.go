package sqlrepo

import (
	"context"
	"database/sql"
	"time"

	"hotel_api/internal/adapters/observability"
	"hotel_api/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct {
	db *sql.DB
	d  Dialect
}

func New(db *sql.DB, d Dialect) *Repo { return &Repo{db: db, d: d} }

func (r *Repo) Insert(ctx context.Context, h domain.NewHotel) (domain.Hotel, error) {
	start := time.Now()
	out, err := r.insert(ctx, h)
	observability.ObserveDB("insert", err, time.Since(start))
	return out, err
}

func (r *Repo) insert(ctx context.Context, h domain.NewHotel) (domain.Hotel, error) {
	args := []any{valStr(h.Name), valF64(h.Price), h.DoingTime}
	if r.d.returning {
		return scanHotel(r.db.QueryRowContext(ctx, r.d.insert, args...))
	}

	res, err := r.db.ExecContext(ctx, r.d.insert, args...)
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return scanHotel(r.db.QueryRowContext(ctx, r.d.selectByID, id))
}

func (r *Repo) List(ctx context.Context) ([]domain.Hotel, error) {
	return r.query(ctx, "list", selectAllSQL)
}

// GetByID returns zero or one rows; a missing id is not an error.
func (r *Repo) GetByID(ctx context.Context, id int64) ([]domain.Hotel, error) {
	return r.query(ctx, "get_by_id", r.d.selectByID, id)
}

// SearchByDate sends a nil date as NULL; both dialects then match no rows.
func (r *Repo) SearchByDate(ctx context.Context, date *string) ([]domain.Hotel, error) {
	return r.query(ctx, "search_by_date", r.d.searchByDate, valStr(date))
}

func (r *Repo) Truncate(ctx context.Context) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, r.d.truncate)
	observability.ObserveDB("truncate", err, time.Since(start))
	return err
}

func (r *Repo) query(ctx context.Context, op, q string, args ...any) ([]domain.Hotel, error) {
	start := time.Now()
	out, err := r.queryRows(ctx, q, args...)
	observability.ObserveDB(op, err, time.Since(start))
	return out, err
}

func (r *Repo) queryRows(ctx context.Context, q string, args ...any) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var h domain.Hotel
	var doingtime sql.NullTime
	if err := s.Scan(&h.ID, &h.Name, &h.Price, &doingtime); err != nil {
		return domain.Hotel{}, err
	}
	if doingtime.Valid {
		t := doingtime.Time
		h.DoingTime = &t
	}
	return h, nil
}
