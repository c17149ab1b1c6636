package customers

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Create(ctx context.Context, c Customer) (*Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO customers (id, full_name, email, phone, address, city, country, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at
	`, c.ID, c.FullName, c.Email, c.Phone, c.Address, c.City, c.Country, c.Notes)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, address, city, country, notes, created_at, updated_at
		FROM customers WHERE id = $1
	`, id)
	var c Customer
	if err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address,
		&c.City, &c.Country, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, address, city, country, notes, created_at, updated_at
		FROM customers
		ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address,
			&c.City, &c.Country, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, c Customer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET full_name=$2, email=$3, phone=$4, address=$5, city=$6, country=$7, notes=$8, updated_at=NOW()
		WHERE id=$1
	`, c.ID, c.FullName, c.Email, c.Phone, c.Address, c.City, c.Country, c.Notes)
	return err
}
