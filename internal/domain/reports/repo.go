package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OccupancyRow struct {
	Day          time.Time `json:"day"`
	Reservations int       `json:"reservations"`
}

type UtilizationRow struct {
	VehicleID    string  `json:"id"`
	DisplayName  string  `json:"displayName"`
	Reservations int     `json:"reservations"`
	Hours        float64 `json:"hours"`
}

// ReservationExportRow — строка выгрузки броней (xlsx/csv).
type ReservationExportRow struct {
	Code        string
	Status      string
	PickupAt    time.Time
	DropoffAt   time.Time
	Currency    string
	TotalAmount float64
}

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Occupancy — брони по дням выдачи за последние 14 дней.
func (r *Repo) Occupancy(ctx context.Context) ([]OccupancyRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', pickup_at) AS day, count(*)::int AS reservations
		FROM reservations
		WHERE status IN ('confirmed','closed')
		GROUP BY day
		ORDER BY day DESC
		LIMIT 14
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OccupancyRow
	for rows.Next() {
		var o OccupancyRow
		if err := rows.Scan(&o.Day, &o.Reservations); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Utilization — загрузка каждой машины: число броней и часы аренды.
func (r *Repo) Utilization(ctx context.Context) ([]UtilizationRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.display_name,
		       COUNT(r.id)::int AS reservations,
		       COALESCE(SUM(EXTRACT(EPOCH FROM (r.dropoff_at - r.pickup_at)))/3600, 0) AS hours
		FROM vehicles v
		LEFT JOIN reservation_items i ON i.vehicle_id = v.id
		LEFT JOIN reservations r ON r.id = i.reservation_id
		  AND r.status IN ('confirmed','closed')
		GROUP BY v.id, v.display_name
		ORDER BY v.display_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UtilizationRow
	for rows.Next() {
		var u UtilizationRow
		if err := rows.Scan(&u.VehicleID, &u.DisplayName, &u.Reservations, &u.Hours); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repo) ReservationsForExport(ctx context.Context, limit int) ([]ReservationExportRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT code, status, pickup_at, dropoff_at, currency, total_amount
		FROM reservations
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ReservationExportRow
	for rows.Next() {
		var e ReservationExportRow
		if err := rows.Scan(&e.Code, &e.Status, &e.PickupAt, &e.DropoffAt, &e.Currency, &e.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
