package reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const quoteTTL = 6 * time.Hour

func newCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

type CreateParams struct {
	PickupBranchID  string
	DropoffBranchID string
	PickupAt        time.Time
	DropoffAt       time.Time
	CustomerID      *string
	VehicleID       *string
	VehicleClassID  string
	RatePlanID      *string
	TotalAmount     float64
	Currency        string
	Notes           string
}

// CreateQuote сохраняет расчёт как бронь-inquiry со сроком жизни 6 часов.
func (r *Repo) CreateQuote(ctx context.Context, p CreateParams) (*Reservation, error) {
	expires := time.Now().Add(quoteTTL)
	return r.create(ctx, p, StatusInquiry, newCode("Q"), &expires)
}

// CreateReservation — подтверждённая бронь.
func (r *Repo) CreateReservation(ctx context.Context, p CreateParams) (*Reservation, error) {
	return r.create(ctx, p, StatusConfirmed, newCode("RSV"), nil)
}

func (r *Repo) create(ctx context.Context, p CreateParams, status Status, code string, expires *time.Time) (*Reservation, error) {
	if p.Currency == "" {
		p.Currency = "BAM"
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res := Reservation{
		ID:              uuid.NewString(),
		Code:            code,
		Status:          status,
		PickupBranchID:  p.PickupBranchID,
		DropoffBranchID: p.DropoffBranchID,
		PickupAt:        p.PickupAt,
		DropoffAt:       p.DropoffAt,
		CustomerID:      p.CustomerID,
		RatePlanID:      p.RatePlanID,
		Currency:        p.Currency,
		QuoteExpiresAt:  expires,
		TotalAmount:     p.TotalAmount,
		InternalNotes:   p.Notes,
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO reservations (id, code, status, pickup_branch_id, dropoff_branch_id,
		                          pickup_at, dropoff_at, customer_id, rate_plan_id, currency,
		                          quote_expires_at, total_amount, internal_notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at
	`, res.ID, res.Code, string(res.Status), res.PickupBranchID, res.DropoffBranchID,
		res.PickupAt, res.DropoffAt, res.CustomerID, res.RatePlanID, res.Currency,
		res.QuoteExpiresAt, res.TotalAmount, res.InternalNotes)
	if err := row.Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}

	snapshot, _ := json.Marshal(map[string]any{
		"base":     p.TotalAmount,
		"currency": p.Currency,
	})
	_, err = tx.Exec(ctx, `
		INSERT INTO reservation_items (id, reservation_id, vehicle_id, vehicle_class_id,
		                               starts_at, ends_at, currency, total_amount, price_snapshot)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, uuid.NewString(), res.ID, p.VehicleID, p.VehicleClassID,
		p.PickupAt, p.DropoffAt, p.Currency, p.TotalAmount, snapshot)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, status, pickup_branch_id, dropoff_branch_id, pickup_at, dropoff_at,
		       customer_id, rate_plan_id, currency, quote_expires_at, total_amount,
		       internal_notes, customer_notes, created_at, updated_at
		FROM reservations WHERE id = $1 AND deleted_at IS NULL
	`, id)
	var res Reservation
	var status string
	var internal, customer *string
	if err := row.Scan(&res.ID, &res.Code, &status, &res.PickupBranchID, &res.DropoffBranchID,
		&res.PickupAt, &res.DropoffAt, &res.CustomerID, &res.RatePlanID, &res.Currency,
		&res.QuoteExpiresAt, &res.TotalAmount, &internal, &customer,
		&res.CreatedAt, &res.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	res.Status = Status(status)
	if internal != nil {
		res.InternalNotes = *internal
	}
	if customer != nil {
		res.CustomerNotes = *customer
	}
	return &res, nil
}

// List — список для админки, опционально по статусу.
func (r *Repo) List(ctx context.Context, status string) ([]ListRow, error) {
	q := `
		SELECT r.id, r.code, r.status, r.pickup_at, r.dropoff_at, r.total_amount,
		       i.vehicle_class_id, i.vehicle_id, v.display_name, c.full_name
		FROM reservations r
		LEFT JOIN reservation_items i ON i.reservation_id = r.id
		LEFT JOIN vehicles v ON v.id = i.vehicle_id
		LEFT JOIN customers c ON c.id = r.customer_id
		WHERE r.deleted_at IS NULL`
	args := []any{}
	if status != "" {
		q += ` AND r.status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY r.pickup_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ListRow
	for rows.Next() {
		var lr ListRow
		var st string
		if err := rows.Scan(&lr.ID, &lr.Code, &st, &lr.PickupAt, &lr.DropoffAt, &lr.TotalAmount,
			&lr.VehicleClassID, &lr.VehicleID, &lr.VehicleName, &lr.CustomerName); err != nil {
			return nil, err
		}
		lr.Status = Status(st)
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, to Status) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE reservations SET status=$2, updated_at=NOW() WHERE id=$1 AND deleted_at IS NULL
	`, id, string(to))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: no rows updated", id)
	}
	return nil
}

// BusyVehicleIDs — машины, у которых любая позиция активной брони пересекает
// запрошенное окно. Тот же закрытый тест пересечения, что и Overlaps:
// касание границ считается конфликтом.
func (r *Repo) BusyVehicleIDs(ctx context.Context, from, to time.Time) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT i.vehicle_id
		FROM reservation_items i
		JOIN reservations r ON r.id = i.reservation_id
		WHERE r.deleted_at IS NULL
		  AND r.status IN ('inquiry','confirmed')
		  AND i.vehicle_id IS NOT NULL
		  AND (
		        (i.starts_at <= $1 AND i.ends_at >= $1)
		     OR (i.starts_at <= $2 AND i.ends_at >= $2)
		     OR (i.starts_at >= $1 AND i.ends_at <= $2)
		  )
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	busy := map[string]struct{}{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		busy[id] = struct{}{}
	}
	return busy, rows.Err()
}

// VehicleRows — плоский инвентарь для резолвера доступности.
func (r *Repo) VehicleRows(ctx context.Context) ([]VehicleRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.branch_id, c.code, v.display_name
		FROM vehicles v
		JOIN vehicle_classes c ON c.id = v.vehicle_class_id
		ORDER BY v.display_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []VehicleRow
	for rows.Next() {
		var vr VehicleRow
		if err := rows.Scan(&vr.ID, &vr.BranchID, &vr.ClassCode, &vr.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, vr)
	}
	return out, rows.Err()
}
