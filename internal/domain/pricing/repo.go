package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

/* Rate plans */

func (r *Repo) CreateRatePlan(ctx context.Context, p RatePlan) (*RatePlan, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Currency == "" {
		p.Currency = defaultCurrency
	}
	if p.Channel == "" {
		p.Channel = "direct"
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rate_plans (id, code, name, description, currency, channel, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, code, name, description, currency, channel, active, created_at
	`, p.ID, p.Code, p.Name, p.Description, p.Currency, p.Channel, p.Active)
	var out RatePlan
	err := row.Scan(&out.ID, &out.Code, &out.Name, &out.Description,
		&out.Currency, &out.Channel, &out.Active, &out.CreatedAt)
	if err == pgx.ErrNoRows {
		return r.GetRatePlanByCode(ctx, p.Code)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) GetRatePlanByID(ctx context.Context, id string) (*RatePlan, error) {
	return r.getRatePlan(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetRatePlanByCode(ctx context.Context, code string) (*RatePlan, error) {
	return r.getRatePlan(ctx, `WHERE code = $1`, code)
}

func (r *Repo) getRatePlan(ctx context.Context, where string, arg any) (*RatePlan, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, name, description, currency, channel, active, created_at
		FROM rate_plans `+where, arg)
	var p RatePlan
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description,
		&p.Currency, &p.Channel, &p.Active, &p.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) ListRatePlans(ctx context.Context) ([]RatePlan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, name, description, currency, channel, active, created_at
		FROM rate_plans
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RatePlan
	for rows.Next() {
		var p RatePlan
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description,
			&p.Currency, &p.Channel, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) SetRatePlanActive(ctx context.Context, id string, active bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE rate_plans SET active=$2 WHERE id=$1`, id, active)
	return err
}

/* Price rows */

func (r *Repo) CreatePriceRow(ctx context.Context, p PriceRow) (*PriceRow, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.WeekendMultiplier == 0 {
		p.WeekendMultiplier = 1
	}
	if p.Currency == "" {
		p.Currency = defaultCurrency
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO prices (id, rate_plan_id, vehicle_class_id, start_date, end_date,
		                    base_amount, weekend_multiplier, currency)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, p.ID, p.RatePlanID, p.VehicleClassID, p.StartDate, p.EndDate,
		p.BaseAmount, p.WeekendMultiplier, p.Currency)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Candidates — строки прайса класса, чьё окно действия покрывает обе даты
// (открытая граница = без ограничения). Порядок выдачи зафиксирован:
// created_at, id — от него зависит выбор "первой" строки в движке.
func (r *Repo) Candidates(ctx context.Context, vehicleClassID string, pickupAt, dropoffAt time.Time) ([]PriceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, rate_plan_id, vehicle_class_id, start_date, end_date,
		       base_amount, weekend_multiplier, currency, created_at
		FROM prices
		WHERE vehicle_class_id = $1
		  AND (start_date IS NULL OR start_date <= $2)
		  AND (end_date IS NULL OR end_date >= $3)
		ORDER BY created_at, id
	`, vehicleClassID, pickupAt, dropoffAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PriceRow
	for rows.Next() {
		var p PriceRow
		if err := rows.Scan(&p.ID, &p.RatePlanID, &p.VehicleClassID, &p.StartDate, &p.EndDate,
			&p.BaseAmount, &p.WeekendMultiplier, &p.Currency, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListPriceRows(ctx context.Context, vehicleClassID string) ([]PriceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, rate_plan_id, vehicle_class_id, start_date, end_date,
		       base_amount, weekend_multiplier, currency, created_at
		FROM prices
		WHERE vehicle_class_id = $1
		ORDER BY created_at, id
	`, vehicleClassID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PriceRow
	for rows.Next() {
		var p PriceRow
		if err := rows.Scan(&p.ID, &p.RatePlanID, &p.VehicleClassID, &p.StartDate, &p.EndDate,
			&p.BaseAmount, &p.WeekendMultiplier, &p.Currency, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) DeletePriceRow(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM prices WHERE id=$1`, id)
	return err
}

/* Extras */

func (r *Repo) CreateExtra(ctx context.Context, e Extra) (*Extra, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Currency == "" {
		e.Currency = defaultCurrency
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO extras (id, code, name, description, daily_price, flat_price, currency, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, code, name, description, daily_price, flat_price, currency, active, created_at
	`, e.ID, e.Code, e.Name, e.Description, e.DailyPrice, e.FlatPrice, e.Currency, e.Active)
	var out Extra
	err := row.Scan(&out.ID, &out.Code, &out.Name, &out.Description,
		&out.DailyPrice, &out.FlatPrice, &out.Currency, &out.Active, &out.CreatedAt)
	if err == pgx.ErrNoRows {
		return r.getExtraByCode(ctx, e.Code)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) getExtraByCode(ctx context.Context, code string) (*Extra, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, name, description, daily_price, flat_price, currency, active, created_at
		FROM extras WHERE code = $1
	`, code)
	var e Extra
	if err := row.Scan(&e.ID, &e.Code, &e.Name, &e.Description,
		&e.DailyPrice, &e.FlatPrice, &e.Currency, &e.Active, &e.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repo) ListExtras(ctx context.Context) ([]Extra, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, name, description, daily_price, flat_price, currency, active, created_at
		FROM extras
		WHERE active = TRUE
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Extra
	for rows.Next() {
		var e Extra
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Description,
			&e.DailyPrice, &e.FlatPrice, &e.Currency, &e.Active, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SetExtraStock — остаток допа по филиалу (детские кресла, цепи и т.п.).
func (r *Repo) SetExtraStock(ctx context.Context, extraID, branchID string, quantity int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO extras_inventory (id, extra_id, branch_id, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (extra_id, branch_id)
		DO UPDATE SET quantity=EXCLUDED.quantity, updated_at=NOW()
	`, uuid.NewString(), extraID, branchID, quantity)
	return err
}

func (r *Repo) GetExtraStock(ctx context.Context, extraID, branchID string) (int, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT quantity FROM extras_inventory WHERE extra_id=$1 AND branch_id=$2
	`, extraID, branchID)
	var qty int
	if err := row.Scan(&qty); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return qty, nil
}
