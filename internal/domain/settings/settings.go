package settings

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Policy — операционные политики проката, хранятся одной jsonb-записью.
type Policy struct {
	MinDriverAge       int    `json:"minDriverAge"`
	Fuel               string `json:"fuel"`
	GracePeriodMinutes int    `json:"gracePeriodMinutes"`
	GreenCardRequired  bool   `json:"greenCardRequired"`
}

func DefaultPolicy() Policy {
	return Policy{
		MinDriverAge:       23,
		Fuel:               "Return full",
		GracePeriodMinutes: 60,
		GreenCardRequired:  true,
	}
}

const policyKey = "policy"

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// GetPolicy возвращает дефолты, если запись ещё не создана.
func (r *Repo) GetPolicy(ctx context.Context) (Policy, error) {
	row := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, policyKey)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return DefaultPolicy(), nil
		}
		return Policy{}, err
	}
	p := DefaultPolicy()
	if err := json.Unmarshal(raw, &p); err != nil {
		return DefaultPolicy(), nil
	}
	return p, nil
}

func (r *Repo) SetPolicy(ctx context.Context, p Policy) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()
	`, policyKey, raw)
	return err
}
