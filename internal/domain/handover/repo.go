package handover

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) CreateCheck(ctx context.Context, c Check) (*Check, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Photos == nil {
		c.Photos = []string{}
	}
	if c.Damages == nil {
		c.Damages = []Damage{}
	}
	photos, _ := json.Marshal(c.Photos)
	damages, _ := json.Marshal(c.Damages)

	row := r.pool.QueryRow(ctx, `
		INSERT INTO handover_checks (id, reservation_id, type, performed_by, odometer,
		                             fuel_level, cleanliness, photos, damages,
		                             signature_blob, internal_charges_note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING created_at
	`, c.ID, c.ReservationID, string(c.Type), c.PerformedBy, c.Odometer,
		c.FuelLevel, c.Cleanliness, photos, damages, c.SignatureBlob, c.InternalChargesNote)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) ListByReservation(ctx context.Context, reservationID string) ([]Check, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, reservation_id, type, performed_by, odometer, fuel_level,
		       cleanliness, photos, damages, signature_blob, internal_charges_note, created_at
		FROM handover_checks
		WHERE reservation_id = $1
		ORDER BY created_at
	`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Check
	for rows.Next() {
		var c Check
		var typ, cleanliness, signature, note string
		var photos, damages []byte
		if err := rows.Scan(&c.ID, &c.ReservationID, &typ, &c.PerformedBy, &c.Odometer,
			&c.FuelLevel, &cleanliness, &photos, &damages, &signature, &note, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Type = CheckType(typ)
		c.Cleanliness = cleanliness
		c.SignatureBlob = signature
		c.InternalChargesNote = note
		_ = json.Unmarshal(photos, &c.Photos)
		_ = json.Unmarshal(damages, &c.Damages)
		out = append(out, c)
	}
	return out, rows.Err()
}
