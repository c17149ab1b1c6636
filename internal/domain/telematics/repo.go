package telematics

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Ingest записывает событие как есть; неизвестный тип приводим к movement.
func (r *Repo) Ingest(ctx context.Context, p Payload) error {
	typ := EventType(p.Type)
	switch typ {
	case IgnitionOn, IgnitionOff, Speeding, GeofenceEntry, GeofenceExit, BatteryLow, Movement:
	default:
		typ = Movement
	}
	data, _ := json.Marshal(p.Data)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO telemetry_events (id, vehicle_id, recorded_at, type, payload)
		VALUES ($1,$2,$3,$4,$5)
	`, uuid.NewString(), p.VehicleID, p.RecordedAt, string(typ), data)
	return err
}

func (r *Repo) ListByVehicle(ctx context.Context, vehicleID string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, vehicle_id, recorded_at, type, source, payload, created_at
		FROM telemetry_events
		WHERE vehicle_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`, vehicleID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		var typ string
		var payload []byte
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.RecordedAt, &typ, &e.Source, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = EventType(typ)
		_ = json.Unmarshal(payload, &e.Payload)
		out = append(out, e)
	}
	return out, rows.Err()
}
