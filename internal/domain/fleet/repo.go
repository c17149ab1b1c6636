package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

/* Branches */

func (r *Repo) CreateBranch(ctx context.Context, b Branch) (*Branch, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO branches (id, code, name, address, city, country, phone, email, timezone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, code, name, address, city, country, phone, email, timezone, created_at
	`, b.ID, b.Code, b.Name, b.Address, b.City, b.Country, b.Phone, b.Email, b.Timezone)
	var out Branch
	err := row.Scan(&out.ID, &out.Code, &out.Name, &out.Address, &out.City,
		&out.Country, &out.Phone, &out.Email, &out.Timezone, &out.CreatedAt)
	if err == pgx.ErrNoRows {
		// Уже есть — вернём существующий
		return r.GetBranchByCode(ctx, b.Code)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) GetBranchByCode(ctx context.Context, code string) (*Branch, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, name, address, city, country, phone, email, timezone, created_at
		FROM branches WHERE code = $1
	`, code)
	var b Branch
	if err := row.Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.City,
		&b.Country, &b.Phone, &b.Email, &b.Timezone, &b.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBranches(ctx context.Context) ([]Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, name, address, city, country, phone, email, timezone, created_at
		FROM branches
		WHERE archived_at IS NULL
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Branch
	for rows.Next() {
		var b Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Address, &b.City,
			&b.Country, &b.Phone, &b.Email, &b.Timezone, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

/* Vehicle classes */

func (r *Repo) CreateClass(ctx context.Context, c VehicleClass) (*VehicleClass, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO vehicle_classes (id, code, name, description, seats, doors, transmission, fuel_type)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (code) DO NOTHING
		RETURNING id, code, name, description, seats, doors, transmission, fuel_type, created_at
	`, c.ID, c.Code, c.Name, c.Description, c.Seats, c.Doors, c.Transmission, c.FuelType)
	var out VehicleClass
	err := row.Scan(&out.ID, &out.Code, &out.Name, &out.Description,
		&out.Seats, &out.Doors, &out.Transmission, &out.FuelType, &out.CreatedAt)
	if err == pgx.ErrNoRows {
		return r.GetClassByCode(ctx, c.Code)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) GetClassByID(ctx context.Context, id string) (*VehicleClass, error) {
	return r.getClass(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetClassByCode(ctx context.Context, code string) (*VehicleClass, error) {
	return r.getClass(ctx, `WHERE code = $1`, code)
}

func (r *Repo) getClass(ctx context.Context, where string, arg any) (*VehicleClass, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, name, description, seats, doors, transmission, fuel_type, created_at
		FROM vehicle_classes `+where, arg)
	var c VehicleClass
	if err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description,
		&c.Seats, &c.Doors, &c.Transmission, &c.FuelType, &c.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) ListClasses(ctx context.Context) ([]VehicleClass, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, name, description, seats, doors, transmission, fuel_type, created_at
		FROM vehicle_classes
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []VehicleClass
	for rows.Next() {
		var c VehicleClass
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Description,
			&c.Seats, &c.Doors, &c.Transmission, &c.FuelType, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

/* Vehicles */

func (r *Repo) CreateVehicle(ctx context.Context, v Vehicle) (*Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = VehicleAvailable
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO vehicles (id, vin, plate, display_name, branch_id, vehicle_class_id,
		                      year, color, mileage, status, telematics_unit_id, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at, updated_at
	`, v.ID, v.VIN, v.Plate, v.DisplayName, v.BranchID, v.VehicleClassID,
		v.Year, v.Color, v.Mileage, string(v.Status), v.TelematicsUnitID, v.Notes)
	if err := row.Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo) GetVehicleByID(ctx context.Context, id string) (*Vehicle, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, vin, plate, display_name, branch_id, vehicle_class_id,
		       year, color, mileage, status, telematics_unit_id, notes, created_at, updated_at
		FROM vehicles WHERE id = $1
	`, id)
	var v Vehicle
	var status string
	if err := row.Scan(&v.ID, &v.VIN, &v.Plate, &v.DisplayName, &v.BranchID, &v.VehicleClassID,
		&v.Year, &v.Color, &v.Mileage, &status, &v.TelematicsUnitID, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	v.Status = VehicleStatus(status)
	return &v, nil
}

func (r *Repo) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, vin, plate, display_name, branch_id, vehicle_class_id,
		       year, color, mileage, status, telematics_unit_id, notes, created_at, updated_at
		FROM vehicles
		ORDER BY display_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Vehicle
	for rows.Next() {
		var v Vehicle
		var status string
		if err := rows.Scan(&v.ID, &v.VIN, &v.Plate, &v.DisplayName, &v.BranchID, &v.VehicleClassID,
			&v.Year, &v.Color, &v.Mileage, &status, &v.TelematicsUnitID, &v.Notes,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		v.Status = VehicleStatus(status)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateVehicle(ctx context.Context, v Vehicle) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE vehicles
		SET display_name=$2, branch_id=$3, vehicle_class_id=$4, year=$5, color=$6,
		    mileage=$7, status=$8, telematics_unit_id=$9, notes=$10, updated_at=NOW()
		WHERE id=$1
	`, v.ID, v.DisplayName, v.BranchID, v.VehicleClassID, v.Year, v.Color,
		v.Mileage, string(v.Status), v.TelematicsUnitID, v.Notes)
	return err
}

func (r *Repo) DeleteVehicle(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	return err
}
