package fleet

import "time"

type Branch struct {
	ID        string
	Code      string
	Name      string
	Address   string
	City      string
	Country   string
	Phone     string
	Email     string
	Timezone  string
	CreatedAt time.Time
}

type VehicleClass struct {
	ID           string
	Code         string
	Name         string
	Description  string
	Seats        int
	Doors        int
	Transmission string
	FuelType     string
	CreatedAt    time.Time
}

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

type Vehicle struct {
	ID               string
	VIN              string
	Plate            string
	DisplayName      string
	BranchID         *string
	VehicleClassID   string
	Year             int
	Color            string
	Mileage          int
	Status           VehicleStatus
	TelematicsUnitID string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
