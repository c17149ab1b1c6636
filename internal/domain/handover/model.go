package handover

import "time"

type CheckType string

const (
	Checkout CheckType = "checkout"
	Checkin  CheckType = "checkin"
)

type Damage struct {
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
}

type Check struct {
	ID                  string    `json:"id"`
	ReservationID       string    `json:"reservationId"`
	Type                CheckType `json:"type"`
	PerformedBy         *string   `json:"performedBy,omitempty"`
	Odometer            *int      `json:"odometer,omitempty"`
	FuelLevel           *int      `json:"fuelLevel,omitempty"`
	Cleanliness         string    `json:"cleanliness,omitempty"`
	Photos              []string  `json:"photos,omitempty"`
	Damages             []Damage  `json:"damages,omitempty"`
	SignatureBlob       string    `json:"signatureBlob,omitempty"`
	InternalChargesNote string    `json:"internalChargesNote,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
