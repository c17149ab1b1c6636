package reservations

import "time"

type Status string

const (
	StatusInquiry   Status = "inquiry"
	StatusConfirmed Status = "confirmed"
	StatusWaitlist  Status = "waitlist"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
	StatusClosed    Status = "closed"
)

// IsActive — бронь ещё держит машину (для занятости и календаря).
func (s Status) IsActive() bool {
	return s == StatusInquiry || s == StatusConfirmed
}

// Badge — вариант бейджа статуса в админке.
func (s Status) Badge() string {
	if s == StatusCancelled || s == StatusNoShow {
		return "secondary"
	}
	if s == StatusClosed {
		return "neutral"
	}
	return "primary"
}

// CanTransition — допустимые переходы статуса из админки.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusInquiry:
		return to == StatusConfirmed || to == StatusWaitlist || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusNoShow || to == StatusCancelled || to == StatusClosed
	case StatusWaitlist:
		return to == StatusConfirmed || to == StatusCancelled
	default:
		return false
	}
}

type Reservation struct {
	ID              string
	Code            string
	Status          Status
	PickupBranchID  string
	DropoffBranchID string
	PickupAt        time.Time
	DropoffAt       time.Time
	CustomerID      *string
	RatePlanID      *string
	Currency        string
	QuoteExpiresAt  *time.Time
	TotalAmount     float64
	InternalNotes   string
	CustomerNotes   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Item struct {
	ID             string
	ReservationID  string
	VehicleID      *string
	VehicleClassID string
	StartsAt       time.Time
	EndsAt         time.Time
	Currency       string
	TotalAmount    float64
	PriceSnapshot  []byte
}

// ListRow — строка списка броней для админки (с джойнами).
type ListRow struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Status         Status    `json:"status"`
	PickupAt       time.Time `json:"pickupAt"`
	DropoffAt      time.Time `json:"dropoffAt"`
	TotalAmount    float64   `json:"totalAmount"`
	VehicleClassID *string   `json:"vehicleClassId"`
	VehicleID      *string   `json:"vehicleId"`
	VehicleName    *string   `json:"vehicleName"`
	CustomerName   *string   `json:"customerName"`
}
