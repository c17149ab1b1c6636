package pricing

import "time"

type RatePlan struct {
	ID          string
	Code        string
	Name        string
	Description string
	Currency    string
	Channel     string
	Active      bool
	CreatedAt   time.Time
}

// PriceRow — суточный тариф класса машины в рамках тарифного плана.
// Окно действия (StartDate/EndDate) опционально: NULL = без границы.
type PriceRow struct {
	ID                string
	RatePlanID        string
	VehicleClassID    string
	StartDate         *time.Time
	EndDate           *time.Time
	BaseAmount        float64
	WeekendMultiplier float64
	Currency          string
	CreatedAt         time.Time
}

type Extra struct {
	ID          string
	Code        string
	Name        string
	Description string
	DailyPrice  *float64
	FlatPrice   *float64
	Currency    string
	Active      bool
	CreatedAt   time.Time
}

// ExtraCharge — уже посчитанная вызывающей стороной допуслуга.
// Движок цен сам допы не тарифицирует.
type ExtraCharge struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

type Input struct {
	VehicleClassID string        `json:"vehicleClassId"`
	PickupAt       time.Time     `json:"pickupAt"`
	DropoffAt      time.Time     `json:"dropoffAt"`
	RatePlanID     string        `json:"ratePlanId,omitempty"`
	Extras         []ExtraCharge `json:"extras,omitempty"`
	Currency       string        `json:"currency,omitempty"`
}

type BreakdownKind string

const (
	KindBase  BreakdownKind = "base"
	KindTax   BreakdownKind = "tax"
	KindFee   BreakdownKind = "fee"
	KindExtra BreakdownKind = "extra"
)

type BreakdownLine struct {
	Label  string        `json:"label"`
	Amount float64       `json:"amount"`
	Kind   BreakdownKind `json:"type"`
}

type Totals struct {
	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Fees   float64 `json:"fees"`
	Taxes  float64 `json:"taxes"`
	Total  float64 `json:"total"`
}

type Quote struct {
	VehicleClassID string          `json:"vehicleClassId"`
	RatePlanID     string          `json:"ratePlanId"`
	Currency       string          `json:"currency"`
	Days           int             `json:"days"`
	Totals         Totals          `json:"totals"`
	Breakdown      []BreakdownLine `json:"breakdown"`
	Notes          []string        `json:"notes"`
}
