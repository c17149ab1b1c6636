package handover

import (
	"time"

	"github.com/Spok95/fleet-ops/internal/money"
)

type ChargeInput struct {
	PlannedReturn  time.Time
	ActualReturn   time.Time
	IncludedKm     float64
	ActualKm       float64
	LateFeePerHour float64
	ExtraKmFee     float64
}

type ChargeResult struct {
	MinutesLate int     `json:"minutesLate"`
	LateCharge  float64 `json:"lateCharge"`
	ExtraKm     float64 `json:"extraKm"`
	KmCharge    float64 `json:"kmCharge"`
	Total       float64 `json:"total"`
}

// Calculate — штраф за поздний возврат и перепробег.
// Любая начатая часовая доля опоздания тарифицируется как полный час;
// отрицательные значения (ранний возврат, пробег меньше лимита) обнуляются.
func Calculate(in ChargeInput) ChargeResult {
	minutesLate := int(in.ActualReturn.Sub(in.PlannedReturn).Minutes())
	if minutesLate < 0 {
		minutesLate = 0
	}

	hoursLate := 0
	if minutesLate > 0 {
		hoursLate = (minutesLate + 59) / 60
	}
	lateCharge := float64(hoursLate) * in.LateFeePerHour

	extraKm := in.ActualKm - in.IncludedKm
	if extraKm < 0 {
		extraKm = 0
	}
	kmCharge := extraKm * in.ExtraKmFee

	return ChargeResult{
		MinutesLate: minutesLate,
		LateCharge:  money.Round2(lateCharge),
		ExtraKm:     extraKm,
		KmCharge:    money.Round2(kmCharge),
		Total:       money.Round2(lateCharge + kmCharge),
	}
}
