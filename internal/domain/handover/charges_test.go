package handover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLateAndOverKm(t *testing.T) {
	res := Calculate(ChargeInput{
		PlannedReturn:  time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
		ActualReturn:   time.Date(2024, time.July, 1, 12, 30, 0, 0, time.UTC),
		IncludedKm:     300,
		ActualKm:       450,
		LateFeePerHour: 10,
		ExtraKmFee:     0.2,
	})

	assert.Equal(t, 150, res.MinutesLate)
	assert.Equal(t, 30.0, res.LateCharge, "150 минут округляются вверх до 3 часов")
	assert.Equal(t, 150.0, res.ExtraKm)
	assert.Equal(t, 30.0, res.KmCharge)
	assert.Equal(t, 60.0, res.Total)
}

func TestCalculateExactHour(t *testing.T) {
	planned := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	res := Calculate(ChargeInput{
		PlannedReturn:  planned,
		ActualReturn:   planned.Add(60 * time.Minute),
		IncludedKm:     400,
		ActualKm:       400,
		LateFeePerHour: 15,
		ExtraKmFee:     0.25,
	})

	assert.Equal(t, 60, res.MinutesLate)
	assert.Equal(t, 15.0, res.LateCharge, "ровно час — без округления вверх")
	assert.Equal(t, 0.0, res.KmCharge)
	assert.Equal(t, 15.0, res.Total)
}

func TestCalculateOneMinuteLateBillsFullHour(t *testing.T) {
	planned := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	res := Calculate(ChargeInput{
		PlannedReturn:  planned,
		ActualReturn:   planned.Add(1 * time.Minute),
		IncludedKm:     400,
		ActualKm:       100,
		LateFeePerHour: 15,
		ExtraKmFee:     0.25,
	})

	assert.Equal(t, 1, res.MinutesLate)
	assert.Equal(t, 15.0, res.LateCharge)
	assert.Equal(t, 15.0, res.Total)
}

func TestCalculateEarlyReturnAndUnderKm(t *testing.T) {
	planned := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	res := Calculate(ChargeInput{
		PlannedReturn:  planned,
		ActualReturn:   planned.Add(-2 * time.Hour),
		IncludedKm:     400,
		ActualKm:       150,
		LateFeePerHour: 15,
		ExtraKmFee:     0.25,
	})

	assert.Equal(t, 0, res.MinutesLate)
	assert.Equal(t, 0.0, res.LateCharge)
	assert.Equal(t, 0.0, res.ExtraKm)
	assert.Equal(t, 0.0, res.KmCharge)
	assert.Equal(t, 0.0, res.Total)
}
