package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/fleet-ops/internal/domain/fleet"
)

type classStub map[string]*fleet.VehicleClass

func (s classStub) GetClassByID(_ context.Context, id string) (*fleet.VehicleClass, error) {
	return s[id], nil
}

type catalogStub []PriceRow

func (s catalogStub) Candidates(context.Context, string, time.Time, time.Time) ([]PriceRow, error) {
	return s, nil
}

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name         string
		pickup, drop time.Time
		want         int
	}{
		{"same day counts as one", day(10, 9), day(10, 18), 1},
		{"calendar days, not 24h blocks", day(10, 23), day(11, 1), 1},
		{"three nights", day(1, 10), day(4, 9), 3},
		{"dropoff before pickup clamps to one", day(5, 10), day(3, 10), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rentalDays(tc.pickup, tc.drop))
		})
	}
}

func TestQuoteBase(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Economy"}},
		catalogStub{{ID: "p1", RatePlanID: "std", BaseAmount: 50}},
		FixedYield(1),
	)

	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(4, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, q.Days)
	assert.Equal(t, "std", q.RatePlanID)
	assert.Equal(t, "BAM", q.Currency)
	assert.Equal(t, 150.0, q.Totals.Base)
	assert.Equal(t, 0.0, q.Totals.Fees)
	assert.Equal(t, 25.5, q.Totals.Taxes) // 17% от 150
	assert.Equal(t, 175.5, q.Totals.Total)
	require.Len(t, q.Breakdown, 2)
	assert.Equal(t, "Base (3 days)", q.Breakdown[0].Label)
	assert.Equal(t, "VAT 17%", q.Breakdown[1].Label)
	assert.Empty(t, q.Notes)
}

func TestQuoteLuxurySurcharge(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Luxury Sedan"}},
		catalogStub{{ID: "p1", RatePlanID: "std", BaseAmount: 50}},
		FixedYield(1),
	)

	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(4, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, q.Totals.Base)
	assert.Equal(t, 12.0, q.Totals.Fees)
	assert.Equal(t, 27.54, q.Totals.Taxes)
	assert.Equal(t, 189.54, q.Totals.Total)
	assert.Contains(t, q.Notes, "Luxury class surcharge (8%)")

	var fee *BreakdownLine
	for i := range q.Breakdown {
		if q.Breakdown[i].Label == "Luxury fleet fee" {
			fee = &q.Breakdown[i]
		}
	}
	require.NotNil(t, fee)
	assert.Equal(t, KindFee, fee.Kind)
	assert.Equal(t, 12.0, fee.Amount)
}

func TestQuoteLuxuryMatchIsCaseInsensitive(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "LUX suv"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 100}},
		FixedYield(1),
	)
	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1", PickupAt: day(1, 10), DropoffAt: day(2, 10),
	})
	require.NoError(t, err)
	assert.Contains(t, q.Notes, "Luxury class surcharge (8%)")
}

func TestQuoteLongRentalDiscount(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Economy"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 40}},
		FixedYield(1),
	)

	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(8, 10), // ровно 7 суток
	})
	require.NoError(t, err)

	assert.Equal(t, 280.0, q.Totals.Base)
	assert.Equal(t, -28.0, q.Totals.Fees)
	assert.Equal(t, 42.84, q.Totals.Taxes) // 17% от 252
	assert.Equal(t, 294.84, q.Totals.Total)
	assert.Contains(t, q.Notes, "10% discount for rentals >= 7 days")
}

func TestQuoteOccupancySurge(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Economy"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 100}},
		FixedYield(1.25),
	)

	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(3, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, q.Totals.Base)
	assert.Equal(t, 50.0, q.Totals.Fees)
	assert.Equal(t, 42.5, q.Totals.Taxes)
	assert.Equal(t, 292.5, q.Totals.Total)
	assert.Contains(t, q.Notes, "Occupancy multiplier 1.25")
}

func TestQuoteMultiplierAtOrBelowOneIsIgnored(t *testing.T) {
	for _, m := range []float64{1, 0.8} {
		e := NewEngine(
			classStub{"c1": {ID: "c1", Name: "Economy"}},
			catalogStub{{RatePlanID: "std", BaseAmount: 100}},
			FixedYield(m),
		)
		q, err := e.Quote(context.Background(), Input{
			VehicleClassID: "c1", PickupAt: day(1, 10), DropoffAt: day(2, 10),
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, q.Totals.Fees)
		assert.Empty(t, q.Notes)
	}
}

// Допы увеличивают итог, но не входят в налоговую базу.
func TestQuoteTaxExcludesExtras(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Economy"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 100}},
		FixedYield(1),
	)

	q, err := e.Quote(context.Background(), Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(3, 10),
		Extras: []ExtraCharge{
			{ID: "gps", Total: 10},
			{ID: "child_seat", Total: 20},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, q.Totals.Base)
	assert.Equal(t, 30.0, q.Totals.Extras)
	assert.Equal(t, 34.0, q.Totals.Taxes) // 17% от 200, без допов
	assert.Equal(t, 264.0, q.Totals.Total)
}

func TestQuoteRatePlanSelection(t *testing.T) {
	rows := catalogStub{
		{ID: "p1", RatePlanID: "std", BaseAmount: 50},
		{ID: "p2", RatePlanID: "corp", BaseAmount: 44},
	}
	e := NewEngine(classStub{"c1": {ID: "c1", Name: "Economy"}}, rows, FixedYield(1))

	in := Input{VehicleClassID: "c1", PickupAt: day(1, 10), DropoffAt: day(2, 10)}

	q, err := e.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "std", q.RatePlanID, "без запрошенного плана берётся первая строка")

	in.RatePlanID = "corp"
	q, err = e.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "corp", q.RatePlanID)
	assert.Equal(t, 44.0, q.Totals.Base)

	in.RatePlanID = "unknown"
	q, err = e.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "std", q.RatePlanID, "неизвестный план откатывается на первую строку")
}

func TestQuoteErrors(t *testing.T) {
	e := NewEngine(classStub{}, catalogStub{}, FixedYield(1))
	_, err := e.Quote(context.Background(), Input{
		VehicleClassID: "missing", PickupAt: day(1, 10), DropoffAt: day(2, 10),
	})
	assert.ErrorIs(t, err, ErrVehicleClassNotFound)

	e = NewEngine(classStub{"c1": {ID: "c1", Name: "Economy"}}, catalogStub{}, FixedYield(1))
	_, err = e.Quote(context.Background(), Input{
		VehicleClassID: "c1", PickupAt: day(1, 10), DropoffAt: day(2, 10),
	})
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
}

func TestQuoteIsDeterministic(t *testing.T) {
	e := NewEngine(
		classStub{"c1": {ID: "c1", Name: "Luxury Sedan"}},
		catalogStub{{RatePlanID: "std", BaseAmount: 77.77}},
		FixedYield(1.1),
	)
	in := Input{
		VehicleClassID: "c1",
		PickupAt:       day(1, 10),
		DropoffAt:      day(9, 10),
		Extras:         []ExtraCharge{{ID: "gps", Total: 12.5}},
	}

	first, err := e.Quote(context.Background(), in)
	require.NoError(t, err)
	second, err := e.Quote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnvYield(t *testing.T) {
	src := EnvYield{Key: "TEST_YIELD_MULTIPLIER"}

	assert.Equal(t, 1.0, src.Multiplier(context.Background()))

	t.Setenv("TEST_YIELD_MULTIPLIER", "1.5")
	assert.Equal(t, 1.5, src.Multiplier(context.Background()))

	t.Setenv("TEST_YIELD_MULTIPLIER", "garbage")
	assert.Equal(t, 1.0, src.Multiplier(context.Background()))

	t.Setenv("TEST_YIELD_MULTIPLIER", "-2")
	assert.Equal(t, 1.0, src.Multiplier(context.Background()))
}
