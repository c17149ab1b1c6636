package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/fleet-ops/internal/domain/fleet"
	"github.com/Spok95/fleet-ops/internal/money"
)

var (
	ErrVehicleClassNotFound = errors.New("vehicle class not found")
	ErrPriceNotConfigured   = errors.New("price not configured")
)

const (
	luxurySurchargeRate = 0.08
	longRentalMinDays   = 7
	longRentalDiscount  = 0.10
	vatRate             = 0.17
	defaultCurrency     = "BAM"
)

// ClassLookup отдаёт класс машины по id (nil, nil = не найден).
type ClassLookup interface {
	GetClassByID(ctx context.Context, id string) (*fleet.VehicleClass, error)
}

// Catalog отдаёт строки прайса, чьё окно действия покрывает обе даты аренды.
// Порядок кандидатов зафиксирован реализацией (created_at, id) — движок
// при отсутствии запрошенного плана берёт первую строку как есть.
type Catalog interface {
	Candidates(ctx context.Context, vehicleClassID string, pickupAt, dropoffAt time.Time) ([]PriceRow, error)
}

type Engine struct {
	classes ClassLookup
	catalog Catalog
	yield   YieldMultiplierSource
}

func NewEngine(classes ClassLookup, catalog Catalog, yield YieldMultiplierSource) *Engine {
	if yield == nil {
		yield = FixedYield(1)
	}
	return &Engine{classes: classes, catalog: catalog, yield: yield}
}

// isLuxuryClass — признак "люкса" по подстроке в названии класса.
// Осознанно грубое правило, совместимое с историческими данными;
// при появлении структурного флага категории меняется только тут.
func isLuxuryClass(c *fleet.VehicleClass) bool {
	return strings.Contains(strings.ToLower(c.Name), "lux")
}

// rentalDays — количество календарных суток между датами выдачи и возврата,
// минимум 1 (аренда в один день тарифицируется как сутки).
func rentalDays(pickupAt, dropoffAt time.Time) int {
	p := pickupAt.UTC()
	d := dropoffAt.UTC()
	pd := time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, time.UTC)
	dd := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	days := int(dd.Sub(pd) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}

func (e *Engine) Quote(ctx context.Context, in Input) (*Quote, error) {
	days := rentalDays(in.PickupAt, in.DropoffAt)
	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	class, err := e.classes.GetClassByID(ctx, in.VehicleClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrVehicleClassNotFound
	}

	rows, err := e.catalog.Candidates(ctx, in.VehicleClassID, in.PickupAt, in.DropoffAt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrPriceNotConfigured
	}

	selected := rows[0]
	if in.RatePlanID != "" {
		for _, row := range rows {
			if row.RatePlanID == in.RatePlanID {
				selected = row
				break
			}
		}
	}

	base := selected.BaseAmount * float64(days)
	notes := []string{}
	breakdown := []BreakdownLine{
		{Label: fmt.Sprintf("Base (%d days)", days), Amount: base, Kind: KindBase},
	}

	var extrasTotal float64
	for _, extra := range in.Extras {
		extrasTotal += extra.Total
		breakdown = append(breakdown, BreakdownLine{
			Label:  "Extra " + extra.ID,
			Amount: extra.Total,
			Kind:   KindExtra,
		})
	}

	if isLuxuryClass(class) {
		breakdown = append(breakdown, BreakdownLine{
			Label:  "Luxury fleet fee",
			Amount: base * luxurySurchargeRate,
			Kind:   KindFee,
		})
		notes = append(notes, "Luxury class surcharge (8%)")
	}

	if days >= longRentalMinDays {
		breakdown = append(breakdown, BreakdownLine{
			Label:  "Long term discount",
			Amount: -(base * longRentalDiscount),
			Kind:   KindFee,
		})
		notes = append(notes, "10% discount for rentals >= 7 days")
	}

	// Один атомарный read на расчёт: множитель не перечитываем по ходу.
	multiplier := e.yield.Multiplier(ctx)
	if multiplier > 1 {
		breakdown = append(breakdown, BreakdownLine{
			Label:  "Occupancy surge",
			Amount: base * (multiplier - 1),
			Kind:   KindFee,
		})
		notes = append(notes, fmt.Sprintf("Occupancy multiplier %g", multiplier))
	}

	var baseSum, feeSum float64
	for _, line := range breakdown {
		switch line.Kind {
		case KindBase:
			baseSum += line.Amount
		case KindFee:
			feeSum += line.Amount
		}
	}
	// НДС считается от базы и сборов; допы в налоговую базу не входят —
	// историческое поведение, закреплено регрессионным тестом.
	tax := (baseSum + feeSum) * vatRate
	if tax < 0 {
		tax = 0
	}
	breakdown = append(breakdown, BreakdownLine{Label: "VAT 17%", Amount: tax, Kind: KindTax})

	total := base + extrasTotal + feeSum + tax

	for i := range breakdown {
		breakdown[i].Amount = money.Round2(breakdown[i].Amount)
	}

	return &Quote{
		VehicleClassID: in.VehicleClassID,
		RatePlanID:     selected.RatePlanID,
		Currency:       currency,
		Days:           days,
		Totals: Totals{
			Base:   money.Round2(base),
			Extras: money.Round2(extrasTotal),
			Fees:   money.Round2(feeSum),
			Taxes:  money.Round2(tax),
			Total:  money.Round2(total),
		},
		Breakdown: breakdown,
		Notes:     notes,
	}, nil
}
