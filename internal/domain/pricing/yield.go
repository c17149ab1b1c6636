package pricing

import (
	"context"
	"os"
	"strconv"
)

// YieldMultiplierSource — операторский surge-коэффициент к базе.
// Нормальное значение 1.0; всё, что выше, даёт пропорциональный сбор.
type YieldMultiplierSource interface {
	Multiplier(ctx context.Context) float64
}

// FixedYield — константный множитель (тесты, отключённый surge).
type FixedYield float64

func (f FixedYield) Multiplier(context.Context) float64 { return float64(f) }

// EnvYield читает множитель из переменной окружения при каждом расчёте.
// Пустое или некорректное значение = 1.0.
type EnvYield struct {
	Key string
}

const defaultYieldKey = "YIELD_MULTIPLIER_OVERRIDE"

func NewEnvYield() EnvYield { return EnvYield{Key: defaultYieldKey} }

func (e EnvYield) Multiplier(context.Context) float64 {
	raw := os.Getenv(e.Key)
	if raw == "" {
		return 1
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 1
	}
	return v
}
