package money

import "math"

// Round2 округляет сумму до 2 знаков (half-up).
// Внутри движков считаем во float64, наружу отдаём ровно 2 знака.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
