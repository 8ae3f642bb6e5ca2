package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Valores não
// finitos viram 0 para nunca vazar NaN/Inf em métricas derivadas.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}
