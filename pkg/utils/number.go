package utils

import (
	"fmt"
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// GrowthPercentage calcula o crescimento percentual entre o período atual e o
// anterior, arredondado para uma casa decimal. Quando não há baseline no
// período anterior o crescimento é reportado como zero, nunca como divisão
// por zero ou infinito.
func GrowthPercentage(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}

	return RoundWithOneDecimalPlace(((current - previous) / previous) * 100)
}

// ChangeDirection classifica a variação de uma métrica para exibição no card
func ChangeDirection(change float64) string {
	if change >= 0 {
		return "increase"
	}

	return "decrease"
}

// FormatLargeNumber formata números grandes de forma compacta para o
// dashboard (ex: 3480000000 -> "3.48B", 3900 -> "3.9K")
func FormatLargeNumber(num float64) string {
	switch {
	case num >= 1_000_000_000:
		return strconv.FormatFloat(num/1_000_000_000, 'f', 2, 64) + "B"
	case num >= 1_000_000:
		return strconv.FormatFloat(num/1_000_000, 'f', 2, 64) + "M"
	case num >= 1_000:
		return strconv.FormatFloat(num/1_000, 'f', 1, 64) + "K"
	}

	return strconv.FormatFloat(num, 'f', -1, 64)
}

// FormatCurrency formata valores monetários com sufixo compacto
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.1fK", amount/1_000)
	}

	return fmt.Sprintf("$%.2f", amount)
}
