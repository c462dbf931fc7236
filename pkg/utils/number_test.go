package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"Crescimento positivo", 150, 100, 50},
		{"Queda", 50, 100, -50},
		{"Sem variação", 100, 100, 0},
		{"Baseline zero reporta zero em vez de infinito", 500, 0, 0},
		{"Baseline negativo também reporta zero", 500, -10, 0},
		{"Arredondamento em uma casa decimal", 110, 300, -63.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GrowthPercentage(tt.current, tt.previous))
		})
	}
}

func TestChangeDirection(t *testing.T) {
	assert.Equal(t, "increase", ChangeDirection(100))
	assert.Equal(t, "increase", ChangeDirection(0))
	assert.Equal(t, "decrease", ChangeDirection(-1))
}

func TestFormatLargeNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1.0K"},
		{3900, "3.9K"},
		{1_000_000, "1.00M"},
		{12_400_000, "12.40M"},
		{1_000_000_000, "1.00B"},
		{3_480_000_000, "3.48B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatLargeNumber(tt.input))
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$12.00", FormatCurrency(12))
	assert.Equal(t, "$45.3K", FormatCurrency(45_300))
	assert.Equal(t, "$1.2M", FormatCurrency(1_200_000))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.5678))
	assert.Equal(t, 10.6, RoundWithOneDecimalPlace(10.5678))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
	assert.Equal(t, float64(0), RoundWithOneDecimalPlace(0))
}
