package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroupFor(t *testing.T) {
	testCases := []struct {
		name     string
		age      int
		expected AgeGroup
		ok       bool
	}{
		{name: "limite inferior da primeira faixa", age: 18, expected: AgeGroup18To24, ok: true},
		{name: "limite superior da primeira faixa", age: 24, expected: AgeGroup18To24, ok: true},
		{name: "meio de faixa", age: 40, expected: AgeGroup35To44, ok: true},
		{name: "limite superior da faixa 55-65 é 64", age: 64, expected: AgeGroup55To65, ok: true},
		{name: "65 cai na faixa 65+", age: 65, expected: AgeGroup65Plus, ok: true},
		{name: "66 cai na faixa 65+", age: 66, expected: AgeGroup65Plus, ok: true},
		{name: "120 ainda pertence à 65+", age: 120, expected: AgeGroup65Plus, ok: true},
		{name: "menor de 18 fica fora de todas as faixas", age: 17, ok: false},
		{name: "acima de 120 fica fora de todas as faixas", age: 121, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			group, ok := AgeGroupFor(tc.age)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, group)
			}
		})
	}
}

func TestAgeGroupFor_FaixasExaustivasESemSobreposicao(t *testing.T) {
	// Cada idade entre 18 e 120 pertence a exatamente uma faixa
	counts := make(map[AgeGroup]int)
	for age := 18; age <= 120; age++ {
		group, ok := AgeGroupFor(age)
		assert.True(t, ok, "idade %d fora de todas as faixas", age)
		counts[group]++
	}

	assert.Len(t, counts, 6)
	assert.Equal(t, 10, counts[AgeGroup55To65])
	assert.Equal(t, 56, counts[AgeGroup65Plus])
}

func TestAgeGroups(t *testing.T) {
	groups := AgeGroups()

	assert.Len(t, groups, 6)
	assert.Equal(t, AgeGroup18To24, groups[0])
	assert.Equal(t, AgeGroup65Plus, groups[5])
	assert.NotContains(t, groups, AgeGroupAll)
}

func TestConcentrationLevelFor(t *testing.T) {
	assert.Equal(t, ConcentrationLow, ConcentrationLevelFor(0))
	assert.Equal(t, ConcentrationLow, ConcentrationLevelFor(499_999))
	assert.Equal(t, ConcentrationMedium, ConcentrationLevelFor(500_000))
	assert.Equal(t, ConcentrationMedium, ConcentrationLevelFor(999_999))
	assert.Equal(t, ConcentrationHigh, ConcentrationLevelFor(1_000_000))
	assert.Equal(t, ConcentrationHigh, ConcentrationLevelFor(3_000_000))
}
