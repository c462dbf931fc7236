package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Data vazia retorna nil sem erro", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("Data válida é interpretada no formato ISO", func(t *testing.T) {
		date, err := ParseDate("2024-06-15")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, 2024, date.Year())
		assert.Equal(t, time.June, date.Month())
		assert.Equal(t, 15, date.Day())
	})

	t.Run("Data malformada retorna erro", func(t *testing.T) {
		_, err := ParseDate("15/06/2024")
		assert.Error(t, err)
	})
}

func TestResolvePeriod(t *testing.T) {
	t.Run("Datas explícitas são usadas exatamente como informadas", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

		period, err := ResolvePeriod(&start, &end, 0)
		require.NoError(t, err)

		assert.Equal(t, start, period.Start)
		assert.Equal(t, end, period.End)
		assert.Equal(t, 29, period.Days)
	})

	t.Run("Dias derivados arredondam para cima", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

		period, err := ResolvePeriod(&start, &end, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, period.Days)
	})

	t.Run("Data de fim anterior à de início é rejeitada", func(t *testing.T) {
		start := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		_, err := ResolvePeriod(&start, &end, 0)
		assert.Error(t, err)
	})

	t.Run("Sem datas a janela retrocede o número de dias a partir de agora", func(t *testing.T) {
		period, err := ResolvePeriod(nil, nil, 30)
		require.NoError(t, err)

		assert.Equal(t, 30, period.Days)
		assert.WithinDuration(t, time.Now(), period.End, time.Minute)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), period.Start, time.Minute)
	})

	t.Run("Dias menores que 1 são rejeitados", func(t *testing.T) {
		_, err := ResolvePeriod(nil, nil, 0)
		assert.Error(t, err)

		_, err = ResolvePeriod(nil, nil, -7)
		assert.Error(t, err)
	})
}

func TestPeriodPrevious(t *testing.T) {
	// Para qualquer janela W e sua anterior P: P.End == W.Start e as durações
	// em dias são iguais
	for _, days := range []int{1, 7, 30, 60, 90} {
		period, err := ResolvePeriod(nil, nil, days)
		require.NoError(t, err)

		previous := period.Previous()

		assert.Equal(t, period.Start, previous.End)
		assert.Equal(t, period.Days, previous.Days)
		assert.Equal(t, period.Start.AddDate(0, 0, -days), previous.Start)
	}
}

func TestTimePeriodLabel(t *testing.T) {
	assert.Equal(t, "Last 30 days", TimePeriodLabel(30))
	assert.Equal(t, "Last 7 days", TimePeriodLabel(7))
}
