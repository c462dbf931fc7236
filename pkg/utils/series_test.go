package utils

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidDay(t *testing.T) {
	assert.Equal(t, "01", FormatValidDay(1))
	assert.Equal(t, "09", FormatValidDay(9))
	assert.Equal(t, "31", FormatValidDay(31))

	// Entradas fora do calendário são limitadas ao intervalo válido
	assert.Equal(t, "01", FormatValidDay(0))
	assert.Equal(t, "01", FormatValidDay(-3))
	assert.Equal(t, "31", FormatValidDay(45))
}

func TestSegmentSeries(t *testing.T) {
	t.Run("Janela de 30 dias gera 5 segmentos com rótulos de faixa de dias", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		period := Period{Start: start, End: end, Days: 30}

		points := []DatedValue{
			{Date: start, Value: 100},
			{Date: start.AddDate(0, 0, 3), Value: 50},
			{Date: start.AddDate(0, 0, 10), Value: 200},
			{Date: start.AddDate(0, 0, 28), Value: 75},
		}

		series := SegmentSeries(period, points)
		require.Len(t, series, 5)

		assert.Equal(t, "01-07", series[0].Label)
		assert.Equal(t, float64(150), series[0].Value)

		assert.Equal(t, "08-14", series[1].Label)
		assert.Equal(t, float64(200), series[1].Value)

		assert.Equal(t, float64(0), series[2].Value)
		assert.Equal(t, float64(0), series[3].Value)

		// Último segmento truncado no fim da janela
		assert.Equal(t, "29-01", series[4].Label)
		assert.Equal(t, float64(75), series[4].Value)
	})

	t.Run("Soma dos segmentos preserva o total da janela", func(t *testing.T) {
		// Para janelas de 1 a 60 dias com registros diários, nenhum registro
		// é perdido nem contado duas vezes
		for days := 1; days <= 60; days++ {
			start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 0, days)
			period := Period{Start: start, End: end, Days: days}

			var points []DatedValue
			var total float64
			for d := 0; d < days; d++ {
				value := float64(d + 1)
				points = append(points, DatedValue{Date: start.AddDate(0, 0, d), Value: value})
				total += value
			}

			series := SegmentSeries(period, points)
			assert.Len(t, series, int(math.Ceil(float64(days)/7)), fmt.Sprintf("janela de %d dias", days))

			var segmentTotal float64
			for _, point := range series {
				segmentTotal += point.Value
			}

			assert.Equal(t, total, segmentTotal, fmt.Sprintf("janela de %d dias", days))
		}
	})

	t.Run("Registros com horário dentro do dia não são perdidos na fronteira", func(t *testing.T) {
		// Janelas ancoradas em time.Now() carregam horário; um registro às
		// 12h do último dia de um segmento pertence a esse segmento
		start := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
		period := Period{Start: start, End: start.AddDate(0, 0, 14), Days: 14}

		points := []DatedValue{
			{Date: start.AddDate(0, 0, 6).Add(12 * time.Hour), Value: 10},
			{Date: start.AddDate(0, 0, 7).Add(-time.Minute), Value: 5},
			{Date: start.AddDate(0, 0, 7), Value: 3},
		}

		series := SegmentSeries(period, points)
		require.Len(t, series, 2)

		assert.Equal(t, float64(15), series[0].Value)
		assert.Equal(t, float64(3), series[1].Value)
	})

	t.Run("Janela sem registros gera segmentos zerados", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		period := Period{Start: start, End: start.AddDate(0, 0, 14), Days: 14}

		series := SegmentSeries(period, nil)
		require.Len(t, series, 2)
		assert.Equal(t, float64(0), series[0].Value)
		assert.Equal(t, float64(0), series[1].Value)
	})
}
