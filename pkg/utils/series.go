package utils

import (
	"fmt"
	"math"
	"time"
)

// SeriesPoint é um ponto nomeado de uma série temporal dos cards
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DatedValue é um registro datado a ser agregado em segmentos
type DatedValue struct {
	Date  time.Time
	Value float64
}

// FormatValidDay formata um dia do mês com zero à esquerda, limitado ao
// intervalo [1, 31] como proteção contra entradas malformadas
func FormatValidDay(day int) string {
	if day < 1 {
		day = 1
	}
	if day > 31 {
		day = 31
	}

	return fmt.Sprintf("%02d", day)
}

// SegmentSeries divide a janela em segmentos contíguos de 7 dias a partir do
// início e soma os valores dos registros dentro de cada segmento. Cada
// segmento vai até o início do seguinte (exclusivo); o último é truncado no
// fim da janela, inclusivo, para que nenhum registro da janela fique de fora.
// O rótulo de cada segmento é a faixa de dias do mês no formato "DD-DD".
func SegmentSeries(p Period, points []DatedValue) []SeriesPoint {
	segmentCount := int(math.Ceil(float64(p.Days) / 7))

	series := make([]SeriesPoint, 0, segmentCount)

	for i := 0; i < segmentCount; i++ {
		segmentStart := p.Start.AddDate(0, 0, i*7)
		nextStart := segmentStart.AddDate(0, 0, 7)
		last := i == segmentCount-1

		labelEnd := segmentStart.AddDate(0, 0, 6)
		if labelEnd.After(p.End) {
			labelEnd = p.End
		}

		var total float64
		for _, point := range points {
			if point.Date.Before(segmentStart) {
				continue
			}
			if last {
				if point.Date.After(p.End) {
					continue
				}
			} else if !point.Date.Before(nextStart) {
				continue
			}
			total += point.Value
		}

		series = append(series, SeriesPoint{
			Label: fmt.Sprintf("%s-%s", FormatValidDay(segmentStart.Day()), FormatValidDay(labelEnd.Day())),
			Value: total,
		})
	}

	return series
}
