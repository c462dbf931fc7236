package utils

import (
	"fmt"
	"math"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// Period representa a janela de análise usada pelos cards do dashboard
type Period struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Previous retorna a janela imediatamente anterior, com a mesma duração e
// sem sobreposição: o fim da janela anterior coincide com o início da atual
func (p Period) Previous() Period {
	return Period{
		Start: p.Start.AddDate(0, 0, -p.Days),
		End:   p.Start,
		Days:  p.Days,
	}
}

// ResolvePeriod calcula a janela de análise a partir dos filtros informados.
// Quando as duas datas são informadas, elas são usadas exatamente como vieram
// e o número de dias é derivado por arredondamento para cima. Caso contrário,
// a janela termina em "agora" e retrocede o número de dias informado.
func ResolvePeriod(startDate, endDate *time.Time, days int) (Period, error) {
	if startDate != nil && endDate != nil {
		if endDate.Before(*startDate) {
			return Period{}, fmt.Errorf("a data de início não pode ser posterior à data de fim")
		}

		derivedDays := int(math.Ceil(endDate.Sub(*startDate).Hours() / 24))
		if derivedDays < 1 {
			derivedDays = 1
		}

		return Period{
			Start: *startDate,
			End:   *endDate,
			Days:  derivedDays,
		}, nil
	}

	if days < 1 {
		return Period{}, fmt.Errorf("o período em dias deve ser maior ou igual a 1")
	}

	now := time.Now()

	return Period{
		Start: now.AddDate(0, 0, -days),
		End:   now,
		Days:  days,
	}, nil
}

// TimePeriodLabel formata o rótulo de período exibido nos cards (ex: "Last 30 days")
func TimePeriodLabel(days int) string {
	return fmt.Sprintf("Last %d days", days)
}
