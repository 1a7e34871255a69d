package alert

import "time"

// Formatos aceites para datas de vistoria/seguro. A data escrita na string é a
// que conta: hora e fuso são descartados.
var dueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseDueDate interpreta s como data de calendário (meia-noite UTC).
// Espaços à volta tornam a data inválida.
func ParseDueDate(s string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return civilDate(t), true
	}
	return time.Time{}, false
}

// DaysBetween devolve to - from em dias inteiros de calendário, sem limite de distância.
func DaysBetween(from, to time.Time) int {
	return int((civilDate(to).Unix() - civilDate(from).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// FormatDate formata no padrão português dd/mm/aaaa.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
