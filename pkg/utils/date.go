package utils

import (
	"strings"
	"time"
)

// MaxDueDay limita o dia de vencimento para que exista em todos os meses
const MaxDueDay = 28

// ParseDate lê uma data AAAA-MM-DD; string vazia resulta em nil
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DateOf descarta o horário e o fuso, mantendo apenas a data de calendário
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirstDayOfMonth retorna o primeiro dia do mês de t como data de calendário
func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func PreviousMonth(t time.Time) time.Time {
	return FirstDayOfMonth(t).AddDate(0, -1, 0)
}

// DueDateInMonth calcula o vencimento no mês de t. Dias acima de 28 são
// limitados a 28 e valores menores que 1 viram 1.
func DueDateInMonth(t time.Time, dueDay int) time.Time {
	if dueDay > MaxDueDay {
		dueDay = MaxDueDay
	}
	if dueDay < 1 {
		dueDay = 1
	}

	y, m, _ := t.Date()
	return time.Date(y, m, dueDay, 0, 0, 0, 0, time.UTC)
}

// FormatDate formata no padrão aceito pelas colunas date do PostgreSQL
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// MonthKey retorna o prefixo YYYY-MM usado para comparar meses de referência
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
