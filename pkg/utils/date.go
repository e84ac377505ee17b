package utils

import "time"

const DateLayout = "2006-01-02"

// IsValidDate indica se a string está no formato yyyy-mm-dd
func IsValidDate(dateStr string) bool {
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}

// InLocation converte o instante para o fuso informado. Sem fuso, usa o local.
func InLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.Local()
	}
	return t.In(loc)
}

// Today retorna a data de t no fuso informado, no formato yyyy-mm-dd
func Today(t time.Time, loc *time.Location) string {
	return InLocation(t, loc).Format(DateLayout)
}
