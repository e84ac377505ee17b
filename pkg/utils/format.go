package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

func invalid(n float64) bool {
	return math.IsNaN(n) || math.IsInf(n, 0)
}

// FormatMoney formata valores monetários como $1,234.56
func FormatMoney(n float64) string {
	if invalid(n) {
		return "$0.00"
	}
	return printer.Sprintf("$%.2f", n)
}

// FormatInt formata contagens com separador de milhar
func FormatInt(n float64) string {
	if invalid(n) {
		return "0"
	}
	return printer.Sprintf("%d", int64(math.Round(n)))
}

// FormatPercent formata percentuais com uma casa decimal
func FormatPercent(n float64) string {
	if invalid(n) {
		return "0.0%"
	}
	return printer.Sprintf("%.1f%%", n)
}

// FormatChange formata uma variação com sinal; nil indica ausência de base de comparação
func FormatChange(change *float64) string {
	if change == nil || invalid(*change) {
		return "—"
	}
	if *change >= 0 {
		return printer.Sprintf("+%.1f%%", *change)
	}
	return printer.Sprintf("%.1f%%", *change)
}

// FormatROAS formata o retorno sobre anúncios; sem gasto com anúncios é infinito
func FormatROAS(roas *float64) string {
	if roas == nil || invalid(*roas) {
		return "∞x"
	}
	return printer.Sprintf("%.1fx", *roas)
}
