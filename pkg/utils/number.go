package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// Abreviações do rublo e símbolos de moeda aceitos nas planilhas
	currencyPattern = regexp.MustCompile(`(?i)(руб\.?|р\.|р|₽|\$|€|£|¥)`)
	leadingFloat    = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// ParseLocaleNumber converte valores no formato russo ("1 500,50 ₽", "-20 р.") para float64.
// Valores vazios ou não numéricos retornam 0.
func ParseLocaleNumber(value string) float64 {
	cleaned := currencyPattern.ReplaceAllString(stripSpaces(value), "")

	// Com vírgula decimal, pontos são separadores de milhar
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	return parseLeadingFloat(cleaned)
}

// ParseLocalePercent converte "12,5%" em 0.125. Valores inválidos retornam 0.
func ParseLocalePercent(value string) float64 {
	cleaned := strings.ReplaceAll(stripSpaces(value), "%", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	return parseLeadingFloat(cleaned) / 100
}

func stripSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		// IsSpace cobre também espaços não separáveis (U+00A0, U+202F)
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

func parseLeadingFloat(value string) float64 {
	match := leadingFloat.FindString(value)
	if match == "" {
		return 0
	}

	number, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return number
}
