package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Limites de ano aceitos nas linhas da planilha. Linhas fora do intervalo
// são descartadas como linhas de totais; após 2030 datas válidas passam a ser ignoradas.
const (
	MinSheetYear = 2020
	MaxSheetYear = 2030
)

var sheetDatePattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// IsValidSheetDate verifica se o valor é uma data DD.MM.YYYY de uma linha diária
func IsValidSheetDate(value string) bool {
	_, _, _, ok := splitSheetDate(value)
	return ok
}

// SheetDateToISO converte DD.MM.YYYY para YYYY-MM-DD. Retorna vazio para datas inválidas.
func SheetDateToISO(value string) string {
	day, month, year, ok := splitSheetDate(value)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func splitSheetDate(value string) (day, month, year int, ok bool) {
	parts := sheetDatePattern.FindStringSubmatch(strings.TrimSpace(value))
	if parts == nil {
		return 0, 0, 0, false
	}

	day, _ = strconv.Atoi(parts[1])
	month, _ = strconv.Atoi(parts[2])
	year, _ = strconv.Atoi(parts[3])

	if day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if year < MinSheetYear || year > MaxSheetYear {
		return 0, 0, 0, false
	}

	return day, month, year, true
}
