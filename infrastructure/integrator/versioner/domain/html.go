package versionerdomain

import (
	"regexp"
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var (
	// <tr>...<td>modulo</td>...<td>versão</td>
	tableRowPattern = regexp.MustCompile(`(?i)<tr[^>]*>[\s\S]*?<td[^>]*>([^<]+)</td>[\s\S]*?<td[^>]*>([^<]+)</td>`)
	// modulo: 1.2.3 ou modulo=1.2.3-rc.1
	versionLinePattern = regexp.MustCompile(`(?i)([a-z0-9_-]+)\s*[:=]\s*([0-9]+\.[0-9]+\.[0-9]+[a-z0-9.-]*)`)
)

// ParseHTML extrai as versões da página do Versioner. Procura primeiro linhas
// de tabela e, se nenhuma for encontrada, pares "modulo: versão" no texto.
func ParseHTML(html string) []domain.VersionRecord {
	records := []domain.VersionRecord{}

	for _, match := range tableRowPattern.FindAllStringSubmatch(html, -1) {
		name := strings.TrimSpace(match[1])
		version := strings.TrimSpace(match[2])

		// Cabeçalho da tabela
		if strings.EqualFold(name, "module") || strings.EqualFold(name, "name") {
			continue
		}

		if name == "" || version == "" {
			continue
		}

		records = append(records, domain.VersionRecord{
			ModuleName:  name,
			Version:     version,
			Environment: domain.DefaultEnvironment,
		})
	}

	if len(records) > 0 {
		return records
	}

	for _, match := range versionLinePattern.FindAllStringSubmatch(html, -1) {
		records = append(records, domain.VersionRecord{
			ModuleName:  match[1],
			Version:     match[2],
			Environment: domain.DefaultEnvironment,
		})
	}

	return records
}
