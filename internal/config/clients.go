package config

import (
	"fmt"
	"os"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// clientsFile é o formato do arquivo apontado por CLIENTS_FILE
type clientsFile struct {
	Clients []domain.ClientProfile `yaml:"clients"`
}

// DefaultClients retorna os clientes usados quando CLIENTS_FILE não está definido
func DefaultClients() []domain.ClientProfile {
	return []domain.ClientProfile{
		{
			ID:            "t2-rf",
			Name:          "Т2 РФ",
			SpreadsheetID: "1gBuY-js0b7kxkGNmevZE17122lAlJDJKEYoUejJnIv4",
			SheetName:     "Sheet1",
			VersionerPath: "/t2",
			ProjectKey:    "t2",
		},
		{
			ID:            "beeline-rf",
			Name:          "Билайн РФ",
			SpreadsheetID: "1XMeUCIqaj7PY8bo3CSIKrF11kbwjyGpLgt4gaeCzedE",
			SheetName:     "Sheet1",
			VersionerPath: "/beeline",
			ProjectKey:    "beeline",
		},
	}
}

// LoadClients lê os perfis de clientes de um arquivo YAML
func LoadClients(path string) ([]domain.ClientProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: erro ao ler arquivo de clientes: %w", err)
	}

	return ParseClients(data)
}

// ParseClients decodifica e valida a lista de clientes
func ParseClients(data []byte) ([]domain.ClientProfile, error) {
	var file clientsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: arquivo de clientes inválido: %w", err)
	}

	if len(file.Clients) == 0 {
		return nil, fmt.Errorf("config: nenhum cliente configurado")
	}

	seen := make(map[string]struct{}, len(file.Clients))
	for i, client := range file.Clients {
		if client.ID == "" {
			return nil, fmt.Errorf("config: cliente %d sem id", i)
		}
		if client.SpreadsheetID == "" {
			return nil, fmt.Errorf("config: cliente %s sem spreadsheet_id", client.ID)
		}
		if _, ok := seen[client.ID]; ok {
			return nil, fmt.Errorf("config: cliente duplicado: %s", client.ID)
		}
		seen[client.ID] = struct{}{}

		if client.Name == "" {
			file.Clients[i].Name = client.ID
		}
	}

	return file.Clients, nil
}
