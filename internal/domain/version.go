package domain

import "time"

// DefaultEnvironment é o ambiente assumido quando a fonte não informa
const DefaultEnvironment = "production"

// VersionRecord representa a versão implantada de um módulo
type VersionRecord struct {
	ModuleName    string `json:"moduleName"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	LatestVersion string `json:"latestVersion,omitempty"`
	LastDeployed  string `json:"lastDeployed,omitempty"`
}

// Outdated informa se existe uma versão mais nova conhecida
func (v VersionRecord) Outdated() bool {
	return v.LatestVersion != "" && v.LatestVersion != v.Version
}

// ProjectVersionRecord é um VersionRecord do inventário consolidado, identificado pelo projeto
type ProjectVersionRecord struct {
	Project string `json:"project"`
	VersionRecord
}

// ClientVersionSnapshot agrupa as versões de um cliente
type ClientVersionSnapshot struct {
	ClientID    string          `json:"clientId"`
	Versions    []VersionRecord `json:"versions"`
	LastChecked time.Time       `json:"lastChecked"`
}
