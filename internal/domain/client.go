package domain

// ClientProfile descreve um cliente configurado no dashboard
type ClientProfile struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	SpreadsheetID string `json:"spreadsheetId" yaml:"spreadsheet_id"`
	SheetName     string `json:"sheetName,omitempty" yaml:"sheet_name"`
	VersionerPath string `json:"versionerPath,omitempty" yaml:"versioner_path"`
	ProjectKey    string `json:"projectKey,omitempty" yaml:"project_key"`
}
