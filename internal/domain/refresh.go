package domain

// RefreshedClient resume os dados recarregados de um cliente
type RefreshedClient struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RecordsCount int    `json:"recordsCount"`
	LastDate     string `json:"lastDate,omitempty"`
}

// RefreshReport é o resultado de uma atualização manual
type RefreshReport struct {
	RunID   string            `json:"runId"`
	Clients []RefreshedClient `json:"clients"`
}

// NewRefreshReport monta o relatório a partir dos snapshots carregados
func NewRefreshReport(runID string, snapshots []ClientMetricsSnapshot) *RefreshReport {
	report := &RefreshReport{
		RunID:   runID,
		Clients: make([]RefreshedClient, 0, len(snapshots)),
	}

	for _, s := range snapshots {
		report.Clients = append(report.Clients, RefreshedClient{
			ID:           s.ClientID,
			Name:         s.ClientName,
			RecordsCount: len(s.DailyData),
			LastDate:     s.LastDate(),
		})
	}

	return report
}
