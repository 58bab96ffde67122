package domain

// DailyMetric representa os indicadores de um dia para um cliente.
// Conversões são frações em [0,1]; valores monetários podem ser negativos.
type DailyMetric struct {
	Date                     string  `json:"date"`
	DeliveredSms             float64 `json:"deliveredSms"`
	UniqueClicks             float64 `json:"uniqueClicks"`
	SmsToClickConversion     float64 `json:"smsToClickConversion"`
	ClickToLeadConversion    float64 `json:"clickToLeadConversion"`
	LeadToApprovalConversion float64 `json:"leadToApprovalConversion"`
	Reward                   float64 `json:"reward"`
	RevenuePerSms            float64 `json:"revenuePerSms"`
	ApprovedLeads            float64 `json:"approvedLeads"`
	PendingLeads             float64 `json:"pendingLeads"`
	RejectedLeads            float64 `json:"rejectedLeads"`
	TotalLeads               float64 `json:"totalLeads"`
	SmsToLeadConversion      float64 `json:"smsToLeadConversion"`
	SmsToApprovalConversion  float64 `json:"smsToApprovalConversion"`
	EPC                      float64 `json:"epc"`
	CTR                      float64 `json:"ctr"`
	Expense                  float64 `json:"expense"`
	Profit                   float64 `json:"profit"`
}

// MetricsSummary agrega um conjunto de DailyMetric
type MetricsSummary struct {
	TotalSms          float64 `json:"totalSms"`
	TotalClicks       float64 `json:"totalClicks"`
	TotalLeads        float64 `json:"totalLeads"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalReward       float64 `json:"totalReward"`
	TotalExpense      float64 `json:"totalExpense"`
	AverageConversion float64 `json:"averageConversion"`
	PeriodStart       string  `json:"periodStart"`
	PeriodEnd         string  `json:"periodEnd"`
}

// CalculateSummary calcula o resumo sobre qualquer conjunto de dias, ordenado ou não.
// Para o conjunto vazio retorna totais zerados e período vazio.
func CalculateSummary(daily []DailyMetric) MetricsSummary {
	summary := MetricsSummary{}
	if len(daily) == 0 {
		return summary
	}

	conversionSum := 0.0
	summary.PeriodStart = daily[0].Date
	summary.PeriodEnd = daily[0].Date

	for _, d := range daily {
		summary.TotalSms += d.DeliveredSms
		summary.TotalClicks += d.UniqueClicks
		summary.TotalLeads += d.TotalLeads
		summary.TotalProfit += d.Profit
		summary.TotalReward += d.Reward
		summary.TotalExpense += d.Expense
		conversionSum += d.SmsToClickConversion

		// Datas ISO comparam corretamente como string
		if d.Date < summary.PeriodStart {
			summary.PeriodStart = d.Date
		}
		if d.Date > summary.PeriodEnd {
			summary.PeriodEnd = d.Date
		}
	}

	summary.AverageConversion = conversionSum / float64(len(daily))

	return summary
}

// FilterByPeriod retorna os dias dentro do intervalo inclusivo [from, to].
// Limites vazios não restringem o intervalo.
func FilterByPeriod(daily []DailyMetric, from, to string) []DailyMetric {
	filtered := make([]DailyMetric, 0, len(daily))
	for _, d := range daily {
		if from != "" && d.Date < from {
			continue
		}
		if to != "" && d.Date > to {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}
