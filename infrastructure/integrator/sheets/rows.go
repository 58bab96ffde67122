package sheets

import (
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// RowToMetric converte uma linha da planilha em métrica diária.
// Linhas sem data válida (totais, anotações, linhas vazias) são descartadas.
func RowToMetric(row []string) (domain.DailyMetric, bool) {
	if len(row) == 0 || !utils.IsValidSheetDate(row[colDate]) {
		return domain.DailyMetric{}, false
	}

	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	number := func(i int) float64 { return utils.ParseLocaleNumber(cell(i)) }
	percent := func(i int) float64 { return utils.ParseLocalePercent(cell(i)) }

	return domain.DailyMetric{
		Date:                     utils.SheetDateToISO(row[colDate]),
		DeliveredSms:             number(colDeliveredSms),
		UniqueClicks:             number(colUniqueClicks),
		SmsToClickConversion:     percent(colSmsToClick),
		ClickToLeadConversion:    percent(colClickToLead),
		LeadToApprovalConversion: percent(colLeadToApproval),
		Reward:                   number(colReward),
		RevenuePerSms:            number(colRevenuePerSms),
		ApprovedLeads:            number(colApproved),
		PendingLeads:             number(colPending),
		RejectedLeads:            number(colRejected),
		TotalLeads:               number(colTotal),
		SmsToLeadConversion:      percent(colSmsToLead),
		SmsToApprovalConversion:  percent(colSmsToApproval),
		EPC:                      number(colEPC),
		CTR:                      percent(colCTR),
		Expense:                  number(colExpense),
		Profit:                   number(colProfit),
	}, true
}
