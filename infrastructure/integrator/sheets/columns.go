package sheets

// Posição de cada métrica nas colunas A-S da planilha. A coluna I não é usada.
const (
	colDate = iota
	colDeliveredSms
	colUniqueClicks
	colSmsToClick
	colClickToLead
	colLeadToApproval
	colReward
	colRevenuePerSms
	_
	colApproved
	colPending
	colRejected
	colTotal
	colSmsToLead
	colSmsToApproval
	colEPC
	colCTR
	colExpense
	colProfit
)
