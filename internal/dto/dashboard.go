package dto

type DashboardResponse struct {
	ActiveGoals     int     `json:"activeGoals"`
	NetIncome       float64 `json:"netIncome"`
	TotalSaved      float64 `json:"totalSaved"`
	OverallProgress float64 `json:"overallProgress"`
}

type FinanceResponse struct {
	TotalIncome   float64               `json:"totalIncome"`
	TotalExpenses float64               `json:"totalExpenses"`
	NetIncome     float64               `json:"netIncome"`
	Transactions  []TransactionResponse `json:"transactions"`
}
