package domain

import (
	"time"
)

// MonthKeyLayout é o formato da chave de mês das metas ("YYYY-MM")
const MonthKeyLayout = "2006-01"

// FinancialGoal é o conjunto de metas mensais de um usuário. A chave composta
// (UserID, Month) é única e a gravação é sempre um upsert.
type FinancialGoal struct {
	ID           int64     `json:"id"`
	UserID       int       `json:"user_id"`
	Month        string    `json:"month"` // YYYY-MM
	RevenueGoal  float64   `json:"revenue_goal"`
	ProfitGoal   float64   `json:"profit_goal"`
	SpendCeiling float64   `json:"spend_ceiling"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
