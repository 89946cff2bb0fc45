package models

import (
	"github.com/shopspring/decimal"

	"github.com/jkarlost/calculadora/internal/finance"
)

// Analysis is the full result of analyzing one intake submission.
type Analysis struct {
	Assets       finance.Totals   `json:"activos"`
	Liabilities  finance.Totals   `json:"pasivos"`
	IncomeTotal  decimal.Decimal  `json:"total_ingresos"`
	ExpenseTotal decimal.Decimal  `json:"total_gastos"`
	Snapshot     finance.Snapshot `json:"snapshot"`
	Tier         finance.Tier     `json:"nivel"`
	Profile      finance.Profile  `json:"perfil_inversion"`

	// Notes are the situational observations about cash flow and net worth.
	Notes []string `json:"notas"`
	// Summary is the plain-text resumen embedded in the PDF report and in
	// the plan-generator prompt.
	Summary string `json:"resumen"`
}

// FinancesRecord is the persisted per-analysis snapshot row. Append-only:
// every analysis inserts a new row keyed to the user profile.
type FinancesRecord struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"usuario_id"`
	MonthlyIncome    decimal.Decimal `json:"ingresos_mensuales"`
	MonthlyExpenses  decimal.Decimal `json:"gastos_mensuales"`
	TotalAssets      decimal.Decimal `json:"activos_totales"`
	TotalLiabilities decimal.Decimal `json:"pasivos_totales"`
}

// Report couples everything the PDF builder renders. Plan and Retirement are
// optional sections.
type Report struct {
	User       UserProfile
	Analysis   Analysis
	Retirement *finance.RetirementProjection
	Plan       string
}
