package finance

import "github.com/shopspring/decimal"

// RetirementInput holds the retirement-planning fields from the intake form.
// Income, expenses and savings are annual amounts.
type RetirementInput struct {
	CurrentAge     int             `json:"current_age"`
	RetirementAge  int             `json:"retirement_age"`
	AnnualIncome   decimal.Decimal `json:"annual_income"`
	AnnualExpenses decimal.Decimal `json:"annual_expenses"`
	CurrentSavings decimal.Decimal `json:"current_savings"`
}

// RetirementProjection is the derived retirement plan. The total-need model
// assumes a life expectancy of 100 years with no inflation or return-rate
// adjustment; that simplification is intentional.
type RetirementProjection struct {
	YearsToRetirement   int              `json:"years_to_retirement"`
	TotalNeed           decimal.Decimal  `json:"total_need"`
	AnnualSavingsNeeded decimal.Decimal  `json:"annual_savings_needed"`
	Tier                Tier             `json:"tier"`
	Advice              RetirementAdvice `json:"advice"`
}

// ProjectRetirement computes the retirement projection for the given inputs
// and snapshot. When the retirement age does not exceed the current age the
// annual-savings figure is defined as zero rather than dividing by zero.
func ProjectRetirement(in RetirementInput, snap Snapshot) RetirementProjection {
	years := in.RetirementAge - in.CurrentAge

	lifeYears := decimal.NewFromInt(int64(100 - in.RetirementAge))
	totalNeed := in.AnnualIncome.Sub(in.AnnualExpenses).Mul(lifeYears)

	annual := decimal.Zero
	if years > 0 {
		annual = totalNeed.Sub(in.CurrentSavings).
			Div(decimal.NewFromInt(int64(years))).
			Round(2)
	}

	tier := Classify(snap.NetWorth, snap.MonthlyCashFlow)
	return RetirementProjection{
		YearsToRetirement:   years,
		TotalNeed:           totalNeed,
		AnnualSavingsNeeded: annual,
		Tier:                tier,
		Advice:              tier.RetirementAdvice(),
	}
}
