package finance

import "testing"

func TestProjectRetirement(t *testing.T) {
	in := RetirementInput{
		CurrentAge:     30,
		RetirementAge:  65,
		AnnualIncome:   dec("40000"),
		AnnualExpenses: dec("30000"),
		CurrentSavings: dec("10000"),
	}
	snap := Snapshot{NetWorth: dec("60000"), MonthlyCashFlow: dec("1200")}

	p := ProjectRetirement(in, snap)

	if p.YearsToRetirement != 35 {
		t.Errorf("years to retirement = %d, want 35", p.YearsToRetirement)
	}
	// (40000-30000) * (100-65)
	if !p.TotalNeed.Equal(dec("350000")) {
		t.Errorf("total need = %s, want 350000", p.TotalNeed)
	}
	// (350000-10000)/35, rounded to cents
	if !p.AnnualSavingsNeeded.Equal(dec("9714.29")) {
		t.Errorf("annual savings needed = %s, want 9714.29", p.AnnualSavingsNeeded)
	}
	if p.Tier != TierHigh {
		t.Errorf("tier = %s, want Alto", p.Tier)
	}
}

func TestProjectRetirementGuardsDivisionByZero(t *testing.T) {
	snap := Snapshot{NetWorth: dec("10000"), MonthlyCashFlow: dec("200")}

	for _, retirementAge := range []int{60, 55} {
		in := RetirementInput{
			CurrentAge:     60,
			RetirementAge:  retirementAge,
			AnnualIncome:   dec("40000"),
			AnnualExpenses: dec("30000"),
			CurrentSavings: dec("10000"),
		}

		p := ProjectRetirement(in, snap)
		if !p.AnnualSavingsNeeded.IsZero() {
			t.Errorf("retirement age %d: annual savings = %s, want 0", retirementAge, p.AnnualSavingsNeeded)
		}
	}
}

func TestProjectRetirementUsesSnapshotTier(t *testing.T) {
	in := RetirementInput{CurrentAge: 30, RetirementAge: 65}
	snap := Snapshot{NetWorth: dec("25000"), MonthlyCashFlow: dec("600")}

	p := ProjectRetirement(in, snap)
	if p.Tier != TierMedium {
		t.Errorf("tier = %s, want Medio", p.Tier)
	}
	if len(p.Advice.Recommendations) == 0 {
		t.Error("advice copy missing for medium tier")
	}
}
