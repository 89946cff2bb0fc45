package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jkarlost/calculadora/internal/finance"
	"github.com/jkarlost/calculadora/internal/models"
)

func sampleReport() *models.Report {
	tier := finance.TierHigh
	return &models.Report{
		User: models.UserProfile{
			Nombre:   "Ana María Pérez",
			Edad:     34,
			Email:    "ana@example.com",
			Telefono: "+57 300 000 0000",
		},
		Analysis: models.Analysis{
			Assets:       finance.Totals{Value: decimal.NewFromInt(136500), Debt: decimal.NewFromInt(49500), Net: decimal.NewFromInt(87000)},
			Liabilities:  finance.Totals{Value: decimal.NewFromInt(19400), Net: decimal.NewFromInt(-19400)},
			IncomeTotal:  decimal.NewFromInt(3600),
			ExpenseTotal: decimal.NewFromInt(2100),
			Snapshot:     finance.Snapshot{NetWorth: decimal.NewFromInt(67600), MonthlyCashFlow: decimal.NewFromInt(1500)},
			Tier:         tier,
			Profile:      tier.Profile(),
			Notes:        []string{"Flujo de caja positivo de $1,500.00/mes."},
			Summary:      "Situación Financiera Actual: patrimonio neto de $67,600.00.",
		},
	}
}

func TestBuildMinimalReport(t *testing.T) {
	b, err := Build(sampleReport())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", b[:min(8, len(b))])
	}
}

func TestBuildWithOptionalSections(t *testing.T) {
	rep := sampleReport()
	proj := finance.ProjectRetirement(finance.RetirementInput{
		CurrentAge:     30,
		RetirementAge:  65,
		AnnualIncome:   decimal.NewFromInt(40000),
		AnnualExpenses: decimal.NewFromInt(30000),
		CurrentSavings: decimal.NewFromInt(10000),
	}, rep.Analysis.Snapshot)
	rep.Retirement = &proj
	rep.Plan = "1. Diagnóstico\n2. Estrategias de flujo de caja"

	full, err := Build(rep)
	if err != nil {
		t.Fatalf("Build with optional sections: %v", err)
	}

	minimal, err := Build(sampleReport())
	if err != nil {
		t.Fatalf("Build minimal: %v", err)
	}

	// The optional sections must add content.
	if len(full) <= len(minimal) {
		t.Errorf("full report (%d bytes) not larger than minimal report (%d bytes)", len(full), len(minimal))
	}
}
