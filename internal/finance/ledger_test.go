package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineItemNet(t *testing.T) {
	item := LineItem{Name: "Inmueble 1", Value: dec("80000"), Debt: dec("30000")}

	if got := item.Net(Asset); !got.Equal(dec("50000")) {
		t.Errorf("asset net = %s, want 50000", got)
	}
	if got := item.Net(Liability); !got.Equal(dec("-50000")) {
		t.Errorf("liability net = %s, want -50000", got)
	}
}

func TestLineItemNetUnderwaterAsset(t *testing.T) {
	// A financed car worth less than its loan drags net worth down.
	item := LineItem{Name: "Automóvil 1", Value: dec("15000"), Debt: dec("18000")}
	if got := item.Net(Asset); !got.Equal(dec("-3000")) {
		t.Errorf("net = %s, want -3000", got)
	}
}

func TestSumPartitionIdentity(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		polarity Polarity
	}{
		{
			name: "assets",
			items: []LineItem{
				{Name: "Inmueble 1", Value: dec("80000"), Debt: dec("30000")},
				{Name: "Automóvil 1", Value: dec("15000"), Debt: dec("18000")},
				{Name: "Muebles", Value: dec("5000"), Debt: dec("1500")},
				{Name: "Efectivo cuenta 1", Value: dec("2000")},
			},
			polarity: Asset,
		},
		{
			name: "liabilities",
			items: []LineItem{
				{Name: "Tarjeta de crédito 1", Debt: dec("6500")},
				{Name: "Tarjeta de crédito 2", Debt: dec("8200")},
				{Name: "Otra deuda 1", Debt: dec("4700")},
			},
			polarity: Liability,
		},
		{
			name:     "empty partition",
			items:    nil,
			polarity: Asset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := SumPartition(tt.items, tt.polarity)
			identity := totals.Value.Sub(totals.Debt)
			if tt.polarity == Liability {
				identity = identity.Neg()
			}
			if !totals.Net.Equal(identity) {
				t.Errorf("net = %s, want value-debt identity %s", totals.Net, identity)
			}
		})
	}
}

func TestSumPartitionExampleTable(t *testing.T) {
	// The worked example from the intake form's help table.
	assets := []LineItem{
		{Name: "Inmueble 1", Value: dec("80000"), Debt: dec("30000")},
		{Name: "Automóvil 1", Value: dec("15000"), Debt: dec("18000")},
		{Name: "Muebles", Value: dec("5000"), Debt: dec("1500")},
		{Name: "Efectivo cuenta 1", Value: dec("2000")},
		{Name: "Efectivo cuenta 2", Value: dec("1500")},
		{Name: "Deudas por cobrar", Value: dec("3000")},
		{Name: "Fondo de retiro", Value: dec("30000")},
	}
	liabilities := []LineItem{
		{Name: "Tarjeta de crédito 1", Value: dec("6500")},
		{Name: "Tarjeta de crédito 2", Value: dec("8200")},
		{Name: "Otra deuda 1", Value: dec("4700")},
	}

	at := SumPartition(assets, Asset)
	lt := SumPartition(liabilities, Liability)

	if !at.Net.Equal(dec("87000")) {
		t.Errorf("asset net = %s, want 87000", at.Net)
	}
	if !lt.Net.Equal(dec("-19400")) {
		t.Errorf("liability net = %s, want -19400", lt.Net)
	}

	snap := BuildSnapshot(at, lt, dec("0"), dec("0"))
	if !snap.NetWorth.Equal(dec("67600")) {
		t.Errorf("net worth = %s, want 67600", snap.NetWorth)
	}
}

func TestBuildSnapshotCashFlow(t *testing.T) {
	income := SumEntries([]Entry{
		{Name: "Ingresos mensuales adulto 1", Amount: dec("3200")},
		{Name: "Otros ingresos", Amount: dec("400")},
	})
	expenses := SumEntries([]Entry{
		{Name: "Alimentación", Amount: dec("900")},
		{Name: "Transporte", Amount: dec("350")},
		{Name: "Servicios públicos", Amount: dec("250")},
	})

	snap := BuildSnapshot(Totals{}, Totals{}, income, expenses)
	if !snap.MonthlyCashFlow.Equal(dec("2100")) {
		t.Errorf("monthly cash flow = %s, want 2100", snap.MonthlyCashFlow)
	}
}
