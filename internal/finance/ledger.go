// Package finance implements the tabulation core: ledger totals, the
// financial snapshot, the investment-tier classifier and the retirement
// projection.
package finance

import "github.com/shopspring/decimal"

// Polarity distinguishes the two ledger partitions.
type Polarity int

const (
	Asset Polarity = iota
	Liability
)

// LineItem is a single named ledger entry. Value holds the gross worth of an
// asset (or the total amount of a liability) and Debt the debt associated
// with it, e.g. the outstanding mortgage on a property.
type LineItem struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Debt  decimal.Decimal `json:"debt"`
}

// Net returns the item's contribution to net worth. Assets contribute
// value minus debt; liabilities contribute the negated difference.
func (li LineItem) Net(p Polarity) decimal.Decimal {
	net := li.Value.Sub(li.Debt)
	if p == Liability {
		return net.Neg()
	}
	return net
}

// Totals aggregates one ledger partition.
type Totals struct {
	Value decimal.Decimal `json:"value"`
	Debt  decimal.Decimal `json:"debt"`
	Net   decimal.Decimal `json:"net"`
}

// SumPartition totals value, debt and net across all items of a partition.
func SumPartition(items []LineItem, p Polarity) Totals {
	var t Totals
	for _, item := range items {
		t.Value = t.Value.Add(item.Value)
		t.Debt = t.Debt.Add(item.Debt)
		t.Net = t.Net.Add(item.Net(p))
	}
	return t
}

// Entry is a named monthly income or expense amount.
type Entry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SumEntries totals a list of cash-flow entries.
func SumEntries(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Snapshot is the derived financial position. It is recomputed from its
// inputs on every request and never stored on its own.
type Snapshot struct {
	NetWorth        decimal.Decimal `json:"net_worth"`
	MonthlyCashFlow decimal.Decimal `json:"monthly_cash_flow"`
}

// BuildSnapshot derives the snapshot from partition totals and cash-flow
// sums. Liability nets are already negative, so net worth is a plain sum.
func BuildSnapshot(assets, liabilities Totals, income, expenses decimal.Decimal) Snapshot {
	return Snapshot{
		NetWorth:        assets.Net.Add(liabilities.Net),
		MonthlyCashFlow: income.Sub(expenses),
	}
}
