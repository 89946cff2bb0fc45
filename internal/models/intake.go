package models

// RegisterRequest is the personal-data step of the intake form.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Edad     int    `json:"edad"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ItemInput is one asset or liability row as submitted by the form. Value and
// Debt arrive as raw currency text ("$80,000.00") and are parsed leniently:
// garbage becomes zero, never an error.
type ItemInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Debt  string `json:"debt"`
}

// EntryInput is one income or expense row as submitted by the form.
type EntryInput struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IntakeRequest carries the full financial state of one session. It is
// reconstructed from user input on every request; nothing is read back from
// session storage.
type IntakeRequest struct {
	Assets      []ItemInput  `json:"assets"`
	Liabilities []ItemInput  `json:"liabilities"`
	Income      []EntryInput `json:"income"`
	Expenses    []EntryInput `json:"expenses"`
}

// RetirementRequest is the retirement-planning step. Monetary fields arrive
// as raw currency text like the rest of the form.
type RetirementRequest struct {
	CurrentAge     int    `json:"edad_actual"`
	RetirementAge  int    `json:"edad_retiro"`
	AnnualIncome   string `json:"ingresos_retiro"`
	AnnualExpenses string `json:"gastos_retiro"`
	CurrentSavings string `json:"ahorros_retiro"`
}

// RetirementProjectionRequest is the body of the retirement-projection
// endpoint: the retirement inputs plus the financial state they are judged
// against.
type RetirementProjectionRequest struct {
	Retirement RetirementRequest `json:"retirement"`
	Finances   IntakeRequest     `json:"finances"`
}

// ReportRequest bundles everything the PDF report needs. Retirement and the
// generated plan are optional sections; when absent they are omitted from the
// document.
type ReportRequest struct {
	Finances    IntakeRequest      `json:"finances"`
	Retirement  *RetirementRequest `json:"retirement,omitempty"`
	IncludePlan bool               `json:"include_plan"`
}
