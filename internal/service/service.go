package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/catalog"
	"github.com/jkarlost/calculadora/internal/config"
	"github.com/jkarlost/calculadora/internal/finance"
	"github.com/jkarlost/calculadora/internal/integrations/planner"
	"github.com/jkarlost/calculadora/internal/models"
	"github.com/jkarlost/calculadora/internal/money"
	"github.com/jkarlost/calculadora/internal/report"
)

// Validation errors surfaced to the user at intake.
var (
	ErrUnderage      = errors.New("debes ser mayor de 18 años para usar este programa")
	ErrMissingFields = errors.New("por favor completa todos los campos obligatorios")
)

// store is the slice of the repository the service needs.
type store interface {
	CreateUser(user *models.UserProfile) error
	FindUserByID(id int64) (*models.UserProfile, error)
	CreateFinances(rec *models.FinancesRecord) error
}

type planGenerator interface {
	GeneratePlan(ctx context.Context, t planner.Totals) string
}

type reportMailer interface {
	SendReport(to, nombre, filename string, pdfBytes []byte) error
}

// Service handles business logic
type Service struct {
	repo    store
	catalog *catalog.Catalog
	planner planGenerator
	mailer  reportMailer
	log     *logrus.Logger
	config  *config.Config
}

// NewService initializes a new service
func NewService(repo store, cat *catalog.Catalog, gen planGenerator, mailer reportMailer, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, catalog: cat, planner: gen, mailer: mailer, log: log, config: cfg}
}

// Catalog returns the line-item catalog driving the intake form.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Register validates the personal-data step, persists the profile and issues
// a session token that carries the user ID across the remaining steps.
func (s *Service) Register(req models.RegisterRequest) (*models.UserProfile, string, error) {
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, "", ErrMissingFields
	}
	if req.Edad < 18 {
		return nil, "", ErrUnderage
	}

	user := &models.UserProfile{
		Nombre:   strings.TrimSpace(req.Nombre),
		Edad:     req.Edad,
		Email:    strings.TrimSpace(req.Email),
		Telefono: strings.TrimSpace(req.Telefono),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, tokenString, nil
}

// Analyze tabulates the intake submission, classifies the user and persists
// the resulting snapshot row.
func (s *Service) Analyze(ctx context.Context, req models.IntakeRequest) (*models.Analysis, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	analysis := s.analyze(req)

	rec := &models.FinancesRecord{
		UserID:           userID,
		MonthlyIncome:    analysis.IncomeTotal,
		MonthlyExpenses:  analysis.ExpenseTotal,
		TotalAssets:      analysis.Assets.Net,
		TotalLiabilities: analysis.Liabilities.Net.Abs(),
	}
	if err := s.repo.CreateFinances(rec); err != nil {
		return nil, err
	}

	s.log.Infof("Analysis stored for user %d: nivel %s", userID, analysis.Tier)
	return analysis, nil
}

// Retirement projects the retirement plan from the retirement inputs and the
// financial state of the same session.
func (s *Service) Retirement(req models.RetirementRequest, intake models.IntakeRequest) *finance.RetirementProjection {
	analysis := s.analyze(intake)
	proj := finance.ProjectRetirement(retirementInput(req), analysis.Snapshot)
	return &proj
}

// Plan requests the externally generated work plan. Always returns text;
// failures degrade to a fallback message inside the planner.
func (s *Service) Plan(ctx context.Context, intake models.IntakeRequest) string {
	analysis := s.analyze(intake)
	return s.planner.GeneratePlan(ctx, plannerTotals(analysis))
}

// BuildReport renders the PDF report for the session's intake data. The plan
// section is best-effort: a planner failure substitutes fallback text and
// never aborts the report.
func (s *Service) BuildReport(ctx context.Context, req models.ReportRequest) (string, []byte, error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return "", nil, err
	}
	return s.buildReport(ctx, user, req)
}

func (s *Service) buildReport(ctx context.Context, user *models.UserProfile, req models.ReportRequest) (string, []byte, error) {
	analysis := s.analyze(req.Finances)
	rep := &models.Report{
		User:     *user,
		Analysis: *analysis,
	}
	if req.Retirement != nil {
		proj := finance.ProjectRetirement(retirementInput(*req.Retirement), analysis.Snapshot)
		rep.Retirement = &proj
	}
	if req.IncludePlan {
		rep.Plan = s.planner.GeneratePlan(ctx, plannerTotals(analysis))
	}

	pdfBytes, err := report.Build(rep)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("reporte_bienes_raices_%s.pdf", uuid.NewString())
	s.log.Infof("Report generated for user %d (%d bytes)", user.ID, len(pdfBytes))
	return filename, pdfBytes, nil
}

// EmailReport builds the PDF report and sends it to the profile's address.
func (s *Service) EmailReport(ctx context.Context, req models.ReportRequest) error {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return err
	}
	filename, pdfBytes, err := s.buildReport(ctx, user, req)
	if err != nil {
		return err
	}
	return s.mailer.SendReport(user.Email, user.Nombre, filename, pdfBytes)
}

// sessionUser resolves the profile behind the session token.
func (s *Service) sessionUser(ctx context.Context) (*models.UserProfile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindUserByID(userID)
}

// analyze is the pure tabulation path shared by every operation. It never
// persists anything.
func (s *Service) analyze(req models.IntakeRequest) *models.Analysis {
	assets := lineItems(req.Assets, s.catalog.Assets)
	liabilities := lineItems(req.Liabilities, s.catalog.Liabilities)
	income := entries(req.Income, s.catalog.Income)
	expenses := entries(req.Expenses, s.catalog.Expenses)

	assetTotals := finance.SumPartition(assets, finance.Asset)
	liabilityTotals := finance.SumPartition(liabilities, finance.Liability)
	incomeTotal := finance.SumEntries(income)
	expenseTotal := finance.SumEntries(expenses)
	snap := finance.BuildSnapshot(assetTotals, liabilityTotals, incomeTotal, expenseTotal)
	tier := finance.Classify(snap.NetWorth, snap.MonthlyCashFlow)

	analysis := &models.Analysis{
		Assets:       assetTotals,
		Liabilities:  liabilityTotals,
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Snapshot:     snap,
		Tier:         tier,
		Profile:      tier.Profile(),
		Notes:        situationNotes(snap),
	}
	analysis.Summary = summary(analysis)
	return analysis
}

// lineItems parses the submitted rows against the catalog partition. Items
// not in the catalog are ignored: the catalog is not user-extensible.
func lineItems(inputs []models.ItemInput, items []catalog.Item) []finance.LineItem {
	byName := make(map[string]models.ItemInput, len(inputs))
	for _, in := range inputs {
		byName[in.Name] = in
	}

	result := make([]finance.LineItem, 0, len(items))
	for _, item := range items {
		in := byName[item.Name]
		result = append(result, finance.LineItem{
			Name:  item.Name,
			Value: money.Parse(in.Value),
			Debt:  money.Parse(in.Debt),
		})
	}
	return result
}

func entries(inputs []models.EntryInput, items []catalog.Item) []finance.Entry {
	byName := make(map[string]models.EntryInput, len(inputs))
	for _, in := range inputs {
		byName[in.Name] = in
	}

	result := make([]finance.Entry, 0, len(items))
	for _, item := range items {
		result = append(result, finance.Entry{
			Name:   item.Name,
			Amount: money.Parse(byName[item.Name].Amount),
		})
	}
	return result
}

func retirementInput(req models.RetirementRequest) finance.RetirementInput {
	return finance.RetirementInput{
		CurrentAge:     req.CurrentAge,
		RetirementAge:  req.RetirementAge,
		AnnualIncome:   money.Parse(req.AnnualIncome),
		AnnualExpenses: money.Parse(req.AnnualExpenses),
		CurrentSavings: money.Parse(req.CurrentSavings),
	}
}

func plannerTotals(a *models.Analysis) planner.Totals {
	return planner.Totals{
		MonthlyIncome:    a.IncomeTotal,
		MonthlyExpenses:  a.ExpenseTotal,
		TotalAssets:      a.Assets.Net,
		TotalLiabilities: a.Liabilities.Net.Abs(),
	}
}

func situationNotes(snap finance.Snapshot) []string {
	var notes []string

	if snap.MonthlyCashFlow.IsPositive() {
		notes = append(notes, fmt.Sprintf(
			"Flujo de caja positivo de %s/mes. Podrías destinar parte de este excedente a inversión en propiedades.",
			money.Format(snap.MonthlyCashFlow)))
	} else {
		notes = append(notes, fmt.Sprintf(
			"Flujo de caja negativo de %s/mes. Necesitas equilibrar tus finanzas antes de considerar inversiones.",
			money.Format(snap.MonthlyCashFlow.Abs())))
	}

	switch {
	case snap.NetWorth.GreaterThan(decimal.NewFromInt(50000)):
		notes = append(notes, "Patrimonio neto sólido. Podrías usar parte como garantía para financiamiento de propiedades.")
	case snap.NetWorth.IsPositive():
		notes = append(notes, "Patrimonio neto positivo pero modesto. Considera estrategias de bajo riesgo como alquiler de habitaciones.")
	default:
		notes = append(notes, "Patrimonio neto negativo. Enfócate en reducir deudas antes de invertir.")
	}

	return notes
}

func summary(a *models.Analysis) string {
	sign := func(d decimal.Decimal) string {
		if d.IsPositive() {
			return "Positivo"
		}
		return "Negativo"
	}

	return fmt.Sprintf(`Situación Financiera Actual:
- Ingresos Mensuales: %s
- Gastos Mensuales: %s
- Flujo de Caja: %s (%s)
- Activos Totales: %s
- Pasivos Totales: %s
- Patrimonio Neto: %s (%s)

Perfil de Inversión en Bienes Raíces: %s
%s`,
		money.Format(a.IncomeTotal),
		money.Format(a.ExpenseTotal),
		money.Format(a.Snapshot.MonthlyCashFlow), sign(a.Snapshot.MonthlyCashFlow),
		money.Format(a.Assets.Net),
		money.Format(a.Liabilities.Net.Abs()),
		money.Format(a.Snapshot.NetWorth), sign(a.Snapshot.NetWorth),
		a.Profile.Level,
		a.Profile.Description,
	)
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userIDStr, ok := ctx.Value("userID").(string)
	if !ok || userIDStr == "" {
		return 0, fmt.Errorf("user ID not found in context")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %w", err)
	}
	return userID, nil
}
