// Package report renders the downloadable PDF summary.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jkarlost/calculadora/internal/finance"
	"github.com/jkarlost/calculadora/internal/models"
	"github.com/jkarlost/calculadora/internal/money"
)

// Build renders the report as PDF bytes. Section order is fixed: personal
// data, financial situation, investment profile, analysis, then the optional
// retirement projection and work plan. Optional sections are omitted when
// their data is absent.
func Build(rep *models.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Informe Financiero - Taller de Bienes Raíces"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Análisis de Inversión en Bienes Raíces"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	writePersonalData(pdf, tr, rep.User)
	writeFinancialSituation(pdf, tr, rep.Analysis)
	writeProfile(pdf, tr, rep.Analysis)
	writeAnalysis(pdf, tr, rep.Analysis)
	if rep.Retirement != nil {
		writeRetirement(pdf, tr, rep.Retirement)
	}
	if rep.Plan != "" {
		writePlan(pdf, tr, rep.Plan)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
}

func line(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
}

func writePersonalData(pdf *fpdf.Fpdf, tr func(string) string, user models.UserProfile) {
	sectionTitle(pdf, tr, "Datos Personales:")
	line(pdf, tr, fmt.Sprintf("Nombre: %s", user.Nombre))
	line(pdf, tr, fmt.Sprintf("Edad: %d", user.Edad))
	line(pdf, tr, fmt.Sprintf("Email: %s", user.Email))
	pdf.Ln(5)
}

func writeFinancialSituation(pdf *fpdf.Fpdf, tr func(string) string, a models.Analysis) {
	sectionTitle(pdf, tr, "Situación Financiera:")
	line(pdf, tr, fmt.Sprintf("Ingresos Mensuales: %s", money.Format(a.IncomeTotal)))
	line(pdf, tr, fmt.Sprintf("Gastos Mensuales: %s", money.Format(a.ExpenseTotal)))
	line(pdf, tr, fmt.Sprintf("Flujo de Caja Mensual: %s", money.Format(a.Snapshot.MonthlyCashFlow)))
	line(pdf, tr, fmt.Sprintf("Activos Totales: %s", money.Format(a.Assets.Net)))
	line(pdf, tr, fmt.Sprintf("Pasivos Totales: %s", money.Format(a.Liabilities.Net.Abs())))
	line(pdf, tr, fmt.Sprintf("Patrimonio Neto: %s", money.Format(a.Snapshot.NetWorth)))
	pdf.Ln(5)
}

func writeProfile(pdf *fpdf.Fpdf, tr func(string) string, a models.Analysis) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Perfil de Inversión en Bienes Raíces: %s", a.Profile.Level)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, tr(a.Profile.Description), "", "L", false)
	pdf.Ln(5)
}

func writeAnalysis(pdf *fpdf.Fpdf, tr func(string) string, a models.Analysis) {
	sectionTitle(pdf, tr, "Análisis y Recomendaciones:")
	pdf.MultiCell(0, 8, tr(a.Summary), "", "L", false)
	for _, note := range a.Notes {
		pdf.MultiCell(0, 8, tr("- "+note), "", "L", false)
	}
	line(pdf, tr, fmt.Sprintf("Curso recomendado: %s", a.Profile.Course.Name))
	pdf.Ln(5)
}

func writeRetirement(pdf *fpdf.Fpdf, tr func(string) string, p *finance.RetirementProjection) {
	sectionTitle(pdf, tr, "Proyección de Retiro con Enfoque en Bienes Raíces:")
	line(pdf, tr, fmt.Sprintf("Años hasta el retiro: %d", p.YearsToRetirement))
	line(pdf, tr, fmt.Sprintf("Necesidad total estimada: %s", money.Format(p.TotalNeed)))
	line(pdf, tr, fmt.Sprintf("Ahorro anual necesario: %s", money.Format(p.AnnualSavingsNeeded)))
	line(pdf, tr, fmt.Sprintf("Perfil de Inversión: %s", p.Tier))
	for _, rec := range p.Advice.Recommendations {
		pdf.MultiCell(0, 8, tr("- "+rec), "", "L", false)
	}
	for _, course := range p.Advice.Courses {
		line(pdf, tr, fmt.Sprintf("Curso recomendado: %s", course))
	}
	pdf.Ln(5)
}

func writePlan(pdf *fpdf.Fpdf, tr func(string) string, plan string) {
	sectionTitle(pdf, tr, "Plan de Trabajo Personalizado:")
	pdf.MultiCell(0, 8, tr(plan), "", "L", false)
}
