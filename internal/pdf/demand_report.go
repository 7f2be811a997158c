package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateDemandReport(data ReportData) ([]byte, error)
}

type ReportLead struct {
	InvestorName string
	Email        string
	Amount       float64
	SubmittedAt  time.Time
}

type ReportData struct {
	ProductName string
	Currency    string
	TotalVolume float64
	LeadCount   int
	GeneratedAt time.Time
	Leads       []ReportLead
}

// ReportGenerator — реализация на gofpdf, отдаёт PDF в память.
type ReportGenerator struct {
	author string
}

func NewReportGenerator(author string) *ReportGenerator {
	if author == "" {
		author = "NanoFrontier"
	}
	return &ReportGenerator{author: author}
}

func (g *ReportGenerator) GenerateDemandReport(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Demand Report - %s", data.ProductName), true)
	pdf.SetAuthor(g.author, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "DEMAND REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("%s  |  generated %s",
		data.ProductName,
		data.GeneratedAt.Format("02.01.2006 15:04"),
	)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Итоги
	g.sectionTitle(pdf, "Summary")
	g.kvLine(pdf, "Total volume", fmt.Sprintf("%.2f %s", data.TotalVolume, data.Currency))
	g.kvLine(pdf, "Interested parties", fmt.Sprintf("%d", data.LeadCount))
	pdf.Ln(2)
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Заявки
	g.sectionTitle(pdf, "Leads")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(55, 7, "Investor", "B", 0, "L", false, 0, "")
	pdf.CellFormat(65, 7, "Email", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Submitted", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range data.Leads {
		pdf.CellFormat(55, 6, l.InvestorName, "", 0, "L", false, 0, "")
		pdf.CellFormat(65, 6, l.Email, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", l.Amount), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, l.SubmittedAt.Format("02.01.2006 15:04"), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, "Figures reflect indications of interest only and do not constitute binding commitments.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render demand report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(60, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(20, y, 190, y)
	pdf.SetXY(x, y+1)
}
