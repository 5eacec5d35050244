package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Palette (RGB), shared with the web UI.
type rgb struct{ r, g, b int }

var (
	colorPrimary   = rgb{79, 70, 229}   // indigo
	colorDark      = rgb{17, 24, 39}    // near-black
	colorMuted     = rgb{107, 114, 128} // gray
	colorGreen     = rgb{22, 163, 74}
	colorYellow    = rgb{202, 138, 4}
	colorRed       = rgb{220, 38, 38}
	colorOrange    = rgb{234, 88, 12}
	colorSectionBg = rgb{249, 250, 251}
	colorBorder    = rgb{229, 231, 235}
)

func scoreColor(score int) rgb {
	if score >= 75 {
		return colorGreen
	}
	if score >= 50 {
		return colorYellow
	}
	return colorRed
}

func scoreLabel(score int) string {
	if score >= 75 {
		return "Strong"
	}
	if score >= 50 {
		return "Moderate"
	}
	return "Needs Work"
}

const (
	pageMargin = 18.0
	pageWidth  = 210.0 // A4 portrait, mm
	usableW    = pageWidth - 2*pageMargin
)

// RenderPDF renders a report as a downloadable PDF document.
func RenderPDF(report Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	drawHeader(pdf)
	drawMeta(pdf, report)
	drawScores(pdf, report)

	if report.AnalysisType == ModeJD && len(report.MissingKeywords) > 0 {
		drawKeywordChips(pdf, report.MissingKeywords)
	}

	drawBulletSection(pdf, "Strengths", report.Strengths, colorGreen)
	drawBulletSection(pdf, "Weaknesses", report.Weaknesses, colorYellow)
	drawBulletSection(pdf, "Suggestions", report.Suggestions, colorPrimary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(colorPrimary.r, colorPrimary.g, colorPrimary.b)
	pdf.Rect(0, 0, pageWidth, 26, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(pageMargin, 7)
	pdf.CellFormat(0, 9, "ResumeIQ", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 5, "AI-Powered Resume Analysis Report", "", 1, "L", false, 0, "")
	pdf.SetY(32)
}

func drawMeta(pdf *gofpdf.Fpdf, report Report) {
	label := "JD Match Analysis"
	if report.AnalysisType == ModeRole {
		label = "Role: " + report.Role
	}
	date := report.CreatedAt.Format("2 January 2006")

	pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s   -   Generated on %s", label, date), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	y := pdf.GetY() + 2
	pdf.Line(pageMargin, y, pageMargin+usableW, y)
	pdf.SetY(y + 4)
}

func drawScores(pdf *gofpdf.Fpdf, report Report) {
	y := pdf.GetY()
	boxH := 26.0

	boxW := usableW
	if report.AnalysisType == ModeJD {
		boxW = usableW/2 - 3
	}

	drawScoreBox(pdf, pageMargin, y, boxW, boxH, "ATS SCORE", report.Score)
	if report.AnalysisType == ModeJD && report.MatchScore != nil {
		drawScoreBox(pdf, pageMargin+boxW+6, y, boxW, boxH, "JD MATCH SCORE", *report.MatchScore)
	}

	pdf.SetY(y + boxH + 6)
}

func drawScoreBox(pdf *gofpdf.Fpdf, x, y, w, h float64, title string, score int) {
	pdf.SetFillColor(colorSectionBg.r, colorSectionBg.g, colorSectionBg.b)
	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	pdf.RoundedRect(x, y, w, h, 2, "1234", "FD")

	pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetXY(x+4, y+3)
	pdf.CellFormat(w-8, 4, title, "", 0, "L", false, 0, "")

	c := scoreColor(score)
	pdf.SetTextColor(c.r, c.g, c.b)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetXY(x+4, y+8)
	pdf.CellFormat(24, 14, fmt.Sprintf("%d", score), "", 0, "L", false, 0, "")

	pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(x+28, y+13)
	pdf.CellFormat(w-32, 5, fmt.Sprintf("/ 100  -  %s", scoreLabel(score)), "", 0, "L", false, 0, "")
}

func drawKeywordChips(pdf *gofpdf.Fpdf, keywords []string) {
	drawSectionTitle(pdf, "Missing Keywords", colorOrange)

	x := pageMargin
	y := pdf.GetY()
	chipH := 7.0
	gap := 2.0

	pdf.SetFont("Helvetica", "", 8)
	for _, keyword := range keywords {
		chipW := pdf.GetStringWidth(keyword) + 6
		if x+chipW > pageMargin+usableW {
			x = pageMargin
			y += chipH + gap
		}

		pdf.SetFillColor(255, 247, 237)
		pdf.SetDrawColor(253, 186, 116)
		pdf.RoundedRect(x, y, chipW, chipH, 1.5, "1234", "FD")

		pdf.SetTextColor(colorOrange.r, colorOrange.g, colorOrange.b)
		pdf.SetXY(x+3, y+1.5)
		pdf.CellFormat(chipW-6, 4, keyword, "", 0, "L", false, 0, "")

		x += chipW + gap
	}

	pdf.SetY(y + chipH + 6)
}

func drawSectionTitle(pdf *gofpdf.Fpdf, title string, color rgb) {
	pdf.SetTextColor(color.r, color.g, color.b)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetY(pdf.GetY() + 1)
}

func drawBulletSection(pdf *gofpdf.Fpdf, title string, items []string, color rgb) {
	if len(items) == 0 {
		return
	}

	drawSectionTitle(pdf, title, color)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		lines := pdf.SplitText(item, usableW-12)
		rowH := float64(len(lines))*4.5 + 4

		y := pdf.GetY()
		if y+rowH > 297-pageMargin {
			pdf.AddPage()
			y = pdf.GetY()
		}

		pdf.SetFillColor(colorSectionBg.r, colorSectionBg.g, colorSectionBg.b)
		pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
		pdf.RoundedRect(pageMargin, y, usableW, rowH, 1.5, "1234", "FD")

		pdf.SetTextColor(color.r, color.g, color.b)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(pageMargin+3, y+2)
		pdf.CellFormat(4, 4.5, "-", "", 0, "L", false, 0, "")

		pdf.SetTextColor(colorDark.r, colorDark.g, colorDark.b)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(pageMargin+8, y+2)
		pdf.MultiCell(usableW-12, 4.5, item, "", "L", false)

		pdf.SetY(y + rowH + 2)
	}

	pdf.SetY(pdf.GetY() + 4)
}
