package reporter

import (
	"fmt"
	"io"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/go-pdf/fpdf"
)

// SectionKind tells the renderer how to style a section.
type SectionKind int

const (
	SectionTitle SectionKind = iota
	SectionLabel
	SectionValue
	SectionVerdict
	SectionFeatureName
	SectionFeatureValue
	SectionFooter
)

// Section is one line of text in a document report.
type Section struct {
	Kind SectionKind
	Text string
}

// DocumentSections lists the text of a report in rendering order. Features
// follow the result's own order. sourceURL falls back to result.URL.
func DocumentSections(result models.ScanResult, sourceURL string, opts Options) []Section {
	opts = opts.withDefaults()
	if sourceURL == "" {
		sourceURL = result.URL
	}

	verdict := VerdictLegitimate
	if result.IsPhishing {
		verdict = VerdictPhishing
	}

	sections := []Section{
		{Kind: SectionTitle, Text: DocumentTitle},
		{Kind: SectionLabel, Text: AnalyzedURLLabel},
		{Kind: SectionValue, Text: sourceURL},
		{Kind: SectionLabel, Text: ResultLabel},
		{Kind: SectionVerdict, Text: verdict},
		{Kind: SectionLabel, Text: ConfidenceLabel},
		{Kind: SectionValue, Text: FormatConfidence(result.Confidence)},
		{Kind: SectionLabel, Text: DetailsLabel},
	}
	for _, feature := range result.Features {
		sections = append(sections,
			Section{Kind: SectionFeatureName, Text: models.HumanizeFeatureName(feature.Name) + ":"},
			Section{Kind: SectionFeatureValue, Text: models.FormatFeatureValue(feature.Value)},
		)
	}
	return append(sections, Section{Kind: SectionFooter, Text: fmt.Sprintf(FooterFormat, opts.formatTime(opts.GeneratedAt))})
}

type rgb struct{ r, g, b int }

var (
	colorBlack   = rgb{0, 0, 0}
	colorAccent  = rgb{0, 120, 255}
	colorFeature = rgb{0, 180, 216}
	colorMuted   = rgb{100, 100, 100}
	colorDanger  = rgb{255, 59, 48}
	colorSafe    = rgb{52, 199, 89}
)

const (
	pageMargin   = 20.0
	footerMargin = 20.0
	lineHeight   = 7.0
)

// WriteDocument renders result as a PDF on w. Long feature lists continue on
// further pages, each carrying the footer.
func WriteDocument(w io.Writer, result models.ScanResult, sourceURL string, opts Options) error {
	pdf := buildDocument(result, sourceURL, opts)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// PageCount reports how many pages the document for result takes.
func PageCount(result models.ScanResult, sourceURL string, opts Options) (int, error) {
	pdf := buildDocument(result, sourceURL, opts)
	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("failed to lay out document: %w", err)
	}
	return pdf.PageCount(), nil
}

func buildDocument(result models.ScanResult, sourceURL string, opts Options) *fpdf.Fpdf {
	sections := DocumentSections(result, sourceURL, opts)
	footer := sections[len(sections)-1].Text
	body := sections[:len(sections)-1]

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(DocumentTitle, true)
	pdf.SetCreator(FilePrefix, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerMargin)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		setColor(pdf, colorMuted)
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, s := range body {
		renderSection(pdf, tr, s, result.IsPhishing)
	}
	return pdf
}

func renderSection(pdf *fpdf.Fpdf, tr func(string) string, s Section, phishing bool) {
	switch s.Kind {
	case SectionTitle:
		pdf.SetFont("Helvetica", "B", 20)
		setColor(pdf, colorAccent)
		pdf.CellFormat(0, 12, tr(s.Text), "", 1, "C", false, 0, "")
		pdf.Ln(lineHeight)
	case SectionLabel:
		pdf.SetFont("Helvetica", "B", 12)
		setColor(pdf, colorBlack)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "L", false)
	case SectionVerdict:
		pdf.SetFont("Helvetica", "", 12)
		if phishing {
			setColor(pdf, colorDanger)
		} else {
			setColor(pdf, colorSafe)
		}
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "L", false)
		pdf.Ln(lineHeight / 2)
	case SectionValue:
		pdf.SetFont("Helvetica", "", 12)
		setColor(pdf, colorAccent)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "L", false)
		pdf.Ln(lineHeight / 2)
	case SectionFeatureName:
		pdf.SetFont("Helvetica", "B", 11)
		setColor(pdf, colorFeature)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "L", false)
	case SectionFeatureValue:
		pdf.SetFont("Helvetica", "", 11)
		setColor(pdf, colorAccent)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "L", false)
		pdf.Ln(lineHeight / 2)
	}
}

func setColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
