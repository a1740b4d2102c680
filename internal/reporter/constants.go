package reporter

const (
	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644

	// Filename prefix for every exported file
	FilePrefix = "phishscan"

	// Tabular layout
	ColumnURL        = "URL"
	ColumnResult     = "Result"
	ColumnConfidence = "Confidence"
	ColumnChecked    = "Date Checked"
	GeneratedOnLabel = "Generated on:"

	// Document layout
	DocumentTitle      = "Phishing Analysis Report"
	AnalyzedURLLabel   = "Analyzed URL:"
	ResultLabel        = "Analysis Result:"
	ConfidenceLabel    = "Confidence:"
	DetailsLabel       = "URL Analysis Details:"
	VerdictPhishing    = "Potential Phishing Site Detected"
	VerdictLegitimate  = "Legitimate Website"
	FooterFormat       = "Generated by phishscan on %s"
	HistoryExportTitle = "phishscan History Export"
)

// Format is the kind of file an export produces.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatPDF     Format = "pdf"
	FormatParquet Format = "parquet"
)
