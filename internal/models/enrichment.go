package models

// EnrichmentInfo is a best-effort snapshot of the page behind an address.
// When Error is set the other fields are guesses or nil.
type EnrichmentInfo struct {
	Domain      string  `json:"domain"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContentType *string `json:"type"`
	HTTPStatus  *int    `json:"status,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Failed reports whether the snapshot is a placeholder.
func (e EnrichmentInfo) Failed() bool {
	return e.Error != ""
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
