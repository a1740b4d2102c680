package reporter

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionTexts(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Text
	}
	return out
}

func TestDocumentSections_Order(t *testing.T) {
	sections := DocumentSections(exampleResult(), "example.com", utcOptions())

	assert.Equal(t, []string{
		"Phishing Analysis Report",
		"Analyzed URL:",
		"example.com",
		"Analysis Result:",
		"Legitimate Website",
		"Confidence:",
		"92.0%",
		"URL Analysis Details:",
		"Has Ip:",
		"No",
		"Url Length:",
		"19",
		"Generated by phishscan on 2024-02-01 08:00:00",
	}, sectionTexts(sections))

	assert.Equal(t, SectionTitle, sections[0].Kind)
	assert.Equal(t, SectionVerdict, sections[4].Kind)
	assert.Equal(t, SectionFooter, sections[len(sections)-1].Kind)
}

func TestDocumentSections_Phishing(t *testing.T) {
	result := exampleResult()
	result.IsPhishing = true

	sections := DocumentSections(result, "", utcOptions())
	assert.Equal(t, "https://example.com", sections[2].Text)
	assert.Equal(t, VerdictPhishing, sections[4].Text)
}

func TestDocumentSections_NoFeatures(t *testing.T) {
	result := exampleResult()
	result.Features = nil

	sections := DocumentSections(result, "", utcOptions())
	require.Len(t, sections, 9)
	assert.Equal(t, DetailsLabel, sections[7].Text)
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, exampleResult(), "example.com", utcOptions()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteDocument_PaginatesLongFeatureLists(t *testing.T) {
	short, err := PageCount(exampleResult(), "", utcOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, short)

	result := exampleResult()
	for i := 0; i < 80; i++ {
		result.Features.Set(fmt.Sprintf("signal_%02d", i), i%2 == 0)
	}

	long, err := PageCount(result, "", utcOptions())
	require.NoError(t, err)
	assert.Greater(t, long, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, result, "", utcOptions()))
}
