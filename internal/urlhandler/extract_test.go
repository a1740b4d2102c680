package urlhandler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAddresses(t *testing.T) {
	got := ExtractAddresses("bad-site.net\ngood-site.org\n\nnotadomain")
	assert.Equal(t, []string{"bad-site.net", "good-site.org"}, got)
	assert.Equal(t, []string{"https://bad-site.net", "https://good-site.org"}, CanonicalizeAll(got))
}

func TestExtractAddresses_CountMatchesNonBlankDotLines(t *testing.T) {
	lines := []string{"  a.com  ", "", "   ", "nodot", "b.org\r", "\tc.net", "localhost", "d.io"}
	text := strings.Join(lines, "\n")

	expected := 0
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" && strings.Contains(trimmed, ".") {
			expected++
		}
	}

	got := ExtractAddresses(text)
	assert.Len(t, got, expected)
	assert.Equal(t, []string{"a.com", "b.org", "c.net", "d.io"}, got)
}

func TestExtractFirstColumn(t *testing.T) {
	text := "url,label\nexample.com,safe\n\"phish.example.net\",bad\n,empty\nsingle.org\nnocomma"
	assert.Equal(t, []string{"example.com", "phish.example.net", "single.org"}, ExtractFirstColumn(text))
}

func TestReadAddresses(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("text file", func(t *testing.T) {
		got, err := ReadAddresses("urls.txt", strings.NewReader("a.com,b.com\nc.org\n"), logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.com,b.com", "c.org"}, got)
	})

	t.Run("csv file", func(t *testing.T) {
		got, err := ReadAddresses("urls.CSV", strings.NewReader("\ufeffa.com,b.com\nc.org\n"), logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.com", "c.org"}, got)
	})

	t.Run("unknown extension reads lines", func(t *testing.T) {
		got, err := ReadAddresses("urls", strings.NewReader("x.io\n"), logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.io"}, got)
	})
}

func TestReadAddressesFromFile(t *testing.T) {
	logger := zerolog.Nop()
	dir := t.TempDir()

	path := filepath.Join(dir, "targets.csv")
	require.NoError(t, os.WriteFile(path, []byte("example.com,1\nexample.org,2\n"), 0o644))

	got, err := ReadAddressesFromFile(path, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "example.org"}, got)

	_, err = ReadAddressesFromFile(filepath.Join(dir, "missing.txt"), logger)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = ReadAddressesFromFile(dir, logger)
	assert.ErrorIs(t, err, ErrReadingFile)
}
