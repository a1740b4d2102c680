package urlhandler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Custom errors for file operations
var (
	ErrFileNotFound   = errors.New("input file not found")
	ErrFilePermission = errors.New("permission denied reading input file")
	ErrFileTooLarge   = errors.New("input file exceeds size limit")
	ErrReadingFile    = errors.New("failed to read file")
)

// MaxInputFileSize bounds uploaded address lists.
const MaxInputFileSize = 10 * 1024 * 1024

// IsTableFile reports whether name should be parsed as comma-delimited.
func IsTableFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

// ReadAddresses decodes r as text and extracts addresses. Table files contribute
// their first column; everything else is read line by line.
func ReadAddresses(name string, r io.Reader, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("file", name).Logger()

	data, err := io.ReadAll(io.LimitReader(r, MaxInputFileSize+1))
	if err != nil {
		fileLogger.Error().Err(err).Msg("Error reading input file")
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, name, err)
	}
	if len(data) > MaxInputFileSize {
		fileLogger.Error().Int("limit", MaxInputFileSize).Msg("Input file too large")
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, name)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")

	var addresses []string
	if IsTableFile(name) {
		addresses = ExtractFirstColumn(text)
	} else {
		addresses = ExtractAddresses(text)
	}

	fileLogger.Debug().
		Int("bytes", len(data)).
		Int("addresses", len(addresses)).
		Bool("table", IsTableFile(name)).
		Msg("Extracted addresses from file")

	return addresses, nil
}

// ReadAddressesFromFile opens path and delegates to ReadAddresses.
func ReadAddressesFromFile(path string, logger zerolog.Logger) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadingFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, path)
		}
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, path, err)
	}
	defer func() { _ = file.Close() }()

	return ReadAddresses(filepath.Base(path), file, logger)
}
