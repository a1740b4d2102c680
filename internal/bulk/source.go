package bulk

import (
	"io"

	"github.com/aleister1102/phishscan/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Source is where a list of addresses comes from: pasted text or an uploaded file.
type Source interface {
	label() string
	read(logger zerolog.Logger) ([]string, error)
}

// TextSource is a pasted block with one address per line.
type TextSource struct {
	Text string
}

func (s TextSource) label() string { return "text" }

func (s TextSource) read(zerolog.Logger) ([]string, error) {
	return urlhandler.ExtractAddresses(s.Text), nil
}

// FileSource is an uploaded file. Names ending in .csv are read as tables and
// contribute their first column.
type FileSource struct {
	Name   string
	Reader io.Reader
}

func (s FileSource) label() string { return s.Name }

func (s FileSource) read(logger zerolog.Logger) ([]string, error) {
	return urlhandler.ReadAddresses(s.Name, s.Reader, logger)
}
