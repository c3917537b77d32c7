package services

import (
	"context"
	"io"

	"github.com/latestcomment/ballot-export/internal/models"
)

// DataSource provides the raw ballot collection.
type DataSource interface {
	Ballots(ctx context.Context) ([]models.Ballot, error)
}

// InputProvider provides the raw, unparsed team identifier.
type InputProvider interface {
	TeamID(ctx context.Context) (string, error)
}

// ExportOptions is the exporter-neutral page configuration.
type ExportOptions struct {
	PageBreak string  // "avoid-all" or "auto"
	MarginMM  float64 // page margin in millimetres
	Title     string
}

// Exporter turns a rendered ballot fragment into a downloadable artifact.
type Exporter interface {
	Export(ctx context.Context, fragment string, opts ExportOptions, w io.Writer) error
}

// StaticInput is an InputProvider for a value known up front, such as a
// form field or a command-line flag.
type StaticInput string

func (s StaticInput) TeamID(context.Context) (string, error) {
	return string(s), nil
}
