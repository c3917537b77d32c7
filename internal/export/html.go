package export

import (
	"context"
	"io"

	"github.com/latestcomment/ballot-export/internal/services"
)

// HTMLExporter writes the wrapped document as-is.
type HTMLExporter struct{}

func (HTMLExporter) Export(ctx context.Context, fragment string, opts services.ExportOptions, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, Wrap(fragment, opts))
	return err
}
