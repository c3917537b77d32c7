// Package sources loads ballot collections from the files a tabulation
// site publishes.
package sources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/latestcomment/ballot-export/internal/services"
)

// Open picks a data source from the file extension.
func Open(path string) (services.DataSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return PageSource{Path: path}, nil
	case ".json":
		return FileSource{Path: path, Format: FormatJSON}, nil
	case ".yaml", ".yml":
		return FileSource{Path: path, Format: FormatYAML}, nil
	default:
		return nil, fmt.Errorf("unsupported ballot source %q", path)
	}
}
