package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latestcomment/ballot-export/internal/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FileSource reads a ballot array from a JSON or YAML file.
type FileSource struct {
	Path   string
	Format Format
}

func (s FileSource) Ballots(ctx context.Context) ([]models.Ballot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if s.Format == FormatYAML {
		return decodeYAML(data)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) ([]models.Ballot, error) {
	var ballots []models.Ballot
	if err := json.Unmarshal(data, &ballots); err != nil {
		return nil, fmt.Errorf("decode ballots: %w", err)
	}
	return ballots, nil
}

func decodeYAML(data []byte) ([]models.Ballot, error) {
	var ballots []models.Ballot
	if err := yaml.Unmarshal(data, &ballots); err != nil {
		return nil, fmt.Errorf("decode ballots: %w", err)
	}
	return ballots, nil
}
