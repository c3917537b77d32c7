package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/latestcomment/ballot-export/internal/models"
)

const ballotsMarker = "var ballots ="

// PageSource reads the ballots a results page embeds in its first inline
// script as `var ballots = [...]`.
type PageSource struct {
	Path string
}

func (s PageSource) Ballots(ctx context.Context) ([]models.Ballot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return ParsePage(data)
}

// ParsePage extracts the ballot array from page markup.
func ParsePage(page []byte) ([]models.Ballot, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	script, ok := firstInlineScript(doc)
	if !ok {
		return nil, fmt.Errorf("%w: no inline script", models.ErrNoBallotData)
	}
	_, payload, ok := strings.Cut(script, ballotsMarker)
	if !ok {
		return nil, fmt.Errorf("%w: %q not found", models.ErrNoBallotData, ballotsMarker)
	}
	// Only the array literal is decoded; statements after it are ignored.
	var ballots []models.Ballot
	if err := json.NewDecoder(strings.NewReader(payload)).Decode(&ballots); err != nil {
		return nil, fmt.Errorf("decode ballots: %w", err)
	}
	return ballots, nil
}

// firstInlineScript finds the first <script> without a src attribute.
func firstInlineScript(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "script" && !hasAttr(n, "src") {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		return b.String(), true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text, ok := firstInlineScript(c); ok {
			return text, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
