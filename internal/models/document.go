package models

import (
	"fmt"
	"html"
	"strings"
)

const defenseBackground = "rgb(230, 231, 233)"

// Performance is one scored unit of speech by one participant.
type Performance struct {
	Role     string
	Name     string
	Score    float64
	HasScore bool
	Comments string
	Side     Side
}

// ScoreText is the score as shown on the ballot; a missing score is empty.
func (p Performance) ScoreText() string {
	if !p.HasScore {
		return ""
	}
	return FormatNumber(p.Score)
}

func (p Performance) HTML() string {
	background := ""
	if p.Side == Defense {
		background = defenseBackground
	}
	return fmt.Sprintf(`<div style="background:%s;padding:5px">%s (%s) <b>%s</b><br/><i>%s</i></div>`,
		background,
		html.EscapeString(p.Role),
		html.EscapeString(p.Name),
		p.ScoreText(),
		html.EscapeString(p.Comments),
	)
}

// Section is a titled block of the ballot. It carries either performances
// or a ranked award list.
type Section struct {
	Title        string
	Performances []Performance
	Awards       []string
}

func (s Section) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<span style="font-weight: bold; color: darkblue;">%s</span>`, html.EscapeString(s.Title))
	for _, p := range s.Performances {
		b.WriteString(p.HTML())
	}
	if s.Awards != nil {
		b.WriteString("<ol>")
		for _, name := range s.Awards {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(name))
		}
		b.WriteString("</ol>")
	}
	b.WriteString("<hr />")
	return b.String()
}

type Totals struct {
	Plaintiff float64
	Defense   float64
}

func (t *Totals) Add(side Side, score float64) {
	if side == Defense {
		t.Defense += score
		return
	}
	t.Plaintiff += score
}

// Result is "Tie" or "{Winner} wins +{margin}".
func (t Totals) Result() string {
	if t.Plaintiff == t.Defense {
		return "Tie"
	}
	winner, margin := Plaintiff, t.Plaintiff-t.Defense
	if t.Defense > t.Plaintiff {
		winner, margin = Defense, t.Defense-t.Plaintiff
	}
	return fmt.Sprintf("%s wins +%s", winner.Name(), FormatNumber(margin))
}

// Document is one rendered ballot.
type Document struct {
	Round    string
	Judge    string
	Sections []Section
	Totals   Totals
}

func (d Document) Result() string {
	return d.Totals.Result()
}

// Heading is the summary line shown above the sections.
func (d Document) Heading() string {
	return fmt.Sprintf("Round %s (%s) - %s", d.Round, d.Judge, d.Result())
}

// HTML returns the ballot as a markup fragment ready for an exporter.
func (d Document) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(d.Heading()))
	for _, s := range d.Sections {
		b.WriteString(s.HTML())
	}
	return b.String()
}

// BallotSummary is the one-line view of a ballot used in listings.
type BallotSummary struct {
	Index   int    `json:"index"`
	Round   string `json:"round"`
	Judge   string `json:"judge"`
	PNumber string `json:"pNumber"`
	DNumber string `json:"dNumber"`
	Result  string `json:"result"`
}
