package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ballot is one judge's scorecard for one round, stored as the flat
// field map the tabulation page publishes.
type Ballot map[string]any

type Side string

const (
	Plaintiff Side = "p"
	Defense   Side = "d"
)

// Name is the display name used in headers and the result line.
func (s Side) Name() string {
	if s == Defense {
		return "Defense"
	}
	return "Plaintiff"
}

// Glyph is the short role marker used on statement lines.
func (s Side) Glyph() string {
	if s == Defense {
		return "∆"
	}
	return "π"
}

// Opponent returns the other side of the courtroom.
func (s Side) Opponent() Side {
	if s == Defense {
		return Plaintiff
	}
	return Defense
}

type Statement string

const (
	Opening Statement = "Open"
	Closing Statement = "Close"
)

// Title is the section heading for the statement pair.
func (s Statement) Title() string {
	if s == Closing {
		return "Closing"
	}
	return "Opening"
}

type Stage string

const (
	AttorneyDirect Stage = "Dx"
	AttorneyCross  Stage = "Cx"
	WitnessDirect  Stage = "WDx"
	WitnessCross   Stage = "WCx"
)

// Attribute selects which value of a slot a key addresses. The zero value
// addresses the score.
type Attribute string

const (
	AttrScore    Attribute = ""
	AttrAttorney Attribute = "Attorney"
	AttrComments Attribute = "Comments"
	AttrWitness  Attribute = "Witness"
)

type AwardCategory string

const (
	AttorneyAwards AwardCategory = "aty"
	WitnessAwards  AwardCategory = "wit"
)

func (c AwardCategory) Title() string {
	if c == WitnessAwards {
		return "Individual Awards (Witness)"
	}
	return "Individual Awards (Attorney)"
}

// Field names that are not built from a slot pattern.
const (
	FieldRound   = "round"
	FieldJudge   = "judge"
	FieldPNumber = "pNumber"
	FieldDNumber = "dNumber"
)

// StatementKey builds keys like "pOpen", "dCloseAttorney".
func StatementKey(side Side, st Statement, attr Attribute) string {
	return string(side) + string(st) + string(attr)
}

// ExamKey builds keys like "pDx1", "dCx2Comments", "pWDx3Witness".
func ExamKey(side Side, stage Stage, i int, attr Attribute) string {
	return string(side) + string(stage) + strconv.Itoa(i) + string(attr)
}

// WitnessKey builds the character name key "witness{n}".
func WitnessKey(n int) string {
	return "witness" + strconv.Itoa(n)
}

// AwardKey builds ranked award keys like "aty1", "wit4".
func AwardKey(category AwardCategory, rank int) string {
	return string(category) + strconv.Itoa(rank)
}

// Text returns the field as display text. Missing and null fields are
// the empty string.
func (b Ballot) Text(key string) string {
	v, ok := b[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return FormatNumber(t)
	case float32:
		return FormatNumber(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Number reads the field as a number. Numeric strings are accepted; any
// other value reports false.
func (b Ballot) Number(key string) (float64, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Score reads a score field, counting a missing or unreadable score as 0.
func (b Ballot) Score(key string) float64 {
	f, _ := b.Number(key)
	return f
}

// HasTeam reports whether either side of the ballot is the given team.
func (b Ballot) HasTeam(teamID int) bool {
	for _, key := range []string{FieldPNumber, FieldDNumber} {
		if n, ok := b.Number(key); ok && n == float64(teamID) {
			return true
		}
	}
	return false
}

// FormatNumber prints a score without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
