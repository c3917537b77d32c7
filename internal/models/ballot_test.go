package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"statement score", StatementKey(Plaintiff, Opening, AttrScore), "pOpen"},
		{"statement attorney", StatementKey(Defense, Closing, AttrAttorney), "dCloseAttorney"},
		{"statement comments", StatementKey(Defense, Opening, AttrComments), "dOpenComments"},
		{"direct score", ExamKey(Plaintiff, AttorneyDirect, 1, AttrScore), "pDx1"},
		{"cross attorney", ExamKey(Defense, AttorneyCross, 2, AttrAttorney), "dCx2Attorney"},
		{"witness direct name", ExamKey(Plaintiff, WitnessDirect, 3, AttrWitness), "pWDx3Witness"},
		{"witness cross comments", ExamKey(Defense, WitnessCross, 1, AttrComments), "dWCx1Comments"},
		{"witness character", WitnessKey(4), "witness4"},
		{"attorney award", AwardKey(AttorneyAwards, 1), "aty1"},
		{"witness award", AwardKey(WitnessAwards, 4), "wit4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBallotText(t *testing.T) {
	t.Parallel()

	b := Ballot{
		"s":    "Ada",
		"f":    float64(8),
		"half": 7.5,
		"i":    3,
		"n":    json.Number("12"),
		"nil":  nil,
	}
	assert.Equal(t, "Ada", b.Text("s"))
	assert.Equal(t, "8", b.Text("f"))
	assert.Equal(t, "7.5", b.Text("half"))
	assert.Equal(t, "3", b.Text("i"))
	assert.Equal(t, "12", b.Text("n"))
	assert.Equal(t, "", b.Text("nil"))
	assert.Equal(t, "", b.Text("missing"))
}

func TestBallotNumber(t *testing.T) {
	t.Parallel()

	b := Ballot{
		"f":     float64(9),
		"i":     4,
		"str":   " 6 ",
		"words": "great job",
		"n":     json.Number("2.5"),
	}

	n, ok := b.Number("f")
	assert.True(t, ok)
	assert.Equal(t, 9.0, n)

	n, ok = b.Number("i")
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	n, ok = b.Number("str")
	assert.True(t, ok)
	assert.Equal(t, 6.0, n)

	n, ok = b.Number("n")
	assert.True(t, ok)
	assert.Equal(t, 2.5, n)

	_, ok = b.Number("words")
	assert.False(t, ok)
	_, ok = b.Number("missing")
	assert.False(t, ok)

	assert.Equal(t, 0.0, b.Score("words"))
	assert.Equal(t, 0.0, b.Score("missing"))
}

func TestBallotHasTeam(t *testing.T) {
	t.Parallel()

	b := Ballot{FieldPNumber: float64(1234), FieldDNumber: "5678"}
	assert.True(t, b.HasTeam(1234))
	assert.True(t, b.HasTeam(5678))
	assert.False(t, b.HasTeam(9999))
	assert.False(t, Ballot{}.HasTeam(0))
}

func TestSide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Plaintiff", Plaintiff.Name())
	assert.Equal(t, "Defense", Defense.Name())
	assert.Equal(t, Defense, Plaintiff.Opponent())
	assert.Equal(t, Plaintiff, Defense.Opponent())
	assert.Equal(t, "π", Plaintiff.Glyph())
	assert.Equal(t, "∆", Defense.Glyph())
}
