package services

import (
	"fmt"

	"github.com/latestcomment/ballot-export/internal/models"
)

const (
	witnessesPerSide = 3
	awardRanks       = 4
)

// RenderOptions selects between the field mappings seen on published
// ballots where the intended mapping is not settled.
type RenderOptions struct {
	// LiteralStatements builds the defense opening and closing from the
	// plaintiff fields, as the tabulation page did.
	LiteralStatements bool
	// SequentialWitnesses numbers witness characters 1..6 instead of
	// using witness{sideIndex*i}.
	SequentialWitnesses bool
}

// Render builds the document for one ballot. It never fails; absent
// fields come out as empty text and count as zero.
func Render(ballot models.Ballot, opts RenderOptions) models.Document {
	doc := models.Document{
		Round: ballot.Text(models.FieldRound),
		Judge: ballot.Text(models.FieldJudge),
	}

	doc.Sections = append(doc.Sections, statementSection(ballot, models.Opening, opts))

	for sideIndex, dx := range []models.Side{models.Plaintiff, models.Defense} {
		cx := dx.Opponent()
		for i := 1; i <= witnessesPerSide; i++ {
			direct := performance(ballot, "Aty Dx", dx, models.ExamKey(dx, models.AttorneyDirect, i, models.AttrAttorney), models.ExamKey(dx, models.AttorneyDirect, i, ""))
			cross := performance(ballot, "Aty Cx", cx, models.ExamKey(cx, models.AttorneyCross, i, models.AttrAttorney), models.ExamKey(cx, models.AttorneyCross, i, ""))
			witnessName := models.ExamKey(dx, models.WitnessDirect, i, models.AttrWitness)
			witnessDirect := performance(ballot, "Wit Dx", dx, witnessName, models.ExamKey(dx, models.WitnessDirect, i, ""))
			witnessCross := performance(ballot, "Wit Cx", dx, witnessName, models.ExamKey(dx, models.WitnessCross, i, ""))

			doc.Totals.Add(dx, direct.Score+witnessDirect.Score+witnessCross.Score)
			doc.Totals.Add(cx, cross.Score)

			character := ballot.Text(models.WitnessKey(witnessNumber(sideIndex+1, i, opts)))
			doc.Sections = append(doc.Sections, models.Section{
				Title:        fmt.Sprintf("%s Witness %d (%s)", dx.Name(), i, character),
				Performances: []models.Performance{direct, cross, witnessDirect, witnessCross},
			})
		}
	}

	doc.Sections = append(doc.Sections,
		statementSection(ballot, models.Closing, opts),
		awardsSection(ballot, models.AttorneyAwards),
		awardsSection(ballot, models.WitnessAwards),
	)
	return doc
}

// witnessNumber maps a side (1 plaintiff, 2 defense) and its i-th witness to
// the witness{n} field. The literal product repeats 2 for both plaintiff
// witness 2 and defense witness 1.
func witnessNumber(sideIndex, i int, opts RenderOptions) int {
	if opts.SequentialWitnesses {
		return (sideIndex-1)*witnessesPerSide + i
	}
	return sideIndex * i
}

// performance reads one slot; scoreKey also prefixes the comments field.
func performance(ballot models.Ballot, role string, side models.Side, nameKey, scoreKey string) models.Performance {
	score, ok := ballot.Number(scoreKey)
	return models.Performance{
		Role:     role,
		Name:     ballot.Text(nameKey),
		Score:    score,
		HasScore: ok,
		Comments: ballot.Text(scoreKey + string(models.AttrComments)),
		Side:     side,
	}
}

func statementSection(ballot models.Ballot, st models.Statement, opts RenderOptions) models.Section {
	defenseSource := models.Defense
	if opts.LiteralStatements {
		defenseSource = models.Plaintiff
	}
	return models.Section{
		Title: st.Title(),
		Performances: []models.Performance{
			statement(ballot, st, models.Plaintiff, models.Plaintiff),
			statement(ballot, st, models.Defense, defenseSource),
		},
	}
}

// statement labels the performance for side but reads source's fields.
func statement(ballot models.Ballot, st models.Statement, side, source models.Side) models.Performance {
	return performance(ballot,
		fmt.Sprintf("%s %s", side.Glyph(), st),
		source,
		models.StatementKey(source, st, models.AttrAttorney),
		models.StatementKey(source, st, models.AttrScore),
	)
}

func awardsSection(ballot models.Ballot, category models.AwardCategory) models.Section {
	awards := make([]string, 0, awardRanks)
	for rank := 1; rank <= awardRanks; rank++ {
		awards = append(awards, ballot.Text(models.AwardKey(category, rank)))
	}
	return models.Section{Title: category.Title(), Awards: awards}
}
