package services

import (
	"strconv"

	"github.com/latestcomment/ballot-export/internal/models"
)

// scoredBallot fills every examination slot. Plaintiff examinations score
// Dx 8, WDx 9, WCx 7 with defense crosses at 6; defense examinations score
// Dx 7, WDx 8, WCx 6 with plaintiff crosses at 5.
func scoredBallot() models.Ballot {
	b := models.Ballot{
		"round":   float64(3),
		"judge":   "Hon. Rivera",
		"pNumber": float64(1234),
		"dNumber": float64(5678),

		"pOpenAttorney":  "Ada",
		"pOpen":          float64(10),
		"pOpenComments":  "Strong theme",
		"dOpenAttorney":  "Bo",
		"dOpen":          float64(3),
		"dOpenComments":  "Rushed",
		"pCloseAttorney": "Cy",
		"pClose":         float64(9),
		"dCloseAttorney": "Di",
		"dClose":         float64(4),
	}
	for i := 1; i <= 6; i++ {
		b[models.WitnessKey(i)] = "W" + strconv.Itoa(i)
	}
	set := func(side models.Side, stage models.Stage, i int, score float64) {
		b[models.ExamKey(side, stage, i, "")] = score
		b[models.ExamKey(side, stage, i, models.AttrComments)] = string(side) + string(stage) + strconv.Itoa(i) + " notes"
		b[models.ExamKey(side, stage, i, models.AttrAttorney)] = string(side) + "-atty-" + strconv.Itoa(i)
		b[models.ExamKey(side, stage, i, models.AttrWitness)] = string(side) + "-wit-" + strconv.Itoa(i)
	}
	for i := 1; i <= 3; i++ {
		set(models.Plaintiff, models.AttorneyDirect, i, 8)
		set(models.Plaintiff, models.WitnessDirect, i, 9)
		set(models.Plaintiff, models.WitnessCross, i, 7)
		set(models.Defense, models.AttorneyCross, i, 6)

		set(models.Defense, models.AttorneyDirect, i, 7)
		set(models.Defense, models.WitnessDirect, i, 8)
		set(models.Defense, models.WitnessCross, i, 6)
		set(models.Plaintiff, models.AttorneyCross, i, 5)
	}
	for rank := 1; rank <= 4; rank++ {
		b[models.AwardKey(models.AttorneyAwards, rank)] = "Atty " + strconv.Itoa(rank)
		b[models.AwardKey(models.WitnessAwards, rank)] = "Wit " + strconv.Itoa(rank)
	}
	return b
}
