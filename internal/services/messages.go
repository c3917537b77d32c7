package services

import (
	"errors"
	"fmt"

	"github.com/latestcomment/ballot-export/internal/models"
)

// UserMessage is the text shown to a person whose lookup failed.
func UserMessage(err error, teamID int) string {
	switch {
	case errors.Is(err, models.ErrInvalidSelector):
		return "Please try again with a valid ID"
	case errors.Is(err, models.ErrNoMatch):
		return fmt.Sprintf("Cannot find ballots for team %d", teamID)
	case errors.Is(err, models.ErrBallotIndex):
		return "That ballot does not exist for this team"
	default:
		return "Ballots are unavailable right now"
	}
}
