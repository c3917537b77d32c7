package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/latestcomment/ballot-export/internal/models"
)

// ParseTeamID parses the raw team identifier typed by the user.
func ParseTeamID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidSelector, raw)
	}
	return id, nil
}

// Select returns the ballots where teamID played either side, in their
// original order.
func Select(ballots []models.Ballot, teamID int) []models.Ballot {
	matches := []models.Ballot{}
	for _, b := range ballots {
		if b.HasTeam(teamID) {
			matches = append(matches, b)
		}
	}
	return matches
}
