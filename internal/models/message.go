package models

import "time"

type Message struct {
	Type      string          `json:"type"` // "ballots" or "error"
	TeamID    int             `json:"teamId,omitempty"`
	Text      string          `json:"text,omitempty"`
	Ballots   []BallotSummary `json:"ballots,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
