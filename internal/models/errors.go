package models

import "errors"

var (
	ErrInvalidSelector = errors.New("invalid team id")
	ErrNoMatch         = errors.New("no ballots found for team")
	ErrBallotIndex     = errors.New("ballot index out of range")
	ErrNoBallotData    = errors.New("no ballot data found")
)
