package domain

import "errors"

var (
	ErrRaidNotFound   = errors.New("raid not found")
	ErrAlreadyJoined  = errors.New("you've already joined this raid")
	ErrNotAttending   = errors.New("you are not attending this raid")
	ErrNoRaidForArgs  = errors.New("no raid exists")
	ErrMissingSubject = errors.New("raid boss name is required")
	ErrMissingTime    = errors.New("time is required")
	ErrMissingGym     = errors.New("gym name is required")
	ErrGymNotFound    = errors.New("gym not found")
	ErrFactionMissing = errors.New("faction not found")
)
