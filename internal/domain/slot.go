package domain

import "time"

// CandidateSlot is a transient fixed-duration interval proposed by the slot
// generator. Candidate slots are generated, filtered and discarded per
// request; they are never persisted.
type CandidateSlot struct {
	StartAt time.Time
	EndAt   time.Time
}

// DurationMinutes returns the slot length in whole minutes
func (s CandidateSlot) DurationMinutes() int {
	return int(s.EndAt.Sub(s.StartAt) / time.Minute)
}
