package model

import (
	"github.com/google/uuid"
)

// RetryFilter selects failed dispatches to re-arm. Exactly one of the
// selectors is expected to be set.
type RetryFilter struct {
	All   bool        `json:"all"`
	IDs   []uuid.UUID `json:"ids"`
	Queue string      `json:"queue"`
}

// Empty reports whether the filter selects nothing.
func (f RetryFilter) Empty() bool {
	return !f.All && len(f.IDs) == 0 && f.Queue == ""
}

// RetryReport collects the outcome of a retry run.
type RetryReport struct {
	TotalProcessed int            `json:"total_processed"`
	Successful     []RetryOutcome `json:"successful"`
	Failed         []RetryOutcome `json:"failed"`
}

// RetryOutcome describes what happened to one dispatch during a retry run.
type RetryOutcome struct {
	ID      uuid.UUID `json:"id"`
	Queue   string    `json:"queue"`
	Message string    `json:"message"`
}
