package models

// State tracks the report-submission conversation per user.
type State int

const (
	StateIdle State = iota
	StateAwaitingReport
)
