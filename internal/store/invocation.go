package store

import "time"

// Outcome classifies how a recorded run ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeFailed
	OutcomeStopped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	case OutcomeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Invocation is one executed command line.
type Invocation struct {
	ID          int64
	RunID       string
	CommandPath string // space-joined command hierarchy
	Cmdline     string
	StartedAt   time.Time
	Outcome     Outcome
}
