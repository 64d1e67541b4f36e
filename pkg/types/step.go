package types

import (
	"strings"
	"time"
)

// Step is one unit of the packaging pipeline.
//
// Process reads the fields earlier steps wrote into the Context and may
// write new ones. A nil error means success. Steps keep no state of their
// own between runs beyond their injected collaborators.
type Step interface {
	Name() string
	Message() string
	Process(bctx *Context) error
}

// StepResult records the outcome of a single step execution
type StepResult struct {
	Name     string
	Message  string
	OK       bool
	Err      error
	Duration time.Duration
}

// Answer is the operator's reply to a yes/no question.
type Answer int

const (
	// AnswerSkipped means no answer was given (empty line or end of input)
	AnswerSkipped Answer = iota
	AnswerConfirmed
	AnswerDeclined
)

// ParseAnswer maps a raw reply to an Answer. Anything that is neither a
// yes nor a no counts as skipped.
func ParseAnswer(reply string) Answer {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes":
		return AnswerConfirmed
	case "n", "no":
		return AnswerDeclined
	default:
		return AnswerSkipped
	}
}

func (a Answer) String() string {
	switch a {
	case AnswerConfirmed:
		return "confirmed"
	case AnswerDeclined:
		return "declined"
	default:
		return "skipped"
	}
}
