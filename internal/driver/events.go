package driver

import "fmt"

// Stage names one pipeline phase for progress reporting.
type Stage uint8

const (
	StageLoad Stage = iota
	StageLex
	StageParse
	StageCheck
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	default:
		return fmt.Sprintf("Stage(%d)", s)
	}
}

// Event reports that a file finished a pipeline stage. Err is nil on success;
// a failed stage is the file's last event.
type Event struct {
	Path  string
	Stage Stage
	Err   error
}

// Observer receives pipeline events. The driver serializes calls, so an
// observer needs no locking of its own.
type Observer func(Event)
