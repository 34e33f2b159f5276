// Package jmh parses JMH text reports and computes score diffs between runs.
package jmh

import (
	"fmt"
	"math"
)

// Record is a single parsed benchmark measurement.
type Record struct {
	Name  string  `json:"name"`
	Mode  Mode    `json:"mode"`
	Count int64   `json:"count"`
	Score float64 `json:"score"`
	Error float64 `json:"error"`
	Units string  `json:"units"`
}

// Diff is the relative score change between a matched old/new record pair.
type Diff struct {
	Name     string
	Mode     Mode
	OldScore float64
	NewScore float64
	Units    string
	Delta    float64 // (new - old) / old; non-finite when OldScore is zero
}

// Percent renders Delta as a signed percentage with five decimal places.
func (d Diff) Percent() string {
	return fmt.Sprintf("%+.5f%%", d.Delta*100)
}

// Finite reports whether Delta is a usable number. A zero old score makes the
// delta +/-Inf (or NaN when both scores are zero); the value is propagated
// rather than masked so renderers can flag the row.
func (d Diff) Finite() bool {
	return !math.IsInf(d.Delta, 0) && !math.IsNaN(d.Delta)
}

// FailureKind classifies why one report line could not become a Record.
type FailureKind int

const (
	InvalidMode FailureKind = iota
	InvalidFloatValue
	InvalidIntegerValue
	MissingNameField
	// MissingCountField covers any required field beyond the name that is
	// absent from the line: count, score, error or units.
	MissingCountField
)

func (k FailureKind) String() string {
	switch k {
	case InvalidMode:
		return "invalid mode"
	case InvalidFloatValue:
		return "invalid float value"
	case InvalidIntegerValue:
		return "invalid integer value"
	case MissingNameField:
		return "missing name field"
	case MissingCountField:
		return "missing required field"
	}
	return "unknown failure"
}

// ParseFailure is the error for a single unparseable report row. Rows that
// fail are skipped and the failure collected; parsing never aborts on one.
type ParseFailure struct {
	Kind  FailureKind
	Token string // offending token, when there is one
}

func (e *ParseFailure) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Token)
	}
	return e.Kind.String()
}
