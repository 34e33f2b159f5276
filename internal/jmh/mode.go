package jmh

import "strings"

// Mode is the benchmark execution mode a measurement was taken under.
type Mode int

const (
	AverageTime Mode = iota
	SampleTime
	SingleShotTime
	Throughput
)

var modeTokens = map[string]Mode{
	"avgt":   AverageTime,
	"sample": SampleTime,
	"ss":     SingleShotTime,
	"thrpt":  Throughput,
}

var modeNames = map[Mode]string{
	AverageTime:    "avgt",
	SampleTime:     "sample",
	SingleShotTime: "ss",
	Throughput:     "thrpt",
}

// ParseMode resolves a report token to a Mode. Matching is case-insensitive.
func ParseMode(token string) (Mode, error) {
	mode, ok := modeTokens[strings.ToLower(token)]
	if !ok {
		return 0, &ParseFailure{Kind: InvalidMode, Token: token}
	}
	return mode, nil
}

// String returns the canonical report token for the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}
