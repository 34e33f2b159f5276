package jmh

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseLine converts one data row into a Record. Fields are positional,
// separated by runs of whitespace: name mode count score <skipped> error
// units. The column between score and error is part of the report format but
// carries nothing we consume. The first missing or malformed field decides
// the failure; a line never reports more than one.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)

	if len(fields) < 1 {
		return Record{}, &ParseFailure{Kind: MissingNameField}
	}
	name := fields[0]

	if len(fields) < 2 {
		return Record{}, &ParseFailure{Kind: InvalidMode}
	}
	mode, err := ParseMode(fields[1])
	if err != nil {
		return Record{}, err
	}

	if len(fields) < 3 {
		return Record{}, &ParseFailure{Kind: MissingCountField}
	}
	count, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, &ParseFailure{Kind: InvalidIntegerValue, Token: fields[2]}
	}

	if len(fields) < 4 {
		return Record{}, &ParseFailure{Kind: MissingCountField}
	}
	score, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, &ParseFailure{Kind: InvalidFloatValue, Token: fields[3]}
	}

	// fields[4] is skipped.
	if len(fields) < 6 {
		return Record{}, &ParseFailure{Kind: MissingCountField}
	}
	margin, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Record{}, &ParseFailure{Kind: InvalidFloatValue, Token: fields[5]}
	}

	if len(fields) < 7 {
		return Record{}, &ParseFailure{Kind: MissingCountField}
	}
	units := fields[6]

	return Record{
		Name:  name,
		Mode:  mode,
		Count: count,
		Score: score,
		Error: margin,
		Units: units,
	}, nil
}

// ParseReport extracts the data table from a report's full content.
//
// Blocks are separated by blank lines and only the last block is the table;
// any preamble sections before it are ignored wholesale. The table's first
// line is the column header and is never parsed as data. Rows that fail to
// parse are skipped and their failures collected in input order, so one bad
// row never costs the rest of the table. Empty content yields empty results.
func ParseReport(content string) ([]Record, []*ParseFailure) {
	blocks := strings.Split(content, "\n\n")
	block := blocks[len(blocks)-1]

	var records []Record
	var failures []*ParseFailure
	for i, line := range strings.Split(strings.TrimSuffix(block, "\n"), "\n") {
		if i == 0 {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			if pf, ok := err.(*ParseFailure); ok {
				failures = append(failures, pf)
			}
			continue
		}
		records = append(records, rec)
	}
	return records, failures
}

// ParseFile reads path and parses it as a JMH report. A read error is fatal
// and names the file; it is distinct from the per-row parse failures.
func ParseFile(path string) ([]Record, []*ParseFailure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	records, failures := ParseReport(string(data))
	return records, failures, nil
}
