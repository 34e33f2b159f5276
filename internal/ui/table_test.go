package ui

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmhdiff/internal/jmh"
)

func sampleDiffs() []jmh.Diff {
	return []jmh.Diff{
		{Name: "bench1", Mode: jmh.Throughput, OldScore: 100, NewScore: 110, Units: "ops/s", Delta: 0.10},
		{Name: "bench2", Mode: jmh.AverageTime, OldScore: 5.0, NewScore: 4.0, Units: "ms/op", Delta: -0.20},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleDiffs(), Options{})

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "DIFF")
	assert.Contains(t, lines[1], "bench1")
	assert.Contains(t, lines[1], "thrpt")
	assert.Contains(t, lines[1], "+10.00000%")
	assert.Contains(t, lines[2], "-20.00000%")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, nil, Options{})

	// Header only.
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestStyleDeltaPlainWhenColorOff(t *testing.T) {
	d := jmh.Diff{Mode: jmh.Throughput, Delta: 0.5}
	assert.Equal(t, "+50.00000%", styleDelta(d, Options{Color: false, Threshold: 10}))
}

func TestStyleDeltaBelowThresholdUnstyled(t *testing.T) {
	d := jmh.Diff{Mode: jmh.Throughput, Delta: 0.05}
	assert.Equal(t, "+5.00000%", styleDelta(d, Options{Color: true, Threshold: 10}))
}

func TestStyleDeltaNonFinite(t *testing.T) {
	d := jmh.Diff{Mode: jmh.Throughput, Delta: math.Inf(1)}
	// Must render without panicking whatever the styling.
	assert.NotEmpty(t, styleDelta(d, Options{Color: true, Threshold: 10}))
	assert.NotEmpty(t, styleDelta(d, Options{Color: false}))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleDiffs())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4) // header + separator + one row per diff

	assert.Contains(t, lines[2], "| bench1 |")
	assert.Contains(t, lines[2], "+10.00000%")
	assert.Contains(t, lines[3], "| bench2 |")
}
