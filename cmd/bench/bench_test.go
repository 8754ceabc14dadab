package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/urncode40/urncode40"
)

func TestMeasure(t *testing.T) {
	r, err := measure("long-numeric", "1234567890123456")
	require.NoError(t, err)
	assert.Equal(t, 24, r.StandardLen)
	assert.Equal(t, 18, r.OptimalLen)
	assert.Equal(t, 6, r.Saved)
	assert.Equal(t, 1, r.Kinds[urncode40.KindNumeric])
	assert.True(t, r.RoundTrip)

	r, err = measure("special", "A&B")
	require.NoError(t, err)
	assert.Zero(t, r.StandardLen)
	assert.Equal(t, 2, r.Kinds[urncode40.KindStandard])
	assert.Equal(t, 1, r.Kinds[urncode40.KindASCII])

	_, err = measure("emoji", "\U0001F600")
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	m, err := loadManifest(filepath.Join("..", "..", "testdata", "corpus", "manifest.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, m.Version)
	require.NotEmpty(t, m.Cases)
	for _, c := range m.Cases {
		r, err := measure(c.Name, c.Input)
		require.NoError(t, err, c.Name)
		assert.True(t, r.RoundTrip, c.Name)
		if r.StandardLen > 0 {
			assert.LessOrEqual(t, r.OptimalLen, r.StandardLen, c.Name)
		}
	}
}

func TestWriteReports(t *testing.T) {
	r, err := measure("long-numeric", "1234567890123456")
	require.NoError(t, err)

	var csv bytes.Buffer
	writeCSV(&csv, []CaseResult{r})
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,input_chars,standard_len,optimal_len,saved,saved_pct,standard,numeric,ascii,utf8-2,utf8-3,round_trip", lines[0])
	assert.Equal(t, "long-numeric,16,24,18,6,25.0,0,1,0,0,0,true", lines[1])

	var md bytes.Buffer
	writeMarkdown(&md, []CaseResult{r}, "test")
	assert.Contains(t, md.String(), "| long-numeric | 16 | 24 | 18 | numeric:1 | true |")
}
