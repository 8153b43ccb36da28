package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Tenders",
		Headers: []string{"Title", "State", "Value"},
		Rows: [][]string{
			{"Construction of community hall, Phase 2", "Delhi", "₹2.5 Cr"},
			{"Supply of \"desks\"", "Goa", "₹4,50,000"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Title,State,Value", lines[0])
	assert.Equal(t, `"Construction of community hall, Phase 2",Delhi,₹2.5 Cr`, lines[1])
	assert.Equal(t, `"Supply of ""desks""",Goa,"₹4,50,000"`, lines[2])
}

func TestExportersRejectMalformedTables(t *testing.T) {
	for _, table := range []Table{
		{},
		{Headers: []string{"a", "b"}, Rows: [][]string{{"only one"}}},
	} {
		_, err := NewCSVExporter().Render(table)
		assert.Error(t, err)
		_, err = NewPDFExporter().Render(table)
		assert.Error(t, err)
	}
}

func TestPDFExporterRender(t *testing.T) {
	table := sampleTable()
	for i := 0; i < 80; i++ {
		table.Rows = append(table.Rows, []string{strings.Repeat("long title ", 20), "Kerala", "₹1 Cr"})
	}

	out, err := NewPDFExporter().Render(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleTable())
	var sum float64
	for _, w := range widths {
		sum += w
	}
	assert.InDelta(t, pdfPageWidth, sum, 0.001)
	assert.Greater(t, widths[0], widths[1])
}
