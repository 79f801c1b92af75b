package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rotation/pkg/roster"
	"laptudirm.com/x/rotation/pkg/rotation"
)

func generate(t *testing.T, player_count int) *rotation.Schedule {
	t.Helper()

	sched, err := rotation.Generate(roster.Numbered(player_count), rotation.DefaultConfig())
	require.NoError(t, err)
	return sched
}

func TestCSV(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, CSV(&buffer, generate(t, 6)))

	lines := strings.Split(buffer.String(), "\n")
	assert.Equal(t, "# Rotation Schedule for 6 Players", lines[0])
	assert.Equal(t, "# Minutes per player: 33.3", lines[1])
	assert.Equal(t, "# Stint duration: 2.5 minutes", lines[2])
	assert.Equal(t, "", lines[3])

	assert.Equal(t, "Slot,Quarter,Start,End,Duration (min),P1,P2,P3,P4,P5,P6", lines[4])
	assert.Equal(t, "1,1,00:00,02:30,2.5,1,1,1,1,1,0", lines[5])
	assert.Equal(t, "2,1,02:30,05:00,2.5,1,1,1,1,0,1", lines[6])
	assert.Equal(t, "16,4,37:30,40:00,2.5,1,1,0,1,1,1", lines[20])
}

func TestCSVWellFormed(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, CSV(&buffer, generate(t, 8)))

	// The records after the commented summary parse as csv, one per
	// slot, with exactly capacity players marked 1.
	_, table, found := strings.Cut(buffer.String(), "\n\n")
	require.True(t, found)

	records, err := csv.NewReader(strings.NewReader(table)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 17) // header + 16 slots

	for _, record := range records[1:] {
		require.Len(t, record, 13)

		on_court := 0
		for _, flag := range record[5:] {
			if flag == "1" {
				on_court++
			}
		}
		assert.Equal(t, 5, on_court)
	}
}

func TestMarkdownSummary(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, Markdown(&buffer, generate(t, 6)))
	document := buffer.String()

	assert.Contains(t, document, "# Rotation Schedule - 6 Players")
	assert.Contains(t, document, "- **Total game duration:** 40 minutes (4 quarters)")
	assert.Contains(t, document, "- **Players attending:** 6")
	assert.Contains(t, document, "- **Minutes per player:** 33.3")
	assert.Contains(t, document, "- **Stint duration:** 2.5 minutes")
}

func TestMarkdownCourtMatrix(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, Markdown(&buffer, generate(t, 6)))

	matrix_rows := 0
	for _, line := range strings.Split(buffer.String(), "\n") {
		if !strings.Contains(line, "✅") {
			continue
		}

		// Every matrix row seats a full court.
		matrix_rows++
		assert.Equal(t, 5, strings.Count(line, "✅"))
		assert.Equal(t, 1, strings.Count(line, "⬜"))
	}

	assert.Equal(t, 16, matrix_rows)
}

func TestMarkdownSubstitutions(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, Markdown(&buffer, generate(t, 6)))
	document := buffer.String()

	require.Contains(t, document, "## Substitutions")
	section := strings.Split(document, "## Substitutions")[1]
	lines := strings.Split(section, "\n")

	// Opening lineup fills the position rows front-of-roster first,
	// and a name only reappears in a row when the occupant changes.
	assert.True(t, strings.HasPrefix(lines[4], "| 1 | P1 |"))
	assert.True(t, strings.HasPrefix(lines[8], "| 5 | P5 |"))

	for _, line := range lines[4:9] {
		// 16 slot columns: blank cells where the occupant stays on.
		assert.Equal(t, 18, strings.Count(line, "|"))
	}
}

func TestMarkdownPlayerSummary(t *testing.T) {
	var buffer strings.Builder
	require.NoError(t, Markdown(&buffer, generate(t, 6)))
	document := buffer.String()

	assert.Contains(t, document, "| P1 | 35.0 | 3 |")
	assert.Contains(t, document, "| P2 | 35.0 | 3 |")
	assert.Contains(t, document, "| P3 | 32.5 | 3 |")
	assert.Contains(t, document, "| P6 | 32.5 | 3 |")
}
