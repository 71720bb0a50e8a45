package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/model"
)

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapText("aaa bbb ccc", 7, ""))
}

func TestWrapTextIndentsContinuation(t *testing.T) {
	got := wrapText("expected gegangen got gegehen", 12, "  ")
	assert.Equal(t, []string{"expected", "  gegangen", "  got", "  gegehen"}, got)
}

func TestWrapTextBreaksLongWords(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrapText("abcdefghij", 4, ""))
}

func TestWrapTextCountsUmlautsAsOneCell(t *testing.T) {
	assert.Len(t, wrapText("über schön", 10, ""), 1)
}

func TestWrapTextZeroWidth(t *testing.T) {
	assert.Equal(t, []string{"ging"}, wrapText("ging", 0, ""))
}

func TestMistakeLines(t *testing.T) {
	lines := mistakeLines([]model.Mistake{{
		Infinitive:  "gehen",
		Translation: "to go",
		Fields: []model.FieldResult{
			{Field: model.FieldPraesens, Expected: "gehe", Given: "gehe", Correct: true},
			{Field: model.FieldPraeteritum, Expected: "ging", Given: "(empty)"},
		},
	}}, 80)
	require.Len(t, lines, 2)
	assert.Equal(t, "gehen (to go)", lines[0])
	assert.Contains(t, lines[1], "Präteritum: expected ging, got (empty)")
}
