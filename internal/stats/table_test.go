package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Verb", "Accuracy"}
	rows := [][]string{
		{"gehen", "97%"},
		{"schließen", "8%"},
	}
	rightAlign := map[int]bool{1: true}

	assert.Equal(t, []string{
		"Verb      Accuracy",
		"gehen          97%",
		"schließen       8%",
	}, formatTable(headers, rows, rightAlign))
}

func TestFormatTableTrimsTrailingPadding(t *testing.T) {
	lines := formatTable([]string{"Verb", "Meaning"}, [][]string{{"sein", "to be"}}, nil)
	assert.Equal(t, "sein to be", lines[1])
}
