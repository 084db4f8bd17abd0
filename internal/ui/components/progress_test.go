package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "zero total", completed: 0, total: 0, want: 0},
		{name: "partial", completed: 5, total: 10, want: 0.5},
		{name: "complete", completed: 10, total: 10, want: 1},
		{name: "beyond total", completed: 15, total: 10, want: 1},
		{name: "negative", completed: -1, total: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewProgress(tt.completed, tt.total).Ratio(), 1e-9)
		})
	}
}

func TestProgressView(t *testing.T) {
	out := plain(NewProgress(15, 10).WithLabel("Steps").View())
	require.Contains(t, out, "Steps 15/10", "the count is shown as given even past the total")
	assert.Greater(t, lipgloss.Width(out), len("Steps 15/10"))
}

func TestProgressFillsContextWidth(t *testing.T) {
	out := NewProgress(3, 5).ViewWithContext(DefaultContext().WithWidth(40))
	assert.Equal(t, 40, lipgloss.Width(out))
}
