package bowling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bowling "github.com/Pradeep2745/BowlingGame"
)

func TestFrameNotation(t *testing.T) {
	tests := []struct {
		name  string
		index int
		rolls []int
		want  string
	}{
		{"gutter", 0, []int{0, 0}, "--"},
		{"open", 0, []int{3, 4}, "34"},
		{"miss then spare", 0, []int{0, 10}, "-/"},
		{"spare", 4, []int{4, 6}, "4/"},
		{"strike", 4, []int{10, 0}, "X"},
		{"tenth open", 9, []int{3, 4}, "34"},
		{"tenth spare", 9, []int{4, 6, 7}, "4/7"},
		{"tenth spare then strike", 9, []int{4, 6, 10}, "4/X"},
		{"tenth turkey", 9, []int{10, 10, 10}, "XXX"},
		{"tenth strike then spare", 9, []int{10, 3, 7}, "X3/"},
		{"tenth strike then open", 9, []int{10, 3, 4}, "X34"},
		{"tenth strike then misses", 9, []int{10, 0, 0}, "X--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := bowling.NewPlayer("Notation")
			if len(tt.rolls) == 3 {
				require.NoError(t, player.RecordFrame(tt.index, tt.rolls[0], tt.rolls[1], tt.rolls[2]))
			} else {
				require.NoError(t, player.RecordFrame(tt.index, tt.rolls[0], tt.rolls[1]))
			}

			frame, err := player.Frame(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frame.Notation(tt.index == bowling.FrameCount-1))
		})
	}
}

func TestFrameTotalPins(t *testing.T) {
	player := bowling.NewPlayer("Pins")
	require.NoError(t, player.RecordFrame(9, 10, 10, 10))

	frame, err := player.Frame(9)
	require.NoError(t, err)
	assert.Equal(t, 30, frame.TotalPins())
	assert.True(t, frame.IsStrike)
	assert.False(t, frame.IsSpare)
}
