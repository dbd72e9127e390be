package bowling_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bowling "github.com/Pradeep2745/BowlingGame"
)

// gameGenerator produces random games that could happen on a real lane.
type gameGenerator struct {
	faker *gofakeit.Faker
}

func newGameGenerator(seed uint64) *gameGenerator {
	return &gameGenerator{faker: gofakeit.New(seed)}
}

func (self *gameGenerator) frame(index int) [3]int {
	first := self.faker.IntRange(0, bowling.Pins)
	if index < bowling.FrameCount-1 {
		if first == bowling.Pins {
			return [3]int{first, 0, 0}
		}
		return [3]int{first, self.faker.IntRange(0, bowling.Pins-first), 0}
	}

	if first == bowling.Pins {
		second := self.faker.IntRange(0, bowling.Pins)
		if second == bowling.Pins {
			return [3]int{first, second, self.faker.IntRange(0, bowling.Pins)}
		}
		return [3]int{first, second, self.faker.IntRange(0, bowling.Pins-second)}
	}
	second := self.faker.IntRange(0, bowling.Pins-first)
	if first+second == bowling.Pins {
		return [3]int{first, second, self.faker.IntRange(0, bowling.Pins)}
	}
	return [3]int{first, second, 0}
}

func (self *gameGenerator) game() [bowling.FrameCount][3]int {
	var rolls [bowling.FrameCount][3]int
	for index := range rolls {
		rolls[index] = self.frame(index)
	}
	return rolls
}

func TestGeneratedGames(t *testing.T) {
	generator := newGameGenerator(20261019)

	for round := 0; round < 500; round++ {
		rolls := generator.game()
		player := bowling.NewPlayer(generator.faker.Name(), bowling.WithStrictTenthFrame())
		for index, frame := range rolls {
			require.NoError(t, player.RecordFrame(index, frame[0], frame[1], frame[2]), "game %d frame %d: %v", round, index, frame)
		}

		total := player.CalculateScore()
		assert.LessOrEqual(t, total, 300)
		assert.Equal(t, total, player.CalculateScore(), "scoring must not change the game")

		card := player.Scorecard()
		assert.Equal(t, total, card[bowling.FrameCount-1])

		sum := 0
		for index := 0; index < bowling.FrameCount; index++ {
			score, err := player.ScoreFrame(index)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 30)
			sum += score

			frame := rolls[index]
			if index < bowling.FrameCount-1 && frame[0]+frame[1] < bowling.Pins {
				assert.Equal(t, frame[0]+frame[1], score, "open frame %d", index)
			}
		}
		assert.Equal(t, total, sum)

		for index, frame := range player.Frames() {
			got := [3]int{frame.FirstRoll, frame.SecondRoll, frame.ThirdRoll}
			if diff := cmp.Diff(rolls[index], got); diff != "" {
				t.Errorf("game %d frame %d stored rolls mismatch (-want +got):\n%s", round, index, diff)
			}
		}
	}
}
