// Package scenario replays canned bowling games and checks their totals.
package scenario

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	bowling "github.com/Pradeep2745/BowlingGame"
)

//go:embed scenarios.yaml
var catalogue []byte

// Scenario is a complete game together with the total it should score.
type Scenario struct {
	Name     string  `yaml:"name"`
	Player   string  `yaml:"player"`
	Frames   [][]int `yaml:"frames"`
	Fill     []int   `yaml:"fill"`
	Expected int     `yaml:"expected"`
}

// Builtin returns the scenarios embedded in the binary, in file order.
func Builtin() ([]Scenario, error) {
	return Parse(catalogue)
}

// Parse decodes a YAML scenario catalogue.
func Parse(data []byte) ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal scenarios")
	}
	return doc.Scenarios, nil
}

// Play records every frame of the scenario into a new game. Frames beyond
// those listed are recorded with the Fill rolls.
func (self Scenario) Play(options ...bowling.Option) (*bowling.Game, error) {
	if len(self.Frames) > bowling.FrameCount {
		return nil, errors.Errorf("scenario %q lists %d frames, a game has %d", self.Name, len(self.Frames), bowling.FrameCount)
	}

	game := bowling.NewGame(self.Player, options...)
	for index := 0; index < bowling.FrameCount; index++ {
		rolls := self.Fill
		if index < len(self.Frames) {
			rolls = self.Frames[index]
		}
		if err := Record(game.Player(), index, rolls); err != nil {
			return nil, errors.Wrapf(err, "scenario %q", self.Name)
		}
	}
	return game, nil
}

// Record stores up to three rolls as the frame at index. Missing rolls are
// gutter balls.
func Record(player *bowling.Player, index int, rolls []int) error {
	if len(rolls) > 3 {
		return errors.Wrapf(bowling.ErrInvalidRoll, "frame %d: %d rolls given, at most 3 allowed", index, len(rolls))
	}
	padded := [3]int{}
	copy(padded[:], rolls)
	if len(rolls) == 3 {
		return player.RecordFrame(index, padded[0], padded[1], padded[2])
	}
	return player.RecordFrame(index, padded[0], padded[1])
}
