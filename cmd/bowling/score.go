package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bowling "github.com/Pradeep2745/BowlingGame"
	"github.com/Pradeep2745/BowlingGame/internal/scenario"
)

func newScoreCommand(logger func() *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "score a game given one argument per frame",
		ArgsUsage: "FRAME... (e.g. 10 3,5 4,6 ... 10,10,10)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player", Value: "Player", Usage: "name shown on the scorecard"},
			&cli.BoolFlag{Name: "strict", Usage: "reject tenth frames that cannot happen on a lane"},
		},
		Action: func(c *cli.Context) error {
			frames, err := parseFrames(c.Args().Slice())
			if err != nil {
				return err
			}

			options := []bowling.Option{bowling.WithLogger(logger())}
			if c.Bool("strict") {
				options = append(options, bowling.WithStrictTenthFrame())
			}
			game := bowling.NewGame(c.String("player"), options...)
			for index, rolls := range frames {
				if err := scenario.Record(game.Player(), index, rolls); err != nil {
					return err
				}
			}

			printScorecard(c.App.Writer, game.Player())
			return nil
		},
	}
}

// parseFrames turns arguments such as "3,4" or "10" into per-frame rolls.
func parseFrames(args []string) ([][]int, error) {
	if len(args) > bowling.FrameCount {
		return nil, errors.Errorf("%d frames given, a game has %d", len(args), bowling.FrameCount)
	}
	frames := make([][]int, 0, len(args))
	for index, arg := range args {
		var rolls []int
		for _, field := range strings.Split(arg, ",") {
			pins, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, errors.Wrapf(err, "frame %d: %q is not a pin count", index, field)
			}
			rolls = append(rolls, pins)
		}
		frames = append(frames, rolls)
	}
	return frames, nil
}

func printScorecard(w io.Writer, player *bowling.Player) {
	card := player.Scorecard()
	fmt.Fprintf(w, "%s\n", player.Name())
	for index, frame := range player.Frames() {
		fmt.Fprintf(w, "%2d  %-3s  %3d\n", index+1, frame.Notation(index == bowling.FrameCount-1), card[index])
	}
	fmt.Fprintf(w, "Total: %d\n", player.CalculateScore())
}
