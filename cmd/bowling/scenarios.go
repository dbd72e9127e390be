package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	bowling "github.com/Pradeep2745/BowlingGame"
	"github.com/Pradeep2745/BowlingGame/internal/scenario"
)

var (
	errScenariosFailed = errors.New("scenarios failed")
	errUnknownScenario = errors.New("unknown scenario")
)

func newScenariosCommand(logger func() *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "replay the built-in games and check their totals",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "focus", Usage: "run only the named scenario (repeatable)"},
			&cli.StringSliceFlag{Name: "skip", Usage: "list but do not run the named scenario (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			scenarios, err := scenario.Builtin()
			if err != nil {
				return err
			}

			known := make(map[string]bool, len(scenarios))
			for _, s := range scenarios {
				known[s.Name] = true
			}
			focus, err := toSet(c.StringSlice("focus"), known)
			if err != nil {
				return errors.Wrap(err, "--focus")
			}
			skip, err := toSet(c.StringSlice("skip"), known)
			if err != nil {
				return errors.Wrap(err, "--skip")
			}

			runner := scenario.NewRunner("Test cases...", c.App.Writer, logger(), bowling.WithLogger(logger()))
			for _, s := range scenarios {
				switch {
				case focus[s.Name]:
					runner.Focus(s)
				case skip[s.Name]:
					runner.Skip(s)
				default:
					runner.Add(s)
				}
			}

			report := runner.Run()
			if !report.OK() {
				return errors.Wrapf(errScenariosFailed, "%v", report.Failed)
			}
			return nil
		},
	}
}

// toSet collects names into a set, refusing any name not in known.
func toSet(names []string, known map[string]bool) (map[string]bool, error) {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, errors.Wrapf(errUnknownScenario, "%q", name)
		}
		set[name] = true
	}
	return set, nil
}
