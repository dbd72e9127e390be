package scenario

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/smartystreets/assertions"

	bowling "github.com/Pradeep2745/BowlingGame"
)

// Runner is an xunit-style runner for scenarios. Register scenarios with
// Add, Focus or Skip, then call Run once.
type Runner struct {
	out    io.Writer
	logger *slog.Logger

	frozen  bool // frozen prevents scenarios from being registered.
	spoiled bool // spoiled marks the whole run as failed.

	order   []string
	cases   map[string]Scenario
	focused map[string]struct{}
	skipped map[string]struct{}

	options []bowling.Option
	output  *bytes.Buffer
}

// Report tallies the outcome of a Run by scenario name.
type Report struct {
	Passed  []string
	Failed  []string
	Skipped []string
	Spoiled bool
}

// OK reports whether every executed scenario passed and the registration
// itself was valid.
func (self Report) OK() bool {
	return !self.Spoiled && len(self.Failed) == 0
}

// NewRunner creates a runner that writes its transcript to out once Run is
// called. The options are applied to every game the runner plays.
func NewRunner(description string, out io.Writer, logger *slog.Logger, options ...bowling.Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		out:    out,
		logger: logger,

		cases:   make(map[string]Scenario),
		focused: make(map[string]struct{}),
		skipped: make(map[string]struct{}),

		options: options,
		output:  bytes.NewBufferString(description + "\n"),
		spoiled: len(description) == 0,
	}
}

// Add registers a scenario. Scenario names must be unique within a Runner.
func (self *Runner) Add(scenario Scenario) {
	if self.frozen {
		return
	}
	if !self.validate(scenario.Name) {
		return
	}
	self.order = append(self.order, scenario.Name)
	self.cases[scenario.Name] = scenario
}

// Focus registers a scenario to be run instead of any scenario not
// registered with Focus.
func (self *Runner) Focus(scenario Scenario) {
	if self.frozen {
		return
	}
	self.focused[scenario.Name] = struct{}{}
	self.Add(scenario)
}

// Skip registers a scenario to be listed in the transcript without being
// played.
func (self *Runner) Skip(scenario Scenario) {
	if self.frozen {
		return
	}
	self.skipped[scenario.Name] = struct{}{}
	self.Add(scenario)
}

func (self *Runner) validate(name string) bool {
	if len(name) == 0 {
		self.spoiled = true
		self.Log("Scenario name must be non-blank.\n")
		return false
	}
	if _, found := self.cases[name]; found {
		self.spoiled = true
		self.Logf("Name conflict: scenario already registered with this name: '%s'\n", name)
		return false
	}
	return true
}

// Run plays every registered scenario in registration order and writes the
// transcript. Calling Run again does nothing but return an empty report.
func (self *Runner) Run() Report {
	report := Report{Spoiled: self.spoiled}
	if self.frozen {
		return report
	}
	self.frozen = true
	defer self.dump()

	if self.spoiled {
		return report
	}
	for _, name := range self.order {
		switch self.runOne(self.cases[name]) {
		case passed:
			report.Passed = append(report.Passed, name)
		case failed:
			report.Failed = append(report.Failed, name)
		case skipped:
			report.Skipped = append(report.Skipped, name)
		}
	}
	if report.OK() {
		self.Log("All scenarios passed successfully.\n")
	} else {
		self.Logf("%d of %d scenarios failed.\n", len(report.Failed), len(report.Failed)+len(report.Passed))
	}
	return report
}

type outcome int

const (
	passed outcome = iota
	failed
	skipped
)

func (self *Runner) runOne(scenario Scenario) outcome {
	if len(self.focused) > 0 {
		if _, focus := self.focused[scenario.Name]; !focus {
			self.Logf("%s skipped.\n", scenario.Name)
			return skipped
		}
	} else if _, skip := self.skipped[scenario.Name]; skip {
		self.Logf("%s skipped.\n", scenario.Name)
		return skipped
	}
	return self.execute(scenario)
}

func (self *Runner) execute(scenario Scenario) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			self.Log(self.formatPanic(scenario.Name, fmt.Sprint(r)))
			result = failed
		}
	}()

	game, err := scenario.Play(self.options...)
	if err != nil {
		self.logger.Error("Scenario could not be played",
			slog.String("scenario", scenario.Name),
			slog.String("error", err.Error()),
		)
		self.Log(self.formatResult(scenario.Name, err.Error()))
		return failed
	}

	actual := game.Score()
	self.logger.Info("Scenario scored",
		slog.String("scenario", scenario.Name),
		slog.String("game_id", game.ID().String()),
		slog.Int("expected", scenario.Expected),
		slog.Int("actual", actual),
	)
	if ok, message := assertions.So(actual, assertions.ShouldEqual, scenario.Expected); !ok {
		self.Log(self.formatResult(scenario.Name, message))
		return failed
	}
	self.Logf("%s passed.\n", scenario.Name)
	return passed
}

func (self *Runner) dump() {
	fmt.Fprint(self.out, self.output.String())
}

func (self *Runner) formatPanic(name, recovered string) string {
	title := "PANIC: [" + recovered + "]"
	divider := strings.Repeat("*", max(len(name), len(title)))
	return "\n  " + divider + "\n\n  " +
		title + "\n\n  " +
		name + "\n\n  " +
		divider + "\n\n"
}

func (self *Runner) formatResult(name, result string) string {
	title := "FAILED: \"" + name + "\""
	divider := strings.Repeat("*", len(title))
	message := "\n    " + divider + "\n\n    " + title + "\n\n"
	for _, line := range strings.Split(result, "\n") {
		message += "    " + line + "\n"
	}
	return message + "\n    " + divider + "\n\n"
}

func (self *Runner) Log(args ...interface{}) {
	self.output.WriteString(fmt.Sprint(args...))
}

func (self *Runner) Logf(message string, args ...interface{}) {
	self.output.WriteString(fmt.Sprintf(message, args...))
}
