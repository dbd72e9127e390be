// Package bowling scores a single player's game of ten-pin bowling.
//
// http://en.wikipedia.org/wiki/Ten-pin_bowling#Scoring
//
// Frames are recorded whole (all rolls at once) with RecordFrame and the
// game is scored with CalculateScore, which may be called any number of
// times since scoring never modifies the recorded frames.
package bowling

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

const (
	// FrameCount is the number of frames in a game.
	FrameCount = 10

	// Pins is the number of pins in a full rack.
	Pins = 10

	lastFrame = FrameCount - 1
)

// Player owns the ten frames of one bowler's game. The zero value is not
// usable; call NewPlayer. A Player is not safe for concurrent use.
type Player struct {
	name   string
	frames [FrameCount]Frame

	strict bool // strict enables roll-combination checks beyond the range check.
	logger *slog.Logger
}

// Option configures a Player at construction time.
type Option func(*Player)

// WithLogger routes the player's diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(self *Player) {
		if logger != nil {
			self.logger = logger
		}
	}
}

// WithStrictTenthFrame rejects tenth frames whose rolls could not have
// happened on a real lane (for instance 5 then 8 without a strike), and
// bonus rolls given for frames 0-8. Scoring is unaffected; only RecordFrame
// becomes stricter.
func WithStrictTenthFrame() Option {
	return func(self *Player) { self.strict = true }
}

// NewPlayer creates a player with ten gutter frames.
func NewPlayer(name string, options ...Option) *Player {
	self := &Player{
		name:   name,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(self)
	}
	return self
}

func (self *Player) Name() string { return self.name }

// Frames returns a copy of the player's frames in order.
func (self *Player) Frames() []Frame {
	frames := make([]Frame, FrameCount)
	copy(frames, self.frames[:])
	return frames
}

// Frame returns the frame at index.
func (self *Player) Frame(index int) (Frame, error) {
	if err := checkIndex(index); err != nil {
		return Frame{}, err
	}
	return self.frames[index], nil
}

// RecordFrame stores the rolls of the frame at index, replacing whatever was
// there before. The optional bonus is the third roll, only meaningful in the
// tenth frame; on frames 0-8 it is range checked and stored but never scored,
// and a strict player rejects it unless it is zero. Nothing is stored when an
// error is returned.
func (self *Player) RecordFrame(index, first, second int, bonus ...int) error {
	if err := checkIndex(index); err != nil {
		return self.reject(index, err)
	}
	if len(bonus) > 1 {
		return self.reject(index, errors.Wrapf(ErrInvalidRoll, "frame %d: %d bonus rolls given, at most 1 allowed", index, len(bonus)))
	}
	third := 0
	if len(bonus) == 1 {
		third = bonus[0]
	}

	for _, roll := range [...]int{first, second, third} {
		if roll < 0 || roll > Pins {
			return self.reject(index, errors.Wrapf(ErrInvalidRoll, "frame %d: roll %d outside [0,%d]", index, roll, Pins))
		}
	}
	if index < lastFrame && first+second > Pins {
		return self.reject(index, errors.Wrapf(ErrInvalidRoll, "frame %d: %d+%d exceeds %d pins", index, first, second, Pins))
	}
	if index < lastFrame && self.strict && third != 0 {
		return self.reject(index, errors.Wrapf(ErrInvalidRoll, "frame %d: only the tenth frame earns a bonus roll", index))
	}
	if index == lastFrame && self.strict {
		if err := checkTenthFrame(first, second, third); err != nil {
			return self.reject(index, err)
		}
	}

	self.frames[index] = newFrame(first, second, third)
	self.logger.Debug("Frame recorded",
		slog.String("player", self.name),
		slog.Int("frame", index),
		slog.Int("first_roll", first),
		slog.Int("second_roll", second),
		slog.Int("third_roll", third),
	)
	return nil
}

func (self *Player) reject(index int, err error) error {
	self.logger.Warn("Frame rejected",
		slog.String("player", self.name),
		slog.Int("frame", index),
		slog.String("error", err.Error()),
	)
	return err
}

func checkIndex(index int) error {
	if index < 0 || index > lastFrame {
		return errors.Wrapf(ErrOutOfRange, "frame %d not in [0,%d]", index, lastFrame)
	}
	return nil
}

// checkTenthFrame verifies that each ball of the tenth frame was thrown at
// the pins actually standing.
func checkTenthFrame(first, second, third int) error {
	switch {
	case first < Pins && first+second > Pins:
		return errors.Wrapf(ErrInvalidRoll, "frame %d: %d+%d exceeds %d pins", lastFrame, first, second, Pins)
	case first == Pins && second < Pins && second+third > Pins:
		return errors.Wrapf(ErrInvalidRoll, "frame %d: bonus rolls %d+%d exceed %d pins", lastFrame, second, third, Pins)
	case first < Pins && first+second < Pins && third != 0:
		return errors.Wrapf(ErrInvalidRoll, "frame %d: open frame earns no bonus roll", lastFrame)
	}
	return nil
}
