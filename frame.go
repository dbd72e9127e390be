package bowling

import (
	"strconv"
	"strings"
)

// Frame holds the rolls of one frame. ThirdRoll is only used by the tenth
// frame, where a strike or spare earns bonus rolls.
type Frame struct {
	FirstRoll  int
	SecondRoll int
	ThirdRoll  int

	IsStrike bool
	IsSpare  bool
}

func newFrame(first, second, third int) Frame {
	strike := first == Pins
	return Frame{
		FirstRoll:  first,
		SecondRoll: second,
		ThirdRoll:  third,
		IsStrike:   strike,
		IsSpare:    !strike && first+second == Pins,
	}
}

// TotalPins is the number of pins knocked down by every roll of the frame.
func (self Frame) TotalPins() int {
	return self.FirstRoll + self.SecondRoll + self.ThirdRoll
}

// Notation renders the frame the way a paper scorecard does: X for a strike,
// / for a spare, - for a miss. Set tenth to render the bonus rolls of the
// final frame.
func (self Frame) Notation(tenth bool) string {
	if !tenth {
		if self.IsStrike {
			return "X"
		}
		return mark(self.FirstRoll) + self.secondMark()
	}

	var out strings.Builder
	out.WriteString(mark(self.FirstRoll))
	out.WriteString(self.secondMark())
	switch {
	case self.IsStrike && self.SecondRoll == Pins, self.IsSpare:
		out.WriteString(mark(self.ThirdRoll))
	case self.IsStrike && self.SecondRoll+self.ThirdRoll == Pins:
		out.WriteString("/")
	case self.IsStrike:
		out.WriteString(mark(self.ThirdRoll))
	}
	return out.String()
}

func (self Frame) secondMark() string {
	if self.IsSpare {
		return "/"
	}
	return mark(self.SecondRoll)
}

func mark(pins int) string {
	switch pins {
	case 0:
		return "-"
	case Pins:
		return "X"
	}
	return strconv.Itoa(pins)
}
