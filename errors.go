package bowling

import "errors"

// Errors reported by RecordFrame, ScoreFrame and Frame. They are returned
// wrapped with the offending index or rolls; match them with errors.Is.
var (
	// ErrOutOfRange indicates a frame index outside [0,9].
	ErrOutOfRange = errors.New("frame index out of range")

	// ErrInvalidRoll indicates a roll outside [0,10] or a pin count the
	// rack could not have produced.
	ErrInvalidRoll = errors.New("invalid roll")
)
