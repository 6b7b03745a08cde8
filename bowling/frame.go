package bowling

import (
	"strconv"
	"strings"
)

const (
	// Pins is the number of pins standing at the start of a frame.
	Pins = 10

	rollsPerFrame = 2
)

// Frame holds the rolls of a single frame: one roll for a strike, otherwise
// up to two. A rejected roll leaves the frame untouched.
type Frame struct {
	rolls  []int
	strike bool
}

// AddRoll records pins in the frame. The first failing check wins: a frame
// closed by a strike, then the pin sum, then the roll count.
func (self *Frame) AddRoll(pins int) error {
	if self.strike {
		return ErrFrameComplete
	}
	if self.RollsSum()+pins > Pins {
		return ErrInvalidRollSum
	}
	if len(self.rolls) == rollsPerFrame {
		return ErrFrameFull
	}
	self.strike = len(self.rolls) == 0 && pins == Pins
	self.rolls = append(self.rolls, pins)
	return nil
}

func (self *Frame) RollsSum() (sum int) {
	for _, pins := range self.rolls {
		sum += pins
	}
	return sum
}

// IsStrike reports whether the frame was closed by its first ball. Only a
// first-ball 10 counts; a 0 followed by 10 is a spare.
func (self *Frame) IsStrike() bool {
	return self.strike
}

// IsSpare reports whether all pins fell in this frame. A strike frame also
// qualifies; callers that need a "true" spare check IsStrike first.
func (self *Frame) IsSpare() bool {
	return self.RollsSum() == Pins
}

func (self *Frame) IsComplete() bool {
	return len(self.rolls) == rollsPerFrame || self.IsStrike()
}

// Rolls returns a copy of the recorded pin counts in roll order.
func (self *Frame) Rolls() []int {
	return append([]int(nil), self.rolls...)
}

// String renders the frame the way a score sheet would: "X" for a strike,
// "/" for the second ball of a spare, "-" for a frame with no rolls yet.
func (self *Frame) String() string {
	switch {
	case len(self.rolls) == 0:
		return "-"
	case self.IsStrike():
		return "X"
	case len(self.rolls) == rollsPerFrame && self.IsSpare():
		return strconv.Itoa(self.rolls[0]) + " /"
	}
	marks := make([]string, len(self.rolls))
	for i, pins := range self.rolls {
		marks[i] = strconv.Itoa(pins)
	}
	return strings.Join(marks, " ")
}

func (self *Frame) clone() Frame {
	return Frame{rolls: self.Rolls(), strike: self.strike}
}
