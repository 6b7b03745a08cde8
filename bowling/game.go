// Package bowling keeps the score of a ten-pin bowling game as rolls come in.
//
// Scoring is deliberately simplified: a strike or spare earns the pin total
// of the whole next frame as its bonus, and a game is capped at a flat 20
// rolls. There is no tenth-frame bonus ball.
package bowling

// MaxRolls is the flat roll ceiling for a game.
const MaxRolls = 20

// Game is a sequence of frames in play order. It is not safe for concurrent
// use; hosts sharing a Game across goroutines must guard it themselves.
type Game struct {
	frames []*Frame
	rolls  int
}

func NewGame() *Game {
	return &Game{}
}

// Roll routes pins to the current frame, opening a new frame when there is
// none or the last one is complete. A rejected roll changes nothing.
func (self *Game) Roll(pins int) error {
	if pins < 0 || pins > Pins {
		return ErrInvalidPins
	}
	if self.IsOver() {
		return ErrGameOver
	}

	frame, fresh := self.currentFrame()
	if err := frame.AddRoll(pins); err != nil {
		return err
	}
	if fresh {
		self.frames = append(self.frames, frame)
	}
	self.rolls++
	return nil
}

// currentFrame returns the frame the next roll belongs to. A fresh frame is
// not appended here; Roll commits it only after the roll is accepted.
func (self *Game) currentFrame() (frame *Frame, fresh bool) {
	if n := len(self.frames); n > 0 && !self.frames[n-1].IsComplete() {
		return self.frames[n-1], false
	}
	return new(Frame), true
}

// Frames returns a copy of the game's frames in play order.
func (self *Game) Frames() []Frame {
	frames := make([]Frame, len(self.frames))
	for i, frame := range self.frames {
		frames[i] = frame.clone()
	}
	return frames
}

// Score totals every frame. A strike or spare adds the sum of the following
// frame when one exists; a trailing bonus frame with nothing after it scores
// only its own pins.
func (self *Game) Score() (score int) {
	for i, frame := range self.frames {
		score += frame.RollsSum()
		if (frame.IsSpare() || frame.IsStrike()) && i+1 < len(self.frames) {
			score += self.frames[i+1].RollsSum()
		}
	}
	return score
}

func (self *Game) RollsAccepted() int {
	return self.rolls
}

func (self *Game) IsOver() bool {
	return self.rolls >= MaxRolls
}
