package bowling

import "errors"

var (
	// ErrInvalidPins is returned by Game.Roll for a pin count outside [0, 10].
	ErrInvalidPins = errors.New("bowling: pins must be between 0 and 10")

	// ErrGameOver is returned by Game.Roll once the roll ceiling is reached.
	ErrGameOver = errors.New("bowling: game over")

	// ErrInvalidRollSum is returned when a roll would take a frame past 10 pins.
	ErrInvalidRollSum = errors.New("bowling: frame pin sum would exceed 10")

	// ErrFrameFull is returned when a frame already holds two rolls.
	ErrFrameFull = errors.New("bowling: frame already has two rolls")

	// ErrFrameComplete is returned when a frame was already closed by a strike.
	ErrFrameComplete = errors.New("bowling: frame closed by a strike")
)
