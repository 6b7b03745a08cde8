// Command bowling scores a ten-pin bowling game from a list of rolls.
//
// Rolls are read from the arguments, or whitespace-separated from stdin when
// there are none:
//
//	bowling 10 5 5 3
//	echo "4 6 5" | bowling -v
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/chischaschos/bowling-game/bowling"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bowling", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "log every accepted roll")
	strict := flags.Bool("strict", false, "stop at the first rejected roll")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	words := flags.Args()
	if len(words) == 0 {
		var err error
		if words, err = readWords(stdin); err != nil {
			logger.Error("failed to read rolls", "error", err)
			return 1
		}
	}

	game := bowling.NewGame()
	rejected := 0
	for i, word := range words {
		err := roll(game, i+1, word)
		if err == nil {
			logger.Debug("roll accepted", "roll", i+1, "pins", word, "score", game.Score())
			continue
		}
		rejected++
		logger.Warn("roll rejected", "error", err)
		if *strict || errors.Is(err, bowling.ErrGameOver) {
			break
		}
	}

	printGame(stdout, game)
	logger.Info("game scored", "rolls", game.RollsAccepted(), "rejected", rejected, "score", game.Score())
	if *strict && rejected > 0 {
		return 1
	}
	return 0
}

func roll(game *bowling.Game, n int, word string) error {
	pins, err := strconv.Atoi(word)
	if err != nil {
		return fmt.Errorf("roll %d (%q): %w", n, word, err)
	}
	if err := game.Roll(pins); err != nil {
		return fmt.Errorf("roll %d (%d pins): %w", n, pins, err)
	}
	return nil
}

func readWords(r io.Reader) (words []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}

// printGame writes one line per frame followed by the total, e.g.
//
//	 1  X
//	 2  5 /
//	score 36
func printGame(w io.Writer, game *bowling.Game) {
	for i, frame := range game.Frames() {
		fmt.Fprintf(w, "%2d  %s\n", i+1, frame.String())
	}
	fmt.Fprintf(w, "score %d\n", game.Score())
}
