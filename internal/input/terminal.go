package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cosmicstandoff/internal/model"
)

// Terminal is a Provider backed by an interactive line reader. A single
// goroutine pumps lines into a channel so every read can be interrupted
// through the context; the pump lives for the process lifetime.
type Terminal struct {
	out   io.Writer
	lines chan string
	errc  chan error
}

var _ Provider = (*Terminal)(nil)

// NewTerminal creates a Terminal reading prompts from r and writing them to w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	t := &Terminal{
		out:   w,
		lines: make(chan string),
		errc:  make(chan error, 1),
	}
	go t.pump(r)
	return t
}

func (t *Terminal) pump(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		t.errc <- err
		return
	}
	t.errc <- io.EOF
}

// readLine returns the next input line, or the context error on
// cancellation. EOF on the underlying reader counts as an abort.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	select {
	case line := <-t.lines:
		return line, nil
	case err := <-t.errc:
		if errors.Is(err, io.EOF) {
			return "", model.ErrAborted
		}
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// BoardBounds prompts for the minimum and maximum coordinates until the
// span constraint is satisfied.
func (t *Terminal) BoardBounds(ctx context.Context) (model.Bounds, error) {
	fmt.Fprintf(t.out, `
How large should the board be at the start of the game?

Provide the minimum and maximum coordinates, at least %d units apart.

Example:
(0, 10) spans 11 units.

Note: A larger difference between the coordinates may increase game duration.

`, model.MinBoardSpan)

	for {
		minCoord, err := t.readInt(ctx, "Minimum Coordinate: ")
		if err != nil {
			return model.Bounds{}, err
		}
		maxCoord, err := t.readInt(ctx, "Maximum Coordinate: ")
		if err != nil {
			return model.Bounds{}, err
		}

		bounds := model.Bounds{Min: minCoord, Max: maxCoord}
		if err := bounds.Validate(); err != nil {
			fmt.Fprintf(t.out, "\nThe coordinates must be at least %d units apart.\n", model.MinBoardSpan)
			fmt.Fprintf(t.out, "You chose a board of %d units.\n\n", maxCoord-minCoord)
			continue
		}
		return bounds, nil
	}
}

// Move prompts for one of the five move tokens.
func (t *Terminal) Move(ctx context.Context) (model.Move, error) {
	fmt.Fprint(t.out, "\nCaptain, where do you want to move?\n")
	fmt.Fprint(t.out, "Type Up, Down, Left, Right to move, or Still to stay in place.\n")

	for {
		line, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}

		mv, err := model.ParseMove(line)
		if err != nil {
			fmt.Fprintf(t.out, "\n'%s' is not a valid move, Captain.\n", strings.TrimSpace(line))
			fmt.Fprint(t.out, "Choose between: Up, Down, Left, Right, or Still.\n")
			continue
		}
		return mv, nil
	}
}

// PlayAgain asks a yes/no question and accepts y/yes/n/no.
func (t *Terminal) PlayAgain(ctx context.Context) (bool, error) {
	fmt.Fprint(t.out, "\nDo you want to play again? Type: (yes or no).\n")

	for {
		line, err := t.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprint(t.out, "Please answer yes or no.\n")
		}
	}
}

func (t *Terminal) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		fmt.Fprint(t.out, prompt)
		line, err := t.readLine(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(t.out, "'%s' is not a whole number.\n", strings.TrimSpace(line))
			continue
		}
		return value, nil
	}
}
