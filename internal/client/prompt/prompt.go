// Package prompt runs the interactive password checker loop.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atinyakov/passmeter/internal/client/meter"
	"github.com/atinyakov/passmeter/internal/strength"
)

// MaxLineBytes is the longest line Run evaluates. Longer lines are skipped
// with a notice and the session continues.
const MaxLineBytes = 1 << 20

const (
	promptText = "passmeter> "
	helpText   = "Type a password and press Enter to check it. Commands: :help, :quit"
)

// Evaluator classifies a candidate password.
type Evaluator interface {
	Evaluate(ctx context.Context, password string) (strength.Result, error)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context, password string) (strength.Result, error)

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx context.Context, password string) (strength.Result, error) {
	return f(ctx, password)
}

// Local evaluates in process.
var Local = EvaluatorFunc(func(_ context.Context, password string) (strength.Result, error) {
	return strength.Evaluate(password), nil
})

// Session reads one candidate password per line and prints its meter.
type Session struct {
	In        io.Reader
	Out       io.Writer
	Evaluator Evaluator
	Meter     meter.Meter
}

// Run loops until EOF, a quit command or ctx cancellation.
// Every line is evaluated from scratch; leading and trailing spaces are part
// of the password. An evaluator error is printed and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.In)
	fmt.Fprintln(s.Out, helpText)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, promptText)
		line, tooLong, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(s.Out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if tooLong {
			fmt.Fprintf(s.Out, "line too long (limit %d bytes), skipped\n", MaxLineBytes)
			continue
		}
		line = strings.TrimSuffix(line, "\r")

		switch line {
		case ":help":
			fmt.Fprintln(s.Out, helpText)
			continue
		case ":quit", ":exit":
			fmt.Fprintln(s.Out, "Bye")
			return nil
		}

		res, err := s.Evaluator.Evaluate(ctx, line)
		if err != nil {
			fmt.Fprintf(s.Out, "error: %v\n", err)
			continue
		}
		if err := s.Meter.Render(s.Out, res); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineBytes is consumed in full and reported through tooLong.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		frag, isPrefix, rerr := r.ReadLine()
		if rerr != nil {
			return "", false, rerr
		}
		if !tooLong {
			if len(buf)+len(frag) > MaxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
