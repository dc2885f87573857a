// Package pipeline wires the integer line reader through the seq combinators
// for the ropseq command.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/ib-77/ropseq/internal/lines"
	"github.com/ib-77/ropseq/pkg/rop"
	"github.com/ib-77/ropseq/pkg/rop/seq"
	"github.com/ib-77/ropseq/pkg/rop/seq/seqlog"
)

type Mode string

const (
	ModeReport   Mode = "report"
	ModeFailFast Mode = "fail-fast"
	ModeLastErr  Mode = "last-err"
)

var (
	ErrEmptyLine   = errors.New("empty line")
	ErrNegative    = errors.New("negative value")
	ErrUnknownMode = errors.New("unknown mode")
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeReport, ModeFailFast, ModeLastErr:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Run reads integers from input and processes them according to mode.
// Accepted values are written to out, one per line.
func Run(logger *zap.Logger, mode Mode, input io.Reader, out io.Writer) error {
	switch mode {
	case ModeReport:
		return report(logger, input, out)
	case ModeFailFast:
		res := seq.FailFast(validate(input, out))
		if res.IsFailure() {
			return res.Err()
		}
		return nil
	case ModeLastErr:
		counter := seqlog.NewCounter(logger, "invalid line")
		res := seq.LastErr(seq.OnErr(validate(input, out), counter.OnErr))
		if res.IsFailure() {
			return fmt.Errorf("%d invalid lines, last: %w", counter.Count(), res.Err())
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func values(input io.Reader) iter.Seq[rop.Result[int]] {
	return seq.InnerOkOrElse(lines.Ints(input), func() error { return ErrEmptyLine })
}

// report doubles every valid value and logs every invalid line.
func report(logger *zap.Logger, input io.Reader, out io.Writer) error {
	doubled := seq.MapOk(values(input), func(r int) int { return r * 2 })
	logged := seq.OnErr(doubled, seqlog.Errors(logger, "skipping line"))

	for v := range seq.Oks(logged) {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}

// validate rejects negative values and prints the accepted ones as they pass.
func validate(input io.Reader, out io.Writer) iter.Seq[rop.Result[rop.Unit]] {
	checked := seq.AndThenOk(values(input), func(r int) rop.Result[int] {
		if r < 0 {
			return rop.Fail[int](fmt.Errorf("%w: %d", ErrNegative, r))
		}
		return rop.Success(r)
	})

	return seq.AndThenOk(checked, func(r int) rop.Result[rop.Unit] {
		_, err := fmt.Fprintln(out, r)
		return rop.FromPair(rop.Unit{}, err)
	})
}
