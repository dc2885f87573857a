// Package lines reads integer tokens, one per line, as a lazy result sequence.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ib-77/ropseq/pkg/rop"
)

// Ints yields one item per input line: Some(n) for an integer, None for a
// blank line and a failure for anything else. A read error is yielded as a
// final failure. Lines are read only as items are pulled.
func Ints(r io.Reader) iter.Seq[rop.Result[rop.Option[int]]] {
	return func(yield func(rop.Result[rop.Option[int]]) bool) {
		scanner := bufio.NewScanner(r)
		n := 0

		for scanner.Scan() {
			n++
			if !yield(parse(n, scanner.Text())) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(rop.Fail[rop.Option[int]](fmt.Errorf("read line %d: %w", n+1, err)))
		}
	}
}

func parse(n int, line string) rop.Result[rop.Option[int]] {
	token := strings.TrimSpace(line)
	if token == "" {
		return rop.Success(rop.None[int]())
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return rop.Fail[rop.Option[int]](fmt.Errorf("line %d: %w", n, err))
	}
	return rop.Success(rop.Some(v))
}
