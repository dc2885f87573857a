package solo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropseq/pkg/rop"
)

var errBad = errors.New("bad")

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(rop.Success(2), func(r int) string { return fmt.Sprint(r * 2) })
	assert.True(t, out.IsSuccess())
	assert.Equal(t, "4", out.Result())
}

func TestMap_SkipsFailure(t *testing.T) {
	t.Parallel()

	called := false
	in := rop.Fail[int](errBad)
	out := Map(in, func(r int) int {
		called = true
		return r
	})

	assert.False(t, called)
	assert.Same(t, errBad, out.Err())
	assert.Equal(t, in.Id(), out.Id())
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	toFail := func(r int) rop.Result[int] { return rop.Fail[int](errBad) }

	assert.Equal(t, errBad, Switch(rop.Success(1), toFail).Err())
	assert.True(t, Switch(rop.Success(1), func(r int) rop.Result[int] { return rop.Success(r) }).IsSuccess())
}

func TestOkOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	onNone := func() error {
		calls++
		return errBad
	}

	assert.Equal(t, 3, OkOrElse(rop.Success(rop.Some(3)), onNone).Result())
	assert.Equal(t, 0, calls)

	assert.Equal(t, errBad, OkOrElse(rop.Success(rop.None[int]()), onNone).Err())
	assert.Equal(t, 1, calls)

	other := errors.New("other")
	assert.Equal(t, other, OkOrElse(rop.Fail[rop.Option[int]](other), onNone).Err())
	assert.Equal(t, 1, calls)
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	var errs []error
	in := rop.Success(1)
	failed := rop.Fail[int](errBad)

	assert.Equal(t, in, Tee(in, func(r int) { seen = append(seen, r) }))
	assert.Equal(t, failed, Tee(failed, func(r int) { seen = append(seen, r) }))
	assert.Equal(t, in, TeeErr(in, func(err error) { errs = append(errs, err) }))
	assert.Equal(t, failed, TeeErr(failed, func(err error) { errs = append(errs, err) }))

	assert.Equal(t, []int{1}, seen)
	assert.Equal(t, []error{errBad}, errs)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("wrapped: %w", err) }

	assert.ErrorIs(t, MapErr(rop.Fail[int](errBad), wrap).Err(), errBad)
	assert.True(t, MapErr(rop.Success(1), wrap).IsSuccess())
}
