package seq

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropseq/pkg/rop"
)

func TestErrorsAndOks_Partition(t *testing.T) {
	t.Parallel()

	in := []rop.Result[int]{
		rop.Success(1), rop.Fail[int](errE1), rop.Success(2), rop.Fail[int](errE2),
	}

	assert.Equal(t, []error{errE1, errE2}, slices.Collect(Errors(FromSlice(in))))
	assert.Equal(t, []int{1, 2}, slices.Collect(Oks(FromSlice(in))))
}

func TestErrors_StopsPulling(t *testing.T) {
	t.Parallel()

	pulled := 0
	for err := range Errors(counted(&pulled,
		rop.Success(1), rop.Fail[int](errE1), rop.Fail[int](errE2))) {
		assert.Equal(t, errE1, err)
		break
	}
	assert.Equal(t, 2, pulled)
}

func TestOnOk(t *testing.T) {
	t.Parallel()

	in := []rop.Result[int]{rop.Success(1), rop.Fail[int](errA), rop.Success(2)}

	var seen []int
	out := slices.Collect(OnOk(FromSlice(in), func(r int) {
		seen = append(seen, r)
	}))

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, in, out)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	out := MapErr(FromSlice([]rop.Result[int]{rop.Success(1), rop.Fail[int](errA)}),
		func(err error) error { return fmt.Errorf("item: %w", err) })

	got := items(out)
	assert.Equal(t, ok(1), got[0])
	assert.False(t, got[1].Ok)
	assert.ErrorIs(t, got[1].Err, errA)
	assert.EqualError(t, got[1].Err, "item: a")
}

func TestWhileOk(t *testing.T) {
	t.Parallel()

	pulled := 0
	var seen []int
	res := WhileOk(counted(&pulled,
		rop.Success(1), rop.Success(2), rop.Fail[int](errBoom), rop.Success(3),
	), func(r int) {
		seen = append(seen, r)
	})

	assert.Equal(t, errBoom, res.Err())
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 3, pulled)
}

func TestWhileOk_AllSuccess(t *testing.T) {
	t.Parallel()

	sum := 0
	res := WhileOk(FromValues(1, 2, 3), func(r int) { sum += r })

	assert.True(t, res.IsSuccess())
	assert.Equal(t, 6, sum)
}

func TestPipeline_ParseValidateFailFast(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")
	var logged []error

	res := FailFast(
		MapOk(
			OnErr(
				AndThenOk(FromValues(2, 4, 5, 6), func(r int) rop.Result[int] {
					if r%2 != 0 {
						return rop.Fail[int](errOdd)
					}
					return rop.Success(r)
				}),
				func(err error) { logged = append(logged, err) }),
			func(int) rop.Unit { return rop.Unit{} }))

	assert.Equal(t, errOdd, res.Err())
	assert.Equal(t, []error{errOdd}, logged)
}
