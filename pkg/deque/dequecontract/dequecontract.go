package dequecontract

import (
	"errors"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/deque"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/seqkit/pkg/sequence/sequencecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Deque describes the double-ended behaviour of a deque.Deque.
// The make function must return an empty deque.
func Deque[T any](make contract.Make[deque.Deque[T]], opts ...sequencecontract.Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[T] {
		return make(tb)
	}, opts...).Spec(s)

	subject := let.Var(s, func(t *testcase.T) deque.Deque[T] {
		return make(t)
	})
	mkElem := func(t *testcase.T) T {
		return sequencecontract.MakeElem(t, opts...)
	}

	s.When("the deque is empty", func(s *testcase.Spec) {
		s.Then("it reports itself as empty", func(t *testcase.T) {
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Then("every accessor reports emptiness", func(t *testcase.T) {
			d := subject.Get(t)
			for _, fn := range []func() (T, error){d.PopFront, d.PopBack, d.Front, d.Back} {
				_, err := fn()
				assertEmpty(t, err)
			}
			assert.True(t, d.IsEmpty())
		})
	})

	s.Test("pushing on either end is observable on that end", func(t *testcase.T) {
		var (
			d     = subject.Get(t)
			mid   = mkElem(t)
			front = mkElem(t)
			back  = mkElem(t)
		)
		d.PushBack(mid)
		d.PushFront(front)
		d.PushBack(back)

		got, err := d.Front()
		assert.NoError(t, err)
		assert.Equal(t, front, got)
		got, err = d.Back()
		assert.NoError(t, err)
		assert.Equal(t, back, got)
		assert.Equal(t, []T{front, mid, back}, d.ToSlice())
	})

	s.Test("popping removes the element from the storage", func(t *testcase.T) {
		var (
			d = subject.Get(t)
			a = mkElem(t)
			b = mkElem(t)
			c = mkElem(t)
		)
		d.PushBack(a)
		d.PushBack(b)
		d.PushBack(c)

		got, err := d.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, c, got)
		assert.Equal(t, 2, d.Len())

		got, err = d.Back()
		assert.NoError(t, err)
		assert.Equal(t, b, got)

		got, err = d.PopFront()
		assert.NoError(t, err)
		assert.Equal(t, a, got)
		assert.Equal(t, []T{b}, d.ToSlice())

		got, err = d.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, b, got)
		assert.True(t, d.IsEmpty())
	})

	s.Test("a random mix of operations behaves like a slice model", func(t *testcase.T) {
		var (
			d   = subject.Get(t)
			exp []T
		)
		t.Random.Repeat(16, 64, func() {
			switch t.Random.IntN(4) {
			case 0:
				v := mkElem(t)
				d.PushFront(v)
				exp = append([]T{v}, exp...)
			case 1:
				v := mkElem(t)
				d.PushBack(v)
				exp = append(exp, v)
			case 2:
				got, err := d.PopFront()
				if len(exp) == 0 {
					assertEmpty(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, exp[0], got)
				exp = exp[1:]
			case 3:
				got, err := d.PopBack()
				if len(exp) == 0 {
					assertEmpty(t, err)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, exp[len(exp)-1], got)
				exp = exp[:len(exp)-1]
			}
			assert.Equal(t, len(exp), d.Len())
		})
	})

	return s.AsSuite("Deque")
}

func assertEmpty(tb testing.TB, err error) {
	tb.Helper()
	if !errors.Is(err, datastruct.ErrEmptyArray) && !errors.Is(err, datastruct.ErrEmptyList) {
		tb.Fatalf("expected an emptiness error, got: %v", err)
	}
}
