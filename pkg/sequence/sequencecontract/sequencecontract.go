// Package sequencecontract holds reusable behavioural tests for sequence.Sequence implementations.
package sequencecontract

import (
	"errors"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type Config[T any] struct {
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) Configure(t *Config[T]) {
	t.MakeElem = zerokit.Coalesce(c.MakeElem, t.MakeElem)
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflectkit.TypeOf[T]()).(T)
}

type Option[T any] option.Option[Config[T]]

// Sequence describes the behaviour shared by every sequence variant.
// The make function must return an empty sequence.
//
// Edits are always observed through the returned sequence,
// so the contract holds for both in-place and copy-on-write implementations.
func Sequence[T any](make contract.Make[sequence.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		}, random.UniqueValues)
	})
	seq := let.Var(s, func(t *testcase.T) sequence.Sequence[T] {
		return fill(make(t), values.Get(t))
	})

	s.Test("a freshly made sequence is empty", func(t *testcase.T) {
		subject := make(t)
		assert.Equal(t, 0, subject.Len())
		assert.Empty(t, subject.ToSlice())

		_, err := subject.First()
		assertEmpty(t, err)
		_, err = subject.Last()
		assertEmpty(t, err)
	})

	s.Test("Kind is stable across edits", func(t *testcase.T) {
		kind := make(t).Kind()
		assert.Equal(t, kind, seq.Get(t).Kind())
		assert.Equal(t, kind, seq.Get(t).Append(c.makeElem(t)).Kind())
		assert.Equal(t, kind, seq.Get(t).Clone().Kind())
	})

	s.Describe("#Len", func(s *testcase.Spec) {
		s.Then("it reports the number of elements", func(t *testcase.T) {
			assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
		})
	})

	s.Describe("#First and #Last", func(s *testcase.Spec) {
		s.Then("they return the two ends", func(t *testcase.T) {
			first, err := seq.Get(t).First()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[0], first)

			last, err := seq.Get(t).Last()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[len(values.Get(t))-1], last)
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntN(len(values.Get(t)))
		})
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Get(index.Get(t))
		})

		s.Then("the element at the index is returned", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[index.Get(t)], got)
		})

		s.When("index is out of range", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return random.Pick(t.Random, -1, len(values.Get(t)), len(values.Get(t))+t.Random.IntBetween(1, 42))
			})

			s.Then("index out of range is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
			})
		})
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		item := let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })

		s.Then("the item becomes the last element", func(t *testcase.T) {
			out := seq.Get(t).Append(item.Get(t))
			assert.Equal(t, append(clone(values.Get(t)), item.Get(t)), out.ToSlice())

			last, err := out.Last()
			assert.NoError(t, err)
			assert.Equal(t, item.Get(t), last)
		})

		s.Then("appending to an empty sequence yields a single element", func(t *testcase.T) {
			out := make(t).Append(item.Get(t))
			assert.Equal(t, []T{item.Get(t)}, out.ToSlice())
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		item := let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })

		s.Then("the item becomes the first element", func(t *testcase.T) {
			out := seq.Get(t).Prepend(item.Get(t))
			assert.Equal(t, append([]T{item.Get(t)}, values.Get(t)...), out.ToSlice())
		})

		s.Then("prepending to an empty sequence makes the item both first and last", func(t *testcase.T) {
			out := make(t).Prepend(item.Get(t))
			first, err := out.First()
			assert.NoError(t, err)
			last, err := out.Last()
			assert.NoError(t, err)
			assert.Equal(t, item.Get(t), first)
			assert.Equal(t, item.Get(t), last)
		})
	})

	s.Describe("#InsertAt", func(s *testcase.Spec) {
		var (
			index = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(values.Get(t)))
			})
			item = let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })
		)
		act := let.Act2(func(t *testcase.T) (sequence.Sequence[T], error) {
			return seq.Get(t).InsertAt(index.Get(t), item.Get(t))
		})

		s.Then("the item is placed at the index and the rest keeps its order", func(t *testcase.T) {
			out, err := act(t)
			assert.NoError(t, err)

			exp := clone(values.Get(t)[:index.Get(t)])
			exp = append(exp, item.Get(t))
			exp = append(exp, values.Get(t)[index.Get(t):]...)
			assert.Equal(t, exp, out.ToSlice())
		})

		s.When("index points one past the last element", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) })

			s.Then("the item becomes the last element", func(t *testcase.T) {
				out, err := act(t)
				assert.NoError(t, err)
				last, err := out.Last()
				assert.NoError(t, err)
				assert.Equal(t, item.Get(t), last)
			})
		})

		s.When("index is out of range", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return random.Pick(t.Random, -1, len(values.Get(t))+1)
			})

			s.Then("index out of range is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
				assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		index := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntN(len(values.Get(t)))
		})
		act := let.Act2(func(t *testcase.T) (sequence.Sequence[T], error) {
			return seq.Get(t).Remove(index.Get(t))
		})

		s.Then("the element at the index is removed", func(t *testcase.T) {
			out, err := act(t)
			assert.NoError(t, err)

			exp := clone(values.Get(t)[:index.Get(t)])
			exp = append(exp, values.Get(t)[index.Get(t)+1:]...)
			assert.Equal(t, exp, out.ToSlice())
			assert.Equal(t, len(values.Get(t))-1, out.Len())
		})

		s.When("the last element is removed", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) - 1 })

			s.Then("the previous element becomes the last", func(t *testcase.T) {
				out, err := act(t)
				assert.NoError(t, err)
				last, err := out.Last()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-2], last)
			})
		})

		s.When("index is out of range", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return random.Pick(t.Random, -1, len(values.Get(t)), len(values.Get(t))+1)
			})

			s.Then("index out of range is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
			})
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			seq.Let(s, func(t *testcase.T) sequence.Sequence[T] { return make(t) })
			index.LetValue(s, 0)

			s.Then("emptiness is reported", func(t *testcase.T) {
				_, err := act(t)
				assertEmpty(t, err)
			})
		})
	})

	s.Describe("#Subsequence", func(s *testcase.Spec) {
		var (
			lo = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})
			hi = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(lo.Get(t), len(values.Get(t))-1)
			})
		)
		act := let.Act2(func(t *testcase.T) (sequence.Sequence[T], error) {
			return seq.Get(t).Subsequence(lo.Get(t), hi.Get(t))
		})

		s.Then("the inclusive range is returned as a new sequence of the same kind", func(t *testcase.T) {
			sub, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[lo.Get(t):hi.Get(t)+1], sub.ToSlice())
			assert.Equal(t, seq.Get(t).Kind(), sub.Kind())
		})

		s.Then("editing the subsequence leaves the source intact", func(t *testcase.T) {
			sub, err := act(t)
			assert.NoError(t, err)
			sub.Append(c.makeElem(t))
			_, _ = sub.Remove(0)
			assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
		})

		s.When("the indices are invalid", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				n := len(values.Get(t))
				switch t.Random.IntN(3) {
				case 0:
					lo.Set(t, -1)
					hi.Set(t, 0)
				case 1:
					lo.Set(t, 0)
					hi.Set(t, n)
				case 2:
					lo.Set(t, 1)
					hi.Set(t, 0)
				}
			})

			s.Then("invalid indices is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrInvalidIndices, err)
			})
		})
	})

	s.Describe("#Concat", func(s *testcase.Spec) {
		othValues := let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(0, 5), func() T {
				return c.makeElem(t)
			})
		})
		oth := let.Var(s, func(t *testcase.T) sequence.Sequence[T] {
			return fill(make(t), othValues.Get(t))
		})
		act := let.Act2(func(t *testcase.T) (sequence.Sequence[T], error) {
			return seq.Get(t).Concat(oth.Get(t))
		})

		s.Then("the result holds the elements of both in order", func(t *testcase.T) {
			out, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, append(clone(values.Get(t)), othValues.Get(t)...), out.ToSlice())
			assert.Equal(t, seq.Get(t).Kind(), out.Kind())
		})

		s.Then("the result is independent from both operands", func(t *testcase.T) {
			out, err := act(t)
			assert.NoError(t, err)
			_, err = out.Remove(0)
			assert.NoError(t, err)
			out.Append(c.makeElem(t))

			assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
			assert.Equal(t, len(othValues.Get(t)), oth.Get(t).Len())
		})

		s.When("the other sequence is nil", func(s *testcase.Spec) {
			oth.Let(s, func(t *testcase.T) sequence.Sequence[T] { return nil })

			s.Then("null list is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrNullList, err)
			})
		})

		s.When("the other sequence has a different kind", func(s *testcase.Spec) {
			oth.Let(s, func(t *testcase.T) sequence.Sequence[T] {
				kind := seq.Get(t).Kind()
				if kind.Storage == sequence.StorageArray {
					kind.Storage = sequence.StorageList
				} else {
					kind.Storage = sequence.StorageArray
				}
				o, err := sequence.Make(kind, othValues.Get(t), len(othValues.Get(t)))
				assert.NoError(t, err)
				return o
			})

			s.Then("incompatible types is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, sequence.ErrIncompatibleTypes, err)
			})
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		s.Then("the clone is equal to the original", func(t *testcase.T) {
			assert.True(t, sequence.Equal(seq.Get(t), seq.Get(t).Clone()))
		})

		s.Then("editing the clone leaves the original intact", func(t *testcase.T) {
			cl := seq.Get(t).Clone()
			cl.Append(c.makeElem(t))
			_, err := cl.Remove(0)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		s.Then("elements are yielded in order with their index", func(t *testcase.T) {
			var n int
			for i, v := range seq.Get(t).Iter() {
				assert.Equal(t, n, i)
				assert.Equal(t, values.Get(t)[i], v)
				n++
			}
			assert.Equal(t, len(values.Get(t)), n)
		})

		s.Then("iteration can be stopped early", func(t *testcase.T) {
			var n int
			for range seq.Get(t).Iter() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	})

	return s.AsSuite("Sequence")
}

// Mutable describes a sequence which applies edits in place and returns itself.
func Mutable[T any](make contract.Make[sequence.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	Sequence(make, opts...).Spec(s)

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		}, random.UniqueValues)
	})
	// seq is the object returned by make, filled in place without reassigning it.
	seq := let.Var(s, func(t *testcase.T) sequence.Sequence[T] {
		subject := make(t)
		for _, v := range values.Get(t) {
			subject.Append(v)
		}
		return subject
	})

	s.Test("the variant is mutable", func(t *testcase.T) {
		assert.Equal(t, sequence.VariantMutable, seq.Get(t).Kind().Variant)
	})

	s.Test("appends are observed on the receiver", func(t *testcase.T) {
		assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
	})

	s.Test("Instance returns the sequence itself", func(t *testcase.T) {
		assert.True(t, seq.Get(t).Instance() == seq.Get(t))
	})

	s.Test("Instance of a freshly made sequence is the same object", func(t *testcase.T) {
		subject := make(t)
		assert.True(t, subject.Instance() == subject)
		assert.True(t, subject.Append(c.makeElem(t)) == subject)
	})

	s.Test("edits are applied on the receiver", func(t *testcase.T) {
		subject := seq.Get(t)
		var (
			head = c.makeElem(t)
			tail = c.makeElem(t)
		)
		assert.True(t, subject.Append(tail) == subject)
		assert.True(t, subject.Prepend(head) == subject)

		out, err := subject.InsertAt(1, c.makeElem(t))
		assert.NoError(t, err)
		assert.True(t, out == subject)

		out, err = subject.Remove(1)
		assert.NoError(t, err)
		assert.True(t, out == subject)

		exp := append([]T{head}, values.Get(t)...)
		exp = append(exp, tail)
		assert.Equal(t, exp, subject.ToSlice())
	})

	return s.AsSuite("Mutable")
}

// Immutable describes a sequence which never changes after construction.
func Immutable[T any](make contract.Make[sequence.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	Sequence(make, opts...).Spec(s)

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		}, random.UniqueValues)
	})
	seq := let.Var(s, func(t *testcase.T) sequence.Sequence[T] {
		return fill(make(t), values.Get(t))
	})

	s.Test("the variant is immutable", func(t *testcase.T) {
		assert.Equal(t, sequence.VariantImmutable, seq.Get(t).Kind().Variant)
	})

	s.Test("Instance returns an equal but distinct sequence", func(t *testcase.T) {
		inst := seq.Get(t).Instance()
		assert.True(t, inst != seq.Get(t))
		assert.True(t, sequence.Equal(seq.Get(t), inst))
	})

	s.Test("edits leave the receiver untouched", func(t *testcase.T) {
		subject := seq.Get(t)

		subject.Append(c.makeElem(t))
		subject.Prepend(c.makeElem(t))
		_, err := subject.InsertAt(1, c.makeElem(t))
		assert.NoError(t, err)
		_, err = subject.Remove(0)
		assert.NoError(t, err)
		_, err = subject.Concat(subject)
		assert.NoError(t, err)

		assert.Equal(t, values.Get(t), subject.ToSlice())
	})

	s.Test("a failed edit leaves the receiver untouched", func(t *testcase.T) {
		_, err := seq.Get(t).InsertAt(-1, c.makeElem(t))
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
		assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
	})

	s.Test("editing the result of an edit is not observed by the receiver", func(t *testcase.T) {
		out := seq.Get(t).Append(c.makeElem(t))
		out.Append(c.makeElem(t))
		assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
		assert.Equal(t, len(values.Get(t))+1, out.Len())
	})

	return s.AsSuite("Immutable")
}

func fill[T any](seq sequence.Sequence[T], vs []T) sequence.Sequence[T] {
	for _, v := range vs {
		seq = seq.Append(v)
	}
	return seq
}

func clone[T any](vs []T) []T {
	return append(make([]T, 0, len(vs)), vs...)
}

func assertEmpty(tb testing.TB, err error) {
	tb.Helper()
	if !errors.Is(err, datastruct.ErrEmptyArray) && !errors.Is(err, datastruct.ErrEmptyList) {
		tb.Fatalf("expected an emptiness error, got: %v", err)
	}
}

// MakeElem creates an element the same way the contracts do when they are configured with opts.
func MakeElem[T any](tb testing.TB, opts ...Option[T]) T {
	return option.ToConfig(opts).makeElem(tb)
}
