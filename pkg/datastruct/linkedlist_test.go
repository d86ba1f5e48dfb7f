package datastruct_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	ll := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		return &datastruct.LinkedList[int]{}
	})

	givenValues := func(s *testcase.Spec) testcase.Var[[]int] {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(2, 5), t.Random.Int, random.UniqueValues)
		})
		ll.Let(s, func(t *testcase.T) *datastruct.LinkedList[int] {
			var list datastruct.LinkedList[int]
			list.Append(values.Get(t)...)
			return &list
		})
		return values
	}

	s.Test("smoke", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]

		ll.Append(1, 2, 3)
		ll.Append(4)
		ll.Prepend(-1, 0)
		assert.Equal(t, []int{-1, 0, 1, 2, 3, 4}, ll.ToSlice())

		last, ok := ll.Pop()
		assert.True(t, ok)
		assert.Equal(t, 4, last)

		var popped []int
		for {
			last, ok := ll.Pop()
			if !ok {
				break
			}
			popped = append(popped, last)
		}
		assert.Equal(t, []int{3, 2, 1, 0, -1}, popped)

		ll.Prepend(1)
		assert.NoError(t, ll.InsertAt(1, 3))
		assert.NoError(t, ll.InsertAt(1, 2))
		assert.NoError(t, ll.InsertAt(0, 0))
		assert.Equal(t, []int{0, 1, 2, 3}, ll.ToSlice())

		assert.NoError(t, ll.Remove(3))
		ll.Append(42)
		assert.Equal(t, []int{0, 1, 2, 42}, ll.ToSlice())
		assert.Equal(t, 4, ll.Len())
	})

	s.Test("negative count is rejected during construction", func(t *testcase.T) {
		_, err := datastruct.NewLinkedList([]int{1, 2, 3}, -1)
		assert.ErrorIs(t, datastruct.ErrNegativeCount, err)

		_, err = datastruct.NewLinkedList([]int{1, 2, 3}, 4)
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)

		list, err := datastruct.NewLinkedList([]int{1, 2, 3}, 2)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, list.ToSlice())
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Append(newVS.Get(t)...)
		})

		s.Then("value is appended to the list", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), ll.Get(t).ToSlice())
		})

		s.When("no new value is provided", func(s *testcase.Spec) {
			newVS.LetValue(s, nil)

			s.Then("nothing changes", func(t *testcase.T) {
				bl := ll.Get(t).Len()
				act(t)
				assert.Equal(t, bl, ll.Get(t).Len())
			})
		})

		s.When("elements were already present in the list", func(s *testcase.Spec) {
			existing := givenValues(s)

			s.Then("the new value will be appended at the end", func(t *testcase.T) {
				act(t)

				expVS := slicekit.Merge(existing.Get(t), newVS.Get(t))
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
			})

			s.Then("the last element is the last appended value", func(t *testcase.T) {
				act(t)

				got, err := ll.Get(t).Last()
				assert.NoError(t, err)
				assert.Equal(t, newVS.Get(t)[len(newVS.Get(t))-1], got)
			})
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Prepend(newVS.Get(t)...)
		})

		s.Then("value is added to the list", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), ll.Get(t).ToSlice())
		})

		s.Then("the tail is tracked even when the list was empty", func(t *testcase.T) {
			act(t)

			got, err := ll.Get(t).Last()
			assert.NoError(t, err)
			assert.Equal(t, newVS.Get(t)[len(newVS.Get(t))-1], got)

			ll.Get(t).Append(42)
			assert.Equal(t, append(slicekit.Clone(newVS.Get(t)), 42), ll.Get(t).ToSlice())
		})

		s.When("elements were already present in the list", func(s *testcase.Spec) {
			existing := givenValues(s)

			s.Then("the new value will be added at the beginning", func(t *testcase.T) {
				act(t)

				expVS := slicekit.Merge(newVS.Get(t), existing.Get(t))
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
			})

			s.Then("length is updated", func(t *testcase.T) {
				act(t)

				expLen := len(newVS.Get(t)) + len(existing.Get(t))
				assert.Equal(t, expLen, ll.Get(t).Len())
			})
		})
	})

	s.Describe("#First and #Last", func(s *testcase.Spec) {
		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("empty list error is reported", func(t *testcase.T) {
				_, err := ll.Get(t).First()
				assert.ErrorIs(t, datastruct.ErrEmptyList, err)
				_, err = ll.Get(t).Last()
				assert.ErrorIs(t, datastruct.ErrEmptyList, err)
			})
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := givenValues(s)

			s.Then("the ends are returned", func(t *testcase.T) {
				first, err := ll.Get(t).First()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], first)

				last, err := ll.Get(t).Last()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], last)
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		var (
			index = let.VarOf(s, 0)
		)
		act := let.Act2(func(t *testcase.T) (int, error) {
			return ll.Get(t).Get(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("empty list is reported for any index", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrEmptyList, err)
			})
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := givenValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("the expected element is returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[index.Get(t)], got)
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-100, -1)
				})

				s.Then("index out of range is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
				})
			})

			s.And("index is at or beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 1)
				})

				s.Then("index out of range is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
				})
			})
		})
	})

	s.Describe("#InsertAt", func(s *testcase.Spec) {
		var (
			index = let.VarOf(s, 0)
			value = let.Var(s, func(t *testcase.T) int {
				return t.Random.Int()
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return ll.Get(t).InsertAt(index.Get(t), value.Get(t))
		})

		s.When("list is empty and index is zero", func(s *testcase.Spec) {
			s.Then("the value becomes both head and tail", func(t *testcase.T) {
				assert.NoError(t, act(t))

				first, err := ll.Get(t).First()
				assert.NoError(t, err)
				last, err := ll.Get(t).Last()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), first)
				assert.Equal(t, value.Get(t), last)
			})
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := givenValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(values.Get(t)))
			})

			s.Then("the value is inserted at the index", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slicekit.Clone(values.Get(t))
				exp = append(exp[:index.Get(t)], append([]int{value.Get(t)}, exp[index.Get(t):]...)...)
				assert.Equal(t, exp, ll.Get(t).ToSlice())
				assert.Equal(t, len(exp), ll.Get(t).Len())
			})

			s.And("index points one past the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("the value becomes the new tail", func(t *testcase.T) {
					assert.NoError(t, act(t))

					last, err := ll.Get(t).Last()
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), last)
				})
			})

			s.And("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return random.Pick(t.Random, -1, len(values.Get(t)) + 1)
				})

				s.Then("index out of range is reported and the list is untouched", func(t *testcase.T) {
					assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		var (
			index = let.VarOf(s, 0)
		)
		act := let.Act(func(t *testcase.T) error {
			return ll.Get(t).Remove(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("empty list is reported", func(t *testcase.T) {
				assert.ErrorIs(t, datastruct.ErrEmptyList, act(t))
			})
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := givenValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("exactly one element is removed", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slicekit.Clone(values.Get(t))
				assert.True(t, slicekit.Delete(&exp, index.Get(t)))
				assert.Equal(t, exp, ll.Get(t).ToSlice())
				assert.Equal(t, len(exp), ll.Get(t).Len())
			})

			s.And("the removed element is the tail", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				s.Then("the predecessor becomes the tail", func(t *testcase.T) {
					assert.NoError(t, act(t))

					last, err := ll.Get(t).Last()
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[len(values.Get(t))-2], last)

					ll.Get(t).Append(42)
					got, err := ll.Get(t).Last()
					assert.NoError(t, err)
					assert.Equal(t, 42, got)
				})
			})

			s.And("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return random.Pick(t.Random, -1, len(values.Get(t)), len(values.Get(t)) + 1)
				})

				s.Then("index out of range is reported", func(t *testcase.T) {
					assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return ll.Get(t).Pop()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("result signals that the list has no more elements to be popped", func(t *testcase.T) {
				gotVal, gotFlag := act(t)
				assert.Equal(t, 0, gotVal)
				assert.False(t, gotFlag)
			})
		})

		s.When("list has element(s)", func(s *testcase.Spec) {
			values := givenValues(s)

			s.Then("the last element is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)

				exp, ok := slicekit.Last(values.Get(t))
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			})

			s.Then("remaining slice matches expected", func(t *testcase.T) {
				act(t)

				expVS := values.Get(t)[:len(values.Get(t))-1]
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
				assert.Equal(t, len(expVS), ll.Get(t).Len())
			})
		})
	})

	s.Describe("#Shift", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return ll.Get(t).Shift()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("result signals that the list has no more elements to be shifted", func(t *testcase.T) {
				gotVal, gotFlag := act(t)
				assert.Equal(t, 0, gotVal)
				assert.False(t, gotFlag)
			})
		})

		s.When("list has element(s)", func(s *testcase.Spec) {
			values := givenValues(s)

			s.Then("the first element is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)

				exp, ok := slicekit.First(values.Get(t))
				assert.True(t, ok)
				assert.Equal(t, exp, got)
			})

			s.Then("remaining slice matches expected", func(t *testcase.T) {
				act(t)

				assert.Equal(t, values.Get(t)[1:], ll.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#SubList", func(s *testcase.Spec) {
		var (
			lo = let.VarOf(s, 0)
			hi = let.VarOf(s, 0)
		)
		act := let.Act2(func(t *testcase.T) (*datastruct.LinkedList[int], error) {
			return ll.Get(t).SubList(lo.Get(t), hi.Get(t))
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := givenValues(s)

			lo.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})
			hi.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(lo.Get(t), len(values.Get(t))-1)
			})

			s.Then("a copy of the inclusive range is returned", func(t *testcase.T) {
				sub, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[lo.Get(t):hi.Get(t)+1], sub.ToSlice())
			})

			s.Then("changing the sub list leaves the source untouched", func(t *testcase.T) {
				sub, err := act(t)
				assert.NoError(t, err)
				sub.Append(42)
				assert.NoError(t, sub.Remove(0))
				assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
			})

			s.And("the range is malformed", func(s *testcase.Spec) {
				hi.Let(s, func(t *testcase.T) int {
					return random.Pick(t.Random, lo.Get(t) - 1, len(values.Get(t)))
				})

				s.Then("invalid indices is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, datastruct.ErrInvalidIndices, err)
				})
			})
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("invalid indices is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrInvalidIndices, err)
			})
		})
	})

	s.Describe("#Concat", func(s *testcase.Spec) {
		var (
			oth = let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
				return datastruct.LinkedListOf(random.Slice(t.Random.IntBetween(0, 5), t.Random.Int)...)
			})
		)
		act := let.Act2(func(t *testcase.T) (*datastruct.LinkedList[int], error) {
			return ll.Get(t).Concat(oth.Get(t))
		})

		values := givenValues(s)

		s.Then("the result holds both lists in order", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, slicekit.Merge(values.Get(t), oth.Get(t).ToSlice()), got.ToSlice())
			assert.Equal(t, len(values.Get(t))+oth.Get(t).Len(), got.Len())
		})

		s.Then("the operands stay independent from the result", func(t *testcase.T) {
			othVS := oth.Get(t).ToSlice()
			got, err := act(t)
			assert.NoError(t, err)

			got.Append(42)
			assert.NoError(t, got.Remove(0))

			assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
			assert.Equal(t, othVS, oth.Get(t).ToSlice())

			oth.Get(t).Append(24)
			last, err := got.Last()
			assert.NoError(t, err)
			assert.Equal(t, 42, last)
		})

		s.When("the other list is nil", func(s *testcase.Spec) {
			oth.LetValue(s, nil)

			s.Then("null list is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, datastruct.ErrNullList, err)
			})
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		values := givenValues(s)

		s.Then("the clone is equal but independent", func(t *testcase.T) {
			clone := ll.Get(t).Clone()
			assert.True(t, clone.Equal(ll.Get(t)))

			clone.Append(42)
			assert.False(t, clone.Equal(ll.Get(t)))
			assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
		})
	})

	s.Describe("#Ref", func(s *testcase.Spec) {
		values := givenValues(s)

		s.Then("the reference points into the list's own node", func(t *testcase.T) {
			index := t.Random.IntN(len(values.Get(t)))
			ref, err := ll.Get(t).Ref(index)
			assert.NoError(t, err)
			*ref = 42

			got, err := ll.Get(t).Get(index)
			assert.NoError(t, err)
			assert.Equal(t, 42, got)
		})
	})
}
