package sequence_test

import (
	"testing"

	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/seqkit/pkg/sequence/sequencecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestArray(t *testing.T) {
	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[int] {
		return &sequence.Array[int]{}
	}).Test(t)
	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[string] {
		return sequence.NewArray[string]()
	}).Test(t)
}

func TestList(t *testing.T) {
	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[int] {
		return &sequence.List[int]{}
	}).Test(t)
	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[string] {
		return sequence.NewList[string]()
	}).Test(t)
}

func TestImmutable(t *testing.T) {
	sequencecontract.Immutable(func(tb testing.TB) sequence.Sequence[int] {
		return sequence.NewImmutableArray[int]()
	}).Test(t)
	sequencecontract.Immutable(func(tb testing.TB) sequence.Sequence[int] {
		return sequence.NewImmutableList[int]()
	}).Test(t)
	sequencecontract.Immutable(func(tb testing.TB) sequence.Sequence[int] {
		return &sequence.Immutable[int]{}
	}).Test(t)
}

func TestArray_growth(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the first append allocates the initial capacity", func(t *testcase.T) {
		var seq sequence.Array[int]
		seq.Append(t.Random.Int())
		assert.Equal(t, 1, seq.Len())
		assert.Equal(t, 10, seq.Cap())
	})

	s.Test("filling the initial capacity grows it by half of the size", func(t *testcase.T) {
		var seq sequence.Array[int]
		for i := 0; i < 10; i++ {
			seq.Append(i)
		}
		assert.Equal(t, 10, seq.Cap())

		seq.Append(10)
		assert.Equal(t, 11, seq.Len())
		assert.Equal(t, 15, seq.Cap())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seq.ToSlice())
	})

	s.Test("growing a single element sequence adds at least one slot", func(t *testcase.T) {
		seq := sequence.NewArray(t.Random.Int())
		assert.Equal(t, 1, seq.Cap())

		seq.Prepend(t.Random.Int())
		assert.Equal(t, 2, seq.Len())
		assert.True(t, 2 <= seq.Cap())
	})

	s.Test("bounds follow the length and not the capacity", func(t *testcase.T) {
		var seq sequence.Array[int]
		seq.Append(t.Random.Int())
		assert.True(t, seq.Len() < seq.Cap())

		_, err := seq.Get(seq.Len())
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
		_, err = seq.Remove(seq.Len())
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
		_, err = seq.Subsequence(0, seq.Len())
		assert.ErrorIs(t, datastruct.ErrInvalidIndices, err)
		_, err = seq.Ref(seq.Cap() - 1)
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
	})

	s.Test("remove shrinks the capacity along with the length", func(t *testcase.T) {
		seq := sequence.NewArray(1, 2, 3)
		_, err := seq.Remove(1)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 3}, seq.ToSlice())
		assert.Equal(t, 2, seq.Cap())
	})

	s.Test("concat allocates exactly the combined length", func(t *testcase.T) {
		out, err := sequence.NewArray(1, 2).Concat(sequence.NewArray(3))
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, out.ToSlice())
		assert.Equal(t, 3, out.(*sequence.Array[int]).Cap())
	})

	s.Test("concat with spare capacity on both sides keeps only the elements", func(t *testcase.T) {
		var seq sequence.Array[int]
		seq.Append(1)
		seq.Append(2)
		assert.Equal(t, 10, seq.Cap())

		out, err := seq.Concat(&seq)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 1, 2}, out.ToSlice())
		assert.Equal(t, 4, out.(*sequence.Array[int]).Cap())
		assert.Equal(t, 10, seq.Cap())
	})
}

func TestArray_Ref(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})

	s.Test("array references point into the storage", func(t *testcase.T) {
		seq := sequence.NewArray(values.Get(t)...)
		ref, err := seq.Ref(0)
		assert.NoError(t, err)
		*ref = 42
		got, err := seq.First()
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	s.Test("list references point into the storage", func(t *testcase.T) {
		seq := sequence.NewList(values.Get(t)...)
		ref, err := seq.Ref(len(values.Get(t)) - 1)
		assert.NoError(t, err)
		*ref = 42
		got, err := seq.Last()
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})
}

func TestList_errors(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("accessing an empty list reports empty list", func(t *testcase.T) {
		var seq sequence.List[int]
		_, err := seq.Get(0)
		assert.ErrorIs(t, datastruct.ErrEmptyList, err)
		_, err = seq.First()
		assert.ErrorIs(t, datastruct.ErrEmptyList, err)
		_, err = seq.Remove(0)
		assert.ErrorIs(t, datastruct.ErrEmptyList, err)
	})

	s.Test("accessing an empty array reports empty array", func(t *testcase.T) {
		var seq sequence.Array[int]
		_, err := seq.Last()
		assert.ErrorIs(t, datastruct.ErrEmptyArray, err)
		_, err = seq.Remove(0)
		assert.ErrorIs(t, datastruct.ErrEmptyArray, err)
	})

	s.Test("mutable and immutable sequences cannot be concatenated", func(t *testcase.T) {
		_, err := sequence.NewList(1).Concat(sequence.NewImmutableList(2))
		assert.ErrorIs(t, sequence.ErrIncompatibleTypes, err)
		_, err = sequence.NewImmutableArray(1).Concat(sequence.NewArray(2))
		assert.ErrorIs(t, sequence.ErrIncompatibleTypes, err)
	})
}

func TestMake(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		kind = let.Var(s, func(t *testcase.T) sequence.Kind {
			return random.Pick(t.Random,
				sequence.KindMutableArray,
				sequence.KindMutableList,
				sequence.KindImmutableArray,
				sequence.KindImmutableList,
			)
		})
		items = let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})
		count = let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(0, len(items.Get(t)))
		})
	)
	act := let.Act2(func(t *testcase.T) (sequence.Sequence[int], error) {
		return sequence.Make(kind.Get(t), items.Get(t), count.Get(t))
	})

	s.Then("the first count items are copied into a sequence of the requested kind", func(t *testcase.T) {
		seq, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, kind.Get(t), seq.Kind())
		assert.Equal(t, count.Get(t), seq.Len())
		if count.Get(t) == 0 {
			assert.Empty(t, seq.ToSlice())
			return
		}
		assert.Equal(t, items.Get(t)[:count.Get(t)], seq.ToSlice())
	})

	s.When("count is negative", func(s *testcase.Spec) {
		count.LetValue(s, -1)

		s.Then("array storage reports negative size", func(t *testcase.T) {
			kind.Set(t, sequence.KindMutableArray)
			_, err := act(t)
			assert.ErrorIs(t, datastruct.ErrNegativeSize, err)
		})

		s.Then("list storage reports negative count", func(t *testcase.T) {
			kind.Set(t, sequence.KindImmutableList)
			_, err := act(t)
			assert.ErrorIs(t, datastruct.ErrNegativeCount, err)
		})
	})

	s.When("the kind is unknown", func(s *testcase.Spec) {
		kind.LetValue(s, sequence.Kind{})

		s.Then("incompatible types is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, sequence.ErrIncompatibleTypes, err)
		})
	})
}

func TestEqual(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("sequences of different storage with the same elements are equal", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(0, 7), t.Random.Int)
		assert.True(t, sequence.Equal[int](sequence.NewArray(vs...), sequence.NewImmutableList(vs...)))
	})

	s.Test("order matters", func(t *testcase.T) {
		assert.False(t, sequence.Equal[int](sequence.NewArray(1, 2), sequence.NewList(2, 1)))
	})

	s.Test("length matters", func(t *testcase.T) {
		assert.False(t, sequence.Equal[int](sequence.NewArray(1, 2), sequence.NewArray(1, 2, 3)))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mutable array", sequence.KindMutableArray.String())
	assert.Equal(t, "immutable list", sequence.KindImmutableList.String())
}

func TestSequence_String(t *testing.T) {
	assert.Equal(t, "[1 2 3]", sequence.NewArray(1, 2, 3).String())
	assert.Equal(t, "[a b]", sequence.NewImmutableList("a", "b").String())
}
