package deque_test

import (
	"testing"

	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/deque"
	"go.llib.dev/seqkit/pkg/deque/dequecontract"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestArray(t *testing.T) {
	dequecontract.Deque(func(tb testing.TB) deque.Deque[int] {
		return &deque.Array[int]{}
	}).Test(t)
}

func TestList(t *testing.T) {
	dequecontract.Deque(func(tb testing.TB) deque.Deque[string] {
		return deque.NewList[string]()
	}).Test(t)
}

func TestDeque_scenario(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("array", func(t *testcase.T) {
		d := deque.NewArray[int]()
		d.PushBack(1)
		d.PushFront(0)
		d.PushBack(2)

		v, err := d.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, []int{0, 1}, d.ToSlice())

		_, err = d.Get(2)
		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, err)
	})

	s.Test("list", func(t *testcase.T) {
		d := deque.NewList(1, 2, 3)
		v, err := d.PopFront()
		assert.NoError(t, err)
		assert.Equal(t, 1, v)
		v, err = d.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{2}, d.ToSlice())
	})

	s.Test("empty errors follow the storage", func(t *testcase.T) {
		_, err := deque.NewArray[int]().PopBack()
		assert.ErrorIs(t, datastruct.ErrEmptyArray, err)
		_, err = deque.NewList[int]().Front()
		assert.ErrorIs(t, datastruct.ErrEmptyList, err)
	})
}

func TestDeque_editsKeepTheDeque(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("array", func(t *testcase.T) {
		d := deque.NewArray(2)
		var seq sequence.Sequence[int] = d
		assert.True(t, seq.Instance() == seq)

		out, ok := seq.Prepend(1).Append(3).(*deque.Array[int])
		assert.True(t, ok)
		assert.True(t, out == d)
		back, err := out.PopBack()
		assert.NoError(t, err)
		assert.Equal(t, 3, back)
	})

	s.Test("list", func(t *testcase.T) {
		d := deque.NewList(1, 3)
		var seq sequence.Sequence[int] = d
		assert.True(t, seq.Instance() == seq)

		out, err := seq.InsertAt(1, 2)
		assert.NoError(t, err)
		ld, ok := out.(*deque.List[int])
		assert.True(t, ok)
		assert.True(t, ld == d)
		front, err := ld.PopFront()
		assert.NoError(t, err)
		assert.Equal(t, 1, front)
		assert.Equal(t, []int{2, 3}, d.ToSlice())
	})
}
