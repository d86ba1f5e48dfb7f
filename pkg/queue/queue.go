// Package queue implements FIFO adapters over the sequence storages.
package queue

import (
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/sequence"
)

type Queue[T any] interface {
	sequence.Sequence[T]
	// Enqueue adds v to the back of the queue.
	Enqueue(v T)
	// Dequeue removes and returns the element at the front of the queue.
	// An empty queue reports the emptiness error of its storage.
	Dequeue() (T, error)
	// Peek returns the element at the front of the queue without removing it.
	Peek() (T, error)
	IsEmpty() bool
}

// Array is a queue backed by a growable array.
// The zero value is an empty queue.
type Array[T any] struct {
	sequence.Array[T]
}

func NewArray[T any](vs ...T) *Array[T] {
	return &Array[T]{Array: *sequence.NewArray(vs...)}
}

func (q *Array[T]) Enqueue(v T)         { q.Append(v) }
func (q *Array[T]) Dequeue() (T, error) { return dequeue[T](q) }
func (q *Array[T]) Peek() (T, error)    { return q.First() }
func (q *Array[T]) IsEmpty() bool       { return q.Len() == 0 }

// The editing methods return q itself, so chained edits keep the queue vocabulary.
func (q *Array[T]) Instance() sequence.Sequence[T] { return q }

func (q *Array[T]) Append(v T) sequence.Sequence[T] {
	q.Array.Append(v)
	return q
}

func (q *Array[T]) Prepend(v T) sequence.Sequence[T] {
	q.Array.Prepend(v)
	return q
}

func (q *Array[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := q.Array.InsertAt(index, v); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Array[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := q.Array.Remove(index); err != nil {
		return nil, err
	}
	return q, nil
}

// Clutch merges q and oth into a new queue by taking elements from them in turns.
// Once the shorter queue runs out, the rest of the longer one is appended in order.
// A nil oth is treated as an empty queue.
func (q *Array[T]) Clutch(oth Queue[T]) *Array[T] {
	var out Array[T]
	clutch[T](&out, q, oth)
	return &out
}

// SubQueue returns a new queue with the elements of the inclusive [lo, hi] range.
func (q *Array[T]) SubQueue(lo, hi int) (*Array[T], error) {
	if err := datastruct.CheckRange(lo, hi, q.Len()); err != nil {
		return nil, err
	}
	var out Array[T]
	for i, v := range q.Iter() {
		if hi < i {
			break
		}
		if lo <= i {
			out.Enqueue(v)
		}
	}
	return &out, nil
}

// Join returns a new queue with the elements of q followed by the elements of oth.
// Unlike Concat, oth may use any storage.
func (q *Array[T]) Join(oth Queue[T]) (*Array[T], error) {
	var out Array[T]
	if err := join[T](&out, q, oth); err != nil {
		return nil, err
	}
	return &out, nil
}

// List is a queue backed by a singly linked list.
// The zero value is an empty queue.
type List[T any] struct {
	sequence.List[T]
}

func NewList[T any](vs ...T) *List[T] {
	return &List[T]{List: *sequence.NewList(vs...)}
}

func (q *List[T]) Enqueue(v T)         { q.Append(v) }
func (q *List[T]) Dequeue() (T, error) { return dequeue[T](q) }
func (q *List[T]) Peek() (T, error)    { return q.First() }
func (q *List[T]) IsEmpty() bool       { return q.Len() == 0 }

func (q *List[T]) Instance() sequence.Sequence[T] { return q }

func (q *List[T]) Append(v T) sequence.Sequence[T] {
	q.List.Append(v)
	return q
}

func (q *List[T]) Prepend(v T) sequence.Sequence[T] {
	q.List.Prepend(v)
	return q
}

func (q *List[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := q.List.InsertAt(index, v); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *List[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := q.List.Remove(index); err != nil {
		return nil, err
	}
	return q, nil
}

// Clutch merges q and oth into a new queue by taking elements from them in turns.
// Once the shorter queue runs out, the rest of the longer one is appended in order.
// A nil oth is treated as an empty queue.
func (q *List[T]) Clutch(oth Queue[T]) *List[T] {
	var out List[T]
	clutch[T](&out, q, oth)
	return &out
}

func (q *List[T]) SubQueue(lo, hi int) (*List[T], error) {
	sub, err := q.Subsequence(lo, hi)
	if err != nil {
		return nil, err
	}
	var out List[T]
	for _, v := range sub.Iter() {
		out.Enqueue(v)
	}
	return &out, nil
}

func (q *List[T]) Join(oth Queue[T]) (*List[T], error) {
	var out List[T]
	if err := join[T](&out, q, oth); err != nil {
		return nil, err
	}
	return &out, nil
}

func dequeue[T any](q sequence.Sequence[T]) (T, error) {
	v, err := q.First()
	if err != nil {
		return v, err
	}
	if _, err := q.Remove(0); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func clutch[T any](dst Queue[T], a Queue[T], b Queue[T]) {
	if isNil(b) {
		for _, v := range a.Iter() {
			dst.Enqueue(v)
		}
		return
	}
	nextA, stopA := iter.Pull2(a.Iter())
	defer stopA()
	nextB, stopB := iter.Pull2(b.Iter())
	defer stopB()
	for {
		_, av, okA := nextA()
		_, bv, okB := nextB()
		if !okA && !okB {
			return
		}
		if okA {
			dst.Enqueue(av)
		}
		if okB {
			dst.Enqueue(bv)
		}
	}
}

func join[T any](dst Queue[T], a Queue[T], b Queue[T]) error {
	if isNil(b) {
		return datastruct.ErrNullList.F("join with a nil queue")
	}
	for _, v := range a.Iter() {
		dst.Enqueue(v)
	}
	for _, v := range b.Iter() {
		dst.Enqueue(v)
	}
	return nil
}

// isNil also catches a typed nil pointer, which would panic on the promoted sequence methods.
func isNil[T any](q Queue[T]) bool {
	return q == nil || reflectkit.IsNil(reflect.ValueOf(q))
}

var (
	_ Queue[int] = (*Array[int])(nil)
	_ Queue[int] = (*List[int])(nil)
)
