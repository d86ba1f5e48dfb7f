// Package deque implements double-ended queue adapters over the sequence storages.
package deque

import (
	"go.llib.dev/seqkit/pkg/sequence"
)

// Deque supports insertion and removal on both of its ends.
// Operations on an empty deque report the emptiness error of its storage.
type Deque[T any] interface {
	sequence.Sequence[T]
	PushFront(v T)
	PushBack(v T)
	PopFront() (T, error)
	PopBack() (T, error)
	Front() (T, error)
	Back() (T, error)
	IsEmpty() bool
}

// Array is a deque backed by a growable array.
// The zero value is an empty deque.
type Array[T any] struct {
	sequence.Array[T]
}

func NewArray[T any](vs ...T) *Array[T] {
	return &Array[T]{Array: *sequence.NewArray(vs...)}
}

func (d *Array[T]) PushFront(v T)        { d.Prepend(v) }
func (d *Array[T]) PushBack(v T)         { d.Append(v) }
func (d *Array[T]) PopFront() (T, error) { return popAt[T](d, 0) }
func (d *Array[T]) PopBack() (T, error)  { return popAt[T](d, d.Len()-1) }
func (d *Array[T]) Front() (T, error)    { return d.First() }
func (d *Array[T]) Back() (T, error)     { return d.Last() }
func (d *Array[T]) IsEmpty() bool        { return d.Len() == 0 }

// The editing methods return d itself, so chained edits keep the deque vocabulary.
func (d *Array[T]) Instance() sequence.Sequence[T] { return d }

func (d *Array[T]) Append(v T) sequence.Sequence[T] {
	d.Array.Append(v)
	return d
}

func (d *Array[T]) Prepend(v T) sequence.Sequence[T] {
	d.Array.Prepend(v)
	return d
}

func (d *Array[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := d.Array.InsertAt(index, v); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Array[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := d.Array.Remove(index); err != nil {
		return nil, err
	}
	return d, nil
}

// List is a deque backed by a singly linked list.
// PopBack walks the list to find the new last element.
// The zero value is an empty deque.
type List[T any] struct {
	sequence.List[T]
}

func NewList[T any](vs ...T) *List[T] {
	return &List[T]{List: *sequence.NewList(vs...)}
}

func (d *List[T]) PushFront(v T)        { d.Prepend(v) }
func (d *List[T]) PushBack(v T)         { d.Append(v) }
func (d *List[T]) PopFront() (T, error) { return popAt[T](d, 0) }
func (d *List[T]) PopBack() (T, error)  { return popAt[T](d, d.Len()-1) }
func (d *List[T]) Front() (T, error)    { return d.First() }
func (d *List[T]) Back() (T, error)     { return d.Last() }
func (d *List[T]) IsEmpty() bool        { return d.Len() == 0 }

func (d *List[T]) Instance() sequence.Sequence[T] { return d }

func (d *List[T]) Append(v T) sequence.Sequence[T] {
	d.List.Append(v)
	return d
}

func (d *List[T]) Prepend(v T) sequence.Sequence[T] {
	d.List.Prepend(v)
	return d
}

func (d *List[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := d.List.InsertAt(index, v); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *List[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := d.List.Remove(index); err != nil {
		return nil, err
	}
	return d, nil
}

func popAt[T any](seq sequence.Sequence[T], index int) (T, error) {
	var zero T
	if seq.Len() == 0 {
		// First reports the storage specific emptiness error.
		_, err := seq.First()
		return zero, err
	}
	v, err := seq.Get(index)
	if err != nil {
		return zero, err
	}
	if _, err := seq.Remove(index); err != nil {
		return zero, err
	}
	return v, nil
}

var (
	_ Deque[int] = (*Array[int])(nil)
	_ Deque[int] = (*List[int])(nil)
)
