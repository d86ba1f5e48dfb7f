// Package stack implements LIFO adapters over the sequence storages.
// Both adapters are sequences themselves, so the whole sequence vocabulary stays available on them.
package stack

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/seqkit/pkg/sequence"
)

const ErrEmptyStack errorkit.Error = "empty stack"

type Stack[T any] interface {
	sequence.Sequence[T]
	// Push places v on the top of the stack.
	Push(v T)
	// Pop removes and returns the element on the top of the stack.
	Pop() (T, error)
	// Top returns the element on the top of the stack without removing it.
	Top() (T, error)
	IsEmpty() bool
}

// Array is a stack backed by a growable array.
// The zero value is an empty stack.
type Array[T any] struct {
	sequence.Array[T]
}

func NewArray[T any](vs ...T) *Array[T] {
	return &Array[T]{Array: *sequence.NewArray(vs...)}
}

func (s *Array[T]) Push(v T)        { s.Append(v) }
func (s *Array[T]) Pop() (T, error) { return pop[T](s) }
func (s *Array[T]) Top() (T, error) { return top[T](s) }
func (s *Array[T]) IsEmpty() bool   { return s.Len() == 0 }

// The editing methods return s itself, so chained edits keep the stack vocabulary.
func (s *Array[T]) Instance() sequence.Sequence[T] { return s }

func (s *Array[T]) Append(v T) sequence.Sequence[T] {
	s.Array.Append(v)
	return s
}

func (s *Array[T]) Prepend(v T) sequence.Sequence[T] {
	s.Array.Prepend(v)
	return s
}

func (s *Array[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := s.Array.InsertAt(index, v); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Array[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := s.Array.Remove(index); err != nil {
		return nil, err
	}
	return s, nil
}

// List is a stack backed by a singly linked list.
// The zero value is an empty stack.
type List[T any] struct {
	sequence.List[T]
}

func NewList[T any](vs ...T) *List[T] {
	return &List[T]{List: *sequence.NewList(vs...)}
}

func (s *List[T]) Push(v T)        { s.Append(v) }
func (s *List[T]) Pop() (T, error) { return pop[T](s) }
func (s *List[T]) Top() (T, error) { return top[T](s) }
func (s *List[T]) IsEmpty() bool   { return s.Len() == 0 }

func (s *List[T]) Instance() sequence.Sequence[T] { return s }

func (s *List[T]) Append(v T) sequence.Sequence[T] {
	s.List.Append(v)
	return s
}

func (s *List[T]) Prepend(v T) sequence.Sequence[T] {
	s.List.Prepend(v)
	return s
}

func (s *List[T]) InsertAt(index int, v T) (sequence.Sequence[T], error) {
	if _, err := s.List.InsertAt(index, v); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *List[T]) Remove(index int) (sequence.Sequence[T], error) {
	if _, err := s.List.Remove(index); err != nil {
		return nil, err
	}
	return s, nil
}

func pop[T any](seq sequence.Sequence[T]) (T, error) {
	v, err := top(seq)
	if err != nil {
		return v, err
	}
	if _, err := seq.Remove(seq.Len() - 1); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func top[T any](seq sequence.Sequence[T]) (T, error) {
	if seq.Len() == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return seq.Last()
}

var (
	_ Stack[int] = (*Array[int])(nil)
	_ Stack[int] = (*List[int])(nil)
)
