package sequence

import (
	"iter"

	"go.llib.dev/seqkit/pkg/datastruct"
)

// List is a mutable sequence backed by a datastruct.LinkedList.
//
// The zero value is an empty sequence.
type List[T any] struct {
	ll datastruct.LinkedList[T]
}

func NewList[T any](vs ...T) *List[T] {
	return FromLinkedList(datastruct.LinkedListOf(vs...))
}

// FromLinkedList creates a sequence that holds a copy of every element of ll.
func FromLinkedList[T any](ll *datastruct.LinkedList[T]) *List[T] {
	return &List[T]{ll: *ll.Clone()}
}

func (s *List[T]) Kind() Kind { return KindMutableList }

func (s *List[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.ll.Len()
}

func (s *List[T]) First() (T, error) { return s.ll.First() }

func (s *List[T]) Last() (T, error) { return s.ll.Last() }

func (s *List[T]) Get(index int) (T, error) { return s.ll.Get(index) }

// Ref returns a pointer to the element at index.
// The pointer stays valid while the element is part of the sequence.
func (s *List[T]) Ref(index int) (*T, error) { return s.ll.Ref(index) }

func (s *List[T]) Subsequence(lo, hi int) (Sequence[T], error) {
	return s.subCore(lo, hi)
}

func (s *List[T]) subCore(lo, hi int) (mutableCore[T], error) {
	sub, err := s.ll.SubList(lo, hi)
	if err != nil {
		return nil, err
	}
	return &List[T]{ll: *sub}, nil
}

func (s *List[T]) Append(item T) Sequence[T] {
	s.ll.Append(item)
	return s
}

func (s *List[T]) Prepend(item T) Sequence[T] {
	s.ll.Prepend(item)
	return s
}

func (s *List[T]) InsertAt(index int, item T) (Sequence[T], error) {
	if err := s.ll.InsertAt(index, item); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *List[T]) Remove(index int) (Sequence[T], error) {
	if err := s.ll.Remove(index); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *List[T]) Concat(oth Sequence[T]) (Sequence[T], error) {
	if err := checkConcat(s.Kind(), oth); err != nil {
		return nil, err
	}
	return s.concatCore(oth), nil
}

func (s *List[T]) concatCore(oth Sequence[T]) mutableCore[T] {
	if ol, ok := oth.(*List[T]); ok && ol != nil {
		out, err := s.ll.Concat(&ol.ll)
		if err == nil {
			return &List[T]{ll: *out}
		}
	}
	out := s.ll.Clone()
	for _, v := range oth.Iter() {
		out.Append(v)
	}
	return &List[T]{ll: *out}
}

func (s *List[T]) Clone() Sequence[T] {
	return s.cloneCore()
}

func (s *List[T]) cloneCore() mutableCore[T] {
	if s == nil {
		return &List[T]{}
	}
	return &List[T]{ll: *s.ll.Clone()}
}

func (s *List[T]) Instance() Sequence[T] { return s }

func (s *List[T]) Iter() iter.Seq2[int, T] {
	if s == nil {
		return func(yield func(int, T) bool) {}
	}
	return s.ll.Iter()
}

func (s *List[T]) ToSlice() []T {
	if s == nil {
		return []T{}
	}
	return s.ll.ToSlice()
}

func (s *List[T]) String() string {
	return format(s.ToSlice())
}
