package sequence

import (
	"iter"

	"go.llib.dev/seqkit/pkg/datastruct"
)

const initialCapacity = 10

// Array is a mutable sequence backed by a growable datastruct.Array.
// Only the first Len() slots of the storage are logically in use,
// the rest is spare capacity for future insertions.
//
// The zero value is an empty sequence with no capacity.
type Array[T any] struct {
	items datastruct.Array[T]
	size  int
}

func NewArray[T any](vs ...T) *Array[T] {
	return FromArray(datastruct.ArrayOf(vs...))
}

// FromArray creates a sequence that holds a copy of every slot of a.
func FromArray[T any](a *datastruct.Array[T]) *Array[T] {
	return &Array[T]{
		items: *a.Clone(),
		size:  a.Cap(),
	}
}

func (s *Array[T]) Kind() Kind { return KindMutableArray }

func (s *Array[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Cap returns the capacity of the underlying storage.
func (s *Array[T]) Cap() int {
	if s == nil {
		return 0
	}
	return s.items.Cap()
}

func (s *Array[T]) First() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, datastruct.ErrEmptyArray
	}
	return *s.slot(0), nil
}

func (s *Array[T]) Last() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, datastruct.ErrEmptyArray
	}
	return *s.slot(s.size - 1), nil
}

func (s *Array[T]) Get(index int) (T, error) {
	ref, err := s.Ref(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}

// Ref returns a pointer to the element at index.
// The pointer is invalidated by any operation that reallocates the storage.
func (s *Array[T]) Ref(index int) (*T, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.slot(index), nil
}

func (s *Array[T]) Subsequence(lo, hi int) (Sequence[T], error) {
	return s.subCore(lo, hi)
}

func (s *Array[T]) subCore(lo, hi int) (mutableCore[T], error) {
	if err := datastruct.CheckRange(lo, hi, s.Len()); err != nil {
		return nil, err
	}
	sub, err := s.items.SubArray(lo, hi)
	if err != nil {
		return nil, err
	}
	return &Array[T]{items: *sub, size: sub.Cap()}, nil
}

func (s *Array[T]) Append(item T) Sequence[T] {
	s.reserve()
	*s.slot(s.size) = item
	s.size++
	return s
}

func (s *Array[T]) Prepend(item T) Sequence[T] {
	s.reserve()
	s.shiftRight(0)
	*s.slot(0) = item
	s.size++
	return s
}

// InsertAt places item at index, where index may also point one past the last element.
func (s *Array[T]) InsertAt(index int, item T) (Sequence[T], error) {
	if index < 0 || s.size < index {
		return nil, datastruct.ErrIndexOutOfRange.F("insert index %d is outside of [0, %d]", index, s.size)
	}
	s.reserve()
	s.shiftRight(index)
	*s.slot(index) = item
	s.size++
	return s, nil
}

func (s *Array[T]) Remove(index int) (Sequence[T], error) {
	if s.Len() == 0 {
		return nil, datastruct.ErrEmptyArray
	}
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	if err := s.items.Remove(index); err != nil {
		return nil, err
	}
	s.size--
	return s, nil
}

func (s *Array[T]) Concat(oth Sequence[T]) (Sequence[T], error) {
	if err := checkConcat(s.Kind(), oth); err != nil {
		return nil, err
	}
	return s.concatCore(oth), nil
}

func (s *Array[T]) concatCore(oth Sequence[T]) mutableCore[T] {
	vs := make([]T, 0, s.Len()+oth.Len())
	for _, v := range s.Iter() {
		vs = append(vs, v)
	}
	for _, v := range oth.Iter() {
		vs = append(vs, v)
	}
	return &Array[T]{items: *datastruct.ArrayOf(vs...), size: len(vs)}
}

func (s *Array[T]) Clone() Sequence[T] {
	return s.cloneCore()
}

func (s *Array[T]) cloneCore() mutableCore[T] {
	if s == nil {
		return &Array[T]{}
	}
	return &Array[T]{items: *s.items.Clone(), size: s.size}
}

func (s *Array[T]) Instance() Sequence[T] { return s }

func (s *Array[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil {
			return
		}
		for i, v := range s.items.Iter() {
			if s.size <= i {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *Array[T]) ToSlice() []T {
	vs := make([]T, 0, s.Len())
	for _, v := range s.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (s *Array[T]) String() string {
	return format(s.ToSlice())
}

// reserve makes room for one more element.
// The first growth allocates initialCapacity slots, later ones grow the capacity by half of the size.
func (s *Array[T]) reserve() {
	if s.size+1 <= s.items.Cap() {
		return
	}
	if err := s.items.Resize(growCapacity(s.size)); err != nil {
		panic(err) // growCapacity is never negative
	}
}

func growCapacity(size int) int {
	if size == 0 {
		return initialCapacity
	}
	return max(size+size/2, size+1)
}

// shiftRight moves the elements of [index, size) one slot to the right.
// The capacity must already allow size+1 elements.
func (s *Array[T]) shiftRight(index int) {
	for i := s.size; index < i; i-- {
		*s.slot(i) = *s.slot(i - 1)
	}
}

func (s *Array[T]) checkIndex(index int) error {
	if index < 0 || s.Len() <= index {
		return datastruct.ErrIndexOutOfRange.F("index %d is outside of [0, %d)", index, s.Len())
	}
	return nil
}

// slot returns the storage slot at index, which must be within the capacity.
func (s *Array[T]) slot(index int) *T {
	ref, err := s.items.Ref(index)
	if err != nil {
		panic(err)
	}
	return ref
}
