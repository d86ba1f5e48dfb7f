package sequence

import "iter"

// Immutable is a sequence that never changes after construction.
// Every editing operation copies the underlying storage, applies the edit on the copy
// and returns the copy wrapped as a new Immutable.
//
// The zero value is an empty immutable array.
type Immutable[T any] struct {
	core mutableCore[T]
}

func NewImmutableArray[T any](vs ...T) *Immutable[T] {
	return &Immutable[T]{core: NewArray(vs...)}
}

func NewImmutableList[T any](vs ...T) *Immutable[T] {
	return &Immutable[T]{core: NewList(vs...)}
}

func (s *Immutable[T]) base() mutableCore[T] {
	if s == nil || s.core == nil {
		return &Array[T]{}
	}
	return s.core
}

func (s *Immutable[T]) Kind() Kind {
	return Kind{
		Storage: s.base().Kind().Storage,
		Variant: VariantImmutable,
	}
}

func (s *Immutable[T]) First() (T, error) { return s.base().First() }

func (s *Immutable[T]) Last() (T, error) { return s.base().Last() }

func (s *Immutable[T]) Get(index int) (T, error) { return s.base().Get(index) }

func (s *Immutable[T]) Len() int { return s.base().Len() }

func (s *Immutable[T]) Subsequence(lo, hi int) (Sequence[T], error) {
	sub, err := s.base().subCore(lo, hi)
	if err != nil {
		return nil, err
	}
	return &Immutable[T]{core: sub}, nil
}

func (s *Immutable[T]) Append(item T) Sequence[T] {
	c := s.base().cloneCore()
	c.Append(item)
	return &Immutable[T]{core: c}
}

func (s *Immutable[T]) Prepend(item T) Sequence[T] {
	c := s.base().cloneCore()
	c.Prepend(item)
	return &Immutable[T]{core: c}
}

func (s *Immutable[T]) InsertAt(index int, item T) (Sequence[T], error) {
	c := s.base().cloneCore()
	if _, err := c.InsertAt(index, item); err != nil {
		return nil, err
	}
	return &Immutable[T]{core: c}, nil
}

func (s *Immutable[T]) Remove(index int) (Sequence[T], error) {
	c := s.base().cloneCore()
	if _, err := c.Remove(index); err != nil {
		return nil, err
	}
	return &Immutable[T]{core: c}, nil
}

func (s *Immutable[T]) Concat(oth Sequence[T]) (Sequence[T], error) {
	if err := checkConcat(s.Kind(), oth); err != nil {
		return nil, err
	}
	if im, ok := oth.(*Immutable[T]); ok {
		oth = im.base()
	}
	return &Immutable[T]{core: s.base().concatCore(oth)}, nil
}

func (s *Immutable[T]) Clone() Sequence[T] {
	return &Immutable[T]{core: s.base().cloneCore()}
}

// Instance returns a copy, so edits applied on it leave s intact.
func (s *Immutable[T]) Instance() Sequence[T] { return s.Clone() }

func (s *Immutable[T]) Iter() iter.Seq2[int, T] { return s.base().Iter() }

func (s *Immutable[T]) ToSlice() []T { return s.base().ToSlice() }

func (s *Immutable[T]) String() string {
	return format(s.ToSlice())
}
