package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// Array is a fixed capacity contiguous buffer with explicit resizing.
//
// Every slot in [0, Cap()) is addressable.
// How many of those slots are logically in use is decided by the owner of the Array.
// The zero value is an empty Array with zero capacity.
type Array[T any] struct {
	data []T
}

// MakeArray creates an Array with the given capacity, where each slot holds the zero value of T.
func MakeArray[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeSize.F("capacity: %d", capacity)
	}
	return &Array[T]{data: make([]T, capacity)}, nil
}

// NewArray creates an Array from the first count elements of items.
// The Array owns a copy, later changes to items are not observable through it.
func NewArray[T any](items []T, count int) (*Array[T], error) {
	if count < 0 {
		return nil, ErrNegativeSize.F("count: %d", count)
	}
	if len(items) < count {
		return nil, ErrIndexOutOfRange.F("count %d exceeds the %d available items", count, len(items))
	}
	data := make([]T, count)
	copy(data, items[:count])
	return &Array[T]{data: data}, nil
}

// ArrayOf creates an Array holding a copy of the given values.
func ArrayOf[T any](vs ...T) *Array[T] {
	data := make([]T, len(vs))
	copy(data, vs)
	return &Array[T]{data: data}
}

// Cap returns the raw capacity of the Array.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

func (a *Array[T]) Set(index int, v T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.data[index] = v
	return nil
}

// Ref returns a pointer to the slot at index.
// The pointer refers to the Array's own buffer and stays valid until the next Resize or Remove.
func (a *Array[T]) Ref(index int) (*T, error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	return &a.data[index], nil
}

// Resize reallocates the buffer to newCapacity and copies over min(Cap(), newCapacity) elements.
// Shrinking discards the elements beyond the new capacity.
func (a *Array[T]) Resize(newCapacity int) error {
	if newCapacity < 0 {
		return ErrNegativeSize.F("capacity: %d", newCapacity)
	}
	data := make([]T, newCapacity)
	copy(data, a.data)
	a.data = data
	return nil
}

// Remove deletes the slot at index and shifts the following elements one slot to the left.
// The capacity shrinks by one.
func (a *Array[T]) Remove(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	last := len(a.data) - 1
	if index == last {
		var zero T
		a.data[last] = zero
		a.data = a.data[:last]
		return nil
	}
	data := make([]T, 0, last)
	data = append(data, a.data[:index]...)
	data = append(data, a.data[index+1:]...)
	a.data = data
	return nil
}

// SubArray returns a new Array with a copy of the inclusive [lo, hi] slot range.
func (a *Array[T]) SubArray(lo, hi int) (*Array[T], error) {
	if err := CheckRange(lo, hi, a.Cap()); err != nil {
		return nil, err
	}
	return ArrayOf(a.data[lo : hi+1]...), nil
}

func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return &Array[T]{}
	}
	return ArrayOf(a.data...)
}

func (a *Array[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil {
			return
		}
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) ToSlice() []T {
	vs := make([]T, 0, a.Cap())
	for _, v := range a.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Equal reports whether both arrays have the same capacity and equal elements at every slot.
// Elements are compared with reflectkit.Equal, which respects an Equal method on T.
func (a *Array[T]) Equal(oth *Array[T]) bool {
	return a.EqualFunc(oth, func(x, y T) bool {
		return reflectkit.Equal(x, y)
	})
}

func (a *Array[T]) EqualFunc(oth *Array[T], eq func(x, y T) bool) bool {
	if a.Cap() != oth.Cap() {
		return false
	}
	for i := 0; i < a.Cap(); i++ {
		if !eq(a.data[i], oth.data[i]) {
			return false
		}
	}
	return true
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || a.Cap() <= index {
		return errIndexOutOfRange(index, a.Cap())
	}
	return nil
}
