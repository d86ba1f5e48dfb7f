// Package datastruct holds the storage primitives that back sequences:
// a contiguous growable Array and a singly linked LinkedList.
//
// Neither type tracks a logical length on behalf of its owner.
// Array reports its raw capacity, LinkedList reports the number of its nodes.
package datastruct

import "iter"

// Storage is the common read surface of the storage primitives.
type Storage[T any] interface {
	Get(index int) (T, error)
	Iter() iter.Seq2[int, T]
	ToSlice() []T
}

type Sizer interface {
	Len() int
}

var (
	_ Storage[any] = (*Array[any])(nil)
	_ Storage[any] = (*LinkedList[any])(nil)
	_ Sizer        = (*LinkedList[any])(nil)
)
