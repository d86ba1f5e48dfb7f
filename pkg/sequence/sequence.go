// Package sequence provides an ordered, randomly indexable collection abstraction
// that is independent of the backing storage.
//
// Two storage kinds exist: a contiguous growable array (Array) and a singly linked list (List).
// Both are mutable, their operations act in place and return the receiver.
// Immutable wraps either of them and never changes the receiver,
// instead every edit comes back as a new, independent sequence.
package sequence

import (
	"fmt"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/seqkit/pkg/datastruct"
)

const ErrIncompatibleTypes errorkit.Error = "incompatible types"

type Sequence[T any] interface {
	// Kind tells the storage and the ownership discipline of the sequence.
	Kind() Kind

	First() (T, error)
	Last() (T, error)
	Get(index int) (T, error)
	// Len returns the logical length, which is independent of any storage level capacity.
	Len() int
	// Subsequence returns a new sequence with the elements of the inclusive [lo, hi] range.
	Subsequence(lo, hi int) (Sequence[T], error)

	Append(item T) Sequence[T]
	Prepend(item T) Sequence[T]
	InsertAt(index int, item T) (Sequence[T], error)
	Remove(index int) (Sequence[T], error)
	// Concat returns a new sequence with the elements of both sequences.
	// Only sequences of the same Kind can be concatenated.
	Concat(oth Sequence[T]) (Sequence[T], error)

	// Clone makes a deep copy that shares no storage with the original.
	Clone() Sequence[T]
	// Instance returns the sequence which edits should be applied on.
	// A mutable sequence returns itself, an immutable one returns a copy.
	Instance() Sequence[T]

	Iter() iter.Seq2[int, T]
	ToSlice() []T
	// String formats the elements like a slice.
	String() string
}

// Storage is the concrete representation backing a sequence.
type Storage int

const (
	StorageArray Storage = iota + 1
	StorageList
)

func (s Storage) String() string {
	switch s {
	case StorageArray:
		return "array"
	case StorageList:
		return "list"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

type Variant int

const (
	VariantMutable Variant = iota + 1
	VariantImmutable
)

func (v Variant) String() string {
	switch v {
	case VariantMutable:
		return "mutable"
	case VariantImmutable:
		return "immutable"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Kind is the closed tag of a sequence implementation.
type Kind struct {
	Storage Storage
	Variant Variant
}

var (
	KindMutableArray   = Kind{Storage: StorageArray, Variant: VariantMutable}
	KindMutableList    = Kind{Storage: StorageList, Variant: VariantMutable}
	KindImmutableArray = Kind{Storage: StorageArray, Variant: VariantImmutable}
	KindImmutableList  = Kind{Storage: StorageList, Variant: VariantImmutable}
)

func (k Kind) String() string {
	return k.Variant.String() + " " + k.Storage.String()
}

// Make creates a sequence of the given kind from the first count elements of items.
//
// Array storage rejects a negative count with datastruct.ErrNegativeSize,
// list storage with datastruct.ErrNegativeCount.
func Make[T any](kind Kind, items []T, count int) (Sequence[T], error) {
	var c mutableCore[T]
	switch kind.Storage {
	case StorageArray:
		a, err := datastruct.NewArray(items, count)
		if err != nil {
			return nil, err
		}
		c = FromArray(a)
	case StorageList:
		ll, err := datastruct.NewLinkedList(items, count)
		if err != nil {
			return nil, err
		}
		c = FromLinkedList(ll)
	default:
		return nil, ErrIncompatibleTypes.F("unknown storage: %s", kind.Storage)
	}
	switch kind.Variant {
	case VariantMutable:
		return c, nil
	case VariantImmutable:
		return &Immutable[T]{core: c}, nil
	default:
		return nil, ErrIncompatibleTypes.F("unknown variant: %s", kind.Variant)
	}
}

// Equal reports whether a and b hold equal elements in the same order.
// The storage kinds of the two sequences do not matter.
func Equal[T any](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull2(b.Iter())
	defer stop()
	for _, av := range a.Iter() {
		_, bv, ok := next()
		if !ok || !reflectkit.Equal(av, bv) {
			return false
		}
	}
	return true
}

// mutableCore is the storage specific implementation that the variants are built upon.
type mutableCore[T any] interface {
	Sequence[T]
	cloneCore() mutableCore[T]
	subCore(lo, hi int) (mutableCore[T], error)
	// concatCore assumes that the compatibility of oth is already verified.
	concatCore(oth Sequence[T]) mutableCore[T]
}

func checkConcat[T any](kind Kind, oth Sequence[T]) error {
	if oth == nil {
		return datastruct.ErrNullList.F("concat with a nil sequence")
	}
	if othKind := oth.Kind(); othKind != kind {
		return ErrIncompatibleTypes.F("cannot concat %s with %s", kind, othKind)
	}
	return nil
}

func format[T any](vs []T) string {
	return fmt.Sprint(vs)
}

var (
	_ mutableCore[int] = (*Array[int])(nil)
	_ mutableCore[int] = (*List[int])(nil)
	_ Sequence[int]    = (*Immutable[int])(nil)
)
