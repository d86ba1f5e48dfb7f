package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// LinkedList is a singly linked list that tracks both of its ends.
// Appending and prepending are O(1), positional access walks the chain from the head.
//
// The zero value is an empty list.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	next *llElem[T]
}

// NewLinkedList creates a list from the first count elements of items.
func NewLinkedList[T any](items []T, count int) (*LinkedList[T], error) {
	if count < 0 {
		return nil, ErrNegativeCount.F("count: %d", count)
	}
	if len(items) < count {
		return nil, ErrIndexOutOfRange.F("count %d exceeds the %d available items", count, len(items))
	}
	var ll LinkedList[T]
	ll.Append(items[:count]...)
	return &ll, nil
}

// LinkedListOf creates a list holding the given values in order.
func LinkedListOf[T any](vs ...T) *LinkedList[T] {
	var ll LinkedList[T]
	ll.Append(vs...)
	return &ll
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var (
			current = ll.head
			index   int
		)
		for current != nil {
			if !yield(index, current.data) {
				return
			}
			current = current.next
			index++
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, ll.Len())
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		ll.tail.next = newNode
		ll.tail = newNode
	}
	ll.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	ll.head = &llElem[T]{
		data: v,
		next: ll.head,
	}
	if ll.tail == nil {
		ll.tail = ll.head
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) First() (T, error) {
	if ll.Len() == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return ll.head.data, nil
}

func (ll *LinkedList[T]) Last() (T, error) {
	if ll.Len() == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return ll.tail.data, nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	elem, err := ll.lookup(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return elem.data, nil
}

// Ref returns a pointer to the value held by the node at index.
// The pointer stays valid for as long as the node is part of the list.
func (ll *LinkedList[T]) Ref(index int) (*T, error) {
	elem, err := ll.lookup(index)
	if err != nil {
		return nil, err
	}
	return &elem.data, nil
}

func (ll *LinkedList[T]) lookup(index int) (*llElem[T], error) {
	if ll.Len() == 0 {
		return nil, ErrEmptyList
	}
	if index < 0 || ll.length <= index {
		return nil, errIndexOutOfRange(index, ll.length)
	}
	return ll.at(index), nil
}

// at walks to the node at index, which must be within [0, length).
func (ll *LinkedList[T]) at(index int) *llElem[T] {
	if index == ll.length-1 {
		return ll.tail
	}
	current := ll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

// InsertAt places v at index, where index may point one past the last element.
func (ll *LinkedList[T]) InsertAt(index int, v T) error {
	if index < 0 || ll.length < index {
		return ErrIndexOutOfRange.F("insert index %d is outside of [0, %d]", index, ll.length)
	}
	switch index {
	case 0:
		ll.prepend(v)
	case ll.length:
		ll.append(v)
	default:
		prev := ll.at(index - 1)
		prev.next = &llElem[T]{data: v, next: prev.next}
		ll.length++
	}
	return nil
}

// Remove detaches the node at index and links its predecessor to its successor.
func (ll *LinkedList[T]) Remove(index int) error {
	if ll.Len() == 0 {
		return ErrEmptyList
	}
	if index < 0 || ll.length <= index {
		return errIndexOutOfRange(index, ll.length)
	}
	if index == 0 {
		ll.Shift()
		return nil
	}
	prev := ll.at(index - 1)
	removed := prev.next
	prev.next = removed.next
	if removed == ll.tail {
		ll.tail = prev
	}
	removed.next = nil
	ll.length--
	return nil
}

// Shift removes and returns the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head == nil {
		ll.tail = nil
	}
	first.next = nil
	ll.length--
	return first.data, true
}

// Pop removes and returns the last element.
// Since the list is singly linked, finding the new tail is O(n).
func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	if ll.length == 1 {
		return ll.Shift()
	}
	prev := ll.at(ll.length - 2)
	prev.next = nil
	ll.tail = prev
	ll.length--
	return last.data, true
}

// SubList returns a fresh list with copies of the values in the inclusive [lo, hi] range.
func (ll *LinkedList[T]) SubList(lo, hi int) (*LinkedList[T], error) {
	if err := CheckRange(lo, hi, ll.Len()); err != nil {
		return nil, err
	}
	var (
		sub     LinkedList[T]
		current = ll.at(lo)
	)
	for i := lo; i <= hi; i++ {
		sub.append(current.data)
		current = current.next
	}
	return &sub, nil
}

// Concat returns a new list with the values of ll followed by the values of oth.
// Both lists are copied, so neither operand shares nodes with the result.
func (ll *LinkedList[T]) Concat(oth *LinkedList[T]) (*LinkedList[T], error) {
	if oth == nil {
		return nil, ErrNullList
	}
	out := ll.Clone()
	for _, v := range oth.Iter() {
		out.append(v)
	}
	return out, nil
}

func (ll *LinkedList[T]) Clone() *LinkedList[T] {
	var out LinkedList[T]
	for _, v := range ll.Iter() {
		out.append(v)
	}
	return &out
}

// Equal reports whether both lists hold equal values in the same order.
func (ll *LinkedList[T]) Equal(oth *LinkedList[T]) bool {
	return ll.EqualFunc(oth, func(x, y T) bool {
		return reflectkit.Equal(x, y)
	})
}

func (ll *LinkedList[T]) EqualFunc(oth *LinkedList[T], eq func(x, y T) bool) bool {
	if ll.Len() != oth.Len() {
		return false
	}
	var a, b *llElem[T]
	if ll != nil {
		a = ll.head
	}
	if oth != nil {
		b = oth.head
	}
	for a != nil && b != nil {
		if !eq(a.data, b.data) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}
