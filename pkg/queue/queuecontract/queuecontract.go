package queuecontract

import (
	"errors"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/queue"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/seqkit/pkg/sequence/sequencecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Queue describes the FIFO behaviour of a queue.Queue.
// The make function must return an empty queue.
func Queue[T any](make contract.Make[queue.Queue[T]], opts ...sequencecontract.Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[T] {
		return make(tb)
	}, opts...).Spec(s)

	subject := let.Var(s, func(t *testcase.T) queue.Queue[T] {
		return make(t)
	})

	s.When("the queue is empty", func(s *testcase.Spec) {
		s.Then("it reports itself as empty", func(t *testcase.T) {
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Then("Dequeue reports the emptiness of the storage", func(t *testcase.T) {
			_, err := subject.Get(t).Dequeue()
			assertEmpty(t, err)
		})

		s.Then("Peek reports the emptiness of the storage", func(t *testcase.T) {
			_, err := subject.Get(t).Peek()
			assertEmpty(t, err)
		})
	})

	s.When("values are enqueued", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(1, 7), func() T {
				return sequencecontract.MakeElem(t, opts...)
			}, random.UniqueValues)
		})
		subject.Let(s, func(t *testcase.T) queue.Queue[T] {
			q := subject.Super(t)
			for _, v := range values.Get(t) {
				q.Enqueue(v)
			}
			return q
		})

		s.Then("the queue is no longer empty", func(t *testcase.T) {
			assert.False(t, subject.Get(t).IsEmpty())
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		})

		s.Then("Peek returns the first enqueued value without removing it", func(t *testcase.T) {
			got, err := subject.Get(t).Peek()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[0], got)
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		})

		s.Then("Dequeue returns the values in insertion order until the queue is empty", func(t *testcase.T) {
			for _, exp := range values.Get(t) {
				got, err := subject.Get(t).Dequeue()
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}
			assert.True(t, subject.Get(t).IsEmpty())

			_, err := subject.Get(t).Dequeue()
			assertEmpty(t, err)
		})

		s.Then("values enqueued after a dequeue go to the back", func(t *testcase.T) {
			_, err := subject.Get(t).Dequeue()
			assert.NoError(t, err)

			v := sequencecontract.MakeElem(t, opts...)
			subject.Get(t).Enqueue(v)

			last, err := subject.Get(t).Last()
			assert.NoError(t, err)
			assert.Equal(t, v, last)
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		})
	})

	return s.AsSuite("Queue")
}

func assertEmpty(tb testing.TB, err error) {
	tb.Helper()
	if !errors.Is(err, datastruct.ErrEmptyArray) && !errors.Is(err, datastruct.ErrEmptyList) {
		tb.Fatalf("expected an emptiness error, got: %v", err)
	}
}
