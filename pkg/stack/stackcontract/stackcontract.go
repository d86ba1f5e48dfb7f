package stackcontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/seqkit/pkg/sequence/sequencecontract"
	"go.llib.dev/seqkit/pkg/stack"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Stack describes the LIFO behaviour of a stack.Stack.
// The make function must return an empty stack.
func Stack[T any](make contract.Make[stack.Stack[T]], opts ...sequencecontract.Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	sequencecontract.Mutable(func(tb testing.TB) sequence.Sequence[T] {
		return make(tb)
	}, opts...).Spec(s)

	mkElem := func(t *testcase.T) T {
		return sequencecontract.MakeElem(t, opts...)
	}

	subject := let.Var(s, func(t *testcase.T) stack.Stack[T] {
		return make(t)
	})

	s.When("the stack is empty", func(s *testcase.Spec) {
		s.Then("it reports itself as empty", func(t *testcase.T) {
			assert.True(t, subject.Get(t).IsEmpty())
		})

		s.Then("Pop reports an empty stack", func(t *testcase.T) {
			_, err := subject.Get(t).Pop()
			assert.ErrorIs(t, stack.ErrEmptyStack, err)
		})

		s.Then("Top reports an empty stack", func(t *testcase.T) {
			_, err := subject.Get(t).Top()
			assert.ErrorIs(t, stack.ErrEmptyStack, err)
		})
	})

	s.When("values are pushed", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(1, 7), func() T {
				return mkElem(t)
			}, random.UniqueValues)
		})
		subject.Let(s, func(t *testcase.T) stack.Stack[T] {
			st := subject.Super(t)
			for _, v := range values.Get(t) {
				st.Push(v)
			}
			return st
		})

		s.Then("the stack is no longer empty", func(t *testcase.T) {
			assert.False(t, subject.Get(t).IsEmpty())
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		})

		s.Then("Top returns the last pushed value without removing it", func(t *testcase.T) {
			exp := values.Get(t)[len(values.Get(t))-1]
			got, err := subject.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
		})

		s.Then("Pop returns the values in reverse order until the stack is empty", func(t *testcase.T) {
			vs := values.Get(t)
			for i := len(vs) - 1; 0 <= i; i-- {
				got, err := subject.Get(t).Pop()
				assert.NoError(t, err)
				assert.Equal(t, vs[i], got)
			}
			assert.True(t, subject.Get(t).IsEmpty())

			_, err := subject.Get(t).Pop()
			assert.ErrorIs(t, stack.ErrEmptyStack, err)
		})

		s.Then("the bottom of the stack is the first element of the sequence", func(t *testcase.T) {
			first, err := subject.Get(t).First()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[0], first)
		})
	})

	return s.AsSuite("Stack")
}
