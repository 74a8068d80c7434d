package prompt

// Answer is the outcome of a single question: either a value or a cancellation.
type Answer[T any] struct {
	value    T
	answered bool
}

func Answered[T any](v T) Answer[T] {
	return Answer[T]{value: v, answered: true}
}

func Cancelled[T any]() Answer[T] {
	return Answer[T]{}
}

// Get reports false for a cancelled answer.
func (a Answer[T]) Get() (T, bool) {
	return a.value, a.answered
}

func (a Answer[T]) Cancelled() bool {
	return !a.answered
}
