// Process a fallible sequence as if it could not fail.
//
// TryContinue lets you run ordinary sequence logic (count, filter, fold,
// collect) over the success values of an iter.Seq2[T, error] without threading
// the error through every step. The first error encountered ends the sequence
// and is returned in place of the continuation's result.
package trycontinue

import "iter"

// Iter presents a fallible sequence as a plain sequence of values while
// remembering the first error encountered.
//
// Once an error has been recorded, Values yields nothing further and the
// underlying sequence is never pulled from again. An Iter is single-use and
// not safe for concurrent use.
type Iter[T any] struct {
	seq iter.Seq2[T, error]
	err error
}

// Wrap returns an Iter tracking errors from seq.
func Wrap[T any](seq iter.Seq2[T, error]) *Iter[T] {
	return &Iter[T]{seq: seq}
}

// Values returns the plain-value view of the wrapped sequence.
//
// A consumer of Values cannot tell an error apart from ordinary exhaustion;
// both just end the sequence. Check Err after iterating. The element that
// carried the error is never yielded.
func (it *Iter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if it.err != nil {
			return
		}

		for v, err := range it.seq {
			if err != nil {
				it.err = err
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first error encountered while iterating, or nil.
func (it *Iter[T]) Err() error {
	return it.err
}

// TryContinue runs f over the success values of seq.
//
// f is handed a plain iter.Seq[T] and may consume it exhaustively, partially,
// or not at all. If iteration reaches an element carrying an error, the
// sequence simply ends from f's point of view; the error is returned from
// TryContinue and f's result is discarded. Errors are returned as-is, never
// wrapped. A later error that f never reaches (because it stopped consuming
// early) is never observed and does not fail the call.
func TryContinue[T any, R any](
	seq iter.Seq2[T, error],
	f func(iter.Seq[T]) R,
) (R, error) {
	it := Wrap(seq)
	result := f(it.Values())

	if err := it.Err(); err != nil {
		var zero R
		return zero, err
	}

	return result, nil
}
