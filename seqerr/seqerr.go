// Helpers for building and adapting fallible sequences.
//
// A fallible sequence is an iter.Seq2[T, error]: each element is either a
// value or an error. These helpers get you into and out of that shape.
package seqerr

import "iter"

// Lift turns a Seq into a Seq2 where the second element is always nil.
func Lift[V any](seq iter.Seq[V]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				break
			}
		}
	}
}

// Map applies a fallible function to each element of seq.
//
// Every element is mapped, whether or not an earlier one failed; it is up to
// the consumer to stop at the first error if it wants to.
func Map[V any, U any](
	seq iter.Seq[V],
	f func(V) (U, error),
) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for v := range seq {
			if !yield(f(v)) {
				break
			}
		}
	}
}

// Fail returns a sequence whose first and only element is a failure.
func Fail[V any](err error) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		var zero V
		yield(zero, err)
	}
}

// Append yields everything from seq and then a trailing failure.
//
// Useful for sources that only learn of an error once the underlying read is
// over, like a scanner. A nil err appends nothing.
func Append[V any](seq iter.Seq2[V, error], err error) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for v, e := range seq {
			if !yield(v, e) {
				return
			}
		}

		if err != nil {
			var zero V
			yield(zero, err)
		}
	}
}

// Discard drops failed elements and yields the values that succeeded.
//
// This keeps going past errors. If the first error should end iteration
// instead, use TryContinue in the root package.
func Discard[V any](seq iter.Seq2[V, error]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, err := range seq {
			if err != nil {
				continue
			}

			if !yield(v) {
				return
			}
		}
	}
}
