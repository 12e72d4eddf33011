package majority

import (
	"cmp"
)

type EqualFunc[T any] func(x, y T) bool

type LessFunc[T any] func(x, y T) bool

// MajorityVoteFunc scans seq once with the Boyer-Moore voting rule and
// returns the position of the only value that could be a majority element
// of seq, or len(seq) when seq is empty. The candidate is not verified;
// use MajorityElementFunc for a confirmed answer.
func MajorityVoteFunc[T any](seq []T, equal EqualFunc[T]) int {
	// candidate starts at the sentinel so the empty sequence needs no
	// special handling.
	candidate := len(seq)
	confidence := 0

	for i := range seq {
		if confidence == 0 {
			candidate = i
			confidence = 1
		} else if equal(seq[candidate], seq[i]) {
			confidence++
		} else {
			confidence--
		}
	}

	return candidate
}

// MajorityVote is MajorityVoteFunc with == as the comparator.
func MajorityVote[T comparable](seq []T) int {
	return MajorityVoteFunc(seq, func(x, y T) bool { return x == y })
}

// MajorityElementFunc returns the position of the element occurring in
// strictly more than half the positions of seq, or len(seq) when no such
// element exists. Absence of a majority is a normal result, not an error.
func MajorityElementFunc[T any](seq []T, equal EqualFunc[T]) int {
	candidate := MajorityVoteFunc(seq, equal)
	if candidate == len(seq) {
		return candidate
	}

	// The vote survivor is the only possible majority element, but it is
	// not guaranteed to be one. Confirm with a counting pass.
	nmatches := 0
	ntotal := 0
	for i := range seq {
		if equal(seq[candidate], seq[i]) {
			nmatches++
		}

		ntotal++
	}

	if nmatches > ntotal/2 {
		return candidate
	}

	return len(seq)
}

// MajorityElement is MajorityElementFunc with == as the comparator.
func MajorityElement[T comparable](seq []T) int {
	return MajorityElementFunc(seq, func(x, y T) bool { return x == y })
}

// IsMajorityElementFunc reports whether x is a majority element of seq.
// seq must already be sorted in non-descending order according to less;
// the precondition is not checked. The equal range of x is located with
// two binary searches, so the check runs in O(log n).
func IsMajorityElementFunc[T any](seq []T, x T, less LessFunc[T]) bool {
	first := lowerBound(seq, x, less)
	last := upperBound(seq, x, less)

	return last-first > len(seq)/2
}

// IsMajorityElement is IsMajorityElementFunc with < as the comparator.
func IsMajorityElement[T cmp.Ordered](seq []T, x T) bool {
	return IsMajorityElementFunc(seq, x, func(x, y T) bool { return x < y })
}

func lowerBound[T any](seq []T, x T, less LessFunc[T]) int {
	lo, hi := 0, len(seq)

	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(seq[mid], x) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

func upperBound[T any](seq []T, x T, less LessFunc[T]) int {
	lo, hi := 0, len(seq)

	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(x, seq[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
