package sa

import "github.com/gfatag/maria/merrors"

// Sorted is a monotonically increasing []int supporting predecessor search.
type Sorted []int

// Argpred returns the largest index i with Sorted[i] <= q.
// Precondition: q >= Sorted[0]; violating it is OutOfRange.
func (s Sorted) Argpred(q int) (int, error) {
	if len(s) == 0 || q < s[0] {
		return 0, merrors.New(merrors.OutOfRange,
			"argpred: query %d precedes first element", q)
	}

	l, r := 0, len(s)
	for l < r-1 {
		m := (l + r) / 2
		switch {
		case s[m] <= q:
			l = m
		default:
			r = m
		}
	}
	return l, nil
}
