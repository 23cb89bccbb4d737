package sa

import "sort"

// Build returns the suffix array of x: perm such that
// x[perm[i]:] < x[perm[i+1]:] lexicographically for all valid i.
//
// Uses the classic prefix-doubling construction (rank arrays refined by
// 2^k-length comparisons, O(n log^2 n)) rather than a specialized
// library: no suffix-array package for an arbitrary Ordered alphabet
// surfaced anywhere in the available dependency set, and the algorithm
// itself is the thing under test here, not a candidate for outsourcing.
func Build[T Ordered](x []T) []int {
	n := len(x)
	if n == 0 {
		return nil
	}

	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)

	// Initial ranks: rank by the single-character alphabet.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })
	rank[order[0]] = 0
	for i := 1; i < n; i++ {
		rank[order[i]] = rank[order[i-1]]
		if x[order[i]] != x[order[i-1]] {
			rank[order[i]]++
		}
	}
	copy(sa, order)

	for k := 1; ; k *= 2 {
		keyOf := func(i int) (int, int) {
			r1 := rank[i]
			r2 := -1
			if i+k < n {
				r2 = rank[i+k]
			}
			return r1, r2
		}
		sort.Slice(sa, func(i, j int) bool {
			a1, a2 := keyOf(sa[i])
			b1, b2 := keyOf(sa[j])
			if a1 != b1 {
				return a1 < b1
			}
			return a2 < b2
		})

		tmp[sa[0]] = 0
		maxRank := 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			p1, p2 := keyOf(sa[i-1])
			c1, c2 := keyOf(sa[i])
			if p1 != c1 || p2 != c2 {
				tmp[sa[i]]++
			}
			if tmp[sa[i]] > maxRank {
				maxRank = tmp[sa[i]]
			}
		}
		copy(rank, tmp)

		if maxRank == n-1 || k*2 >= n {
			break
		}
	}
	return sa
}

// Inverse computes isa from sa such that isa[sa[i]] == i, in O(n).
func Inverse(perm []int) []int {
	isa := make([]int, len(perm))
	for i, p := range perm {
		isa[p] = i
	}
	return isa
}

// Argsort returns p such that p[i] is the rank of data[i]: the inverse
// of the permutation that would sort data. Ties broken by original index.
func Argsort(data []int) []int {
	n := len(data)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return data[order[i]] < data[order[j]] })
	return Inverse(order)
}
