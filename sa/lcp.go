package sa

// LCP computes the Kasai-style longest-common-prefix array for x given
// its suffix array sa. lcp[i] = |lcp(x[sa[i-1]:], x[sa[i]:])| for i >= 1;
// lcp[0] is defined as 0 (spec: "undefined", fixed here to 0 so callers
// never need a special case for the first row) and a synthetic trailing
// -1 sentinel is appended so run/block scans can compare against it
// without a bounds check.
func LCP[T Ordered](x []T, sa []int) []int {
	n := len(x)
	lcp := make([]int, n+1)
	if n == 0 {
		lcp[0] = -1
		return lcp
	}

	rank := Inverse(sa)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		for i+h < n && j+h < n && x[i+h] == x[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	lcp[0] = 0
	lcp[n] = -1
	return lcp
}
