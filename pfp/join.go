package pfp

// join concatenates elements shifted by +2 into a single integer
// sequence, separating consecutive groups with 1 and terminating the
// whole sequence with a single 0. 0 and 1 therefore always sort before
// every real element, which is what lets a plain integer-alphabet
// suffix array treat group boundaries as smaller-than-anything
// separators without special-casing them.
func join(groups [][]int) []int {
	var out []int
	for _, g := range groups {
		for _, v := range g {
			out = append(out, v+2)
		}
		out = append(out, 1)
	}
	out = append(out, 0)
	return out
}

// SegmentJoin concatenates every dictionary phrase (as its raw bytes)
// into the byte-alphabet join segment_join, one phrase per group.
func SegmentJoin(d *Dictionary) []int {
	groups := make([][]int, len(d.Phrases))
	for i, phrase := range d.Phrases {
		group := make([]int, len(phrase))
		for j, b := range phrase {
			group[j] = int(b)
		}
		groups[i] = group
	}
	return join(groups)
}

// PathJoin concatenates every path's phrase-id parse into the
// integer-alphabet join path_join, one path per group.
func PathJoin(parses [][]int) []int {
	groups := make([][]int, len(parses))
	copy(groups, parses)
	return join(groups)
}
