package sa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveSA(s string) []int {
	n := len(s)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s[sa[j]:] < s[sa[i]:] {
				sa[i], sa[j] = sa[j], sa[i]
			}
		}
	}
	return sa
}

func TestBuildMatchesNaive(t *testing.T) {
	cases := []string{
		"banana$",
		"ACGTTCG$",
		"mississippi$",
		"aaaaaa$",
		"a",
	}
	for _, s := range cases {
		bytes := []byte(s)
		got := Build(bytes)
		want := naiveSA(s)
		assert.Equal(t, want, got, "suffix array for %q", s)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	sa := Build([]byte("banana$"))
	isa := Inverse(sa)
	for i, p := range sa {
		assert.Equal(t, i, isa[p])
	}
}

func TestLCP(t *testing.T) {
	s := []byte("banana$")
	saArr := Build(s)
	lcp := LCP(s, saArr)
	require.Equal(t, len(s)+1, len(lcp))
	assert.Equal(t, -1, lcp[len(s)])
	assert.Equal(t, 0, lcp[0])

	for i := 1; i < len(s); i++ {
		a, b := s[saArr[i-1]:], s[saArr[i]:]
		n := 0
		for n < len(a) && n < len(b) && a[n] == b[n] {
			n++
		}
		assert.Equal(t, n, lcp[i], "lcp at %d", i)
	}
}

func TestArgsortRankOfEachElement(t *testing.T) {
	data := []int{5, 3, 3, 9, 0}
	p := Argsort(data)
	for i := range data {
		for j := range data {
			if data[i] < data[j] {
				assert.Less(t, p[i], p[j])
			}
		}
	}
}

func TestPredecessor(t *testing.T) {
	v := Sorted{0, 3, 5, 9}

	tests := []struct {
		q    int
		want int
	}{
		{4, 1},
		{5, 2},
		{6, 2},
		{10, 3},
		{0, 0},
	}
	for _, tc := range tests {
		got, err := v.Argpred(tc.q)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "argpred(%d)", tc.q)
	}
}

func TestPredecessorOutOfRange(t *testing.T) {
	v := Sorted{5, 9}
	_, err := v.Argpred(4)
	require.Error(t, err)
}
