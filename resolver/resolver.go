// Package resolver turns a MEM (length, read position, reference
// position) into one match record per distinct graph position the MEM
// could have come from, using the sampled tag array, a straight-line
// grammar as a longest-common-extension oracle, and the graph's node
// index to project a match back onto a sub-path.
package resolver

import (
	"strconv"
	"strings"

	"github.com/gfatag/maria/grammar"
	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/tagindex"
)

// Resolver holds the read-only, shared indexes a query needs. It is
// safe to use from multiple goroutines concurrently once built.
type Resolver struct {
	Samples   *tagindex.Samples
	Grammar   *grammar.Grammar
	NodeIndex *graphmodel.NodeIndex
}

// New builds a Resolver over already-loaded indexes.
func New(samples *tagindex.Samples, g *grammar.Grammar, ni *graphmodel.NodeIndex) *Resolver {
	return &Resolver{Samples: samples, Grammar: g, NodeIndex: ni}
}

// Match is one unique graph position a MEM resolves to, projected to
// the sub-path it spans.
type Match struct {
	GraphPos   graphmodel.Pos
	SA         int
	PathString string
	PathLen    int
	PathStart  int
	PathEnd    int
}

// LCE is the longest-common-extension oracle: it advances while R's
// characters (read through the grammar) agree at s1+l and s2+l, and
// reports which side is lexicographically smaller at the first
// difference, or by running out of text first. s1 == s2 is a special
// case: a position is never less than itself.
func (r *Resolver) LCE(s1, s2 int) (length int, s1Smaller bool, err error) {
	n := r.Grammar.Len()
	if s1 == s2 {
		return n - s1, false, nil
	}
	l := 0
	for {
		a1 := s1+l < n
		a2 := s2+l < n
		if !a1 && !a2 {
			return l, false, nil
		}
		if !a1 {
			return l, true, nil
		}
		if !a2 {
			return l, false, nil
		}
		c1, err := r.Grammar.At(s1 + l)
		if err != nil {
			return 0, false, err
		}
		c2, err := r.Grammar.At(s2 + l)
		if err != nil {
			return 0, false, err
		}
		if c1 != c2 {
			return l, c1 < c2, nil
		}
		l++
	}
}

// Locate binary-searches the sampled SA array for the half-open range
// [lo, hi) of sampled entries whose suffix's first L characters equal
// R[P:P+L).
func (r *Resolver) Locate(p, length int) (lo, hi int, err error) {
	sa := r.Samples.SA
	if len(sa) == 0 {
		return 0, 0, merrors.New(merrors.OutOfRange, "no sampled sa values to search")
	}
	if length <= 0 {
		return 0, 0, merrors.New(merrors.OutOfRange, "mem length must be positive, got %d", length)
	}

	lo, err = r.searchBound(p, length, true)
	if err != nil {
		return 0, 0, err
	}
	hi, err = r.searchBound(p, length, false)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// searchBound implements both halves of Locate: wantLeft=true finds
// the smallest m whose suffix is not strictly less than R[p:p+length);
// wantLeft=false finds the smallest m whose suffix is strictly greater.
func (r *Resolver) searchBound(p, length int, wantLeft bool) (int, error) {
	sa := r.Samples.SA
	lo, hi := 0, len(sa)
	for lo < hi {
		mid := (lo + hi) / 2
		e, smaller, err := r.LCE(sa[mid], p)
		if err != nil {
			return 0, err
		}
		diverges := e < length
		belowTarget := diverges && smaller
		aboveTarget := diverges && !smaller
		var stopsAtOrBeforeMid bool
		if wantLeft {
			stopsAtOrBeforeMid = !belowTarget
		} else {
			stopsAtOrBeforeMid = aboveTarget
		}
		if stopsAtOrBeforeMid {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

// Resolve runs the full C7 pipeline for one MEM: locate, deduplicate
// the matching graph positions, and project each to its sub-path.
func (r *Resolver) Resolve(p, length int) ([]Match, error) {
	lo, hi, err := r.Locate(p, length)
	if err != nil {
		return nil, err
	}

	seenAt := make(map[graphmodel.Pos]int)
	var order []graphmodel.Pos
	for m := lo; m < hi; m++ {
		gp := r.Samples.Tag[m]
		if _, ok := seenAt[gp]; !ok {
			seenAt[gp] = r.Samples.SA[m]
			order = append(order, gp)
		}
	}

	matches := make([]Match, 0, len(order))
	for _, gp := range order {
		match, err := r.project(gp, seenAt[gp], length)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// project walks forward from the node owning sa through NodeNames,
// accumulating length bytes, concatenating a "[>|<]id" token per node
// touched.
func (r *Resolver) project(gp graphmodel.Pos, saVal, length int) (Match, error) {
	ni := r.NodeIndex
	k0, err := ni.NodeStarts.Argpred(saVal)
	if err != nil {
		return Match{}, err
	}
	if k0 >= len(ni.NodeNames) {
		return Match{}, merrors.New(merrors.OutOfRange, "sa %d has no owning node", saVal)
	}

	pstart := saVal - ni.NodeStarts[k0]
	remaining := length
	var sb strings.Builder
	k := k0
	for remaining > 0 {
		if k >= len(ni.NodeNames) {
			return Match{}, merrors.New(merrors.OutOfRange, "mem of length %d runs past the graph", length)
		}
		node := ni.NodeNames[k]
		sign := byte('>')
		if node.Sign == graphmodel.Reverse {
			sign = '<'
		}
		sb.WriteByte(sign)
		sb.WriteString(strconv.Itoa(node.ID))

		avail := ni.SegLen[k]
		if k == k0 {
			avail -= pstart
		}
		if avail > remaining {
			avail = remaining
		}
		remaining -= avail
		k++
	}

	return Match{
		GraphPos:   gp,
		SA:         saVal,
		PathString: sb.String(),
		PathStart:  pstart,
		PathEnd:    pstart + length,
		PathLen:    ni.NodeStarts[k] - ni.NodeStarts[k0],
	}, nil
}
