// Package tagindex builds the PFP-indexed derived arrays over a
// dictionary and parse (C5) and streams global suffix-array triples in
// SA order without ever materializing R, then samples them down to
// run boundaries against the tag array (C6).
package tagindex

import (
	"sort"

	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/pfp"
	"github.com/gfatag/maria/sa"
)

// Derived holds every array C5 needs, precomputed once over
// segment_join and path_join.
type Derived struct {
	Dictionary *pfp.Dictionary

	SegJoin []int
	SAd     []int
	LCPd    []int
	ISAd    []int

	// Id[r]/Pos[r]: the dictionary-local phrase id and within-phrase
	// offset of the suffix at SA rank r of SegJoin.
	Id  []int
	Pos []int

	// SegLen[p]: length of dictionary phrase p; SegLen[len(Dictionary)]
	// is 1, standing in for the trailing terminator symbol.
	SegLen []int

	// SeqPos[p]/RcRank[p]: per dictionary phrase p, its occurrences'
	// global R offsets and right-context ranks, jointly ordered so
	// occurrence k has the k-th lexicographically smallest right
	// extension.
	SeqPos [][]int
	RcRank [][]int

	Overlap int
}

// Build computes every C5 derived array from a completed prefix-free
// parse and the trigger width w (the phrase overlap length).
func Build(parse *pfp.Parse, w int) (*Derived, error) {
	dict := parse.Dictionary
	if len(dict.Phrases) == 0 {
		return nil, merrors.New(merrors.EmptyIndex, "dictionary has no phrases")
	}

	segJoin := pfp.SegmentJoin(dict)
	saD := sa.Build(segJoin)
	isaD := sa.Inverse(saD)
	lcpD := sa.LCP(segJoin, saD)

	segLen := make([]int, len(dict.Phrases)+1)
	for i, p := range dict.Phrases {
		segLen[i] = len(p)
	}
	segLen[len(dict.Phrases)] = 1

	n := len(segJoin)
	id := make([]int, n)
	pos := make([]int, n)
	curID, curPos := 0, 0
	for i := 0; i < n; i++ {
		r := isaD[i]
		id[r] = curID
		pos[r] = curPos
		switch segJoin[i] {
		case 1:
			curID++
			curPos = 0
		case 0:
			// terminator: final symbol, nothing follows.
		default:
			curPos++
		}
	}
	if curID != len(dict.Phrases) {
		return nil, merrors.New(merrors.PFPInvariantViolation,
			"segment_join scan ended at phrase %d, expected %d", curID, len(dict.Phrases))
	}

	seqPos, rcRank, err := sequencePositionsAndRightContext(parse, segLen, w)
	if err != nil {
		return nil, err
	}

	return &Derived{
		Dictionary: dict,
		SegJoin:    segJoin,
		SAd:        saD,
		LCPd:       lcpD,
		ISAd:       isaD,
		Id:         id,
		Pos:        pos,
		SegLen:     segLen,
		SeqPos:     seqPos,
		RcRank:     rcRank,
		Overlap:    w,
	}, nil
}

// sequencePositionsAndRightContext computes seq_pos and rc_rank by a
// single pass over path_join plus one suffix array built over it.
//
// seq_pos: the running global offset is advanced by seg_len[phrase]-w
// after every phrase symbol, which undercounts a path's last phrase by
// w bytes (the bytes it would have shared with a following phrase that
// does not exist); crossing a path separator (symbol 1) corrects for
// this by adding w back before the next path's phrases are recorded.
//
// rc_rank: for every phrase occurrence at path_join position i, the
// right-context rank is the rank, in path_join's own suffix array, of
// the suffix starting at i+1 — the suffix immediately following this
// occurrence, which never runs off the end because path_join always
// ends in a 0 sentinel.
func sequencePositionsAndRightContext(parse *pfp.Parse, segLen []int, w int) ([][]int, [][]int, error) {
	numPhrases := len(segLen) - 1
	pathJoin := pfp.PathJoin(parse.Parses)

	seqPos := make([][]int, numPhrases)
	running := 0
	for _, v := range pathJoin {
		switch {
		case v >= 2:
			phrase := v - 2
			if phrase < 0 || phrase >= numPhrases {
				return nil, nil, merrors.New(merrors.PFPInvariantViolation,
					"path_join references unknown phrase %d", phrase)
			}
			seqPos[phrase] = append(seqPos[phrase], running)
			running += segLen[phrase] - w
		case v == 1:
			running += w
		}
	}

	saPJ := sa.Build(pathJoin)
	isaPJ := sa.Inverse(saPJ)

	rcRank := make([][]int, numPhrases)
	for i, v := range pathJoin {
		if v >= 2 {
			phrase := v - 2
			rcRank[phrase] = append(rcRank[phrase], isaPJ[i+1])
		}
	}

	for p := 0; p < numPhrases; p++ {
		order := ascendingOrder(rcRank[p])
		reordered := make([]int, len(order))
		reorderedSeq := make([]int, len(order))
		for k, src := range order {
			reordered[k] = rcRank[p][src]
			reorderedSeq[k] = seqPos[p][src]
		}
		rcRank[p] = reordered
		seqPos[p] = reorderedSeq
	}

	return seqPos, rcRank, nil
}

// ascendingOrder returns a permutation of 0..len(vals)-1 that visits
// vals in ascending order, stable on ties.
func ascendingOrder(vals []int) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })
	return order
}
