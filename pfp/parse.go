package pfp

import (
	"bytes"
	"sort"

	"github.com/gfatag/maria/merrors"
)

// Sentinel terminates every path's expanded byte sequence before
// phrase splitting, standing in for R's per-path '$'. Although phrase
// splitting is sometimes described as padding the stream with w copies
// of a separator, the window scan's own bound (j stops at n-w) already
// keeps the trailing w-1 bytes from ever being tested, so appending a
// single sentinel is sufficient: the worked "GATTAACC$" example splits
// correctly with exactly one trailing byte, and this is what the
// reference parser does as well.
const Sentinel = '$'

// Dictionary is the deduplicated, lexicographically sorted set of
// phrases produced by parsing every path. Phrase ids are dense and
// equal a phrase's rank among Phrases.
type Dictionary struct {
	Phrases [][]byte
}

// Id returns the dense id of phrase, or -1 if it is not present.
func (d *Dictionary) Id(phrase []byte) int {
	i := sort.Search(len(d.Phrases), func(i int) bool {
		return bytes.Compare(d.Phrases[i], phrase) >= 0
	})
	if i < len(d.Phrases) && bytes.Equal(d.Phrases[i], phrase) {
		return i
	}
	return -1
}

// Parse is the result of prefix-free parsing every path: Dictionary
// holds the deduplicated phrases, Parses[p] the per-path list of
// dictionary phrase ids in occurrence order.
type Parse struct {
	Dictionary *Dictionary
	Parses     [][]int
}

// splitPath cuts seq into phrases at every trigger-window boundary,
// following the reference parser's windowing rule exactly: scan j from
// 1 up to (but excluding) n-w, and whenever seq[j:j+w] is a trigger,
// close the current phrase at seq[i:j+w] and resume the next phrase at
// i=j. The two phrases therefore share the w-byte trigger window
// verbatim, which is how adjacent phrases come to overlap by exactly w
// bytes. The final phrase runs from the last cut to the end of the
// padded sequence.
func splitPath(seq []byte, triggers *TriggerSet) [][]byte {
	w := triggers.Width
	padded := append(append([]byte{}, seq...), Sentinel)

	n := len(padded)
	var phrases [][]byte
	i := 0
	for j := 1; j < n-w; j++ {
		if triggers.Contains(padded[j : j+w]) {
			phrases = append(phrases, padded[i:j+w])
			i = j
		}
	}
	phrases = append(phrases, padded[i:n])
	return phrases
}

// ParsePaths runs prefix-free parsing over every path's already-expanded
// byte sequence (graphmodel.Graph.Expand concatenated per path, without
// a trailing '$': splitPath appends it). Phrases are assigned dense ids
// in first-seen order across all paths, then the dictionary is
// renumbered by sorting its phrases lexicographically; every per-path
// parse is remapped through that renumbering.
func ParsePaths(pathSeqs [][]byte, triggers *TriggerSet) (*Parse, error) {
	if triggers == nil || len(triggers.set) == 0 {
		return nil, merrors.New(merrors.NoTriggers, "no triggers loaded")
	}

	firstSeen := make(map[string]int)
	var insertionOrder [][]byte
	parses := make([][]int, len(pathSeqs))

	for p, seq := range pathSeqs {
		phrases := splitPath(seq, triggers)
		ids := make([]int, len(phrases))
		for k, phrase := range phrases {
			key := string(phrase)
			id, ok := firstSeen[key]
			if !ok {
				id = len(insertionOrder)
				firstSeen[key] = id
				insertionOrder = append(insertionOrder, phrase)
			}
			ids[k] = id
		}
		parses[p] = ids
	}

	sortedIdx := make([]int, len(insertionOrder))
	for i := range sortedIdx {
		sortedIdx[i] = i
	}
	sort.Slice(sortedIdx, func(a, b int) bool {
		return bytes.Compare(insertionOrder[sortedIdx[a]], insertionOrder[sortedIdx[b]]) < 0
	})

	remap := make([]int, len(insertionOrder))
	sortedPhrases := make([][]byte, len(insertionOrder))
	for newID, oldID := range sortedIdx {
		remap[oldID] = newID
		sortedPhrases[newID] = insertionOrder[oldID]
	}

	for p, ids := range parses {
		for k, id := range ids {
			parses[p][k] = remap[id]
		}
	}

	return &Parse{
		Dictionary: &Dictionary{Phrases: sortedPhrases},
		Parses:     parses,
	}, nil
}
