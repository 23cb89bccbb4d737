package tagindex

import (
	"testing"

	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/pfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenario1(t *testing.T) (*graphmodel.NodeIndex, *pfp.Parse) {
	t.Helper()
	triggers, err := pfp.LoadTriggersFromLines([]string{"TTC"})
	require.NoError(t, err)

	// R = "ACGTTCG$": segments 1:ACG, 2:TT, 3:CG, path 1+,2+,3+.
	parse, err := pfp.ParsePaths([][]byte{[]byte("ACGTTCG")}, triggers)
	require.NoError(t, err)

	ni := &graphmodel.NodeIndex{
		NodeStarts: []int{0, 3, 5, 8},
		NodeNames: []graphmodel.Pos{
			{ID: 1, Sign: graphmodel.Forward},
			{ID: 2, Sign: graphmodel.Forward},
			{ID: 3, Sign: graphmodel.Forward},
		},
		SegLen:  []int{3, 2, 2},
		TextLen: 8,
	}
	return ni, parse
}

func TestBuildDerivedArraysShapes(t *testing.T) {
	_, parse := buildScenario1(t)

	d, err := Build(parse, 3)
	require.NoError(t, err)

	assert.Len(t, d.SegLen, len(parse.Dictionary.Phrases)+1)
	assert.Equal(t, 1, d.SegLen[len(parse.Dictionary.Phrases)])
	assert.Len(t, d.SAd, len(d.SegJoin))
	assert.Len(t, d.ISAd, len(d.SegJoin))
	assert.Len(t, d.Id, len(d.SegJoin))
	assert.Len(t, d.Pos, len(d.SegJoin))
	assert.Len(t, d.SeqPos, len(parse.Dictionary.Phrases))
	assert.Len(t, d.RcRank, len(parse.Dictionary.Phrases))

	for p := range parse.Dictionary.Phrases {
		assert.Equal(t, len(d.SeqPos[p]), len(d.RcRank[p]), "phrase %d occurrence count mismatch", p)
	}
}

func TestStreamEmitsNoDuplicateTriplesPerPhraseOccurrence(t *testing.T) {
	_, parse := buildScenario1(t)
	d, err := Build(parse, 3)
	require.NoError(t, err)

	triples := d.Stream()
	seen := make(map[int]bool)
	for _, tr := range triples {
		assert.False(t, seen[tr.SA], "sa value %d emitted more than once", tr.SA)
		seen[tr.SA] = true
	}
}

func TestStreamIsSAOrdered(t *testing.T) {
	_, parse := buildScenario1(t)
	d, err := Build(parse, 3)
	require.NoError(t, err)

	triples := d.Stream()
	require.NotEmpty(t, triples)
	// Every emitted sa value must be a real R offset (< |R|=8, the
	// length of "ACGTTCG$").
	for _, tr := range triples {
		assert.GreaterOrEqual(t, tr.SA, 0)
		assert.Less(t, tr.SA, 8)
	}
	// Consecutive emissions must follow R's own suffix order ('$' sorts
	// below every base, as it does in Go string comparison).
	text := "ACGTTCG$"
	for i := 1; i < len(triples); i++ {
		assert.Less(t, text[triples[i-1].SA:], text[triples[i].SA:], "triples %d and %d out of SA order", i-1, i)
	}
}

func TestSampleProducesEqualLengthArrays(t *testing.T) {
	ni, parse := buildScenario1(t)
	d, err := Build(parse, 3)
	require.NoError(t, err)

	triples := d.Stream()
	samples, err := Sample(triples, ni)
	require.NoError(t, err)
	assert.Equal(t, len(samples.SA), len(samples.Tag))
	assert.True(t, len(samples.SA)%2 == 0 || len(samples.SA) == 0, "sampled arrays should come in run-boundary pairs")
}

func TestBuildEmptyDictionary(t *testing.T) {
	_, err := Build(&pfp.Parse{Dictionary: &pfp.Dictionary{}}, 3)
	assert.Error(t, err)
}
