package tagfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/tagindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFixture() *tagindex.Samples {
	return &tagindex.Samples{
		SA: []int{0, 5},
		Tag: []graphmodel.Pos{
			{ID: 1, Sign: graphmodel.Forward, Offset: 0},
			{ID: 3, Sign: graphmodel.Forward, Offset: 0},
		},
	}
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	samples := sampleFixture()

	var sb strings.Builder
	require.NoError(t, Write(&sb, samples))

	got, err := Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestParsePosRejectsMalformed(t *testing.T) {
	_, err := parsePos("garbage")
	assert.Error(t, err)
}

func TestParsePosRejectsMissingSign(t *testing.T) {
	_, err := parsePos("1x:0")
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.tag")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	samples, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, samples.SA)
	assert.Empty(t, samples.Tag)
}

func TestLoadRoundTripsThroughMmap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.tag")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Write(f, sampleFixture()))
	require.NoError(t, f.Close())

	samples, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleFixture(), samples)
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("not-a-valid-line\n"))
	assert.Error(t, err)
}
