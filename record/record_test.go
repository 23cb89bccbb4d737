package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTSVColumnOrder(t *testing.T) {
	r := Record{
		ReadID:     "read1",
		QueryLen:   10,
		QueryStart: 0,
		QueryEnd:   2,
		Strand:     '+',
		PathString: ">1",
		PathLen:    3,
		PathStart:  0,
		PathEnd:    2,
		Residues:   2,
		BlockLen:   2,
		MapQ:       60,
	}

	var sb strings.Builder
	require.NoError(t, r.WriteTSV(&sb))

	want := "read1\t10\t0\t2\t+\t>1\t3\t0\t2\t2\t2\t60\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteAllWritesEveryRecord(t *testing.T) {
	records := []Record{
		{ReadID: "a", Strand: '+', PathString: ">1"},
		{ReadID: "b", Strand: '-', PathString: "<2"},
	}

	var sb strings.Builder
	require.NoError(t, WriteAll(&sb, records))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a\t"))
	assert.True(t, strings.HasPrefix(lines[1], "b\t"))
}
