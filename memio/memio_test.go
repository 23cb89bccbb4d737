package memio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJoinsTuplesWithPointers(t *testing.T) {
	mems := ">read1\n(0,2) (3,4)\n"
	ptrs := ">read1\n10 11 12 13 14 15 16 17\n"

	out, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, Mem{ReadID: "read1", ReadPos: 0, Length: 2, RefPos: 10}, out[0])
	assert.Equal(t, Mem{ReadID: "read1", ReadPos: 3, Length: 4, RefPos: 13}, out[1])
}

func TestReadMultipleReads(t *testing.T) {
	mems := ">a\n(0,1)\n>b\n(2,3)\n"
	ptrs := ">a\n100 101\n>b\n200 201 202 203\n"

	out, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ReadID)
	assert.Equal(t, 100, out[0].RefPos)
	assert.Equal(t, "b", out[1].ReadID)
	assert.Equal(t, 202, out[1].RefPos)
}

func TestReadEmptyMemLineIsAllowed(t *testing.T) {
	mems := ">a\n\n"
	ptrs := ">a\n100 101\n"

	out, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReadMismatchedIdsIsError(t *testing.T) {
	mems := ">read1\n(0,2)\n"
	ptrs := ">read2\n10 11\n"

	_, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	assert.Error(t, err)
}

func TestReadMismatchedReadCountIsError(t *testing.T) {
	mems := ">a\n(0,1)\n>b\n(0,1)\n"
	ptrs := ">a\n100 101\n"

	_, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	assert.Error(t, err)
}

func TestReadOutOfRangeReadPosIsError(t *testing.T) {
	mems := ">a\n(5,2)\n"
	ptrs := ">a\n100 101\n"

	_, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	assert.Error(t, err)
}

func TestReadMalformedTupleIsError(t *testing.T) {
	mems := ">a\nbad\n"
	ptrs := ">a\n100\n"

	_, err := NewReader(strings.NewReader(mems), strings.NewReader(ptrs))
	assert.Error(t, err)
}
