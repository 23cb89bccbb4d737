// Package record formats resolved matches as the 12-column
// tab-separated output line.
package record

import (
	"bufio"
	"fmt"
	"io"
)

// Record is one output row: a single MEM resolved to a single graph
// position's sub-path.
type Record struct {
	ReadID     string
	QueryLen   int
	QueryStart int
	QueryEnd   int
	Strand     byte
	PathString string
	PathLen    int
	PathStart  int
	PathEnd    int
	Residues   int
	BlockLen   int
	MapQ       int
}

// WriteTSV writes one tab-separated line, in column order: read_id,
// query_len, query_start, query_end, strand, path_string, path_len,
// path_start, path_end, residues, block_len, mapq.
func (r Record) WriteTSV(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%c\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
		r.ReadID, r.QueryLen, r.QueryStart, r.QueryEnd, r.Strand,
		r.PathString, r.PathLen, r.PathStart, r.PathEnd,
		r.Residues, r.BlockLen, r.MapQ)
	return err
}

// WriteAll writes every record in order, flushing once at the end.
func WriteAll(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if err := r.WriteTSV(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
