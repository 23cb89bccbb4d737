// Package memio reads the paired MEM and pointer streams a read
// aligner hands off: one file naming, per read, the (read_pos, length)
// tuples of its maximal exact matches, and a second naming, per read,
// the reference position each read base offset projects to.
package memio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gfatag/maria/merrors"
)

// Tuple is one MEM hit on a single read, before it is resolved to a
// reference position.
type Tuple struct {
	ReadPos int
	Length  int
}

// Mem is a single MEM fully addressed: the read it came from, where on
// the read, how long, and the reference position its start base
// projects to (looked up from the pointer file by read_pos).
type Mem struct {
	ReadID  string
	ReadPos int
	Length  int
	RefPos  int
}

// record is one parsed (id, fields) pair from either stream.
type record struct {
	id     string
	fields []string
}

// readRecords consumes 2-line records: a ">id" header line, then a
// single line of whitespace-separated fields. Blank lines between
// records are skipped.
func readRecords(r io.Reader) ([]record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []record
	for scanner.Scan() {
		header := strings.TrimSpace(scanner.Text())
		if header == "" {
			continue
		}
		if !strings.HasPrefix(header, ">") {
			return nil, merrors.New(merrors.ParseError, "expected header line, got %q", header)
		}
		id := strings.TrimPrefix(header, ">")

		if !scanner.Scan() {
			return nil, merrors.New(merrors.ParseError, "header %q has no data line", header)
		}
		data := strings.TrimSpace(scanner.Text())
		var fields []string
		if data != "" {
			fields = strings.Fields(data)
		}
		records = append(records, record{id: id, fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "reading record stream")
	}
	return records, nil
}

// parseTuples decodes a mems data line: whitespace-separated
// "(read_pos,length)" tokens, matching the upstream MEM-finder's own
// output format.
func parseTuples(id string, fields []string) ([]Tuple, error) {
	tuples := make([]Tuple, len(fields))
	for i, f := range fields {
		if len(f) < 2 || f[0] != '(' || f[len(f)-1] != ')' {
			return nil, merrors.New(merrors.ParseError, "read %q: malformed mem tuple %q", id, f)
		}
		inner := f[1 : len(f)-1]
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return nil, merrors.New(merrors.ParseError, "read %q: malformed mem tuple %q", id, f)
		}
		pos, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, merrors.Wrap(merrors.ParseError, err, "read %q: bad read_pos in %q", id, f)
		}
		length, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, merrors.Wrap(merrors.ParseError, err, "read %q: bad length in %q", id, f)
		}
		tuples[i] = Tuple{ReadPos: pos, Length: length}
	}
	return tuples, nil
}

// parsePointers decodes a pointers data line: one absolute reference
// position per read base offset, in order.
func parsePointers(id string, fields []string) ([]int, error) {
	pointers := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, merrors.Wrap(merrors.ParseError, err, "read %q: bad pointer %q", id, f)
		}
		pointers[i] = v
	}
	return pointers, nil
}

// NewReader parses the mems and pointers streams and joins them into
// one Mem slice, read by read, in mems order. mems and pointers must
// name the same reads, in the same order: a mismatched id is an
// merrors.IdMismatch. A MEM whose read_pos falls outside its read's
// pointer array is an merrors.OutOfRange.
func NewReader(mems, pointers io.Reader) ([]Mem, error) {
	memRecords, err := readRecords(mems)
	if err != nil {
		return nil, err
	}
	ptrRecords, err := readRecords(pointers)
	if err != nil {
		return nil, err
	}
	if len(memRecords) != len(ptrRecords) {
		return nil, merrors.New(merrors.IdMismatch,
			"mems has %d reads, pointers has %d", len(memRecords), len(ptrRecords))
	}

	var out []Mem
	for i, mr := range memRecords {
		pr := ptrRecords[i]
		if mr.id != pr.id {
			return nil, merrors.New(merrors.IdMismatch,
				"mems read %q does not match pointers read %q at position %d", mr.id, pr.id, i)
		}

		tuples, err := parseTuples(mr.id, mr.fields)
		if err != nil {
			return nil, err
		}
		ptrs, err := parsePointers(pr.id, pr.fields)
		if err != nil {
			return nil, err
		}

		for _, tu := range tuples {
			if tu.ReadPos < 0 || tu.ReadPos >= len(ptrs) {
				return nil, merrors.New(merrors.OutOfRange,
					"read %q: read_pos %d out of range for %d pointers", mr.id, tu.ReadPos, len(ptrs))
			}
			out = append(out, Mem{
				ReadID:  mr.id,
				ReadPos: tu.ReadPos,
				Length:  tu.Length,
				RefPos:  ptrs[tu.ReadPos],
			})
		}
	}
	return out, nil
}
