// Package tagfile persists the run-sampled tag array (tagindex.Samples)
// to and from a plain-text file, mmapped read-only for loading the way
// the teacher's analyzer loads its flat arrays.
package tagfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/tagindex"
)

// Write serializes samples as one "sa_value\tgraph_pos\n" line per
// entry, in array order.
func Write(w io.Writer, samples *tagindex.Samples) error {
	bw := bufio.NewWriter(w)
	for i, sa := range samples.SA {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", sa, samples.Tag[i].String()); err != nil {
			return merrors.Wrap(merrors.IoError, err, "writing tag file")
		}
	}
	return bw.Flush()
}

// parsePos decodes the "id<sign>:offset" form produced by
// graphmodel.Pos.String.
func parsePos(s string) (graphmodel.Pos, error) {
	colon := strings.LastIndexByte(s, ':')
	if colon < 1 {
		return graphmodel.Pos{}, merrors.New(merrors.ParseError, "malformed graph position %q", s)
	}
	signByte := s[colon-1]
	if signByte != byte(graphmodel.Forward) && signByte != byte(graphmodel.Reverse) {
		return graphmodel.Pos{}, merrors.New(merrors.ParseError, "graph position %q missing +/- sign", s)
	}
	id, err := strconv.Atoi(s[:colon-1])
	if err != nil {
		return graphmodel.Pos{}, merrors.Wrap(merrors.ParseError, err, "graph position %q has bad id", s)
	}
	offset, err := strconv.Atoi(s[colon+1:])
	if err != nil {
		return graphmodel.Pos{}, merrors.Wrap(merrors.ParseError, err, "graph position %q has bad offset", s)
	}
	return graphmodel.Pos{ID: id, Sign: graphmodel.Sign(signByte), Offset: offset}, nil
}

// Read parses a tag file already in memory (typically an mmapped
// region handed in as a byte slice wrapped by bytes.NewReader).
func Read(r io.Reader) (*tagindex.Samples, error) {
	samples := &tagindex.Samples{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "\t", 2)
		if len(cols) != 2 {
			return nil, merrors.New(merrors.ParseError, "line %d: malformed tag entry %q", lineNo, line)
		}
		sa, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, merrors.Wrap(merrors.ParseError, err, "line %d: bad sa value", lineNo)
		}
		pos, err := parsePos(cols[1])
		if err != nil {
			return nil, err
		}
		samples.SA = append(samples.SA, sa)
		samples.Tag = append(samples.Tag, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "reading tag file")
	}
	return samples, nil
}

// Load mmaps path read-only and parses it. Empty files are handled
// without mmapping, since mmap.Map rejects zero-length files.
func Load(path string) (*tagindex.Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "opening tag file %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "stat tag file %s", path)
	}
	if info.Size() == 0 {
		return &tagindex.Samples{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "mmapping tag file %s", path)
	}
	defer m.Unmap()

	return Read(bytes.NewReader(m))
}
