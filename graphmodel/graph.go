// Package graphmodel parses the segment/path graph file and produces the
// flat node-span index (node_starts, node_names) that maps a text offset
// in the logical reference concatenation R back to a graph position.
package graphmodel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/sa"
)

// Sign is the orientation of an oriented segment.
type Sign byte

const (
	Forward Sign = '+'
	Reverse Sign = '-'
)

func (s Sign) String() string { return string(rune(s)) }

// Pos is a graph position: (segment id, orientation, offset within segment).
type Pos struct {
	ID     int
	Sign   Sign
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d%c:%d", p.ID, byte(p.Sign), p.Offset)
}

// OrientedSegment identifies a segment and its orientation, without an offset.
type OrientedSegment struct {
	ID   int
	Sign Sign
}

// Segment is a reusable building block of the graph.
type Segment struct {
	ID  int
	Seq []byte // over {A,C,G,T,N}
}

// Path is an ordered sequence of oriented segments.
type Path struct {
	Name     string
	Segments []OrientedSegment
}

// Graph is the parsed segment/path graph.
type Graph struct {
	Segments map[int]*Segment
	Paths    []Path
}

// ParseGFA parses a segment/path plain-text graph file: lines of kind
// "S <id> <bytes>" and "P <name> <id[+|-]>(,<id[+|-]>)*". Any other
// line kind is ignored.
func ParseGFA(r io.Reader) (*Graph, error) {
	g := &Graph{Segments: make(map[int]*Segment)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "S":
			if len(fields) < 3 {
				return nil, merrors.New(merrors.ParseError, "line %d: malformed segment line %q", lineNo, line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 0 {
				return nil, merrors.New(merrors.ParseError, "line %d: bad segment id %q", lineNo, fields[1])
			}
			g.Segments[id] = &Segment{ID: id, Seq: []byte(fields[2])}
		case "P":
			if len(fields) < 3 {
				return nil, merrors.New(merrors.ParseError, "line %d: malformed path line %q", lineNo, line)
			}
			segs, err := parseOrientedList(fields[2])
			if err != nil {
				return nil, merrors.New(merrors.ParseError, "line %d: %v", lineNo, err)
			}
			g.Paths = append(g.Paths, Path{Name: fields[1], Segments: segs})
		default:
			// unrecognized line kind (H/L/C/...); ignored, not needed by this index.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "reading graph file")
	}
	return g, nil
}

func parseOrientedList(s string) ([]OrientedSegment, error) {
	parts := strings.Split(s, ",")
	result := make([]OrientedSegment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty oriented segment token")
		}
		signByte := p[len(p)-1]
		if signByte != byte(Forward) && signByte != byte(Reverse) {
			return nil, fmt.Errorf("oriented segment %q missing +/- sign", p)
		}
		id, err := strconv.Atoi(p[:len(p)-1])
		if err != nil || id < 0 {
			return nil, fmt.Errorf("oriented segment %q has bad id", p)
		}
		result = append(result, OrientedSegment{ID: id, Sign: Sign(signByte)})
	}
	return result, nil
}

// ReverseComplement returns the reverse complement of a sequence over {A,C,G,T,N}.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, c := range seq {
		var rc byte
		switch c {
		case 'A':
			rc = 'T'
		case 'C':
			rc = 'G'
		case 'G':
			rc = 'C'
		case 'T':
			rc = 'A'
		case 'N':
			rc = 'N'
		default:
			rc = c
		}
		out[n-1-i] = rc
	}
	return out
}

// Expand returns the oriented byte sequence of a segment: seq_of(id),
// reverse-complemented when sign is '-'.
func (g *Graph) Expand(os OrientedSegment) ([]byte, error) {
	seg, ok := g.Segments[os.ID]
	if !ok {
		return nil, merrors.New(merrors.ParseError, "unknown segment id %d", os.ID)
	}
	if os.Sign == Reverse {
		return ReverseComplement(seg.Seq), nil
	}
	return seg.Seq, nil
}

// NodeIndex is the flat, global, in-visit-order index of oriented nodes
// across all paths: node_starts[k] is the global text offset of the k-th
// oriented node, node_names[k] its (id, sign, 0). A sentinel final entry
// node_starts[len(NodeNames)] == textLen terminates the array.
type NodeIndex struct {
	NodeStarts sa.Sorted
	NodeNames  []Pos
	SegLen     []int // seg length backing each NodeNames entry, for separator detection
	TextLen    int
	PathStart  []int // path_start[p]: byte offset of path p in R
}

// BuildNodeIndex walks every path's oriented segments in order and lays
// out their text offsets, with each path terminated by a '$' separator.
// The invariant node_starts[k+1]-node_starts[k] == seg_len[node_names[k]]
// holds strictly within a path; at a path boundary the '$' occupies the
// one text position after the last node, which Locate treats as a
// sentinel graph position rather than stretching the last node over it.
func (g *Graph) BuildNodeIndex() (*NodeIndex, error) {
	idx := &NodeIndex{}
	offset := 0
	for _, p := range g.Paths {
		idx.PathStart = append(idx.PathStart, offset)
		for _, os := range p.Segments {
			seg, ok := g.Segments[os.ID]
			if !ok {
				return nil, merrors.New(merrors.ParseError, "path %q: unknown segment id %d", p.Name, os.ID)
			}
			idx.NodeStarts = append(idx.NodeStarts, offset)
			idx.NodeNames = append(idx.NodeNames, Pos{ID: os.ID, Sign: os.Sign, Offset: 0})
			idx.SegLen = append(idx.SegLen, len(seg.Seq))
			offset += len(seg.Seq)
		}
		offset++ // '$' separator
	}
	idx.NodeStarts = append(idx.NodeStarts, offset) // sentinel
	idx.TextLen = offset
	return idx, nil
}

// Locate returns the graph position for a global text offset p, and the
// owning node's index k in NodeNames. If p lands on a '$' separator
// (past the end of its owning node's segment) it returns OutOfRange —
// the caller (the tag-array sampler) treats that as the designated
// sentinel graph position and excludes it from MEM output.
func (ni *NodeIndex) Locate(p int) (Pos, int, error) {
	k, err := ni.NodeStarts.Argpred(p)
	if err != nil {
		return Pos{}, 0, err
	}
	if k >= len(ni.NodeNames) {
		return Pos{}, k, merrors.New(merrors.OutOfRange, "offset %d is past the end of the text", p)
	}
	within := p - ni.NodeStarts[k]
	if within >= ni.SegLen[k] {
		return Pos{}, k, merrors.New(merrors.OutOfRange, "offset %d lands on a '$' separator, not a node", p)
	}
	base := ni.NodeNames[k]
	base.Offset = within
	return base, k, nil
}
