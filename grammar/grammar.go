// Package grammar provides random-access over the text encoded by a
// straight-line grammar (an SLP): a context-free grammar in which every
// non-terminal derives exactly one string. The grammar is built
// externally (out of scope here) and loaded read-only; this package
// only exposes Len and At, which the MEM resolver uses for longest
// common extension (LCE) queries.
package grammar

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gfatag/maria/merrors"
)

// numTerminals is the terminal alphabet size: values below it are raw
// bytes, values at or above it index a rule (value - numTerminals).
const numTerminals = 256

// Grammar is an immutable, shared read-only straight-line grammar.
type Grammar struct {
	left, right []int
	size        []int
	root        int
}

// Load parses a grammar file: one rule per line, "left right" as
// non-negative integers. The last line is the root. Values < 256 are
// terminal bytes; values >= 256 refer to rule (value-256).
func Load(r io.Reader) (*Grammar, error) {
	var left, right, size []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, merrors.New(merrors.BadGrammar,
				"grammar line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		l, err1 := strconv.Atoi(fields[0])
		rgt, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || l < 0 || rgt < 0 {
			return nil, merrors.New(merrors.BadGrammar,
				"grammar line %d: cannot parse symbols %q", lineNo, line)
		}

		leftSize := 1
		if l >= numTerminals {
			idx := l - numTerminals
			if idx < 0 || idx >= len(size) {
				return nil, merrors.New(merrors.BadGrammar,
					"grammar line %d: left symbol %d references undefined rule", lineNo, l)
			}
			leftSize = size[idx]
		}
		rightSize := 1
		if rgt >= numTerminals {
			idx := rgt - numTerminals
			if idx < 0 || idx >= len(size) {
				return nil, merrors.New(merrors.BadGrammar,
					"grammar line %d: right symbol %d references undefined rule", lineNo, rgt)
			}
			rightSize = size[idx]
		}

		left = append(left, l)
		right = append(right, rgt)
		size = append(size, leftSize+rightSize)
	}
	if err := scanner.Err(); err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "reading grammar")
	}
	if len(left) == 0 {
		return nil, merrors.New(merrors.BadGrammar, "grammar file has no rules")
	}

	return &Grammar{left: left, right: right, size: size, root: len(left) - 1}, nil
}

// Len returns the total expansion length of the root.
func (g *Grammar) Len() int { return g.size[g.root] }

// At returns the byte at text position i, 0 <= i < Len(), by descending
// left/right through cached rule sizes. Worst case O(height); the
// resolver issues only O(log n) independent queries per MEM so no
// amortized-access structure is needed on top of this.
func (g *Grammar) At(i int) (byte, error) {
	if i < 0 || i >= g.Len() {
		return 0, merrors.New(merrors.OutOfRange, "grammar.At: index %d out of range [0,%d)", i, g.Len())
	}

	symbol := g.root + numTerminals
	skipped := 0
	for symbol >= numTerminals {
		idx := symbol - numTerminals
		leftSym := g.left[idx]
		leftSize := 1
		if leftSym >= numTerminals {
			leftSize = g.size[leftSym-numTerminals]
		}
		if skipped+leftSize > i {
			symbol = leftSym
		} else {
			skipped += leftSize
			symbol = g.right[idx]
		}
	}
	return byte(symbol), nil
}
