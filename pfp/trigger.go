package pfp

import (
	"bufio"
	"io"
	"strings"

	"github.com/gfatag/maria/merrors"
)

// TriggerSet is the fixed-length set of trigger strings (Σ_w) that mark
// phrase boundaries during prefix-free parsing.
type TriggerSet struct {
	Width int
	set   map[string]struct{}
}

// Contains reports whether window is a trigger.
func (t *TriggerSet) Contains(window []byte) bool {
	_, ok := t.set[string(window)]
	return ok
}

// Len returns the number of distinct trigger strings loaded.
func (t *TriggerSet) Len() int { return len(t.set) }

// LoadTriggers reads one trigger string per line; all lines must share
// the same length w. A single blank trailing line is tolerated.
func LoadTriggers(r io.Reader) (*TriggerSet, error) {
	scanner := bufio.NewScanner(r)
	set := make(map[string]struct{})
	width := -1
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if width == -1 {
			width = len(line)
		} else if len(line) != width {
			return nil, merrors.New(merrors.ParseError,
				"trigger %q has length %d, expected %d", line, len(line), width)
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "reading trigger file")
	}
	if len(set) == 0 {
		return nil, merrors.New(merrors.NoTriggers, "trigger file is empty")
	}
	return &TriggerSet{Width: width, set: set}, nil
}

// LoadTriggersFromLines is a convenience constructor used by tests and
// by callers that already hold trigger strings in memory.
func LoadTriggersFromLines(lines []string) (*TriggerSet, error) {
	return LoadTriggers(strings.NewReader(strings.Join(lines, "\n")))
}
