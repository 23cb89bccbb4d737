package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gfatag/maria/merrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile is a small helper for laying out fixture files in a temp dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunIndexWritesTagFile(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeFile(t, dir, "g.gfa",
		"S\t1\tACG\nS\t2\tTT\nS\t3\tCG\nP\tp1\t1+,2+,3+\n")
	triggerPath := writeFile(t, dir, "triggers.txt", "TTC\n")

	require.NoError(t, runIndex(graphPath, triggerPath))

	data, err := os.ReadFile(graphPath + ".tag")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.Contains(string(data), ":"))
}

func TestRunIndexMissingGraphIsIoError(t *testing.T) {
	dir := t.TempDir()
	triggerPath := writeFile(t, dir, "triggers.txt", "TTC\n")

	err := runIndex(filepath.Join(dir, "missing.gfa"), triggerPath)
	assert.Error(t, err)
	assert.True(t, merrors.Is(err, merrors.IoError))
}

func TestRunIndexMissingTriggersIsIoError(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeFile(t, dir, "g.gfa", "S\t1\tACG\nP\tp1\t1+\n")

	err := runIndex(graphPath, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.True(t, merrors.Is(err, merrors.IoError))
}
