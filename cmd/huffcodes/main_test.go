package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"huffcodes"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRun_Stdin(t *testing.T) {
	stdout, _, err := runApp(t, "aab\nb\n")
	require.NoError(t, err)
	assert.Equal(t, "a: 0\nb: 1\n", stdout)
}

func TestRun_FilesAndMessage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	text := strings.Repeat("C", 32) + strings.Repeat("D", 42) + "\n" +
		strings.Repeat("E", 120) + strings.Repeat("K", 7) + "\n" +
		strings.Repeat("L", 42) + strings.Repeat("M", 24) + "\n" +
		strings.Repeat("U", 37) + strings.Repeat("Z", 2) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	stdout, _, err := runApp(t, "", "--message", "MELCDULKUMZ", "--pack", path)
	require.NoError(t, err)

	expect := strings.Join([]string{
		"C: 1110\n",
		"D: 101\n",
		"E: 0\n",
		"K: 111101\n",
		"L: 110\n",
		"M: 11111\n",
		"U: 100\n",
		"Z: 111100\n",
		"encoded: 111110110111010110011011110110011111111100\n",
		"packed: fb759bd9ff00\n",
	}, "")
	assert.Equal(t, expect, stdout)
}

func TestRun_UnknownSymbol(t *testing.T) {
	_, _, err := runApp(t, "abc\n", "-m", "abd")
	require.Error(t, err)

	var unknown *huffman.UnknownSymbolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, huffman.Symbol('d'), unknown.Symbol)
}

func TestRun_Debug(t *testing.T) {
	_, stderr, err := runApp(t, "ab\n", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "counted input")
	assert.Contains(t, stderr, "Tree{\n")
}
