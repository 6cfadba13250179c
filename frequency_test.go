package huffman

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSymbols(t *testing.T) {
	ft := CountSymbols(Symbols("abracadabra"))
	expect := FrequencyTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if diff := cmp.Diff(expect, ft); diff != "" {
		t.Errorf("wrong table (-expect +actual):\n%s", diff)
	}
	assert.Equal(t, uint64(11), ft.Total())
	assert.Equal(t, []Symbol{'a', 'b', 'c', 'd', 'r'}, ft.Symbols())
}

func TestFrequencyTable_Merge(t *testing.T) {
	ft := FrequencyTable{'a': 1, 'b': 2}
	ft.Merge(FrequencyTable{'b': 3, 'c': 4})
	assert.Equal(t, FrequencyTable{'a': 1, 'b': 5, 'c': 4}, ft)
}

func TestCounter_CountLines(t *testing.T) {
	ft, err := Counter{}.CountLines(strings.NewReader("aab\nb"))
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{'a': 2, 'b': 2}, ft)
}

func TestCounter_CountLines_LineEndings(t *testing.T) {
	ft, err := Counter{}.CountLines(strings.NewReader("ab\r\ncd\n\nab\n"))
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{'a': 2, 'b': 2, 'c': 1, 'd': 1}, ft)
}

func TestCounter_CountLines_Empty(t *testing.T) {
	ft, err := Counter{}.CountLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ft)
}

func TestCounter_CountLines_SkipsInvalidLine(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	input := "ab\n\xff\xfe\ncd\n\xc3"
	ft, err := Counter{Logger: &logger}.CountLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{'a': 1, 'b': 1, 'c': 1, 'd': 1}, ft)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"line":2`)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[1], `"line":4`)
	assert.Contains(t, lines[1], ErrInvalidLine.Error())
}

func TestCounter_CountLines_ReadError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("ab\n"), iotest.ErrReader(errBoom))

	ft, err := Counter{}.CountLines(r)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, FrequencyTable{'a': 1, 'b': 1}, ft)
}

func TestCounter_CountFiles(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("aab\n"), 0o644))
	require.NoError(t, os.WriteFile(two, []byte("b\n"), 0o644))

	ft, err := Counter{}.CountFiles(context.Background(), one, two)
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{'a': 2, 'b': 2}, ft)

	_, err = Counter{}.CountFiles(context.Background(), one, filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
