package huffman

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidLine is wrapped by the errors reported for lines that Counter
// could not read and therefore skipped.
var ErrInvalidLine = errors.New("invalid line")

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountSymbols builds a FrequencyTable from a sequence of symbols.
func CountSymbols(symbols []Symbol) FrequencyTable {
	ft := make(FrequencyTable)
	for _, symbol := range symbols {
		ft.Add(symbol)
	}
	return ft
}

// Add records one more occurrence of symbol.
func (ft FrequencyTable) Add(symbol Symbol) {
	ft[symbol]++
}

// Merge adds every count in other to this table.
func (ft FrequencyTable) Merge(other FrequencyTable) {
	for symbol, count := range other {
		ft[symbol] += count
	}
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	keys := maps.Keys(ft)
	slices.Sort(keys)
	return keys
}

// Total returns the total number of symbol occurrences.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// Counter scans text line by line and tallies its symbols.
//
// A line that cannot be read as UTF-8 text is reported to Logger and skipped;
// counting resumes with the next line.  Line terminators are not counted.
//
type Counter struct {
	// Logger receives one warning per skipped line.  If nil, skipped lines
	// are not reported anywhere.
	Logger *zerolog.Logger
}

func (c Counter) logger() *zerolog.Logger {
	if c.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.Logger
}

// CountLines builds a FrequencyTable from every readable line of r.  Only an
// error from r itself aborts the scan.
func (c Counter) CountLines(r io.Reader) (FrequencyTable, error) {
	ft := make(FrequencyTable)
	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return ft, fmt.Errorf("huffman: failed to read line %d: %w", lineNum+1, err)
		}
		if line == "" && err == io.EOF {
			return ft, nil
		}

		lineNum++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if utf8.ValidString(line) {
			for _, ch := range line {
				ft.Add(Symbol(ch))
			}
		} else {
			lineErr := fmt.Errorf("%w: line %d is not valid UTF-8", ErrInvalidLine, lineNum)
			c.logger().Warn().Err(lineErr).Int("line", lineNum).Msg("skipping line")
		}

		if err == io.EOF {
			return ft, nil
		}
	}
}

// CountFiles counts the lines of every named file concurrently and returns
// the merged FrequencyTable.
func (c Counter) CountFiles(ctx context.Context, paths ...string) (FrequencyTable, error) {
	tables := make([]FrequencyTable, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for index, path := range paths {
		index, path := index, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("huffman: failed to open %q: %w", path, err)
			}
			defer f.Close()

			log := c.logger().With().Str("path", path).Logger()
			ft, err := Counter{Logger: &log}.CountLines(f)
			if err != nil {
				return fmt.Errorf("huffman: %q: %w", path, err)
			}
			tables[index] = ft
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(FrequencyTable)
	for _, ft := range tables {
		merged.Merge(ft)
	}
	return merged, nil
}
