// Command huffcodes prints the Huffman code of a body of text, one
// "symbol: codeword" line per distinct symbol.
//
// Usage:
//
//     huffcodes [--message TEXT] [--pack] [--debug] [FILE...]
//
// With no FILE arguments, the text is read from standard input.
//
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "huffcodes: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "huffcodes",
		Usage:     "print the Huffman code of a body of text",
		ArgsUsage: "[FILE...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "encode `TEXT` with the computed code",
				EnvVars: []string{"HUFFCODES_MESSAGE"},
			},
			&cli.BoolFlag{
				Name:    "pack",
				Usage:   "also print the encoded message packed into hex bytes",
				EnvVars: []string{"HUFFCODES_PACK"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging and dump the tree",
				EnvVars: []string{"HUFFCODES_DEBUG"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("debug") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	counter := huffman.Counter{Logger: &logger}

	var ft huffman.FrequencyTable
	var err error
	if paths := c.Args().Slice(); len(paths) != 0 {
		ft, err = counter.CountFiles(c.Context, paths...)
	} else {
		ft, err = counter.CountLines(c.App.Reader)
	}
	if err != nil {
		return err
	}
	logger.Debug().
		Int("symbols", len(ft)).
		Uint64("total", ft.Total()).
		Msg("counted input")

	var e huffman.Encoder
	e.Init(ft)

	out := c.App.Writer
	if c.Bool("debug") {
		if _, err := e.Tree().Dump(c.App.ErrWriter); err != nil {
			return err
		}
	}
	if _, err := e.Table().Dump(out); err != nil {
		return err
	}

	if !c.IsSet("message") {
		return nil
	}

	encoded, err := e.EncodeMessage(huffman.Symbols(c.String("message")))
	if err != nil {
		return err
	}
	logger.Debug().
		Int("bits", encoded.Len()).
		Uint64("cost", e.Table().Cost(ft)).
		Msg("encoded message")
	fmt.Fprintf(out, "encoded: %s\n", encoded)

	if c.Bool("pack") {
		packed, err := encoded.Pack()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "packed: %s\n", hex.EncodeToString(packed))
	}
	return nil
}
