// Command jellycat reads a stream of length-prefixed Jelly frames from
// a file and prints every materialized triple or quad as an N-Quads
// style line, one per row.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/geoknoesis/jelly"
)

func main() {
	app := &cli.App{
		Name:      "jellycat",
		Usage:     "print the triples/quads of a Jelly stream file",
		ArgsUsage: "<file>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one file argument", 2)
	}
	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("open %s: %v", c.Args().First(), err), 1)
	}
	defer f.Close()

	dec := jelly.NewDecoder[string, [3]string, [4]string, jelly.NoState](jelly.StringMaterializer{})
	handler := jelly.HandlerFuncs[[3]string, [4]string]{
		OnTriple: func(t [3]string) error {
			fmt.Fprintf(c.App.Writer, "%s %s %s .\n", t[0], t[1], t[2])
			return nil
		},
		OnQuad: func(q [4]string) error {
			if q[3] != "" {
				fmt.Fprintf(c.App.Writer, "%s %s %s %s .\n", q[0], q[1], q[2], q[3])
			} else {
				fmt.Fprintf(c.App.Writer, "%s %s %s .\n", q[0], q[1], q[2])
			}
			return nil
		},
	}

	reader := jelly.NewFrameReader(f)
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("read frame: %v", err), 1)
		}
		if err := dec.HandleFrame(frame, handler); err != nil {
			return cli.Exit(fmt.Sprintf("decode frame: %v", err), 1)
		}
	}
}
