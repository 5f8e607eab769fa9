// This tool prints the header, the note and the chunk layout of NSP files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/nsp"
	"github.com/sirupsen/logrus"
)

type cli struct {
	Files   []string `arg:"" name:"file" help:"NSP files to inspect."`
	Chunks  bool     `help:"List the chunks of each file."`
	Note    bool     `help:"Print the attached note."`
	Verbose bool     `short:"v" help:"Log chunk parsing details."`
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var c cli

	parser, err := kong.New(&c,
		kong.Name("nspinfo"),
		kong.Description("Print the header of NSP voice recordings."),
		kong.Writers(out, out),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	for _, path := range c.Files {
		err := describe(path, c, logger, out)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func describe(path string, c cli, logger logrus.FieldLogger, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	headerOnly := !c.Chunks && !c.Note

	set, err := nsp.NewChunkReader(file, logger.WithField("file", path)).ReadAll(headerOnly)
	if err != nil {
		return err
	}

	h, err := nsp.DecodeHeader(set)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Variant: %s\n", h.Variant)
	fmt.Fprintf(out, "Date: %s\n", h.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "SampleRate: %d\n", h.SampleRate)
	fmt.Fprintf(out, "SampleCount: %d\n", h.SampleCount)
	fmt.Fprintf(out, "Duration: %s\n", h.Duration())
	fmt.Fprintf(out, "MaxAbsValues: %v\n", h.MaxAbsValues)

	if c.Note {
		text, err := nsp.DecodeNote(set)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Note: %s\n", text)
	}

	if c.Chunks {
		fmt.Fprintln(out, "Chunks:")

		for _, id := range set.IDs() {
			chunk := set.Get(id)
			fmt.Fprintf(out, "\t%s\t%d bytes\n", id, chunk.Length)
		}

		fmt.Fprintf(out, "Channels: %v\n", nsp.DefaultChannels(set))
	}

	return nil
}
