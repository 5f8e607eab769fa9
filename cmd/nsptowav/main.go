// This tool converts an NSP recording into a 16-bit PCM wav or aiff file.
// The output defaults to the input path with a .wav extension.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/nsp"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
)

const (
	bitDepth      = 16
	wavFormatPCM  = 1
	defaultOutExt = ".wav"
)

type cli struct {
	Input    string `arg:"" name:"input" help:"NSP file to convert."`
	Output   string `arg:"" name:"output" optional:"" help:"Destination .wav or .aif file."`
	Channels string `short:"c" help:"Channels to export, e.g. a,b,3. Defaults to every channel in the file."`
	ZeroFill bool   `help:"Write silence for requested channels the file doesn't carry."`
	Verbose  bool   `short:"v" help:"Log chunk parsing details."`
}

type pcmEncoder interface {
	Write(buf *audio.IntBuffer) error
	Close() error
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
		kong.Name("nsptowav"),
		kong.Description("Convert NSP voice recordings to wav or aiff."),
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

	channels, err := nsp.ParseChannelList(c.Channels)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	outPath := c.Output
	if outPath == "" {
		outPath = outputPath(c.Input)
	}

	res, err := readRecording(c.Input, nsp.Options{
		Channels:        channels,
		ZeroFillMissing: c.ZeroFill,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	err = writeRecording(outPath, res)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Converted %s to %s (channels %v @ %d Hz)\n",
		c.Input, outPath, res.Samples.Channels, res.SampleRate)

	return nil
}

func readRecording(path string, opts nsp.Options) (*nsp.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	res, err := nsp.Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return res, nil
}

func writeRecording(path string, res *nsp.Result) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer outFile.Close()

	rate := int(res.SampleRate)
	numChans := res.Samples.NumChannels()

	var encoder pcmEncoder
	if isAIFF(path) {
		encoder = aiff.NewEncoder(outFile, rate, bitDepth, numChans)
	} else {
		encoder = wav.NewEncoder(outFile, rate, bitDepth, numChans, wavFormatPCM)
	}

	err = encoder.Write(res.Samples.IntBuffer(rate))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// close the encoder to make sure the headers are properly set
	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	return nil
}

func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + defaultOutExt
}

func isAIFF(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		return true
	default:
		return false
	}
}
