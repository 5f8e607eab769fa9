package nsp

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Options controls what Read decodes and returns.
type Options struct {
	// Channels selects the channels to return, in column order. Leave empty
	// to get every channel present in the file, ascending.
	Channels []Channel
	// WithHeader fills Result.Header.
	WithHeader bool
	// WithNote fills Result.Note.
	WithNote bool
	// ZeroFillMissing returns silent columns for requested channels the file
	// doesn't carry instead of failing with ErrChannelNotAvailable.
	ZeroFillMissing bool
	// HeaderOnly stops reading after the header chunk. The result only
	// carries the header.
	HeaderOnly bool
	// Logger receives debug traces of the chunk walk. Optional.
	Logger logrus.FieldLogger
}

// Result is the outcome of Read.
type Result struct {
	// SampleRate in samples per second.
	SampleRate uint32
	// Samples holds the selected channels. Nil for header-only reads.
	Samples *Samples
	// Header is set when Options.WithHeader or Options.HeaderOnly is set.
	Header *Header
	// Note is the NOTE chunk text when Options.WithNote is set, empty if the
	// file has none.
	Note string
}

// Read decodes an NSP file from r. Opening and closing the stream is left to
// the caller.
func Read(r io.Reader, opts Options) (*Result, error) {
	for _, c := range opts.Channels {
		if !c.valid() {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidChannelSpec, c)
		}
	}

	log := loggerOrDiscard(opts.Logger)

	set, err := NewChunkReader(r, log).ReadAll(opts.HeaderOnly)
	if err != nil {
		return nil, err
	}

	header, err := DecodeHeader(set)
	if err != nil {
		return nil, err
	}

	if opts.HeaderOnly {
		return &Result{Header: header}, nil
	}

	res := &Result{SampleRate: header.SampleRate}

	if opts.WithHeader {
		res.Header = header
	}

	if opts.WithNote {
		res.Note, err = DecodeNote(set)
		if err != nil {
			return nil, err
		}
	}

	if len(set.DataChunks()) == 0 {
		return nil, ErrNoData
	}

	selected, err := selectChannels(opts.Channels, set, !opts.ZeroFillMissing)
	if err != nil {
		return nil, err
	}

	log.WithField("channels", selected).Debug("nsp: assembling channels")

	res.Samples, err = Assemble(set, int(header.SampleCount), selected)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// ReadHeader reads only as far as the header chunk and decodes it.
func ReadHeader(r io.Reader) (*Header, error) {
	res, err := Read(r, Options{HeaderOnly: true})
	if err != nil {
		return nil, err
	}

	return res.Header, nil
}

// DecodeNote returns the text of the NOTE chunk of the set, or an empty
// string if there is none.
func DecodeNote(set *ChunkSet) (string, error) {
	chunk := set.Get(ChunkNOTE)
	if chunk == nil {
		return "", nil
	}

	if !utf8.Valid(chunk.Data) {
		return "", fmt.Errorf("%w: %d bytes", ErrMalformedNote, len(chunk.Data))
	}

	return string(chunk.Data), nil
}
