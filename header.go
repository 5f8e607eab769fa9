package nsp

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const (
	headerDateLen    = 20
	headerFixedLen   = 28
	headerDateLayout = "Jan _2 15:04:05 2006"
)

// HeaderVariant tells which of the two header chunks a file carries.
type HeaderVariant int

const (
	// VariantHEDR is the HEDR header chunk.
	VariantHEDR HeaderVariant = iota
	// VariantHDR8 is the HDR8 header chunk used by 8 channel recorders.
	VariantHDR8
)

func (v HeaderVariant) String() string {
	switch v {
	case VariantHEDR:
		return ChunkHEDR.String()
	case VariantHDR8:
		return ChunkHDR8.String()
	default:
		return fmt.Sprintf("HeaderVariant(%d)", int(v))
	}
}

// Header is the decoded HEDR/HDR8 chunk.
type Header struct {
	Variant HeaderVariant
	// Date is the recording date/time.
	Date time.Time
	// SampleRate in samples per second.
	SampleRate uint32
	// SampleCount is the number of samples per channel.
	SampleCount uint32
	// MaxAbsValues holds the maximum absolute sample value of each channel
	// encoded by the header variant.
	MaxAbsValues []uint16
}

// Duration returns the length of the recording.
func (h *Header) Duration() time.Duration {
	if h == nil || h.SampleRate == 0 {
		return 0
	}

	return time.Duration(h.SampleCount) * time.Second / time.Duration(h.SampleRate)
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}

	out := *h
	out.MaxAbsValues = append([]uint16(nil), h.MaxAbsValues...)

	return &out
}

// headerChunk returns the header chunk of the set, preferring HEDR.
func headerChunk(set *ChunkSet) (*Chunk, error) {
	if c := set.Get(ChunkHEDR); c != nil {
		return c, nil
	}

	if c := set.Get(ChunkHDR8); c != nil {
		return c, nil
	}

	return nil, ErrMissingHeader
}

// DecodeHeader decodes the header chunk of the set.
func DecodeHeader(set *ChunkSet) (*Header, error) {
	chunk, err := headerChunk(set)
	if err != nil {
		return nil, err
	}

	return decodeHeaderChunk(chunk)
}

func decodeHeaderChunk(chunk *Chunk) (*Header, error) {
	h := &Header{}

	switch chunk.ID {
	case ChunkHEDR:
		h.Variant = VariantHEDR
	case ChunkHDR8:
		h.Variant = VariantHDR8
	default:
		return nil, fmt.Errorf("%w: %s is not a header chunk", ErrMalformedHeader, chunk.ID)
	}

	data := chunk.Data
	if len(data) < headerFixedLen {
		return nil, fmt.Errorf("%w: %s chunk is %d bytes, want at least %d",
			ErrMalformedHeader, chunk.ID, len(data), headerFixedLen)
	}

	if (len(data)-headerFixedLen)%2 != 0 {
		return nil, fmt.Errorf("%w: %s max abs values span an odd number of bytes",
			ErrMalformedHeader, chunk.ID)
	}

	date, err := parseHeaderDate(data[:headerDateLen])
	if err != nil {
		return nil, err
	}

	h.Date = date
	h.SampleRate = binary.LittleEndian.Uint32(data[20:24])
	h.SampleCount = binary.LittleEndian.Uint32(data[24:28])

	tail := data[headerFixedLen:]

	h.MaxAbsValues = make([]uint16, len(tail)/2)
	for i := range h.MaxAbsValues {
		h.MaxAbsValues[i] = binary.LittleEndian.Uint16(tail[2*i:])
	}

	return h, nil
}

// parseHeaderDate parses timestamps such as "May 26 23:57:43 1995".
func parseHeaderDate(field []byte) (time.Time, error) {
	s := strings.TrimSpace(nullTermStr(field))

	t, err := time.Parse(headerDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q: %w", ErrMalformedHeader, s, err)
	}

	return t, nil
}
