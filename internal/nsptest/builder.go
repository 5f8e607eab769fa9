// Package nsptest builds synthetic NSP containers for tests.
package nsptest

import (
	"bytes"
	"encoding/binary"
)

// DefaultDate is a timestamp in the layout used by NSP headers.
const DefaultDate = "May 26 23:57:43 1995"

type chunk struct {
	id   string
	data []byte
}

// Builder assembles an NSP container chunk by chunk.
type Builder struct {
	chunks []chunk
	// SizeDelta is added to the computed declared container size.
	SizeDelta int
	// Magic replaces the FORMDS16 tag when set.
	Magic string
	// Cut drops that many bytes from the end of the encoded container.
	Cut int
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Chunk appends a raw chunk with the given four character id.
func (b *Builder) Chunk(id string, data []byte) *Builder {
	b.chunks = append(b.chunks, chunk{id: id, data: append([]byte(nil), data...)})

	return b
}

// Header appends a HEDR or HDR8 chunk.
func (b *Builder) Header(id, date string, rate, count uint32, maxAbs ...uint16) *Builder {
	return b.Chunk(id, HeaderPayload(date, rate, count, maxAbs...))
}

// Note appends a NOTE chunk.
func (b *Builder) Note(text string) *Builder {
	return b.Chunk("NOTE", []byte(text))
}

// Mono appends a single channel data chunk.
func (b *Builder) Mono(id string, samples []int16) *Builder {
	return b.Chunk(id, PCM(samples))
}

// Interleaved appends an SDAB style chunk alternating first and second.
func (b *Builder) Interleaved(id string, first, second []int16) *Builder {
	mixed := make([]int16, 0, len(first)+len(second))
	for i := range first {
		mixed = append(mixed, first[i], second[i])
	}

	return b.Mono(id, mixed)
}

// DeclaredSize returns the container size written after the tag.
func (b *Builder) DeclaredSize() uint32 {
	var n int
	for _, c := range b.chunks {
		n += 8 + len(c.data) + len(c.data)%2
	}

	return uint32(n + b.SizeDelta)
}

// Bytes encodes the container.
func (b *Builder) Bytes() []byte {
	var buf bytes.Buffer

	magic := "FORMDS16"
	if b.Magic != "" {
		magic = b.Magic
	}

	buf.WriteString(magic)
	binary.Write(&buf, binary.LittleEndian, b.DeclaredSize())

	for _, c := range b.chunks {
		id := []byte(c.id + "    ")[:4]
		buf.Write(id)
		binary.Write(&buf, binary.LittleEndian, uint32(len(c.data)))
		buf.Write(c.data)

		if len(c.data)%2 == 1 {
			buf.WriteByte(0)
		}
	}

	out := buf.Bytes()

	return out[:len(out)-min(b.Cut, len(out))]
}

// Reader returns the encoded container as a reader.
func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}

// HeaderPayload encodes a HEDR/HDR8 payload. The date is padded or cut to
// the 20 byte field.
func HeaderPayload(date string, rate, count uint32, maxAbs ...uint16) []byte {
	out := make([]byte, 28+2*len(maxAbs))

	field := []byte(date)
	if len(field) > 20 {
		field = field[:20]
	}

	copy(out, field)

	for i := len(field); i < 20; i++ {
		out[i] = ' '
	}

	binary.LittleEndian.PutUint32(out[20:], rate)
	binary.LittleEndian.PutUint32(out[24:], count)

	for i, v := range maxAbs {
		binary.LittleEndian.PutUint16(out[28+2*i:], v)
	}

	return out
}

// PCM encodes samples as little-endian 16-bit values.
func PCM(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}

	return out
}

// Ramp returns n samples counting up from start.
func Ramp(n int, start int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = start + int16(i)
	}

	return out
}
