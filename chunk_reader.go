package nsp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/sirupsen/logrus"
)

// containerTag is the 8 byte tag every NSP file starts with.
var containerTag = []byte("FORMDS16")

// chunkHeaderSize is the size of a chunk ID plus its length field.
const chunkHeaderSize = 8

// offsetReader counts the bytes read from the underlying stream.
type offsetReader struct {
	r   io.Reader
	off uint64
}

func (o *offsetReader) Read(p []byte) (int, error) {
	n, err := o.r.Read(p)
	o.off += uint64(n)

	return n, err
}

// ChunkReader walks the chunk frames of an NSP container.
type ChunkReader struct {
	r      *offsetReader
	parser *riff.Parser
	log    logrus.FieldLogger

	declaredSize uint32
	consumed     uint64
	readTag      bool
}

// NewChunkReader creates a reader over r. The logger may be nil.
func NewChunkReader(r io.Reader, log logrus.FieldLogger) *ChunkReader {
	src := &offsetReader{r: r}

	return &ChunkReader{
		r:      src,
		parser: riff.New(src),
		log:    loggerOrDiscard(log),
	}
}

// readContainerHeader validates the tag and reads the declared size.
// It is safe to call multiple times.
func (cr *ChunkReader) readContainerHeader() error {
	if cr.readTag {
		return nil
	}

	tag := make([]byte, len(containerTag))

	n, err := io.ReadFull(cr.r, tag)
	if err != nil || !bytes.Equal(tag, containerTag) {
		return fmt.Errorf("%w: tag %q", ErrInvalidContainer, tag[:n])
	}

	err = binary.Read(cr.r, binary.LittleEndian, &cr.declaredSize)
	if err != nil {
		return fmt.Errorf("%w: failed to read container size: %w", ErrTruncatedFile, err)
	}

	cr.readTag = true
	cr.log.WithField("size", cr.declaredSize).Debug("nsp: container header")

	return nil
}

// Done reports whether the declared container size has been consumed.
func (cr *ChunkReader) Done() bool {
	return cr.readTag && cr.consumed >= uint64(cr.declaredSize)
}

// NextChunk reads the next chunk frame, skipping the pad byte of odd-length
// payloads. It returns io.EOF once the declared size has been consumed.
func (cr *ChunkReader) NextChunk() (*Chunk, error) {
	err := cr.readContainerHeader()
	if err != nil {
		return nil, err
	}

	if cr.Done() {
		return nil, io.EOF
	}

	start := cr.r.off

	// IDnSize drops errors on the size field, so the frame header length is
	// checked against the bytes actually read.
	code, length, err := cr.parser.IDnSize()
	if err == nil && cr.r.off-start < chunkHeaderSize {
		err = io.ErrUnexpectedEOF
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to read chunk header at offset %d: %w",
			ErrTruncatedFile, start, err)
	}

	id, ok := LookupChunkID(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChunk, code[:])
	}

	raw := &riff.Chunk{
		ID:   code,
		Size: int(length),
		R:    io.LimitReader(cr.r, int64(length)),
	}

	data, err := io.ReadAll(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s chunk: %w", id, err)
	}

	if !raw.IsFullyRead() {
		return nil, fmt.Errorf("%w: %s chunk holds %d of %d bytes", ErrTruncatedFile, id, raw.Pos, raw.Size)
	}

	if length%2 == 1 {
		_, err = io.CopyN(io.Discard, cr.r, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: missing pad byte after %s chunk: %w", ErrTruncatedFile, id, err)
		}
	}

	chunk := &Chunk{ID: id, Length: length, Data: data}
	cr.consumed += chunk.FrameSize()

	cr.log.WithFields(logrus.Fields{
		"chunk":    id.String(),
		"length":   length,
		"consumed": cr.consumed,
	}).Debug("nsp: chunk")

	return chunk, nil
}

// ReadAll reads every chunk of the container. With headerOnly set, reading
// stops right after the first HEDR or HDR8 chunk and the container size is
// not validated.
func (cr *ChunkReader) ReadAll(headerOnly bool) (*ChunkSet, error) {
	err := cr.readContainerHeader()
	if err != nil {
		return nil, err
	}

	set := &ChunkSet{DeclaredSize: cr.declaredSize}

	for !cr.Done() {
		chunk, err := cr.NextChunk()
		if err != nil {
			return nil, err
		}

		set.put(chunk)
		set.Consumed = cr.consumed

		if headerOnly && chunk.ID.IsHeader() {
			cr.log.Debug("nsp: header found, stopping early")
			return set, nil
		}
	}

	if cr.consumed != uint64(cr.declaredSize) {
		return nil, fmt.Errorf("%w: chunk frames span %d bytes, declared size is %d",
			ErrInvalidContainer, cr.consumed, cr.declaredSize)
	}

	return set, nil
}

// ReadChunks reads the chunk table of an NSP container from r.
func ReadChunks(r io.Reader, headerOnly bool) (*ChunkSet, error) {
	return NewChunkReader(r, nil).ReadAll(headerOnly)
}
