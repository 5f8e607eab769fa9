package nsp

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Assemble builds the sample matrix of the selected channels from the data
// chunks of the set. The matrix starts zeroed, so selected channels that no
// chunk supplies stay silent. Chunks supplying only unselected channels are
// skipped.
func Assemble(set *ChunkSet, frames int, selected []Channel) (*Samples, error) {
	columns := make(map[Channel][]int, len(selected))
	for col, c := range selected {
		columns[c] = append(columns[c], col)
	}

	err := checkFrames(set, frames, columns)
	if err != nil {
		return nil, err
	}

	out := newSamples(frames, selected)

	for _, chunk := range set.DataChunks() {
		src, ok := SourceOf(chunk.ID)
		if !ok {
			continue
		}

		switch src := src.(type) {
		case Mono:
			out.fill(chunk.Data, 1, 0, columns[src.Channel])
		case Interleaved:
			out.fill(chunk.Data, 2, 0, columns[src.First])
			out.fill(chunk.Data, 2, 1, columns[src.Second])
		}
	}

	return out, nil
}

// checkFrames validates the length of every selected data chunk and bounds
// frames by the samples the data chunks really hold, so the matrix is never
// larger than the data read.
func checkFrames(set *ChunkSet, frames int, columns map[Channel][]int) error {
	available := 0

	for _, chunk := range set.DataChunks() {
		src, ok := SourceOf(chunk.ID)
		if !ok {
			continue
		}

		channels := src.Channels()
		available = max(available, len(chunk.Data)/(2*len(channels)))

		if !slices.ContainsFunc(channels, func(c Channel) bool { return len(columns[c]) > 0 }) {
			continue
		}

		err := checkDataLength(chunk, frames, len(channels))
		if err != nil {
			return err
		}
	}

	if frames > available {
		return fmt.Errorf("%w: %d samples declared, data chunks hold at most %d",
			ErrDataLength, frames, available)
	}

	return nil
}

// fill copies every stride-th little-endian sample of data, starting at
// offset, into each of the passed columns.
func (s *Samples) fill(data []byte, stride, offset int, cols []int) {
	width := len(s.Channels)

	for _, col := range cols {
		for frame := 0; frame < s.Frames; frame++ {
			pos := 2 * (frame*stride + offset)
			s.Data[frame*width+col] = int16(binary.LittleEndian.Uint16(data[pos:]))
		}
	}
}

func checkDataLength(chunk *Chunk, frames, channels int) error {
	want := frames * channels * 2
	if len(chunk.Data) != want {
		return fmt.Errorf("%w: %s chunk is %d bytes, want %d (%d samples x %d channels)",
			ErrDataLength, chunk.ID, len(chunk.Data), want, frames, channels)
	}

	return nil
}
