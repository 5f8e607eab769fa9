package nsp

import "fmt"

// ChunkID identifies one of the chunk types an NSP container may hold.
type ChunkID int

const (
	ChunkHEDR ChunkID = iota
	ChunkHDR8
	ChunkNOTE
	ChunkSDA
	ChunkSDB
	ChunkSDAB
	ChunkSD2
	ChunkSD3
	ChunkSD4
	ChunkSD5
	ChunkSD6
	ChunkSD7
	ChunkSD8

	numChunkIDs
)

var chunkFourCC = [numChunkIDs][4]byte{
	ChunkHEDR: {'H', 'E', 'D', 'R'},
	ChunkHDR8: {'H', 'D', 'R', '8'},
	ChunkNOTE: {'N', 'O', 'T', 'E'},
	ChunkSDA:  {'S', 'D', 'A', '_'},
	ChunkSDB:  {'S', 'D', '_', 'B'},
	ChunkSDAB: {'S', 'D', 'A', 'B'},
	ChunkSD2:  {'S', 'D', '_', '2'},
	ChunkSD3:  {'S', 'D', '_', '3'},
	ChunkSD4:  {'S', 'D', '_', '4'},
	ChunkSD5:  {'S', 'D', '_', '5'},
	ChunkSD6:  {'S', 'D', '_', '6'},
	ChunkSD7:  {'S', 'D', '_', '7'},
	ChunkSD8:  {'S', 'D', '_', '8'},
}

// LookupChunkID maps a four character code to its ChunkID.
// The boolean is false for codes outside the known set.
func LookupChunkID(code [4]byte) (ChunkID, bool) {
	for id, cc := range chunkFourCC {
		if cc == code {
			return ChunkID(id), true
		}
	}

	return 0, false
}

// FourCC returns the on-disk code of the chunk ID.
func (id ChunkID) FourCC() [4]byte {
	if id < 0 || id >= numChunkIDs {
		return [4]byte{}
	}

	return chunkFourCC[id]
}

func (id ChunkID) String() string {
	if id < 0 || id >= numChunkIDs {
		return fmt.Sprintf("ChunkID(%d)", int(id))
	}

	return string(chunkFourCC[id][:])
}

// IsHeader reports whether the chunk is one of the two header variants.
func (id ChunkID) IsHeader() bool {
	return id == ChunkHEDR || id == ChunkHDR8
}

// IsData reports whether the chunk carries PCM samples.
func (id ChunkID) IsData() bool {
	return id >= ChunkSDA && id < numChunkIDs
}

// Chunk is a decoded chunk frame. Data never includes the pad byte.
type Chunk struct {
	ID     ChunkID
	Length uint32
	Data   []byte
}

// FrameSize returns the number of container bytes the chunk occupies,
// including its 8 byte header and the pad byte of odd-length payloads.
func (c *Chunk) FrameSize() uint64 {
	return 8 + uint64(c.Length) + uint64(c.Length%2)
}

// ChunkSet holds the chunks of one container, at most one per ID.
type ChunkSet struct {
	// DeclaredSize is the size announced after the FORMDS16 tag.
	DeclaredSize uint32
	// Consumed is the sum of the frame sizes of all chunks read.
	Consumed uint64

	chunks [numChunkIDs]*Chunk
	order  []ChunkID
}

func (s *ChunkSet) put(c *Chunk) {
	if s.chunks[c.ID] == nil {
		s.order = append(s.order, c.ID)
	}

	s.chunks[c.ID] = c
}

// Get returns the chunk stored for id, or nil.
func (s *ChunkSet) Get(id ChunkID) *Chunk {
	if s == nil || id < 0 || id >= numChunkIDs {
		return nil
	}

	return s.chunks[id]
}

// Has reports whether a chunk with the given id was read.
func (s *ChunkSet) Has(id ChunkID) bool {
	return s.Get(id) != nil
}

// IDs returns the IDs of the stored chunks in the order they were first seen.
func (s *ChunkSet) IDs() []ChunkID {
	if s == nil {
		return nil
	}

	return append([]ChunkID(nil), s.order...)
}

// DataChunks returns the stored data chunks in the order they were first
// seen.
func (s *ChunkSet) DataChunks() []*Chunk {
	if s == nil {
		return nil
	}

	var out []*Chunk

	for _, id := range s.order {
		if id.IsData() {
			out = append(out, s.chunks[id])
		}
	}

	return out
}
