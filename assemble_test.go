package nsp

import (
	"runtime"
	"testing"

	"github.com/cwbudde/nsp/internal/nsptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleZeroFillsUnsuppliedChannels(t *testing.T) {
	a := nsptest.Ramp(5, 1)
	three := nsptest.Ramp(5, 300)

	set := readTestChunks(t, nsptest.New().
		Mono("SDA_", a).
		Mono("SD_3", three))

	out, err := Assemble(set, 5, []Channel{0, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Dims())
	assert.Equal(t, a, out.Column(0))
	assert.Equal(t, make([]int16, 5), out.Column(1))
	assert.Equal(t, three, out.Column(2))
}

func TestAssembleDeinterleavesSDAB(t *testing.T) {
	a := []int16{1, 2, 3, 4}
	b := []int16{-1, -2, -3, -4}

	set := readTestChunks(t, nsptest.New().Interleaved("SDAB", a, b))

	out, err := Assemble(set, 4, []Channel{0, 1})
	require.NoError(t, err)
	assert.Equal(t, a, out.Column(0))
	assert.Equal(t, b, out.Column(1))
	assert.Equal(t, []int16{1, -1, 2, -2, 3, -3, 4, -4}, out.Data)

	out, err = Assemble(set, 4, []Channel{1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Dims())
	assert.Equal(t, b, out.Vector())

	out, err = Assemble(set, 4, []Channel{1, 0})
	require.NoError(t, err)
	assert.Equal(t, b, out.Column(0))
	assert.Equal(t, a, out.Column(1))
}

func TestAssembleDuplicateSelection(t *testing.T) {
	a := nsptest.Ramp(3, 10)
	set := readTestChunks(t, nsptest.New().Mono("SDA_", a))

	out, err := Assemble(set, 3, []Channel{0, 0})
	require.NoError(t, err)
	assert.Equal(t, a, out.Column(0))
	assert.Equal(t, a, out.Column(1))
}

func TestAssembleLaterChunkWins(t *testing.T) {
	mono := nsptest.Ramp(2, 50)
	a := []int16{1, 2}
	b := []int16{3, 4}

	set := readTestChunks(t, nsptest.New().
		Mono("SD_B", mono).
		Interleaved("SDAB", a, b))

	out, err := Assemble(set, 2, []Channel{1})
	require.NoError(t, err)
	assert.Equal(t, b, out.Vector())
}

func TestAssembleDataLength(t *testing.T) {
	set := readTestChunks(t, nsptest.New().
		Mono("SDA_", nsptest.Ramp(3, 0)).
		Mono("SD_2", nsptest.Ramp(7, 0)).
		Chunk("SD_4", []byte{1, 2, 3}))

	_, err := Assemble(set, 4, []Channel{0})
	require.ErrorIs(t, err, ErrDataLength)

	_, err = Assemble(set, 3, []Channel{4})
	require.ErrorIs(t, err, ErrDataLength)

	// unselected chunks aren't checked
	out, err := Assemble(set, 3, []Channel{0})
	require.NoError(t, err)
	assert.Equal(t, nsptest.Ramp(3, 0), out.Vector())
}

func TestAssembleEmpty(t *testing.T) {
	set := readTestChunks(t, nsptest.New().Mono("SDA_", nil))

	out, err := Assemble(set, 0, []Channel{0})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Frames)
	assert.Empty(t, out.Data)
}

func TestAssembleSampleCountBeyondData(t *testing.T) {
	set := readTestChunks(t, nsptest.New().Mono("SDA_", nsptest.Ramp(2, 0)))

	var before, after runtime.MemStats

	runtime.ReadMemStats(&before)

	_, err := Assemble(set, 1<<30, []Channel{0})
	require.ErrorIs(t, err, ErrDataLength)

	// only zero filled columns selected, nothing validates the count
	_, err = Assemble(set, 1<<30, []Channel{3, 4})
	require.ErrorIs(t, err, ErrDataLength)

	runtime.ReadMemStats(&after)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	out, err := Assemble(set, 2, []Channel{3})
	require.NoError(t, err)
	assert.Equal(t, make([]int16, 2), out.Vector())
}
