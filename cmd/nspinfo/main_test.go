package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/nsp"
	"github.com/cwbudde/nsp/internal/nsptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, b *nsptest.Builder) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "voice.nsp")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))

	return path
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	require.Error(t, err)
}

func TestRunPrintsHeader(t *testing.T) {
	path := writeFixture(t, nsptest.New().
		Header("HEDR", nsptest.DefaultDate, 8000, 4000, 120, 0).
		Chunk("JUNK", []byte{1, 2}))

	var out bytes.Buffer

	// header only mode never reaches the JUNK chunk
	err := run([]string{path}, &out)
	require.NoError(t, err)

	s := out.String()
	for _, want := range []string{
		"File: " + path,
		"Variant: HEDR",
		"Date: 1995-05-26 23:57:43",
		"SampleRate: 8000",
		"SampleCount: 4000",
		"Duration: 500ms",
		"MaxAbsValues: [120 0]",
	} {
		assert.Contains(t, s, want)
	}

	assert.NotContains(t, s, "Note:")
}

func TestRunPrintsChunksAndNote(t *testing.T) {
	path := writeFixture(t, nsptest.New().
		Header("HDR8", nsptest.DefaultDate, 8000, 2).
		Note("hoarse").
		Interleaved("SDAB", []int16{1, 2}, []int16{3, 4}).
		Mono("SD_4", []int16{5, 6}))

	var out bytes.Buffer

	err := run([]string{"--chunks", "--note", path}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Note: hoarse")
	assert.Contains(t, s, "\tHDR8\t28 bytes")
	assert.Contains(t, s, "\tSDAB\t8 bytes")
	assert.Contains(t, s, "\tSD_4\t4 bytes")
	assert.Contains(t, s, "Channels: [a b 4]")
}

func TestRunInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nsp")
	require.NoError(t, os.WriteFile(path, []byte("RIFF0000WAVE"), 0o644))

	var out bytes.Buffer

	err := run([]string{path}, &out)
	require.ErrorIs(t, err, nsp.ErrInvalidContainer)
}

func TestRunInvalidPath(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"/nonexistent/path.nsp"}, &out)
	require.Error(t, err)
}

func TestRunRejectsInvalidNote(t *testing.T) {
	path := writeFixture(t, nsptest.New().
		Header("HEDR", nsptest.DefaultDate, 8000, 0).
		Chunk("NOTE", []byte{0xff, 0xfe, 'x'}))

	var out bytes.Buffer

	err := run([]string{"--note", path}, &out)
	require.ErrorIs(t, err, nsp.ErrMalformedNote)
	assert.NotContains(t, out.String(), "Note:")
}
