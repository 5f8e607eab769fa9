package nsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplesAccessors(t *testing.T) {
	s := &Samples{
		Frames:   3,
		Channels: []Channel{ChannelB, 4},
		Data:     []int16{1, 10, 2, 20, 3, 30},
	}

	assert.Equal(t, 2, s.NumChannels())
	assert.Equal(t, 2, s.Dims())
	assert.Nil(t, s.Vector())
	assert.Equal(t, int16(20), s.At(1, 1))
	assert.Equal(t, []int16{1, 2, 3}, s.Column(0))
	assert.Equal(t, []int16{10, 20, 30}, s.ChannelData(4))
	assert.Nil(t, s.ChannelData(ChannelA))
	assert.Nil(t, s.Column(2))
	assert.Nil(t, s.Column(-1))
}

func TestSamplesNil(t *testing.T) {
	var s *Samples

	assert.Equal(t, 0, s.NumChannels())
	assert.Nil(t, s.Column(0))
	assert.Nil(t, s.ChannelData(ChannelA))
	assert.Nil(t, s.IntBuffer(8000))
}

func TestSamplesIntBuffer(t *testing.T) {
	s := &Samples{
		Frames:   2,
		Channels: []Channel{ChannelA, ChannelB},
		Data:     []int16{-32768, 32767, 0, -1},
	}

	buf := s.IntBuffer(16000)
	require.NotNil(t, buf)

	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 16000, buf.Format.SampleRate)
	assert.Equal(t, 16, buf.SourceBitDepth)
	assert.Equal(t, []int{-32768, 32767, 0, -1}, buf.Data)
	assert.Equal(t, 2, buf.NumFrames())
}
