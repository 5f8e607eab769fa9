package nsp

import "github.com/go-audio/audio"

// Samples is a frame-interleaved matrix of 16-bit samples. Column i holds
// the samples of Channels[i].
type Samples struct {
	// Frames is the number of samples per channel.
	Frames int
	// Channels lists the channel of each column.
	Channels []Channel
	// Data holds Frames*len(Channels) values, row by row.
	Data []int16
}

func newSamples(frames int, channels []Channel) *Samples {
	return &Samples{
		Frames:   frames,
		Channels: append([]Channel(nil), channels...),
		Data:     make([]int16, frames*len(channels)),
	}
}

// NumChannels returns the number of columns.
func (s *Samples) NumChannels() int {
	if s == nil {
		return 0
	}

	return len(s.Channels)
}

// Dims returns 1 for a single selected channel and 2 otherwise.
func (s *Samples) Dims() int {
	if s.NumChannels() == 1 {
		return 1
	}

	return 2
}

// Vector returns the samples of a single-channel matrix as a flat slice.
// It returns nil when more than one channel was selected.
func (s *Samples) Vector() []int16 {
	if s.Dims() != 1 {
		return nil
	}

	return s.Data
}

// At returns the sample of the given frame and column.
func (s *Samples) At(frame, col int) int16 {
	return s.Data[frame*len(s.Channels)+col]
}

// Column returns a copy of the samples of column col.
func (s *Samples) Column(col int) []int16 {
	if s == nil || col < 0 || col >= len(s.Channels) {
		return nil
	}

	out := make([]int16, s.Frames)
	stride := len(s.Channels)

	for i := range out {
		out[i] = s.Data[i*stride+col]
	}

	return out
}

// ChannelData returns a copy of the first column holding channel c.
func (s *Samples) ChannelData(c Channel) []int16 {
	if s == nil {
		return nil
	}

	for col, ch := range s.Channels {
		if ch == c {
			return s.Column(col)
		}
	}

	return nil
}

// Format returns the go-audio format of the matrix at the passed rate.
func (s *Samples) Format(sampleRate int) *audio.Format {
	return &audio.Format{
		NumChannels: s.NumChannels(),
		SampleRate:  sampleRate,
	}
}

// IntBuffer converts the matrix to an interleaved go-audio buffer.
func (s *Samples) IntBuffer(sampleRate int) *audio.IntBuffer {
	if s == nil {
		return nil
	}

	buf := &audio.IntBuffer{
		Format:         s.Format(sampleRate),
		SourceBitDepth: 16,
		Data:           make([]int, len(s.Data)),
	}

	for i, v := range s.Data {
		buf.Data[i] = int(v)
	}

	return buf
}
