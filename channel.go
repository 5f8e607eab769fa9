package nsp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Channel is a logical channel index. Channel a is 0, channel b is 1 and the
// SD_2 to SD_8 chunks supply channels 2 to 8.
type Channel uint8

const (
	ChannelA Channel = 0
	ChannelB Channel = 1

	// MaxChannel is the highest channel index an NSP file can carry.
	MaxChannel Channel = 8
)

func (c Channel) String() string {
	switch c {
	case ChannelA:
		return "a"
	case ChannelB:
		return "b"
	default:
		return strconv.Itoa(int(c))
	}
}

func (c Channel) valid() bool {
	return c <= MaxChannel
}

// ChannelSource describes which channels a data chunk supplies.
// It is either Mono or Interleaved.
type ChannelSource interface {
	Channels() []Channel
	isChannelSource()
}

// Mono is a data chunk holding the samples of a single channel.
type Mono struct {
	Channel Channel
}

// Channels implements ChannelSource.
func (m Mono) Channels() []Channel { return []Channel{m.Channel} }

func (Mono) isChannelSource() {}

// Interleaved is a data chunk holding two channels, alternating sample by
// sample starting with First.
type Interleaved struct {
	First, Second Channel
}

// Channels implements ChannelSource.
func (p Interleaved) Channels() []Channel { return []Channel{p.First, p.Second} }

func (Interleaved) isChannelSource() {}

// SourceOf returns the channel layout of a data chunk.
// The boolean is false for non-data chunks.
func SourceOf(id ChunkID) (ChannelSource, bool) {
	switch {
	case id == ChunkSDA:
		return Mono{Channel: ChannelA}, true
	case id == ChunkSDB:
		return Mono{Channel: ChannelB}, true
	case id == ChunkSDAB:
		return Interleaved{First: ChannelA, Second: ChannelB}, true
	case id >= ChunkSD2 && id <= ChunkSD8:
		return Mono{Channel: Channel(2 + id - ChunkSD2)}, true
	default:
		return nil, false
	}
}

// ParseChannelSpec normalizes a channel specification. The spec may be nil,
// a single value or a slice of values, where each value is "a", "b", a
// Channel or any integer from 0 to 8. Order and duplicates are preserved.
// A nil or empty spec yields an empty selection, which Read treats as "all
// channels present in the file".
func ParseChannelSpec(spec any) ([]Channel, error) {
	switch v := spec.(type) {
	case nil:
		return nil, nil
	case []Channel:
		return parseChannelValues(v)
	case []int:
		return parseChannelValues(v)
	case []string:
		return parseChannelValues(v)
	case []any:
		return parseChannelValues(v)
	default:
		c, err := parseChannelValue(v)
		if err != nil {
			return nil, err
		}

		return []Channel{c}, nil
	}
}

func parseChannelValues[T any](values []T) ([]Channel, error) {
	out := make([]Channel, 0, len(values))

	for _, v := range values {
		c, err := parseChannelValue(v)
		if err != nil {
			return nil, err
		}

		out = append(out, c)
	}

	return out, nil
}

func parseChannelValue(v any) (Channel, error) {
	var n int64

	switch x := v.(type) {
	case string:
		switch x {
		case "a":
			return ChannelA, nil
		case "b":
			return ChannelB, nil
		default:
			return 0, fmt.Errorf("%w: got %q", ErrInvalidChannelSpec, x)
		}
	case Channel:
		n = int64(x)
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = clampUint(uint64(x))
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n = clampUint(x)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidChannelSpec, v)
	}

	if n < 0 || n > int64(MaxChannel) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidChannelSpec, n)
	}

	return Channel(n), nil
}

func clampUint(u uint64) int64 {
	if u > uint64(MaxChannel) {
		return int64(MaxChannel) + 1
	}

	return int64(u)
}

// ParseChannelList parses a comma separated list such as "a,b,3".
// An empty string yields an empty selection.
func ParseChannelList(s string) ([]Channel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	values := make([]any, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)

		n, err := strconv.Atoi(f)
		if err == nil {
			values = append(values, n)
			continue
		}

		values = append(values, f)
	}

	return parseChannelValues(values)
}

// channelChunks returns the data chunks able to supply channel c.
func channelChunks(c Channel) []ChunkID {
	switch {
	case c == ChannelA:
		return []ChunkID{ChunkSDAB, ChunkSDA}
	case c == ChannelB:
		return []ChunkID{ChunkSDAB, ChunkSDB}
	case c.valid():
		return []ChunkID{ChunkSD2 + ChunkID(c-2)}
	default:
		return nil
	}
}

// DefaultChannels returns the channels supplied by the data chunks of the
// set, ascending and without duplicates.
func DefaultChannels(set *ChunkSet) []Channel {
	var out []Channel

	for _, chunk := range set.DataChunks() {
		src, _ := SourceOf(chunk.ID)
		out = append(out, src.Channels()...)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// SelectChannels resolves the requested channels against the data chunks
// present in the set. An empty request selects DefaultChannels. Every
// requested channel must be backed by a chunk of the file.
func SelectChannels(requested []Channel, set *ChunkSet) ([]Channel, error) {
	return selectChannels(requested, set, true)
}

func selectChannels(requested []Channel, set *ChunkSet, strict bool) ([]Channel, error) {
	for _, c := range requested {
		if !c.valid() {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidChannelSpec, c)
		}
	}

	if len(requested) == 0 {
		return DefaultChannels(set), nil
	}

	for _, c := range requested {
		available := slices.ContainsFunc(channelChunks(c), set.Has)
		if strict && !available {
			return nil, fmt.Errorf("%w: channel %s", ErrChannelNotAvailable, c)
		}
	}

	return slices.Clone(requested), nil
}
