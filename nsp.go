package nsp

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidContainer is returned when the stream doesn't start with the
	// FORMDS16 tag or its chunk frames don't add up to the declared size.
	ErrInvalidContainer = errors.New("not a valid NSP container")
	// ErrUnknownChunk is returned for chunk IDs outside the known set.
	ErrUnknownChunk = errors.New("unknown NSP chunk")
	// ErrTruncatedFile is returned when the stream ends before the declared
	// container size was read.
	ErrTruncatedFile = errors.New("truncated NSP file")
	// ErrMissingHeader is returned when neither HEDR nor HDR8 is present.
	ErrMissingHeader = errors.New("missing HEDR/HDR8 chunk")
	// ErrMalformedHeader is returned when the header chunk can't be decoded.
	ErrMalformedHeader = errors.New("malformed NSP header")
	// ErrInvalidChannelSpec is returned for channel values other than "a",
	// "b" or an integer in 0-8.
	ErrInvalidChannelSpec = errors.New(`channels must be "a", "b", integer 0 - 8, or a sequence thereof`)
	// ErrChannelNotAvailable is returned when a requested channel isn't
	// supplied by any data chunk of the file.
	ErrChannelNotAvailable = errors.New("channel not available")
	// ErrNoData is returned when the file has no data chunk at all.
	ErrNoData = errors.New("no data chunks found")
	// ErrDataLength is returned when a data chunk doesn't hold exactly the
	// number of samples announced by the header.
	ErrDataLength = errors.New("data chunk length doesn't match header sample count")
	// ErrMalformedNote is returned when the NOTE chunk isn't valid UTF-8.
	ErrMalformedNote = errors.New("NOTE chunk is not valid UTF-8")
)

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}

// discardLogger is used when the caller doesn't configure a logger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

func loggerOrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return discardLogger()
	}

	return l
}
