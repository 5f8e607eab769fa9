// Package nsp decodes NSP audio files, the chunked "FORMDS16" container
// written by clinical voice-recording equipment.
//
// A file carries one header chunk (HEDR or HDR8), an optional NOTE chunk and
// up to nine channels of 16-bit PCM spread over the data chunks SDA_, SD_B,
// SDAB (channels a and b interleaved) and SD_2 to SD_8. Read assembles the
// requested channels into a single dense matrix:
//
//	res, err := nsp.Read(f, nsp.Options{Channels: []nsp.Channel{nsp.ChannelA, 3}})
//
// Channels that are selected by default but missing from the file come back
// as silent columns. ReadHeader stops reading as soon as the header chunk has
// been seen.
//
// The whole container is buffered in memory while decoding, so memory use
// grows with the file size.
package nsp
