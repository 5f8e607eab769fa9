package nsp

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/cwbudde/nsp/internal/nsptest"
)

func ExampleRead() {
	data := nsptest.New().
		Header("HEDR", nsptest.DefaultDate, 8000, 3, 3, 3).
		Note("sustained vowel").
		Interleaved("SDAB", []int16{1, 2, 3}, []int16{-1, -2, -3}).
		Bytes()

	res, err := Read(bytes.NewReader(data), Options{WithNote: true})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.SampleRate, res.Samples.Channels, res.Note)
	fmt.Println(res.Samples.Column(1))
	// Output:
	// 8000 [a b] sustained vowel
	// [-1 -2 -3]
}

func ExampleReadHeader() {
	data := nsptest.New().
		Header("HDR8", nsptest.DefaultDate, 8000, 16000, 5, 7).
		Bytes()

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(h.Variant, h.Date.Format(time.RFC3339), h.SampleRate, h.Duration(), h.MaxAbsValues)
	// Output: HDR8 1995-05-26T23:57:43Z 8000 2s [5 7]
}
