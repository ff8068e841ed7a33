// SPDX-License-Identifier: EPL-2.0

// Command wavefx reads a stereo WAV file from stdin, applies the
// transforms named on the command line in order, and writes the result to
// stdout. Set WAVEFX_DEBUG to log header details and the transform
// program to stderr.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/wavefx/transform"
	"github.com/ik5/wavefx/wave"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if os.Getenv("WAVEFX_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	cmds, err := parseArgs(os.Args[1:])
	if err != nil {
		fail(err)
	}

	data, err := wave.Decode(bufio.NewReader(os.Stdin))
	if err != nil {
		fail(err)
	}
	logHeader("input header", data.Header)

	for _, c := range cmds {
		log.WithField("command", fmt.Sprint(c)).Debug("applying transform")
	}

	if err := transform.Apply(data, cmds...); err != nil {
		fail(err)
	}
	logHeader("output header", data.Header)

	out := bufio.NewWriter(os.Stdout)
	if err := wave.Encode(out, data); err != nil {
		fail(err)
	}
	if err := out.Flush(); err != nil {
		fail(err)
	}
}

func logHeader(msg string, h wave.Header) {
	log.WithFields(logrus.Fields{
		"size":            h.Size,
		"compression":     h.Fmt.Compression,
		"channels":        h.Fmt.Channels,
		"sample_rate":     h.Fmt.SampleRate,
		"byte_rate":       h.Fmt.ByteRate,
		"block_align":     h.Fmt.BlockAlign,
		"bits_per_sample": h.Fmt.BitsPerSample,
		"data_size":       h.Data.Size,
	}).Debug(msg)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
