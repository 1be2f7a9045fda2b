// Package xm decodes FastTracker II extended module files, the .xm
// tracker format, into an in memory model: patterns of cells,
// instruments with their envelopes, and delta decoded sample
// waveforms.
//
// Parse reads a complete file and returns either a Module or a
// *FormatError telling where in the file and in which decoder stage
// the file was rejected. Nothing is salvaged from a file that fails
// anywhere; there are no partial results and no repair heuristics.
package xm

import (
	"fmt"
	"io"
)

// Parse decodes a complete XM file.
func Parse(data []byte) (*Module, error) {
	r := newReader(data, "header")
	m, patterns, instruments, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	m.Patterns = make([]Pattern, patterns)
	for i := range m.Patterns {
		p, err := parsePattern(r, i, m.Channels)
		if err != nil {
			return nil, err
		}
		m.Patterns[i] = p
	}
	m.Instruments = make([]Instrument, instruments)
	for i := range m.Instruments {
		ins, err := parseInstrument(r, i)
		if err != nil {
			return nil, err
		}
		m.Instruments[i] = ins
	}
	return m, nil
}

// Read decodes an XM file from rd. The format is driven by declared
// byte counts, so the stream is read fully into memory first.
func Read(rd io.Reader) (*Module, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("reading module: %w", err)
	}
	return Parse(data)
}
