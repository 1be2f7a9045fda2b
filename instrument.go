package xm

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// VibratoType is the waveform of the automatic instrument vibrato.
type VibratoType uint8

const (
	VibratoSine VibratoType = iota
	VibratoSquare
	VibratoRampDown
	VibratoRampUp
)

// Vibrato is the automatic vibrato applied to every note an instrument
// plays.
type Vibrato struct {
	Type  VibratoType
	Sweep uint8
	Depth uint8
	Rate  uint8
}

// EnvelopePoint is one breakpoint of an envelope: a tick position and
// the value the envelope reaches there.
type EnvelopePoint struct {
	Tick  uint16
	Value uint16
}

// Envelope is a volume or panning envelope. Points holds only the
// significant points. The sustain and loop indices point into Points
// and are meaningful only when the matching flag is set, but always
// carry what the file stored.
type Envelope struct {
	Enabled        bool            `yaml:",omitempty"`
	Sustain        bool            `yaml:",omitempty"`
	Loop           bool            `yaml:",omitempty"`
	Points         []EnvelopePoint `yaml:",omitempty,flow"`
	SustainPoint   uint8           `yaml:",omitempty"`
	LoopStartPoint uint8           `yaml:",omitempty"`
	LoopEndPoint   uint8           `yaml:",omitempty"`
}

// Instrument is one instrument slot: its keymap, envelopes, vibrato
// and samples. An instrument with no samples has none of those, only a
// name; its Keymap is all zeros. The Type byte is reserved in the
// format and kept only because files in the wild carry junk there.
type Instrument struct {
	Name            string    `yaml:",omitempty"`
	Type            uint8     `yaml:",omitempty"`
	Keymap          [96]uint8 `yaml:",flow"`
	VolumeEnvelope  Envelope
	PanningEnvelope Envelope
	Vibrato         Vibrato
	Fadeout         uint16 `yaml:",omitempty"`
	Samples         []Sample
}

const (
	// instrumentPrefixSize is the part of an instrument header every
	// instrument has: size, name, type and sample count.
	instrumentPrefixSize = 29
	// instrumentFullSize is the prefix plus the keymap, envelope and
	// vibrato block instruments with samples carry.
	instrumentFullSize = 263
)

// instrumentOpts is the wire layout of the 234 byte block that follows
// the prefix when the instrument has samples. The sample header size
// field is declarative only; sample headers have a fixed stride.
type instrumentOpts struct {
	SampleHeaderSize uint32
	Keymap           [96]uint8
	VolumePoints     [12]EnvelopePoint
	PanningPoints    [12]EnvelopePoint
	VolumeCount      uint8
	PanningCount     uint8
	VolumeSustain    uint8
	VolumeLoopStart  uint8
	VolumeLoopEnd    uint8
	PanningSustain   uint8
	PanningLoopStart uint8
	PanningLoopEnd   uint8
	VolumeFlags      uint8
	PanningFlags     uint8
	VibratoType      uint8
	VibratoSweep     uint8
	VibratoDepth     uint8
	VibratoRate      uint8
	Fadeout          uint16
	Reserved         [22]uint8
}

// parseInstrument decodes one instrument with its samples. Sample
// headers all precede the sample data blocks, so the headers are
// collected first and the delta coded data decoded afterwards in the
// same order.
func parseInstrument(r *reader, index int) (Instrument, error) {
	r.setComponent(fmt.Sprintf("instrument %d", index))
	var ins Instrument
	headerSize, err := r.uint32()
	if err != nil {
		return ins, err
	}
	name, err := r.bytes(22)
	if err != nil {
		return ins, err
	}
	ins.Name = decodeName(name)
	if ins.Type, err = r.uint8(); err != nil {
		return ins, err
	}
	sampleCount, err := r.uint16()
	if err != nil {
		return ins, err
	}
	if sampleCount == 0 {
		// No envelope block follows; skip straight to the declared
		// header size so the next instrument starts where it should.
		if headerSize > instrumentPrefixSize {
			if err := r.skip(int(headerSize) - instrumentPrefixSize); err != nil {
				return ins, err
			}
		}
		return ins, nil
	}

	optsOff := r.offset()
	block, err := r.bytes(binary.Size(instrumentOpts{}))
	if err != nil {
		return ins, err
	}
	var opts instrumentOpts
	if err := binary.Read(bytes.NewReader(block), binary.LittleEndian, &opts); err != nil {
		return ins, r.errorfAt(ErrCorrupt, optsOff, "binary.Read: %v", err)
	}
	for i, s := range opts.Keymap {
		if int(s) >= int(sampleCount) {
			return ins, r.errorfAt(ErrCorrupt, optsOff+4+int64(i), "keymap note %d references sample %d of %d", i, s, sampleCount)
		}
	}
	// 196, 197 and 206 are the offsets of the checked fields inside
	// instrumentOpts.
	if opts.VolumeCount > 12 {
		return ins, r.errorfAt(ErrOutOfRange, optsOff+196, "volume envelope has %d points", opts.VolumeCount)
	}
	if opts.PanningCount > 12 {
		return ins, r.errorfAt(ErrOutOfRange, optsOff+197, "panning envelope has %d points", opts.PanningCount)
	}
	if opts.VibratoType > 3 {
		return ins, r.errorfAt(ErrOutOfRange, optsOff+206, "vibrato type %d", opts.VibratoType)
	}
	ins.Keymap = opts.Keymap
	ins.VolumeEnvelope = makeEnvelope(opts.VolumePoints, opts.VolumeCount, opts.VolumeFlags, opts.VolumeSustain, opts.VolumeLoopStart, opts.VolumeLoopEnd)
	ins.PanningEnvelope = makeEnvelope(opts.PanningPoints, opts.PanningCount, opts.PanningFlags, opts.PanningSustain, opts.PanningLoopStart, opts.PanningLoopEnd)
	ins.Vibrato = Vibrato{
		Type:  VibratoType(opts.VibratoType),
		Sweep: opts.VibratoSweep,
		Depth: opts.VibratoDepth,
		Rate:  opts.VibratoRate,
	}
	ins.Fadeout = opts.Fadeout
	if headerSize > instrumentFullSize {
		if err := r.skip(int(headerSize) - instrumentFullSize); err != nil {
			return ins, err
		}
	}

	ins.Samples = make([]Sample, sampleCount)
	byteLens := make([]int, sampleCount)
	for i := range ins.Samples {
		r.setComponent(fmt.Sprintf("instrument %d sample %d", index, i))
		s, n, err := parseSampleHeader(r)
		if err != nil {
			return ins, err
		}
		ins.Samples[i] = s
		byteLens[i] = n
	}
	for i := range ins.Samples {
		r.setComponent(fmt.Sprintf("instrument %d sample %d", index, i))
		if err := decodeSampleData(r, &ins.Samples[i], byteLens[i]); err != nil {
			return ins, err
		}
	}
	return ins, nil
}

// makeEnvelope assembles an envelope from its wire fields, keeping the
// count significant points.
func makeEnvelope(points [12]EnvelopePoint, count, flags, sustain, loopStart, loopEnd uint8) Envelope {
	return Envelope{
		Enabled:        flags&0x1 != 0,
		Sustain:        flags&0x2 != 0,
		Loop:           flags&0x4 != 0,
		Points:         append([]EnvelopePoint(nil), points[:count]...),
		SustainPoint:   sustain,
		LoopStartPoint: loopStart,
		LoopEndPoint:   loopEnd,
	}
}
