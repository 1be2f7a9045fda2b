package xm_test

import (
	"errors"
	"reflect"
	"testing"

	xm "github.com/TheBrightSide/symphonia-xm-ext"
)

func instrumentFile(def instrumentDef) []byte {
	b := &fileBuilder{}
	writeHeader(b, 1, 1, 1, []byte{0})
	writeEmptyPattern(b, 1)
	writeInstrument(b, def)
	return b.Bytes()
}

func TestEmptyInstrumentSkipsDeclaredSize(t *testing.T) {
	b := &fileBuilder{}
	writeHeader(b, 1, 1, 2, []byte{0})
	writeEmptyPattern(b, 1)
	b.u32(40) // declared header size beyond the 29 byte prefix
	b.str("padded", 22)
	b.u8(0)
	b.u16(0)
	b.str("", 11) // padding up to the declared size
	writeEmptyInstrument(b, "second")
	m, err := xm.Parse(b.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Instruments[0].Name != "padded" || m.Instruments[1].Name != "second" {
		t.Fatalf("got instruments %q and %q, expected padded and second",
			m.Instruments[0].Name, m.Instruments[1].Name)
	}
}

func TestEnvelopeAssembly(t *testing.T) {
	m, err := xm.Parse(instrumentFile(instrumentDef{
		name:          "env",
		volumePoints:  [][2]uint16{{0, 48}, {8, 64}, {24, 16}},
		volumeCount:   3,
		volumeFlags:   0x5, // on and looping, no sustain
		volumeSustain: 1,
		volumeLoopEnd: 2,
		panningPoints: [][2]uint16{{0, 32}, {16, 32}},
		panningCount:  2,
		panningFlags:  0x3, // on and sustaining
		samples:       []sampleDef{{}},
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	volume := xm.Envelope{
		Enabled:      true,
		Loop:         true,
		Points:       []xm.EnvelopePoint{{Value: 48}, {Tick: 8, Value: 64}, {Tick: 24, Value: 16}},
		SustainPoint: 1,
		LoopEndPoint: 2,
	}
	if !reflect.DeepEqual(m.Instruments[0].VolumeEnvelope, volume) {
		t.Errorf("got volume envelope %+v, expected %+v", m.Instruments[0].VolumeEnvelope, volume)
	}
	panning := xm.Envelope{
		Enabled: true,
		Sustain: true,
		Points:  []xm.EnvelopePoint{{Value: 32}, {Tick: 16, Value: 32}},
	}
	if !reflect.DeepEqual(m.Instruments[0].PanningEnvelope, panning) {
		t.Errorf("got panning envelope %+v, expected %+v", m.Instruments[0].PanningEnvelope, panning)
	}
}

func TestEnvelopePointCountRange(t *testing.T) {
	// the envelope count bytes sit 196 and 197 into the options block,
	// which follows the 29 byte prefix of the instrument at offset 90
	expectFormatError(t, instrumentFile(instrumentDef{
		volumeCount: 13,
		samples:     []sampleDef{{}},
	}), xm.ErrOutOfRange, 315)
	expectFormatError(t, instrumentFile(instrumentDef{
		panningCount: 13,
		samples:      []sampleDef{{}},
	}), xm.ErrOutOfRange, 316)
}

func TestVibratoTypeRange(t *testing.T) {
	// the vibrato type byte sits 206 into the options block
	expectFormatError(t, instrumentFile(instrumentDef{
		vibrato: [4]uint8{4, 0, 0, 0},
		samples: []sampleDef{{}},
	}), xm.ErrOutOfRange, 325)
	m, err := xm.Parse(instrumentFile(instrumentDef{
		vibrato: [4]uint8{3, 1, 2, 3},
		samples: []sampleDef{{}},
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := xm.Vibrato{Type: xm.VibratoRampUp, Sweep: 1, Depth: 2, Rate: 3}
	if m.Instruments[0].Vibrato != expected {
		t.Fatalf("got vibrato %+v, expected %+v", m.Instruments[0].Vibrato, expected)
	}
}

func TestInstrumentHeaderSizeOverflow(t *testing.T) {
	b := &fileBuilder{}
	writeHeader(b, 1, 1, 1, []byte{0})
	writeEmptyPattern(b, 1)
	b.u32(0xFFFFFFFF) // header size that wraps a 32 bit int
	b.str("huge", 22)
	b.u8(0)
	b.u16(0)
	// the skip over the excess header starts after the 29 byte prefix
	// of the instrument at offset 90
	expectFormatError(t, b.Bytes(), xm.ErrUnexpectedEOF, 119)
}

func TestKeymapEntryOutOfRange(t *testing.T) {
	var keymap [96]uint8
	keymap[5] = 1 // instrument only has one sample
	_, err := xm.Parse(instrumentFile(instrumentDef{
		keymap:  keymap,
		samples: []sampleDef{{}},
	}))
	if !errors.Is(err, xm.ErrCorrupt) {
		t.Fatalf("got error %v, expected %v", err, xm.ErrCorrupt)
	}
}

func TestKeymapKept(t *testing.T) {
	var keymap [96]uint8
	keymap[40] = 1
	keymap[95] = 1
	m, err := xm.Parse(instrumentFile(instrumentDef{
		keymap:  keymap,
		samples: []sampleDef{{}, {}},
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Instruments[0].Keymap != keymap {
		t.Fatalf("got keymap %v, expected %v", m.Instruments[0].Keymap, keymap)
	}
}

func TestNameDecoding(t *testing.T) {
	b := &fileBuilder{}
	writeHeader(b, 1, 1, 3, []byte{0})
	writeEmptyPattern(b, 1)
	writeEmptyInstrument(b, "b\x84ss")     // code page 437
	writeEmptyInstrument(b, "abc\x00junk") // junk after the terminator
	writeEmptyInstrument(b, "  pad  ")
	m, err := xm.Parse(b.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := []string{"bäss", "abc", "pad"}
	for i, name := range expected {
		if m.Instruments[i].Name != name {
			t.Errorf("got instrument %d name %q, expected %q", i, m.Instruments[i].Name, name)
		}
	}
}
