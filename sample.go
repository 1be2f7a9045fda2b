package xm

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
)

// LoopType is how a sample repeats after its first pass.
type LoopType uint8

const (
	LoopNone LoopType = iota
	LoopForward
	LoopBidirectional
)

func (t LoopType) String() string {
	switch t {
	case LoopForward:
		return "forward"
	case LoopBidirectional:
		return "bidirectional"
	}
	return "none"
}

// MarshalYAML encodes the loop type as its name rather than a bare
// number.
func (t LoopType) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t LoopType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Sample is one sampled waveform with its playback parameters. Length
// and the loop bounds count frames, not bytes; Data holds one decoded
// frame per entry regardless of the stored bit depth, 8 bit samples
// occupying the -128 to 127 range.
type Sample struct {
	Name         string `yaml:",omitempty"`
	Length       int
	LoopStart    int      `yaml:",omitempty"`
	LoopLength   int      `yaml:",omitempty"`
	LoopType     LoopType `yaml:",omitempty"`
	BitDepth     int
	Volume       uint8
	Finetune     int8    `yaml:",omitempty"`
	Panning      uint8   `yaml:",omitempty"`
	RelativeNote int8    `yaml:",omitempty"`
	Data         []int16 `yaml:",omitempty,flow"`
}

// sampleHeaderSize is the fixed stride of a sample header. The
// instrument block declares a header size of its own but files rely on
// the fixed layout, so the declared value is not used for stepping.
const sampleHeaderSize = 40

// parseSampleHeader decodes one 40 byte sample header. It returns the
// sample without data and the length of the sample's data block in
// bytes, which follows only after all the headers of the instrument.
func parseSampleHeader(r *reader) (Sample, int, error) {
	start := r.offset()
	block, err := r.bytes(sampleHeaderSize)
	if err != nil {
		return Sample{}, 0, err
	}
	var raw struct {
		Length       uint32
		LoopStart    uint32
		LoopLength   uint32
		Volume       uint8
		Finetune     int8
		Type         uint8
		Panning      uint8
		RelativeNote int8
		Reserved     uint8
		Name         [22]byte
	}
	if err := binary.Read(bytes.NewReader(block), binary.LittleEndian, &raw); err != nil {
		return Sample{}, 0, r.errorfAt(ErrCorrupt, start, "binary.Read: %v", err)
	}

	s := Sample{
		Name:         decodeName(raw.Name[:]),
		Volume:       raw.Volume,
		Finetune:     raw.Finetune,
		Panning:      raw.Panning,
		RelativeNote: raw.RelativeNote,
	}
	switch raw.Type & 0x3 {
	case 0:
		s.LoopType = LoopNone
	case 1:
		s.LoopType = LoopForward
	case 2:
		s.LoopType = LoopBidirectional
	default:
		return s, 0, r.errorfAt(ErrOutOfRange, start, "loop type %d", raw.Type&0x3)
	}
	if raw.Type&0x20 != 0 {
		return s, 0, r.errorfAt(ErrUnsupported, start, "multi channel sample data")
	}
	frameSize := 1
	s.BitDepth = 8
	if raw.Type&0x10 != 0 {
		s.BitDepth = 16
		frameSize = 2
		if raw.Length%2 != 0 {
			return s, 0, r.errorfAt(ErrCorrupt, start, "16 bit sample length %d is odd", raw.Length)
		}
	}
	if uint64(raw.LoopStart)+uint64(raw.LoopLength) > uint64(raw.Length) {
		return s, 0, r.errorfAt(ErrCorrupt, start, "loop %d+%d exceeds length %d", raw.LoopStart, raw.LoopLength, raw.Length)
	}
	s.Length = int(raw.Length) / frameSize
	s.LoopStart = int(raw.LoopStart) / frameSize
	s.LoopLength = int(raw.LoopLength) / frameSize
	return s, int(raw.Length), nil
}

// decodeSampleData turns a delta coded data block into absolute
// frames. The first stored delta counts from a zero baseline and the
// accumulator wraps at the bit depth boundary.
func decodeSampleData(r *reader, s *Sample, byteLen int) error {
	block, err := r.bytes(byteLen)
	if err != nil {
		return err
	}
	if byteLen == 0 {
		return nil
	}
	if s.BitDepth == 16 {
		s.Data = make([]int16, len(block)/2)
		var prev int16
		for i := range s.Data {
			prev += int16(binary.LittleEndian.Uint16(block[2*i:]))
			s.Data[i] = prev
		}
		return nil
	}
	s.Data = make([]int16, len(block))
	var prev int8
	for i, b := range block {
		prev += int8(b)
		s.Data[i] = int16(prev)
	}
	return nil
}
