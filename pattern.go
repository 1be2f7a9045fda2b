package xm

import (
	"fmt"
	"math/bits"
	"strings"
)

// Pattern is the rows of one pattern, each row holding one cell per
// channel.
type Pattern []Row

// Row is one row of cells across the channels.
type Row []Cell

// Cell is the stored state of one channel in one row. The four Has
// flags record which columns were present in the file, since a stored
// zero and an absent column are different things.
type Cell struct {
	Note           Note  `yaml:",omitempty"`
	Instrument     uint8 `yaml:",omitempty"`
	HasInstrument  bool  `yaml:",omitempty"`
	Volume         uint8 `yaml:",omitempty"`
	HasVolume      bool  `yaml:",omitempty"`
	EffectType     uint8 `yaml:",omitempty"`
	HasEffectType  bool  `yaml:",omitempty"`
	EffectParam    uint8 `yaml:",omitempty"`
	HasEffectParam bool  `yaml:",omitempty"`
}

// Empty reports whether the cell stores nothing at all.
func (c Cell) Empty() bool { return c == Cell{} }

// VolumeColumn returns the volume column byte; ok is false when the
// cell has none.
func (c Cell) VolumeColumn() (v VolumeColumn, ok bool) {
	return VolumeColumn(c.Volume), c.HasVolume
}

// Effect returns the effect column pair; ok is false when the cell has
// neither byte. A missing half reads as zero, so a parameter without a
// type classifies as an arpeggio, exactly as FastTracker II plays it.
func (c Cell) Effect() (e Effect, ok bool) {
	if !c.HasEffectType && !c.HasEffectParam {
		return Effect{}, false
	}
	return Effect{Type: c.EffectType, Param: c.EffectParam}, true
}

// String renders the cell as the four tracker columns separated by
// spaces, "C-4 01 v32 A0F", with dots for absent columns.
func (c Cell) String() string {
	ins := ".."
	if c.HasInstrument {
		ins = fmt.Sprintf("%02d", c.Instrument)
	}
	vol := "..."
	if v, ok := c.VolumeColumn(); ok {
		vol = v.String()
	}
	eff := "..."
	if e, ok := c.Effect(); ok {
		eff = e.String()
	}
	return c.Note.String() + " " + ins + " " + vol + " " + eff
}

// String renders the row with the cells between pipes, the way
// trackers draw a pattern line.
func (r Row) String() string {
	var sb strings.Builder
	for _, c := range r {
		sb.WriteByte('|')
		sb.WriteString(c.String())
	}
	sb.WriteByte('|')
	return sb.String()
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, row := range p {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// patternHeaderSize is the size of the fixed pattern header fields; a
// declared header length beyond it is skipped.
const patternHeaderSize = 9

// parsePattern decodes one pattern. The packed data block is entered
// through a sub reader sized to the declared packed length, so the
// decoder can never read past it: running dry in the middle of a cell
// is a truncation error, running dry between cells leaves the rest of
// the pattern empty, and trailing bytes after the last cell are
// skipped.
func parsePattern(r *reader, index, channels int) (Pattern, error) {
	r.setComponent(fmt.Sprintf("pattern %d", index))
	headerLength, err := r.uint32()
	if err != nil {
		return nil, err
	}
	packingOff := r.offset()
	packing, err := r.uint8()
	if err != nil {
		return nil, err
	}
	if packing != 0 {
		return nil, r.errorfAt(ErrUnsupported, packingOff, "packing type %d", packing)
	}
	rowsOff := r.offset()
	rows, err := r.uint16()
	if err != nil {
		return nil, err
	}
	if rows < 1 || rows > 256 {
		return nil, r.errorfAt(ErrOutOfRange, rowsOff, "row count %d not in 1..256", rows)
	}
	packedSize, err := r.uint16()
	if err != nil {
		return nil, err
	}
	if headerLength > patternHeaderSize {
		if err := r.skip(int(headerLength) - patternHeaderSize); err != nil {
			return nil, err
		}
	}

	pattern := make(Pattern, rows)
	for i := range pattern {
		pattern[i] = make(Row, channels)
	}
	if packedSize == 0 {
		return pattern, nil
	}
	pr, err := r.sub(int(packedSize))
	if err != nil {
		return nil, err
	}
	for ri := 0; ri < len(pattern) && pr.remaining() > 0; ri++ {
		row := pattern[ri]
		for ci := 0; ci < channels && pr.remaining() > 0; ci++ {
			cell, err := parseCell(pr)
			if err != nil {
				return nil, err
			}
			row[ci] = cell
		}
	}
	return pattern, nil
}

// parseCell decodes one cell. A head byte with the high bit set is a
// bitmask of which of the five columns follow; with the high bit clear
// it is a literal note and all four other columns follow
// unconditionally.
func parseCell(r *reader) (Cell, error) {
	head, err := r.uint8()
	if err != nil {
		return Cell{}, err
	}
	if head&0x80 == 0 {
		b, err := cellBytes(r, 4)
		if err != nil {
			return Cell{}, err
		}
		return Cell{
			Note:           Note(head),
			Instrument:     b[0],
			HasInstrument:  true,
			Volume:         b[1],
			HasVolume:      true,
			EffectType:     b[2],
			HasEffectType:  true,
			EffectParam:    b[3],
			HasEffectParam: true,
		}, nil
	}
	b, err := cellBytes(r, bits.OnesCount8(head&0x1F))
	if err != nil {
		return Cell{}, err
	}
	next := func() uint8 {
		v := b[0]
		b = b[1:]
		return v
	}
	var c Cell
	if head&0x01 != 0 {
		c.Note = Note(next())
	}
	if head&0x02 != 0 {
		c.Instrument, c.HasInstrument = next(), true
	}
	if head&0x04 != 0 {
		c.Volume, c.HasVolume = next(), true
	}
	if head&0x08 != 0 {
		c.EffectType, c.HasEffectType = next(), true
	}
	if head&0x10 != 0 {
		c.EffectParam, c.HasEffectParam = next(), true
	}
	return c, nil
}

// cellBytes reads the column bytes of a cell whose head byte was
// already consumed, turning exhaustion into a truncation error.
func cellBytes(r *reader, n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, r.errorf(ErrTruncatedPattern, "cell needs %d more bytes, have %d", n, r.remaining())
	}
	return r.bytes(n)
}
