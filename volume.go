package xm

import "fmt"

// VolumeColumn is the raw volume column byte of a pattern cell. The
// high nibble selects a command and the low nibble carries its
// argument; the 0x10 to 0x50 range forms the plain set volume scale.
type VolumeColumn uint8

// VolumeCommand classifies what a volume column byte does.
type VolumeCommand uint8

const (
	VolumeSet VolumeCommand = iota
	VolumeSlideDown
	VolumeSlideUp
	VolumeFineDown
	VolumeFineUp
	VolumeVibratoSpeed
	VolumeVibratoDepth
	VolumePanning
	VolumePanSlideLeft
	VolumePanSlideRight
	VolumeTonePortamento
)

var volumeLetters = [...]byte{'v', 'd', 'c', 'b', 'a', 'u', 'h', 'p', 'l', 'r', 'g'}

// Letter returns the single letter trackers prefix the argument with.
func (c VolumeCommand) Letter() byte { return volumeLetters[c] }

// Command returns the command the high nibble selects. Every nibble
// maps to a command, so classification cannot fail.
func (v VolumeColumn) Command() VolumeCommand {
	switch uint8(v) >> 4 {
	case 0x6:
		return VolumeSlideDown
	case 0x7:
		return VolumeSlideUp
	case 0x8:
		return VolumeFineDown
	case 0x9:
		return VolumeFineUp
	case 0xA:
		return VolumeVibratoSpeed
	case 0xB:
		return VolumeVibratoDepth
	case 0xC:
		return VolumePanning
	case 0xD:
		return VolumePanSlideLeft
	case 0xE:
		return VolumePanSlideRight
	case 0xF:
		return VolumeTonePortamento
	}
	return VolumeSet
}

// Argument returns the command argument. For VolumeSet the nibbles fold
// back into the full 0 to 64 volume and for VolumePanning the four
// argument bits scale onto the panning range; the other commands use
// the low nibble as is.
func (v VolumeColumn) Argument() uint8 {
	low := uint8(v) & 0xF
	switch v.Command() {
	case VolumeSet:
		return low | (uint8(v)>>4-1)<<4
	case VolumePanning:
		return 2 + low*4
	}
	return low
}

// String renders the column the way trackers display it, the command
// letter followed by the argument in decimal: "v32", "p34".
func (v VolumeColumn) String() string {
	return fmt.Sprintf("%c%02d", v.Command().Letter(), v.Argument())
}
