package xm

import "strconv"

// Note is the note column of a pattern cell. Zero means the column is
// empty, 1 through 96 name a pitch from C-1 upwards and 97 releases
// the playing note. Values above KeyOff do not occur in well formed
// files but are preserved as read.
type Note uint8

const (
	NoNote Note = 0
	KeyOff Note = 97
)

var toneNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// IsNone reports whether the note column is empty.
func (n Note) IsNone() bool { return n == NoNote }

// IsOff reports whether the note releases the playing note.
func (n Note) IsOff() bool { return n == KeyOff }

// IsPitch reports whether the note names a playable pitch.
func (n Note) IsPitch() bool { return n > NoNote && n < KeyOff }

// Tone returns the semitone within the octave, 0 for C up to 11 for B.
// It is meaningful only for pitch notes.
func (n Note) Tone() int { return int(n-1) % 12 }

// Octave returns the octave number the way trackers display it, 1 for
// the lowest octave up to 8 for the highest.
func (n Note) Octave() int { return int(n-1)/12 + 1 }

// String renders the note in three character tracker notation: "C-4"
// and friends for pitches, "== " for key off and "..." for an empty
// column.
func (n Note) String() string {
	switch {
	case n == NoNote:
		return "..."
	case n == KeyOff:
		return "== "
	case n > KeyOff:
		return "???"
	}
	return toneNames[n.Tone()] + strconv.Itoa(n.Octave())
}
