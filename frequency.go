package xm

import "math"

// LinearPeriod returns the linear frequency table period of a note
// number, 1 being C-1 as notes are stored. The period shrinks by 64
// per semitone, so fractional note numbers interpolate between
// semitones.
func LinearPeriod(note float64) float64 {
	return 7680 - 64*(note-1)
}

// LinearFrequency converts a linear table period to a playback rate in
// Hz. A period of 4608, note C-5 with no finetune, plays at 8363 Hz,
// the rate FastTracker II centers samples on.
func LinearFrequency(period float64) float64 {
	return 8363 * math.Pow(2, (4608-period)/768)
}

// NoteFrequency returns the playback rate of a pattern note played
// through this sample under the linear frequency table, folding in the
// sample's relative note and finetune. Finetune steps are 1/128 of a
// semitone.
func (s *Sample) NoteFrequency(n Note) float64 {
	note := float64(n) + float64(s.RelativeNote) + float64(s.Finetune)/128
	return LinearFrequency(LinearPeriod(note))
}
