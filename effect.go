package xm

import "fmt"

// Effect is the effect column pair of a pattern cell. When the file
// stores only one of the two bytes the other reads as zero, which
// FastTracker II treats as half of an arpeggio.
type Effect struct {
	Type  uint8
	Param uint8
}

// EffectCommand identifies the operation an effect pair performs. The
// E and X commands dispatch on the high parameter nibble, so one type
// byte can classify to several commands.
type EffectCommand uint8

const (
	EffectUnknown EffectCommand = iota
	EffectArpeggio
	EffectPortamentoUp
	EffectPortamentoDown
	EffectTonePortamento
	EffectVibrato
	EffectTonePortamentoVolumeSlide
	EffectVibratoVolumeSlide
	EffectTremolo
	EffectSetPanning
	EffectSampleOffset
	EffectVolumeSlide
	EffectPositionJump
	EffectSetVolume
	EffectPatternBreak
	EffectFinePortamentoUp
	EffectFinePortamentoDown
	EffectGlissandoControl
	EffectSetVibratoWaveform
	EffectSetFinetune
	EffectPatternLoopStart
	EffectPatternLoop
	EffectSetTremoloWaveform
	EffectSetCoarsePanning
	EffectRetrigger
	EffectFineVolumeSlideUp
	EffectFineVolumeSlideDown
	EffectNoteCut
	EffectNoteDelay
	EffectPatternDelay
	EffectSetActiveMacro
	EffectSetTempo
	EffectSetGlobalVolume
	EffectGlobalVolumeSlide
	EffectKeyOff
	EffectSetEnvelopePosition
	EffectPanningSlide
	EffectRetriggerWithVolume
	EffectTremor
	EffectExtraFinePortamentoUp
	EffectExtraFinePortamentoDown
	EffectSetPanbrelloWaveform
	EffectFinePatternDelay
	EffectSoundControl
	EffectHighOffset
	EffectPanbrello
	EffectMIDIMacro
	EffectSmoothMIDIMacro
)

// Command classifies the effect. Classification is interpretive: a
// pair outside the FastTracker II and ModPlug command set returns
// EffectUnknown instead of failing, so files with junk in the effect
// column still decode.
func (e Effect) Command() EffectCommand {
	switch e.Type {
	case 0x00:
		return EffectArpeggio
	case 0x01:
		return EffectPortamentoUp
	case 0x02:
		return EffectPortamentoDown
	case 0x03:
		return EffectTonePortamento
	case 0x04:
		return EffectVibrato
	case 0x05:
		return EffectTonePortamentoVolumeSlide
	case 0x06:
		return EffectVibratoVolumeSlide
	case 0x07:
		return EffectTremolo
	case 0x08:
		return EffectSetPanning
	case 0x09:
		return EffectSampleOffset
	case 0x0A:
		return EffectVolumeSlide
	case 0x0B:
		return EffectPositionJump
	case 0x0C:
		return EffectSetVolume
	case 0x0D:
		return EffectPatternBreak
	case 0x0E:
		switch e.Param >> 4 {
		case 0x1:
			return EffectFinePortamentoUp
		case 0x2:
			return EffectFinePortamentoDown
		case 0x3:
			return EffectGlissandoControl
		case 0x4:
			return EffectSetVibratoWaveform
		case 0x5:
			return EffectSetFinetune
		case 0x6:
			if e.Param == 0x60 {
				return EffectPatternLoopStart
			}
			return EffectPatternLoop
		case 0x7:
			return EffectSetTremoloWaveform
		case 0x8:
			return EffectSetCoarsePanning
		case 0x9:
			return EffectRetrigger
		case 0xA:
			return EffectFineVolumeSlideUp
		case 0xB:
			return EffectFineVolumeSlideDown
		case 0xC:
			return EffectNoteCut
		case 0xD:
			return EffectNoteDelay
		case 0xE:
			return EffectPatternDelay
		case 0xF:
			return EffectSetActiveMacro
		}
		return EffectUnknown
	case 0x0F:
		return EffectSetTempo
	case 0x10:
		return EffectSetGlobalVolume
	case 0x11:
		return EffectGlobalVolumeSlide
	case 0x14:
		return EffectKeyOff
	case 0x15:
		return EffectSetEnvelopePosition
	case 0x19:
		return EffectPanningSlide
	case 0x1B:
		return EffectRetriggerWithVolume
	case 0x1D:
		return EffectTremor
	case 0x21:
		switch e.Param >> 4 {
		case 0x1:
			return EffectExtraFinePortamentoUp
		case 0x2:
			return EffectExtraFinePortamentoDown
		case 0x5:
			return EffectSetPanbrelloWaveform
		case 0x6:
			return EffectFinePatternDelay
		case 0x9:
			return EffectSoundControl
		case 0xA:
			return EffectHighOffset
		}
		return EffectUnknown
	case 0x22:
		return EffectPanbrello
	case 0x23:
		return EffectMIDIMacro
	case 0x24:
		return EffectSmoothMIDIMacro
	}
	return EffectUnknown
}

// Argument returns the parameter bits the command consumes: the low
// nibble for the E and X subcommands, the full byte for the rest.
func (e Effect) Argument() uint8 {
	if e.Type == 0x0E || e.Type == 0x21 {
		return e.Param & 0xF
	}
	return e.Param
}

// String renders the effect in the three character tracker notation:
// "A0F", "E92", "X1A". Pairs outside the known command set render as
// "???".
func (e Effect) String() string {
	if e.Command() == EffectUnknown {
		return "???"
	}
	return fmt.Sprintf("%c%02X", e.letter(), e.Param)
}

func (e Effect) letter() byte {
	if e.Type < 0x10 {
		return "0123456789ABCDEF"[e.Type]
	}
	switch e.Type {
	case 0x10:
		return 'G'
	case 0x11:
		return 'H'
	case 0x14:
		return 'K'
	case 0x15:
		return 'L'
	case 0x19:
		return 'P'
	case 0x1B:
		return 'R'
	case 0x1D:
		return 'T'
	case 0x21:
		return 'X'
	case 0x22:
		return 'Y'
	case 0x23:
		return 'Z'
	case 0x24:
		return '\\'
	}
	return '?'
}
