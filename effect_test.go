package xm_test

import (
	"testing"

	xm "github.com/TheBrightSide/symphonia-xm-ext"
)

func TestVolumeColumn(t *testing.T) {
	cases := []struct {
		v    xm.VolumeColumn
		cmd  xm.VolumeCommand
		arg  uint8
		text string
	}{
		{0x10, xm.VolumeSet, 0, "v00"},
		{0x32, xm.VolumeSet, 34, "v34"},
		{0x50, xm.VolumeSet, 64, "v64"},
		{0x6F, xm.VolumeSlideDown, 15, "d15"},
		{0x71, xm.VolumeSlideUp, 1, "c01"},
		{0x84, xm.VolumeFineDown, 4, "b04"},
		{0x93, xm.VolumeFineUp, 3, "a03"},
		{0xA5, xm.VolumeVibratoSpeed, 5, "u05"},
		{0xB6, xm.VolumeVibratoDepth, 6, "h06"},
		{0xC8, xm.VolumePanning, 34, "p34"},
		{0xD2, xm.VolumePanSlideLeft, 2, "l02"},
		{0xE7, xm.VolumePanSlideRight, 7, "r07"},
		{0xF4, xm.VolumeTonePortamento, 4, "g04"},
		// a nibble below the set volume scale wraps the argument around
		{0x00, xm.VolumeSet, 240, "v240"},
	}
	for _, c := range cases {
		if cmd := c.v.Command(); cmd != c.cmd {
			t.Errorf("%#02x classified as %d, expected %d", uint8(c.v), cmd, c.cmd)
		}
		if arg := c.v.Argument(); arg != c.arg {
			t.Errorf("%#02x argument %d, expected %d", uint8(c.v), arg, c.arg)
		}
		if s := c.v.String(); s != c.text {
			t.Errorf("%#02x renders %q, expected %q", uint8(c.v), s, c.text)
		}
	}
}

func TestEffectCommands(t *testing.T) {
	cases := []struct {
		effect xm.Effect
		cmd    xm.EffectCommand
		arg    uint8
		text   string
	}{
		{xm.Effect{Type: 0x00, Param: 0x34}, xm.EffectArpeggio, 0x34, "034"},
		{xm.Effect{Type: 0x03, Param: 0x20}, xm.EffectTonePortamento, 0x20, "320"},
		{xm.Effect{Type: 0x08, Param: 0x80}, xm.EffectSetPanning, 0x80, "880"},
		{xm.Effect{Type: 0x0A, Param: 0x0F}, xm.EffectVolumeSlide, 0x0F, "A0F"},
		{xm.Effect{Type: 0x0C, Param: 0x40}, xm.EffectSetVolume, 0x40, "C40"},
		{xm.Effect{Type: 0x0E, Param: 0x12}, xm.EffectFinePortamentoUp, 0x02, "E12"},
		{xm.Effect{Type: 0x0E, Param: 0x60}, xm.EffectPatternLoopStart, 0x00, "E60"},
		{xm.Effect{Type: 0x0E, Param: 0x63}, xm.EffectPatternLoop, 0x03, "E63"},
		{xm.Effect{Type: 0x0E, Param: 0x85}, xm.EffectSetCoarsePanning, 0x05, "E85"},
		{xm.Effect{Type: 0x0E, Param: 0x92}, xm.EffectRetrigger, 0x02, "E92"},
		{xm.Effect{Type: 0x0E, Param: 0xC4}, xm.EffectNoteCut, 0x04, "EC4"},
		{xm.Effect{Type: 0x0F, Param: 0x7D}, xm.EffectSetTempo, 0x7D, "F7D"},
		{xm.Effect{Type: 0x10, Param: 0x40}, xm.EffectSetGlobalVolume, 0x40, "G40"},
		{xm.Effect{Type: 0x11, Param: 0x21}, xm.EffectGlobalVolumeSlide, 0x21, "H21"},
		{xm.Effect{Type: 0x14, Param: 0x03}, xm.EffectKeyOff, 0x03, "K03"},
		{xm.Effect{Type: 0x15, Param: 0x10}, xm.EffectSetEnvelopePosition, 0x10, "L10"},
		{xm.Effect{Type: 0x19, Param: 0xF0}, xm.EffectPanningSlide, 0xF0, "PF0"},
		{xm.Effect{Type: 0x1B, Param: 0x42}, xm.EffectRetriggerWithVolume, 0x42, "R42"},
		{xm.Effect{Type: 0x1D, Param: 0x33}, xm.EffectTremor, 0x33, "T33"},
		{xm.Effect{Type: 0x21, Param: 0x1A}, xm.EffectExtraFinePortamentoUp, 0x0A, "X1A"},
		{xm.Effect{Type: 0x21, Param: 0x26}, xm.EffectExtraFinePortamentoDown, 0x06, "X26"},
		{xm.Effect{Type: 0x21, Param: 0x91}, xm.EffectSoundControl, 0x01, "X91"},
		{xm.Effect{Type: 0x22, Param: 0x33}, xm.EffectPanbrello, 0x33, "Y33"},
		{xm.Effect{Type: 0x23, Param: 0x01}, xm.EffectMIDIMacro, 0x01, "Z01"},
		{xm.Effect{Type: 0x24, Param: 0x05}, xm.EffectSmoothMIDIMacro, 0x05, "\\05"},
	}
	for _, c := range cases {
		if cmd := c.effect.Command(); cmd != c.cmd {
			t.Errorf("effect %02X %02X classified as %d, expected %d",
				c.effect.Type, c.effect.Param, cmd, c.cmd)
		}
		if arg := c.effect.Argument(); arg != c.arg {
			t.Errorf("effect %02X %02X argument %#02x, expected %#02x",
				c.effect.Type, c.effect.Param, arg, c.arg)
		}
		if s := c.effect.String(); s != c.text {
			t.Errorf("effect %02X %02X renders %q, expected %q",
				c.effect.Type, c.effect.Param, s, c.text)
		}
	}
}

func TestUnknownEffects(t *testing.T) {
	unknown := []xm.Effect{
		{Type: 0x0E, Param: 0x05}, // E0x is not a command
		{Type: 0x12},
		{Type: 0x21, Param: 0x3F},
		{Type: 0x25},
		{Type: 0xFF, Param: 0xFF},
	}
	for _, e := range unknown {
		if cmd := e.Command(); cmd != xm.EffectUnknown {
			t.Errorf("effect %02X %02X classified as %d, expected unknown", e.Type, e.Param, cmd)
		}
		if s := e.String(); s != "???" {
			t.Errorf("effect %02X %02X renders %q, expected ???", e.Type, e.Param, s)
		}
	}
}

func TestEffectParamWithoutType(t *testing.T) {
	// cells storing only the parameter byte read the type as zero,
	// which classifies as an arpeggio
	e := xm.Effect{Param: 0x21}
	if e.Command() != xm.EffectArpeggio {
		t.Fatalf("got command %d, expected an arpeggio", e.Command())
	}
	if s := e.String(); s != "021" {
		t.Fatalf("got %q, expected %q", s, "021")
	}
}
