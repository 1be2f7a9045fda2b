package xm

import "encoding/json"

// FrequencyTable selects how note periods convert to playback rates,
// chosen by bit 0 of the header flags.
type FrequencyTable uint8

const (
	AmigaFrequencies FrequencyTable = iota
	LinearFrequencies
)

func (t FrequencyTable) String() string {
	if t == LinearFrequencies {
		return "linear"
	}
	return "amiga"
}

// MarshalYAML encodes the table mode as its name rather than a bare
// number.
func (t FrequencyTable) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t FrequencyTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Module is a fully decoded XM file. Only the significant entries of
// the pattern order table are kept; the file level padding up to the
// table capacity is dropped during decoding.
type Module struct {
	Name            string
	TrackerName     string
	Version         uint16
	Channels        int
	RestartPosition int
	FrequencyTable  FrequencyTable
	DefaultTempo    int
	DefaultBPM      int
	Order           []uint8 `yaml:",flow"`
	Patterns        []Pattern
	Instruments     []Instrument
}
