package xm

// An XM file opens with this identification text, followed by the
// module name, a 0x1A marker byte and the name of the tracker that
// wrote the file.
const magic = "Extended Module: "

// CurrentVersion is the only format revision the decoder accepts, the
// 0x0104 layout every FastTracker II release since 2.04 writes. Older
// revisions interleave pattern data differently and are rejected as
// unsupported rather than misread.
const CurrentVersion = 0x0104

// headerTailSize is how many bytes of the header size field's count
// precede the order table: the size field itself plus the eight 2 byte
// fields after it.
const headerTailSize = 20

// parseHeader decodes the file header and the pattern order table and
// returns the module skeleton plus the declared pattern and instrument
// counts.
func parseHeader(r *reader) (m *Module, patterns, instruments int, err error) {
	id, err := r.bytes(len(magic))
	if err != nil {
		return nil, 0, 0, err
	}
	if string(id) != magic {
		return nil, 0, 0, r.errorfAt(ErrBadMagic, 0, "identification %q", id)
	}
	name, err := r.bytes(20)
	if err != nil {
		return nil, 0, 0, err
	}
	markerOff := r.offset()
	marker, err := r.uint8()
	if err != nil {
		return nil, 0, 0, err
	}
	if marker != 0x1A {
		return nil, 0, 0, r.errorfAt(ErrBadMagic, markerOff, "marker byte %#02x", marker)
	}
	trackerName, err := r.bytes(20)
	if err != nil {
		return nil, 0, 0, err
	}
	versionOff := r.offset()
	version, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	if version != CurrentVersion {
		return nil, 0, 0, r.errorfAt(ErrUnsupported, versionOff, "format version %#04x", version)
	}
	sizeOff := r.offset()
	headerSize, err := r.uint32()
	if err != nil {
		return nil, 0, 0, err
	}
	if headerSize < headerTailSize {
		return nil, 0, 0, r.errorfAt(ErrCorrupt, sizeOff, "header size %d", headerSize)
	}
	lengthOff := r.offset()
	songLength, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	if songLength < 1 || songLength > 256 {
		return nil, 0, 0, r.errorfAt(ErrOutOfRange, lengthOff, "song length %d not in 1..256", songLength)
	}
	restart, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	channelsOff := r.offset()
	channels, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	if channels < 1 || channels > 32 {
		return nil, 0, 0, r.errorfAt(ErrOutOfRange, channelsOff, "channel count %d not in 1..32", channels)
	}
	patternsOff := r.offset()
	patternCount, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	if patternCount < 1 || patternCount > 256 {
		return nil, 0, 0, r.errorfAt(ErrOutOfRange, patternsOff, "pattern count %d not in 1..256", patternCount)
	}
	instrumentsOff := r.offset()
	instrumentCount, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	if instrumentCount > 128 {
		return nil, 0, 0, r.errorfAt(ErrOutOfRange, instrumentsOff, "instrument count %d not in 0..128", instrumentCount)
	}
	flags, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	tempo, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}
	bpm, err := r.uint16()
	if err != nil {
		return nil, 0, 0, err
	}

	// The order table fills the rest of the declared header size. Only
	// the first songLength entries are significant, the rest is
	// padding.
	capacity := int(headerSize) - headerTailSize
	if int(songLength) > capacity {
		return nil, 0, 0, r.errorfAt(ErrCorrupt, lengthOff, "song length %d exceeds order table capacity %d", songLength, capacity)
	}
	orderOff := r.offset()
	table, err := r.bytes(capacity)
	if err != nil {
		return nil, 0, 0, err
	}
	order := make([]uint8, songLength)
	copy(order, table)
	for i, p := range order {
		if int(p) >= int(patternCount) {
			return nil, 0, 0, r.errorfAt(ErrCorrupt, orderOff+int64(i), "order entry %d references pattern %d of %d", i, p, patternCount)
		}
	}

	freq := AmigaFrequencies
	if flags&0x1 != 0 {
		freq = LinearFrequencies
	}
	m = &Module{
		Name:            decodeName(name),
		TrackerName:     decodeName(trackerName),
		Version:         version,
		Channels:        int(channels),
		RestartPosition: int(restart),
		FrequencyTable:  freq,
		DefaultTempo:    int(tempo),
		DefaultBPM:      int(bpm),
		Order:           order,
	}
	return m, int(patternCount), int(instrumentCount), nil
}
