package xm

import (
	"encoding/binary"
	"fmt"
)

// reader is a bounded little endian cursor over the file bytes. Every
// read checks the remaining length first, so the decoder can never run
// past the end of the data or past the end of a length prefixed block
// carved out with sub.
type reader struct {
	data      []byte
	pos       int
	base      int64
	component string
}

func newReader(data []byte, component string) *reader {
	return &reader{data: data, component: component}
}

// offset is the absolute position in the file, also for readers carved
// out of a larger one.
func (r *reader) offset() int64 { return r.base + int64(r.pos) }

func (r *reader) remaining() int { return len(r.data) - r.pos }

// setComponent names the decoder stage for subsequent errors.
func (r *reader) setComponent(name string) { r.component = name }

// errorf builds a FormatError at the current position.
func (r *reader) errorf(sentinel error, format string, a ...any) *FormatError {
	return &FormatError{
		Err:       sentinel,
		Component: r.component,
		Offset:    r.offset(),
		Detail:    fmt.Sprintf(format, a...),
	}
}

// errorfAt is errorf for a field that was already consumed.
func (r *reader) errorfAt(sentinel error, offset int64, format string, a ...any) *FormatError {
	e := r.errorf(sentinel, format, a...)
	e.Offset = offset
	return e
}

func (r *reader) bytes(n int) ([]byte, error) {
	// n goes negative when a declared u32 size wraps the int
	// conversion on 32 bit targets.
	if n < 0 || r.remaining() < n {
		return nil, r.errorf(ErrUnexpectedEOF, "need %d bytes, have %d", n, r.remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) skip(n int) error {
	_, err := r.bytes(n)
	return err
}

func (r *reader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// sub carves the next n bytes into an independent reader, so a length
// prefixed block can be decoded without ever reading past its declared
// end. The parent cursor advances over the whole block.
func (r *reader) sub(n int) (*reader, error) {
	start := r.offset()
	b, err := r.bytes(n)
	if err != nil {
		return nil, err
	}
	return &reader{data: b, base: start, component: r.component}, nil
}
