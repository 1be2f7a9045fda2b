package xm

import (
	"errors"
	"fmt"
)

// Decode failures wrap one of these sentinels, so callers can classify
// a failure with errors.Is and decide whether to log, skip or abort.
var (
	ErrBadMagic         = errors.New("bad magic")
	ErrUnexpectedEOF    = errors.New("unexpected end of data")
	ErrOutOfRange       = errors.New("value out of range")
	ErrCorrupt          = errors.New("corrupt data")
	ErrTruncatedPattern = errors.New("truncated pattern data")
	ErrUnsupported      = errors.New("unsupported feature")
)

// FormatError describes why a file was rejected. Err is one of the
// sentinel errors above, Offset is the byte position of the offending
// data and Component names the decoder stage that gave up.
type FormatError struct {
	Err       error
	Component string
	Offset    int64
	Detail    string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("xm: %s at offset %d: %v", e.Component, e.Offset, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }
