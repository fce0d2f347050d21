package nbt

import (
	"errors"
	"fmt"
	"math"
)

// maxInt32 is the write-side array length ceiling: arrays are
// length-prefixed with a signed 32-bit int, so 2^31-1 is the largest legal
// length regardless of how large the host's int actually is.
const maxInt32 = math.MaxInt32

// errInvalidUTF8 is the sentinel wrapped by errpath.InvalidUTF8 when a
// string payload fails UTF-8 validation. utf8.Valid reports only a bool, so
// this stands in for the underlying decoding error there otherwise isn't
// one to wrap.
var errInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// hexByte renders b the way an UnexpectedTag reason expects its actual-byte
// field formatted: lowercase, zero-padded, "0x"-prefixed.
func hexByte(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}
