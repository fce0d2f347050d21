package nbt

import (
	"io"
	"unicode/utf8"

	"github.com/go-mclib/nbt/errpath"
)

// maxPrealloc bounds how many bytes a length-prefixed read will reserve up
// front, regardless of what the wire claims the length is; typed arrays
// reserve at most maxPrealloc divided by their element size in elements. A 2 GiB length prefix must not force a 2 GiB
// allocation before a single byte has actually arrived; the backing slice
// grows incrementally as bytes are read past this clamp.
const maxPrealloc = 1024

// Reader is the read half of an encoding's primitive codec contract.
//
// I16, I32, I64, F32, and F64 are required: every encoding must define its
// own byte order (or varint scheme) for these. U8, End, String, U8Vec,
// I32Vec, and I64Vec have default implementations below, expressed purely
// in terms of the required operations — an encoding only overrides one of
// these when its wire format genuinely diverges, the way
// NetworkLittleEndian overrides String for its varint length prefix.
//
// No method may panic; every failure is returned as an *errpath.Error.
type Reader interface {
	U8(r io.Reader) (byte, *errpath.Error)
	I16(r io.Reader) (int16, *errpath.Error)
	I32(r io.Reader) (int32, *errpath.Error)
	I64(r io.Reader) (int64, *errpath.Error)
	F32(r io.Reader) (float32, *errpath.Error)
	F64(r io.Reader) (float64, *errpath.Error)

	End(r io.Reader) *errpath.Error
	String(r io.Reader) (string, *errpath.Error)
	U8Vec(r io.Reader) ([]byte, *errpath.Error)
	I32Vec(r io.Reader) ([]int32, *errpath.Error)
	I64Vec(r io.Reader) ([]int64, *errpath.Error)
}

// readU8 is the shared default for Reader.U8: byte order is meaningless for
// a single byte, so every encoding delegates here instead of restating it.
func readU8(r io.Reader) (byte, *errpath.Error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return buf[0], nil
}

// defaultEnd is the shared default for Reader.End.
func defaultEnd(e Reader, r io.Reader) *errpath.Error {
	b, err := e.U8(r)
	if err != nil {
		return err
	}
	if b != 0x00 {
		return errpath.New(&errpath.UnexpectedTag{
			Expected: "END (0x00)",
			Actual:   hexByte(b),
		})
	}
	return nil
}

// defaultString is the shared default for Reader.String: an i16 length
// prefix followed by that many UTF-8 bytes. NetworkLittleEndian does not use
// this default — its string length prefix is an unsigned varint instead.
func defaultString(e Reader, r io.Reader) (string, *errpath.Error) {
	length, err := e.I16(r)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", errpath.New(&errpath.SeqLengthViolation{Max: 32767, Saw: int(length)})
	}

	buf := make([]byte, 0, min(int(length), maxPrealloc))
	for i := 0; i < int(length); i++ {
		b, err := e.U8(r)
		if err != nil {
			return "", err.Prepend(errpath.Element(i))
		}
		buf = append(buf, b)
	}

	if !utf8.Valid(buf) {
		return "", errpath.New(&errpath.InvalidUTF8{Err: errInvalidUTF8})
	}
	return string(buf), nil
}

// defaultU8Vec is the shared default for Reader.U8Vec: an i32 length prefix
// (the encoding's own I32, so a varint-based encoding gets a varint length
// prefix for free) followed by that many raw bytes.
func defaultU8Vec(e Reader, r io.Reader) ([]byte, *errpath.Error) {
	length, err := e.I32(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: int(length)})
	}

	out := make([]byte, 0, min(int(length), maxPrealloc))
	for i := 0; i < int(length); i++ {
		b, err := e.U8(r)
		if err != nil {
			return nil, err.Prepend(errpath.Element(i))
		}
		out = append(out, b)
	}
	return out, nil
}

// defaultI32Vec is the shared default for Reader.I32Vec.
func defaultI32Vec(e Reader, r io.Reader) ([]int32, *errpath.Error) {
	length, err := e.I32(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: int(length)})
	}

	out := make([]int32, 0, min(int(length), maxPrealloc/4))
	for i := 0; i < int(length); i++ {
		v, err := e.I32(r)
		if err != nil {
			return nil, err.Prepend(errpath.Element(i))
		}
		out = append(out, v)
	}
	return out, nil
}

// defaultI64Vec is the shared default for Reader.I64Vec.
func defaultI64Vec(e Reader, r io.Reader) ([]int64, *errpath.Error) {
	length, err := e.I32(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: int(length)})
	}

	out := make([]int64, 0, min(int(length), maxPrealloc/8))
	for i := 0; i < int(length); i++ {
		v, err := e.I64(r)
		if err != nil {
			return nil, err.Prepend(errpath.Element(i))
		}
		out = append(out, v)
	}
	return out, nil
}
