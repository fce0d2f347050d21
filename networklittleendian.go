package nbt

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/go-mclib/nbt/errpath"
)

// NetworkLittleEndian is the hybrid format Minecraft: Bedrock Edition uses
// on the wire: i16/f32/f64 stay fixed-width little-endian, but i32 and i64
// are zig-zag varints, and strings are prefixed by an unsigned varint byte
// length instead of a fixed i16. Because arrays reuse the encoding's own
// I32/WriteI32 for their length prefix, array lengths become varints too,
// automatically, the moment I32 is overridden below.
type NetworkLittleEndian struct{}

var (
	_ Reader = NetworkLittleEndian{}
	_ Writer = NetworkLittleEndian{}
)

func (NetworkLittleEndian) U8(r io.Reader) (byte, *errpath.Error) { return readU8(r) }

func (NetworkLittleEndian) I16(r io.Reader) (int16, *errpath.Error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

// I32 decodes a zig-zag varint rather than a fixed-width integer.
func (NetworkLittleEndian) I32(r io.Reader) (int32, *errpath.Error) { return readZigzag32(r) }

// I64 decodes a zig-zag varint rather than a fixed-width integer.
func (NetworkLittleEndian) I64(r io.Reader) (int64, *errpath.Error) { return readZigzag64(r) }

func (NetworkLittleEndian) F32(r io.Reader) (float32, *errpath.Error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

func (NetworkLittleEndian) F64(r io.Reader) (float64, *errpath.Error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func (e NetworkLittleEndian) End(r io.Reader) *errpath.Error { return defaultEnd(e, r) }

// String overrides the default: the length prefix is an unsigned varint,
// never zig-zagged, and is decoded with its own loop rather than via I32
// (I32 here means something else entirely: a zig-zagged signed value).
func (NetworkLittleEndian) String(r io.Reader) (string, *errpath.Error) {
	length, err := readUvarint32(r)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, min(int(length), maxPrealloc))
	for i := uint32(0); i < length; i++ {
		b, err := readU8(r)
		if err != nil {
			return "", err.Prepend(errpath.Element(int(i)))
		}
		buf = append(buf, b)
	}

	if !utf8.Valid(buf) {
		return "", errpath.New(&errpath.InvalidUTF8{Err: errInvalidUTF8})
	}
	return string(buf), nil
}

func (e NetworkLittleEndian) U8Vec(r io.Reader) ([]byte, *errpath.Error) { return defaultU8Vec(e, r) }
func (e NetworkLittleEndian) I32Vec(r io.Reader) ([]int32, *errpath.Error) { return defaultI32Vec(e, r) }
func (e NetworkLittleEndian) I64Vec(r io.Reader) ([]int64, *errpath.Error) { return defaultI64Vec(e, r) }

func (NetworkLittleEndian) WriteU8(w io.Writer, v byte) *errpath.Error { return writeU8(w, v) }

func (NetworkLittleEndian) WriteI16(w io.Writer, v int16) *errpath.Error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

// WriteI32 emits a zig-zag varint rather than a fixed-width integer.
func (NetworkLittleEndian) WriteI32(w io.Writer, v int32) *errpath.Error {
	return writeZigzag32(w, v)
}

// WriteI64 emits a zig-zag varint rather than a fixed-width integer.
func (NetworkLittleEndian) WriteI64(w io.Writer, v int64) *errpath.Error {
	return writeZigzag64(w, v)
}

func (NetworkLittleEndian) WriteF32(w io.Writer, v float32) *errpath.Error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (NetworkLittleEndian) WriteF64(w io.Writer, v float64) *errpath.Error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (e NetworkLittleEndian) WriteEnd(w io.Writer) *errpath.Error { return defaultWriteEnd(e, w) }

// WriteString overrides the default: lengths over 32767 are rejected just
// like the other two encodings, but the length itself is written as an
// unsigned varint rather than a fixed i16.
func (NetworkLittleEndian) WriteString(w io.Writer, v string) *errpath.Error {
	data := []byte(v)
	if len(data) > 32767 {
		return errpath.New(&errpath.SeqLengthViolation{Max: 32767, Saw: len(data)})
	}
	if err := writeUvarint32(w, uint32(len(data))); err != nil {
		return err
	}
	for i, b := range data {
		if err := writeU8(w, b); err != nil {
			return err.Prepend(errpath.Element(i))
		}
	}
	return nil
}

func (e NetworkLittleEndian) WriteU8Vec(w io.Writer, v []byte) *errpath.Error {
	return defaultWriteU8Vec(e, w, v)
}
func (e NetworkLittleEndian) WriteI32Vec(w io.Writer, v []int32) *errpath.Error {
	return defaultWriteI32Vec(e, w, v)
}
func (e NetworkLittleEndian) WriteI64Vec(w io.Writer, v []int64) *errpath.Error {
	return defaultWriteI64Vec(e, w, v)
}
