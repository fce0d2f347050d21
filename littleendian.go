package nbt

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-mclib/nbt/errpath"
)

// LittleEndian encodes every fixed-width primitive least-significant-byte
// first. This is the format used by Minecraft: Bedrock Edition world saves.
// It is not to be confused with NetworkLittleEndian, Bedrock's protocol
// format, which only keeps LittleEndian's byte order for i16/f32/f64 and
// switches i32/i64 to zig-zag varints.
type LittleEndian struct{}

var (
	_ Reader = LittleEndian{}
	_ Writer = LittleEndian{}
)

func (LittleEndian) U8(r io.Reader) (byte, *errpath.Error) { return readU8(r) }

func (LittleEndian) I16(r io.Reader) (int16, *errpath.Error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func (LittleEndian) I32(r io.Reader) (int32, *errpath.Error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (LittleEndian) I64(r io.Reader) (int64, *errpath.Error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func (LittleEndian) F32(r io.Reader) (float32, *errpath.Error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

// F64's buffer is sized for float64 directly rather than borrowed from a
// neighboring integer read; the two happen to be the same width (8 bytes)
// on every real target, but the buffer here is declared for the type it's
// actually decoding.
func (LittleEndian) F64(r io.Reader) (float64, *errpath.Error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

func (e LittleEndian) End(r io.Reader) *errpath.Error { return defaultEnd(e, r) }
func (e LittleEndian) String(r io.Reader) (string, *errpath.Error) { return defaultString(e, r) }
func (e LittleEndian) U8Vec(r io.Reader) ([]byte, *errpath.Error) { return defaultU8Vec(e, r) }
func (e LittleEndian) I32Vec(r io.Reader) ([]int32, *errpath.Error) { return defaultI32Vec(e, r) }
func (e LittleEndian) I64Vec(r io.Reader) ([]int64, *errpath.Error) { return defaultI64Vec(e, r) }

func (LittleEndian) WriteU8(w io.Writer, v byte) *errpath.Error { return writeU8(w, v) }

func (LittleEndian) WriteI16(w io.Writer, v int16) *errpath.Error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (LittleEndian) WriteI32(w io.Writer, v int32) *errpath.Error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (LittleEndian) WriteI64(w io.Writer, v int64) *errpath.Error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (LittleEndian) WriteF32(w io.Writer, v float32) *errpath.Error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (LittleEndian) WriteF64(w io.Writer, v float64) *errpath.Error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (e LittleEndian) WriteEnd(w io.Writer) *errpath.Error { return defaultWriteEnd(e, w) }
func (e LittleEndian) WriteString(w io.Writer, v string) *errpath.Error { return defaultWriteString(e, w, v) }
func (e LittleEndian) WriteU8Vec(w io.Writer, v []byte) *errpath.Error { return defaultWriteU8Vec(e, w, v) }
func (e LittleEndian) WriteI32Vec(w io.Writer, v []int32) *errpath.Error { return defaultWriteI32Vec(e, w, v) }
func (e LittleEndian) WriteI64Vec(w io.Writer, v []int64) *errpath.Error { return defaultWriteI64Vec(e, w, v) }
