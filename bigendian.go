package nbt

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-mclib/nbt/errpath"
)

// BigEndian encodes every fixed-width primitive most-significant-byte
// first. This is the format used by Minecraft: Java Edition, both on disk
// and on the wire.
//
// BigEndian holds no state; the zero value is ready to use, and the same
// value can be reused across any number of independent reads and writes.
type BigEndian struct{}

var (
	_ Reader = BigEndian{}
	_ Writer = BigEndian{}
)

func (BigEndian) U8(r io.Reader) (byte, *errpath.Error) { return readU8(r) }

func (BigEndian) I16(r io.Reader) (int16, *errpath.Error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (BigEndian) I32(r io.Reader) (int32, *errpath.Error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (BigEndian) I64(r io.Reader) (int64, *errpath.Error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (BigEndian) F32(r io.Reader) (float32, *errpath.Error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

func (BigEndian) F64(r io.Reader) (float64, *errpath.Error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errpath.New(&errpath.IOFailure{Err: err})
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

func (e BigEndian) End(r io.Reader) *errpath.Error { return defaultEnd(e, r) }
func (e BigEndian) String(r io.Reader) (string, *errpath.Error) { return defaultString(e, r) }
func (e BigEndian) U8Vec(r io.Reader) ([]byte, *errpath.Error) { return defaultU8Vec(e, r) }
func (e BigEndian) I32Vec(r io.Reader) ([]int32, *errpath.Error) { return defaultI32Vec(e, r) }
func (e BigEndian) I64Vec(r io.Reader) ([]int64, *errpath.Error) { return defaultI64Vec(e, r) }

func (BigEndian) WriteU8(w io.Writer, v byte) *errpath.Error { return writeU8(w, v) }

func (BigEndian) WriteI16(w io.Writer, v int16) *errpath.Error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (BigEndian) WriteI32(w io.Writer, v int32) *errpath.Error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (BigEndian) WriteI64(w io.Writer, v int64) *errpath.Error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (BigEndian) WriteF32(w io.Writer, v float32) *errpath.Error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (BigEndian) WriteF64(w io.Writer, v float64) *errpath.Error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	if _, err := w.Write(buf[:]); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

func (e BigEndian) WriteEnd(w io.Writer) *errpath.Error { return defaultWriteEnd(e, w) }
func (e BigEndian) WriteString(w io.Writer, v string) *errpath.Error { return defaultWriteString(e, w, v) }
func (e BigEndian) WriteU8Vec(w io.Writer, v []byte) *errpath.Error { return defaultWriteU8Vec(e, w, v) }
func (e BigEndian) WriteI32Vec(w io.Writer, v []int32) *errpath.Error { return defaultWriteI32Vec(e, w, v) }
func (e BigEndian) WriteI64Vec(w io.Writer, v []int64) *errpath.Error { return defaultWriteI64Vec(e, w, v) }
