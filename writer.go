package nbt

import (
	"io"

	"github.com/go-mclib/nbt/errpath"
)

// Writer is the write half of an encoding's primitive codec contract. It
// mirrors Reader exactly: WriteI16/32/64 and WriteF32/F64 are required,
// everything else has a default built from them below.
type Writer interface {
	WriteU8(w io.Writer, v byte) *errpath.Error
	WriteI16(w io.Writer, v int16) *errpath.Error
	WriteI32(w io.Writer, v int32) *errpath.Error
	WriteI64(w io.Writer, v int64) *errpath.Error
	WriteF32(w io.Writer, v float32) *errpath.Error
	WriteF64(w io.Writer, v float64) *errpath.Error

	WriteEnd(w io.Writer) *errpath.Error
	WriteString(w io.Writer, v string) *errpath.Error
	WriteU8Vec(w io.Writer, v []byte) *errpath.Error
	WriteI32Vec(w io.Writer, v []int32) *errpath.Error
	WriteI64Vec(w io.Writer, v []int64) *errpath.Error
}

// writeU8 is the shared default for Writer.WriteU8.
func writeU8(w io.Writer, v byte) *errpath.Error {
	if _, err := w.Write([]byte{v}); err != nil {
		return errpath.New(&errpath.IOFailure{Err: err})
	}
	return nil
}

// defaultWriteEnd is the shared default for Writer.WriteEnd.
func defaultWriteEnd(e Writer, w io.Writer) *errpath.Error {
	return e.WriteU8(w, 0x00)
}

// defaultWriteString is the shared default for Writer.WriteString: an i16
// length prefix followed by the string's UTF-8 bytes.
func defaultWriteString(e Writer, w io.Writer, v string) *errpath.Error {
	data := []byte(v)
	if len(data) > 32767 {
		return errpath.New(&errpath.SeqLengthViolation{Max: 32767, Saw: len(data)})
	}
	if err := e.WriteI16(w, int16(len(data))); err != nil {
		return err
	}
	for i, b := range data {
		if err := e.WriteU8(w, b); err != nil {
			return err.Prepend(errpath.Element(i))
		}
	}
	return nil
}

// defaultWriteU8Vec is the shared default for Writer.WriteU8Vec.
func defaultWriteU8Vec(e Writer, w io.Writer, v []byte) *errpath.Error {
	if len(v) > maxInt32 {
		return errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: len(v)})
	}
	if err := e.WriteI32(w, int32(len(v))); err != nil {
		return err
	}
	for i, b := range v {
		if err := e.WriteU8(w, b); err != nil {
			return err.Prepend(errpath.Element(i))
		}
	}
	return nil
}

// defaultWriteI32Vec is the shared default for Writer.WriteI32Vec.
func defaultWriteI32Vec(e Writer, w io.Writer, v []int32) *errpath.Error {
	if len(v) > maxInt32 {
		return errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: len(v)})
	}
	if err := e.WriteI32(w, int32(len(v))); err != nil {
		return err
	}
	for i, x := range v {
		if err := e.WriteI32(w, x); err != nil {
			return err.Prepend(errpath.Element(i))
		}
	}
	return nil
}

// defaultWriteI64Vec is the shared default for Writer.WriteI64Vec.
func defaultWriteI64Vec(e Writer, w io.Writer, v []int64) *errpath.Error {
	if len(v) > maxInt32 {
		return errpath.New(&errpath.SeqLengthViolation{Max: maxInt32, Saw: len(v)})
	}
	if err := e.WriteI32(w, int32(len(v))); err != nil {
		return err
	}
	for i, x := range v {
		if err := e.WriteI64(w, x); err != nil {
			return err.Prepend(errpath.Element(i))
		}
	}
	return nil
}
