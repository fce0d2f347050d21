package nbt

import (
	"io"

	"github.com/go-mclib/nbt/errpath"
)

// continuationBit marks every varint group byte but the last.
const continuationBit = 0x80

// errVarintOverflow is the reason returned once a varint has consumed its
// maximum number of continuation groups without terminating.
func errVarintOverflow() *errpath.Error {
	return errpath.New(&errpath.Custom{Message: "varint overflows integer"})
}

// writeUvarint32 emits the 7-bit groups of an unsigned LEB128 varint,
// setting the continuation bit on every byte but the last.
func writeUvarint32(w io.Writer, u uint32) *errpath.Error {
	for u >= continuationBit {
		if err := writeU8(w, byte(u)|continuationBit); err != nil {
			return err
		}
		u >>= 7
	}
	return writeU8(w, byte(u))
}

// writeUvarint64 is writeUvarint32's 64-bit counterpart.
func writeUvarint64(w io.Writer, u uint64) *errpath.Error {
	for u >= continuationBit {
		if err := writeU8(w, byte(u)|continuationBit); err != nil {
			return err
		}
		u >>= 7
	}
	return writeU8(w, byte(u))
}

// readUvarint32 decodes an unsigned LEB128 varint. A 32-bit value needs at
// most 5 groups of 7 bits (35 bits of shift headroom); if the 5th group's
// continuation bit is still set, the source never terminated the varint
// within range and no further byte is read.
func readUvarint32(r io.Reader) (uint32, *errpath.Error) {
	var v uint32
	for shift := uint(0); shift < 35; shift += 7 {
		b, err := readU8(r)
		if err != nil {
			return 0, err
		}
		v |= uint32(b&0x7f) << shift
		if b&continuationBit == 0 {
			return v, nil
		}
	}
	return 0, errVarintOverflow()
}

// readUvarint64 is readUvarint32's 64-bit counterpart: up to 10 groups of 7
// bits (70 bits of shift headroom).
func readUvarint64(r io.Reader) (uint64, *errpath.Error) {
	var v uint64
	for shift := uint(0); shift < 70; shift += 7 {
		b, err := readU8(r)
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << shift
		if b&continuationBit == 0 {
			return v, nil
		}
	}
	return 0, errVarintOverflow()
}

// zigzag32 interleaves positive and negative 32-bit integers so that values
// near zero occupy few varint bytes regardless of sign.
func zigzag32(x int32) uint32 {
	u := uint32(x) << 1
	if x < 0 {
		u = ^u
	}
	return u
}

// unzigzag32 reverses zigzag32 using the symmetric form (v>>1)^-(v&1),
// rather than the naive "negate v>>1 when the low bit is set" approach.
// The naive form mishandles the wire encoding of int32's minimum value
// (0xFF 0xFF 0xFF 0xFF 0x0F); the symmetric form decodes it to -2^31
// correctly.
func unzigzag32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

func zigzag64(x int64) uint64 {
	u := uint64(x) << 1
	if x < 0 {
		u = ^u
	}
	return u
}

func unzigzag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// writeZigzag32 writes x as a zig-zag varint.
func writeZigzag32(w io.Writer, x int32) *errpath.Error {
	return writeUvarint32(w, zigzag32(x))
}

// writeZigzag64 writes x as a zig-zag varint.
func writeZigzag64(w io.Writer, x int64) *errpath.Error {
	return writeUvarint64(w, zigzag64(x))
}

// readZigzag32 reads a zig-zag varint.
func readZigzag32(r io.Reader) (int32, *errpath.Error) {
	v, err := readUvarint32(r)
	if err != nil {
		return 0, err
	}
	return unzigzag32(v), nil
}

// readZigzag64 reads a zig-zag varint.
func readZigzag64(r io.Reader) (int64, *errpath.Error) {
	v, err := readUvarint64(r)
	if err != nil {
		return 0, err
	}
	return unzigzag64(v), nil
}
