// Package nbt implements the byte-level encoding strategies behind
// Minecraft's Named Binary Tag format: BigEndian (Java Edition), LittleEndian
// (Bedrock Edition world saves), and NetworkLittleEndian (Bedrock Edition's
// network protocol, which mixes fixed-width little-endian primitives with
// zig-zag varints).
//
// This package is the encoding layer only. It knows how to read and write
// the primitives a tag serializer needs — fixed-width integers and floats,
// the end marker, length-prefixed strings, and typed arrays — uniformly
// across all three wire formats. It does not know anything about the NBT
// tag tree itself; a caller builds up a document by driving these
// primitives in the order its own tag grammar dictates, the same way
// encoding/binary's Read/Write calls are driven by a caller that understands
// its own wire format.
//
// Every operation returns *errpath.Error on failure, which carries a
// structural root-to-leaf trail of errpath.Field and errpath.Element steps
// so a caller can report exactly which array index or compound field was
// being decoded when something went wrong.
package nbt
