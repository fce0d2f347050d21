package nbt

// Encoding is the full primitive codec contract a tag serializer is built
// against: it can read and write every primitive an NBT payload is made
// of, regardless of which of the three concrete wire formats backs it.
//
// BigEndian, LittleEndian, and NetworkLittleEndian all satisfy Encoding.
// Each is a zero-size, stateless value type, so passing one by value or by
// pointer both satisfy this interface without any adapter — constructing a
// fresh instance is free, and two independent Encoding values used
// concurrently on two independent streams never share state.
type Encoding interface {
	Reader
	Writer
}

var (
	_ Encoding = BigEndian{}
	_ Encoding = LittleEndian{}
	_ Encoding = NetworkLittleEndian{}
)
