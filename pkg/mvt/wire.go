// pkg/mvt/wire.go - low-level protobuf wire encoding for MVT messages
package mvt

import "encoding/binary"

const (
	wireVarint         = 0
	wireLengthDelimited = 2
)

func appendTag(buf []byte, field int, wireType int) []byte {
	return appendUvarint(buf, uint64(field)<<3|uint64(wireType))
}

func appendUvarint(buf []byte, v uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], v)
	return append(buf, scratch[:n]...)
}

// appendVarint encodes a signed int64 using protobuf's zig-zag + varint
// scheme -- the same transform geometry command parameters use, as the
// sint64-typed Value field needs. encodeValue writes signed integers to
// int_value instead, so the encoder does not call this.
func appendVarint(buf []byte, v int64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutVarint(scratch[:], v)
	return append(buf, scratch[:n]...)
}

func appendLengthDelimited(buf []byte, field int, payload []byte) []byte {
	buf = appendTag(buf, field, wireLengthDelimited)
	buf = appendUvarint(buf, uint64(len(payload)))
	return append(buf, payload...)
}

func appendStringField(buf []byte, field int, s string) []byte {
	return appendLengthDelimited(buf, field, []byte(s))
}

func appendUvarintField(buf []byte, field int, v uint64) []byte {
	buf = appendTag(buf, field, wireVarint)
	return appendUvarint(buf, v)
}
