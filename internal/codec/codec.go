// internal/codec/codec.go
package codec

// The controller stores stick values as 12-bit unsigned integers packed
// two-per-three-bytes: byte0 is the low 8 bits of the first value, byte1
// splits its low nibble (first value's high 4 bits) and high nibble
// (second value's low 4 bits), byte2 is the second value's high 8 bits.
// The same layout is used by calibration records in SPI flash and by the
// stick block of every input report.

// GroupSize is the encoded size of one 12-bit value pair.
const GroupSize = 3

// Max12 is the largest encodable value. Callers mask or validate before
// encoding; packing itself is total over the 12-bit domain.
const Max12 = 0xFFF

// EncodePair packs two 12-bit values into one 3-byte group.
func EncodePair(v0, v1 uint16) [GroupSize]byte {
	var b [GroupSize]byte
	b[0] = byte(v0 & 0xFF)
	b[1] = byte((v0&0xF00)>>8) | byte((v1&0xF)<<4)
	b[2] = byte((v1 & 0xFF0) >> 4)
	return b
}

// DecodePair is the exact inverse of EncodePair. b must hold at least
// GroupSize bytes; extra bytes are ignored.
func DecodePair(b []byte) (v0, v1 uint16) {
	v0 = uint16(b[1]&0xF)<<8 | uint16(b[0])
	v1 = uint16(b[2])<<4 | uint16(b[1]&0xF0)>>4
	return v0, v1
}
