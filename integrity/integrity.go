// Package integrity implements the obfuscation and checksum mechanisms that
// protect a configuration image: the XOR stream cipher used for transport,
// the legacy 16-bit weighted checksum, and the CRC-32 used by newer
// firmware releases.
package integrity

// XORKey is the base constant of the obfuscation stream.
const XORKey = 0x5A

// BinaryMagic marks a standalone .bin file, prepended by old releases and
// appended by current ones.
const BinaryMagic uint32 = 0x63576223

// Obfuscate applies the self-inverse XOR stream to data and returns a new
// buffer. The first two bytes identify the layout and pass through
// unmodified; every following byte at index i is XORed with (XORKey+i)&0xff.
// Calling it twice yields the original bytes.
func Obfuscate(data []byte) []byte {
	out := make([]byte, len(data))
	n := copy(out, data)
	if n <= 2 {
		return out
	}
	for i := 2; i < len(data); i++ {
		out[i] = data[i] ^ byte(XORKey+i)
	}
	return out
}

// Checksum16 computes the legacy weighted checksum over data[0:size]:
// the unsigned 16-bit sum of byte[i]*(i+1). Offsets 14 and 15 hold the
// stored checksum itself in every legacy layout and are skipped.
func Checksum16(data []byte, size int) uint16 {
	if size > len(data) {
		size = len(data)
	}
	var crc uint32
	for i := 0; i < size; i++ {
		if i == 14 || i == 15 {
			continue
		}
		crc += uint32(data[i]) * uint32(i+1)
	}
	return uint16(crc)
}

// CRC32 computes the image checksum used by newer firmware: reflected
// CRC-32 with polynomial 0xEDB88320 over all bytes except the trailing
// 4-byte slot that stores the value.
//
// The firmware's loop starts from crc=0 and complements only at the end,
// which differs from the standard init-to-all-ones variant; hash/crc32
// cannot reproduce it, so the bit loop is kept verbatim.
func CRC32(data []byte) uint32 {
	var crc uint32
	end := len(data) - 4
	if end < 0 {
		end = 0
	}
	for i := 0; i < end; i++ {
		crc ^= uint32(data[i])
		for b := 0; b < 8; b++ {
			crc = (crc >> 1) ^ (-(crc & 1) & 0xEDB88320)
		}
	}
	return ^crc
}
