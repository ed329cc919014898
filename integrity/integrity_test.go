package integrity

import (
	"bytes"
	"testing"
)

func TestObfuscateSelfInverse(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 7)
	}
	enc := Obfuscate(data)
	if bytes.Equal(enc, data) {
		t.Fatalf("obfuscation changed nothing")
	}
	if enc[0] != data[0] || enc[1] != data[1] {
		t.Fatalf("first two bytes must pass through unmodified")
	}
	dec := Obfuscate(enc)
	if !bytes.Equal(dec, data) {
		t.Fatalf("double obfuscation did not restore original bytes")
	}
}

func TestObfuscateShortInput(t *testing.T) {
	for _, in := range [][]byte{nil, {0x12}, {0x12, 0x34}} {
		out := Obfuscate(in)
		if !bytes.Equal(out, in) {
			t.Fatalf("short input %v changed to %v", in, out)
		}
	}
	// output must be a fresh buffer, never aliased
	data := []byte{1, 2, 3, 4}
	out := Obfuscate(data)
	out[3] = 0xFF
	if data[3] != 4 {
		t.Fatalf("Obfuscate aliased its input")
	}
}

func TestChecksum16SkipsStoredSlot(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i + 1)
	}
	base := Checksum16(data, len(data))

	data[14] = 0xAA
	data[15] = 0xBB
	if got := Checksum16(data, len(data)); got != base {
		t.Fatalf("checksum changed after writing the stored slot: 0x%04x != 0x%04x", got, base)
	}

	data[3] ^= 1
	if got := Checksum16(data, len(data)); got == base {
		t.Fatalf("checksum did not change after data byte flip")
	}
}

func TestChecksum16Weighted(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 1
	data[2] = 1
	// byte[0]*1 + byte[2]*3
	if got := Checksum16(data, len(data)); got != 4 {
		t.Fatalf("Checksum16 = %d, want 4", got)
	}
}

func TestCRC32ExcludesTrailingSlot(t *testing.T) {
	data := make([]byte, 0x100)
	for i := range data {
		data[i] = byte(i)
	}
	base := CRC32(data)
	if base == 0 {
		t.Fatalf("CRC32 of non-trivial data is zero")
	}
	if got := CRC32(data); got != base {
		t.Fatalf("CRC32 not deterministic: 0x%08x != 0x%08x", got, base)
	}

	data[len(data)-1] = 0xFF
	data[len(data)-4] = 0xFF
	if got := CRC32(data); got != base {
		t.Fatalf("CRC32 changed after writing the trailing slot")
	}

	data[0] ^= 1
	if got := CRC32(data); got == base {
		t.Fatalf("CRC32 did not change after data byte flip")
	}
}
