package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasconf/tasconf/codec"
	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/internal/buf"
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/sniff"
)

// buildPlain fabricates a valid de-obfuscated image for the given version:
// correct stored size, platform marker, and checksum.
func buildPlain(t *testing.T, version uint32) []byte {
	t.Helper()
	reg := schema.Defaults()
	entry, err := reg.Resolve(version)
	require.NoError(t, err)

	plain := make([]byte, entry.Size)
	buf.PutU32LE(plain, 0x008, version)
	if entry.Fields.Has("cfg_size") {
		buf.PutU16LE(plain, 0x002, uint16(entry.Size))
	}
	if version < schema.CRC32Version {
		buf.PutU16LE(plain, 0x00E, integrity.Checksum16(plain, entry.Size))
	} else {
		buf.PutU32LE(plain, 0xFFC, integrity.CRC32(plain))
	}
	return plain
}

func TestParseCurrentImage(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)

	assert.Equal(t, uint32(0x08020004), img.Info.Version)
	assert.Equal(t, uint32(0x08020004), img.Info.Entry.Version)
	assert.Equal(t, schema.ESP82, img.Info.Platform)
	assert.Equal(t, "8.2.0.4", img.VersionString())

	// the encoded form must round back to the plain form
	assert.Equal(t, plain, integrity.Obfuscate(img.Encoded))
}

func TestParseESP32Image(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	plain[0xF36] = 1
	buf.PutU32LE(plain, 0xFFC, integrity.CRC32(plain))

	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)
	assert.Equal(t, schema.ESP32, img.Info.Platform)
}

func TestParseInvalidPlatformMarker(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	plain[0xF36] = 7
	buf.PutU32LE(plain, 0xFFC, integrity.CRC32(plain))

	_, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.Error(t, err)

	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{Lenient: true, Report: func(error) {}})
	require.NoError(t, err)
	assert.Equal(t, schema.ESP82, img.Info.Platform, "invalid marker falls back to legacy platform")
}

func TestParseIntermediateVersion(t *testing.T) {
	// a release between two known layouts resolves to the older one
	plain := buildPlain(t, 0x06020105)

	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x06020105), img.Info.Version)
	assert.Equal(t, uint32(0x06020100), img.Info.Entry.Version)
}

func TestParseUnsupportedVersion(t *testing.T) {
	plain := make([]byte, 0x670)
	buf.PutU32LE(plain, 0x008, 0x04000000)
	_, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestParseSizeMismatch(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	buf.PutU16LE(plain, 0x002, 0x0E00)
	buf.PutU32LE(plain, 0xFFC, integrity.CRC32(plain))

	_, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too small")
}

func TestParseCRCMismatch(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	buf.PutU32LE(plain, 0xFFC, 0xDEADBEEF)

	_, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRC32")

	var reported []error
	img, err := FromPlain(plain, schema.Defaults(),
		&codec.Policy{Lenient: true, Report: func(e error) { reported = append(reported, e) }})
	require.NoError(t, err, "checksum mismatch is recoverable under a lenient policy")
	require.NotNil(t, img)
	assert.Len(t, reported, 1)
}

func TestLegacyChecksumVerification(t *testing.T) {
	plain := buildPlain(t, 0x06020100)

	_, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)

	buf.PutU16LE(plain, 0x00E, 0xBEEF)
	_, err = FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRC")
}

func TestMapHeader(t *testing.T) {
	restore := Now
	Now = func() time.Time { return time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { Now = restore }()

	plain := buildPlain(t, 0x08020004)
	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)

	tree := img.Map(&codec.Policy{})
	header, ok := tree[HeaderName].(map[string]any)
	require.True(t, ok, "mapped tree must carry the metadata header")

	template := header["template"].(map[string]any)
	assert.Equal(t, "0x8020004", template["version"])
	data := header["data"].(map[string]any)
	assert.Equal(t, "0x8020004", data["version"])
	assert.Equal(t, len(plain), data["size"])
	assert.Equal(t, data["crc32"], template["crc32"], "stored and computed CRC32 agree on a valid image")

	program := header["program"].(map[string]any)
	assert.Equal(t, ProgName, program["name"])

	// zero stored timestamp falls back to the substituted clock
	assert.Equal(t, "2020-04-01 12:00:00", header["timestamp"])
}

func TestApplyRoundTrip(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)

	next, err := img.Apply(map[string]any{"altitude": float64(-125)}, &codec.Policy{})
	require.NoError(t, err)

	assert.True(t, img.Changed(next))
	assert.Equal(t, plain, img.Plain, "source image must stay untouched")

	tree := next.Map(&codec.Policy{})
	assert.Equal(t, int64(-125), tree["altitude"])

	// the patched checksum must re-validate
	reparsed, err := FromPlain(next.Plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)
	assert.Equal(t, next.Info.Version, reparsed.Info.Version)
}

func TestApplyUnchangedData(t *testing.T) {
	plain := buildPlain(t, 0x08020004)
	img, err := FromPlain(plain, schema.Defaults(), &codec.Policy{})
	require.NoError(t, err)

	next, err := img.Apply(map[string]any{HeaderName: map[string]any{"junk": 1}}, &codec.Policy{})
	require.NoError(t, err)
	assert.False(t, img.Changed(next), "header-only restore data changes nothing")
}

func TestFromFileKinds(t *testing.T) {
	reg := schema.Defaults()
	plain := buildPlain(t, 0x08020004)
	encoded := integrity.Obfuscate(plain)

	img, err := FromFile(encoded, sniff.RawDump, reg, &codec.Policy{})
	require.NoError(t, err)
	assert.Equal(t, plain, img.Plain)

	var marker [4]byte
	buf.PutU32LE(marker[:], 0, integrity.BinaryMagic)
	wrapped := append(append([]byte{}, plain...), marker[:]...)
	kind := sniff.Classify(wrapped, reg.Sizes())
	require.Equal(t, sniff.BinaryDump, kind)
	img, err = FromFile(wrapped, kind, reg, &codec.Policy{})
	require.NoError(t, err)
	assert.Equal(t, plain, img.Plain)

	_, err = FromFile(wrapped[:len(wrapped)-1], sniff.InvalidBinary, reg, &codec.Policy{})
	require.Error(t, err)
}

func TestParseJSONHeader(t *testing.T) {
	tree, hasHeader, err := ParseJSON([]byte(`{"header":{},"altitude":12}`))
	require.NoError(t, err)
	assert.True(t, hasHeader)
	assert.Equal(t, float64(12), tree["altitude"])

	_, hasHeader, err = ParseJSON([]byte(`{"altitude":12}`))
	require.NoError(t, err)
	assert.False(t, hasHeader)

	_, _, err = ParseJSON([]byte(`{broken`))
	require.Error(t, err)
}
