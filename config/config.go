// Package config ties the layers together: it takes an obfuscated device
// image, verifies its integrity, resolves the matching layout, and converts
// between the binary image, the JSON value tree, and console commands.
package config

import (
	"github.com/tasconf/tasconf/codec"
	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/internal/buf"
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/sniff"
	"github.com/tasconf/tasconf/status"
)

// Program identity, embedded in backup headers and upload filenames.
var (
	ProgName    = "tasconf"
	ProgVersion = "1.0.0"
)

const versionOff = 0x008

// Info describes the resolved layout of an image.
type Info struct {
	// Version is the firmware version stored in the image.
	Version uint32
	// Platform is the hardware platform the image was written by.
	Platform schema.Platform
	// Entry is the greatest registered layout not newer than Version.
	Entry schema.Entry
}

// Image is a configuration image together with its resolved layout. Encoded
// holds the obfuscated bytes as the device stores them, Plain the readable
// bytes all field access goes through.
type Image struct {
	Encoded []byte
	Plain   []byte
	Info    Info
}

// FromEncoded parses an obfuscated image as downloaded from a device or read
// from a device-format dump file.
func FromEncoded(encoded []byte, reg *schema.Registry, pol *codec.Policy) (*Image, error) {
	return parse(encoded, integrity.Obfuscate(encoded), reg, pol)
}

// FromPlain parses a de-obfuscated image, as stored inside a magic-wrapped
// binary file.
func FromPlain(plain []byte, reg *schema.Registry, pol *codec.Policy) (*Image, error) {
	return parse(integrity.Obfuscate(plain), plain, reg, pol)
}

// FromFile parses raw file content previously classified by kind. JSON
// content is not an image and is rejected here.
func FromFile(content []byte, kind sniff.Kind, reg *schema.Registry, pol *codec.Policy) (*Image, error) {
	switch kind {
	case sniff.RawDump:
		return FromEncoded(content, reg, pol)
	case sniff.BinaryDump:
		return FromPlain(sniff.Strip(content, kind), reg, pol)
	case sniff.InvalidBinary:
		return nil, status.Errorf(status.FileReadError, "invalid binary file format")
	case sniff.JSONFile:
		return nil, status.Errorf(status.FileReadError, "JSON content is not a binary image")
	}
	return nil, status.Errorf(status.FileReadError, "unrecognized file content")
}

func parse(encoded, plain []byte, reg *schema.Registry, pol *codec.Policy) (*Image, error) {
	if !buf.Has(plain, versionOff, 4) {
		return nil, status.Errorf(status.InvalidData, "image too short to carry a version")
	}
	version := buf.U32LE(plain[versionOff:])

	entry, err := reg.Resolve(version)
	if err != nil {
		return nil, status.Errorf(status.UnsupportedVersion,
			"configuration version 0x%x not supported", version)
	}

	platform, err := platformOf(plain, entry, pol)
	if err != nil {
		return nil, err
	}
	img := &Image{
		Encoded: encoded,
		Plain:   plain,
		Info: Info{
			Version:  version,
			Platform: platform,
			Entry:    entry,
		},
	}
	if err := img.checkSize(pol); err != nil {
		return nil, err
	}
	if err := img.checkIntegrity(pol); err != nil {
		return nil, err
	}
	return img, nil
}

// platformOf reads the stored platform marker when the layout has one.
// Images predating the marker and out-of-range values fall back to the
// legacy platform.
func platformOf(plain []byte, entry schema.Entry, pol *codec.Policy) (schema.Platform, error) {
	if !entry.Fields.Has("config_version") {
		return schema.ESP82, nil
	}
	v, _ := codec.DecodeField(plain, entry.Fields, "config_version").(int64)
	switch v {
	case 0:
		return schema.ESP82, nil
	case 1:
		return schema.ESP32, nil
	}
	err := pol.Fail(status.Warnf(status.InvalidData,
		"invalid platform marker %d in config, valid range [0,1]", v))
	return schema.ESP82, err
}

// checkSize compares the size the image claims against the resolved layout.
// Neither a larger nor a smaller image can be processed.
func (img *Image) checkSize(pol *codec.Policy) error {
	d := img.Info.Entry.Fields.Get("cfg_size")
	if d == nil {
		return nil
	}
	size, _ := codec.DecodeField(img.Plain, img.Info.Entry.Fields, "cfg_size").(int64)
	want := int64(img.Info.Entry.Size)
	if size > want {
		return status.Errorf(status.DataSizeMismatch,
			"number of bytes read does not match, read %d, expected %d byte", size, want)
	}
	if size < want {
		return status.Errorf(status.DataSizeMismatch,
			"number of bytes read too small to process, read %d, expected %d byte", size, want)
	}
	return nil
}

// checkIntegrity verifies the image checksum. The CRC32 is authoritative
// from the release that introduced it, the weighted 16-bit checksum before
// that. A mismatch is a warning under a lenient policy.
func (img *Image) checkIntegrity(pol *codec.Policy) error {
	if img.Info.Version < schema.CRC32Version {
		stored := img.StoredChecksum16()
		computed := integrity.Checksum16(img.Plain, img.Info.Entry.Size)
		if stored != computed {
			return pol.Fail(status.Warnf(status.DataCRCError,
				"data CRC error, read 0x%04x should be 0x%04x", stored, computed))
		}
		return nil
	}
	stored := img.StoredCRC32()
	computed := integrity.CRC32(img.Plain)
	if stored != computed {
		return pol.Fail(status.Warnf(status.DataCRCError,
			"data CRC32 error, read 0x%08x should be 0x%08x", stored, computed))
	}
	return nil
}

func (img *Image) checksum16() uint16 {
	return integrity.Checksum16(img.Plain, img.Info.Entry.Size)
}

func (img *Image) crc32() uint32 {
	return integrity.CRC32(img.Plain)
}

// StoredChecksum16 returns the 16-bit checksum recorded in the image, or the
// computed value for layouts without the field.
func (img *Image) StoredChecksum16() uint16 {
	if !img.Info.Entry.Fields.Has("cfg_crc") {
		return integrity.Checksum16(img.Plain, img.Info.Entry.Size)
	}
	v, _ := codec.DecodeField(img.Plain, img.Info.Entry.Fields, "cfg_crc").(int64)
	return uint16(v)
}

// StoredCRC32 returns the CRC32 recorded in the image, or the computed value
// for layouts without the field.
func (img *Image) StoredCRC32() uint32 {
	if !img.Info.Entry.Fields.Has("cfg_crc32") {
		return integrity.CRC32(img.Plain)
	}
	v, _ := codec.DecodeField(img.Plain, img.Info.Entry.Fields, "cfg_crc32").(int64)
	return uint32(v)
}

// VersionString renders the image's firmware version for display and
// filename templating.
func (img *Image) VersionString() string {
	return schema.VersionString(img.Info.Version)
}

// Apply encodes tree into a copy of the image, recomputes the checksum, and
// returns the new image. The receiver is left untouched. The "header" block
// a JSON backup carries is metadata, not field data, and is ignored.
func (img *Image) Apply(tree map[string]any, pol *codec.Policy) (*Image, error) {
	fields := make(map[string]any, len(tree))
	for k, v := range tree {
		if k == HeaderName {
			continue
		}
		fields[k] = v
	}

	plain := make([]byte, len(img.Plain))
	copy(plain, img.Plain)

	p := *pol
	p.Platform = img.Info.Platform
	if err := codec.Encode(plain, img.Info.Entry.Fields, fields, &p); err != nil {
		return nil, err
	}
	patchChecksum(plain, img.Info.Entry)

	return &Image{
		Encoded: integrity.Obfuscate(plain),
		Plain:   plain,
		Info:    img.Info,
	}, nil
}

// patchChecksum writes the integrity field back after an encode. The CRC32
// takes precedence over the legacy checksum when the layout carries both.
func patchChecksum(plain []byte, entry schema.Entry) {
	if d := entry.Fields.Get("cfg_crc32"); d != nil {
		buf.PutU32LE(plain, d.Addr.Off, integrity.CRC32(plain))
		return
	}
	if d := entry.Fields.Get("cfg_crc"); d != nil {
		buf.PutU16LE(plain, d.Addr.Off, integrity.Checksum16(plain, entry.Size))
	}
}

// Changed reports whether other carries different device bytes than img.
// Identical images make a restore pointless.
func (img *Image) Changed(other *Image) bool {
	if len(img.Encoded) != len(other.Encoded) {
		return true
	}
	for i := range img.Encoded {
		if img.Encoded[i] != other.Encoded[i] {
			return true
		}
	}
	return false
}

// Commands renders the image as console commands grouped by field group.
func (img *Image) Commands(pol *codec.Policy) map[string][]string {
	p := *pol
	p.Platform = img.Info.Platform
	return codec.Commands(img.Map(pol), img.Info.Entry.Fields, &p)
}
