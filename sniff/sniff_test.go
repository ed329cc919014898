package sniff

import (
	"bytes"
	"testing"

	"github.com/tasconf/tasconf/integrity"
	"github.com/tasconf/tasconf/internal/buf"
)

var testSizes = []int{0x670, 0x1000}

func marker() []byte {
	var m [4]byte
	buf.PutU32LE(m[:], 0, integrity.BinaryMagic)
	return m[:]
}

func TestClassify(t *testing.T) {
	jsonDoc := []byte(`{"header":{},"altitude":120}`)
	dump := make([]byte, 0x1000)
	wrappedHead := append(marker(), make([]byte, 0x670)...)
	wrappedTail := append(make([]byte, 0x1000), marker()...)
	unmarked := make([]byte, 0x674)
	odd := make([]byte, 0x123)

	cases := []struct {
		name    string
		content []byte
		want    Kind
	}{
		{"json object", jsonDoc, JSONFile},
		{"exact size dump", dump, RawDump},
		{"marker prepended", wrappedHead, BinaryDump},
		{"marker appended", wrappedTail, BinaryDump},
		{"plausible size no marker", unmarked, InvalidBinary},
		{"unknown size", odd, Invalid},
		{"json array", []byte(`[1,2,3]`), JSONFile},
		{"bare json scalar", []byte(`42`), JSONFile},
		{"empty", nil, Invalid},
	}
	for _, c := range cases {
		if got := Classify(c.content, testSizes); got != c.want {
			t.Fatalf("%s: Classify = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestStrip(t *testing.T) {
	image := make([]byte, 0x670)
	for i := range image {
		image[i] = byte(i)
	}

	head := append(marker(), image...)
	if got := Strip(head, BinaryDump); !bytes.Equal(got, image) {
		t.Fatalf("Strip head marker failed")
	}

	tail := append(append([]byte{}, image...), marker()...)
	if got := Strip(tail, BinaryDump); !bytes.Equal(got, image) {
		t.Fatalf("Strip tail marker failed")
	}

	// non-binary kinds pass through untouched
	if got := Strip(image, RawDump); !bytes.Equal(got, image) {
		t.Fatalf("Strip modified a raw dump")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		JSONFile:      "json",
		RawDump:       "dmp",
		BinaryDump:    "bin",
		InvalidBinary: "invalid bin",
		Invalid:       "invalid",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
