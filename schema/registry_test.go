package schema

import (
	"errors"
	"testing"
)

func testRegistry() *Registry {
	return NewRegistry([]Entry{
		{Version: 0x05000000, Size: 0x670, Fields: New()},
		{Version: 0x06000000, Size: 0xE00, Fields: New()},
		{Version: 0x05020000, Size: 0x670, Fields: New()},
	})
}

func TestResolve(t *testing.T) {
	reg := testRegistry()

	cases := []struct {
		version uint32
		want    uint32
	}{
		{0x05000000, 0x05000000},
		{0x05010000, 0x05000000},
		{0x05020000, 0x05020000},
		{0x05FF0000, 0x05020000},
		{0x06000000, 0x06000000},
		{0xFFFFFFFF, 0x06000000},
	}
	for _, c := range cases {
		e, err := reg.Resolve(c.version)
		if err != nil {
			t.Fatalf("Resolve(0x%08x): %v", c.version, err)
		}
		if e.Version != c.want {
			t.Fatalf("Resolve(0x%08x) = 0x%08x, want 0x%08x", c.version, e.Version, c.want)
		}
	}
}

func TestResolveUnsupported(t *testing.T) {
	reg := testRegistry()
	if _, err := reg.Resolve(0x04FFFFFF); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("Resolve below oldest = %v, want ErrUnsupportedVersion", err)
	}
}

func TestResolveMonotonic(t *testing.T) {
	reg := Defaults()
	oldest := reg.Oldest().Version
	prev := uint32(0)
	for v := oldest; v >= oldest && v < 0x09000000; v += 0x00010003 {
		e, err := reg.Resolve(v)
		if err != nil {
			t.Fatalf("Resolve(0x%08x): %v", v, err)
		}
		if e.Version < prev {
			t.Fatalf("resolution not monotonic at 0x%08x: 0x%08x < 0x%08x", v, e.Version, prev)
		}
		prev = e.Version
	}
}

func TestDefaultsRegistry(t *testing.T) {
	reg := Defaults()

	if got := reg.Newest().Version; got != 0x08020004 {
		t.Fatalf("Newest = 0x%08x, want 0x08020004", got)
	}
	if got := reg.Oldest().Version; got != 0x050A0000 {
		t.Fatalf("Oldest = 0x%08x, want 0x050A0000", got)
	}

	sizes := reg.Sizes()
	want := []int{0x670, 0xA00, 0xE00, 0x1000}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("Sizes = %v, want %v", sizes, want)
		}
	}

	for _, e := range reg.Entries() {
		if e.Fields.Len() == 0 {
			t.Fatalf("entry 0x%08x has an empty layout", e.Version)
		}
		if !e.Fields.Has("version") {
			t.Fatalf("entry 0x%08x lacks the version field", e.Version)
		}
	}

	// The CRC32 cutover version itself has no dedicated entry; it must land
	// on the latest layout below it, which already spans the full image.
	e, err := reg.Resolve(CRC32Version)
	if err != nil {
		t.Fatalf("Resolve(CRC32Version): %v", err)
	}
	if e.Size != 0x1000 {
		t.Fatalf("layout at CRC32 cutover has size 0x%x, want 0x1000", e.Size)
	}
	if !e.Fields.Has("cfg_crc32") {
		t.Fatalf("layout at CRC32 cutover lacks cfg_crc32")
	}
}

func TestVersionString(t *testing.T) {
	cases := []struct {
		version uint32
		want    string
	}{
		{0x08020004, "8.2.0.4"},
		{0x06060000, "6.6.0"},
		{0x0606000B, "6.6.0.11"},
		{0x050E0000, "5.14.0"},
		{0x050C0002, "5.12.0b"},
		{0x050A0001, "5.10.0a"},
	}
	for _, c := range cases {
		if got := VersionString(c.version); got != c.want {
			t.Fatalf("VersionString(0x%08x) = %q, want %q", c.version, got, c.want)
		}
	}
}

func TestSchemaGroups(t *testing.T) {
	groups := Defaults().Newest().Fields.Groups()
	if len(groups) == 0 {
		t.Fatalf("no groups in newest layout")
	}
	seen := make(map[string]bool)
	for i, g := range groups {
		if g == Internal || g == Virtual {
			t.Fatalf("sentinel group %q leaked into Groups()", g)
		}
		if seen[g] {
			t.Fatalf("duplicate group %q", g)
		}
		seen[g] = true
		if i > 0 && groups[i-1] > g {
			t.Fatalf("groups not sorted: %q before %q", groups[i-1], g)
		}
	}
	for _, want := range []string{"Wifi", "System", "MQTT", "SetOption"} {
		if !seen[want] {
			t.Fatalf("expected group %q missing from %v", want, groups)
		}
	}
}
