package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/status"
)

// testLayout is a compact layout exercising every addressing flavor: a
// signed scalar with a range rule, sibling bit-fields in one word, an
// indexed string pool, a password, and a fixed array.
func testLayout() *schema.Schema {
	flags := schema.New().
		Set("low", schema.F(schema.All, schema.U32, schema.BitsAt(0x10, 1, 0), "SetOption")).
		Set("mid", schema.F(schema.All, schema.U32, schema.BitsAt(0x10, 4, 1), "SetOption")).
		Set("high", schema.F(schema.All, schema.U32, schema.BitsAt(0x10, 1, 5), "SetOption"))

	return schema.New().
		Set("altitude", schema.F(schema.All, schema.I16, schema.At(0x2F6), "Sensor").
			Valid(schema.Between(-30000, 30000))).
		Set("flag", schema.G(schema.All, schema.At(0x10), flags, "*")).
		Set("ssid", schema.F(schema.All, schema.Str(64), schema.TextAt(0x40, 0), "Wifi").Arr(2)).
		Set("web_password", schema.F(schema.All, schema.Str(32), schema.At(0x100), "Wifi").Pw()).
		Set("levels", schema.F(schema.All, schema.U8, schema.At(0x140), "Light").Arr(3).
			Valid(schema.Between(0, 100))).
		Set("ip_address", schema.F(schema.All, schema.U32, schema.At(0x150), "Wifi").
			Conv(schema.IPv4(), schema.ParseIPv4()))
}

func testImage() []byte {
	return make([]byte, 0x400)
}

func TestAltitudeRoundTrip(t *testing.T) {
	sch := testLayout()
	data := testImage()
	pol := &Policy{}

	err := Encode(data, sch, map[string]any{"altitude": float64(-30000)}, pol)
	require.NoError(t, err)

	tree := Decode(data, sch, pol)
	assert.Equal(t, int64(-30000), tree["altitude"])

	// little-endian two's complement at the declared offset
	assert.Equal(t, byte(0xD0), data[0x2F6])
	assert.Equal(t, byte(0x8A), data[0x2F7])
}

func TestAltitudeRangeStrict(t *testing.T) {
	sch := testLayout()
	data := testImage()

	err := Encode(data, sch, map[string]any{"altitude": float64(40000)}, &Policy{})
	require.Error(t, err)
	assert.Equal(t, status.RestoreDataError, status.CodeOf(err))
	assert.Equal(t, byte(0), data[0x2F6], "failed write must not touch the image")
}

func TestAltitudeRangeLenient(t *testing.T) {
	sch := testLayout()
	data := testImage()

	var reported []error
	pol := &Policy{Lenient: true, Report: func(err error) { reported = append(reported, err) }}
	err := Encode(data, sch, map[string]any{"altitude": float64(40000)}, pol)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.True(t, status.IsWarning(reported[0]))
	assert.Equal(t, byte(0), data[0x2F6], "skipped field must not touch the image")
}

func TestZeroBypassesValidation(t *testing.T) {
	sch := schema.New().
		Set("sleep", schema.F(schema.All, schema.U16, schema.At(0x00), "Power").
			Valid(schema.Between(10, 86400)))
	data := make([]byte, 4)
	data[0] = 0xFF

	err := Encode(data, sch, map[string]any{"sleep": float64(0)}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, byte(0), data[0], "zero is always writable")
}

func TestBitFieldContainment(t *testing.T) {
	sch := testLayout()
	data := testImage()
	pol := &Policy{}

	// surrounding bits all set
	data[0x10] = 0xFF
	data[0x11] = 0xFF

	err := Encode(data, sch, map[string]any{"flag": map[string]any{"mid": float64(0)}}, pol)
	require.NoError(t, err)
	assert.Equal(t, byte(0xE1), data[0x10], "bits outside [1,5) must survive")
	assert.Equal(t, byte(0xFF), data[0x11])

	err = Encode(data, sch, map[string]any{"flag": map[string]any{"mid": float64(15)}}, pol)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), data[0x10])

	tree := Decode(data, sch, pol)
	flag := tree["flag"].(map[string]any)
	assert.Equal(t, int64(1), flag["low"])
	assert.Equal(t, int64(15), flag["mid"])
	assert.Equal(t, int64(1), flag["high"])
}

func TestIntTypeRange(t *testing.T) {
	sch := schema.New().
		Set("mqtt_port", schema.F(schema.All, schema.U16, schema.At(0x0), "MQTT"))
	data := make([]byte, 4)

	// no explicit validator; the primitive's range still binds
	err := Encode(data, sch, map[string]any{"mqtt_port": float64(70000)}, &Policy{})
	require.Error(t, err)
	assert.Equal(t, status.RestoreDataError, status.CodeOf(err))
	assert.Equal(t, []byte{0, 0}, data[:2], "out-of-range write must not touch the image")

	err = Encode(data, sch, map[string]any{"mqtt_port": float64(-1)}, &Policy{})
	require.Error(t, err)
	assert.Equal(t, []byte{0, 0}, data[:2])

	var reported []error
	pol := &Policy{Lenient: true, Report: func(err error) { reported = append(reported, err) }}
	err = Encode(data, sch, map[string]any{"mqtt_port": float64(70000)}, pol)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.True(t, status.IsWarning(reported[0]))
	assert.Equal(t, []byte{0, 0}, data[:2], "lenient policy skips the field, not the check")

	err = Encode(data, sch, map[string]any{"mqtt_port": float64(1883)}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x5B, 0x07}, data[:2])
}

func TestIntTypeRangeSigned(t *testing.T) {
	sch := schema.New().
		Set("temp_offset", schema.F(schema.All, schema.I8, schema.At(0x0), "Sensor"))
	data := make([]byte, 2)

	err := Encode(data, sch, map[string]any{"temp_offset": float64(-129)}, &Policy{})
	require.Error(t, err)
	err = Encode(data, sch, map[string]any{"temp_offset": float64(128)}, &Policy{})
	require.Error(t, err)

	err = Encode(data, sch, map[string]any{"temp_offset": float64(-12)}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, byte(0xF4), data[0])
}

func TestBitFieldOverflow(t *testing.T) {
	sch := testLayout()
	data := testImage()

	err := Encode(data, sch, map[string]any{"flag": map[string]any{"mid": float64(16)}}, &Policy{})
	require.Error(t, err)
	assert.Equal(t, status.RestoreDataError, status.CodeOf(err))
}

func TestIndexedStringPool(t *testing.T) {
	sch := testLayout()
	data := testImage()
	pol := &Policy{}

	err := Encode(data, sch, map[string]any{"ssid": []any{"home", "guest"}}, pol)
	require.NoError(t, err)

	assert.Equal(t, []byte("home\x00guest\x00"), data[0x40:0x4B])

	tree := Decode(data, sch, pol)
	assert.Equal(t, []any{"home", "guest"}, tree["ssid"])

	// replacing one slot must not disturb the other
	err = Encode(data, sch, map[string]any{"ssid": []any{"cabin"}}, pol)
	require.NoError(t, err)
	tree = Decode(data, sch, pol)
	assert.Equal(t, []any{"cabin", "guest"}, tree["ssid"])
}

func TestArrayCapacity(t *testing.T) {
	sch := testLayout()
	data := testImage()

	over := map[string]any{"levels": []any{float64(1), float64(2), float64(3), float64(4)}}
	err := Encode(data, sch, over, &Policy{})
	require.Error(t, err)
	assert.Equal(t, status.RestoreDataError, status.CodeOf(err))

	var reported []error
	pol := &Policy{Lenient: true, Report: func(err error) { reported = append(reported, err) }}
	err = Encode(data, sch, over, pol)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.Equal(t, []byte{1, 2, 3}, data[0x140:0x143], "lenient policy truncates to capacity")

	// shorter input writes a partial prefix without complaint
	err = Encode(data, sch, map[string]any{"levels": []any{float64(9)}}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 2, 3}, data[0x140:0x143])
}

func TestPasswordMasking(t *testing.T) {
	sch := testLayout()
	data := testImage()
	copy(data[0x100:], "secret")

	masked := Decode(data, sch, &Policy{HidePasswords: true})
	assert.Equal(t, schema.HiddenPassword, masked["web_password"])

	plain := Decode(data, sch, &Policy{})
	assert.Equal(t, "secret", plain["web_password"])

	// restoring the mask must never overwrite the stored secret
	err := Encode(data, sch, map[string]any{"web_password": schema.HiddenPassword}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, "secret", Decode(data, sch, &Policy{})["web_password"])

	err = Encode(data, sch, map[string]any{"web_password": "hunter2"}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", Decode(data, sch, &Policy{})["web_password"])
}

func TestPasswordMaskInRawMode(t *testing.T) {
	sch := testLayout()
	data := testImage()
	copy(data[0x100:], "secret")

	tree := Decode(data, sch, &Policy{Raw: true, HidePasswords: true})
	assert.Equal(t, schema.HiddenPassword, tree["web_password"],
		"raw mode must not expose a hidden password")

	tree = Decode(data, sch, &Policy{Raw: true})
	assert.Equal(t, "secret", tree["web_password"])
}

func TestPasswordMaskRegardlessOfContent(t *testing.T) {
	sch := testLayout()
	data := testImage()

	tree := Decode(data, sch, &Policy{HidePasswords: true})
	assert.Equal(t, schema.HiddenPassword, tree["web_password"],
		"an empty password masks like any other")
}

func TestConverters(t *testing.T) {
	sch := testLayout()
	data := testImage()
	pol := &Policy{}

	err := Encode(data, sch, map[string]any{"ip_address": "192.168.2.1"}, pol)
	require.NoError(t, err)
	assert.Equal(t, []byte{192, 168, 2, 1}, data[0x150:0x154])

	tree := Decode(data, sch, pol)
	assert.Equal(t, "192.168.2.1", tree["ip_address"])

	raw := Decode(data, sch, &Policy{Raw: true})
	assert.Equal(t, int64(0x0102A8C0), raw["ip_address"])
}

func TestObsoleteNames(t *testing.T) {
	sch := testLayout()
	data := testImage()

	err := Encode(data, sch, map[string]any{"no_such_field": float64(1)}, &Policy{})
	require.Error(t, err)
	assert.Equal(t, status.RestoreDataError, status.CodeOf(err))

	var reported []error
	pol := &Policy{Lenient: true, Report: func(err error) { reported = append(reported, err) }}
	err = Encode(data, sch, map[string]any{"no_such_field": float64(1)}, pol)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0].Error(), "no_such_field")
}

func TestIntegrityFieldsNeverWritten(t *testing.T) {
	sch := schema.New().
		Set("cfg_crc", schema.F(schema.All, schema.U16, schema.At(14), "System")).
		Set("cfg_timestamp", schema.F(schema.All, schema.U32, schema.At(0xFF8), "System"))
	data := make([]byte, 0x1000)

	tree := map[string]any{"cfg_crc": float64(0xBEEF), "cfg_timestamp": float64(12345)}
	err := Encode(data, sch, tree, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, byte(0), data[14])
	assert.Equal(t, byte(0), data[0xFF8])
}

func TestGroupFilter(t *testing.T) {
	sch := testLayout()
	data := testImage()
	copy(data[0x40:], "home\x00")

	pol := &Policy{Groups: map[string]bool{"wifi": true}}
	tree := Decode(data, sch, pol)
	assert.Contains(t, tree, "ssid")
	assert.NotContains(t, tree, "altitude")
	assert.NotContains(t, tree, "levels")
}

func TestInternalFieldsDecode(t *testing.T) {
	sch := schema.New().
		Set("save_flag", schema.F(schema.All, schema.U32, schema.At(0x0), schema.Internal).RO()).
		Set("sleep", schema.F(schema.All, schema.U8, schema.At(0x4), "Main"))
	data := make([]byte, 8)
	data[0] = 42

	tree := Decode(data, sch, &Policy{})
	assert.Equal(t, int64(42), tree["save_flag"], "internal fields belong in the mapped tree")

	filtered := Decode(data, sch, &Policy{Groups: map[string]bool{"main": true}})
	assert.NotContains(t, filtered, "save_flag")

	optIn := Decode(data, sch, &Policy{Groups: map[string]bool{"internal": true}})
	assert.Contains(t, optIn, "save_flag")
	assert.NotContains(t, optIn, "sleep")
}

func TestDecodePrunesEmptyContainers(t *testing.T) {
	sub := schema.New().
		Set("hidden", schema.F(schema.ESP32, schema.U8, schema.At(0x20), "Sensor"))
	sch := schema.New().
		Set("grp", schema.G(schema.All, schema.At(0x20), sub, "*"))

	tree := Decode(make([]byte, 0x40), sch, &Policy{Platform: schema.ESP82})
	assert.NotContains(t, tree, "grp")
}

func TestReadOnlySkipped(t *testing.T) {
	sch := schema.New().
		Set("bootcount", schema.F(schema.All, schema.U16, schema.At(0x0), "System").RO())
	data := make([]byte, 4)

	err := Encode(data, sch, map[string]any{"bootcount": float64(99)}, &Policy{})
	require.NoError(t, err)
	assert.Equal(t, byte(0), data[0])
}

func TestCommands(t *testing.T) {
	sch := schema.New().
		Set("sleep", schema.F(schema.All, schema.U8, schema.At(0x0), "Main").
			Cmd(schema.CmdFmt("Main", "Sleep %d"))).
		Set("ssid", schema.F(schema.All, schema.Str(32), schema.TextAt(0x10, 0), "Wifi").Arr(2).
			Cmd(schema.CmdStrIdx("Wifi", "SSId%d %s", 0))).
		Set("web_password", schema.F(schema.All, schema.Str(16), schema.At(0x40), "Wifi").Pw().
			Cmd(schema.CmdStr("Wifi", "WebPassword %s")))
	data := make([]byte, 0x60)
	data[0] = 50
	copy(data[0x10:], "home\x00guest\x00")
	copy(data[0x40:], "secret")

	pol := &Policy{HidePasswords: true}
	cmnds := Commands(Decode(data, sch, pol), sch, pol)

	assert.Equal(t, []string{"Sleep 50"}, cmnds["Main"])
	assert.Equal(t, []string{"SSId1 home", "SSId2 guest"}, cmnds["Wifi"],
		"masked password must not emit a command")

	pol = &Policy{}
	cmnds = Commands(Decode(data, sch, pol), sch, pol)
	assert.Equal(t, []string{"SSId1 home", "SSId2 guest", "WebPassword secret"}, cmnds["Wifi"])
}

func TestCommandsEmptyStringQuoted(t *testing.T) {
	sch := schema.New().
		Set("hostname", schema.F(schema.All, schema.Str(32), schema.At(0x0), "Wifi").
			Cmd(schema.CmdStr("Wifi", "Hostname %s")))
	data := make([]byte, 0x20)

	pol := &Policy{}
	cmnds := Commands(Decode(data, sch, pol), sch, pol)
	assert.Equal(t, []string{`Hostname "`}, cmnds["Wifi"])
}
