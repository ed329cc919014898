package schema

import (
	"fmt"
	"strings"
)

// Custom command emitters for fields whose console rendering needs more
// than one value: bit unpacking, sibling lookups through the tree, or
// one-field-to-many-commands fanout.

// treeArr returns element idx (1-based) of the named array in tree.
func treeArr(tree map[string]any, name string, idx int) map[string]any {
	arr, ok := tree[name].([]any)
	if !ok || idx < 1 || idx > len(arr) {
		return nil
	}
	m, _ := arr[idx-1].(map[string]any)
	return m
}

func treeInt(tree map[string]any, name string) int64 {
	return AsInt(tree[name])
}

func bitsOf(v int64, shift, width int) int64 {
	return (v >> shift) & (1<<width - 1)
}

// cmndWebSensor expands one 32-bit sensor enable mask into 32 individual
// WebSensor commands.
func cmndWebSensor(v any, idx int, _ map[string]any) []string {
	mask := AsInt(v)
	cmds := make([]string, 0, 32)
	for i := 0; i < 32; i++ {
		on := 0
		if mask&(1<<i) != 0 {
			on = 1
		}
		cmds = append(cmds, fmt.Sprintf("WebSensor%d %d", i+(idx-1)*32, on))
	}
	return cmds
}

// cmndTimer renders the packed 32-bit timer word as the console's JSON
// Timer argument.
func cmndTimer(v any, idx int, _ map[string]any) []string {
	raw := AsInt(v)
	arm := bitsOf(raw, 31, 1)
	mode := bitsOf(raw, 29, 2)
	mins := bitsOf(raw, 0, 11)
	tsign := ""
	if mode > 0 && mins > 12*60 {
		tsign = "-"
		mins -= 12 * 60
	}
	days := ""
	for d := 0; d < 7; d++ {
		if bitsOf(raw, 16+d, 1) != 0 {
			days += "1"
		} else {
			days += "0"
		}
	}
	return []string{fmt.Sprintf(
		`Timer%d {"Arm":%d,"Mode":%d,"Time":"%s%02d:%02d","Window":%d,"Days":"%s","Repeat":%d,"Output":%d,"Action":%d}`,
		idx, arm, mode, tsign, mins/60, mins%60,
		bitsOf(raw, 11, 4), days, bitsOf(raw, 15, 1),
		bitsOf(raw, 23, 4)+1, bitsOf(raw, 27, 2))}
}

// cmndTimeOffset combines a tflag element with its toffset into one
// TimeStd/TimeDst command. idx 1 is standard time, idx 2 daylight saving.
func cmndTimeOffset(v any, idx int, tree map[string]any) []string {
	tf := treeArr(tree, "tflag", idx)
	if tf == nil {
		return nil
	}
	name := "TimeStd"
	if idx != 1 {
		name = "TimeDst"
	}
	return []string{fmt.Sprintf("%s %d,%d,%d,%d,%d,%d", name,
		AsInt(tf["hemis"]), AsInt(tf["week"]), AsInt(tf["month"]),
		AsInt(tf["dow"]), AsInt(tf["hour"]), AsInt(v))}
}

// cmndFingerprint joins a fingerprint byte array into one command; it fires
// only on the first element so the array yields a single line.
func cmndFingerprint(field, name string) Cmnd {
	return Cmnd{"MQTT", func(_ any, idx int, tree map[string]any) []string {
		if idx != 1 {
			return nil
		}
		arr, ok := tree[field].([]any)
		if !ok {
			return nil
		}
		parts := make([]string, len(arr))
		for i, b := range arr {
			parts[i] = fmt.Sprintf("%02X", AsInt(b))
		}
		return []string{fmt.Sprintf("%s %s", name, strings.Join(parts, " "))}
	}}
}

// cmndMcp230xx combines the sibling bit-fields of one MCP230xx pin entry.
func cmndMcp230xx(v any, idx int, tree map[string]any) []string {
	pin := treeArr(tree, "mcp230xx_config", idx)
	if pin == nil {
		return nil
	}
	return []string{fmt.Sprintf("Sensor29 %d,%d,%d,%d", idx-1,
		AsInt(v), AsInt(pin["pullup"]), AsInt(pin["int_report_mode"]))}
}

// cmndTariff pairs the start/end minute fields into one HH:MM,HH:MM command.
func cmndTariff(n int, startField, endField string) Cmnd {
	return Cmnd{"Power", func(_ any, _ int, tree map[string]any) []string {
		s := treeInt(tree, startField)
		e := treeInt(tree, endField)
		return []string{fmt.Sprintf("Tariff%d %02d:%02d,%02d:%02d",
			n, s/60, s%60, e/60, e%60)}
	}}
}

// cmndDimmerRange pairs hardware min and max into one command.
func cmndDimmerRange(v any, _ int, tree map[string]any) []string {
	return []string{fmt.Sprintf("DimmerRange %d,%d", AsInt(v), treeInt(tree, "dimmer_hw_max"))}
}

// cmndBriPreset pairs the low and high brightness presets.
func cmndBriPreset(v any, _ int, tree map[string]any) []string {
	return []string{fmt.Sprintf("BriPreset %d,%d", AsInt(v), treeInt(tree, "bri_preset_high"))}
}

// cmndDevGroupShare renders both share masks as one command.
func cmndDevGroupShare(v any, _ int, tree map[string]any) []string {
	return []string{fmt.Sprintf("DevGroupShare 0x%08x,0x%08x",
		uint32(AsInt(v)), uint32(treeInt(tree, "device_group_share_out")))}
}

// cmndWebColor renders a 24-bit palette entry as "#rrggbb".
func cmndWebColor(off int) Cmnd {
	return Cmnd{"Wifi", func(v any, idx int, _ map[string]any) []string {
		return []string{fmt.Sprintf("WebColor%d #%06x", idx+off, uint32(AsInt(v)))}
	}}
}

// cmndTemplateGPIO emits the whole template GPIO array once, on the first
// element.
func cmndTemplateGPIO(field string) Cmnd {
	return Cmnd{"Management", func(_ any, idx int, tree map[string]any) []string {
		if idx > 1 {
			return nil
		}
		tpl, _ := tree[field].(map[string]any)
		if tpl == nil {
			return nil
		}
		arr, ok := tpl["gpio"].([]any)
		if !ok {
			return nil
		}
		parts := make([]string, len(arr))
		for i, g := range arr {
			parts[i] = fmt.Sprintf("%d", AsInt(g))
		}
		return []string{fmt.Sprintf(`Template {"GPIO":[%s]}`, strings.Join(parts, ","))}
	}}
}

// cmndShutterOptions fans one packed options byte out into the three
// per-shutter toggles.
func cmndShutterOptions(v any, idx int, _ map[string]any) []string {
	o := AsInt(v)
	b := func(mask int64) int64 {
		if o&mask != 0 {
			return 1
		}
		return 0
	}
	return []string{
		fmt.Sprintf("ShutterInvert%d %d", idx, b(1)),
		fmt.Sprintf("ShutterLock%d %d", idx, b(2)),
		fmt.Sprintf("ShutterEnableEndStopTime%d %d", idx, b(4)),
	}
}

// cmndTenth renders value/10 with one decimal, the WifiPower / TempOffset /
// shutter duration shape.
func cmndTenth(group, format string, indexed bool) Cmnd {
	return Cmnd{group, func(v any, idx int, _ map[string]any) []string {
		f := float64(AsInt(v)) / 10.0
		if indexed {
			return []string{fmt.Sprintf(format, idx, f)}
		}
		return []string{fmt.Sprintf(format, f)}
	}}
}

// cmndEnergyReset renders the stored 10 Wh units as whole kWh hundredths.
func cmndEnergyReset(n int) Cmnd {
	return Cmnd{"Power", func(v any, _ int, _ map[string]any) []string {
		return []string{fmt.Sprintf("EnergyReset%d %d", n, AsInt(v)/100)}
	}}
}

// cmndLedState masks the stored byte to the 3 bits the command accepts.
func cmndLedState(v any, _ int, _ map[string]any) []string {
	return []string{fmt.Sprintf("LedState %d", AsInt(v)&0x7)}
}

var serialConfigNames = []string{
	"5N1", "6N1", "7N1", "8N1", "5N2", "6N2", "7N2", "8N2",
	"5E1", "6E1", "7E1", "8E1", "5E2", "6E2", "7E2", "8E2",
	"5O1", "6O1", "7O1", "8O1", "5O2", "6O2", "7O2", "8O2",
}

// cmndSerialConfig maps the stored mode index to its word-size/parity/stop
// mnemonic.
func cmndSerialConfig(v any, _ int, _ map[string]any) []string {
	return []string{fmt.Sprintf("SerialConfig %s", serialConfigNames[AsInt(v)%24])}
}

// cmndTuyaFnid emits a TuyaMCU mapping only for populated entries.
func cmndTuyaFnid(v any, idx int, tree map[string]any) []string {
	ent := treeArr(tree, "tuya_fnid_map", idx)
	if ent == nil {
		return nil
	}
	dpid := AsInt(ent["dpid"])
	if AsInt(v) == 0 && dpid == 0 {
		return nil
	}
	return []string{fmt.Sprintf("TuyaMCU %d,%d", AsInt(v), dpid)}
}

// cmndRulePlus emits the rule state toggles that encode once/stop as the
// enable value plus an offset.
func cmndRulePlus(n int, off int64) Cmnd {
	return Cmnd{"Rules", func(v any, _ int, _ map[string]any) []string {
		return []string{fmt.Sprintf("Rule%d %d", n, AsInt(v)+off)}
	}}
}

// cmndTimeFormat maps the stored 0-based format index to the 1-based Time
// command argument.
func cmndTimeFormat(v any, _ int, _ map[string]any) []string {
	return []string{fmt.Sprintf("Time %d", AsInt(v)+1)}
}

// cmndAdcParam combines the ADC parameter set into one command.
func cmndAdcParam(v any, _ int, tree map[string]any) []string {
	return []string{fmt.Sprintf("AdcParam %d,%d,%d,%g", AsInt(v),
		treeInt(tree, "adc_param1"), treeInt(tree, "adc_param2"),
		float64(treeInt(tree, "adc_param3"))/10000)}
}
