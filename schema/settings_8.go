package schema

import "fmt"

// Layout tables for the 8.x releases. 8.0.0.1 replaced every fixed-capacity
// string with a slot in the shared text pool at 0x017; 8.2.0.4 added the
// config_version platform marker.

func setting8_0_0_1() *Schema {
	s := setting7_1_2_6().Clone()
	pool := func(slot int) Address { return TextAt(TextPoolOff, slot) }

	s.Set("ota_url", F(All, Str(TextPoolSize), pool(SetOTAURL), "Management").Cmd(CmdFmt("Management", "OtaUrl %v")))
	s.Set("mqtt_prefix", F(All, Str(TextPoolSize), pool(SetMQTTPrefix1), "MQTT").Arr(3).Cmd(CmdIdx("MQTT", "Prefix%d %v", 0)))
	s.Set("sta_ssid", F(All, Str(TextPoolSize), pool(SetStaSSID1), "Wifi").Arr(2).Cmd(CmdIdx("Wifi", "SSId%d %v", 0)))
	s.Set("sta_pwd", F(All, Str(TextPoolSize), pool(SetStaPwd1), "Wifi").Arr(2).Cmd(CmdIdx("Wifi", "Password%d %v", 0)).Pw())
	s.Set("hostname", F(All, Str(TextPoolSize), pool(SetHostname), "Wifi").Cmd(CmdFmt("Wifi", "Hostname %v")))
	s.Set("syslog_host", F(All, Str(TextPoolSize), pool(SetSyslogHost), "Management").Cmd(CmdFmt("Management", "LogHost %v")))
	s.Set("web_password", F(All, Str(TextPoolSize), pool(SetWebPwd), "Wifi").Cmd(CmdFmt("Wifi", "WebPassword %v")).Pw())
	s.Set("cors_domain", F(All, Str(TextPoolSize), pool(SetCORS), "Wifi").Cmd(CmdStr("Wifi", "CORS %v")))
	s.Set("mqtt_host", F(All, Str(TextPoolSize), pool(SetMQTTHost), "MQTT").Cmd(CmdFmt("MQTT", "MqttHost %v")))
	s.Set("mqtt_client", F(All, Str(TextPoolSize), pool(SetMQTTClient), "MQTT").Cmd(CmdFmt("MQTT", "MqttClient %v")))
	s.Set("mqtt_user", F(All, Str(TextPoolSize), pool(SetMQTTUser), "MQTT").Cmd(CmdFmt("MQTT", "MqttUser %v")))
	s.Set("mqtt_pwd", F(All, Str(TextPoolSize), pool(SetMQTTPwd), "MQTT").Cmd(CmdFmt("MQTT", "MqttPassword %v")).Pw())
	s.Set("mqtt_fulltopic", F(All, Str(TextPoolSize), pool(SetMQTTFullTopic), "MQTT").Cmd(CmdFmt("MQTT", "FullTopic %v")))
	s.Set("mqtt_topic", F(All, Str(TextPoolSize), pool(SetMQTTTopic), "MQTT").Cmd(CmdFmt("MQTT", "FullTopic %v")))
	s.Set("button_topic", F(All, Str(TextPoolSize), pool(SetMQTTButtonTopic), "MQTT").Cmd(CmdFmt("MQTT", "ButtonTopic %v")))
	s.Set("switch_topic", F(All, Str(TextPoolSize), pool(SetMQTTSwitchTopic), "MQTT").Cmd(CmdFmt("MQTT", "SwitchTopic %v")))
	s.Set("mqtt_grptopic", F(All, Str(TextPoolSize), pool(SetMQTTGrpTopic), "MQTT").Cmd(CmdFmt("MQTT", "GroupTopic %v")))
	s.Set("state_text", F(All, Str(TextPoolSize), pool(SetStateTxt1), "MQTT").Arr(4).Cmd(CmdIdx("MQTT", "StateText%d %v", 0)))
	s.Set("ntp_server", F(All, Str(TextPoolSize), pool(SetNTPServer1), "Wifi").Arr(3).Cmd(CmdIdx("Wifi", "NtpServer%d %v", 0)))
	s.Set("mems", F(All, Str(TextPoolSize), pool(SetMem1), "Rules").Arr(16).Cmd(CmdStrIdx("Rules", "Mem%d %v", 0)))
	s.Set("friendlyname", F(All, Str(TextPoolSize), pool(SetFriendlyname1), "Management").Arr(4).Cmd(CmdStrIdx("Management", "FriendlyName%d %v", 0)))
	return s
}

func setting8_1_0_0() *Schema {
	s := setting8_0_0_1().Clone()
	s.Set("friendlyname", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetFriendlyname1), "Management").Arr(8).Cmd(CmdStrIdx("Management", "FriendlyName%d %v", 0)))
	s.Set("button_text", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetButton1), "Wifi").Arr(16).Cmd(CmdStrIdx("Wifi", "WebButton%d %v", 0)))
	s.Get("flag3").Sub.
		Set("counter_reset_on_tele", F(All, U32, BitsAt(0x3A0, 1, 29), "SetOption").Cmd(CmdFmt("SetOption", "SetOption79 %v")))
	return s
}

func setting8_2_0_3() *Schema {
	s := setting8_1_0_0().Clone()
	s.Set("hotplug_scan", F(All, U8, At(0xF03), "Sensor").Cmd(CmdFmt("Sensor", "HotPlug %v")))

	shutterButton := New().
		Set("shutter", F(All, U32, BitsAt(0xFDC, 2, 0), "Shutter").Conv(
			func(v any) any { return AsInt(v) + 1 },
			func(v any) (any, bool) { return AsInt(v) - 1, true })).
		Set("press_single", F(All, U32, BitsAt(0xFDC, 6, 2), "Shutter").Conv(shutterPosRead, shutterPosWrite)).
		Set("press_double", F(All, U32, BitsAt(0xFDC, 6, 8), "Shutter").Conv(shutterPosRead, shutterPosWrite)).
		Set("press_triple", F(All, U32, BitsAt(0xFDC, 6, 14), "Shutter").Conv(shutterPosRead, shutterPosWrite)).
		Set("press_hold", F(All, U32, BitsAt(0xFDC, 6, 20), "Shutter").Conv(shutterPosRead, shutterPosWrite)).
		Set("mqtt_broadcast_single", F(All, U32, BitsAt(0xFDC, 1, 26), "Shutter")).
		Set("mqtt_broadcast_double", F(All, U32, BitsAt(0xFDC, 1, 27), "Shutter")).
		Set("mqtt_broadcast_triple", F(All, U32, BitsAt(0xFDC, 1, 28), "Shutter")).
		Set("mqtt_broadcast_hold", F(All, U32, BitsAt(0xFDC, 1, 29), "Shutter")).
		Set("mqtt_broadcast_all", F(All, U32, BitsAt(0xFDC, 1, 30), "Shutter")).
		Set("enabled", F(All, U32, BitsAt(0xFDC, 1, 31), "Shutter"))
	s.Set("shutter_button", G(All, At(0xFDC), shutterButton, "Shutter").Arr(4))

	s.Delete("shutter_invert")
	s.Set("shutter_options", F(All, U8, At(0xE78), "Shutter").Arr(4).Cmd(CmdFn("Shutter", cmndShutterOptions)))

	flag4 := New().
		Set("alexa_ct_range", F(All, U32, BitsAt(0xEF8, 1, 0), "SetOption").Cmd(CmdFmt("SetOption", "SetOption82 %v"))).
		Set("zigbee_use_names", F(All, U32, BitsAt(0xEF8, 1, 1), "SetOption").Cmd(CmdFmt("SetOption", "SetOption83 %v"))).
		Set("awsiot_shadow", F(All, U32, BitsAt(0xEF8, 1, 2), "SetOption").Cmd(CmdFmt("SetOption", "SetOption84 %v"))).
		Set("device_groups_enabled", F(All, U32, BitsAt(0xEF8, 1, 3), "SetOption").Cmd(CmdFmt("SetOption", "SetOption85 %v"))).
		Set("led_timeout", F(All, U32, BitsAt(0xEF8, 1, 4), "SetOption").Cmd(CmdFmt("SetOption", "SetOption86 %v"))).
		Set("powered_off_led", F(All, U32, BitsAt(0xEF8, 1, 5), "SetOption").Cmd(CmdFmt("SetOption", "SetOption87 %v"))).
		Set("remote_device_mode", F(All, U32, BitsAt(0xEF8, 1, 6), "SetOption").Cmd(CmdFmt("SetOption", "SetOption88 %v"))).
		Set("zigbee_distinct_topics", F(All, U32, BitsAt(0xEF8, 1, 7), "SetOption").Cmd(CmdFmt("SetOption", "SetOption89 %v"))).
		Set("only_json_message", F(All, U32, BitsAt(0xEF8, 1, 8), "SetOption").Cmd(CmdFmt("SetOption", "SetOption90 %v"))).
		Set("fade_at_startup", F(All, U32, BitsAt(0xEF8, 1, 9), "SetOption").Cmd(CmdFmt("SetOption", "SetOption91 %v")))
	s.Set("flag4", G(All, At(0xEF8), flag4, Virtual))

	s.Set("switchmode", F(All, U8, At(0x3A4), "Control").Arr(8).Valid(Between(0, 14)).Cmd(CmdIdx("Control", "SwitchMode%d %v", 0)))
	s.Set("adc_param4", F(All, I32, At(0xFD8), "Sensor"))
	s.Set("bootcount_reset_time", F(All, U32, At(0xFD4), "System"))
	s.Set("device_group_share_in", F(All, U32, At(0xFCC), "Control").Cmd(CmdFn("Control", cmndDevGroupShare)))
	s.Set("device_group_share_out", F(All, U32, At(0xFD0), "Control"))
	s.Set("bri_power_on", F(All, U8, At(0xF04), "Light"))
	s.Set("bri_min", F(All, U8, At(0xF05), "Light").Cmd(CmdFmt("Light", "BriMin %v")))
	s.Set("bri_preset_low", F(All, U8, At(0xF06), "Light").Cmd(CmdFn("Light", cmndBriPreset)))
	s.Set("bri_preset_high", F(All, U8, At(0xF07), "Light"))
	s.Set("hum_comp", F(All, I8, At(0xF08), "Sensor").Valid(Between(-100, 100)).Cmd(cmndTenth("Sensor", "HumOffset %.1f", false)))

	s.Get("flag2").Sub.
		Set("speed_conversion", F(All, U32, BitsAt(0x5BC, 3, 1), "Sensor").Valid(Between(0, 5)).Cmd(CmdFmt("Sensor", "SpeedUnit %v")))
	s.Get("flag3").Sub.
		Set("mqtt_buttons", F(All, U32, BitsAt(0x3A0, 1, 23), "SetOption").Cmd(CmdFmt("SetOption", "SetOption73 %v")))
	s.Get("SensorBits1").Sub.
		Set("bh1750_resolution", F(All, U8, BitsAt(0x717, 2, 4), "Sensor").Valid(Between(0, 2)).Cmd(CmdFmt("Sensor", "Sensor10 %v")))

	s.Set("templatename", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetTemplateName), "Management").Cmd(CmdFmt("Management", `Template {"NAME":"%v"}`)))
	s.Set("pulse_counter_debounce_low", F(All, U16, At(0xFB8), "Sensor").Valid(Between(0, 32000)).Cmd(CmdFmt("Sensor", "CounterDebounceLow %v")))
	s.Set("pulse_counter_debounce_high", F(All, U16, At(0xFBA), "Sensor").Valid(Between(0, 32000)).Cmd(CmdFmt("Sensor", "CounterDebounceHigh %v")))
	s.Set("channel", F(All, U8, At(0xF09), "Wifi"))
	s.Set("bssid", F(All, U8, At(0xF0A), "Wifi").Arr(6))
	s.Set("as3935_sensor_cfg", F(All, U8, At(0xF10), "Sensor").Arr(5))

	as3935Fn := New().
		Set("nf_autotune", F(All, U8, BitsAt(0xF15, 1, 0), "Sensor").Cmd(CmdFmt("Sensor", "AS3935AutoNF %v"))).
		Set("dist_autotune", F(All, U8, BitsAt(0xF15, 1, 1), "Sensor").Cmd(CmdFmt("Sensor", "AS3935AutoDisturber %v"))).
		Set("nf_autotune_both", F(All, U8, BitsAt(0xF15, 1, 2), "Sensor").Cmd(CmdFmt("Sensor", "AS3935AutoNFMax %v"))).
		Set("mqtt_only_Light_Event", F(All, U8, BitsAt(0xF15, 1, 3), "Sensor").Cmd(CmdFmt("Sensor", "AS3935MQTTEvent %v")))
	s.Set("as3935_functions", G(All, At(0xF15), as3935Fn, Virtual))

	as3935Par := New().
		Set("nf_autotune_time", F(All, U16, BitsAt(0xF16, 4, 0), "Sensor").Valid(Between(0, 15)).Cmd(CmdFmt("Sensor", "AS3935NFTime %v"))).
		Set("dist_autotune_time", F(All, U16, BitsAt(0xF16, 1, 4), "Sensor").Valid(Between(0, 15)).Cmd(CmdFmt("Sensor", "AS3935DistTime %v"))).
		Set("nf_autotune_min", F(All, U16, BitsAt(0xF16, 1, 8), "Sensor").Valid(Between(0, 15)).Cmd(CmdFmt("Sensor", "AS3935SetMinStage %v")))
	s.Set("as3935_parameter", G(All, At(0xF16), as3935Par, Virtual))

	s.Set("zb_ext_panid", F(All, U64, At(0xF18), "Zigbee").Conv(Hex(16), nil))
	s.Set("zb_precfgkey_l", F(All, U64, At(0xF20), "Zigbee").Conv(Hex(16), nil))
	s.Set("zb_precfgkey_h", F(All, U64, At(0xF28), "Zigbee").Conv(Hex(16), nil))
	s.Set("zb_pan_id", F(All, U16, At(0xF30), "Zigbee").Conv(Hex(4), nil))
	s.Set("zb_channel", F(All, U8, At(0xF32), "Zigbee").Valid(Between(11, 26)).Cmd(CmdFn("Zigbee", cmndZbConfig)))
	s.Set("pms_wake_interval", F(All, U16, At(0xF34), "Sensor").Cmd(CmdFmt("Sensor", "Sensor18 %v")))

	s.Set("device_group_topic", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetDevGroupName1), "Control").Arr(4).Cmd(CmdStrIdx("Control", "DevGroupName%d %v", 0)))
	s.Set("mqtt_grptopic", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetMQTTGrpTopic), "MQTT").Cmd(CmdStr("MQTT", "GroupTopic1 %v")))
	s.Set("mqtt_grptopic2", F(All, Str(TextPoolSize), TextAt(TextPoolOff, SetMQTTGrpTopic2), "MQTT").Arr(3).Cmd(CmdStrIdx("MQTT", "GroupTopic%d %v", 1)))

	s.Set("my_gp", F(ESP82, U8, At(0x484), "Management").Arr(17).Cmd(CmdIdx("Management", "Gpio%d %v", -1)))
	s.Set("my_gp_esp32", F(ESP32, U8, At(0x558), "Management").Arr(40).Cmd(CmdIdx("Management", "Gpio%d %v", -1)))

	tpl32Flag := New().
		Set("adc0", F(ESP32, U8, BitsAt(0x5A4, 4, 0), "Management").Cmd(CmdFmt("Management", `Template {"FLAG":%v}`)))
	tpl32 := New().
		Set("base", F(ESP32, U8, At(0x71F), "Management").Cmd(CmdFmt("Management", `Template {"BASE":%v}`)).Conv(
			func(v any) any { return AsInt(v) + 1 },
			func(v any) (any, bool) { return AsInt(v) - 1, true })).
		Set("name", F(ESP32, Str(15), At(0x720), "Management").Cmd(CmdFmt("Management", `Template {"NAME":"%v"}`))).
		Set("gpio", F(ESP32, U8, At(0x580), "Management").Arr(36).Cmd(cmndTemplateGPIO("user_template_esp32"))).
		Set("flag", G(ESP32, At(0x5A4), tpl32Flag, "Management"))
	s.Set("user_template_esp32", G(ESP32, At(0x71F), tpl32, "Management"))

	for _, name := range s.Get("user_template").Sub.Names() {
		s.Get("user_template").Sub.Get(name).Platform = ESP82
	}
	s.Get("user_template").Platform = ESP82
	return s
}

func setting8_2_0_4() *Schema {
	s := setting8_2_0_3().Clone()
	s.Set("config_version", F(All, U8, At(0xF36), Internal).RO())
	return s
}

func shutterPosRead(v any) any {
	n := AsInt(v)
	if n == 0 {
		return "-"
	}
	return (n - 1) << 1
}

func shutterPosWrite(v any) (any, bool) {
	if s, ok := v.(string); ok && s == "-" {
		return int64(0), true
	}
	return (AsInt(v) >> 1) + 1, true
}

// cmndZbConfig combines the Zigbee radio parameters into one ZbConfig
// command.
func cmndZbConfig(v any, _ int, tree map[string]any) []string {
	return []string{fmt.Sprintf(`ZbConfig {"Channel":%d,"PanID":"0x%04X","ExtPanID":"0x%016X","KeyL":"0x%016X","KeyH":"0x%016X"}`,
		AsInt(v), treeInt(tree, "zb_pan_id"), treeInt(tree, "zb_ext_panid"),
		treeInt(tree, "zb_precfgkey_l"), treeInt(tree, "zb_precfgkey_h"))}
}
