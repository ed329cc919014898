package schema

// Layout tables for the 7.x releases, which shuffled several settings into
// the upper 0xE00..0xFFF region freed by the 0x1000 growth.

func setting7_0_0_4() *Schema {
	s := setting6_6_0_21().Clone()
	s.Delete("register8")
	s.Set("shutter_motordelay", F(All, U8, At(0xE9A), "Shutter").Arr(4).Cmd(cmndTenth("Shutter", "ShutterMotorDelay%d %.1f", true)))
	s.Set("flag4", F(All, U32, At(0x1E0), Internal).Conv(Hex(8), nil))
	s.Get("flag3").Sub.
		Set("cors_enabled", F(All, U32, BitsAt(0x3A0, 1, 23), "SetOption").Cmd(CmdFmt("SetOption", "SetOption73 %v"))).
		Set("ds18x20_internal_pullup", F(All, U32, BitsAt(0x3A0, 1, 24), "SetOption").Cmd(CmdFmt("SetOption", "SetOption74 %v"))).
		Set("grouptopic_mode", F(All, U32, BitsAt(0x3A0, 1, 25), "SetOption").Cmd(CmdFmt("SetOption", "SetOption75 %v"))).
		Set("bootcount_update", F(All, U32, BitsAt(0x3A0, 1, 26), "SetOption").Cmd(CmdFmt("SetOption", "SetOption76 %v")))
	s.Set("web_color2", F(All, U8n(3), At(0xEA0), "Wifi").Arr(1).Conv(Hex(6), nil).Cmd(cmndWebColor(18)))
	s.Set("i2c_drivers", F(All, U32, At(0xFEC), "Management").Arr(3).Conv(Hex(8), nil))
	s.Set("wifi_output_power", F(All, U8, At(0x1E5), "Wifi").Cmd(cmndTenth("Wifi", "WifiPower %.1f", false)))
	return s
}

func setting7_1_2_5() *Schema {
	s := setting7_0_0_4().Clone()
	s.Set("temp_comp", F(All, I8, At(0xE9E), "Sensor").Valid(Between(-126, 126)).Cmd(cmndTenth("Sensor", "TempOffset %.1f", false)))
	s.Get("flag3").Sub.
		Set("slider_dimmer_stay_on", F(All, U32, BitsAt(0x3A0, 1, 27), "SetOption").Cmd(CmdFmt("SetOption", "SetOption77 %v")))
	s.Get("flag3").Sub.Delete("cors_enabled")
	s.Set("cors_domain", F(All, Str(33), At(0xEA6), "Wifi").Cmd(CmdStr("Wifi", "CORS %v")))
	s.Set("weight_change", F(All, U8, At(0xE9F), "Management").Cmd(CmdFmt("Management", "Sensor34 9 %v")))

	s.Set("seriallog_level", F(All, U8, At(0x452), "Management").Valid(Between(0, 5)).Cmd(CmdFmt("Management", "SerialLog %v")))
	s.Set("sta_config", F(All, U8, At(0xEC7), "Wifi").Valid(Between(0, 5)).Cmd(CmdFmt("Wifi", "WifiConfig %v")))
	s.Set("sta_active", F(All, U8, At(0xEC8), "Wifi").Valid(Between(0, 1)).Cmd(CmdFmt("Wifi", "AP %v")))

	ruleStop := New().
		Set("rule1", F(All, U8, BitsAt(0xEC9, 1, 0), "Rules").Cmd(cmndRulePlus(1, 8))).
		Set("rule2", F(All, U8, BitsAt(0xEC9, 1, 1), "Rules").Cmd(cmndRulePlus(2, 8))).
		Set("rule3", F(All, U8, BitsAt(0xEC9, 1, 2), "Rules").Cmd(cmndRulePlus(3, 8)))
	s.Set("rule_stop", G(All, At(0xEC9), ruleStop, "Rules"))

	s.Set("syslog_port", F(All, U16, At(0xECA), "Management").Valid(Between(1, 32766)).Cmd(CmdFmt("Management", "LogPort %v")))
	s.Set("syslog_level", F(All, U8, At(0xECC), "Management").Valid(Between(0, 4)).Cmd(CmdFmt("Management", "SysLog %v")))
	s.Set("webserver", F(All, U8, At(0xECD), "Wifi").Valid(Between(0, 2)).Cmd(CmdFmt("Wifi", "WebServer %v")))
	s.Set("weblog_level", F(All, U8, At(0xECE), "Management").Valid(Between(0, 4)).Cmd(CmdFmt("Management", "WebLog %v")))
	s.Set("mqtt_fingerprint1", F(All, U8, At(0xECF), "MQTT").Arr(20).Conv(Hex(2), nil).Cmd(cmndFingerprint("mqtt_fingerprint1", "MqttFingerprint1")))
	s.Set("mqtt_fingerprint2", F(All, U8, At(0xECF+20), "MQTT").Arr(20).Conv(Hex(2), nil).Cmd(cmndFingerprint("mqtt_fingerprint2", "MqttFingerprint2")))
	s.Set("adc_param_type", F(All, U8, At(0xEF7), "Sensor").Valid(Between(2, 3)).Cmd(CmdFn("Sensor", cmndAdcParam)))
	s.Set("serial_config", F(All, I8, At(0x14E), "Serial").Valid(Between(0, 23)).Cmd(CmdFn("Serial", cmndSerialConfig)))
	return s
}

func setting7_1_2_6() *Schema {
	s := setting7_1_2_5().Clone()
	s.Set("flag4", F(All, U32, At(0xEF8), Internal).Conv(Hex(8), nil))
	s.Set("serial_config", F(All, I8, At(0xEFE), "Serial").Valid(Between(0, 23)).Cmd(CmdFn("Serial", cmndSerialConfig)))
	s.Set("wifi_output_power", F(All, U8, At(0xEFF), "Wifi").Cmd(cmndTenth("Wifi", "WifiPower %.1f", false)))
	s.Set("mqtt_port", F(All, U16, At(0xEFC), "MQTT").Cmd(CmdFmt("MQTT", "MqttPort %v")))
	s.Set("shutter_accuracy", F(All, U8, At(0xF00), "Shutter"))
	s.Set("mqttlog_level", F(All, U8, At(0xF01), "Management").Cmd(CmdFmt("Management", "MqttLog %v")))
	s.Set("sps30_inuse_hours", F(All, U8, At(0xF02), Internal))
	s.Get("flag3").Sub.
		Set("compatibility_check", F(All, U32, BitsAt(0x3A0, 1, 28), "SetOption").Cmd(CmdFmt("SetOption", "SetOption78 %v")))
	return s
}
