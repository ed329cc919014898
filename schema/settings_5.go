package schema

// Layout tables for the 5.x releases. Each table derives from its
// predecessor by Clone plus the fields that release added, removed or
// moved, mirroring how the firmware evolved the struct.

func setting5_10_0() *Schema {
	flag := New().
		Set("save_state", F(All, U32, BitsAt(0x010, 1, 0), "SetOption").Cmd(CmdFmt("SetOption", "SetOption0 %v"))).
		Set("button_restrict", F(All, U32, BitsAt(0x010, 1, 1), "SetOption").Cmd(CmdFmt("SetOption", "SetOption1 %v"))).
		Set("value_units", F(All, U32, BitsAt(0x010, 1, 2), "SetOption").Cmd(CmdFmt("SetOption", "SetOption2 %v"))).
		Set("mqtt_enabled", F(All, U32, BitsAt(0x010, 1, 3), "SetOption").Cmd(CmdFmt("SetOption", "SetOption3 %v"))).
		Set("mqtt_response", F(All, U32, BitsAt(0x010, 1, 4), "SetOption").Cmd(CmdFmt("SetOption", "SetOption4 %v"))).
		Set("mqtt_power_retain", F(All, U32, BitsAt(0x010, 1, 5), "MQTT").Cmd(CmdFmt("MQTT", "PowerRetain %v"))).
		Set("mqtt_button_retain", F(All, U32, BitsAt(0x010, 1, 6), "MQTT").Cmd(CmdFmt("MQTT", "ButtonRetain %v"))).
		Set("mqtt_switch_retain", F(All, U32, BitsAt(0x010, 1, 7), "MQTT").Cmd(CmdFmt("MQTT", "SwitchRetain %v"))).
		Set("temperature_conversion", F(All, U32, BitsAt(0x010, 1, 8), "SetOption").Cmd(CmdFmt("SetOption", "SetOption8 %v"))).
		Set("mqtt_sensor_retain", F(All, U32, BitsAt(0x010, 1, 9), "MQTT").Cmd(CmdFmt("MQTT", "SensorRetain %v"))).
		Set("mqtt_offline", F(All, U32, BitsAt(0x010, 1, 10), "SetOption").Cmd(CmdFmt("SetOption", "SetOption10 %v"))).
		Set("button_swap", F(All, U32, BitsAt(0x010, 1, 11), "SetOption").Cmd(CmdFmt("SetOption", "SetOption11 %v"))).
		Set("stop_flash_rotate", F(All, U32, BitsAt(0x010, 1, 12), "Management").Cmd(CmdFmt("Management", "SetOption12 %v"))).
		Set("button_single", F(All, U32, BitsAt(0x010, 1, 13), "SetOption").Cmd(CmdFmt("SetOption", "SetOption13 %v"))).
		Set("interlock", F(All, U32, BitsAt(0x010, 1, 14), "SetOption").Cmd(CmdFmt("SetOption", "SetOption14 %v"))).
		Set("pwm_control", F(All, U32, BitsAt(0x010, 1, 15), "SetOption").Cmd(CmdFmt("SetOption", "SetOption15 %v"))).
		Set("ws_clock_reverse", F(All, U32, BitsAt(0x010, 1, 16), "SetOption").Cmd(CmdFmt("SetOption", "SetOption16 %v"))).
		Set("decimal_text", F(All, U32, BitsAt(0x010, 1, 17), "SetOption").Cmd(CmdFmt("SetOption", "SetOption17 %v")))

	power := New().
		Set("power1", F(All, U32, BitsAt(0x2E8, 1, 0), "Control").Cmd(CmdFmt("Control", "Power1 %v"))).
		Set("power2", F(All, U32, BitsAt(0x2E8, 1, 1), "Control").Cmd(CmdFmt("Control", "Power2 %v"))).
		Set("power3", F(All, U32, BitsAt(0x2E8, 1, 2), "Control").Cmd(CmdFmt("Control", "Power3 %v"))).
		Set("power4", F(All, U32, BitsAt(0x2E8, 1, 3), "Control").Cmd(CmdFmt("Control", "Power4 %v"))).
		Set("power5", F(All, U32, BitsAt(0x2E8, 1, 4), "Control").Cmd(CmdFmt("Control", "Power5 %v"))).
		Set("power6", F(All, U32, BitsAt(0x2E8, 1, 5), "Control").Cmd(CmdFmt("Control", "Power6 %v"))).
		Set("power7", F(All, U32, BitsAt(0x2E8, 1, 6), "Control").Cmd(CmdFmt("Control", "Power7 %v"))).
		Set("power8", F(All, U32, BitsAt(0x2E8, 1, 7), "Control").Cmd(CmdFmt("Control", "Power8 %v")))

	flag2 := New().
		Set("current_resolution", F(All, U32, BitsAt(0x5BC, 2, 15), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "AmpRes %v"))).
		Set("voltage_resolution", F(All, U32, BitsAt(0x5BC, 2, 17), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "VoltRes %v"))).
		Set("wattage_resolution", F(All, U32, BitsAt(0x5BC, 2, 19), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "WattRes %v"))).
		Set("emulation", F(All, U32, BitsAt(0x5BC, 2, 21), "Management").Valid(Between(0, 2)).Cmd(CmdFmt("Management", "Emulation %v"))).
		Set("energy_resolution", F(All, U32, BitsAt(0x5BC, 3, 23), "Sensor").Valid(Between(0, 5)).Cmd(CmdFmt("Sensor", "EnergyRes %v"))).
		Set("pressure_resolution", F(All, U32, BitsAt(0x5BC, 2, 26), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "PressRes %v"))).
		Set("humidity_resolution", F(All, U32, BitsAt(0x5BC, 2, 28), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "HumRes %v"))).
		Set("temperature_resolution", F(All, U32, BitsAt(0x5BC, 2, 30), "Sensor").Valid(Between(0, 3)).Cmd(CmdFmt("Sensor", "TempRes %v")))

	counterType := New().
		Set("pulse_counter_type1", F(All, U16, BitsAt(0x5D0, 1, 0), "Sensor").Cmd(CmdFmt("Sensor", "CounterType1 %v"))).
		Set("pulse_counter_type2", F(All, U16, BitsAt(0x5D0, 1, 1), "Sensor").Cmd(CmdFmt("Sensor", "CounterType2 %v"))).
		Set("pulse_counter_type3", F(All, U16, BitsAt(0x5D0, 1, 2), "Sensor").Cmd(CmdFmt("Sensor", "CounterType3 %v"))).
		Set("pulse_counter_type4", F(All, U16, BitsAt(0x5D0, 1, 3), "Sensor").Cmd(CmdFmt("Sensor", "CounterType4 %v")))

	return New().
		Set("cfg_holder", F(All, U32, At(0x000), Internal).Conv(Hex(8), nil)).
		Set("save_flag", F(All, U32, At(0x004), Internal).RO()).
		Set("version", F(All, U32, At(0x008), "System").Conv(Hex(0), nil).RO()).
		Set("bootcount", F(All, U32, At(0x00C), "System")).
		Set("flag", G(All, At(0x010), flag, Virtual)).
		Set("save_data", F(All, I16, At(0x014), "Management").Valid(Between(0, 3600)).Cmd(CmdFmt("Management", "SaveData %v"))).
		Set("timezone", F(All, I8, At(0x016), "Management").Valid(OneOf(Between(-13, 13), Eq(99))).Cmd(CmdFmt("Management", "Timezone %v"))).
		Set("ota_url", F(All, Str(101), At(0x017), "Management").Cmd(CmdFmt("Management", "OtaUrl %v"))).
		Set("mqtt_prefix", F(All, Str(11), At(0x07C), "MQTT").Arr(3).Cmd(CmdIdx("MQTT", "Prefix%d %v", 0))).
		Set("seriallog_level", F(All, U8, At(0x09E), "Management").Valid(Between(0, 5)).Cmd(CmdFmt("Management", "SerialLog %v"))).
		Set("sta_config", F(All, U8, At(0x09F), "Wifi").Valid(Between(0, 5)).Cmd(CmdFmt("Wifi", "WifiConfig %v"))).
		Set("sta_active", F(All, U8, At(0x0A0), "Wifi").Valid(Between(0, 1)).Cmd(CmdFmt("Wifi", "AP %v"))).
		Set("sta_ssid", F(All, Str(33), At(0x0A1), "Wifi").Arr(2).Cmd(CmdIdx("Wifi", "SSId%d %v", 0))).
		Set("sta_pwd", F(All, Str(65), At(0x0E3), "Wifi").Arr(2).Cmd(CmdIdx("Wifi", "Password%d %v", 0)).Pw()).
		Set("hostname", F(All, Str(33), At(0x165), "Wifi").Cmd(CmdFmt("Wifi", "Hostname %v"))).
		Set("syslog_host", F(All, Str(33), At(0x186), "Management").Cmd(CmdFmt("Management", "LogHost %v"))).
		Set("syslog_port", F(All, U16, At(0x1A8), "Management").Valid(Between(1, 32766)).Cmd(CmdFmt("Management", "LogPort %v"))).
		Set("syslog_level", F(All, U8, At(0x1AA), "Management").Valid(Between(0, 4)).Cmd(CmdFmt("Management", "SysLog %v"))).
		Set("webserver", F(All, U8, At(0x1AB), "Wifi").Valid(Between(0, 2)).Cmd(CmdFmt("Wifi", "WebServer %v"))).
		Set("weblog_level", F(All, U8, At(0x1AC), "Management").Valid(Between(0, 4)).Cmd(CmdFmt("Management", "WebLog %v"))).
		Set("mqtt_fingerprint", F(All, U8, At(0x1AD), "MQTT").Arr(60).Conv(Hex(2), nil).Cmd(cmndFingerprint("mqtt_fingerprint", "MqttFingerprint"))).
		Set("mqtt_host", F(All, Str(33), At(0x1E9), "MQTT").Cmd(CmdFmt("MQTT", "MqttHost %v"))).
		Set("mqtt_port", F(All, U16, At(0x20A), "MQTT").Cmd(CmdFmt("MQTT", "MqttPort %v"))).
		Set("mqtt_client", F(All, Str(33), At(0x20C), "MQTT").Cmd(CmdFmt("MQTT", "MqttClient %v"))).
		Set("mqtt_user", F(All, Str(33), At(0x22D), "MQTT").Cmd(CmdFmt("MQTT", "MqttUser %v"))).
		Set("mqtt_pwd", F(All, Str(33), At(0x24E), "MQTT").Cmd(CmdFmt("MQTT", "MqttPassword %v")).Pw()).
		Set("mqtt_topic", F(All, Str(33), At(0x26F), "MQTT").Cmd(CmdFmt("MQTT", "FullTopic %v"))).
		Set("button_topic", F(All, Str(33), At(0x290), "MQTT").Cmd(CmdFmt("MQTT", "ButtonTopic %v"))).
		Set("mqtt_grptopic", F(All, Str(33), At(0x2B1), "MQTT").Cmd(CmdFmt("MQTT", "GroupTopic %v"))).
		Set("mqtt_fingerprinth", F(All, U8, At(0x2D2), "MQTT").Arr(20)).
		Set("pwm_frequency", F(All, U16, At(0x2E6), "Management").Valid(OneOf(Eq(1), Between(100, 4000))).Cmd(CmdFmt("Management", "PwmFrequency %v"))).
		Set("power", G(All, At(0x2E8), power, "Control")).
		Set("pwm_value", F(All, U16, At(0x2EC), "Management").Arr(5).Valid(Between(0, 1023)).Cmd(CmdIdx("Management", "Pwm%d %v", 0))).
		Set("altitude", F(All, I16, At(0x2F6), "Sensor").Valid(Between(-30000, 30000)).Cmd(CmdFmt("Sensor", "Altitude %v"))).
		Set("tele_period", F(All, U16, At(0x2F8), "MQTT").Valid(OneOf(Between(0, 1), Between(10, 3600))).Cmd(CmdFmt("MQTT", "TelePeriod %v"))).
		Set("ledstate", F(All, U8, At(0x2FB), "Control").Valid(Between(0, 7)).Cmd(CmdFn("Control", cmndLedState))).
		Set("param", F(All, U8, At(0x2FC), "SetOption").Arr(23).Cmd(CmdIdx("SetOption", "SetOption%d %v", 31))).
		Set("state_text", F(All, Str(11), At(0x313), "MQTT").Arr(4).Cmd(CmdIdx("MQTT", "StateText%d %v", 0))).
		Set("domoticz_update_timer", F(All, U16, At(0x340), "Domoticz").Valid(Between(0, 3600)).Cmd(CmdFmt("Domoticz", "DomoticzUpdateTimer %v"))).
		Set("pwm_range", F(All, U16, At(0x342), "Management").Valid(OneOf(Eq(1), Between(255, 1023))).Cmd(CmdFmt("Management", "PwmRange %v"))).
		Set("domoticz_relay_idx", F(All, U32, At(0x344), "Domoticz").Arr(4).Cmd(CmdIdx("Domoticz", "DomoticzIdx%d %v", 0))).
		Set("domoticz_key_idx", F(All, U32, At(0x354), "Domoticz").Arr(4).Cmd(CmdIdx("Domoticz", "DomoticzKeyIdx%d %v", 0))).
		Set("energy_power_calibration", F(All, U32, At(0x364), "Power").Cmd(CmdFmt("Power", "PowerSet %v"))).
		Set("energy_voltage_calibration", F(All, U32, At(0x368), "Power").Cmd(CmdFmt("Power", "VoltageSet %v"))).
		Set("energy_current_calibration", F(All, U32, At(0x36C), "Power").Cmd(CmdFmt("Power", "CurrentSet %v"))).
		Set("energy_kWhtoday", F(All, U32, At(0x370), "Power").Valid(Between(0, 4250000)).Cmd(cmndEnergyReset(1))).
		Set("energy_kWhyesterday", F(All, U32, At(0x374), "Power").Valid(Between(0, 4250000)).Cmd(cmndEnergyReset(2))).
		Set("energy_kWhdoy", F(All, U16, At(0x378), "Power")).
		Set("energy_min_power", F(All, U16, At(0x37A), "Power").Cmd(CmdFmt("Power", "PowerLow %v"))).
		Set("energy_max_power", F(All, U16, At(0x37C), "Power").Cmd(CmdFmt("Power", "PowerHigh %v"))).
		Set("energy_min_voltage", F(All, U16, At(0x37E), "Power").Cmd(CmdFmt("Power", "VoltageLow %v"))).
		Set("energy_max_voltage", F(All, U16, At(0x380), "Power").Cmd(CmdFmt("Power", "VoltageHigh %v"))).
		Set("energy_min_current", F(All, U16, At(0x382), "Power").Cmd(CmdFmt("Power", "CurrentLow %v"))).
		Set("energy_max_current", F(All, U16, At(0x384), "Power").Cmd(CmdFmt("Power", "CurrentHigh %v"))).
		Set("energy_max_power_limit", F(All, U16, At(0x386), "Power").Cmd(CmdFmt("Power", "MaxPower %v"))).
		Set("energy_max_power_limit_hold", F(All, U16, At(0x388), "Power").Cmd(CmdFmt("Power", "MaxPowerHold %v"))).
		Set("energy_max_power_limit_window", F(All, U16, At(0x38A), "Power").Cmd(CmdFmt("Power", "MaxPowerWindow %v"))).
		Set("energy_max_power_safe_limit", F(All, U16, At(0x38C), "Power").Cmd(CmdFmt("Power", "SavePower %v"))).
		Set("energy_max_power_safe_limit_hold", F(All, U16, At(0x38E), "Power").Cmd(CmdFmt("Power", "SavePowerHold %v"))).
		Set("energy_max_power_safe_limit_window", F(All, U16, At(0x390), "Power").Cmd(CmdFmt("Power", "SavePowerWindow %v"))).
		Set("energy_max_energy", F(All, U16, At(0x392), "Power").Cmd(CmdFmt("Power", "MaxEnergy %v"))).
		Set("energy_max_energy_start", F(All, U16, At(0x394), "Power").Cmd(CmdFmt("Power", "MaxEnergyStart %v"))).
		Set("mqtt_retry", F(All, U16, At(0x396), "MQTT").Valid(Between(10, 32000)).Cmd(CmdFmt("MQTT", "MqttRetry %v"))).
		Set("poweronstate", F(All, U8, At(0x398), "Control").Valid(Between(0, 5)).Cmd(CmdFmt("Control", "PowerOnState %v"))).
		Set("last_module", F(All, U8, At(0x399), Internal)).
		Set("blinktime", F(All, U16, At(0x39A), "Control").Valid(Between(2, 3600)).Cmd(CmdFmt("Control", "BlinkTime %v"))).
		Set("blinkcount", F(All, U16, At(0x39C), "Control").Valid(Between(0, 32000)).Cmd(CmdFmt("Control", "BlinkCount %v"))).
		Set("friendlyname", F(All, Str(33), At(0x3AC), "Management").Arr(4).Cmd(CmdStrIdx("Management", "FriendlyName%d %v", 0))).
		Set("switch_topic", F(All, Str(33), At(0x430), "MQTT").Cmd(CmdFmt("MQTT", "SwitchTopic %v"))).
		Set("sleep", F(All, U8, At(0x453), "Management").Valid(Between(0, 250)).Cmd(CmdFmt("Management", "Sleep %v"))).
		Set("domoticz_switch_idx", F(All, U16, At(0x454), "Domoticz").Arr(4).Cmd(CmdIdx("Domoticz", "DomoticzSwitchIdx%d %v", 0))).
		Set("domoticz_sensor_idx", F(All, U16, At(0x45C), "Domoticz").Arr(12).Cmd(CmdIdx("Domoticz", "DomoticzSensorIdx%d %v", 0))).
		Set("module", F(All, U8, At(0x474), "Management").Cmd(CmdFmt("Management", "Module %v"))).
		Set("ws_color", F(All, U8, At(0x475), "Light").Arr(4, 3)).
		Set("ws_width", F(All, U8, At(0x481), "Light").Arr(3)).
		Set("my_gp", F(All, U8, At(0x484), "Management").Arr(18).Cmd(CmdIdx("Management", "Gpio%d %v", -1))).
		Set("light_pixels", F(All, U16, At(0x496), "Light").Valid(Between(1, 512)).Cmd(CmdFmt("Light", "Pixels %v"))).
		Set("light_color", F(All, U8, At(0x498), "Light").Arr(5)).
		Set("light_correction", F(All, U8, At(0x49D), "Light").Valid(Between(0, 1)).Cmd(CmdFmt("Light", "LedTable %v"))).
		Set("light_dimmer", F(All, U8, At(0x49E), "Light").Valid(Between(0, 100)).Cmd(CmdFmt("Light", "Dimmer %v"))).
		Set("light_fade", F(All, U8, At(0x4A1), "Light").Valid(Between(0, 1)).Cmd(CmdFmt("Light", "Fade %v"))).
		Set("light_speed", F(All, U8, At(0x4A2), "Light").Valid(Between(1, 20)).Cmd(CmdFmt("Light", "Speed %v"))).
		Set("light_scheme", F(All, U8, At(0x4A3), "Light").Cmd(CmdFmt("Light", "Scheme %v"))).
		Set("light_width", F(All, U8, At(0x4A4), "Light").Valid(Between(0, 4)).Cmd(CmdFmt("Light", "Width %v"))).
		Set("light_wakeup", F(All, U16, At(0x4A6), "Light").Valid(Between(0, 3100)).Cmd(CmdFmt("Light", "WakeUpDuration %v"))).
		Set("web_password", F(All, Str(33), At(0x4A9), "Wifi").Cmd(CmdFmt("Wifi", "WebPassword %v")).Pw()).
		Set("switchmode", F(All, U8, At(0x4CA), "Control").Arr(4).Valid(Between(0, 7)).Cmd(CmdIdx("Control", "SwitchMode%d %v", 0))).
		Set("ntp_server", F(All, Str(33), At(0x4CE), "Wifi").Arr(3).Cmd(CmdIdx("Wifi", "NtpServer%d %v", 0))).
		Set("ina219_mode", F(All, U8, At(0x531), "Sensor").Valid(Between(0, 7)).Cmd(CmdFmt("Sensor", "Sensor13 %v"))).
		Set("pulse_timer", F(All, U16, At(0x532), "Control").Arr(8).Valid(Between(0, 64900)).Cmd(CmdIdx("Control", "PulseTime%d %v", 0))).
		Set("ip_address", F(All, U32, At(0x544), "Wifi").Arr(4).Conv(IPv4(), ParseIPv4()).Cmd(CmdIdx("Wifi", "IPAddress%d %v", 0))).
		Set("energy_kWhtotal", F(All, U32, At(0x554), "Power").Valid(Between(0, 4250000000)).Cmd(cmndEnergyReset(3))).
		Set("mqtt_fulltopic", F(All, Str(100), At(0x558), "MQTT").Cmd(CmdFmt("MQTT", "FullTopic %v"))).
		Set("flag2", G(All, At(0x5BC), flag2, Virtual)).
		Set("pulse_counter", F(All, U32, At(0x5C0), "Sensor").Arr(4).Cmd(CmdIdx("Sensor", "Counter%d %v", 0))).
		Set("pulse_counter_type", G(All, At(0x5D0), counterType, "Sensor")).
		Set("pulse_counter_debounce", F(All, U16, At(0x5D2), "Sensor").Valid(Between(0, 32000)).Cmd(CmdFmt("Sensor", "CounterDebounce %v"))).
		Set("rf_code", F(All, U8, At(0x5D4), "Rf").Arr(17, 9).Conv(Hex(2), nil))
}

func setting5_11_0() *Schema {
	s := setting5_10_0().Clone()
	s.Set("display_model", F(All, U8, At(0x2D2), "Display").Valid(Between(0, 16)).Cmd(CmdFmt("Display", "Model %v")))
	s.Set("display_mode", F(All, U8, At(0x2D3), "Display").Valid(Between(0, 5)).Cmd(CmdFmt("Display", "Mode %v")))
	s.Set("display_refresh", F(All, U8, At(0x2D4), "Display").Valid(Between(1, 7)).Cmd(CmdFmt("Display", "Refresh %v")))
	s.Set("display_rows", F(All, U8, At(0x2D5), "Display").Valid(Between(1, 32)).Cmd(CmdFmt("Display", "Rows %v")))
	s.Set("display_cols", F(All, U8, At(0x2D6), "Display").Arr(2).Valid(Between(1, 40)).Cmd(CmdIdx("Display", "Cols%d %v", 0)))
	s.Set("display_address", F(All, U8, At(0x2D8), "Display").Arr(8).Cmd(CmdIdx("Display", "Address%d %v", 0)))
	s.Set("display_dimmer", F(All, U8, At(0x2E0), "Display").Valid(Between(0, 100)).Cmd(CmdFmt("Display", "Dimmer %v")))
	s.Set("display_size", F(All, U8, At(0x2E1), "Display").Valid(Between(1, 4)).Cmd(CmdFmt("Display", "Size %v")))
	s.Get("flag").Sub.
		Set("light_signal", F(All, U32, BitsAt(0x010, 1, 18), "SetOption").Cmd(CmdFmt("SetOption", "SetOption18 %v")))
	s.Delete("mqtt_fingerprinth")
	return s
}

func setting5_12_0() *Schema {
	s := setting5_11_0().Clone()
	s.Get("flag").Sub.
		Set("hass_discovery", F(All, U32, BitsAt(0x010, 1, 19), "SetOption").Cmd(CmdFmt("SetOption", "SetOption19 %v"))).
		Set("not_power_linked", F(All, U32, BitsAt(0x010, 1, 20), "SetOption").Cmd(CmdFmt("SetOption", "SetOption20 %v"))).
		Set("no_power_on_check", F(All, U32, BitsAt(0x010, 1, 21), "SetOption").Cmd(CmdFmt("SetOption", "SetOption21 %v")))
	return s
}

func setting5_13_1() *Schema {
	s := setting5_12_0().Clone()
	s.Delete("mqtt_fingerprint")
	s.Get("flag").Sub.
		Set("mqtt_serial", F(All, U32, BitsAt(0x010, 1, 22), "SetOption").Cmd(CmdFmt("SetOption", "SetOption22 %v"))).
		Set("rules_enabled", F(All, U32, BitsAt(0x010, 1, 23), "SetOption").Cmd(CmdFmt("SetOption", "SetOption23 %v"))).
		Set("rules_once", F(All, U32, BitsAt(0x010, 1, 24), "SetOption").Cmd(CmdFmt("SetOption", "SetOption24 %v"))).
		Set("knx_enabled", F(All, U32, BitsAt(0x010, 1, 25), "KNX").Cmd(CmdFmt("KNX", "KNX_ENABLED %v")))

	timer := New().
		Set("time", F(All, U32, BitsAt(0x670, 11, 0), "Timer").Valid(Between(0, 1439)).Cmd(CmdFn("Timer", cmndTimer)).Conv(Hex(8), nil).RO()).
		Set("window", F(All, U32, BitsAt(0x670, 4, 11), "Timer")).
		Set("repeat", F(All, U32, BitsAt(0x670, 1, 15), "Timer")).
		Set("days", F(All, U32, BitsAt(0x670, 7, 16), "Timer")).
		Set("device", F(All, U32, BitsAt(0x670, 4, 23), "Timer")).
		Set("power", F(All, U32, BitsAt(0x670, 2, 27), "Timer")).
		Set("mode", F(All, U32, BitsAt(0x670, 2, 29), "Timer").Valid(Between(0, 3))).
		Set("arm", F(All, U32, BitsAt(0x670, 1, 31), "Timer"))

	s.Set("baudrate", F(All, U8, At(0x09D), "Serial").Cmd(CmdFmt("Serial", "Baudrate %v")).Conv(MulRead(1200), DivWrite(1200)))
	s.Set("mqtt_fingerprint1", F(All, U8, At(0x1AD), "MQTT").Arr(20).Conv(Hex(2), nil).Cmd(cmndFingerprint("mqtt_fingerprint1", "MqttFingerprint1")))
	s.Set("mqtt_fingerprint2", F(All, U8, At(0x1AD+20), "MQTT").Arr(20).Conv(Hex(2), nil).Cmd(cmndFingerprint("mqtt_fingerprint2", "MqttFingerprint2")))
	s.Set("energy_power_delta", F(All, U8, At(0x33F), "Power").Cmd(CmdFmt("Power", "PowerDelta %v")))
	s.Set("light_rotation", F(All, U16, At(0x39E), "Light").Cmd(CmdFmt("Light", "Rotation %v")))
	s.Set("serial_delimiter", F(All, U8, At(0x451), "Serial").Cmd(CmdFmt("Serial", "SerialDelimiter %v")))
	s.Set("sbaudrate", F(All, U8, At(0x452), "Serial").Cmd(CmdFmt("Serial", "SBaudrate %v")).Conv(MulRead(1200), DivWrite(1200)))
	s.Set("knx_GA_registered", F(All, U8, At(0x4A5), "KNX"))
	s.Set("knx_CB_registered", F(All, U8, At(0x4A8), "KNX"))
	s.Set("timer", G(All, At(0x670), timer, "Timer").Arr(16))
	s.Set("latitude", F(All, I32, At(0x6B0), "Timer").Conv(Div(1000000), Mul(1000000)).Cmd(CmdFmt("Timer", "Latitude %v")))
	s.Set("longitude", F(All, I32, At(0x6B4), "Timer").Conv(Div(1000000), Mul(1000000)).Cmd(CmdFmt("Timer", "Longitude %v")))
	s.Set("knx_physsical_addr", F(All, U16, At(0x6B8), "KNX"))
	s.Set("knx_GA_addr", F(All, U16, At(0x6BA), "KNX").Arr(10))
	s.Set("knx_CB_addr", F(All, U16, At(0x6CE), "KNX").Arr(10))
	s.Set("knx_GA_param", F(All, U8, At(0x6E2), "KNX").Arr(10))
	s.Set("knx_CB_param", F(All, U8, At(0x6EC), "KNX").Arr(10))
	s.Set("rules", F(All, Str(512), At(0x800), "Rules").Cmd(CmdStr("Rules", "Rule %v")))
	return s
}

func setting5_14_0() *Schema {
	s := setting5_13_1().Clone()
	s.Get("flag").Sub.
		Set("device_index_enable", F(All, U32, BitsAt(0x010, 1, 26), "SetOption").Cmd(CmdFmt("SetOption", "SetOption26 %v")))
	s.Get("flag").Sub.Delete("rules_once")

	tflag := New().
		Set("hemis", F(All, U16, BitsAt(0x2E2, 1, 0), "Management")).
		Set("week", F(All, U16, BitsAt(0x2E2, 3, 1), "Management").Valid(Between(0, 4))).
		Set("month", F(All, U16, BitsAt(0x2E2, 4, 4), "Management").Valid(Between(1, 12))).
		Set("dow", F(All, U16, BitsAt(0x2E2, 3, 8), "Management").Valid(Between(1, 7))).
		Set("hour", F(All, U16, BitsAt(0x2E2, 5, 11), "Management").Valid(Between(0, 23)))

	s.Set("tflag", G(All, At(0x2E2), tflag, "Management").Arr(2))
	s.Set("param", F(All, U8, At(0x2FC), "SetOption").Arr(18).Cmd(CmdIdx("SetOption", "SetOption%d %v", 31)))
	s.Set("toffset", F(All, I16, At(0x30E), "Management").Arr(2).Cmd(CmdFn("Management", cmndTimeOffset)))
	return s
}
