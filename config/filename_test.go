package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarsFromTree(t *testing.T) {
	tree := map[string]any{
		"version":      "0x8020004",
		"friendlyname": []any{"Living Room", "Second"},
		"hostname":     "sonoff-4281",
	}
	vars := VarsFromTree(tree)
	assert.Equal(t, "8.2.0.4", vars.Version)
	assert.Equal(t, "Living_Room", vars.FriendlyName)
	assert.Equal(t, "sonoff_4281", vars.Hostname)
}

func TestVarsFromTreeTemplatedHostname(t *testing.T) {
	vars := VarsFromTree(map[string]any{"hostname": "%s-%04d"})
	assert.Equal(t, "", vars.Hostname, "device-side hostname templates are unusable")
}

func TestMakeFilename(t *testing.T) {
	vars := FilenameVars{Version: "8.2.0.4", FriendlyName: "Kitchen", Hostname: "sonoff_4281"}

	assert.Equal(t, "Config_Kitchen_8.2.0.4.json",
		MakeFilename("Config_@f_@v", "json", vars))
	assert.Equal(t, "backup/sonoff_4281.dmp",
		MakeFilename("backup/@h", "dmp", vars))

	// an existing extension wins over the requested one
	assert.Equal(t, "Config.bin", MakeFilename("Config.bin", "json", vars))

	// spaces and forbidden characters leave the base name
	assert.Equal(t, "my_backup.json", MakeFilename(`my? backup`, "json", vars))
}

func TestMakeFilenameDeviceHostname(t *testing.T) {
	vars := FilenameVars{DeviceHostname: "kitchen"}
	assert.Equal(t, "kitchen.json", MakeFilename("@H", "json", vars))
}
