package config

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tasconf/tasconf/schema"
)

var (
	underscoreRuns = regexp.MustCompile(`_{2,}`)
	nonWord        = regexp.MustCompile(`[^0-9a-zA-Z]`)
)

// FilenameVars are the values substituted into a filename template.
type FilenameVars struct {
	// Version replaces @v, the firmware version from the image.
	Version string
	// FriendlyName replaces @f, the first friendly name from the image.
	FriendlyName string
	// Hostname replaces @h, the hostname stored in the image.
	Hostname string
	// DeviceHostname replaces @H, the hostname a live device reports.
	DeviceHostname string
}

// VarsFromTree fills the template variables from a decoded value tree.
// The device hostname has to come from the device itself.
func VarsFromTree(tree map[string]any) FilenameVars {
	var v FilenameVars
	if ver, ok := tree["version"]; ok {
		if n, err := strconv.ParseUint(toString(ver), 0, 32); err == nil {
			v.Version = schema.VersionString(uint32(n))
		}
	}
	if fn, ok := tree["friendlyname"].([]any); ok && len(fn) > 0 {
		name := toString(fn[0])
		v.FriendlyName = underscoreRuns.ReplaceAllString(strings.ReplaceAll(name, " ", "_"), "_")
	}
	if hn, ok := tree["hostname"]; ok {
		name := toString(hn)
		// A hostname with a %-placeholder is a device-side template, not a
		// usable name.
		if !strings.Contains(name, "%") {
			v.Hostname = strings.Trim(underscoreRuns.ReplaceAllString(nonWord.ReplaceAllString(name, "_"), "_"), "_")
		}
	}
	return v
}

// MakeFilename expands the template variables in name, sanitizes the base
// name, and appends ext when the name has no usable extension.
func MakeFilename(name string, ext string, vars FilenameVars) string {
	dir := filepath.Dir(name)
	base := filepath.Base(name)
	curExt := filepath.Ext(base)
	stem := strings.TrimSuffix(base, curExt)

	stem = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`\/*?:"<>|`, r) {
			return -1
		}
		return r
	}, stem)
	stem = strings.ReplaceAll(stem, " ", "_")

	curExt = strings.TrimPrefix(curExt, ".")
	if ext != "" && (len(curExt) < 2 || allDigits(curExt)) {
		curExt = strings.ToLower(ext)
	}
	if curExt != "" {
		stem += "." + curExt
	}

	out := filepath.Join(dir, stem)
	out = strings.ReplaceAll(out, "@v", vars.Version)
	out = strings.ReplaceAll(out, "@f", vars.FriendlyName)
	out = strings.ReplaceAll(out, "@h", vars.Hostname)
	out = strings.ReplaceAll(out, "@H", vars.DeviceHostname)
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
