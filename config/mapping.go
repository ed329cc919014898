package config

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/tasconf/tasconf/codec"
)

// HeaderName is the reserved top-level key carrying backup metadata. It is
// never field data and restores skip it.
const HeaderName = "header"

// Now is the clock used for header timestamps on images without a stored
// one. Tests substitute it.
var Now = time.Now

// Map decodes the image into its value tree and attaches the metadata
// header: timestamp, layout and image identity, and both stored and
// computed checksums.
func (img *Image) Map(pol *codec.Policy) map[string]any {
	p := *pol
	p.Platform = img.Info.Platform
	tree := codec.Decode(img.Plain, img.Info.Entry.Fields, &p)
	tree[HeaderName] = img.header(&p)
	return tree
}

func (img *Image) header(pol *codec.Policy) map[string]any {
	entry := img.Info.Entry

	ts := Now().UTC()
	if entry.Fields.Has("cfg_timestamp") {
		if v, ok := codec.DecodeField(img.Plain, entry.Fields, "cfg_timestamp").(int64); ok && v != 0 {
			ts = time.Unix(v, 0).UTC()
		}
	}

	template := map[string]any{
		"version": fmt.Sprintf("0x%x", entry.Version),
		"crc":     fmt.Sprintf("0x%x", img.StoredChecksum16()),
	}
	data := map[string]any{
		"crc":  fmt.Sprintf("0x%x", img.checksum16()),
		"size": len(img.Plain),
	}
	if entry.Fields.Has("cfg_size") {
		if v, ok := codec.DecodeField(img.Plain, entry.Fields, "cfg_size").(int64); ok {
			template["size"] = v
		}
	}
	if entry.Fields.Has("cfg_crc32") {
		template["crc32"] = fmt.Sprintf("0x%x", img.StoredCRC32())
		data["crc32"] = fmt.Sprintf("0x%x", img.crc32())
	}
	if img.Info.Version != 0 {
		data["version"] = fmt.Sprintf("0x%x", img.Info.Version)
	}

	return map[string]any{
		"timestamp": ts.Format("2006-01-02 15:04:05"),
		"format": map[string]any{
			"jsonhidepw": pol.HidePasswords,
		},
		"template": template,
		"data":     data,
		"program": map[string]any{
			"name":    ProgName,
			"version": ProgVersion,
			"os":      runtime.GOOS,
		},
	}
}

// RenderJSON serializes a value tree for a backup file. A negative indent
// yields single-line output. Object keys always serialize sorted.
func RenderJSON(tree map[string]any, indent int) ([]byte, error) {
	if indent < 0 {
		return json.Marshal(tree)
	}
	return json.MarshalIndent(tree, "", strings.Repeat(" ", indent))
}

// ParseJSON reads a backup file's value tree. A backup written by this
// program always carries the metadata header; its absence means the file is
// some other JSON document.
func ParseJSON(content []byte) (map[string]any, bool, error) {
	var tree map[string]any
	if err := json.Unmarshal(content, &tree); err != nil {
		return nil, false, err
	}
	_, hasHeader := tree[HeaderName]
	return tree, hasHeader, nil
}
