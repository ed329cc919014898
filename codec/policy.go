// Package codec turns raw configuration images into structured value trees
// and back, driven by the layout tables in package schema. It handles
// bit-packed fields, fixed and pool-indexed strings, arrays and nested
// groups, value converters, and the strict/lenient validation policy.
package codec

import (
	"github.com/tasconf/tasconf/schema"
	"github.com/tasconf/tasconf/status"
)

// Policy carries the switches that alter how values decode and how strictly
// restore input is checked. The zero value is the strict default.
type Policy struct {
	// Platform selects which platform-scoped fields apply.
	Platform schema.Platform

	// Groups, when non-nil, restricts decode output and command output to
	// fields whose group name (lower-cased) is present.
	Groups map[string]bool

	// Raw skips read/write converters and password masking, yielding the
	// values exactly as stored.
	Raw bool

	// HidePasswords substitutes the mask for password fields on decode.
	HidePasswords bool

	// Lenient demotes per-field restore failures from fatal errors to
	// reported warnings, skipping the offending field.
	Lenient bool

	// Report receives demoted warnings. Nil means status.ReportErr.
	Report func(error)
}

// wants reports whether the group passes the filter. No filter passes
// everything, Internal fields included; an active filter admits exactly the
// named groups, so "internal" can be opted in explicitly.
func (p *Policy) wants(group string) bool {
	if p.Groups == nil || group == schema.Virtual {
		return true
	}
	return p.Groups[lower(group)]
}

func (p *Policy) platform() schema.Platform {
	if p.Platform == 0 {
		return schema.All
	}
	return p.Platform
}

// Fail routes a failure through the policy: lenient reports and continues,
// strict propagates.
func (p *Policy) Fail(err *status.Error) error {
	return p.fail(err)
}

// fail routes a per-field failure through the policy: lenient reports and
// continues, strict propagates.
func (p *Policy) fail(err *status.Error) error {
	if !p.Lenient {
		return err
	}
	err.Warn = true
	if p.Report != nil {
		p.Report(err)
	} else {
		status.ReportErr(err)
	}
	return nil
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
