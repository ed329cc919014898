// Package status defines the program's error taxonomy: every failure mode
// maps to a process exit code and a classified, human-readable message.
package status

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes. The numbering is part of the tool's contract with scripts
// driving it and must stay stable.
const (
	OK                  = 0
	RestoreSkipped      = 1
	ArgumentError       = 2
	FileNotFound        = 3
	DataSizeMismatch    = 4
	DataCRCError        = 5
	UnsupportedVersion  = 6
	FileReadError       = 7
	JSONReadError       = 8
	RestoreDataError    = 9
	DownloadError       = 10
	UploadError         = 11
	InvalidData         = 12
	InternalError       = 21
	HTTPConnectionError = 22
)

var codeText = map[int]string{
	OK:                  "OK",
	RestoreSkipped:      "Restore skipped",
	ArgumentError:       "Parameter error",
	FileNotFound:        "File not found",
	DataSizeMismatch:    "Data size mismatch",
	DataCRCError:        "Data CRC error",
	UnsupportedVersion:  "Unsupported version",
	FileReadError:       "File read error",
	JSONReadError:       "JSON read error",
	RestoreDataError:    "Restore data error",
	DownloadError:       "Download error",
	UploadError:         "Upload error",
	InvalidData:         "Invalid data",
	InternalError:       "Internal error",
	HTTPConnectionError: "HTTP connection error",
}

// CodeText returns the short description of an exit code, or "" when the
// code is unknown.
func CodeText(code int) string {
	return codeText[code]
}

// Error is a failure carrying its exit code. Warn marks errors that the
// lenient (ignore-warning) policy may demote to a non-fatal message.
type Error struct {
	Code int
	Msg  string
	Warn bool
}

func (e *Error) Error() string { return e.Msg }

// Errorf builds a fatal *Error.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Warnf builds a recoverable *Error: fatal under the strict policy,
// reported-and-ignored under the lenient one.
func Warnf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Warn: true}
}

// CodeOf extracts the exit code from err, defaulting to InternalError for
// anything that is not a *Error.
func CodeOf(err error) int {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return InternalError
}

// IsWarning reports whether err is a recoverable *Error.
func IsWarning(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Warn
}

// Message classification labels.
const (
	Info    = "INFO"
	Warning = "WARNING"
	Err     = "ERROR"
)

// Out is where classified messages go. Tests may swap it.
var Out io.Writer = os.Stderr

// Report prints one classified message line.
func Report(kind, format string, args ...any) {
	fmt.Fprintf(Out, "%s: %s\n", kind, fmt.Sprintf(format, args...))
}

// ReportErr prints err classified by severity (warnings under the lenient
// policy keep running, everything else is an error).
func ReportErr(err error) {
	kind := Err
	if IsWarning(err) {
		kind = Warning
	}
	Report(kind, "%s", err.Error())
}
