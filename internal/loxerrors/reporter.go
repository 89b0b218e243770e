package loxerrors

import (
	"errors"
	"fmt"
	"io"
)

// ErrReporter is the diagnostic sink shared by the scanner and the parser.
//
// It remembers whether any error was reported since the last Reset, so that
// the host can turn static errors into a process exit status.
type ErrReporter interface {
	// Report prints a diagnostic for the given line and location context.
	Report(line int, where string, message string)
	// ReportError prints err, which is usually a *ScannerError or a *ParserError.
	// Joined errors are reported one by one.
	ReportError(err error)
	HadError() bool
	Reset()
}

// Diagnostic is an error that knows its source line and location context.
// *ScannerError and *ParserError implement it.
type Diagnostic interface {
	error
	Line() int
	Where() string
	Message() string
}

type errReporter struct {
	w        io.Writer
	hadError bool
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// Report implements ErrReporter.
func (e *errReporter) Report(line int, where string, message string) {
	DefaultReport(e.w, line, where, message)
	e.hadError = true
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range joined.Unwrap() {
			e.ReportError(err)
		}
		return
	}

	var d Diagnostic
	if errors.As(err, &d) {
		e.Report(d.Line(), d.Where(), d.Message())
		return
	}

	DefaultReportError(e.w, err)
	e.hadError = true
}

// HadError implements ErrReporter.
func (e *errReporter) HadError() bool {
	return e.hadError
}

// Reset implements ErrReporter.
func (e *errReporter) Reset() {
	e.hadError = false
}

// DefaultReport is the default implementation of ErrReporter.Report.
func DefaultReport(w io.Writer, line int, where string, message string) {
	fmt.Fprintln(w, formatDiagnostic(line, where, message))
}

func formatDiagnostic(line int, where string, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

// IsStatic reports whether err is a scan or parse error, as opposed to an
// internal or I/O failure.
func IsStatic(err error) bool {
	var se *ScannerError
	var pe *ParserError
	return errors.As(err, &se) || errors.As(err, &pe)
}

var (
	_ ErrReporter = (*errReporter)(nil)
	_ Diagnostic  = (*ScannerError)(nil)
	_ Diagnostic  = (*ParserError)(nil)
)
