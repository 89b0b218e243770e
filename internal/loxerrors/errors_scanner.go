package loxerrors

import (
	"errors"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
)

type ScannerError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) *ScannerError {
	return &ScannerError{line, cause, details}
}

// Line is the 1-based source line the error was detected on.
func (s *ScannerError) Line() int {
	return s.line
}

// Where is always empty: scan errors carry no token context.
func (s *ScannerError) Where() string {
	return ""
}

// Message is the cause followed by the offending text, if any.
func (s *ScannerError) Message() string {
	if s.details == "" {
		return s.cause.Error()
	}
	return s.cause.Error() + " " + s.details
}

// Error implements error.
func (s *ScannerError) Error() string {
	return formatDiagnostic(s.line, s.Where(), s.Message())
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ interface{ Unwrap() error } = (*ScannerError)(nil)
