package chromatics

import "fmt"

// ConfigError reports an invalid converter configuration: an unrecognized
// gamma or clip method, a non-positive bit depth, or singular phosphor
// chromaticities. It is fatal for the construction attempt; the
// configuration must be fixed by the caller.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid converter configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// FormatError reports a malformed input at a decode boundary, such as a bad
// hex color string. It rejects only the offending input and leaves all
// converter state untouched.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "malformed input: " + e.Reason
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
