package config

import (
	"errors"
	"fmt"
)

// ErrorKind classifies configuration errors. Every validation failure maps to
// exactly one kind so callers can branch on the class of violation without
// parsing messages.
type ErrorKind int

const (
	// KindParse means the document could not be decoded into the typed tree.
	KindParse ErrorKind = iota
	// KindDuplicateArea means two areas share the same area_id.
	KindDuplicateArea
	// KindEmptyAreaRule means an area declares no neighbor and no interface patterns.
	KindEmptyAreaRule
	// KindPatternCompile means a user-supplied pattern failed to compile.
	KindPatternCompile
	// KindMalformedAddress means a prefix string could not be parsed.
	KindMalformedAddress
	// KindOutOfRange means a numeric field is outside its documented interval.
	KindOutOfRange
	// KindInvalidArgument means a structurally inconsistent field combination.
	KindInvalidArgument
	// KindIncompatibleMode means a feature conflicts with the configured topology
	// or with another selected mode.
	KindIncompatibleMode
)

// String returns the snake_case name of the kind, used as a metric label.
func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindDuplicateArea:
		return "duplicate_area"
	case KindEmptyAreaRule:
		return "empty_area_rule"
	case KindPatternCompile:
		return "pattern_compile"
	case KindMalformedAddress:
		return "malformed_address"
	case KindOutOfRange:
		return "out_of_range"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIncompatibleMode:
		return "incompatible_mode"
	default:
		return "unknown"
	}
}

// ConfigError is a configuration validation error. Field is the path of the
// offending field in the document, empty for document-wide violations.
type ConfigError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newError(kind ErrorKind, field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err is a ConfigError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Kind == kind
}
