package config

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := newError(KindOutOfRange, "spark_config.hello_time_s", "hello_time_s (%d) should be > 0", -1)

	if err.Error() != "spark_config.hello_time_s: hello_time_s (-1) should be > 0" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	// document-wide errors carry no field prefix
	bare := newError(KindParse, "", "could not decode")
	if bare.Error() != "could not decode" {
		t.Errorf("unexpected message: %q", bare.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindDuplicateArea, "", "duplicate area config: area_id spine")

	if !IsKind(err, KindDuplicateArea) {
		t.Error("IsKind must match the error's kind")
	}
	if IsKind(err, KindOutOfRange) {
		t.Error("IsKind must not match a different kind")
	}
	if IsKind(nil, KindDuplicateArea) {
		t.Error("IsKind(nil) must be false")
	}
	if IsKind(errors.New("plain"), KindDuplicateArea) {
		t.Error("IsKind must be false for non-config errors")
	}

	// wrapped errors still classify
	wrapped := fmt.Errorf("loading config: %w", err)
	if !IsKind(wrapped, KindDuplicateArea) {
		t.Error("IsKind must unwrap")
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindParse:            "parse",
		KindDuplicateArea:    "duplicate_area",
		KindEmptyAreaRule:    "empty_area_rule",
		KindPatternCompile:   "pattern_compile",
		KindMalformedAddress: "malformed_address",
		KindOutOfRange:       "out_of_range",
		KindInvalidArgument:  "invalid_argument",
		KindIncompatibleMode: "incompatible_mode",
		ErrorKind(99):        "unknown",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("%d.String() = %s, want %s", kind, kind.String(), want)
		}
	}
}
