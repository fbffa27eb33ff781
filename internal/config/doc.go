// Package config handles configuration parsing, validation, and the
// immutable runtime configuration held for the daemon's lifetime.
//
// # Overview
//
// The daemon reads a declarative configuration document (HCL, JSON, or YAML)
// once at startup. This package provides:
//   - document decoding into the typed [Config] tree
//   - cross-field validation over all subsystems, fail-fast on the first
//     violated invariant
//   - compiled area pattern matchers for classifying discovered neighbors
//     and interfaces
//   - re-serialization of the validated, defaulted document for diagnostics
//
// # Key Types
//
//   - [Config]: the raw document tree, one struct per subsystem block
//   - [ValidatedConfig]: the immutable validation result with read-only
//     accessors, safe for lock-free concurrent reads
//   - [AreaRegistry]: area_id to compiled neighbor/interface matchers
//   - [PatternSet]: compile-once, anchored, case-insensitive matcher set
//   - [ConfigError]: typed validation error with an [ErrorKind]
//
// # Validation
//
// [Validate] runs a fixed sequence of checks (areas, forwarding modes,
// single-area features, flood rate, discovery timers, monitors, prefix
// allocation, BGP, watchdog) and returns on the first violation. A failed
// validation is terminal for process startup: the daemon must not run with
// an invalid configuration, and there is no partial-success state.
//
// # Example
//
//	doc, err := config.LoadFile(path)
//	if err != nil {
//		return err
//	}
//	cfg, err := config.Validate(doc)
//	if err != nil {
//		return err
//	}
//	if cfg.MatchesArea("spine", "eth0", config.MatchInterface) {
//		...
//	}
package config
