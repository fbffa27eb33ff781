// Package cmd implements the daemon's command-line entry points.
package cmd

import (
	"errors"
	"fmt"

	"github.com/openlsr/openlsr/internal/config"
	"github.com/openlsr/openlsr/internal/metrics"
)

// loadAndValidate loads the document at path and runs full validation,
// recording the outcome in the metrics registry.
func loadAndValidate(path string) (*config.ValidatedConfig, *config.Config, error) {
	m := metrics.Get()

	doc, err := config.LoadFile(path)
	if err != nil {
		m.ConfigLoads.WithLabelValues("failure").Inc()
		recordFailure(err)
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg, err := config.Validate(doc)
	if err != nil {
		m.ConfigLoads.WithLabelValues("failure").Inc()
		recordFailure(err)
		return nil, nil, fmt.Errorf("configuration invalid: %w", err)
	}

	m.ConfigLoads.WithLabelValues("success").Inc()
	return cfg, doc, nil
}

func recordFailure(err error) {
	var ce *config.ConfigError
	if errors.As(err, &ce) {
		metrics.Get().ValidationFailures.WithLabelValues(ce.Kind.String()).Inc()
	}
}
