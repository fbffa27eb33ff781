package cmd

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/openlsr/openlsr/internal/config"
)

// RunDiff compares the on-disk document against the validated running
// configuration, surfacing every default validation injects (the wildcard
// default area, subsystem timer defaults, the BGP translation auto-fill).
func RunDiff(configFile string) error {
	cfg, doc, err := loadAndValidate(configFile)
	if err != nil {
		return err
	}

	onDisk, err := config.GenerateJSON(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize on-disk config: %w", err)
	}
	running, err := cfg.RunningConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize running config: %w", err)
	}

	if string(onDisk) == string(running) {
		fmt.Println("No defaults injected; running config matches the document.")
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(onDisk)),
		B:        difflib.SplitLines(string(running)),
		FromFile: "document",
		ToFile:   "running",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
