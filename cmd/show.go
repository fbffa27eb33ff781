package cmd

import (
	"fmt"

	"github.com/openlsr/openlsr/internal/brand"
)

// RunShow prints the validated running configuration, with injected
// defaults, in the requested format.
func RunShow(configFile, format string) error {
	if len(configFile) == 0 {
		return fmt.Errorf("usage: %s show [-format json|hcl] <config-file>", brand.BinaryName)
	}

	cfg, _, err := loadAndValidate(configFile)
	if err != nil {
		return err
	}

	switch format {
	case "", "json":
		data, err := cfg.RunningConfig()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "hcl":
		fmt.Print(string(cfg.RunningConfigHCL()))
	default:
		return fmt.Errorf("unknown format %q (use json or hcl)", format)
	}
	return nil
}
