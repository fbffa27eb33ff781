package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/openlsr/openlsr/internal/brand"
	"github.com/openlsr/openlsr/internal/config"
)

// RunCheck validates the configuration file syntax and semantics.
func RunCheck(configFile string, verbose bool) error {
	if len(configFile) == 0 {
		return fmt.Errorf("usage: %s check [-v] <config-file>", brand.BinaryName)
	}

	cfg, _, err := loadAndValidate(configFile)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration valid!\n")
	if cfg.NodeName() != "" {
		fmt.Printf("Node: %s\n", cfg.NodeName())
	}
	fmt.Printf("Areas: %d\n", len(cfg.AreaIDs()))
	fmt.Printf("Forwarding: %s/%s\n", cfg.PrefixForwardingType(), cfg.PrefixForwardingAlgorithm())

	if verbose {
		fmt.Println()
		printSummary(cfg)
	}
	return nil
}

func printSummary(cfg *config.ValidatedConfig) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "AREA\tNEIGHBOR PATTERNS\tINTERFACE PATTERNS")
	for _, id := range cfg.AreaIDs() {
		area, _ := cfg.Areas().Area(id)
		fmt.Fprintf(w, "%s\t%s\t%s\n", id,
			patternsOrDash(area.NeighborPatterns()),
			patternsOrDash(area.InterfacePatterns()))
	}
	fmt.Fprintln(w)

	spark := cfg.Spark()
	fmt.Fprintln(w, "TIMER\tVALUE")
	fmt.Fprintf(w, "hello_time_s\t%d\n", spark.HelloTimeS)
	fmt.Fprintf(w, "fastinit_hello_time_ms\t%d\n", spark.FastinitHelloTimeMs)
	fmt.Fprintf(w, "keepalive_time_s\t%d\n", spark.KeepaliveTimeS)
	fmt.Fprintf(w, "hold_time_s\t%d\n", spark.HoldTimeS)
	fmt.Fprintf(w, "graceful_restart_time_s\t%d\n", spark.GracefulRestartTimeS)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FEATURE\tENABLED")
	fmt.Fprintf(w, "v4\t%v\n", cfg.IsV4Enabled())
	fmt.Fprintf(w, "ordered_fib_programming\t%v\n", cfg.IsOrderedFibProgrammingEnabled())
	fmt.Fprintf(w, "prefix_allocation\t%v\n", cfg.IsPrefixAllocationEnabled())
	fmt.Fprintf(w, "bgp_peering\t%v\n", cfg.IsBgpPeeringEnabled())
	fmt.Fprintf(w, "watchdog\t%v\n", cfg.IsWatchdogEnabled())
	w.Flush()

	if params, ok := cfg.PrefixAllocation(); ok {
		fmt.Printf("\nPrefix allocation: %s split into /%d\n",
			params.SeedNetwork, params.AllocatePrefixLen)
	}
}

func patternsOrDash(patterns []string) string {
	if len(patterns) == 0 {
		return "-"
	}
	return strings.Join(patterns, ", ")
}
