package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/openlsr/openlsr/cmd"
	"github.com/openlsr/openlsr/internal/brand"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "start":
		startFlags := flag.NewFlagSet("start", flag.ExitOnError)
		configFile := startFlags.String("config", brand.DefaultConfigPath(), "Configuration file")
		startFlags.StringVar(configFile, "c", brand.DefaultConfigPath(), "Configuration file (short)")
		metricsAddr := startFlags.String("metrics-addr", brand.DefaultMetricsAddr, "Metrics listen address")
		jsonLog := startFlags.Bool("json-log", false, "Log in JSON format")
		debug := startFlags.Bool("debug", false, "Enable debug logging")
		startFlags.Parse(os.Args[2:])

		err = cmd.RunStart(cmd.StartOptions{
			ConfigFile:  *configFile,
			MetricsAddr: *metricsAddr,
			JSONLog:     *jsonLog,
			Debug:       *debug,
		})

	case "check":
		checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
		verbose := checkFlags.Bool("v", false, "Verbose output")
		checkFlags.Parse(os.Args[2:])
		err = cmd.RunCheck(checkFlags.Arg(0), *verbose)

	case "show":
		showFlags := flag.NewFlagSet("show", flag.ExitOnError)
		format := showFlags.String("format", "json", "Output format (json or hcl)")
		showFlags.Parse(os.Args[2:])
		err = cmd.RunShow(showFlags.Arg(0), *format)

	case "diff":
		diffFlags := flag.NewFlagSet("diff", flag.ExitOnError)
		diffFlags.Parse(os.Args[2:])
		err = cmd.RunDiff(diffFlags.Arg(0))

	case "version", "-version", "--version":
		fmt.Printf("%s %s\n", brand.BinaryName, version)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "%s - %s\n\n", brand.Name, brand.Description)
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", brand.BinaryName)
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  start    Validate the configuration and run the daemon\n")
	fmt.Fprintf(os.Stderr, "  check    Validate a configuration file\n")
	fmt.Fprintf(os.Stderr, "  show     Print the validated running configuration\n")
	fmt.Fprintf(os.Stderr, "  diff     Show defaults injected by validation\n")
	fmt.Fprintf(os.Stderr, "  version  Print the version\n")
}
