package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rugvedmhatre/Vector-Simulator/config"
	"github.com/rugvedmhatre/Vector-Simulator/inspector"
	"github.com/rugvedmhatre/Vector-Simulator/loader"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		iodir       = flag.String("iodir", ".", "Directory containing Code.asm, SDMEM.txt, VDMEM.txt")
		configPath  = flag.String("config", "", "Path to a TOML config file (default: platform config dir)")
		tuiMode     = flag.Bool("tui", false, "Step through the program in a terminal inspector")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("Vector Simulator %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecsim: %v\n", err)
		os.Exit(1)
	}

	policy, err := cfg.Policy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecsim: %v\n", err)
		os.Exit(1)
	}

	state, loadResults, err := loader.Load(*iodir, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecsim: %v\n", err)
		os.Exit(1)
	}
	reportResults("loaded", loadResults)

	runFailed := false
	if *tuiMode {
		insp := inspector.New(state)
		if err := insp.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "vecsim: inspector: %v\n", err)
			os.Exit(1)
		}
	} else {
		runErr := state.Run(func(diag error) {
			fmt.Fprintf(os.Stderr, "vecsim: %v\n", diag)
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "vecsim: %v\n", runErr)
			runFailed = true
		}
	}

	dumpResults := loader.Dump(*iodir, state, cfg.Display.ColumnWidth)
	reportResults("dumped", dumpResults)

	if runFailed || !loader.AllFound(loadResults) || !loader.AllFound(dumpResults) {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func reportResults(verb string, results []loader.Result) {
	for _, r := range results {
		if r.Found {
			fmt.Printf("%s: %s\n", verb, r.Path)
		} else {
			fmt.Fprintf(os.Stderr, "%s: ERROR: couldn't access %s: %v\n", verb, r.Path, r.Err)
		}
	}
}

func printHelp() {
	fmt.Printf(`Vector Simulator %s

Usage: vecsim [options]

Options:
  -help         Show this help message
  -version      Show version information
  -iodir DIR    Directory containing Code.asm, SDMEM.txt, VDMEM.txt (default: ".")
  -config PATH  Path to a TOML config file (default: platform config dir)
  -tui          Step through the program in a terminal inspector

Examples:
  # Run a program to completion and dump SRF/VRF/VM/VL/SDMEMOP/VDMEMOP
  vecsim -iodir ./testcases/strided-load

  # Step through a program one instruction at a time
  vecsim -iodir ./testcases/strided-load -tui
`, Version)
}
