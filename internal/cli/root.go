// Package cli implements the stargen CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/keldric/stargen/internal/stargen"
	"github.com/spf13/cobra"
)

var (
	tuningPath string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "stargen",
	Short: "Random star system generator",
	Long:  "Generates complete star systems: stars, companions, orbit ladders, worlds, and moons. Seedable and tunable, JSON in, JSON out.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&tuningPath, "tuning", "t", "", "Tuning file overriding the built-in tables (default: $STARGEN_TUNING_FILE)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getTuningPath() string {
	if tuningPath != "" {
		return tuningPath
	}
	return os.Getenv("STARGEN_TUNING_FILE")
}

// loadTables returns the default tables, or the tuned set when a
// tuning file is configured.
func loadTables() (*stargen.TableSet, error) {
	path := getTuningPath()
	if path == "" {
		return stargen.DefaultTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}

	var cfg stargen.TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse tuning file: %w", err)
	}

	return stargen.BuildTablesFromConfig(cfg)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
