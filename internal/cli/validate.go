package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/keldric/stargen/internal/stargen"
	"github.com/spf13/cobra"
)

func init() {
	tables := &cobra.Command{
		Use:   "tables",
		Short: "Inspect and validate the generation tables",
	}

	tables.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the tuning file and the resulting table set",
		Run:   runTablesValidate,
	})

	RootCmd.AddCommand(tables)
}

func runTablesValidate(cmd *cobra.Command, args []string) {
	tables, err := loadTables()
	if err != nil {
		var verr *stargen.ValidationError
		if !errors.As(err, &verr) {
			exitErr("load tables", err)
		}
		fmt.Println("invalid:")
		for _, issue := range verr.Issues {
			fmt.Printf("  - %s\n", issue)
		}
		os.Exit(1)
	}

	if err := stargen.ValidateTableSet(tables); err != nil {
		exitErr("validate tables", err)
	}

	if path := getTuningPath(); path != "" {
		fmt.Printf("ok: %s\n", path)
	} else {
		fmt.Println("ok: built-in tables")
	}
}
