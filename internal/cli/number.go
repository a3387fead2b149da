package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/printhaus/bagbom/internal/config"
	"github.com/printhaus/bagbom/internal/jobnumber"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Show the next job number without issuing it",
	Long: `Shows the job number the next estimate would receive, derived from
the latest workbook in the backup directory. The number is only
consumed when a BOM is actually saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		gen := jobnumber.Generator{Latest: jobnumber.DirStore{Dir: cfg.BackupDir}.Latest}
		number, err := gen.Next(time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), number)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(numberCmd)
}
