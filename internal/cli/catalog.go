package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printhaus/bagbom/internal/config"
	"github.com/printhaus/bagbom/internal/importer"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load and display the equipment catalog",
	Long:  `Loads the equipment size table and prints the available cylinder circumferences and paper-roll widths. Useful as a sanity check after editing the reference file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		catalog, err := importer.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Cylinders (mm)"))
		for _, c := range catalog.Cylinders() {
			fmt.Fprintf(out, "  %g\n", c)
		}
		fmt.Fprintln(out, headerStyle.Render("Paper rolls (mm)"))
		for _, r := range catalog.RollWidths() {
			fmt.Fprintf(out, "  %g\n", r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
