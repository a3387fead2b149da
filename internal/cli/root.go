// Package cli implements the bagbom command line: an interactive
// estimation form plus small inspection commands for the job-number
// sequence and the equipment catalog.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var envFile string

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
)

var rootCmd = &cobra.Command{
	Use:   "bagbom",
	Short: "Raw material estimator for paper bag print jobs",
	Long: `bagbom estimates raw material quantities for a paper bag print job
and produces a filled-in bill-of-material workbook.

Paths are taken from the environment (optionally via an env file):
  BAGBOM_CATALOG_PATH   equipment size table (CSV or XLSX)
  BAGBOM_TEMPLATE_PATH  BOM workbook template
  BAGBOM_SAVE_DIR       directory for generated BOMs
  BAGBOM_BACKUP_DIR     backup directory, also the job-number record`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "config", "", "env file to load before resolving paths")
}
