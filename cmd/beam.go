package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Rectangular beam preliminary design",
	Long: `Size and reinforce rectangular concrete beams based on
SNI 2847:2019 provisions.

Subcommands:
  design   - Dimension the section and design flexure and shear steel

All calculations use the 1.2D + 1.6L gravity combination.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
