package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocivil/internal/config"
	"github.com/alexiusacademia/gocivil/internal/logging"
	"github.com/alexiusacademia/gocivil/internal/version"
)

var (
	cfg      = config.Load()
	logger   = zap.NewNop()
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gocivil",
	Short: "Reinforced concrete beam and column preliminary design",
	Long: `gocivil - Go Reinforced Concrete Preliminary Designer

A CLI tool for the preliminary sizing of reinforced concrete beams
and columns in low-rise buildings, based on SNI 2847:2019 and
SNI 1727:2020.

This tool helps structural engineers perform:
  - Beam dimensioning from span/depth ratios
  - Gravity load takedown and the 1.2D + 1.6L combination
  - Flexural and shear reinforcement design
  - Column sizing from tributary area
  - Batch design from spreadsheets

Results are preliminary and must be checked by a qualified engineer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocivil v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Preliminary Designer             ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the preliminary design of reinforced concrete")
		fmt.Println("  beams and columns based on SNI 2847:2019.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam sizing from span/depth ratios and element use")
		fmt.Println("    • Factored loads using SNI 1727:2020 load combinations")
		fmt.Println("    • Flexure and stirrup design with seismic spacing limits")
		fmt.Println("    • Column sizing from tributary area")
		fmt.Println("    • Section sketches, reports and spreadsheet batches")
		fmt.Println()
		fmt.Println("  Use 'gocivil --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}
