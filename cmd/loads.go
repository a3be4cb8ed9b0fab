package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

var (
	// Unfactored load effects
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64
	loadSDS        float64

	// Options
	showAll     bool
	gravityOnly bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Combine load effects using SNI 1727:2020 / SNI 1726:2019 load combinations",
	Long: `Calculate the factored effect (qu, Mu or Vu) from unfactored effects of
each load type using SNI 1727:2020 strength design combinations, with the
seismic rows of SNI 1726:2019 (vertical effect Ev = 0.2·SDS·D).

The unit is whatever you supply (kN/m, kN-m, kN); all inputs must share it.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Horizontal earthquake load (Eh = ρ·QE)
  R  - Rain load

The beam designer uses 1.2D + 1.6L only; this command shows whether another
combination would govern.

Examples:
  # Gravity line loads (dead + live)
  gocivil loads --dead 12 --live 5

  # With wind load
  gocivil loads --dead 50 --live 30 --wind 20

  # Seismic rows with SDS = 0.8
  gocivil loads --dead 50 --live 30 --earthquake 25 --sds 0.8

  # Show all combinations
  gocivil loads --dead 50 --live 30 --all`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Effect of dead load")
	loadsCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Effect of live load")
	loadsCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Effect of roof live load")
	loadsCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Effect of wind load")
	loadsCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Effect of earthquake load")
	loadsCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Effect of rain load")
	loadsCmd.Flags().Float64Var(&loadSDS, "sds", 0, "Design spectral acceleration SDS for the vertical seismic effect")

	loadsCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) error {
	loads := sni.Loads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
		SDS:        loadSDS,
	}

	if loads == (sni.Loads{SDS: loadSDS}) {
		return fmt.Errorf("provide at least one unfactored load effect, see 'gocivil loads --help'")
	}

	combinations := sni.LoadCombinations
	if gravityOnly {
		combinations = sni.GravityCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("       SNI 1727:2020 / SNI 1726:2019 LOAD COMBINATIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, l := range []struct {
		label string
		v     float64
	}{
		{"Dead Load (D)", loads.Dead},
		{"Live Load (L)", loads.Live},
		{"Roof Live Load (Lr)", loads.Roof},
		{"Wind Load (W)", loads.Wind},
		{"Earthquake Load (Eh)", loads.Earthquake},
		{"Rain Load (R)", loads.Rain},
		{"SDS", loads.SDS},
	} {
		if l.v != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", l.label, l.v)
		}
	}
	w.Flush()
	fmt.Println()

	maxU, governing := sni.Governing(loads, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tClause\tU\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\t─\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f%s\n", combo.ID, combo.Expression, combo.Clause, combo.Factored(loads), marker)
		}
		w.Flush()
		fmt.Println()
	}

	design := sni.GravityCombination.Factored(sni.Loads{Dead: loads.Dead, Live: loads.Live})

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s, %s)\n", governing.ID, governing.Expression, governing.Clause)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED EFFECT (U) = %.2f  \n", maxU)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	fmt.Printf("  Beam design combination 1.2D + 1.6L: %.2f\n", design)
	if design > 0 && maxU > design {
		fmt.Printf("  ! %s exceeds the gravity design value by %.1f%%\n", governing.Expression, (maxU/design-1)*100)
	}
	fmt.Println()
	return nil
}
