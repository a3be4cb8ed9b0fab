package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/sni"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List material grades, load classes and design tables",
	Long: `Print the reference tables that request keys are looked up in:
concrete and steel grades, live and dead load classes, support conditions,
element uses and seismic categories. Keys are case-insensitive.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		printGrades("CONCRETE GRADES (f'c, MPa):", sni.ConcreteGrades)
		printGrades("STEEL GRADES (fy, MPa):", sni.SteelGrades)
		printLoadClasses("LIVE LOADS (kN/m²):", sni.LiveLoadClasses)
		printLoadClasses("WALL LOADS (kN/m² per m height):", sni.WallLoadClasses)
		printLoadClasses("FINISH LOADS (kN/m²):", sni.FinishLoadClasses)

		fmt.Println("SUPPORT CONDITIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Key\th_min\tMu\tVu\tDescription\n")
		for _, s := range sni.SupportConditions() {
			fmt.Fprintf(w, "  %s\tL/%.1f\tqL²/%.0f\t%.3fqL\t%s\n", s.Condition, s.Divisor, s.MomentDivisor, s.ShearFactor, s.Description)
		}
		w.Flush()
		fmt.Println()

		fmt.Println("ELEMENT USES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Key\th_min\tb/h\tDescription\n")
		for _, e := range sni.ElementUses() {
			if e.Divisor == 0 {
				fmt.Fprintf(w, "  %s\t-\t-\t%s\n", e.Use, e.Description)
				continue
			}
			fmt.Fprintf(w, "  %s\tL/%.0f\t%.1f\t%s\n", e.Use, e.Divisor, e.WidthRatio, e.Description)
		}
		w.Flush()
		fmt.Println()

		fmt.Println("SEISMIC CATEGORIES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Key\tρ column\ts_max\tDescription\n")
		for _, s := range sni.SeismicCategories() {
			fmt.Fprintf(w, "  %s\t%.1f%%\t%.0f mm\t%s\n", s.Category, s.RhoColumn*100, s.MaxStirrupSpacing, s.Description)
		}
		w.Flush()
		fmt.Println()

		fmt.Printf("  Main bars (mm):    %v\n", sni.MainBarDiameters)
		fmt.Printf("  Stirrup bars (mm): %v\n", sni.StirrupBarDiameters)
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func printGrades(title string, grades []sni.Grade) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, g := range grades {
		fmt.Fprintf(w, "  %s\t%.1f\t%s\n", g.Key, g.Strength, g.Description)
	}
	w.Flush()
	fmt.Println()
}

func printLoadClasses(title string, classes []sni.LoadClass) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range classes {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\n", c.Key, c.Value, c.Description)
	}
	w.Flush()
	fmt.Println()
}
