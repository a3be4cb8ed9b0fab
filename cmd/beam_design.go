package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/diagram"
	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

var (
	// Geometry
	beamName       string
	beamSpan       float64
	beamFloors     int
	beamElement    string
	beamSupport    string
	beamWidthRatio float64
	beamCover      float64
	beamWallHeight float64

	// Materials
	beamConcrete string
	beamSteel    string
	beamSeismic  string

	// Loads
	beamDead      float64
	beamLive      float64
	beamWallClass string
	beamFinishes  []string
	beamLiveClass string
	beamTribWidth float64

	// Bars
	beamMainBar    int
	beamStirrupBar int

	// Output options
	beamShowDiagram bool
	beamExportFile  string
	beamReportFile  string
	beamJSON        bool
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a rectangular beam from its span and loads",
	Long: `Dimension a rectangular beam from its span and support condition,
then design the bottom bars and stirrups for the factored gravity load.

The design follows SNI 2847:2019 provisions:
  - Table 9.3.1.1: Minimum depth for beams
  - Section 9.6.1.2: Minimum flexural reinforcement
  - Section 22.5.5.1: Concrete shear strength
  - Section 18.4.2.4: Stirrup spacing in seismic frames

Loads are either direct line loads (--dead, --live) or table classes
(--wall-class, --finish, --live-class) spread over --trib-width.

Examples:
  # Simply supported 5 m beam with direct loads
  gocivil beam design --span 5 --support simply-supported --dead 10 --live 5

  # Main beam of a two storey house with wall and office live load
  gocivil beam design -L 6 --element main-beam --floors 2 --wall-height 3 \
      --live-class office --trib-width 3 --seismic high --diagram

  # Export a sketch and a PDF report
  gocivil beam design -L 4 --support cantilever --dead 6 --live 2 -o b1.png --report b1.pdf`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)
	f := beamDesignCmd.Flags()

	// Geometry flags
	f.StringVarP(&beamName, "name", "n", "", "Element label")
	f.Float64VarP(&beamSpan, "span", "L", 0, "Clear span (m) [required]")
	f.IntVar(&beamFloors, "floors", 1, "Number of floors carried")
	f.StringVarP(&beamElement, "element", "e", "", "Element use: main-beam, secondary-beam, ring-beam, sloof")
	f.StringVarP(&beamSupport, "support", "s", "", "Support: simply-supported, one-end-continuous, both-ends-continuous, cantilever")
	f.Float64Var(&beamWidthRatio, "width-ratio", 0, "b/h ratio (default from element use, 0.5)")
	f.Float64VarP(&beamCover, "cover", "c", engine.DefaultCover, "Clear cover to stirrup (mm)")
	f.Float64Var(&beamWallHeight, "wall-height", 0, "Height of wall carried by the beam (m)")

	// Material flags
	f.StringVar(&beamConcrete, "concrete", cfg.ConcreteGrade, "Concrete grade: "+choices(sni.GradeKeys(sni.ConcreteGrades)))
	f.StringVar(&beamSteel, "steel", cfg.SteelGrade, "Steel grade: "+choices(sni.GradeKeys(sni.SteelGrades)))
	f.StringVar(&beamSeismic, "seismic", cfg.Seismic, "Seismic category: low, moderate, high")

	// Loading flags
	f.Float64VarP(&beamDead, "dead", "d", 0, "Superimposed dead load per floor (kN/m)")
	f.Float64VarP(&beamLive, "live", "l", 0, "Live load per floor (kN/m)")
	f.StringVar(&beamWallClass, "wall-class", "", "Wall class: "+choices(sni.LoadClassKeys(sni.WallLoadClasses)))
	f.StringSliceVar(&beamFinishes, "finish", nil, "Floor finish classes: "+choices(sni.LoadClassKeys(sni.FinishLoadClasses)))
	f.StringVar(&beamLiveClass, "live-class", "", "Occupancy live load class: "+choices(sni.LoadClassKeys(sni.LiveLoadClasses)))
	f.Float64Var(&beamTribWidth, "trib-width", 0, "Tributary width for area loads (m, default 1)")

	// Bar flags
	f.IntVar(&beamMainBar, "bar", 0, "Main bar diameter (mm, default by span)")
	f.IntVar(&beamStirrupBar, "stirrup", engine.DefaultStirrupDiameter, "Stirrup bar diameter (mm)")

	beamDesignCmd.MarkFlagRequired("span")

	// Output options
	f.BoolVar(&beamShowDiagram, "diagram", false, "Show ASCII cross-section")
	f.StringVarP(&beamExportFile, "output", "o", "", "Export cross-section to file (png, svg, pdf)")
	f.StringVar(&beamReportFile, "report", "", "Write a design report (md, html, pdf)")
	f.BoolVar(&beamJSON, "json", false, "Print the result as JSON")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	req := engine.Request{
		Name:       beamName,
		Material:   engine.MaterialSpec{ConcreteGrade: beamConcrete, SteelGrade: beamSteel},
		Geometry:   engine.Geometry{Span: beamSpan, FloorCount: beamFloors, WallHeight: beamWallHeight, Cover: beamCover},
		Element:    sni.ElementUse(beamElement),
		Support:    sni.SupportCondition(beamSupport),
		WidthRatio: beamWidthRatio,
		Seismic:    sni.SeismicCategory(beamSeismic),
		Loads: engine.LoadInputs{
			DeadLoad:       beamDead,
			LiveLoad:       beamLive,
			WallClass:      beamWallClass,
			LiveClass:      beamLiveClass,
			TributaryWidth: beamTribWidth,
		},
		Bars: engine.Bars{MainDiameter: beamMainBar, StirrupDiameter: beamStirrupBar},
	}
	// An explicit empty --finish="" means no finish at all.
	if cmd.Flags().Changed("finish") {
		req.Loads.FinishClasses = nonEmpty(beamFinishes)
	}
	if beamElement == "" && beamSupport == "" {
		req.Support = sni.SimplySupported
	}

	res, err := engine.New(logger).Design(req)
	if err != nil {
		return err
	}
	if res.Beam == nil {
		return fmt.Errorf("element %q is a column, use 'gocivil column design'", beamElement)
	}

	if beamJSON {
		return printJSON(res)
	}
	printBeamResult(res.Beam)

	sketch := diagram.BeamSketch(beamName, res.Beam)
	if beamShowDiagram {
		fmt.Println(diagram.DrawASCIISection(sketch))
	}
	if beamExportFile != "" {
		if err := diagram.ExportSection(sketch, beamExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", beamExportFile)
	}
	return writeReport(res, beamReportFile)
}

func printBeamResult(b *engine.BeamResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RECTANGULAR BEAM DESIGN - SNI 2847:2019")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", b.Span)
	fmt.Fprintf(w, "  Support:\t%s (h ≥ L/%.1f)\n", b.Support, b.Divisor)
	fmt.Fprintf(w, "  Seismic category:\t%s\n", b.Seismic)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", b.Fc)
	fmt.Fprintf(w, "  fy:\t%.0f MPa\n", b.Fy)
	fmt.Fprintf(w, "  Cover:\t%.0f mm\n", b.Cover)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  h_min = L/%.1f:\t%.1f mm\n", b.Divisor, b.HeightMin)
	fmt.Fprintf(w, "  Beam Depth (h):\t%d mm\n", b.Height)
	fmt.Fprintf(w, "  Beam Width (b = %.2fh):\t%d mm\n", b.WidthRatio, b.Width)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f mm\n", b.EffectiveDepth)
	w.Flush()
	fmt.Println()

	fmt.Println("LOADS AND FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Self weight:\t%.2f kN/m\n", b.SelfWeight)
	fmt.Fprintf(w, "  Dead load (D):\t%.2f kN/m\n", b.DeadLoad)
	fmt.Fprintf(w, "  Live load (L):\t%.2f kN/m\n", b.LiveLoad)
	fmt.Fprintf(w, "  qu = 1.2D + 1.6L:\t%.2f kN/m\n", b.FactoredLoad)
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%.2f kN-m\n", b.FactoredMoment)
	fmt.Fprintf(w, "  Factored Shear (Vu):\t%.2f kN\n", b.FactoredShear)
	w.Flush()
	fmt.Println()

	fmt.Println("FLEXURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ρ_min:\t%.6f\n", b.RhoMin)
	fmt.Fprintf(w, "  ρ_max:\t%.6f\n", b.RhoMax)
	fmt.Fprintf(w, "  ρ:\t%.6f\n", b.Rho)
	fmt.Fprintf(w, "  As,required:\t%.2f mm²\n", b.RequiredSteelArea)
	fmt.Fprintf(w, "  As,provided:\t%.2f mm²\n", b.ProvidedSteelArea)
	fmt.Fprintf(w, "  φMn:\t%.2f kN-m\n", b.PhiMn)
	w.Flush()
	fmt.Println()

	fmt.Println("SHEAR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vc:\t%.2f kN\n", b.ConcreteShear)
	fmt.Fprintf(w, "  Spacing limit:\t%d mm\n", b.SpacingCeiling)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("SECTION %d × %d mm", b.Width, b.Height), []string{
		fmt.Sprintf("Bottom bars : %d D%d", b.MainBarCount, b.MainBarDiameter),
		fmt.Sprintf("Top bars    : %d D%d", b.TopBarCount, b.MainBarDiameter),
		fmt.Sprintf("Stirrups    : φ%d - %d mm", b.StirrupDiameter, b.StirrupSpacing),
	}))
	fmt.Println()
	if b.PhiMn >= b.FactoredMoment {
		fmt.Printf("  φMn = %.2f kN-m ≥ Mu = %.2f kN-m ✓\n", b.PhiMn, b.FactoredMoment)
	}
	for _, n := range b.Notes {
		fmt.Printf("  ! %s\n", n)
	}
	fmt.Println()
}
