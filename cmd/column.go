package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/column"
	"github.com/alexiusacademia/gocivil/internal/diagram"
	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

var (
	colName         string
	colGridX        float64
	colGridY        float64
	colFloors       int
	colConcrete     string
	colSeismic      string
	colUnitLoad     float64
	colAxialFactor  float64
	colSeismicRatio bool
	colBar          int

	colShowDiagram bool
	colExportFile  string
	colReportFile  string
	colJSON        bool
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Square column preliminary sizing",
	Long: `Size square reinforced concrete columns from the tributary area
they carry.

Subcommands:
  design   - Size the section and longitudinal bars`,
}

var columnDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Size a square column from its tributary area",
	Long: `Estimate the axial load on an interior column from the grid spacing,
the number of floors and an area load, then size the gross section and
the longitudinal bars.

  Pu   = floors · gridX · gridY · q
  Ag   = Pu / (k · f'c)           k = 0.30 ... 0.45
  As   = ρ · Ag                   ρ = 1% (or the seismic category ratio)

Examples:
  # 5 m × 5 m grid, three floors
  gocivil column design --grid-x 5 --floors 3

  # 4 m × 6 m grid in a high seismic region with the seismic steel ratio
  gocivil column design -x 4 -y 6 --floors 2 --seismic high --seismic-ratio --diagram`,
	RunE: runColumnDesign,
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.AddCommand(columnDesignCmd)
	f := columnDesignCmd.Flags()

	f.StringVarP(&colName, "name", "n", "", "Element label")
	f.Float64VarP(&colGridX, "grid-x", "x", 0, "Grid spacing in x (m) [required]")
	f.Float64VarP(&colGridY, "grid-y", "y", 0, "Grid spacing in y (m, default grid-x)")
	f.IntVar(&colFloors, "floors", 1, "Number of floors carried")
	f.StringVar(&colConcrete, "concrete", cfg.ConcreteGrade, "Concrete grade: "+choices(sni.GradeKeys(sni.ConcreteGrades)))
	f.StringVar(&colSeismic, "seismic", "", "Seismic category: low, moderate, high")
	f.Float64VarP(&colUnitLoad, "unit-load", "q", column.DefaultUnitLoad, "Factored load per floor area (kN/m²)")
	f.Float64VarP(&colAxialFactor, "axial-factor", "k", column.DefaultAxialFactor, "Axial stress factor k (0.30 - 0.45)")
	f.BoolVar(&colSeismicRatio, "seismic-ratio", false, "Use the seismic category steel ratio instead of 1%")
	f.IntVar(&colBar, "bar", column.DefaultBarDiameter, "Longitudinal bar diameter (mm)")

	columnDesignCmd.MarkFlagRequired("grid-x")

	f.BoolVar(&colShowDiagram, "diagram", false, "Show ASCII cross-section")
	f.StringVarP(&colExportFile, "output", "o", "", "Export cross-section to file (png, svg, pdf)")
	f.StringVar(&colReportFile, "report", "", "Write a design report (md, html, pdf)")
	f.BoolVar(&colJSON, "json", false, "Print the result as JSON")
}

func runColumnDesign(cmd *cobra.Command, args []string) error {
	req := engine.Request{
		Name:     colName,
		Material: engine.MaterialSpec{ConcreteGrade: colConcrete, SteelGrade: cfg.SteelGrade},
		Geometry: engine.Geometry{Span: colGridX, FloorCount: colFloors},
		Element:  sni.Column,
		Seismic:  sni.SeismicCategory(colSeismic),
		Bars:     engine.Bars{MainDiameter: colBar},
		Column: engine.ColumnInputs{
			GridX:             colGridX,
			GridY:             colGridY,
			UnitLoad:          colUnitLoad,
			AxialFactor:       colAxialFactor,
			SeismicSteelRatio: colSeismicRatio,
		},
	}

	res, err := engine.New(logger).Design(req)
	if err != nil {
		return err
	}

	if colJSON {
		return printJSON(res)
	}
	printColumnResult(res.Column, colAxialFactor)

	sketch := diagram.ColumnSketch(colName, res.Column, engine.DefaultCover, engine.DefaultStirrupDiameter)
	if colShowDiagram {
		fmt.Println(diagram.DrawASCIISection(sketch))
	}
	if colExportFile != "" {
		if err := diagram.ExportSection(sketch, colExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", colExportFile)
	}
	return writeReport(res, colReportFile)
}

func printColumnResult(c *engine.ColumnResult, k float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SQUARE COLUMN PRELIMINARY SIZING - SNI 2847:2019")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Floors:\t%d\n", c.Floors)
	fmt.Fprintf(w, "  Tributary area:\t%.2f m²\n", c.TributaryArea)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", c.Fc)
	fmt.Fprintf(w, "  k:\t%.2f\n", k)
	w.Flush()
	fmt.Println()

	fmt.Println("SIZING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial load (Pu):\t%.1f kN\n", c.AxialLoad)
	fmt.Fprintf(w, "  Ag,required:\t%.0f mm²\n", c.GrossAreaRequired)
	fmt.Fprintf(w, "  As:\t%.0f mm²\n", c.SteelArea)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("COLUMN %d × %d mm", c.SideLength, c.SideLength), []string{
		fmt.Sprintf("Longitudinal : %d D%d", c.BarCount, c.BarDiameter),
	}))
	fmt.Println()
}
