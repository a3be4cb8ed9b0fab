package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/batch"
	"github.com/alexiusacademia/gocivil/internal/engine"
)

var (
	batchOutput  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <input.xlsx|input.json>",
	Short: "Design many beams and columns from a spreadsheet or JSON file",
	Long: `Read one design request per spreadsheet row (or per element of a JSON
array), design them concurrently and write a results workbook.

Spreadsheet headers (any order, case-insensitive):
  ` + strings.Join(batch.Columns, ", ") + `

Rows that fail validation are kept in the results with status "error".

Examples:
  gocivil batch beams.xlsx -o results.xlsx
  gocivil batch requests.json -o results.xlsx --workers 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Results workbook")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", cfg.Batch.Workers, "Concurrent designs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	var items []batch.Item
	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".json":
		items, err = batch.ReadJSON(in)
	default:
		items, err = batch.ReadXLSX(in)
	}
	if err != nil {
		return err
	}

	runner := &batch.Runner{Engine: engine.New(logger), Workers: batchWorkers, Log: logger}
	out, err := runner.Run(cmd.Context(), items)
	if err != nil {
		return err
	}

	f, err := os.Create(batchOutput)
	if err != nil {
		return err
	}
	if err := batch.WriteXLSX(f, out); err != nil {
		f.Close()
		return fmt.Errorf("write results: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
			fmt.Printf("  row %d (%s): %v\n", o.Row, o.Name, o.Err)
		}
	}
	fmt.Printf("Designed %d of %d elements, results written to: %s\n", len(out)-failed, len(out), batchOutput)
	return nil
}
