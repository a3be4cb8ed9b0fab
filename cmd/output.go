package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/report"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeReport writes a report when filename is set; the extension picks the
// format.
func writeReport(res *engine.Result, filename string) error {
	if filename == "" {
		return nil
	}
	if err := report.Build(res).WriteFile(filename); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("Report written to: %s\n", filename)
	return nil
}

// nonEmpty drops blank entries but keeps an empty, non-nil slice.
func nonEmpty(list []string) []string {
	out := []string{}
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func choices(keys []string) string {
	return strings.Join(keys, ", ")
}
