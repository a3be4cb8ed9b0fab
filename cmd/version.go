package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocivil",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocivil v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Preliminary Design Tool")
		fmt.Printf("Based on %s\n", version.Codes)
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
