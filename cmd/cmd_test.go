package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestBeamDesignCommand(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "b1.md")
	svg := filepath.Join(dir, "b1.svg")

	require.NoError(t, run(t, "beam", "design", "--name", "B1", "--span", "5",
		"--support", "simply-supported", "--dead", "10", "--live", "5",
		"--diagram", "--output", svg, "--report", md))

	data, err := os.ReadFile(md)
	require.NoError(t, err)
	assert.Contains(t, string(data), "200 x 350 mm")
	_, err = os.Stat(svg)
	assert.NoError(t, err)
}

func TestBeamDesignCommand_Invalid(t *testing.T) {
	assert.Error(t, run(t, "beam", "design", "--span", "5", "--concrete", "K-999",
		"--output", "", "--report", "", "--diagram=false"))
}

func TestColumnDesignCommand(t *testing.T) {
	assert.NoError(t, run(t, "column", "design", "--grid-x", "5", "--floors", "3", "--json"))
	assert.Error(t, run(t, "column", "design", "--grid-x", "5", "--axial-factor", "0.9", "--json"))
}

func TestLoadsCommand(t *testing.T) {
	assert.NoError(t, run(t, "loads", "--dead", "10", "--live", "5", "--all"))
	assert.NoError(t, run(t, "loads", "--dead", "10", "--earthquake", "4", "--sds", "0.8"))
}

func TestTablesCommand(t *testing.T) {
	assert.NoError(t, run(t, "tables"))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{}, nonEmpty([]string{""}))
	assert.Equal(t, []string{"tile-mortar"}, nonEmpty([]string{" tile-mortar ", ""}))
}

func TestFlagHelpListsTableKeys(t *testing.T) {
	usage := beamDesignCmd.Flags().Lookup("steel").Usage
	assert.Equal(t, "Steel grade: BjTP-280, BjTS-420", usage)
	assert.Contains(t, beamDesignCmd.Flags().Lookup("live-class").Usage, "heavy-storage")
	assert.Contains(t, columnDesignCmd.Flags().Lookup("concrete").Usage, "K-175, K-200")
}
