package diagram

import (
	"fmt"
	"math"
	"strings"
)

// DrawASCIISection creates an ASCII representation of a reinforced section
func DrawASCIISection(s SectionSketch) string {
	var sb strings.Builder

	// Terminal cells are roughly twice as tall as wide
	widthChars := 36
	heightChars := int(math.Round(float64(widthChars) * s.Height / s.Width / 2))
	if heightChars < 6 {
		heightChars = 6
	}
	if heightChars > 30 {
		heightChars = 30
		widthChars = int(math.Round(float64(heightChars) * 2 * s.Width / s.Height))
		if widthChars < 10 {
			widthChars = 10
		}
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}

	col := func(x float64) int {
		return clampInt(int(math.Round(x/s.Width*float64(widthChars))), 0, widthChars)
	}
	row := func(y float64) int {
		return clampInt(int(math.Round((s.Height-y)/s.Height*float64(heightChars))), 0, heightChars)
	}

	// Section outline
	box(grid, 0, 0, widthChars, heightChars, '┌', '┐', '└', '┘', '─', '│')

	// Stirrup outline
	in := s.Cover + s.StirrupDiameter/2
	l, r := col(in), col(s.Width-in)
	t, b := row(s.Height-in), row(in)
	if r-l >= 2 && b-t >= 2 {
		box(grid, l, t, r, b, '·', '·', '·', '·', '·', '·')
	}

	// Bars
	for _, layer := range s.Bars {
		for _, p := range layer.Positions {
			grid[row(p.Y)][col(p.X)] = '●'
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(s.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(s.Title)))))
	for i, line := range grid {
		sb.WriteString("  ")
		sb.WriteString(string(line))
		if i == heightChars/2 {
			sb.WriteString(fmt.Sprintf("  h = %.0f mm", s.Height))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  b = %.0f mm\n", s.Width))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ● = Longitudinal bar\n")
	sb.WriteString(fmt.Sprintf("  · = Stirrup φ%.0f", s.StirrupDiameter))
	if s.StirrupSpacing > 0 {
		sb.WriteString(fmt.Sprintf(" @ %.0f mm", s.StirrupSpacing))
	}
	sb.WriteString("\n")
	for i, layer := range s.Bars {
		sb.WriteString(fmt.Sprintf("  Layer %d: %d - D%.0f", i+1, len(layer.Positions), layer.Diameter))
		if gap, ok := ClearSpacing(layer); layer.Spacing > 0 {
			mark := ""
			if !ok {
				mark = " (below minimum)"
			}
			sb.WriteString(fmt.Sprintf(", clear spacing %.0f mm%s", gap, mark))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func box(grid [][]rune, l, t, r, b int, tl, tr, bl, br, h, v rune) {
	for x := l + 1; x < r; x++ {
		grid[t][x] = h
		grid[b][x] = h
	}
	for y := t + 1; y < b; y++ {
		grid[y][l] = v
		grid[y][r] = v
	}
	grid[t][l], grid[t][r] = tl, tr
	grid[b][l], grid[b][r] = bl, br
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
