package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hhscope/hhscope/internal/stats"
)

const (
	scatterWidth  = 60
	scatterHeight = 12
	boxWidth      = 60
)

// shortRub compresses a ruble amount for axis labels.
func shortRub(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.0fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

// RenderScatter draws salary-by-arrival-index points. When there are
// more vacancies than columns, neighbors are averaged into one column.
func RenderScatter(values []float64) {
	if len(values) == 0 {
		return
	}

	pterm.DefaultSection.Println("Salary scatter")

	width := len(values)
	if width > scatterWidth {
		width = scatterWidth
	}
	bucket := (len(values) + width - 1) / width

	cols := make([]float64, 0, width)
	for i := 0; i < len(values); i += bucket {
		end := i + bucket
		if end > len(values) {
			end = len(values)
		}
		var sum float64
		for _, v := range values[i:end] {
			sum += v
		}
		cols = append(cols, sum/float64(end-i))
	}

	minV, maxV := cols[0], cols[0]
	for _, v := range cols {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	grid := make([][]rune, scatterHeight)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", len(cols)))
	}
	for c, v := range cols {
		level := scatterHeight / 2
		if maxV > minV {
			level = int((v - minV) / (maxV - minV) * float64(scatterHeight-1))
		}
		grid[scatterHeight-1-level][c] = '•'
	}

	for r, row := range grid {
		label := "        "
		switch r {
		case 0:
			label = fmt.Sprintf("%7s ", shortRub(maxV))
		case scatterHeight - 1:
			label = fmt.Sprintf("%7s ", shortRub(minV))
		}
		fmt.Printf("%s│%s\n", label, string(row))
	}
	fmt.Printf("        └%s\n", strings.Repeat("─", len(cols)))
	fmt.Printf("         vacancy # (1–%d)\n", len(values))
}

// RenderBox draws a one-line box-and-whisker summary from the quartiles.
func RenderBox(s stats.Summary) {
	pterm.DefaultSection.Println("Salary distribution")

	pos := func(v float64) int {
		if s.Range == 0 {
			return boxWidth / 2
		}
		p := int((v - s.Min) / s.Range * float64(boxWidth-1))
		if p < 0 {
			p = 0
		}
		if p > boxWidth-1 {
			p = boxWidth - 1
		}
		return p
	}

	line := []rune(strings.Repeat("─", boxWidth))
	q1, med, q3 := pos(s.Q1), pos(s.Median), pos(s.Q3)
	for i := q1; i <= q3; i++ {
		line[i] = '═'
	}
	line[0] = '├'
	line[boxWidth-1] = '┤'
	line[q1] = '['
	line[q3] = ']'
	line[med] = '│'

	fmt.Printf("  %s\n", string(line))
	fmt.Printf("  min %s ₽   25%% ≤ %s ₽   median %s ₽   75%% ≤ %s ₽   max %s ₽\n",
		FormatRub(s.Min), FormatRub(s.Q1), FormatRub(s.Median), FormatRub(s.Q3), FormatRub(s.Max))
}

// RenderHistogram draws the binned frequencies as a bar chart.
func RenderHistogram(h stats.Histogram) {
	pterm.DefaultSection.Println("Salary histogram")

	bars := make([]pterm.Bar, h.Bins())
	for i := range bars {
		bars[i] = pterm.Bar{
			Label: fmt.Sprintf("%s–%s", shortRub(h.Edges[i]), shortRub(h.Edges[i+1])),
			Value: h.Frequencies[i],
		}
	}

	err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
	if err != nil {
		fmt.Printf("Error rendering histogram: %v\n", err)
	}
}

// RenderCDF prints the empirical distribution as decile thresholds:
// the salary below which the given share of vacancies falls.
func RenderCDF(cdf stats.ECDF) {
	pterm.DefaultSection.Println("Cumulative distribution")

	for p := 10; p <= 100; p += 10 {
		target := float64(p) / 100
		x := cdf.X[len(cdf.X)-1]
		for i, y := range cdf.Y {
			if y >= target {
				x = cdf.X[i]
				break
			}
		}
		barLen := p * 40 / 100
		fmt.Printf("  %3d%% │%s %s ₽\n", p, strings.Repeat("█", barLen), FormatRub(x))
	}
}
