package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/hhscope/hhscope/internal/models"
	"github.com/hhscope/hhscope/internal/stats"
)

// FormatRub renders a ruble amount truncated to whole units, with
// spaces as thousand separators the way Russian job boards print money.
func FormatRub(v float64) string {
	return strings.ReplaceAll(humanize.Comma(int64(v)), ",", " ")
}

// ColorizeSalary applies color by amount so high-paying rows stand out.
func ColorizeSalary(v float64) string {
	formatted := FormatRub(v) + " ₽"
	switch {
	case v >= 300000:
		return pterm.Green(formatted)
	case v >= 150000:
		return pterm.LightGreen(formatted)
	case v >= 70000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// PrintSummary prints the human-readable statistics report for a query.
// All amounts are truncated to whole rubles here; the summary itself
// stays full-precision.
func PrintSummary(query, city string, s stats.Summary) {
	fmt.Printf("\nResults for %q in %s\n", query, city)
	fmt.Printf("Vacancies analyzed: %d\n", s.Count)
	fmt.Printf("Min/Max: %s — %s ₽\n", FormatRub(s.Min), FormatRub(s.Max))
	fmt.Printf("Mean: %s ₽\n", FormatRub(s.Mean))
	fmt.Printf("Median: %s ₽\n", FormatRub(s.Median))
	fmt.Printf("Standard deviation: ±%s ₽\n", FormatRub(s.StdDev))
	fmt.Printf("Interquartile range: %s ₽\n", FormatRub(s.IQR))
	fmt.Printf("25%% of vacancies ≤ %s ₽, 75%% ≤ %s ₽\n", FormatRub(s.Q1), FormatRub(s.Q3))
}

// PrintVacancyTable prints the best-paying vacancies in table form.
func PrintVacancyTable(vacancies []models.SalariedVacancy, limit int) {
	if limit > len(vacancies) {
		limit = len(vacancies)
	}

	fmt.Printf("\n\033[1m%-25s %-15s %-40s %s\033[0m\n", "Company", "Salary", "Title", "URL")
	fmt.Println(strings.Repeat("-", 120))
	for _, v := range vacancies[:limit] {
		fmt.Printf("\033[35m%-25s\033[0m %-24s %-40s %s\n",
			truncateString(v.Employer.Name, 24),
			ColorizeSalary(v.SalaryValue),
			truncateString(v.Name, 39),
			v.URL)
	}
	fmt.Println(strings.Repeat("-", 120))
}

// truncateString truncates a string to the specified length and adds "..." if necessary
func truncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
