package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hhscope/hhscope/internal/models"
	"github.com/hhscope/hhscope/internal/stats"
)

// topLimit caps how many vacancies the result file keeps.
const topLimit = 50

// Info describes the query a result file was produced for.
type Info struct {
	Query string `json:"query"`
	City  string `json:"city"`
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// Result is the persisted record for one query: metadata, the flat
// statistics mapping, and the best-paying vacancies.
type Result struct {
	Info         Info                     `json:"info"`
	Stats        map[string]int64         `json:"stats"`
	TopVacancies []models.SalariedVacancy `json:"top_vacancies"`
}

// Build assembles a Result. Statistics are truncated to whole rubles
// here, at the presentation boundary; vacancies are sorted by salary
// descending and capped at topLimit.
func Build(query, city string, now time.Time, summary stats.Summary, vacancies []models.SalariedVacancy) Result {
	flat := summary.Flat()
	truncated := make(map[string]int64, len(flat))
	for k, v := range flat {
		truncated[k] = int64(v)
	}

	top := append([]models.SalariedVacancy(nil), vacancies...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].SalaryValue > top[j].SalaryValue
	})
	if len(top) > topLimit {
		top = top[:topLimit]
	}

	return Result{
		Info: Info{
			Query: query,
			City:  city,
			Date:  now.Format("2006-01-02 15:04"),
			Total: len(vacancies),
		},
		Stats:        truncated,
		TopVacancies: top,
	}
}

// Filename returns the date-stamped result file name for a query.
func Filename(query, city string, now time.Time) string {
	sanitize := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	return fmt.Sprintf("hh_%s_%s_%s.json", sanitize(query), sanitize(city), now.Format("02012006"))
}

// Save writes the result as indented UTF-8 JSON into dir and returns
// the full path.
func Save(dir string, r Result, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(r.Info.Query, r.Info.City, now))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep Cyrillic and URLs readable in the file.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}

	return path, nil
}
