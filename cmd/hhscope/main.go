package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/hhscope/hhscope/internal/client"
	"github.com/hhscope/hhscope/internal/config"
	"github.com/hhscope/hhscope/internal/hh"
	"github.com/hhscope/hhscope/internal/models"
	"github.com/hhscope/hhscope/internal/report"
	"github.com/hhscope/hhscope/internal/stats"
	"github.com/hhscope/hhscope/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 hhscope Usage Examples 📋")

	fmt.Println("\n1. Salary statistics for Go developers in Moscow:")
	fmt.Println("   hhscope -query \"golang разработчик\" -city 1")

	fmt.Println("\n2. Interactive mode (prompts for city and profession):")
	fmt.Println("   hhscope")

	fmt.Println("\n3. Scan five result pages and filter out salaries below 5000 ₽:")
	fmt.Println("   hhscope -query \"аналитик\" -city 2 -pages 5 -min-salary 5000")

	fmt.Println("\n4. Fixed histogram bin count, no result file:")
	fmt.Println("   hhscope -query \"devops\" -city 1 -bins 10 -no-save")

	fmt.Println("\n5. Show the best-paying vacancies as a table, silence the banner:")
	fmt.Println("   hhscope -query \"data engineer\" -city 3 -table -silence")

	fmt.Println("\n6. Custom city table and proxy:")
	fmt.Println("   hhscope -query \"qa\" -city 1 -config cities.yaml -proxy http://localhost:8080")

	os.Exit(0)
}

func main() {
	// .env is optional; environment overrides apply either way.
	_ = godotenv.Load()

	// Command line flags
	query := flag.String("query", "", "Profession or search text (prompts if omitted)")
	cityNum := flag.Int("city", 0, "City number from the configured table (prompts if omitted)")
	pages := flag.Int("pages", 0, "Number of result pages to fetch (default from config)")
	bins := flag.Int("bins", 0, "Histogram bin count (0 = auto)")
	minSalary := flag.Float64("min-salary", -1, "Reject salaries below this threshold (0 disables)")
	currency := flag.String("currency", "", "Accepted currency code (default from config)")
	configPath := flag.String("config", "", "Path to YAML config file")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	outputDir := flag.String("output", "", "Directory for the result file (default from config)")
	table := flag.Bool("table", false, "Show the best-paying vacancies in table format")
	noCharts := flag.Bool("no-charts", false, "Skip chart rendering")
	noSave := flag.Bool("no-save", false, "Skip writing the JSON result file")
	listCities := flag.Bool("list-cities", false, "Show the configured city table")
	examples := flag.Bool("examples", false, "Show usage examples")
	debug := flag.Bool("debug", false, "Enable debug mode")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	// Display banner (skip if either -silence or -nobanner is set)
	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Flag values win over config file and defaults.
	if *pages > 0 {
		cfg.Pages = *pages
	}
	if *bins > 0 {
		cfg.Bins = *bins
	}
	if *minSalary >= 0 {
		cfg.MinSalary = *minSalary
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *proxyURL != "" {
		cfg.Proxy = *proxyURL
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if *listCities {
		printCities(cfg)
		return
	}

	city, err := resolveCity(cfg, *cityNum)
	if err != nil {
		log.Fatalf("City selection error: %v", err)
	}

	searchText := *query
	if searchText == "" {
		searchText, _ = pterm.DefaultInteractiveTextInput.Show("Enter a profession to search for")
		if searchText == "" {
			log.Fatal("Search text is required")
		}
	}

	httpClient := client.New(cfg.Proxy)
	source := hh.NewClient(httpClient, cfg.BaseURL, cfg.PerPage, !(*silence || *noBanner), *debug)

	fmt.Printf("\nSearching %q in %s...\n", searchText, city.Name)
	vacancies, err := source.Search(searchText, city.Code, cfg.Pages)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	salaried, values := normalizeVacancies(vacancies, cfg, *debug)
	if len(values) == 0 {
		fmt.Println("No vacancies with usable salary data for this query")
		return
	}

	summary, err := stats.Describe(values)
	if err != nil {
		// Insufficient data: skip presentation and persistence entirely.
		fmt.Printf("Insufficient data for statistics: %v\n", err)
		return
	}

	ui.PrintSummary(searchText, city.Name, summary)

	if *table {
		ui.PrintVacancyTable(topBySalary(salaried), 20)
	}

	if !*noCharts {
		renderCharts(values, summary, cfg)
	}

	if !*noSave {
		now := time.Now()
		result := report.Build(searchText, city.Name, now, summary, salaried)
		path, err := report.Save(cfg.OutputDir, result, now)
		if err != nil {
			fmt.Printf("Error saving results: %v\n", err)
		} else {
			fmt.Printf("\nResults saved to %s\n", path)
		}
	}
}

// normalizeVacancies reduces raw postings to salary points, keeping
// arrival order. Postings without a usable salary are dropped.
func normalizeVacancies(vacancies []models.Vacancy, cfg *config.Config, debug bool) ([]models.SalariedVacancy, []float64) {
	opts := stats.NormalizeOptions{Currency: cfg.Currency, MinSalary: cfg.MinSalary}

	var salaried []models.SalariedVacancy
	var values []float64
	for _, v := range vacancies {
		value, ok := stats.Normalize(v.Salary, opts)
		if !ok {
			if debug {
				fmt.Printf("Skipping %q: no usable salary\n", v.Name)
			}
			continue
		}
		salaried = append(salaried, models.SalariedVacancy{Vacancy: v, SalaryValue: value})
		values = append(values, value)
	}
	return salaried, values
}

// renderCharts draws the scatter, box, histogram and CDF panels.
func renderCharts(values []float64, summary stats.Summary, cfg *config.Config) {
	ui.RenderScatter(values)
	ui.RenderBox(summary)

	nbins := cfg.Bins
	if nbins == 0 {
		nbins = len(values) / 2
		if nbins > 15 {
			nbins = 15
		}
		if nbins < 1 {
			nbins = 1
		}
	}

	hist, err := stats.Bin(values, nbins)
	switch {
	case errors.Is(err, stats.ErrDegenerateRange):
		fmt.Println("\nAll salaries are identical, skipping histogram")
	case err != nil:
		fmt.Printf("\nError building histogram: %v\n", err)
	default:
		ui.RenderHistogram(hist)
	}

	cdf, err := stats.EmpiricalCDF(values)
	if err == nil {
		ui.RenderCDF(cdf)
	}
}

// topBySalary returns a copy sorted by salary descending.
func topBySalary(salaried []models.SalariedVacancy) []models.SalariedVacancy {
	sorted := append([]models.SalariedVacancy(nil), salaried...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SalaryValue > sorted[j].SalaryValue
	})
	return sorted
}

// printCities shows the configured city table.
func printCities(cfg *config.Config) {
	fmt.Println("\nAvailable cities:")
	for i, c := range cfg.Cities {
		fmt.Printf("%d — %s (area %d)\n", i+1, c.Name, c.Code)
	}
}

// resolveCity picks the city from the -city flag or prompts for it.
func resolveCity(cfg *config.Config, cityNum int) (config.City, error) {
	if cityNum == 0 {
		printCities(cfg)
		answer, _ := pterm.DefaultInteractiveTextInput.Show(fmt.Sprintf("Choose a city (1-%d)", len(cfg.Cities)))
		n, err := strconv.Atoi(answer)
		if err != nil {
			return config.City{}, fmt.Errorf("invalid city number %q", answer)
		}
		cityNum = n
	}

	city, ok := cfg.CityByIndex(cityNum)
	if !ok {
		return config.City{}, fmt.Errorf("no city with number %d", cityNum)
	}
	return city, nil
}
