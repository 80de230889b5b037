package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// City is one entry of the area lookup table. Code is the area
// identifier the listings API expects; it is passed explicitly into the
// search client, which never reads this table itself.
type City struct {
	Name string `yaml:"name" validate:"required"`
	Code int    `yaml:"code" validate:"gte=0"`
}

// Config holds all tunables of the tool. Values come from an optional
// YAML file, filled in with defaults, then overridden by environment
// variables.
type Config struct {
	BaseURL   string  `yaml:"base_url" default:"https://api.hh.ru/vacancies" validate:"required,url"`
	Pages     int     `yaml:"pages" default:"3" validate:"gte=1,lte=20"`
	PerPage   int     `yaml:"per_page" default:"100" validate:"gte=1,lte=100"`
	Currency  string  `yaml:"currency" default:"RUR" validate:"required"`
	MinSalary float64 `yaml:"min_salary" validate:"gte=0"`
	// Bins is the histogram bin count; 0 picks min(15, n/2) at render time.
	Bins      int    `yaml:"bins" validate:"gte=0"`
	OutputDir string `yaml:"output_dir" default:"."`
	Proxy     string `yaml:"proxy"`
	Cities    []City `yaml:"cities" validate:"min=1,dive"`
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	c := &Config{}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if len(c.Cities) == 0 {
		c.Cities = defaultCities()
	}

	if v := os.Getenv("HHSCOPE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("HHSCOPE_PROXY"); v != "" {
		c.Proxy = v
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// CityByIndex returns the city at the 1-based index users pick in the
// prompt or with -city.
func (c *Config) CityByIndex(i int) (City, bool) {
	if i < 1 || i > len(c.Cities) {
		return City{}, false
	}
	return c.Cities[i-1], true
}

func defaultCities() []City {
	return []City{
		{Name: "Москва", Code: 1},
		{Name: "Санкт-Петербург", Code: 2},
		{Name: "Казань", Code: 88},
	}
}
