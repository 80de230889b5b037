package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacancyUnmarshal(t *testing.T) {
	data := `{
		"name": "Go Developer",
		"salary": {"from": 150000, "to": null, "currency": "RUR", "gross": false},
		"alternate_url": "https://hh.ru/vacancy/1",
		"employer": {"name": "Рога и Копыта"},
		"published_at": "2026-08-30T10:00:00+0300",
		"snippet": {"requirement": "Go, SQL", "responsibility": "Build services"}
	}`

	var v Vacancy
	require.NoError(t, json.Unmarshal([]byte(data), &v))

	assert.Equal(t, "Go Developer", v.Name)
	require.NotNil(t, v.Salary)
	require.NotNil(t, v.Salary.From)
	assert.Equal(t, 150000.0, *v.Salary.From)
	assert.Nil(t, v.Salary.To)
	assert.Equal(t, "RUR", v.Salary.Currency)
	assert.Equal(t, "Рога и Копыта", v.Employer.Name)
	assert.Equal(t, "https://hh.ru/vacancy/1", v.URL)
}

func TestVacancyUnmarshalAbsentSalary(t *testing.T) {
	var v Vacancy
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Intern", "salary": null}`), &v))
	assert.Nil(t, v.Salary)
}

func TestSalariedVacancyMarshal(t *testing.T) {
	sv := SalariedVacancy{
		Vacancy:     Vacancy{Name: "SRE", URL: "https://hh.ru/vacancy/2"},
		SalaryValue: 180000,
	}

	b, err := json.Marshal(sv)
	require.NoError(t, err)

	// The embedded vacancy flattens into the same object.
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "SRE", out["name"])
	assert.Equal(t, 180000.0, out["salary_value"])
}
