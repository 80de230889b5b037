package hh

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhscope/hhscope/internal/models"
)

func fp(v float64) *float64 { return &v }

func newTestServer(t *testing.T, pages []models.SearchPage) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("only_with_salary"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		if page >= len(pages) {
			json.NewEncoder(w).Encode(models.SearchPage{Page: page, Pages: len(pages)})
			return
		}
		json.NewEncoder(w).Encode(pages[page])
	}))
}

func TestSearchPaginates(t *testing.T) {
	pages := []models.SearchPage{
		{
			Items: []models.Vacancy{
				{Name: "Go Developer", Salary: &models.SalarySpec{Currency: "RUR", From: fp(150000)}},
				{Name: "Backend Engineer", Salary: &models.SalarySpec{Currency: "RUR", From: fp(100000), To: fp(200000)}},
			},
			Page: 0, Pages: 2, Found: 3,
		},
		{
			Items: []models.Vacancy{
				{Name: "SRE", Salary: &models.SalarySpec{Currency: "RUR", To: fp(180000)}},
			},
			Page: 1, Pages: 2, Found: 3,
		},
	}
	srv := newTestServer(t, pages)
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 100, false, false)
	vacancies, err := c.Search("go", 1, 5)
	require.NoError(t, err)

	require.Len(t, vacancies, 3)
	assert.Equal(t, "Go Developer", vacancies[0].Name)
	assert.Equal(t, "SRE", vacancies[2].Name)
}

func TestSearchStopsOnEmptyPage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(models.SearchPage{Pages: 10})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 100, false, false)
	vacancies, err := c.Search("go", 1, 10)
	require.NoError(t, err)

	assert.Empty(t, vacancies)
	assert.Equal(t, 1, calls)
}

func TestSearchSkipsFailedPages(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("page") == "0" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.SearchPage{
			Items: []models.Vacancy{{Name: "Analyst"}},
			Pages: 2,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 100, false, false)
	vacancies, err := c.Search("go", 1, 2)
	require.NoError(t, err)

	require.Len(t, vacancies, 1)
	assert.Equal(t, 2, calls)
}

func TestSearchCleansSnippets(t *testing.T) {
	srv := newTestServer(t, []models.SearchPage{{
		Items: []models.Vacancy{{
			Name: "Go Developer",
			Snippet: models.Snippet{
				Requirement:    "Experience with <highlighttext>Go</highlighttext> and SQL",
				Responsibility: "Build <highlighttext>services</highlighttext>",
			},
		}},
		Pages: 1,
	}})
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 100, false, false)
	vacancies, err := c.Search("go", 1, 1)
	require.NoError(t, err)

	require.Len(t, vacancies, 1)
	assert.Equal(t, "Experience with Go and SQL", vacancies[0].Snippet.Requirement)
	assert.Equal(t, "Build services", vacancies[0].Snippet.Responsibility)
}

func TestCleanSnippetPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "no markup here", cleanSnippet("no markup here"))
	assert.Equal(t, "", cleanSnippet(""))
}
