package hh

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cheggaaa/pb/v3"

	"github.com/hhscope/hhscope/internal/client"
	"github.com/hhscope/hhscope/internal/models"
)

// DefaultBaseURL is the vacancy search endpoint of the listings API.
const DefaultBaseURL = "https://api.hh.ru/vacancies"

// Client fetches vacancy pages from the listings API. The area code is
// passed per search; the city table lives in configuration, never here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	perPage    int
	progress   bool
	debug      bool
}

// NewClient creates a listings client. perPage values outside (0, 100]
// are reset to 100, the API maximum.
func NewClient(httpClient *http.Client, baseURL string, perPage int, progress, debug bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		perPage:    perPage,
		progress:   progress,
		debug:      debug,
	}
}

// Search pages through vacancies matching query in the given area,
// requesting salaried postings only. A failed page is reported and
// skipped; an empty page or the API's reported page count stops the
// loop early.
func (c *Client) Search(query string, area int, pages int) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy

	bar := pb.New(pages)
	if c.progress {
		bar.Start()
		defer bar.Finish()
	}

	for page := 0; page < pages; page++ {
		result, err := c.fetchPage(query, area, page)
		if err != nil {
			fmt.Printf("Error fetching page %d: %v\n", page, err)
			bar.Increment()
			continue
		}

		if len(result.Items) == 0 {
			if c.debug {
				fmt.Printf("Page %d is empty, stopping\n", page)
			}
			break
		}

		for _, item := range result.Items {
			item.Snippet.Requirement = cleanSnippet(item.Snippet.Requirement)
			item.Snippet.Responsibility = cleanSnippet(item.Snippet.Responsibility)
			vacancies = append(vacancies, item)
		}

		bar.Increment()

		if page+1 >= result.Pages {
			if c.debug {
				fmt.Printf("Reached last page (%d of %d)\n", page+1, result.Pages)
			}
			break
		}
	}

	return vacancies, nil
}

// fetchPage performs a single search request.
func (c *Client) fetchPage(query string, area, page int) (*models.SearchPage, error) {
	params := url.Values{}
	params.Set("text", query)
	params.Set("area", strconv.Itoa(area))
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("only_with_salary", "true")

	requestURL := c.baseURL + "?" + params.Encode()
	if c.debug {
		fmt.Printf("Fetching %s\n", requestURL)
	}

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client.SetHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result models.SearchPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &result, nil
}

// cleanSnippet strips the <highlighttext> markup the API embeds in
// snippet fields, leaving plain text.
func cleanSnippet(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
