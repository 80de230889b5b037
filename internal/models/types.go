package models

// SalarySpec is the salary sub-object of a vacancy as returned by the
// listings API. From and To are pointers because either bound may be
// absent in a posting.
type SalarySpec struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    bool     `json:"gross"`
}

// Employer identifies the company behind a vacancy.
type Employer struct {
	Name string `json:"name"`
}

// Snippet carries the short requirement/responsibility excerpts shown
// in search results. The API embeds <highlighttext> markup in both.
type Snippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}

// Vacancy represents a single job posting from the listings API.
type Vacancy struct {
	Name        string      `json:"name"`
	Salary      *SalarySpec `json:"salary"`
	URL         string      `json:"alternate_url"`
	Employer    Employer    `json:"employer"`
	PublishedAt string      `json:"published_at"`
	Snippet     Snippet     `json:"snippet"`
}

// SearchPage is one page of the paginated search response.
type SearchPage struct {
	Items   []Vacancy `json:"items"`
	Page    int       `json:"page"`
	Pages   int       `json:"pages"`
	Found   int       `json:"found"`
	PerPage int       `json:"per_page"`
}

// SalariedVacancy pairs a vacancy with its normalized salary value.
// The slice order is arrival order from the API, which the scatter
// chart relies on.
type SalariedVacancy struct {
	Vacancy
	SalaryValue float64 `json:"salary_value"`
}
