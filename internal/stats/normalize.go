package stats

import "github.com/hhscope/hhscope/internal/models"

// DefaultCurrency is the only currency code accepted by default.
// Postings in other currencies are filtered out rather than converted.
const DefaultCurrency = "RUR"

// NormalizeOptions controls how raw salary specs are reduced to a
// single value.
type NormalizeOptions struct {
	// Currency is the accepted currency code. Empty means DefaultCurrency.
	Currency string

	// MinSalary rejects normalized values below the threshold as
	// implausible noise. Zero disables the filter.
	MinSalary float64
}

// Normalize reduces a raw salary spec to a single value. A posting with
// both bounds yields the midpoint, one bound yields that bound. The
// second return is false when the posting carries no usable salary:
// missing spec, wrong currency, no bounds, or a value below the
// configured threshold. That is a filtering decision, not an error.
func Normalize(s *models.SalarySpec, opts NormalizeOptions) (float64, bool) {
	if s == nil {
		return 0, false
	}

	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	if s.Currency != currency {
		return 0, false
	}

	var value float64
	switch {
	case s.From != nil && s.To != nil:
		// Floating midpoint; truncation to whole units is left to the
		// presentation layer.
		value = (*s.From + *s.To) / 2
	case s.From != nil:
		value = *s.From
	case s.To != nil:
		value = *s.To
	default:
		return 0, false
	}

	if opts.MinSalary > 0 && value < opts.MinSalary {
		return 0, false
	}

	return value, true
}
