// Package format renders forecast rows into user-facing sentences from
// caller-supplied templates. Templates use brace placeholders ({date},
// {amount}, ...) drawn from a fixed vocabulary per formatter; an unknown
// placeholder is rejected up front rather than silently echoed back.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"penny/internal/direction"
	apperrors "penny/internal/errors"
	"penny/internal/forecast"
	"penny/internal/taxonomy"
)

// DateLayout is how period dates appear in rendered lines.
const DateLayout = "2006-01-02"

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// LineMeta carries the machine-readable values behind one rendered line.
type LineMeta struct {
	CategoryID int     `json:"category_id"`
	Amount     float64 `json:"forecasted_amount"`
	Date       string  `json:"start_date"`
}

// checkPlaceholders validates that every placeholder in template is one of
// the allowed names.
func checkPlaceholders(template string, allowed map[string]bool) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !allowed[match[1]] {
			return apperrors.WithMessage(apperrors.ErrUnknownPlaceholder,
				fmt.Sprintf("unknown placeholder {%s}", match[1]))
		}
	}
	return nil
}

func expand(template string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		return values[name]
	})
}

// amountString renders an absolute amount, adding the dollar prefix only
// when the template does not already carry one.
func amountString(amount float64, template string) string {
	return direction.FormatAmount(amount, !strings.Contains(template, "$"))
}

var forecastLinePlaceholders = map[string]bool{
	"date":                 true,
	"category":             true,
	"category_id":          true,
	"amount":               true,
	"amount_and_direction": true,
}

// ForecastLines renders one line per forecast row. Available placeholders:
// {date}, {category}, {category_id}, {amount}, {amount_and_direction}.
// {amount_and_direction} expands to a full verb phrase like
// "spend $120 for". Returns the lines joined by newlines plus per-line
// metadata; empty input yields an empty string and no metadata.
func ForecastLines(tax *taxonomy.Taxonomy, rows []forecast.Row, template string) (string, []LineMeta, error) {
	if err := checkPlaceholders(template, forecastLinePlaceholders); err != nil {
		return "", nil, err
	}
	if len(rows) == 0 {
		return "", nil, nil
	}

	lines := make([]string, 0, len(rows))
	meta := make([]LineMeta, 0, len(rows))
	for _, row := range rows {
		isIncome := tax.IsIncome(row.CategoryID)
		phrase := direction.Forecasts.Phrase(row.Amount, isIncome)

		date := row.PeriodStart.Format(DateLayout)
		line := expand(template, map[string]string{
			"date":                 date,
			"category":             categoryLabel(tax, row),
			"category_id":          strconv.Itoa(row.CategoryID),
			"amount":               amountString(row.Amount, template),
			"amount_and_direction": phrase.Render(row.Amount),
		})
		lines = append(lines, direction.StripEmptyParens(line))
		meta = append(meta, LineMeta{
			CategoryID: row.CategoryID,
			Amount:     row.Amount,
			Date:       date,
		})
	}
	return strings.Join(lines, "\n"), meta, nil
}

var forecastTotalPlaceholders = map[string]bool{
	"total_amount": true,
	"direction":    true,
}

// ForecastTotal sums the rows and renders the template. Available
// placeholders: {total_amount}, {direction}. {direction} expands to a
// parenthesized flow tag, "(inflow)" or "(outflow)", only when the total
// runs against the usual direction for its categories; otherwise it is
// empty and any leftover empty parens are stripped. Empty input renders
// as "$0.00" regardless of template.
func ForecastTotal(tax *taxonomy.Taxonomy, rows []forecast.Row, template string) (string, error) {
	if err := checkPlaceholders(template, forecastTotalPlaceholders); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "$0.00", nil
	}

	total := forecast.Total(rows)
	isIncome := false
	for _, row := range rows {
		if tax.IsIncome(row.CategoryID) {
			isIncome = true
			break
		}
	}
	phrase := direction.Forecasts.Phrase(total, isIncome)

	out := expand(template, map[string]string{
		"total_amount": amountString(total, template),
		"direction":    phrase.RenderTag(),
	})
	return direction.StripEmptyParens(out), nil
}

var categoryLinePlaceholders = map[string]bool{
	"category":              true,
	"amount":                true,
	"amount_with_direction": true,
}

// CategoryLines renders one line per row for category-keyed summaries.
// Available placeholders: {category}, {amount}, {amount_with_direction}.
// {amount_with_direction} is the amount followed by its flow tag, e.g.
// "$45 (inflow)" for an expense refund.
func CategoryLines(tax *taxonomy.Taxonomy, rows []forecast.Row, template string) (string, error) {
	if err := checkPlaceholders(template, categoryLinePlaceholders); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		phrase := direction.Forecasts.Phrase(row.Amount, tax.IsIncome(row.CategoryID))
		amount := amountString(row.Amount, template)

		withDirection := amount + phrase.RenderTag()

		line := expand(template, map[string]string{
			"category":              categoryLabel(tax, row),
			"amount":                amount,
			"amount_with_direction": withDirection,
		})
		lines = append(lines, direction.StripEmptyParens(line))
	}
	return strings.Join(lines, "\n"), nil
}

// categoryLabel prefers the name already resolved on the row, falling back
// to the taxonomy display name.
func categoryLabel(tax *taxonomy.Taxonomy, row forecast.Row) string {
	if row.Category != "" {
		return row.Category
	}
	return tax.DisplayName(row.CategoryID)
}
