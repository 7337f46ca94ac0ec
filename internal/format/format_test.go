package format

import (
	"testing"
	"time"

	"penny/internal/forecast"
	"penny/internal/taxonomy"
	"penny/internal/testutil"
)

var period = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func row(categoryID int, amount float64) forecast.Row {
	return forecast.Row{UserID: 1, CategoryID: categoryID, PeriodStart: period, Amount: amount}
}

func TestForecastLines(t *testing.T) {
	tax := taxonomy.New()

	t.Run("renders_each_row", func(t *testing.T) {
		rows := []forecast.Row{row(4, 120), row(2, 80)}

		out, meta, err := ForecastLines(tax, rows, "On {date} you will {amount_and_direction} {category}")
		testutil.AssertNoError(t, err)

		want := "On 2026-01-01 you will spend $120 for Groceries\n" +
			"On 2026-01-01 you will spend $80 for Dining Out"
		if out != want {
			t.Errorf("expected %q, got %q", want, out)
		}
		if len(meta) != 2 {
			t.Fatalf("expected 2 metadata entries, got %d", len(meta))
		}
		if meta[0].CategoryID != 4 || meta[0].Date != "2026-01-01" {
			t.Errorf("unexpected metadata: %+v", meta[0])
		}
		testutil.AssertInDelta(t, 120, meta[0].Amount, 1e-9)
	})

	t.Run("refund_phrasing", func(t *testing.T) {
		out, _, err := ForecastLines(tax, []forecast.Row{row(4, -45)}, "{amount_and_direction} {category}")
		testutil.AssertNoError(t, err)
		if out != "receive $45 from Groceries" {
			t.Errorf("unexpected line %q", out)
		}
	})

	t.Run("income_phrasing", func(t *testing.T) {
		out, _, err := ForecastLines(tax, []forecast.Row{row(36, -3000)}, "{amount_and_direction} {category}")
		testutil.AssertNoError(t, err)
		if out != "earn $3000 from Salary" {
			t.Errorf("unexpected line %q", out)
		}
	})

	t.Run("dollar_sign_not_doubled", func(t *testing.T) {
		out, _, err := ForecastLines(tax, []forecast.Row{row(4, 120)}, "spend ${amount}")
		testutil.AssertNoError(t, err)
		if out != "spend $120" {
			t.Errorf("expected %q, got %q", "spend $120", out)
		}
	})

	t.Run("dollar_sign_added_when_template_lacks_one", func(t *testing.T) {
		out, _, err := ForecastLines(tax, []forecast.Row{row(4, 120)}, "spend {amount}")
		testutil.AssertNoError(t, err)
		if out != "spend $120" {
			t.Errorf("expected %q, got %q", "spend $120", out)
		}
	})

	t.Run("prefers_row_category_name", func(t *testing.T) {
		r := row(4, 10)
		r.Category = "Food & Groceries"
		out, _, err := ForecastLines(tax, []forecast.Row{r}, "{category}")
		testutil.AssertNoError(t, err)
		if out != "Food & Groceries" {
			t.Errorf("unexpected line %q", out)
		}
	})

	t.Run("unknown_placeholder", func(t *testing.T) {
		_, _, err := ForecastLines(tax, []forecast.Row{row(4, 10)}, "{bogus} on {date}")
		testutil.AssertAppError(t, err, "UNKNOWN_PLACEHOLDER")
	})

	t.Run("empty_rows", func(t *testing.T) {
		out, meta, err := ForecastLines(tax, nil, "{date}")
		testutil.AssertNoError(t, err)
		if out != "" || meta != nil {
			t.Errorf("expected empty output, got %q / %v", out, meta)
		}
	})
}

func TestForecastTotal(t *testing.T) {
	tax := taxonomy.New()

	t.Run("empty_rows", func(t *testing.T) {
		out, err := ForecastTotal(tax, nil, "Total: {total_amount}")
		testutil.AssertNoError(t, err)
		if out != "$0.00" {
			t.Errorf("expected $0.00, got %q", out)
		}
	})

	t.Run("spending_total_has_no_tag", func(t *testing.T) {
		rows := []forecast.Row{row(4, 100), row(2, 50)}
		out, err := ForecastTotal(tax, rows, "Total: {total_amount}{direction}")
		testutil.AssertNoError(t, err)
		if out != "Total: $150" {
			t.Errorf("expected %q, got %q", "Total: $150", out)
		}
	})

	t.Run("net_refund_tags_inflow", func(t *testing.T) {
		rows := []forecast.Row{row(4, -45)}
		out, err := ForecastTotal(tax, rows, "{total_amount}{direction}")
		testutil.AssertNoError(t, err)
		if out != "$45 (inflow)" {
			t.Errorf("expected %q, got %q", "$45 (inflow)", out)
		}
	})

	t.Run("income_total_has_no_tag", func(t *testing.T) {
		rows := []forecast.Row{row(36, -3000), row(37, -500)}
		out, err := ForecastTotal(tax, rows, "{total_amount}{direction}")
		testutil.AssertNoError(t, err)
		if out != "$3500" {
			t.Errorf("expected %q, got %q", "$3500", out)
		}
	})

	t.Run("strips_leftover_empty_parens", func(t *testing.T) {
		rows := []forecast.Row{row(4, 100)}
		out, err := ForecastTotal(tax, rows, "{total_amount} ()")
		testutil.AssertNoError(t, err)
		if out != "$100" {
			t.Errorf("expected %q, got %q", "$100", out)
		}
	})

	t.Run("unknown_placeholder", func(t *testing.T) {
		_, err := ForecastTotal(tax, []forecast.Row{row(4, 10)}, "{amount}")
		testutil.AssertAppError(t, err, "UNKNOWN_PLACEHOLDER")
	})
}

func TestCategoryLines(t *testing.T) {
	tax := taxonomy.New()

	t.Run("renders_amount_with_direction", func(t *testing.T) {
		rows := []forecast.Row{row(4, 120), row(2, -45)}
		out, err := CategoryLines(tax, rows, "{category}: {amount_with_direction}")
		testutil.AssertNoError(t, err)

		want := "Groceries: $120\nDining Out: $45 (inflow)"
		if out != want {
			t.Errorf("expected %q, got %q", want, out)
		}
	})

	t.Run("plain_amount", func(t *testing.T) {
		out, err := CategoryLines(tax, []forecast.Row{row(36, -3000)}, "{category} {amount}")
		testutil.AssertNoError(t, err)
		if out != "Salary $3000" {
			t.Errorf("unexpected line %q", out)
		}
	})

	t.Run("unknown_placeholder", func(t *testing.T) {
		_, err := CategoryLines(tax, []forecast.Row{row(4, 10)}, "{date}")
		testutil.AssertAppError(t, err, "UNKNOWN_PLACEHOLDER")
	})

	t.Run("empty_rows", func(t *testing.T) {
		out, err := CategoryLines(tax, nil, "{category}")
		testutil.AssertNoError(t, err)
		if out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
	})
}
