package direction

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		isIncome bool
		want     Direction
	}{
		{"expense_positive", 120, false, Spend},
		{"expense_zero", 0, false, Spend},
		{"expense_negative", -45, false, Refund},
		{"income_negative", -3000, true, Earn},
		{"income_zero", 0, true, Earn},
		{"income_positive", 250, true, Return},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.amount, tc.isIncome); got != tc.want {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tc.amount, tc.isIncome, got, tc.want)
			}
		})
	}
}

func TestVocabularyPhrase(t *testing.T) {
	t.Run("forecast_spend", func(t *testing.T) {
		p := Forecasts.Phrase(120, false)
		if got := p.Render(120); got != "spend $120 for" {
			t.Errorf("expected 'spend $120 for', got %q", got)
		}
		if p.RenderTag() != "" {
			t.Errorf("expected no tag for normal spend, got %q", p.RenderTag())
		}
	})

	t.Run("forecast_refund_tags_inflow", func(t *testing.T) {
		p := Forecasts.Phrase(-45, false)
		if got := p.Render(-45); got != "receive $45 from" {
			t.Errorf("expected 'receive $45 from', got %q", got)
		}
		if got := p.RenderTag(); got != " (inflow)" {
			t.Errorf("expected inflow tag, got %q", got)
		}
	})

	t.Run("forecast_earn", func(t *testing.T) {
		p := Forecasts.Phrase(-3000, true)
		if got := p.Render(-3000); got != "earn $3000 from" {
			t.Errorf("expected 'earn $3000 from', got %q", got)
		}
		if p.RenderTag() != "" {
			t.Errorf("expected no tag for normal earn, got %q", p.RenderTag())
		}
	})

	t.Run("forecast_return_tags_outflow", func(t *testing.T) {
		p := Forecasts.Phrase(250, true)
		if got := p.Render(250); got != "return $250 to" {
			t.Errorf("expected 'return $250 to', got %q", got)
		}
		if got := p.RenderTag(); got != " (outflow)" {
			t.Errorf("expected outflow tag, got %q", got)
		}
	})

	t.Run("transaction_list_verbs", func(t *testing.T) {
		if p := TransactionLists.Phrase(80, false); p.Verb != "paid to" || p.Preposition != "to" {
			t.Errorf("unexpected list spend phrase: %+v", p)
		}
		if p := TransactionLists.Phrase(-80, false); p.Verb != "refunded from" {
			t.Errorf("unexpected list refund phrase: %+v", p)
		}
	})

	t.Run("transaction_verbs", func(t *testing.T) {
		if p := Transactions.Phrase(80, false); p.Verb != "spend" || p.Preposition != "for" {
			t.Errorf("unexpected transaction spend phrase: %+v", p)
		}
		if p := Transactions.Phrase(-80, true); p.Verb != "receive" {
			t.Errorf("unexpected transaction earn phrase: %+v", p)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(-1234.56, true); got != "$1235" {
		t.Errorf("expected $1235, got %q", got)
	}
	if got := FormatAmount(99.4, false); got != "99" {
		t.Errorf("expected 99, got %q", got)
	}
}

func TestStripEmptyParens(t *testing.T) {
	cases := map[string]string{
		"spent $100 ()":        "spent $100",
		"earned $50":           "earned $50",
		"$30 () for groceries": "$30 for groceries",
	}
	for in, want := range cases {
		if got := StripEmptyParens(in); got != want {
			t.Errorf("StripEmptyParens(%q) = %q, want %q", in, got, want)
		}
	}
}
