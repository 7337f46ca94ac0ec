// Package direction derives the natural-language flow phrasing for a signed
// monetary amount: the verb, preposition, and inflow/outflow tag that
// describe where the money moved. The sign/kind decision is identical at
// every call site; only the verb vocabulary changes between transaction
// lists, forecasts, and subscriptions.
package direction

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Direction classifies a signed amount for a category kind.
type Direction int

const (
	// Spend: expense category, positive (or zero) amount. The normal outflow.
	Spend Direction = iota
	// Refund: expense category, negative amount. Money came back.
	Refund
	// Earn: income category, negative (or zero) amount. The normal inflow.
	// Stored income amounts are negative in the source data.
	Earn
	// Return: income category, positive amount. Income was given back.
	Return
)

// Resolve maps a signed amount and category kind onto a Direction. Zero
// amounts take the normal branch for the category kind, never the
// refund/return branch.
func Resolve(amount float64, isIncome bool) Direction {
	if isIncome {
		if amount > 0 {
			return Return
		}
		return Earn
	}
	if amount < 0 {
		return Refund
	}
	return Spend
}

// Phrase is the resolved verb/preposition/tag combination for one amount.
// It is computed per row at format time and never cached, since it depends
// on the exact numeric sign.
type Phrase struct {
	Verb        string
	Preposition string
	Tag         string
	ShowTag     bool
}

// Render builds "{verb} ${amount} {preposition}" with the absolute amount
// and no decimal places.
func (p Phrase) Render(amount float64) string {
	return fmt.Sprintf("%s %s %s", p.Verb, FormatAmount(amount, true), p.Preposition)
}

// RenderTag returns " (inflow)" / " (outflow)" when the tag applies, else "".
func (p Phrase) RenderTag() string {
	if !p.ShowTag {
		return ""
	}
	return " (" + p.Tag + ")"
}

// Vocabulary holds the per-call-site verb strings. The preposition for the
// refund/earn branches is always "from" and for the return branch always
// "to"; only the spend preposition varies ("for" in prose, "to" in lists).
type Vocabulary struct {
	Spend     string
	Refund    string
	Earn      string
	Return    string
	SpendPrep string
}

// Call-site vocabularies. The sign/kind decision is shared; these only
// swap the verbs.
var (
	// Transactions phrases a single prospective amount ("you will spend
	// $40 for ...").
	Transactions = Vocabulary{Spend: "spend", Refund: "be refunded", Earn: "receive", Return: "return", SpendPrep: "for"}

	// TransactionLists phrases a past row ("$40 was paid to ...").
	TransactionLists = Vocabulary{Spend: "paid to", Refund: "refunded from", Earn: "received from", Return: "returned to", SpendPrep: "to"}

	// Forecasts phrases a projected amount ("expect to spend / earn ...").
	Forecasts = Vocabulary{Spend: "spend", Refund: "receive", Earn: "earn", Return: "return", SpendPrep: "for"}
)

// Phrase resolves an amount against this vocabulary. The parenthetical tag
// is only shown for the abnormal branches: an inflow on an expense category
// or an outflow on an income category.
func (v Vocabulary) Phrase(amount float64, isIncome bool) Phrase {
	switch Resolve(amount, isIncome) {
	case Refund:
		return Phrase{Verb: v.Refund, Preposition: "from", Tag: "inflow", ShowTag: true}
	case Earn:
		return Phrase{Verb: v.Earn, Preposition: "from"}
	case Return:
		return Phrase{Verb: v.Return, Preposition: "to", Tag: "outflow", ShowTag: true}
	default:
		return Phrase{Verb: v.Spend, Preposition: v.SpendPrep}
	}
}

// FormatAmount renders the absolute amount with no decimal places,
// prefixed with "$" unless the caller's template already supplies one.
func FormatAmount(amount float64, withDollar bool) string {
	s := fmt.Sprintf("%.0f", math.Abs(amount))
	if withDollar {
		return "$" + s
	}
	return s
}

var emptyParens = regexp.MustCompile(`\s*\(\)`)

// StripEmptyParens removes accidental empty "()" left behind when a
// template renders a direction tag that turned out to be blank.
func StripEmptyParens(s string) string {
	return strings.TrimRight(emptyParens.ReplaceAllString(s, ""), " ")
}
