// Package forecast transforms tables of per-category forecast rows between
// their stored shape and their display shape. Stored parent totals overlap
// their children; Decompose subtracts the children out so every row is a
// non-overlapping residual, and Consolidate folds a complete set of child
// rows back into a single parent rollup for compact display views.
//
// The two operations are order-sensitive: Decompose must run exactly once,
// before any Consolidate. Rows carry a Decomposed flag so a second
// decomposition is rejected instead of silently corrupting totals.
package forecast

import (
	"sort"
	"time"

	apperrors "penny/internal/errors"
	"penny/internal/taxonomy"
)

// Granularity anchors a forecast period to a week or month start.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// Valid reports whether g is a known granularity.
func (g Granularity) Valid() bool {
	return g == GranularityWeekly || g == GranularityMonthly
}

// Row is one forecast entry for (user, category, period).
type Row struct {
	UserID      uint      `json:"user_id"`
	CategoryID  int       `json:"category_id"`
	PeriodStart time.Time `json:"period_start"`
	Amount      float64   `json:"forecasted_amount"`

	// OriginalAmount preserves the stored parent total across
	// decomposition, so a later consolidation can restore it.
	OriginalAmount *float64 `json:"original_forecasted_amount,omitempty"`

	// Decomposed marks rows that already went through Decompose.
	Decomposed bool `json:"-"`

	// Category is the display name, filled at retrieval time.
	Category string `json:"category,omitempty"`
}

// consolidateRowThreshold is the table size above which complete child sets
// are always rolled up into their parent for display.
const consolidateRowThreshold = 10

type groupKey struct {
	userID uint
	period int64
}

func validate(rows []Row) error {
	for _, r := range rows {
		if r.PeriodStart.IsZero() {
			return apperrors.ErrMissingPeriod
		}
	}
	return nil
}

// Decompose subtracts each parent category's children sums out of the
// stored parent totals, per (user, period) group. Children missing from a
// group count as zero. The stored total is preserved in OriginalAmount and
// every output row is flagged Decomposed; feeding already-decomposed rows
// back in returns ErrAlreadyDecomposed. A table with no parent/child
// overlap comes back unchanged apart from the flag.
func Decompose(tax *taxonomy.Taxonomy, rows []Row) ([]Row, error) {
	if err := validate(rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Decomposed {
			return nil, apperrors.ErrAlreadyDecomposed
		}
	}

	out := make([]Row, len(rows))
	copy(out, rows)

	// Index row positions per (user, period) group.
	groups := make(map[groupKey]map[int]int)
	for i, r := range out {
		key := groupKey{r.UserID, r.PeriodStart.Unix()}
		if groups[key] == nil {
			groups[key] = make(map[int]int)
		}
		groups[key][r.CategoryID] = i
	}

	for _, byCategory := range groups {
		for categoryID, idx := range byCategory {
			children := tax.ChildrenOf(categoryID)
			if len(children) == 0 {
				continue
			}

			var childrenSum float64
			for _, child := range children {
				if childIdx, ok := byCategory[child]; ok {
					childrenSum += out[childIdx].Amount
				}
			}

			stored := out[idx].Amount
			out[idx].OriginalAmount = &stored
			out[idx].Amount = stored - childrenSum
		}
	}

	for i := range out {
		out[i].Decomposed = true
	}

	sortRows(tax, out)
	return out, nil
}

// Consolidate replaces every complete set of child rows with a single
// parent rollup row, per period group. A parent consolidates only when all
// of its children are present in that group — partial child sets are left
// alone, so a filtered view never shows a misleadingly small parent total —
// and only when the table is large (> consolidateRowThreshold rows) or the
// parent has no row anywhere in the input. The rollup amount is the
// parent's preserved OriginalAmount when its row is present and carries
// one, else the sum of the children. Returns the ids of the parents
// synthesized this way so renderers treat them as leaf-equivalent rows.
func Consolidate(tax *taxonomy.Taxonomy, rows []Row) ([]Row, []int, error) {
	if len(rows) == 0 {
		return []Row{}, nil, nil
	}
	if err := validate(rows); err != nil {
		return nil, nil, err
	}

	presentAnywhere := make(map[int]bool, len(rows))
	for _, r := range rows {
		presentAnywhere[r.CategoryID] = true
	}

	// Group row positions by period.
	periods := make(map[int64]map[int]int)
	for i, r := range rows {
		p := r.PeriodStart.Unix()
		if periods[p] == nil {
			periods[p] = make(map[int]int)
		}
		periods[p][r.CategoryID] = i
	}

	drop := make(map[int]bool)
	var synthesized []Row
	var consolidatedIDs []int

	for _, byCategory := range periods {
		for _, parentID := range tax.ParentIDs() {
			children := tax.ChildrenOf(parentID)
			if len(children) == 0 {
				continue
			}

			complete := true
			for _, child := range children {
				if _, ok := byCategory[child]; !ok {
					complete = false
					break
				}
			}
			if !complete {
				continue
			}
			if len(rows) <= consolidateRowThreshold && presentAnywhere[parentID] {
				continue
			}

			var childrenSum float64
			for _, child := range children {
				childrenSum += rows[byCategory[child]].Amount
			}

			rollup := Row{
				CategoryID: parentID,
				Amount:     childrenSum,
				Category:   tax.DisplayName(parentID),
			}
			first := rows[byCategory[children[0]]]
			rollup.UserID = first.UserID
			rollup.PeriodStart = first.PeriodStart
			rollup.Decomposed = first.Decomposed

			if parentIdx, ok := byCategory[parentID]; ok {
				parentRow := rows[parentIdx]
				if parentRow.OriginalAmount != nil {
					original := *parentRow.OriginalAmount
					rollup.Amount = original
					rollup.OriginalAmount = &original
				}
				drop[parentIdx] = true
			}
			for _, child := range children {
				drop[byCategory[child]] = true
			}

			synthesized = append(synthesized, rollup)
			consolidatedIDs = append(consolidatedIDs, parentID)
		}
	}

	out := make([]Row, 0, len(rows))
	for i, r := range rows {
		if !drop[i] {
			out = append(out, r)
		}
	}
	out = append(out, synthesized...)

	sortRows(tax, out)
	sort.Ints(consolidatedIDs)
	return out, consolidatedIDs, nil
}

// Total sums the amounts of a row slice.
func Total(rows []Row) float64 {
	var total float64
	for _, r := range rows {
		total += r.Amount
	}
	return total
}

// sortRows orders rows for stable display: user, then period, then the
// taxonomy's sort key.
func sortRows(tax *taxonomy.Taxonomy, rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if !a.PeriodStart.Equal(b.PeriodStart) {
			return a.PeriodStart.Before(b.PeriodStart)
		}
		ca, aok := tax.Lookup(a.CategoryID)
		cb, bok := tax.Lookup(b.CategoryID)
		if aok && bok && ca.SortKey != cb.SortKey {
			return ca.SortKey < cb.SortKey
		}
		return a.CategoryID < b.CategoryID
	})
}
