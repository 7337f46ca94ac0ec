// Package taxonomy models the static three-level spending/income category
// hierarchy: leaf -> parent -> top-level. The catalog is compiled in and
// never mutated at runtime; a change requires a code change, not a database
// write. All lookups are permissive: unknown ids return ok=false or an empty
// slice, never an error, so formatting stays robust against partially
// matched ids.
package taxonomy

import (
	"sort"
	"strings"
	"sync"
)

// Uncategorized is the sentinel id for transactions the categorizer could
// not place.
const Uncategorized = -1

// Category is an immutable reference entity in the taxonomy.
type Category struct {
	ID            int      `json:"id"`
	DisplayName   string   `json:"display_name"`
	QualifiedName string   `json:"qualified_name,omitempty"`
	SortKey       int      `json:"sort_key"`
	IsIncome      bool     `json:"is_income"`
	Attributes    []string `json:"attributes,omitempty"`

	// Descriptive phrases used for semantic matching of merchant text.
	// Secondary expansions are always served together with the primary ones.
	PrimaryExpansions   []string `json:"primary_expansions,omitempty"`
	SecondaryExpansions []string `json:"secondary_expansions,omitempty"`
}

// Qualified returns the "Parent: Child" display name, falling back to the
// plain display name for categories without a qualified form.
func (c Category) Qualified() string {
	if c.QualifiedName != "" {
		return c.QualifiedName
	}
	return c.DisplayName
}

// HasAttribute reports whether the category carries the given behavior flag.
func (c Category) HasAttribute(attr string) bool {
	for _, a := range c.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// ExpansionTier selects which expansion phrase list to serve.
type ExpansionTier string

const (
	TierPrimary   ExpansionTier = "primary"
	TierSecondary ExpansionTier = "secondary"
)

// Taxonomy is the loaded category hierarchy with all relationship lookups
// pre-indexed. Build it once with New (or use Default); it is safe for
// concurrent reads.
type Taxonomy struct {
	byID     map[int]Category
	byName   map[string]int
	parentOf map[int]int
	topOf    map[int]int
	children map[int][]int
	leafIDs  []int
}

var (
	defaultTaxonomy *Taxonomy
	defaultOnce     sync.Once
)

// Default returns the process-wide taxonomy built from the compiled-in
// catalog.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTaxonomy = New()
	})
	return defaultTaxonomy
}

// New builds a Taxonomy from the static catalog, precomputing the
// parent/top-level/children indexes so every lookup is O(1) instead of a
// membership scan.
func New() *Taxonomy {
	t := &Taxonomy{
		byID:     make(map[int]Category, len(catalog)),
		byName:   make(map[string]int, len(catalog)),
		parentOf: make(map[int]int),
		topOf:    make(map[int]int),
		children: make(map[int][]int, len(parentChildren)),
	}

	for _, c := range catalog {
		t.byID[c.ID] = c
		// Later catalog entries win for shared names ("Bills", "Income").
		t.byName[lowerName(c.DisplayName)] = c.ID
	}

	for top, members := range topLevelMembers {
		t.topOf[top] = top
		for _, m := range members {
			t.topOf[m] = top
		}
	}

	for parent, kids := range parentChildren {
		nonSelf := make([]int, 0, len(kids))
		for _, k := range kids {
			if k != parent {
				nonSelf = append(nonSelf, k)
				t.parentOf[k] = parent
			}
		}
		t.children[parent] = nonSelf
	}

	// Leaves that belong to no budget grouping directly inherit their
	// parent's top-level.
	for leaf, parent := range t.parentOf {
		if _, ok := t.topOf[leaf]; !ok {
			if top, ok := t.topOf[parent]; ok {
				t.topOf[leaf] = top
			}
		}
	}

	// Flattened leaf set: a parent with no sub-split contributes itself,
	// one with children contributes only the non-self ids.
	for _, parent := range sortedParents() {
		kids := parentChildren[parent]
		if len(kids) == 1 {
			t.leafIDs = append(t.leafIDs, kids[0])
			continue
		}
		for _, k := range kids {
			if k != parent {
				t.leafIDs = append(t.leafIDs, k)
			}
		}
	}

	return t
}

// sortedParents returns parentChildren keys in the catalog's enumeration
// order, with the keys missing from parentIDs (single-entry parents kept
// only in the children table) appended after.
func sortedParents() []int {
	seen := make(map[int]bool, len(parentIDs))
	out := make([]int, 0, len(parentChildren))
	for _, id := range parentIDs {
		if _, ok := parentChildren[id]; ok {
			out = append(out, id)
			seen[id] = true
		}
	}
	for _, c := range catalog {
		if _, ok := parentChildren[c.ID]; ok && !seen[c.ID] {
			out = append(out, c.ID)
			seen[c.ID] = true
		}
	}
	return out
}

// Lookup returns the category for id.
func (t *Taxonomy) Lookup(id int) (Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// IDByName resolves a display name (case-insensitive) to a category id.
func (t *Taxonomy) IDByName(name string) (int, bool) {
	id, ok := t.byName[lowerName(name)]
	return id, ok
}

// DisplayName returns the display name for id, or "Unknown" for ids outside
// the taxonomy.
func (t *Taxonomy) DisplayName(id int) string {
	if c, ok := t.byID[id]; ok {
		return c.DisplayName
	}
	return "Unknown"
}

// IsIncome reports whether id is an income category. Unknown ids are treated
// as expense.
func (t *Taxonomy) IsIncome(id int) bool {
	c, ok := t.byID[id]
	return ok && c.IsIncome
}

// ParentOf returns the parent of a leaf category. Parents and top-level
// categories have no entry here; use TopLevelOf to climb the rest of the way.
func (t *Taxonomy) ParentOf(id int) (int, bool) {
	p, ok := t.parentOf[id]
	return p, ok
}

// TopLevelOf returns the top-level ancestor of any category: itself for a
// top-level id, the budget-grouping membership for a parent, and the
// parent's grouping for a leaf. At most two hops. Transfer has no top-level
// home (it is excluded from budgets) and returns ok=false.
func (t *Taxonomy) TopLevelOf(id int) (int, bool) {
	top, ok := t.topOf[id]
	return top, ok
}

// ChildrenOf returns the child ids of a parent category, excluding the
// parent's own self-reference row. Parents with no sub-split and unknown ids
// return an empty slice.
func (t *Taxonomy) ChildrenOf(id int) []int {
	kids := t.children[id]
	out := make([]int, len(kids))
	copy(out, kids)
	return out
}

// LeafIDs returns the flattened leaf set across every parent.
func (t *Taxonomy) LeafIDs() []int {
	out := make([]int, len(t.leafIDs))
	copy(out, t.leafIDs)
	return out
}

// IncomeLeafIDs returns the leaf categories that represent income.
func (t *Taxonomy) IncomeLeafIDs() []int {
	var out []int
	for _, id := range t.leafIDs {
		if t.IsIncome(id) {
			out = append(out, id)
		}
	}
	return out
}

// TopLevelIDs returns the top-level category ids in display order.
func (t *Taxonomy) TopLevelIDs() []int {
	out := make([]int, len(topLevelIDs))
	copy(out, topLevelIDs)
	return out
}

// ParentIDs returns the mid-level category ids in catalog order.
func (t *Taxonomy) ParentIDs() []int {
	out := make([]int, len(parentIDs))
	copy(out, parentIDs)
	return out
}

// IsDiscretionary reports whether id counts as discretionary spending.
func (t *Taxonomy) IsDiscretionary(id int) bool {
	for _, d := range discretionaryIDs {
		if d == id {
			return true
		}
	}
	return false
}

// Categories returns the full catalog sorted by sort key. The slice is a
// copy; callers may reorder it freely.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortKey != out[j].SortKey {
			return out[i].SortKey < out[j].SortKey
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func lowerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Expansions returns the semantic-matching phrases for a leaf category. The
// secondary tier always includes the primary phrases; a category with no
// configured phrases falls back to its display name. Unknown ids return nil.
func (t *Taxonomy) Expansions(id int, tier ExpansionTier) []string {
	c, ok := t.byID[id]
	if !ok {
		return nil
	}

	primary := c.PrimaryExpansions
	if len(primary) == 0 {
		primary = []string{c.DisplayName}
	}

	if tier != TierSecondary {
		out := make([]string, len(primary))
		copy(out, primary)
		return out
	}

	out := make([]string, 0, len(c.SecondaryExpansions)+len(primary))
	out = append(out, c.SecondaryExpansions...)
	out = append(out, primary...)
	return out
}
