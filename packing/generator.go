package packing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const maxListLength = 100

// Generator produces packing lists from trip parameters. The zero value is
// not usable; construct with NewGenerator. A Generator is safe for
// concurrent use.
type Generator struct {
	catalog []CatalogItem
	rules   []ScoreRule
	custom  *RuleEngine
	now     func() time.Time
	newID   func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog replaces the built-in item catalog.
func WithCatalog(catalog []CatalogItem) Option {
	return func(g *Generator) { g.catalog = catalog }
}

// WithScoreRules replaces the built-in scoring table.
func WithScoreRules(rules []ScoreRule) Option {
	return func(g *Generator) { g.rules = rules }
}

// WithCustomRules attaches a custom-rule engine whose adjustments are added
// to every item's score.
func WithCustomRules(engine *RuleEngine) Option {
	return func(g *Generator) { g.custom = engine }
}

// WithClock overrides the clock used by seasonal scoring rules.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDFunc overrides generated item ID creation.
func WithIDFunc(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// NewGenerator builds a Generator with the default catalog and rule table.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		catalog: Catalog(),
		rules:   DefaultScoreRules(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a packing list for the trip. It never panics and never
// returns an empty list: a malformed trip or a failing per-item step is
// degraded and recorded as a warning, and if generation fails wholesale a
// small fallback list is returned. Regeneration replaces the previous list
// outright; reconciling user edits is the caller's concern.
func (g *Generator) Generate(trip *TripParameters) (items []Item, warnings []Warning) {
	defer func() {
		if r := recover(); r != nil {
			items = g.fallbackList()
			warnings = append(warnings, Warning{
				Stage:   "generate",
				Message: fmt.Sprintf("generation failed, returning fallback list: %v", r),
			})
		}
	}()

	if trip == nil {
		return g.fallbackList(), []Warning{{Stage: "generate", Message: "trip parameters missing, returning fallback list"}}
	}

	params := *trip
	if params.DurationDays < 1 {
		params.DurationDays = 1
	}
	if params.Travelers < 1 {
		params.Travelers = 1
	}

	facts := Facts{
		Trip:    params,
		Climate: ResolveClimate(params.Destination),
		Month:   g.now().Month(),
	}

	items = make([]Item, 0, len(g.catalog))
	for _, candidate := range g.catalog {
		item, warns, ok := g.buildItem(candidate, facts)
		warnings = append(warnings, warns...)
		if ok {
			items = append(items, item)
		}
	}

	items = append(items, InjectFromFreeText(params.AdditionalInfo, params.DurationDays, g.newID)...)

	sortItems(items)

	if len(items) > maxListLength {
		items = items[:maxListLength]
	}

	if len(items) == 0 {
		items = g.fallbackList()
		warnings = append(warnings, Warning{
			Stage:   "generate",
			Message: "no catalog item cleared the inclusion threshold, returning fallback list",
		})
	}

	return items, warnings
}

// buildItem scores one candidate and, when it clears the threshold, fills in
// quantity and notes. A panic in any step degrades that step only.
func (g *Generator) buildItem(candidate CatalogItem, facts Facts) (item Item, warnings []Warning, ok bool) {
	score, scoreWarnings := g.scoreCandidate(candidate, facts)
	warnings = append(warnings, scoreWarnings...)
	if score <= inclusionThreshold {
		return Item{}, warnings, false
	}

	quantity := 1
	if q, err := safeInt(func() int { return ComputeQuantity(candidate.Name, facts) }); err != nil {
		warnings = append(warnings, Warning{Stage: "quantity", Item: candidate.Name, Message: err.Error()})
	} else {
		quantity = q
	}
	if quantity < 1 {
		quantity = 1
	}

	notes := ""
	if n, err := safeString(func() string { return GenerateNotes(candidate, facts) }); err != nil {
		warnings = append(warnings, Warning{Stage: "notes", Item: candidate.Name, Message: err.Error()})
	} else {
		notes = n
	}

	return Item{
		ID:            g.newID(),
		Name:          candidate.Name,
		Category:      candidate.Category,
		Essential:     candidate.Essential,
		Quantity:      quantity,
		Notes:         notes,
		PriorityScore: score,
	}, warnings, true
}

// scoreCandidate applies the rule table plus any custom-rule adjustments.
// A panicking rule table drops the item rather than aborting generation.
func (g *Generator) scoreCandidate(candidate CatalogItem, facts Facts) (score int, warnings []Warning) {
	s, err := safeInt(func() int { return ScoreItem(candidate, facts, g.rules) })
	if err != nil {
		return 0, []Warning{{Stage: "scoring", Item: candidate.Name, Message: err.Error()}}
	}
	score = s

	if g.custom != nil {
		adj, warns := g.custom.Adjustments(candidate, facts)
		warnings = append(warnings, warns...)
		score += adj
	}

	if score < 0 {
		score = 0
	}
	return score, warnings
}

// fallbackList is returned when generation cannot proceed at all.
func (g *Generator) fallbackList() []Item {
	return []Item{
		{ID: g.newID(), Name: "Clothing", Category: CategoryClothing, Essential: true, Quantity: 1},
		{ID: g.newID(), Name: "Personal Items", Category: CategoryToiletries, Essential: true, Quantity: 1},
		{ID: g.newID(), Name: "Travel Documents", Category: CategoryDocuments, Essential: true, Quantity: 1},
	}
}

// sortItems orders essential items first, then by descending score, then
// alphabetically by category for a stable presentation.
func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Essential != b.Essential {
			return a.Essential
		}
		if a.PriorityScore != b.PriorityScore {
			return a.PriorityScore > b.PriorityScore
		}
		return a.Category < b.Category
	})
}

func safeInt(fn func() int) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return fn(), nil
}

func safeString(fn func() string) (v string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return fn(), nil
}
