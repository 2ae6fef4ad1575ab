package packing

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// CustomRule is a caller-defined scoring adjustment. Expression is a CEL
// expression over the variables item, trip and climate; when it evaluates to
// true for a catalog item, Points is added to that item's score.
type CustomRule struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Points     int    `json:"points"`
	Active     bool   `json:"active"`
}

// RuleEngine compiles and evaluates custom scoring rules. Compiled programs
// are cached behind an RWMutex so evaluation is safe for concurrent readers
// while rules are added or updated.
type RuleEngine struct {
	env      *cel.Env
	store    RuleStore
	cache    RulesCache
	programs map[string]cel.Program
	mu       sync.RWMutex
}

// NewRuleEngine builds an engine over the given store and compiles every
// active rule in it. A rule that fails to compile fails construction; stores
// must not contain invalid expressions.
func NewRuleEngine(store RuleStore) (*RuleEngine, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("trip", cel.DynType),
		cel.Variable("climate", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	en := &RuleEngine{
		env:      env,
		store:    store,
		cache:    NewInMemoryRulesCache(DefaultCacheConfig()),
		programs: make(map[string]cel.Program),
	}

	if err := en.compileAll(); err != nil {
		return nil, fmt.Errorf("failed to compile custom rules: %w", err)
	}

	return en, nil
}

// Compile validates and compiles a single expression, caching the program.
func (en *RuleEngine) Compile(ruleID, expression string) error {
	prog, err := en.compile(expression)
	if err != nil {
		return err
	}

	en.mu.Lock()
	en.programs[ruleID] = prog
	en.mu.Unlock()

	return nil
}

// compile builds a program without installing it. A cost limit guards
// against runaway expressions.
func (en *RuleEngine) compile(expression string) (cel.Program, error) {
	ast, issues := en.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	prog, err := en.env.Program(ast, cel.CostLimit(1000000))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return prog, nil
}

func (en *RuleEngine) compileAll() error {
	rules, err := en.store.ListActive()
	if err != nil {
		return err
	}

	for _, r := range rules {
		if err := en.Compile(r.ID, r.Expression); err != nil {
			return fmt.Errorf("failed to compile rule %s: %w", r.ID, err)
		}
	}

	en.cache.Set(rules)
	return nil
}

// AddRule validates that the rule compiles, then persists it. If the store
// write fails the compiled program is removed again so the two stay in sync.
func (en *RuleEngine) AddRule(r *CustomRule) error {
	if _, err := en.store.Get(r.ID); err == nil {
		return fmt.Errorf("rule with ID %s already exists", r.ID)
	}

	if err := en.Compile(r.ID, r.Expression); err != nil {
		return fmt.Errorf("rule validation failed: %w", err)
	}

	if err := en.store.Add(r); err != nil {
		en.mu.Lock()
		delete(en.programs, r.ID)
		en.mu.Unlock()
		return err
	}

	en.cache.Invalidate()
	return nil
}

// UpdateRule recompiles the new expression before touching the store. The
// program is swapped in only after the store write succeeds, so a failed
// update leaves the previous expression in effect.
func (en *RuleEngine) UpdateRule(r *CustomRule) error {
	prog, err := en.compile(r.Expression)
	if err != nil {
		return fmt.Errorf("rule validation failed: %w", err)
	}

	if err := en.store.Update(r); err != nil {
		return err
	}

	en.mu.Lock()
	en.programs[r.ID] = prog
	en.mu.Unlock()

	en.cache.Invalidate()
	return nil
}

// DeleteRule removes the rule from the store and drops its program.
func (en *RuleEngine) DeleteRule(ruleID string) error {
	if err := en.store.Delete(ruleID); err != nil {
		return err
	}

	en.mu.Lock()
	delete(en.programs, ruleID)
	en.mu.Unlock()

	en.cache.Invalidate()
	return nil
}

// GetRule fetches a rule from the underlying store.
func (en *RuleEngine) GetRule(ruleID string) (*CustomRule, error) {
	return en.store.Get(ruleID)
}

// ListActive returns the active rules, preferring the cache.
func (en *RuleEngine) ListActive() ([]*CustomRule, error) {
	if rules := en.cache.Get(); rules != nil {
		return rules, nil
	}
	rules, err := en.store.ListActive()
	if err != nil {
		return nil, err
	}
	en.cache.Set(rules)
	return rules, nil
}

// Adjustments sums the points of every active rule that matches the item.
// A rule that fails to evaluate or yields a non-boolean contributes nothing
// and is reported as a warning; evaluation never aborts.
func (en *RuleEngine) Adjustments(item CatalogItem, f Facts) (int, []Warning) {
	rules, err := en.ListActive()
	if err != nil {
		return 0, []Warning{{Stage: "custom-rules", Item: item.Name, Message: err.Error()}}
	}

	activities := make([]string, len(f.Trip.Activities))
	for i, a := range f.Trip.Activities {
		activities[i] = string(a)
	}

	facts := map[string]any{
		"item": map[string]any{
			"name":      item.Name,
			"category":  item.Category,
			"essential": item.Essential,
		},
		"trip": map[string]any{
			"destination":    f.Trip.Destination,
			"tripTypes":      f.Trip.TripTypes,
			"activities":     activities,
			"duration":       f.Trip.DurationDays,
			"travelers":      f.Trip.Travelers,
			"genderSplit":    string(f.Trip.GenderSplit),
			"additionalInfo": f.Trip.AdditionalInfo,
		},
		"climate": string(f.Climate),
	}

	total := 0
	var warnings []Warning
	for _, r := range rules {
		en.mu.RLock()
		prog, exists := en.programs[r.ID]
		en.mu.RUnlock()

		if !exists {
			warnings = append(warnings, Warning{
				Stage:   "custom-rules",
				Item:    item.Name,
				Message: fmt.Sprintf("rule %s is not compiled", r.ID),
			})
			continue
		}

		out, _, err := prog.Eval(facts)
		if err != nil {
			warnings = append(warnings, Warning{
				Stage:   "custom-rules",
				Item:    item.Name,
				Message: fmt.Sprintf("rule %s: %v", r.ID, err),
			})
			continue
		}

		if matched, ok := out.Value().(bool); ok && matched {
			total += r.Points
		}
	}

	return total, warnings
}
