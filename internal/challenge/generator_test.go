package challenge

import (
	"testing"

	"github.com/delbyte/codeolympics/internal/models"
)

func titleSet(parts []models.ChallengePart) map[string]bool {
	set := make(map[string]bool, len(parts))
	for _, p := range parts {
		set[p.Title] = true
	}
	return set
}

func TestGenerateDrawsFromCatalogs(t *testing.T) {
	gen := NewGenerator()
	constraints := titleSet(CoreConstraints)
	budgets := titleSet(LineBudgets)
	domains := titleSet(ProjectDomains)

	for i := 0; i < 10000; i++ {
		ch := gen.Generate()
		if !constraints[ch.Constraint.Title] {
			t.Fatalf("draw %d: constraint %q not in catalog", i, ch.Constraint.Title)
		}
		if !budgets[ch.Budget.Title] {
			t.Fatalf("draw %d: budget %q not in catalog", i, ch.Budget.Title)
		}
		if !domains[ch.Domain.Title] {
			t.Fatalf("draw %d: domain %q not in catalog", i, ch.Domain.Title)
		}
	}
}

func TestGenerateApproximatelyUniform(t *testing.T) {
	gen := NewGenerator()
	const draws = 40000

	constraintCounts := map[string]int{}
	budgetCounts := map[string]int{}
	domainCounts := map[string]int{}
	for i := 0; i < draws; i++ {
		ch := gen.Generate()
		constraintCounts[ch.Constraint.Title]++
		budgetCounts[ch.Budget.Title]++
		domainCounts[ch.Domain.Title]++
	}

	check := func(name string, counts map[string]int, options int) {
		expected := draws / options
		// 30% tolerance is far outside any plausible sampling noise at this
		// sample size, while still catching a systematically skewed draw.
		low, high := expected*7/10, expected*13/10
		if len(counts) != options {
			t.Fatalf("%s: only %d of %d options ever drawn", name, len(counts), options)
		}
		for title, count := range counts {
			if count < low || count > high {
				t.Fatalf("%s: %q drawn %d times, expected within [%d, %d]", name, title, count, low, high)
			}
		}
	}

	check("constraints", constraintCounts, len(CoreConstraints))
	check("budgets", budgetCounts, len(LineBudgets))
	check("domains", domainCounts, len(ProjectDomains))
}

func TestGenerateReachesAllCombinations(t *testing.T) {
	gen := NewGenerator()
	combos := map[string]bool{}
	for i := 0; i < 50000; i++ {
		ch := gen.Generate()
		combos[ch.Constraint.Title+"|"+ch.Budget.Title+"|"+ch.Domain.Title] = true
	}
	if len(combos) != len(CoreConstraints)*len(LineBudgets)*len(ProjectDomains) {
		t.Fatalf("expected all 640 combinations reachable, saw %d", len(combos))
	}
}
