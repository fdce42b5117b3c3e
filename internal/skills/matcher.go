// Package skills extracts categorized skill keywords from free text and
// computes which of a job's skills a resume lacks.
//
// Matching is a raw case-insensitive substring test, so the keyword "go"
// also matches "going" and "mango".
package skills

import (
	"slices"
	"strings"

	"radar/internal/domain"
)

// Matcher runs keyword extraction over a fixed taxonomy.
type Matcher struct {
	taxonomy Taxonomy
}

// NewMatcher returns a Matcher over t.
func NewMatcher(t Taxonomy) *Matcher {
	return &Matcher{taxonomy: t}
}

// Taxonomy returns the taxonomy the matcher was built with.
func (m *Matcher) Taxonomy() Taxonomy { return m.taxonomy }

// Extract returns, per category, the keywords contained in text in
// taxonomy order. Categories without matches are omitted.
func (m *Matcher) Extract(text string) domain.SkillSet {
	lower := strings.ToLower(text)
	out := make(domain.SkillSet)
	for _, c := range m.taxonomy.Categories {
		var found []string
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			out[c.Name] = found
		}
	}
	return out
}

// Compare returns, per job category, the job keywords missing from the
// same resume category. Resume-only categories are ignored and empty
// results omitted.
func (m *Matcher) Compare(resume, job domain.SkillSet) domain.SkillSet {
	return Missing(resume, job)
}

// Missing is the taxonomy-independent set difference behind Compare.
func Missing(resume, job domain.SkillSet) domain.SkillSet {
	out := make(domain.SkillSet)
	for category, jobKeywords := range job {
		have := resume[category]
		var missing []string
		for _, kw := range jobKeywords {
			if !slices.Contains(have, kw) {
				missing = append(missing, kw)
			}
		}
		if len(missing) > 0 {
			out[category] = missing
		}
	}
	return out
}

// Ordered walks set in taxonomy order, calling fn for each present category.
// Categories unknown to the taxonomy follow in lexical order.
func (m *Matcher) Ordered(set domain.SkillSet, fn func(category string, keywords []string)) {
	seen := make(map[string]struct{}, len(set))
	for _, c := range m.taxonomy.Categories {
		if kws, ok := set[c.Name]; ok {
			fn(c.Name, kws)
			seen[c.Name] = struct{}{}
		}
	}
	var rest []string
	for name := range set {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		fn(name, set[name])
	}
}
