package analysis

import (
	"fmt"
	"regexp"
)

// Catalog holds every compiled pattern table the pipeline consults. It is
// built once at process start and read concurrently without locking; nothing
// mutates it after construction.
type Catalog struct {
	headingPatterns  []*regexp.Regexp
	categories       []categoryRule
	clauseTriggers   []clauseTriggerSet
	riskPatterns     []riskPatternSet
	riskWeights      map[RiskType]float64
	protectiveChecks []protectiveCheckRule
	contractProfiles []contractProfile
	legalTerms       []string
	amountPatterns   []*regexp.Regexp
	datePatterns     []*regexp.Regexp
	partyPatterns    []*regexp.Regexp
	financialAmount  *regexp.Regexp
	duration         *regexp.Regexp
	jurisdiction     *regexp.Regexp
	terminationCond  *regexp.Regexp
	ipRights         *regexp.Regexp
	nextSection      *regexp.Regexp
	sectionHeadings  map[string]*regexp.Regexp
	complianceNotes  map[string]string
}

// clauseTriggerSet is a compiled clause-level trigger family.
type clauseTriggerSet struct {
	Risk     RiskType
	Patterns []*regexp.Regexp
}

// riskPatternSet is a compiled document-wide risk family with its
// remediation text.
type riskPatternSet struct {
	Risk         RiskType
	Patterns     []*regexp.Regexp
	Description  string
	Suggestion   string
	LawReference string
}

// contractProfile is a compiled contract type profile.
type contractProfile struct {
	Type        string
	Keywords    []string
	Patterns    []*regexp.Regexp
	RawPatterns []string
	SubTypes    []string
}

// Topic keywords used for section scoped extraction in the dimensions pass.
var sectionTopicKeywords = []string{
	"termination", "terminate", "confidential", "non-disclosure", "nda",
}

// NewCatalog compiles all static pattern tables. A malformed pattern is a
// programming error in the tables, so compilation failure is fatal to the
// caller rather than something to recover from.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		categories:       defaultCategoryRules(),
		riskWeights:      defaultRiskWeights(),
		protectiveChecks: defaultProtectiveCheckRules(),
		legalTerms:       legalTermVocabulary,
		sectionHeadings:  make(map[string]*regexp.Regexp),
		complianceNotes:  defaultComplianceNotes(),
	}

	var err error
	if c.headingPatterns, err = compileAll(headingPatternRules, ""); err != nil {
		return nil, fmt.Errorf("heading patterns: %w", err)
	}

	for _, rule := range defaultClauseTriggerRules() {
		patterns, err := compileAll(rule.Patterns, "(?i)")
		if err != nil {
			return nil, fmt.Errorf("clause trigger %q: %w", rule.Risk, err)
		}
		c.clauseTriggers = append(c.clauseTriggers, clauseTriggerSet{
			Risk:     rule.Risk,
			Patterns: patterns,
		})
	}

	for _, rule := range defaultRiskPatternRules() {
		patterns, err := compileAll(rule.Patterns, "(?i)")
		if err != nil {
			return nil, fmt.Errorf("risk pattern %q: %w", rule.Risk, err)
		}
		c.riskPatterns = append(c.riskPatterns, riskPatternSet{
			Risk:         rule.Risk,
			Patterns:     patterns,
			Description:  rule.Description,
			Suggestion:   rule.Suggestion,
			LawReference: rule.LawReference,
		})
	}

	for _, rule := range defaultContractProfiles() {
		patterns, err := compileAll(rule.Patterns, "(?i)")
		if err != nil {
			return nil, fmt.Errorf("contract profile %q: %w", rule.Type, err)
		}
		c.contractProfiles = append(c.contractProfiles, contractProfile{
			Type:        rule.Type,
			Keywords:    rule.Keywords,
			Patterns:    patterns,
			RawPatterns: rule.Patterns,
			SubTypes:    rule.SubTypes,
		})
	}

	if c.amountPatterns, err = compileAll(amountPatternRules, ""); err != nil {
		return nil, fmt.Errorf("amount patterns: %w", err)
	}
	if c.datePatterns, err = compileAll(datePatternRules, ""); err != nil {
		return nil, fmt.Errorf("date patterns: %w", err)
	}
	if c.partyPatterns, err = compileAll(partyPatternRules, ""); err != nil {
		return nil, fmt.Errorf("party patterns: %w", err)
	}

	singles := []struct {
		name    string
		pattern string
		dst     **regexp.Regexp
	}{
		{"financial amount", financialAmountPatternRule, &c.financialAmount},
		{"duration", durationPatternRule, &c.duration},
		{"jurisdiction", jurisdictionPatternRule, &c.jurisdiction},
		{"termination condition", terminationCondPatternRule, &c.terminationCond},
		{"ip rights", ipRightsPatternRule, &c.ipRights},
		{"next section", nextSectionPatternRule, &c.nextSection},
	}
	for _, s := range singles {
		re, err := regexp.Compile(s.pattern)
		if err != nil {
			return nil, fmt.Errorf("%s pattern: %w", s.name, err)
		}
		*s.dst = re
	}

	for _, keyword := range sectionTopicKeywords {
		re, err := regexp.Compile(fmt.Sprintf(sectionHeadingPatternRule, regexp.QuoteMeta(keyword)))
		if err != nil {
			return nil, fmt.Errorf("section heading pattern %q: %w", keyword, err)
		}
		c.sectionHeadings[keyword] = re
	}

	return c, nil
}

// MustCatalog builds the default catalog or panics. Intended for tests and
// for startup paths that treat table errors as fatal.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func compileAll(patterns []string, prefix string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(prefix + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// WeightFor returns the risk weight for a type, defaulting to 5 when the
// type is not listed.
func (c *Catalog) WeightFor(risk RiskType) float64 {
	if w, ok := c.riskWeights[risk]; ok {
		return w
	}
	return 5
}

// HasWeight reports whether a risk type has an explicit weight entry.
func (c *Catalog) HasWeight(risk RiskType) bool {
	_, ok := c.riskWeights[risk]
	return ok
}

// RiskInfo returns the compiled pattern set for a risk type, if any.
func (c *Catalog) RiskInfo(risk RiskType) (riskPatternSet, bool) {
	for _, set := range c.riskPatterns {
		if set.Risk == risk {
			return set, true
		}
	}
	return riskPatternSet{}, false
}

// ComplianceNotes returns the statutory compliance reminder table.
func (c *Catalog) ComplianceNotes() map[string]string {
	return c.complianceNotes
}
