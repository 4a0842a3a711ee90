package analysis

import (
	"regexp"
	"strings"
)

// Caps on per-clause and document-level extraction results.
const (
	maxKeyTerms               = 10
	maxAmounts                = 5
	maxDates                  = 5
	maxParties                = 10
	maxFinancialAmounts       = 20
	maxTerminationConditions  = 5
	maxIPRights               = 5
	maxConditionLength        = 200
	maxSectionLength          = 1000
	maxConfidentialityExcerpt = 500
)

// Extractor assigns clause categories and pulls risk indicators, key terms,
// amounts, and dates out of clause content. It also runs the document-level
// dimensions pass.
type Extractor struct {
	catalog *Catalog
}

// NewExtractor creates an extractor reading the given catalog.
func NewExtractor(catalog *Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Enrich fills the category and extraction fields of a clause skeleton and
// returns the completed clause.
func (e *Extractor) Enrich(clause Clause) Clause {
	clause.Category = e.Categorize(clause.Title, clause.Content)
	clause.RiskIndicators = e.RiskIndicators(clause.Content)
	clause.KeyTerms = e.KeyTerms(clause.Content)
	clause.Amounts = e.Amounts(clause.Content)
	clause.Dates = e.Dates(clause.Content)
	return clause
}

// Categorize scores every category's keyword list against title+content and
// returns the first strictly-highest scorer, or general when nothing scores.
func (e *Extractor) Categorize(title, content string) ClauseCategory {
	combined := strings.ToLower(title + " " + content)

	best := CategoryGeneral
	bestScore := 0
	for _, rule := range e.catalog.categories {
		score := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(combined, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule.Category
		}
	}

	return best
}

// RiskIndicators returns the set of clause-level risk tags whose trigger
// patterns match the content. Each tag contributes at most once.
func (e *Extractor) RiskIndicators(content string) []RiskType {
	var indicators []RiskType
	for _, trigger := range e.catalog.clauseTriggers {
		for _, re := range trigger.Patterns {
			if re.MatchString(content) {
				indicators = append(indicators, trigger.Risk)
				break
			}
		}
	}
	return indicators
}

// KeyTerms returns legal vocabulary terms contained in the content, in
// vocabulary order, capped at 10.
func (e *Extractor) KeyTerms(content string) []string {
	contentLower := strings.ToLower(content)
	var terms []string
	for _, term := range e.catalog.legalTerms {
		if strings.Contains(contentLower, term) {
			terms = append(terms, term)
			if len(terms) >= maxKeyTerms {
				break
			}
		}
	}
	return terms
}

// Amounts extracts monetary amounts from clause content, capped at 5.
func (e *Extractor) Amounts(content string) []string {
	return collectMatches(e.catalog.amountPatterns, content, maxAmounts)
}

// Dates extracts date strings from clause content, capped at 5.
func (e *Extractor) Dates(content string) []string {
	return collectMatches(e.catalog.datePatterns, content, maxDates)
}

// collectMatches gathers matches across pattern families in family order,
// first-found order within a family, up to limit results.
func collectMatches(patterns []*regexp.Regexp, content string, limit int) []string {
	var results []string
	for _, re := range patterns {
		for _, m := range re.FindAllString(content, -1) {
			results = append(results, m)
			if len(results) >= limit {
				return results
			}
		}
	}
	return results
}

// Dimensions runs the document-level extraction pass, producing the broader
// structured summary of parties, money, duration, jurisdiction, termination
// conditions, and IP mentions.
func (e *Extractor) Dimensions(text string) Dimensions {
	dims := Dimensions{}

	dims.Parties = e.extractParties(text)
	dims.FinancialAmounts = e.extractFinancialAmounts(text)

	if m := e.catalog.duration.FindStringSubmatch(text); m != nil {
		dims.Duration = m[1] + " " + m[2]
	}

	if m := e.catalog.jurisdiction.FindStringSubmatch(text); m != nil {
		place := strings.TrimSpace(m[1])
		dims.Jurisdiction = place
		dims.GoverningLaw = place
	}

	if section, ok := e.extractSection(text, []string{"termination", "terminate"}); ok {
		dims.TerminationConditions = e.extractTerminationConditions(section)
	}

	dims.IPRights = e.extractIPRights(text)

	if section, ok := e.extractSection(text, []string{"confidential", "non-disclosure", "nda"}); ok {
		dims.ConfidentialityTerms = []string{truncate(section, maxConfidentialityExcerpt)}
	}

	return dims
}

func (e *Extractor) extractParties(text string) []string {
	var parties []string
	seen := make(map[string]bool)
	for _, re := range e.catalog.partyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, group := range m[1:] {
				party := strings.TrimSpace(group)
				if party == "" || seen[party] {
					continue
				}
				seen[party] = true
				parties = append(parties, party)
			}
		}
	}
	if len(parties) > maxParties {
		parties = parties[:maxParties]
	}
	return parties
}

func (e *Extractor) extractFinancialAmounts(text string) []string {
	var amounts []string
	for _, m := range e.catalog.financialAmount.FindAllStringSubmatch(text, -1) {
		amounts = append(amounts, m[1])
		if len(amounts) >= maxFinancialAmounts {
			break
		}
	}
	return amounts
}

func (e *Extractor) extractTerminationConditions(section string) []string {
	var conditions []string
	for _, m := range e.catalog.terminationCond.FindAllStringSubmatch(section, -1) {
		conditions = append(conditions, truncate(strings.TrimSpace(m[1]), maxConditionLength))
		if len(conditions) >= maxTerminationConditions {
			break
		}
	}
	return conditions
}

func (e *Extractor) extractIPRights(text string) []string {
	var rights []string
	for _, m := range e.catalog.ipRights.FindAllStringSubmatch(text, -1) {
		rights = append(rights, truncate(strings.TrimSpace(m[1]), maxConditionLength))
		if len(rights) >= maxIPRights {
			break
		}
	}
	return rights
}

// extractSection returns the span from the first heading-ish line containing
// one of the topic keywords up to the next decimal heading or document end,
// capped at 1000 bytes.
func (e *Extractor) extractSection(text string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		re, ok := e.catalog.sectionHeadings[keyword]
		if !ok {
			continue
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		end := len(text)
		if next := e.catalog.nextSection.FindStringIndex(text[loc[1]:]); next != nil {
			end = loc[1] + next[0]
		}

		section := strings.TrimSpace(text[loc[0]:end])
		if section == "" {
			continue
		}
		return truncate(section, maxSectionLength), true
	}
	return "", false
}
