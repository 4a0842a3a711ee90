package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// Context window size around a document-level pattern match, and the cap on
// clause excerpts carried into findings.
const (
	riskContextWindow = 100
	maxFindingExcerpt = 200
)

// Assessor scores contract risk. It runs three passes (document patterns,
// clause indicators, missing protections) and aggregates the findings into
// a report.
type Assessor struct {
	catalog *Catalog
}

// NewAssessor creates an assessor reading the given catalog.
func NewAssessor(catalog *Catalog) *Assessor {
	return &Assessor{catalog: catalog}
}

// Assess runs the full risk assessment over the document text and the
// already-segmented clauses. Clauses may be nil for headingless documents.
func (a *Assessor) Assess(text string, clauses []Clause) RiskReport {
	var findings []RiskFinding
	findings = a.documentFindings(text, findings)
	for _, clause := range clauses {
		findings = a.clauseFindings(clause, findings)
	}
	findings = a.missingProtectionFindings(text, findings)
	return a.aggregate(findings)
}

// documentFindings scans the whole text with every risk pattern family and
// records one finding per distinct (risk type, context excerpt) pair.
func (a *Assessor) documentFindings(text string, findings []RiskFinding) []RiskFinding {
	for _, set := range a.catalog.riskPatterns {
		score := a.catalog.WeightFor(set.Risk)
		riskName := titleCase(string(set.Risk))
		for _, re := range set.Patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				finding := RiskFinding{
					ClauseID:     ClauseIDGeneral,
					RiskType:     riskName,
					RiskLevel:    ScoreToLevel(score),
					Score:        score,
					Description:  set.Description,
					OriginalText: strings.TrimSpace(contextWindow(text, loc[0], loc[1])),
					Suggestion:   set.Suggestion,
					LawReference: set.LawReference,
				}
				if !containsDocumentFinding(findings, finding) {
					findings = append(findings, finding)
				}
			}
		}
	}
	return findings
}

// clauseFindings converts a clause's pre-extracted risk indicators into
// findings. Indicators without a configured weight are clause-level context
// only and do not score.
func (a *Assessor) clauseFindings(clause Clause, findings []RiskFinding) []RiskFinding {
	for _, indicator := range clause.RiskIndicators {
		if !a.catalog.HasWeight(indicator) {
			continue
		}
		score := a.catalog.WeightFor(indicator)
		info, _ := a.catalog.RiskInfo(indicator)
		description := info.Description
		if description == "" {
			description = string(indicator)
		}

		finding := RiskFinding{
			ClauseID:     clause.ID,
			RiskType:     titleCase(string(indicator)),
			RiskLevel:    ScoreToLevel(score),
			Score:        score,
			Description:  description,
			OriginalText: truncate(clause.Content, maxFindingExcerpt),
			Suggestion:   info.Suggestion,
			LawReference: info.LawReference,
		}
		if !containsClauseFinding(findings, finding) {
			findings = append(findings, finding)
		}
	}
	return findings
}

// missingProtectionFindings flags protective clause families with no keyword
// hit anywhere in the document.
func (a *Assessor) missingProtectionFindings(text string, findings []RiskFinding) []RiskFinding {
	textLower := strings.ToLower(text)

	for _, check := range a.catalog.protectiveChecks {
		found := false
		for _, keyword := range check.Keywords {
			if strings.Contains(textLower, keyword) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		findings = append(findings, RiskFinding{
			ClauseID:     ClauseIDMissing,
			RiskType:     "Missing " + titleCase(check.Name),
			RiskLevel:    ScoreToLevel(check.Score),
			Score:        check.Score,
			Description:  check.Description,
			OriginalText: "[Not found in contract]",
			Suggestion:   check.Suggestion,
		})
	}
	return findings
}

// aggregate folds findings into the report: level counts, severity-adjusted
// average score, and a summary line.
func (a *Assessor) aggregate(findings []RiskFinding) RiskReport {
	if len(findings) == 0 {
		return RiskReport{
			OverallScore: 2.0,
			OverallLevel: RiskLevelLow,
			Findings:     []RiskFinding{},
			Summary:      "No significant risks found. Contract appears well-balanced.",
		}
	}

	var criticalCount, highCount, mediumCount, lowCount int
	total := 0.0
	for _, f := range findings {
		total += f.Score
		switch f.RiskLevel {
		case RiskLevelCritical:
			criticalCount++
		case RiskLevelHigh:
			highCount++
		case RiskLevelMedium:
			mediumCount++
		default:
			lowCount++
		}
	}

	avg := total / float64(len(findings))
	if criticalCount > 0 {
		avg = math.Min(10, avg+float64(criticalCount)*0.5)
	}
	if highCount > 2 {
		avg = math.Min(10, avg+0.5)
	}

	var summaryParts []string
	if criticalCount > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d critical risk(s) require immediate attention", criticalCount))
	}
	if highCount > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d high-risk clause(s) should be renegotiated", highCount))
	}
	if mediumCount > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d medium-risk item(s) to review", mediumCount))
	}
	summary := "Contract has acceptable risk levels."
	if len(summaryParts) > 0 {
		summary = strings.Join(summaryParts, ". ")
	}

	sorted := make([]RiskFinding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	return RiskReport{
		OverallScore:    math.Round(avg*10) / 10,
		OverallLevel:    ScoreToLevel(avg),
		HighRiskCount:   criticalCount + highCount,
		MediumRiskCount: mediumCount,
		LowRiskCount:    lowCount,
		Findings:        sorted,
		Summary:         summary,
	}
}

// QuickClauseScore assesses a single clause body in isolation. It returns the
// maximum configured weight among matched risk families, the corresponding
// level, and the matched risk types. A clean clause scores a baseline 2.0 LOW.
func (a *Assessor) QuickClauseScore(content string) (float64, RiskLevel, []RiskType) {
	var matched []RiskType
	for _, set := range a.catalog.riskPatterns {
		for _, re := range set.Patterns {
			if re.MatchString(content) {
				matched = append(matched, set.Risk)
				break
			}
		}
	}

	if len(matched) == 0 {
		return 2.0, RiskLevelLow, nil
	}

	maxScore := 0.0
	for _, risk := range matched {
		if w := a.catalog.WeightFor(risk); w > maxScore {
			maxScore = w
		}
	}
	return maxScore, ScoreToLevel(maxScore), matched
}

func containsDocumentFinding(findings []RiskFinding, f RiskFinding) bool {
	for _, existing := range findings {
		if existing.RiskType == f.RiskType && existing.OriginalText == f.OriginalText {
			return true
		}
	}
	return false
}

func containsClauseFinding(findings []RiskFinding, f RiskFinding) bool {
	for _, existing := range findings {
		if existing.ClauseID == f.ClauseID && existing.RiskType == f.RiskType {
			return true
		}
	}
	return false
}

// contextWindow widens [start,end) by the window size on both sides, clamped
// to the text and snapped back to rune boundaries.
func contextWindow(text string, start, end int) string {
	start -= riskContextWindow
	if start < 0 {
		start = 0
	}
	end += riskContextWindow
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return text[start:end]
}

// titleCase renders a snake_case identifier as a space-separated name with
// each word capitalized, e.g. "missing_liability_cap" -> "Missing Liability Cap".
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
