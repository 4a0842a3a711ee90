package analysis

// ContractAnalyzer orchestrates the full analysis pipeline: segmentation,
// clause enrichment, classification, dimension extraction, and risk
// assessment over a single text buffer.
type ContractAnalyzer struct {
	catalog    *Catalog
	segmenter  *Segmenter
	extractor  *Extractor
	classifier *Classifier
	assessor   *Assessor
}

// NewContractAnalyzer builds an analyzer with a freshly compiled catalog.
// A catalog compile failure is a construction error.
func NewContractAnalyzer() (*ContractAnalyzer, error) {
	catalog, err := NewCatalog()
	if err != nil {
		return nil, err
	}
	return NewContractAnalyzerWithCatalog(catalog), nil
}

// NewContractAnalyzerWithCatalog builds an analyzer around an existing
// catalog, letting callers share one compiled catalog across analyzers.
func NewContractAnalyzerWithCatalog(catalog *Catalog) *ContractAnalyzer {
	return &ContractAnalyzer{
		catalog:    catalog,
		segmenter:  NewSegmenter(catalog),
		extractor:  NewExtractor(catalog),
		classifier: NewClassifier(catalog),
		assessor:   NewAssessor(catalog),
	}
}

// Analyze runs the whole pipeline over one document. The result depends only
// on the input text, so identical input yields identical output.
func (a *ContractAnalyzer) Analyze(text string) *ContractAnalysis {
	clauses := a.segmenter.Segment(text)
	for i := range clauses {
		clauses[i] = a.extractor.Enrich(clauses[i])
	}

	return &ContractAnalysis{
		Clauses:        clauses,
		Classification: a.classifier.Classify(text),
		Risk:           a.assessor.Assess(text, clauses),
		Dimensions:     a.extractor.Dimensions(text),
	}
}

// ExtractClauses segments and enriches clauses without running the rest of
// the pipeline.
func (a *ContractAnalyzer) ExtractClauses(text string) []Clause {
	clauses := a.segmenter.Segment(text)
	for i := range clauses {
		clauses[i] = a.extractor.Enrich(clauses[i])
	}
	return clauses
}

// Classify runs only the contract type classification.
func (a *ContractAnalyzer) Classify(text string) Classification {
	return a.classifier.Classify(text)
}

// ClassificationScores returns the per-profile scoring breakdown.
func (a *ContractAnalyzer) ClassificationScores(text string) []TypeScore {
	return a.classifier.AllScores(text)
}

// AssessRisk runs segmentation plus the full risk assessment.
func (a *ContractAnalyzer) AssessRisk(text string) RiskReport {
	return a.assessor.Assess(text, a.ExtractClauses(text))
}

// ExtractDimensions runs only the document-level dimension pass.
func (a *ContractAnalyzer) ExtractDimensions(text string) Dimensions {
	return a.extractor.Dimensions(text)
}

// QuickClauseScore assesses one clause body in isolation.
func (a *ContractAnalyzer) QuickClauseScore(content string) (float64, RiskLevel, []RiskType) {
	return a.assessor.QuickClauseScore(content)
}

// ComplianceNotes exposes the catalog's jurisdictional compliance notes.
func (a *ContractAnalyzer) ComplianceNotes() map[string]string {
	return a.catalog.ComplianceNotes()
}

// CategorySummary counts enriched clauses per category.
func CategorySummary(clauses []Clause) map[ClauseCategory]int {
	summary := make(map[ClauseCategory]int)
	for _, clause := range clauses {
		summary[clause.Category]++
	}
	return summary
}

// AsMap renders an analysis as plain serializable values for boundaries that
// exchange generic JSON documents.
func (a *ContractAnalysis) AsMap() map[string]any {
	clauses := make([]map[string]any, 0, len(a.Clauses))
	for _, c := range a.Clauses {
		indicators := make([]string, 0, len(c.RiskIndicators))
		for _, r := range c.RiskIndicators {
			indicators = append(indicators, string(r))
		}
		clauses = append(clauses, map[string]any{
			"id":              c.ID,
			"title":           c.Title,
			"content":         c.Content,
			"category":        string(c.Category),
			"risk_indicators": indicators,
			"key_terms":       c.KeyTerms,
			"amounts":         c.Amounts,
			"dates":           c.Dates,
		})
	}

	findings := make([]map[string]any, 0, len(a.Risk.Findings))
	for _, f := range a.Risk.Findings {
		findings = append(findings, map[string]any{
			"clause_id":     f.ClauseID,
			"risk_type":     f.RiskType,
			"risk_level":    string(f.RiskLevel),
			"score":         f.Score,
			"description":   f.Description,
			"original_text": f.OriginalText,
			"suggestion":    f.Suggestion,
			"law_reference": f.LawReference,
		})
	}

	return map[string]any{
		"clauses": clauses,
		"classification": map[string]any{
			"contract_type":  a.Classification.ContractType,
			"confidence":     a.Classification.Confidence,
			"sub_type":       a.Classification.SubType,
			"key_indicators": a.Classification.KeyIndicators,
		},
		"risk_report": map[string]any{
			"overall_score":     a.Risk.OverallScore,
			"overall_level":     string(a.Risk.OverallLevel),
			"high_risk_count":   a.Risk.HighRiskCount,
			"medium_risk_count": a.Risk.MediumRiskCount,
			"low_risk_count":    a.Risk.LowRiskCount,
			"findings":          findings,
			"summary":           a.Risk.Summary,
		},
		"dimensions": map[string]any{
			"parties":                a.Dimensions.Parties,
			"financial_amounts":      a.Dimensions.FinancialAmounts,
			"duration":               a.Dimensions.Duration,
			"jurisdiction":           a.Dimensions.Jurisdiction,
			"governing_law":          a.Dimensions.GoverningLaw,
			"termination_conditions": a.Dimensions.TerminationConditions,
			"ip_rights":              a.Dimensions.IPRights,
			"confidentiality_terms":  a.Dimensions.ConfidentialityTerms,
		},
	}
}
