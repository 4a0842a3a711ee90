package analysis

// ClauseCategory identifies the topical category assigned to a clause.
type ClauseCategory string

const (
	CategoryPayment              ClauseCategory = "payment"
	CategoryTermination          ClauseCategory = "termination"
	CategoryConfidentiality      ClauseCategory = "confidentiality"
	CategoryLiability            ClauseCategory = "liability"
	CategoryIntellectualProperty ClauseCategory = "intellectual_property"
	CategoryNonCompete           ClauseCategory = "non_compete"
	CategoryArbitration          ClauseCategory = "arbitration"
	CategoryJurisdiction         ClauseCategory = "jurisdiction"
	CategoryWarranty             ClauseCategory = "warranty"
	CategoryForceMajeure         ClauseCategory = "force_majeure"
	CategoryRenewal              ClauseCategory = "renewal"
	CategoryNotice               ClauseCategory = "notice"
	CategoryAssignment           ClauseCategory = "assignment"
	CategoryAmendment            ClauseCategory = "amendment"
	CategoryDefinitions          ClauseCategory = "definitions"
	CategoryScope                ClauseCategory = "scope"

	// CategoryGeneral is the designed fallback when no category keyword
	// scores above zero.
	CategoryGeneral ClauseCategory = "general"
)

// RiskType identifies a detectable risk pattern family.
type RiskType string

const (
	RiskUnlimitedLiability      RiskType = "unlimited_liability"
	RiskOneSidedIndemnity       RiskType = "one_sided_indemnity"
	RiskUnilateralTermination   RiskType = "unilateral_termination"
	RiskIPFullTransfer          RiskType = "ip_full_transfer"
	RiskBroadNonCompete         RiskType = "broad_non_compete"
	RiskExcessivePenalty        RiskType = "excessive_penalty"
	RiskAutoRenewalHidden       RiskType = "auto_renewal_hidden"
	RiskUnfavorableJurisdiction RiskType = "unfavorable_jurisdiction"
	RiskVagueTermination        RiskType = "vague_termination"
	RiskMissingLiabilityCap     RiskType = "missing_liability_cap"

	// Clause-level trigger tags that overlap but do not coincide with the
	// document-wide pattern families above.
	RiskIPAssignment RiskType = "ip_assignment"
	RiskAutoRenewal  RiskType = "auto_renewal"
)

// RiskLevel is the severity bucket derived from a numeric score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Severity thresholds for mapping scores to levels.
const (
	criticalThreshold = 8.0
	highThreshold     = 6.0
	mediumThreshold   = 4.0
)

// ScoreToLevel converts a numeric risk score to its severity level.
// The mapping is the single source of truth for both findings and reports.
func ScoreToLevel(score float64) RiskLevel {
	switch {
	case score >= criticalThreshold:
		return RiskLevelCritical
	case score >= highThreshold:
		return RiskLevelHigh
	case score >= mediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Clause is a contiguous span of contract text found under a heading label.
// Instances are created once per segmentation pass and never mutated.
type Clause struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Category       ClauseCategory `json:"category"`
	RiskIndicators []RiskType     `json:"risk_indicators"`
	KeyTerms       []string       `json:"key_terms"`
	Amounts        []string       `json:"amounts"`
	Dates          []string       `json:"dates"`
}

// Classification is the whole-document contract type result.
type Classification struct {
	ContractType  string   `json:"contract_type"`
	Confidence    float64  `json:"confidence"`
	SubType       string   `json:"sub_type"`
	KeyIndicators []string `json:"key_indicators"`
}

// ContractTypeUnknown is the designed no-match classification outcome.
const ContractTypeUnknown = "Unknown"

// Sentinel clause ids for findings that are not scoped to a clause.
const (
	ClauseIDGeneral = "general"
	ClauseIDMissing = "missing"
)

// RiskFinding is one detected risk instance.
type RiskFinding struct {
	ClauseID     string    `json:"clause_id"`
	RiskType     string    `json:"risk_type"`
	RiskLevel    RiskLevel `json:"risk_level"`
	Score        float64   `json:"score"`
	Description  string    `json:"description"`
	OriginalText string    `json:"original_text"`
	Suggestion   string    `json:"suggestion"`
	LawReference string    `json:"law_reference"`
}

// RiskReport is the aggregate risk assessment for one document.
type RiskReport struct {
	OverallScore    float64       `json:"overall_score"`
	OverallLevel    RiskLevel     `json:"overall_level"`
	HighRiskCount   int           `json:"high_risk_count"`
	MediumRiskCount int           `json:"medium_risk_count"`
	LowRiskCount    int           `json:"low_risk_count"`
	Findings        []RiskFinding `json:"findings"`
	Summary         string        `json:"summary"`
}

// Dimensions is the document-level structured extraction summary.
type Dimensions struct {
	Parties               []string `json:"parties"`
	FinancialAmounts      []string `json:"financial_amounts"`
	Duration              string   `json:"duration"`
	Jurisdiction          string   `json:"jurisdiction"`
	GoverningLaw          string   `json:"governing_law"`
	TerminationConditions []string `json:"termination_conditions"`
	IPRights              []string `json:"ip_rights"`
	ConfidentialityTerms  []string `json:"confidentiality_terms"`
}

// ContractAnalysis bundles the outputs of a full pipeline invocation.
// It carries no timestamps or other run-dependent state so that identical
// input always produces identical output.
type ContractAnalysis struct {
	Clauses        []Clause       `json:"clauses"`
	Classification Classification `json:"classification"`
	Risk           RiskReport     `json:"risk_report"`
	Dimensions     Dimensions     `json:"dimensions"`
}
