package analysis

// Static pattern tables driving segmentation, categorization, classification,
// and risk detection. The slice order of every table is load-bearing: score
// ties in categorization and classification resolve to the first entry, so
// reordering changes observable output.

type categoryRule struct {
	Category ClauseCategory
	Keywords []string
}

type clauseTriggerRule struct {
	Risk     RiskType
	Patterns []string
}

type riskPatternRule struct {
	Risk         RiskType
	Patterns     []string
	Description  string
	Suggestion   string
	LawReference string
}

type protectiveCheckRule struct {
	Name        string
	Keywords    []string
	Description string
	Suggestion  string
	Score       float64
}

type contractProfileRule struct {
	Type     string
	Keywords []string
	Patterns []string
	SubTypes []string
}

// Heading conventions searched independently over the full text. Each
// pattern captures (label, title). Convention order breaks same-offset ties.
var headingPatternRules = []string{
	// Decimal-numbered headings: 1., 1.1, 1.1.1 with a capitalized fragment
	`(?im)(?:^|\n)\s*(\d+(?:\.\d+)*)\s*[\.:\)]\s*([A-Z][^\n]{0,100})`,
	// ARTICLE/SECTION/CLAUSE keyword headings
	`(?im)(?:^|\n)\s*(?:ARTICLE|SECTION|CLAUSE)\s*(\d+(?:\.\d+)?)[\.:\s]+([^\n]+)`,
	// Roman numeral headings
	`(?im)(?:^|\n)\s*([IVXLC]+)\s*[\.:\)]\s*([^\n]+)`,
	// Parenthesized single-letter sub-items: (a), (b)
	`(?im)(?:^|\n)\s*\(([a-z])\)\s*([^\n]+)`,
}

func defaultCategoryRules() []categoryRule {
	return []categoryRule{
		{Category: CategoryPayment, Keywords: []string{
			"payment", "compensation", "salary", "fee", "price", "cost",
			"invoice", "billing", "remuneration",
		}},
		{Category: CategoryTermination, Keywords: []string{
			"termination", "terminate", "cancel", "cancellation", "exit",
			"end of agreement", "expiry", "expire",
		}},
		{Category: CategoryConfidentiality, Keywords: []string{
			"confidential", "confidentiality", "non-disclosure", "nda",
			"proprietary", "trade secret", "sensitive information",
		}},
		{Category: CategoryLiability, Keywords: []string{
			"liability", "liable", "indemnify", "indemnification", "indemnity",
			"hold harmless", "defend", "damages",
		}},
		{Category: CategoryIntellectualProperty, Keywords: []string{
			"intellectual property", "ip", "patent", "copyright", "trademark",
			"invention", "work product", "proprietary rights",
		}},
		{Category: CategoryNonCompete, Keywords: []string{
			"non-compete", "non compete", "compete", "competition",
			"competitive activity", "restraint of trade",
		}},
		{Category: CategoryArbitration, Keywords: []string{
			"arbitration", "dispute", "resolution", "mediation", "arbitrator",
		}},
		{Category: CategoryJurisdiction, Keywords: []string{
			"jurisdiction", "governing law", "venue", "court", "applicable law",
		}},
		{Category: CategoryWarranty, Keywords: []string{
			"warranty", "warranties", "represent", "representation",
			"guarantee", "assurance",
		}},
		{Category: CategoryForceMajeure, Keywords: []string{
			"force majeure", "act of god", "unforeseen", "beyond control",
			"natural disaster", "pandemic",
		}},
		{Category: CategoryRenewal, Keywords: []string{
			"renewal", "renew", "auto-renew", "automatic renewal", "extension",
			"extend", "evergreen",
		}},
		{Category: CategoryNotice, Keywords: []string{
			"notice", "notification", "notify", "inform", "written notice",
		}},
		{Category: CategoryAssignment, Keywords: []string{
			"assignment", "assign", "transfer", "delegate", "succession",
		}},
		{Category: CategoryAmendment, Keywords: []string{
			"amendment", "amend", "modify", "modification", "change",
		}},
		{Category: CategoryDefinitions, Keywords: []string{
			"definition", "defined", "means", "shall mean", "interpretation",
		}},
		{Category: CategoryScope, Keywords: []string{
			"scope", "services", "deliverables", "obligations", "responsibilities",
			"work", "duties",
		}},
	}
}

// Clause-level trigger patterns. A clause matches a tag when any one of the
// tag's patterns matches its content.
func defaultClauseTriggerRules() []clauseTriggerRule {
	return []clauseTriggerRule{
		{Risk: RiskUnlimitedLiability, Patterns: []string{
			`unlimited\s+liability`,
			`full\s+liability`,
			`liable\s+for\s+all\s+damages`,
		}},
		{Risk: RiskUnilateralTermination, Patterns: []string{
			`(?:party\s+[ab12]|employer|company)\s+may\s+terminate\s+(?:at\s+any\s+time|without\s+cause|immediately)`,
			`sole\s+discretion.*terminat`,
		}},
		{Risk: RiskExcessivePenalty, Patterns: []string{
			`penalty\s+of\s+(?:rs\.?|inr|₹)\s*[\d,]+`,
			`liquidated\s+damages.*(?:rs\.?|inr|₹)\s*[\d,]+`,
		}},
		{Risk: RiskBroadNonCompete, Patterns: []string{
			`(?:worldwide|global|unlimited)\s+(?:non-compete|restriction)`,
			`non-compete.*(?:\d+\s+years|\d+\s+year\s+period)`,
		}},
		{Risk: RiskIPAssignment, Patterns: []string{
			`assign.*all.*(?:intellectual\s+property|ip|rights)`,
			`work.*for.*hire`,
			`transfer.*ownership.*(?:ip|intellectual)`,
		}},
		{Risk: RiskAutoRenewal, Patterns: []string{
			`auto(?:matic)?(?:ally)?\s+renew`,
			`evergreen.*clause`,
		}},
		{Risk: RiskOneSidedIndemnity, Patterns: []string{
			`(?:employee|contractor|vendor)\s+shall\s+indemnify`,
			`indemnify.*(?:company|employer).*all.*claims`,
		}},
	}
}

// Document-wide risk pattern families with remediation text.
func defaultRiskPatternRules() []riskPatternRule {
	return []riskPatternRule{
		{
			Risk: RiskUnlimitedLiability,
			Patterns: []string{
				`unlimited\s+liability`,
				`liable\s+for\s+all\s+(?:damages|losses|claims)`,
				`full\s+liability\s+for`,
				`no\s+limitation\s+(?:on|of)\s+liability`,
			},
			Description:  "Unlimited liability exposure",
			Suggestion:   "Negotiate a liability cap (typically 12 months of fees or specific amount)",
			LawReference: "Indian Contract Act, Section 73-74 allows for reasonable limitation",
		},
		{
			Risk: RiskOneSidedIndemnity,
			Patterns: []string{
				`(?:vendor|contractor|employee|consultant)\s+shall\s+(?:fully\s+)?indemnify`,
				`indemnify\s+(?:and\s+hold\s+harmless\s+)?(?:the\s+)?(?:company|employer|client)`,
				`defend\s+(?:and\s+)?indemnify.*(?:all|any)\s+claims`,
			},
			Description:  "One-sided indemnification favoring the other party",
			Suggestion:   "Request mutual indemnification or limit indemnity scope",
			LawReference: "Should be mutual per fair contract principles",
		},
		{
			Risk: RiskUnilateralTermination,
			Patterns: []string{
				`(?:company|employer|client)\s+may\s+terminate\s+(?:at\s+any\s+time|without\s+cause|immediately|forthwith)`,
				`terminate\s+(?:this\s+agreement\s+)?at\s+(?:its?\s+)?sole\s+discretion`,
				`reserved?\s+(?:the\s+)?right\s+to\s+terminate\s+without`,
			},
			Description:  "Only one party can terminate without cause",
			Suggestion:   "Ensure mutual termination rights with reasonable notice period",
			LawReference: "Indian Contract Act requires reasonable opportunity to cure",
		},
		{
			Risk: RiskIPFullTransfer,
			Patterns: []string{
				`assign(?:s|ed)?\s+all\s+(?:right|title|interest).*(?:intellectual\s+property|ip|work\s+product)`,
				`work(?:s)?\s+(?:made\s+)?for\s+hire`,
				`(?:all|any)\s+(?:inventions?|creations?|developments?).*(?:belong|vest|transfer).*(?:company|employer)`,
				`irrevocable.*(?:license|assignment|transfer).*(?:ip|intellectual)`,
			},
			Description:  "Complete transfer of intellectual property rights",
			Suggestion:   "Negotiate to retain rights to pre-existing IP and general knowledge",
			LawReference: "Copyright Act, 1957 - Assignment should be in writing and specific",
		},
		{
			Risk: RiskBroadNonCompete,
			Patterns: []string{
				`(?:shall\s+)?not\s+(?:directly\s+or\s+indirectly\s+)?(?:engage|work|compete).*(?:worldwide|global|any\s+(?:market|territory))`,
				`non-compete.*(?:[2-9]|[1-9]\d+)\s+years`,
				`restrain(?:ed|t)?\s+from\s+(?:engaging|working|competing).*(?:perpetual|indefinite)`,
			},
			Description:  "Overly broad non-compete restrictions",
			Suggestion:   "Limit geographic scope and duration (6-12 months is typical in India)",
			LawReference: "Section 27 of Indian Contract Act - Restraint of trade is void unless reasonable",
		},
		{
			Risk: RiskExcessivePenalty,
			Patterns: []string{
				`(?:penalty|liquidated\s+damages)\s+(?:of|equal\s+to)\s+(?:rs\.?|inr|₹)\s*(?:[5-9]\d{5,}|[1-9]\d{6,})`,
				`forfeit.*(?:entire|full|all).*(?:amount|fee|payment)`,
				`penalty.*(?:double|triple|twice|thrice)`,
			},
			Description:  "Potentially excessive penalty clauses",
			Suggestion:   "Negotiate reasonable and proportionate penalties",
			LawReference: "Section 74 of Indian Contract Act - Only reasonable compensation is recoverable",
		},
		{
			Risk: RiskAutoRenewalHidden,
			Patterns: []string{
				`(?:automatically|auto)\s+renew(?:ed|s)?`,
				`shall\s+(?:continue|renew)\s+(?:for|unless).*(?:notice|terminated)`,
				`evergreen\s+(?:clause|term|provision)`,
			},
			Description:  "Automatic renewal clause that may lock you in",
			Suggestion:   "Add clear opt-out mechanism with reasonable notice period",
			LawReference: "Consumer Protection Act, 2019 requires clear disclosure",
		},
		{
			Risk: RiskUnfavorableJurisdiction,
			Patterns: []string{
				`(?:exclusive\s+)?jurisdiction\s+(?:of|in)\s+(?:courts?\s+(?:of|in)\s+)?(?:london|new\s+york|singapore|hong\s+kong|us|uk|england)`,
				`governed\s+by.*(?:laws?\s+of\s+)?(?:england|new\s+york|singapore|delaware)`,
			},
			Description:  "Foreign jurisdiction may be costly and inconvenient",
			Suggestion:   "Negotiate for local Indian jurisdiction (preferably your state)",
			LawReference: "Indian courts should have jurisdiction for domestic parties",
		},
		{
			Risk: RiskVagueTermination,
			Patterns: []string{
				`terminate.*(?:any\s+reason|no\s+reason|whatsoever)`,
				`(?:at\s+will|without\s+cause).*terminat`,
			},
			Description:  "Vague termination grounds without proper process",
			Suggestion:   "Define specific grounds for termination and cure periods",
			LawReference: "Industrial Disputes Act requires proper process for employment termination",
		},
		{
			Risk: RiskMissingLiabilityCap,
			Patterns: []string{
				`(?:no|without)\s+(?:limitation|cap|ceiling)\s+(?:on|of)\s+(?:liability|damages)`,
			},
			Description:  "No cap on liability exposure",
			Suggestion:   "Include liability cap (e.g., total fees paid in last 12 months)",
			LawReference: "Parties can contractually limit liability under Indian Contract Act",
		},
	}
}

// Weight table keyed by risk type. Types without an entry score 5.
func defaultRiskWeights() map[RiskType]float64 {
	return map[RiskType]float64{
		RiskUnlimitedLiability:       9,
		RiskOneSidedIndemnity:        8,
		RiskUnilateralTermination:    8,
		RiskIPFullTransfer:           8,
		RiskBroadNonCompete:          7,
		RiskExcessivePenalty:         7,
		RiskAutoRenewalHidden:        6,
		RiskUnfavorableJurisdiction:  6,
		RiskVagueTermination:         5,
		RiskMissingLiabilityCap:      5,
		"missing_notice_period":      4,
		"ambiguous_deliverables":     4,
		"missing_dispute_resolution": 4,
		"unclear_payment_terms":      3,
		"missing_confidentiality":    3,
	}
}

// Protective topics whose complete absence from a contract is itself a risk.
func defaultProtectiveCheckRules() []protectiveCheckRule {
	return []protectiveCheckRule{
		{
			Name:        "liability_cap",
			Keywords:    []string{"limitation of liability", "liability cap", "liability shall not exceed", "maximum liability"},
			Description: "Missing liability limitation clause",
			Suggestion:  "Add a clause capping total liability exposure",
			Score:       5,
		},
		{
			Name:        "dispute_resolution",
			Keywords:    []string{"arbitration", "dispute resolution", "mediation", "conciliation"},
			Description: "Missing dispute resolution mechanism",
			Suggestion:  "Include arbitration clause as per Arbitration and Conciliation Act, 1996",
			Score:       4,
		},
		{
			Name:        "notice_period",
			Keywords:    []string{"notice period", "days notice", "written notice", "prior notice"},
			Description: "Missing or unclear notice period requirements",
			Suggestion:  "Specify clear notice periods for termination and other actions",
			Score:       4,
		},
		{
			Name:        "force_majeure",
			Keywords:    []string{"force majeure", "act of god", "unforeseen circumstances"},
			Description: "Missing force majeure clause",
			Suggestion:  "Add force majeure clause to protect against unforeseen events",
			Score:       3,
		},
		{
			Name:        "confidentiality",
			Keywords:    []string{"confidential", "non-disclosure", "proprietary information", "trade secret"},
			Description: "Missing confidentiality provisions",
			Suggestion:  "Include mutual confidentiality obligations",
			Score:       3,
		},
	}
}

// Contract type profiles: keyword evidence, strong-signal patterns, and
// candidate sub-types.
func defaultContractProfiles() []contractProfileRule {
	return []contractProfileRule{
		{
			Type: "Employment Agreement",
			Keywords: []string{
				"employment", "employee", "employer", "salary", "compensation",
				"working hours", "leave", "provident fund", "gratuity", "probation",
				"termination of employment", "notice period", "designation", "job duties",
				"reporting", "workplace", "office hours",
			},
			Patterns: []string{
				`employment\s+agreement`,
				`contract\s+of\s+employment`,
				`letter\s+of\s+appointment`,
				`offer\s+letter`,
				`service\s+agreement.*employee`,
			},
			SubTypes: []string{"Full-time", "Part-time", "Fixed-term", "Probationary", "Executive"},
		},
		{
			Type: "Vendor Contract",
			Keywords: []string{
				"vendor", "supplier", "purchase", "supply", "goods", "materials",
				"delivery", "invoice", "procurement", "quality", "specifications",
				"order", "consignment", "warranty on goods",
			},
			Patterns: []string{
				`vendor\s+agreement`,
				`supply\s+agreement`,
				`purchase\s+agreement`,
				`procurement\s+contract`,
				`supplier\s+contract`,
			},
			SubTypes: []string{"Supply Agreement", "Purchase Order", "Framework Agreement"},
		},
		{
			Type: "Lease Agreement",
			Keywords: []string{
				"lease", "lessor", "lessee", "rent", "rental", "premises", "property",
				"tenant", "landlord", "security deposit", "maintenance", "occupancy",
				"possession", "eviction", "sub-lease", "monthly rent",
			},
			Patterns: []string{
				`lease\s+(?:agreement|deed)`,
				`rental\s+agreement`,
				`tenancy\s+agreement`,
				`leave\s+and\s+license`,
				`property\s+lease`,
			},
			SubTypes: []string{"Residential", "Commercial", "Industrial", "Leave and License"},
		},
		{
			Type: "Partnership Deed",
			Keywords: []string{
				"partnership", "partner", "partners", "profit sharing", "capital contribution",
				"partnership firm", "mutual consent", "dissolution", "goodwill",
				"partner's share", "draw", "partnership act",
			},
			Patterns: []string{
				`partnership\s+deed`,
				`partnership\s+agreement`,
				`articles\s+of\s+partnership`,
				`(?:general|limited)\s+partnership`,
			},
			SubTypes: []string{"General Partnership", "Limited Partnership", "LLP"},
		},
		{
			Type: "Service Contract",
			Keywords: []string{
				"services", "service provider", "client", "deliverables", "scope of work",
				"milestones", "project", "consultancy", "professional services",
				"statement of work", "sow", "service level", "sla",
			},
			Patterns: []string{
				`service\s+agreement`,
				`consulting\s+agreement`,
				`professional\s+services\s+agreement`,
				`master\s+service\s+agreement`,
				`statement\s+of\s+work`,
			},
			SubTypes: []string{"Consulting", "IT Services", "Professional Services", "Maintenance"},
		},
		{
			Type: "Non-Disclosure Agreement",
			Keywords: []string{
				"confidential", "non-disclosure", "nda", "proprietary", "trade secret",
				"confidential information", "receiving party", "disclosing party",
				"sensitive information", "protect",
			},
			Patterns: []string{
				`non-disclosure\s+agreement`,
				`confidentiality\s+agreement`,
				`\bnda\b`,
				`mutual\s+(?:non-disclosure|confidentiality)`,
			},
			SubTypes: []string{"Mutual NDA", "One-way NDA", "Employee NDA"},
		},
		{
			Type: "Licensing Agreement",
			Keywords: []string{
				"license", "licensor", "licensee", "royalty", "intellectual property",
				"trademark", "patent", "copyright", "sublicense", "territory",
				"exclusive", "non-exclusive", "usage rights",
			},
			Patterns: []string{
				`licens(?:e|ing)\s+agreement`,
				`software\s+license`,
				`trademark\s+license`,
				`patent\s+license`,
				`end\s+user\s+license`,
			},
			SubTypes: []string{"Software License", "IP License", "Franchise", "Technology License"},
		},
		{
			Type: "Sales Agreement",
			Keywords: []string{
				"sale", "seller", "buyer", "purchaser", "purchase price", "goods",
				"transfer of ownership", "title", "delivery", "payment terms",
				"bill of sale", "consideration",
			},
			Patterns: []string{
				`sale\s+agreement`,
				`sale\s+deed`,
				`agreement\s+(?:for|of)\s+sale`,
				`purchase\s+and\s+sale`,
			},
			SubTypes: []string{"Asset Sale", "Share Sale", "Real Estate Sale", "Business Sale"},
		},
		{
			Type: "Loan Agreement",
			Keywords: []string{
				"loan", "lender", "borrower", "principal", "interest", "repayment",
				"emi", "collateral", "security", "default", "disbursement",
				"promissory note", "mortgage",
			},
			Patterns: []string{
				`loan\s+agreement`,
				`credit\s+agreement`,
				`facility\s+agreement`,
				`promissory\s+note`,
			},
			SubTypes: []string{"Personal Loan", "Business Loan", "Mortgage", "Line of Credit"},
		},
		{
			Type: "Franchise Agreement",
			Keywords: []string{
				"franchise", "franchisee", "franchisor", "brand", "trademark usage",
				"franchise fee", "royalty", "territory", "operational standards",
				"training", "marketing fund",
			},
			Patterns: []string{
				`franchise\s+agreement`,
				`franchising\s+agreement`,
				`master\s+franchise`,
			},
			SubTypes: []string{"Unit Franchise", "Master Franchise", "Area Development"},
		},
	}
}

// Legal term vocabulary checked against clause content, in priority order.
var legalTermVocabulary = []string{
	"shall", "must", "may", "will", "agrees", "warrants", "represents",
	"indemnify", "terminate", "liable", "confidential", "proprietary",
	"exclusive", "non-exclusive", "irrevocable", "perpetual",
}

// Numeric pattern families for amounts and dates inside clause content.
var amountPatternRules = []string{
	`(?i)(?:Rs\.?|INR|₹)\s*[\d,]+(?:\.\d{2})?`,
	`(?i)\$\s*[\d,]+(?:\.\d{2})?`,
	`(?i)[\d,]+\s*(?:rupees|dollars|lakhs?|crores?)`,
}

var datePatternRules = []string{
	`(?i)\b\d{1,2}[\/\-]\d{1,2}[\/\-]\d{2,4}\b`,
	`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s*,?\s*\d{4}\b`,
	`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`,
}

// Document-level dimension extraction patterns.
var partyPatternRules = []string{
	`(?is)(?:between|BETWEEN)\s+(.+?)\s+(?:and|AND)\s+(.+?)(?:\.|,|\n)`,
	`(?i)(?:Party\s*[AB12])[:\s]+(.+?)(?:\n|,|\.)`,
	`(?i)(?:hereinafter.*(?:called|referred).*["'](.+?)["'])`,
}

const (
	financialAmountPatternRule = `(?i)(?:Rs\.?|INR|₹|\$)\s*([\d,]+(?:\.\d{2})?)`
	durationPatternRule        = `(?i)(?:term|period|duration)\s+(?:of\s+)?(\d+)\s+(years?|months?|days?)`
	jurisdictionPatternRule    = `(?i)(?:governed by|subject to|jurisdiction of)\s+(?:the\s+)?(?:laws?\s+of\s+)?([A-Za-z\s,]+)(?:\.|\n|$)`
	terminationCondPatternRule = `(?i)(?:may\s+terminate|terminate.*(?:if|upon|when))(.+?)(?:\.|;|$)`
	ipRightsPatternRule        = `(?i)(?:intellectual\s+property|patent|copyright|trademark|invention)(.{0,200})`
	// Section scanning: a heading-ish line containing a topic keyword, and
	// the decimal heading that ends the section.
	sectionHeadingPatternRule = `(?im)^\s*(?:\d+(?:\.\d+)*\.?\s*)?[^\n]*%s[^\n]*$`
	nextSectionPatternRule    = `(?m)(?:^|\n)\s*\d+(?:\.\d+)*\.\s*[A-Z]`
)

// Statutory compliance reminders surfaced alongside reports.
func defaultComplianceNotes() map[string]string {
	return map[string]string{
		"stamp_duty":        "Contract may require stamp duty as per Indian Stamp Act",
		"registration":      "Lease agreements over 11 months require registration",
		"tds_applicability": "Check TDS applicability under Income Tax Act",
		"gst_compliance":    "Verify GST obligations for services",
		"fema_compliance":   "Foreign payments may require FEMA compliance",
		"it_act_compliance": "Electronic contracts must comply with IT Act 2000",
	}
}
