package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Analysis Tools
	ContractAnalyzeFileDescription = `Run the full contract analysis pipeline on a document file.

**When to use:** You have a contract on disk (PDF or plain text) and want classification, clause breakdown, risk assessment, and key dimensions in a single pass.

**Why it's useful:** One call produces the complete picture: contract type with confidence, every detected clause with its category and risk indicators, a scored risk report with suggestions, and the parties, amounts, duration, and jurisdiction.

**Examples:**
• Vendor review: "Analyze /contracts/msa-acme.pdf before the negotiation call"
• Intake triage: "Run full analysis on uploaded-agreement.txt to decide which team reviews it"
• Renewal check: "Analyze lease-2024.pdf to see what changed risk-wise"

**Common workflows:**
1. Intake: Analyze file → Review risk level → Route to legal if HIGH or CRITICAL
2. Negotiation prep: Analyze file → Read suggestions per finding → Build redline list
3. Portfolio review: Search directory → Analyze each file → Compare overall scores

**Best practices:** Validate the file first with contract_validate_file when the source is untrusted; scanned PDFs without a text layer cannot be analyzed.`

	ContractAnalyzeTextDescription = `Run the full contract analysis pipeline on pasted contract text.

**When to use:** The contract text is already in hand (pasted, fetched, or extracted elsewhere) and there is no file to point at.

**Why it's useful:** Same complete output as contract_analyze_file — classification, clauses, risk report, dimensions — without touching the filesystem.

**Examples:**
• Quick check: "Paste this termination section and tell me how risky it is"
• Email review: "Analyze the agreement text from this email thread"
• Draft iteration: "Re-analyze the revised draft after edits"

**Common workflows:**
1. Draft review: Paste text → Analyze → Apply suggestions → Re-analyze
2. Snippet triage: Paste a clause → Check risk indicators → Escalate if needed
3. Comparison: Analyze two versions of the same text → Diff the findings

**Best practices:** Provide the whole contract when possible; headings like "1. TERMINATION" drive clause segmentation, and missing-protection checks assume the full document is present.`

	ContractClassifyDescription = `Identify the contract type and sub-type from document text.

**When to use:** You only need to know what kind of contract this is — employment, NDA, service agreement, lease, partnership — without a full analysis.

**Why it's useful:** Fast routing signal with a confidence score, sub-type (e.g. Full-time vs Probationary employment, Mutual vs One-way NDA), and the matched indicators that explain the decision.

**Examples:**
• Mailroom routing: "Classify incoming-doc.txt to pick the right review queue"
• Batch labeling: "Classify everything in /archive/ for the document index"
• Sanity check: "Confirm this draft actually reads as a mutual NDA"

**Common workflows:**
1. Routing: Classify → Match type to team → Forward with confidence score
2. Indexing: Classify each document → Store type and sub-type → Enable filtered search
3. Verification: Classify draft → Compare to intended type → Flag mismatches

**Best practices:** Low confidence with type "Unknown" means no profile matched; check the per-type scores in a full analysis when the result is ambiguous.`

	ContractExtractClausesDescription = `Segment contract text into clauses with categories, key terms, amounts, and dates.

**When to use:** You need the structural breakdown of a contract — what clauses exist, what each one covers, what it references — without risk scoring.

**Why it's useful:** Turns a wall of text into addressable units: each clause gets an id, title, topical category, clause-level risk indicators, legal key terms, and any monetary amounts or dates it mentions.

**Examples:**
• Obligation mapping: "Extract clauses from services-agreement.txt and list the payment terms"
• Clause library: "Pull all termination clauses from /contracts/ for the playbook"
• Gap check: "List clause categories in this draft to see what sections are missing"

**Common workflows:**
1. Playbook building: Extract clauses → Filter by category → Collect representative language
2. Review prep: Extract clauses → Sort by risk indicators → Read flagged ones first
3. Data capture: Extract clauses → Record amounts and dates → Feed obligation tracker

**Best practices:** Segmentation follows numbered, ARTICLE, Section, and lettered heading conventions; documents without recognizable headings yield no clauses, though document-level tools still work.`

	ContractRiskReportDescription = `Score contract risk and report every finding with severity, excerpt, and suggestion.

**When to use:** The question is "how dangerous is this contract and why" — for triage, escalation, or negotiation planning.

**Why it's useful:** Detects one-sided and risky language (unlimited liability, broad non-competes, unilateral termination, hidden auto-renewal, and more), flags protections that are missing entirely, and rolls everything into a 0-10 score with a severity level.

**Examples:**
• Escalation gate: "Risk report for vendor-msa.pdf — escalate if CRITICAL"
• Redline list: "Get findings and suggestions for the services draft"
• Missing protections: "Check whether this contract has a liability cap and dispute resolution"

**Common workflows:**
1. Triage: Risk report → Compare overall level to policy → Route accordingly
2. Negotiation: Read findings sorted by severity → Use suggestions as counter-language
3. Monitoring: Re-run after each redline round → Track the score downward

**Best practices:** Findings with clause_id "missing" denote absent protections, not bad language; the excerpt "[Not found in contract]" is expected for those.`

	ContractExtractDimensionsDescription = `Extract key contract dimensions: parties, amounts, duration, jurisdiction, and terms.

**When to use:** You need the headline facts of a contract for a summary table, CRM record, or obligations register — not the full clause-by-clause detail.

**Why it's useful:** One call returns the named parties, financial amounts, contract duration, governing law and jurisdiction, termination conditions, IP ownership language, and a confidentiality excerpt.

**Examples:**
• Deal summary: "Extract dimensions from signed-msa.pdf for the deal sheet"
• CRM sync: "Pull parties and amounts from /contracts/2024/ into the account records"
• Jurisdiction audit: "List governing law across all active agreements"

**Common workflows:**
1. Record keeping: Extract dimensions → Populate contract register → Set renewal reminders
2. Reporting: Extract from each contract → Aggregate amounts and durations → Build dashboard
3. Conflict check: Extract parties → Match against counterparty lists → Flag overlaps

**Best practices:** Extraction is pattern-based; unusual party naming or amounts written out in words may not be captured, so spot-check critical records.`

	// File Tools
	ContractValidateFileDescription = `Verify a contract document is readable before analysis.

**When to use:** Before analyzing files from untrusted sources — user uploads, shared drives, email attachments — or when a previous analysis failed unexpectedly.

**Why it's useful:** Catches missing files, unsupported formats, empty or oversized documents, and structurally broken PDFs early, with a message explaining what is wrong.

**Examples:**
• Upload gate: "Validate uploaded-contract.pdf before running analysis"
• Batch safety: "Validate everything in /incoming/ and report the bad ones"
• Debugging: "Analysis of agreement.pdf failed — validate it to see why"

**Common workflows:**
1. Safe intake: Validate → Analyze if valid → Report the message if not
2. Batch processing: Search directory → Validate each → Skip and log failures
3. Troubleshooting: Validate the failing file → Fix or re-export → Retry

**Best practices:** Validation checks structure, not content; a valid PDF can still fail analysis if it is a pure image scan with no extractable text.`

	ContractSearchDirectoryDescription = `Find contract documents in a directory with optional fuzzy name matching.

**When to use:** You need to discover what contracts exist in a directory, or locate specific ones by partial name.

**Why it's useful:** Lists analyzable documents (PDF and text) with size and modification time, skipping unsupported and oversized files, with fuzzy matching for partial names.

**Examples:**
• Discovery: "What contracts are in /shared/legal/2024/?"
• Lookup: "Find files matching 'acme nda' in the contracts directory"
• Batch prep: "List everything in /incoming/ before bulk analysis"

**Common workflows:**
1. Batch analysis: Search directory → Analyze each result → Aggregate reports
2. Retrieval: Fuzzy search by counterparty name → Pick the match → Analyze it
3. Housekeeping: Search directory → Compare against register → Spot unfiled documents

**Best practices:** Empty query lists all documents; multi-word queries match files containing every word in the name.`

	// Utility Tools
	ContractServerInfoDescription = `Get server status, configuration, available tools, and directory contents.

**When to use:** Starting a session with the contract analyzer, troubleshooting missing files, or discovering what the server can do.

**Why it's useful:** Shows the configured contract directory and its contents, size limits, audit session details, and a catalog of every tool with usage guidance.

**Examples:**
• Session start: "Check server info to see the working directory and available documents"
• Troubleshooting: "Files aren't being found — confirm which directory the server watches"
• Discovery: "List all tools and what they do"

**Common workflows:**
1. Startup: Server info → Confirm directory and limits → Begin analysis
2. Debugging: Server info → Compare expected vs configured directory → Adjust paths
3. Orientation: Server info → Read tool catalog → Choose the right tool

**Best practices:** Run once at the start of a session; directory contents shown here are a quick overview, use contract_search_directory for full listings.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"contract_analyze_file":       ContractAnalyzeFileDescription,
	"contract_analyze_text":       ContractAnalyzeTextDescription,
	"contract_classify":           ContractClassifyDescription,
	"contract_extract_clauses":    ContractExtractClausesDescription,
	"contract_risk_report":        ContractRiskReportDescription,
	"contract_extract_dimensions": ContractExtractDimensionsDescription,
	"contract_validate_file":      ContractValidateFileDescription,
	"contract_search_directory":   ContractSearchDirectoryDescription,
	"contract_server_info":        ContractServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
