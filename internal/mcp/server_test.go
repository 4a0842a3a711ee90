package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lexatlas/mcp-contract-analyzer/internal/analysis"
	"github.com/lexatlas/mcp-contract-analyzer/internal/audit"
	"github.com/lexatlas/mcp-contract-analyzer/internal/config"
	"github.com/lexatlas/mcp-contract-analyzer/internal/document"
)

const testContract = `EMPLOYMENT AGREEMENT

This Agreement is made between Acme Software Pvt Ltd and Rahul Mehta.

1. POSITION
The Employee shall serve as Senior Engineer with job duties assigned by the Employer.

2. COMPENSATION
The Employer shall pay a monthly salary of Rs. 1,50,000 payable on the last working day.

3. TERM
This Agreement shall remain in force for a term of 24 months from the commencement date.

4. TERMINATION
The Company may terminate this Agreement at any time without cause by written notice.

5. NON-COMPETE
The Employee shall not directly or indirectly engage in any competing business worldwide.

6. GOVERNING LAW
This Agreement shall be governed by the laws of Singapore.
`

func newTestServer(t *testing.T, contractDir string) *Server {
	t.Helper()

	cfg := &config.Config{
		Mode:              "stdio",
		ContractDirectory: contractDir,
		Version:           "1.0.0",
		ServerName:        "test-server",
		LogLevel:          "info",
		MaxFileSize:       1024 * 1024,
	}

	docService, err := document.NewService(cfg.MaxFileSize, contractDir)
	if err != nil {
		t.Fatalf("failed to create document service: %v", err)
	}

	analyzer, err := analysis.NewContractAnalyzer()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	srv, err := NewServer(cfg, docService, analyzer, audit.NewDisabled())
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return srv
}

func writeContractFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func TestNewServer(t *testing.T) {
	tempDir := t.TempDir()

	docService, err := document.NewService(1024*1024, tempDir)
	if err != nil {
		t.Fatalf("failed to create document service: %v", err)
	}
	analyzer, err := analysis.NewContractAnalyzer()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	tests := []struct {
		name   string
		config *config.Config
	}{
		{
			name: "valid stdio mode config",
			config: &config.Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				Version:           "1.0.0",
				ServerName:        "test-server",
				LogLevel:          "info",
				MaxFileSize:       1024 * 1024,
			},
		},
		{
			name: "valid server mode config",
			config: &config.Config{
				Mode:              "server",
				Host:              "127.0.0.1",
				Port:              8080,
				ContractDirectory: tempDir,
				Version:           "1.0.0",
				ServerName:        "test-server",
				LogLevel:          "info",
				MaxFileSize:       1024 * 1024,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.config, docService, analyzer, audit.NewDisabled())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if srv == nil {
				t.Fatal("server should not be nil")
			}
			if srv.config != tt.config {
				t.Error("server config not set correctly")
			}
			if srv.docService != docService {
				t.Error("server docService not set correctly")
			}
			if srv.mcpServer == nil {
				t.Error("mcpServer should be initialized")
			}
		})
	}
}

func TestNewServerNilDependencies(t *testing.T) {
	tempDir := t.TempDir()
	cfg := &config.Config{
		Mode:              "stdio",
		ContractDirectory: tempDir,
		Version:           "1.0.0",
		ServerName:        "test-server",
		MaxFileSize:       1024 * 1024,
	}

	docService, err := document.NewService(cfg.MaxFileSize, tempDir)
	if err != nil {
		t.Fatalf("failed to create document service: %v", err)
	}
	analyzer, err := analysis.NewContractAnalyzer()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	if _, err := NewServer(cfg, nil, analyzer, nil); err == nil {
		t.Error("expected error with nil document service")
	}
	if _, err := NewServer(cfg, docService, nil, nil); err == nil {
		t.Error("expected error with nil analyzer")
	}

	// nil audit logger falls back to a disabled one
	srv, err := NewServer(cfg, docService, analyzer, nil)
	if err != nil {
		t.Fatalf("unexpected error with nil audit logger: %v", err)
	}
	if srv.auditLog == nil {
		t.Error("expected a disabled audit logger substitute")
	}
}

func TestServer_HandleAnalyzeText(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	result, err := srv.handleAnalyzeText(context.Background(), callRequest(map[string]interface{}{
		"text": testContract,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Type: Employment Agreement") {
		t.Errorf("expected employment classification, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Overall Risk: 4.7 (MEDIUM)") {
		t.Errorf("expected risk summary, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Clauses (6):") {
		t.Errorf("expected 6 clauses, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Parties: Acme Software Pvt Ltd") {
		t.Errorf("expected parties in dimensions, got: %s", resultText)
	}
}

func TestServer_HandleAnalyzeTextEmpty(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	result, err := srv.handleAnalyzeText(context.Background(), callRequest(map[string]interface{}{
		"text": "   ",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for blank text")
	}
}

func TestServer_HandleAnalyzeFile(t *testing.T) {
	tempDir := t.TempDir()
	path := writeContractFile(t, tempDir, "employment.txt", testContract)
	srv := newTestServer(t, tempDir)

	result, err := srv.handleAnalyzeFile(context.Background(), callRequest(map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Contract Analysis: "+path) {
		t.Errorf("expected analysis header with path, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Type: Employment Agreement") {
		t.Errorf("expected employment classification, got: %s", resultText)
	}
}

func TestServer_HandleAnalyzeFileMissing(t *testing.T) {
	tempDir := t.TempDir()
	srv := newTestServer(t, tempDir)

	result, err := srv.handleAnalyzeFile(context.Background(), callRequest(map[string]interface{}{
		"path": filepath.Join(tempDir, "nope.txt"),
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing file")
	}
}

func TestServer_HandleClassify(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	result, err := srv.handleClassify(context.Background(), callRequest(map[string]interface{}{
		"text": testContract,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Type: Employment Agreement") {
		t.Errorf("expected employment type, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Confidence:") {
		t.Errorf("expected confidence, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Scores by type:") {
		t.Errorf("expected per-type scores, got: %s", resultText)
	}
}

func TestServer_HandleExtractClausesFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := writeContractFile(t, tempDir, "employment.txt", testContract)
	srv := newTestServer(t, tempDir)

	result, err := srv.handleExtractClauses(context.Background(), callRequest(map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Found 6 clause(s)") {
		t.Errorf("expected 4 clauses, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Category: termination") {
		t.Errorf("expected a termination clause, got: %s", resultText)
	}
}

func TestServer_HandleRiskReport(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	result, err := srv.handleRiskReport(context.Background(), callRequest(map[string]interface{}{
		"text": testContract,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Overall Risk:") {
		t.Errorf("expected overall risk, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Findings:") {
		t.Errorf("expected findings section, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Suggestion:") {
		t.Errorf("expected at least one suggestion, got: %s", resultText)
	}
}

func TestServer_HandleExtractDimensions(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	result, err := srv.handleExtractDimensions(context.Background(), callRequest(map[string]interface{}{
		"text": testContract,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Duration: 24 months") {
		t.Errorf("expected duration, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Jurisdiction: Singapore") {
		t.Errorf("expected jurisdiction, got: %s", resultText)
	}
}

func TestServer_ResolveTextArgumentRules(t *testing.T) {
	tempDir := t.TempDir()
	path := writeContractFile(t, tempDir, "employment.txt", testContract)
	srv := newTestServer(t, tempDir)

	// Neither path nor text
	result, err := srv.handleClassify(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result when neither path nor text is given")
	}

	// Both path and text
	result, err = srv.handleClassify(context.Background(), callRequest(map[string]interface{}{
		"path": path,
		"text": testContract,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result when both path and text are given")
	}
}

func TestServer_HandleValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	// Garbage bytes with a .pdf extension must fail validation
	badPDF := writeContractFile(t, tempDir, "broken.pdf", "this is not a pdf at all")
	srv := newTestServer(t, tempDir)

	result, err := srv.handleValidateFile(context.Background(), callRequest(map[string]interface{}{
		"path": badPDF,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Document validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}

	// A plain text contract is valid
	goodTxt := writeContractFile(t, tempDir, "good.txt", testContract)
	result, err = srv.handleValidateFile(context.Background(), callRequest(map[string]interface{}{
		"path": goodTxt,
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	resultText = extractTextFromResult(result)
	if !strings.Contains(resultText, "is valid and readable") {
		t.Errorf("expected text document to validate, got: %s", resultText)
	}
}

func TestServer_HandleSearchDirectory(t *testing.T) {
	tempDir := t.TempDir()
	writeContractFile(t, tempDir, "msa_acme.txt", testContract)
	writeContractFile(t, tempDir, "nda_beta.txt", testContract)
	writeContractFile(t, tempDir, "notes.docx", "unsupported format")
	srv := newTestServer(t, tempDir)

	result, err := srv.handleSearchDirectory(context.Background(), callRequest(map[string]interface{}{
		"directory": tempDir,
		"query":     "",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Found 2 contract document(s)") {
		t.Errorf("expected 2 documents, got: %s", resultText)
	}
}

func TestServer_DefaultDirectory(t *testing.T) {
	tempDir := t.TempDir()
	writeContractFile(t, tempDir, "msa.txt", testContract)
	srv := newTestServer(t, tempDir)

	// No directory argument: the configured directory is used
	result, err := srv.handleSearchDirectory(context.Background(), callRequest(map[string]interface{}{
		"query": "",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, tempDir) {
		t.Errorf("content should mention default directory %s, got: %s", tempDir, resultText)
	}
}

func TestServer_HandleServerInfo(t *testing.T) {
	tempDir := t.TempDir()
	writeContractFile(t, tempDir, "msa.txt", testContract)
	srv := newTestServer(t, tempDir)

	result, err := srv.handleServerInfo(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "test-server v1.0.0") {
		t.Errorf("expected server name and version, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Available Tools:") {
		t.Errorf("expected tool catalog, got: %s", resultText)
	}
	if !strings.Contains(resultText, "contract_analyze_file") {
		t.Errorf("expected analyze tool in catalog, got: %s", resultText)
	}
	if !strings.Contains(resultText, "msa.txt") {
		t.Errorf("expected directory contents, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Audit Logging: disabled") {
		t.Errorf("expected audit status, got: %s", resultText)
	}
}

func TestServer_InvalidArguments(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	emptyRequest := callRequest(map[string]interface{}{})

	handlers := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{"AnalyzeFile", srv.handleAnalyzeFile},
		{"AnalyzeText", srv.handleAnalyzeText},
		{"ValidateFile", srv.handleValidateFile},
	}

	for _, h := range handlers {
		t.Run(h.name, func(t *testing.T) {
			result, err := h.handler(context.Background(), emptyRequest)
			if err != nil {
				t.Errorf("handler should not return error, got: %v", err)
			}
			if result == nil {
				t.Fatal("result should not be nil")
			}
			if !result.IsError {
				t.Errorf("expected error result for missing arguments, got: %s", extractTextFromResult(result))
			}
		})
	}
}

func TestServer_AuditTrail(t *testing.T) {
	tempDir := t.TempDir()
	auditDir := t.TempDir()
	path := writeContractFile(t, tempDir, "employment.txt", testContract)

	cfg := &config.Config{
		Mode:              "stdio",
		ContractDirectory: tempDir,
		Version:           "1.0.0",
		ServerName:        "test-server",
		MaxFileSize:       1024 * 1024,
	}
	docService, err := document.NewService(cfg.MaxFileSize, tempDir)
	if err != nil {
		t.Fatalf("failed to create document service: %v", err)
	}
	analyzer, err := analysis.NewContractAnalyzer()
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}
	auditLog, err := audit.NewLogger(auditDir)
	if err != nil {
		t.Fatalf("failed to create audit logger: %v", err)
	}

	srv, err := NewServer(cfg, docService, analyzer, auditLog)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	if _, err := srv.handleAnalyzeFile(context.Background(), callRequest(map[string]interface{}{
		"path": path,
	})); err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	summary := auditLog.SessionSummary()
	for _, eventType := range []string{
		audit.EventSessionStart,
		audit.EventUserAction,
		audit.EventDocumentLoaded,
		audit.EventAnalysisStart,
		audit.EventAnalysisComplete,
	} {
		if summary.EventCounts[eventType] == 0 {
			t.Errorf("expected at least one %s event, got counts: %v", eventType, summary.EventCounts)
		}
	}
}

func TestFormatMethods(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	searchResult := &document.SearchResult{
		Files: []document.FileInfo{
			{
				Name:         "msa.txt",
				Path:         "/tmp/msa.txt",
				Size:         1024,
				ModifiedTime: "2023-01-01 12:00:00",
			},
		},
		TotalCount:  1,
		Directory:   "/tmp",
		SearchQuery: "msa",
	}

	formatted := srv.formatSearchResult(searchResult)
	if !strings.Contains(formatted, "Found 1 contract document(s)") {
		t.Error("formatted result should contain file count")
	}
	if !strings.Contains(formatted, "msa.txt") {
		t.Error("formatted result should contain filename")
	}
	if !strings.Contains(formatted, "Search query: msa") {
		t.Error("formatted result should contain search query")
	}

	report := analysis.RiskReport{
		OverallScore:    7.0,
		OverallLevel:    analysis.RiskLevelHigh,
		HighRiskCount:   1,
		MediumRiskCount: 0,
		LowRiskCount:    0,
		Findings: []analysis.RiskFinding{
			{
				ClauseID:     "2",
				RiskType:     "Unilateral Termination",
				RiskLevel:    analysis.RiskLevelHigh,
				Score:        7,
				Description:  "One party can terminate without the other's consent",
				OriginalText: "may terminate at any time without cause",
				Suggestion:   "Require mutual termination rights or notice periods",
			},
		},
		Summary: "1 high-risk clause(s) should be renegotiated",
	}

	formatted = srv.formatRiskReport("inline text", report)
	if !strings.Contains(formatted, "Overall Risk: 7.0 (HIGH)") {
		t.Error("formatted report should contain the overall score and level")
	}
	if !strings.Contains(formatted, "Unilateral Termination") {
		t.Error("formatted report should contain the finding risk type")
	}
	if !strings.Contains(formatted, "Suggestion: Require mutual") {
		t.Error("formatted report should contain the suggestion")
	}

	dims := analysis.Dimensions{
		Parties:      []string{"Acme Software Pvt Ltd", "Rahul Mehta"},
		Duration:     "24 months",
		Jurisdiction: "Singapore",
	}
	formatted = srv.formatDimensions("msa.txt", dims)
	if !strings.Contains(formatted, "Parties: Acme Software Pvt Ltd; Rahul Mehta") {
		t.Error("formatted dimensions should list parties")
	}
	if !strings.Contains(formatted, "Duration: 24 months") {
		t.Error("formatted dimensions should contain duration")
	}
}

// Helper function to extract text from a CallToolResult
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	// Try to extract text content
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		// Handle pointer to TextContent as well
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
