// Package audit maintains a JSON audit trail of contract analysis activity.
// Each server run gets its own session file under the configured log
// directory, rewritten after every event so a crash loses at most the
// event in flight.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	sessionIDLayout = "20060102_150405"
	timestampLayout = "2006-01-02T15:04:05.000000"

	contentHashLength = 16

	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// Event types recorded in the audit trail.
const (
	EventSessionStart     = "session_start"
	EventSessionEnd       = "session_end"
	EventDocumentLoaded   = "document_loaded"
	EventAnalysisStart    = "analysis_start"
	EventAnalysisComplete = "analysis_complete"
	EventRiskFinding      = "risk_finding"
	EventUserAction       = "user_action"
	EventError            = "error"
)

// Entry is a single audit trail record.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	SessionID string         `json:"session_id"`
	EventType string         `json:"event_type"`
	Data      map[string]any `json:"data"`
}

// sessionLog is the on-disk shape of a session file.
type sessionLog struct {
	SessionID string  `json:"session_id"`
	StartTime string  `json:"start_time"`
	Entries   []Entry `json:"entries"`
}

// SessionInfo summarizes a stored session file.
type SessionInfo struct {
	SessionID  string `json:"session_id"`
	StartTime  string `json:"start_time"`
	EventCount int    `json:"event_count"`
	File       string `json:"file"`
}

// Summary describes the current session.
type Summary struct {
	SessionID   string         `json:"session_id"`
	TotalEvents int            `json:"total_events"`
	EventCounts map[string]int `json:"event_counts"`
	StartTime   string         `json:"start_time"`
	LogFile     string         `json:"log_file"`
}

// Logger writes audit events for one analysis session.
type Logger struct {
	mu        sync.Mutex
	enabled   bool
	logDir    string
	sessionID string
	logFile   string
	entries   []Entry
}

// NewLogger creates the log directory, starts a new session and records
// the session_start event.
func NewLogger(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory %s: %w", logDir, err)
	}

	sessionID := time.Now().Format(sessionIDLayout)
	l := &Logger{
		enabled:   true,
		logDir:    logDir,
		sessionID: sessionID,
		logFile:   filepath.Join(logDir, "session_"+sessionID+".json"),
	}

	if err := l.logEvent(EventSessionStart, map[string]any{
		"message": "Audit session started",
	}); err != nil {
		return nil, err
	}

	return l, nil
}

// NewDisabled returns a logger that discards all events. It is used when
// audit logging is switched off in the configuration.
func NewDisabled() *Logger {
	return &Logger{enabled: false}
}

// Enabled reports whether this logger records events.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// SessionID returns the identifier of the current session.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// LogFile returns the path of the session file, empty when disabled.
func (l *Logger) LogFile() string {
	return l.logFile
}

// HashContent returns a truncated SHA-256 hex digest used to identify
// document content without storing it.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:contentHashLength]
}

// LogDocumentLoaded records that a document was read for analysis.
func (l *Logger) LogDocumentLoaded(filename string, fileSize int64, contentHash string) error {
	if contentHash == "" {
		contentHash = "not_computed"
	}
	return l.logEvent(EventDocumentLoaded, map[string]any{
		"filename":        filename,
		"file_size_bytes": fileSize,
		"content_hash":    contentHash,
	})
}

// LogAnalysisStart records the beginning of an analysis run.
func (l *Logger) LogAnalysisStart(documentID, analysisType string) error {
	return l.logEvent(EventAnalysisStart, map[string]any{
		"document_id":   documentID,
		"analysis_type": analysisType,
	})
}

// LogAnalysisComplete records a finished analysis run with a results
// summary that must not contain document content.
func (l *Logger) LogAnalysisComplete(documentID, analysisType string, resultsSummary map[string]any, duration time.Duration) error {
	if resultsSummary == nil {
		resultsSummary = map[string]any{}
	}
	return l.logEvent(EventAnalysisComplete, map[string]any{
		"document_id":     documentID,
		"analysis_type":   analysisType,
		"results_summary": resultsSummary,
		"duration_ms":     duration.Milliseconds(),
	})
}

// LogRiskFinding records a single identified risk.
func (l *Logger) LogRiskFinding(documentID, riskType, riskLevel, clauseID string) error {
	return l.logEvent(EventRiskFinding, map[string]any{
		"document_id": documentID,
		"risk_type":   riskType,
		"risk_level":  riskLevel,
		"clause_id":   clauseID,
	})
}

// LogUserAction records a tool invocation or other user-driven action.
func (l *Logger) LogUserAction(action string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return l.logEvent(EventUserAction, map[string]any{
		"action":  action,
		"details": details,
	})
}

// LogError records a failure with optional context.
func (l *Logger) LogError(errorType, errorMessage string, context map[string]any) error {
	if context == nil {
		context = map[string]any{}
	}
	return l.logEvent(EventError, map[string]any{
		"error_type":    errorType,
		"error_message": errorMessage,
		"context":       context,
	})
}

// EndSession records the session_end event with event totals.
func (l *Logger) EndSession() error {
	l.mu.Lock()
	total := len(l.entries)
	l.mu.Unlock()

	return l.logEvent(EventSessionEnd, map[string]any{
		"message":      "Audit session ended",
		"total_events": total,
	})
}

// SessionSummary returns statistics for the current session.
func (l *Logger) SessionSummary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[string]int)
	for _, entry := range l.entries {
		counts[entry.EventType]++
	}

	startTime := ""
	if len(l.entries) > 0 {
		startTime = l.entries[0].Timestamp
	}

	return Summary{
		SessionID:   l.sessionID,
		TotalEvents: len(l.entries),
		EventCounts: counts,
		StartTime:   startTime,
		LogFile:     l.logFile,
	}
}

// RecentEntries returns up to count of the most recent entries.
func (l *Logger) RecentEntries(count int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if count <= 0 || len(l.entries) == 0 {
		return nil
	}
	if count > len(l.entries) {
		count = len(l.entries)
	}

	recent := make([]Entry, count)
	copy(recent, l.entries[len(l.entries)-count:])
	return recent
}

// ListSessions returns summaries of all session files in logDir, newest
// first. Unreadable files are skipped.
func ListSessions(logDir string) ([]SessionInfo, error) {
	matches, err := filepath.Glob(filepath.Join(logDir, "session_*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit sessions: %w", err)
	}

	var sessions []SessionInfo
	for _, file := range matches {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}

		var log sessionLog
		if err := json.Unmarshal(data, &log); err != nil {
			continue
		}

		sessions = append(sessions, SessionInfo{
			SessionID:  log.SessionID,
			StartTime:  log.StartTime,
			EventCount: len(log.Entries),
			File:       file,
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime > sessions[j].StartTime
	})

	return sessions, nil
}

func (l *Logger) logEvent(eventType string, data map[string]any) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now().Format(timestampLayout),
		SessionID: l.sessionID,
		EventType: eventType,
		Data:      data,
	})

	return l.save()
}

// save rewrites the whole session file; callers hold the mutex.
func (l *Logger) save() error {
	log := sessionLog{
		SessionID: l.sessionID,
		Entries:   l.entries,
	}
	if len(l.entries) > 0 {
		log.StartTime = l.entries[0].Timestamp
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode audit log: %w", err)
	}

	if err := os.WriteFile(l.logFile, data, logFilePerm); err != nil {
		return fmt.Errorf("failed to write audit log %s: %w", l.logFile, err)
	}

	return nil
}
