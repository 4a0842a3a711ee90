package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestContract(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func testContractText() string {
	return strings.Repeat("The parties agree to the terms and conditions set out in this agreement. ", 4)
}

func TestNewService(t *testing.T) {
	service, err := NewService(1024*1024, t.TempDir())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if service.reader == nil || service.validator == nil || service.search == nil {
		t.Error("Expected all components to be initialized")
	}
	if service.MaxFileSize() != 1024*1024 {
		t.Errorf("Unexpected max file size: %d", service.MaxFileSize())
	}
}

func TestNewServiceEmptyDirectory(t *testing.T) {
	if _, err := NewService(1024, ""); err == nil {
		t.Error("Expected error for empty configured directory")
	}
}

func TestServiceReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeTestContract(t, dir, "services.txt", testContractText())

	service, err := NewService(1024*1024, dir)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := service.ReadDocument(ReadRequest{Path: path})
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if result.Metadata.Filename != "services.txt" {
		t.Errorf("Unexpected filename: %q", result.Metadata.Filename)
	}
	if result.Metadata.Extension != ".txt" {
		t.Errorf("Unexpected extension: %q", result.Metadata.Extension)
	}
	if result.Metadata.WordCount == 0 || result.Metadata.CharCount == 0 {
		t.Error("Expected non-zero word and char counts")
	}
	if !strings.Contains(result.Content, "terms and conditions") {
		t.Errorf("Unexpected content: %q", result.Content[:40])
	}
}

func TestServiceReadDocumentOutsideDirectory(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	path := writeTestContract(t, other, "outside.txt", testContractText())

	service, err := NewService(1024*1024, dir)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := service.ReadDocument(ReadRequest{Path: path}); err == nil {
		t.Error("Expected security validation failure for path outside directory")
	}
}

func TestServiceReadDocumentTooShort(t *testing.T) {
	dir := t.TempDir()
	path := writeTestContract(t, dir, "tiny.txt", "too short")

	service, err := NewService(1024*1024, dir)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := service.ReadDocument(ReadRequest{Path: path}); err == nil {
		t.Error("Expected error for under-length document")
	}
}

func TestServiceSearchDirectoryDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTestContract(t, dir, "nda_v2.txt", testContractText())
	writeTestContract(t, dir, "lease.txt", testContractText())
	writeTestContract(t, dir, "notes.md", testContractText())

	service, err := NewService(1024*1024, dir)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := service.SearchDirectory(SearchRequest{})
	if err != nil {
		t.Fatalf("SearchDirectory: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("Expected 2 documents, got %d", result.TotalCount)
	}

	filtered, err := service.SearchDirectory(SearchRequest{Query: "nda"})
	if err != nil {
		t.Fatalf("SearchDirectory: %v", err)
	}
	if filtered.TotalCount != 1 || filtered.Files[0].Name != "nda_v2.txt" {
		t.Errorf("Unexpected filtered result: %+v", filtered.Files)
	}
}

func TestServiceValidateConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		maxFileSize int64
		wantErr     bool
	}{
		{"valid", 1024 * 1024, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", 2 * 1024 * 1024 * 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{maxFileSize: tt.maxFileSize}
			err := service.ValidateConfiguration()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfiguration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
