package document

import (
	"fmt"
)

// Service handles contract document operations behind path security checks.
type Service struct {
	maxFileSize   int64
	reader        *Reader
	validator     *Validator
	search        *Search
	pathValidator *PathValidator
}

// NewService creates a document service confined to the configured directory.
func NewService(maxFileSize int64, configuredDirectory string) (*Service, error) {
	pathValidator, err := NewPathValidator(configuredDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		reader:        NewReader(maxFileSize),
		validator:     NewValidator(maxFileSize),
		search:        NewSearch(maxFileSize),
		pathValidator: pathValidator,
	}, nil
}

// ReadDocument loads the text of a contract document.
func (s *Service) ReadDocument(req ReadRequest) (*ReadResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.ReadFile(req)
}

// ValidateDocument checks whether a file is a loadable contract document.
func (s *Service) ValidateDocument(req ValidateRequest) (*ValidateResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// SearchDirectory lists contract documents under a directory.
func (s *Service) SearchDirectory(req SearchRequest) (*SearchResult, error) {
	if req.Directory == "" {
		req.Directory = s.pathValidator.ConfiguredDirectory()
	}
	if err := s.pathValidator.ValidateDirectory(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.search.SearchDirectory(req)
}

// ConfiguredDirectory returns the directory documents are served from.
func (s *Service) ConfiguredDirectory() string {
	return s.pathValidator.ConfiguredDirectory()
}

// MaxFileSize returns the maximum accepted document size in bytes.
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// ValidateConfiguration sanity-checks the service limits.
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}
	if s.maxFileSize > 1024*1024*1024 {
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}
	return nil
}
