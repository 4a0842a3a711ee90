package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Search discovers contract documents under a directory.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a search handler with the specified size limit.
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// SearchDirectory walks the directory tree collecting loadable contract
// documents, optionally filtered by a fuzzy filename query.
func (s *Search) SearchDirectory(req SearchRequest) (*SearchResult, error) {
	if req.Directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}
	if _, err := os.Stat(req.Directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", req.Directory)
	}

	absDirectory, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	var files []FileInfo

	err = filepath.Walk(absDirectory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr // keep walking past unreadable entries
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != absDirectory {
				return filepath.SkipDir
			}
			return nil
		}
		if s.validator.ValidateFileInfo(path, info) != nil {
			return nil
		}
		if query != "" && !matchesQuery(info.Name(), query) {
			return nil
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return &SearchResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// CountDocumentsInDirectory counts loadable contract documents in a tree.
func (s *Search) CountDocumentsInDirectory(directory string) (int, error) {
	result, err := s.SearchDirectory(SearchRequest{Directory: directory})
	if err != nil {
		return 0, err
	}
	return result.TotalCount, nil
}

// matchesQuery reports whether a filename loosely matches the query: a
// substring hit, or every query token appearing somewhere in the name.
func matchesQuery(filename, query string) bool {
	name := strings.ToLower(filename)
	if strings.Contains(name, query) {
		return true
	}
	for _, token := range strings.Fields(query) {
		if !strings.Contains(name, token) {
			return false
		}
	}
	return true
}
