package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator confines file access to the configured contract directory.
type PathValidator struct {
	configuredDirectory string
}

// NewPathValidator creates a validator rooted at the given directory. The
// directory does not need to exist yet; validation is skipped until it does.
func NewPathValidator(configuredDirectory string) (*PathValidator, error) {
	if configuredDirectory == "" {
		return nil, fmt.Errorf("configured directory cannot be empty")
	}
	return &PathValidator{configuredDirectory: configuredDirectory}, nil
}

// ValidatePath checks that a path resolves inside the configured directory.
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if _, err := os.Stat(v.configuredDirectory); os.IsNotExist(err) {
		return nil
	}

	within, err := v.isWithinConfiguredDirectory(path)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}
	if !within {
		return fmt.Errorf("path is outside configured directory: %s", path)
	}
	return nil
}

// ValidateDirectory checks that a directory path is inside the configured
// directory and is in fact a directory when it exists.
func (v *PathValidator) ValidateDirectory(dirPath string) error {
	if err := v.ValidatePath(dirPath); err != nil {
		return err
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return nil
}

// ConfiguredDirectory returns the directory this validator is rooted at.
func (v *PathValidator) ConfiguredDirectory() string {
	return v.configuredDirectory
}

func (v *PathValidator) isWithinConfiguredDirectory(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	absDir, err := filepath.Abs(v.configuredDirectory)
	if err != nil {
		return false, fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(absDir)

	// Resolve symlinks so a link pointing outside the directory cannot pass.
	realPath := cleanPath
	if info, err := os.Lstat(cleanPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
			realPath = resolved
		}
	}
	realDir := cleanDir
	if resolved, err := filepath.EvalSymlinks(cleanDir); err == nil {
		realDir = resolved
	}

	return pathHasPrefix(cleanPath, cleanDir, realDir) &&
		pathHasPrefix(realPath, cleanDir, realDir), nil
}

func pathHasPrefix(path string, dirs ...string) bool {
	for _, dir := range dirs {
		withSep := dir
		if !strings.HasSuffix(withSep, string(filepath.Separator)) {
			withSep += string(filepath.Separator)
		}
		if path == dir || strings.HasPrefix(path, withSep) {
			return true
		}
	}
	return false
}
