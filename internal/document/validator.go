package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extensions the loader accepts.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".text": true,
}

// Validator checks that a file is a loadable contract document.
type Validator struct {
	maxFileSize int64
	pdfConf     *model.Configuration
}

// NewValidator creates a validator with the specified size limit.
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		pdfConf:     conf,
	}
}

// ValidateFile validates a document and reports the outcome as a result
// value. Validation failures are messages, not processing errors.
func (v *Validator) ValidateFile(req ValidateRequest) (*ValidateResult, error) {
	result := &ValidateResult{
		Path:  req.Path,
		Valid: false,
	}

	if err := v.validateDocument(req.Path); err != nil {
		result.Message = err.Error()
		return result, nil
	}

	result.Valid = true
	return result, nil
}

// IsValidDocument performs a quick loadability check.
func (v *Validator) IsValidDocument(filePath string) bool {
	return v.validateDocument(filePath) == nil
}

// ValidateFileInfo performs the stat-level checks without opening the file.
func (v *Validator) ValidateFileInfo(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if !supportedExtensions[strings.ToLower(filepath.Ext(filePath))] {
		return fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}
	return nil
}

func (v *Validator) validateDocument(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	if err := v.ValidateFileInfo(filePath, fileInfo); err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		if err := api.ValidateFile(filePath, v.pdfConf); err != nil {
			return fmt.Errorf("invalid PDF file: %w", err)
		}
	}
	return nil
}
