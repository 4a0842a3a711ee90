package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minContentLength is the smallest extracted text accepted for analysis.
// The analysis pipeline treats under-length input as the loader's problem,
// so the check lives here at the boundary.
const minContentLength = 100

var (
	blankLines  = regexp.MustCompile(`\n{3,}`)
	runOfSpaces = regexp.MustCompile(`[ \t]{2,}`)
)

// Reader loads contract text from PDF and plain-text files.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the specified size limits.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024,
	}
}

// ReadFile extracts and normalizes the text of one contract document.
func (r *Reader) ReadFile(req ReadRequest) (*ReadResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", req.Path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	extension := strings.ToLower(filepath.Ext(req.Path))
	if !supportedExtensions[extension] {
		return nil, fmt.Errorf("unsupported file format: %s", extension)
	}

	var (
		content   string
		pageCount int
	)
	switch extension {
	case ".pdf":
		content, pageCount, err = r.extractPDFText(req.Path)
	default:
		content, err = r.extractPlainText(req.Path)
	}
	if err != nil {
		return nil, err
	}

	content = NormalizeText(content)
	if len(content) < minContentLength {
		return nil, fmt.Errorf("document too short for analysis: %d characters (min: %d)",
			len(content), minContentLength)
	}

	return &ReadResult{
		Content: content,
		Path:    req.Path,
		Metadata: Metadata{
			Filename:  filepath.Base(req.Path),
			Extension: extension,
			SizeBytes: fileInfo.Size(),
			CharCount: len(content),
			WordCount: len(strings.Fields(content)),
			PageCount: pageCount,
		},
	}, nil
}

// extractPDFText pulls plain text from every readable page, joined with
// blank lines the way the clause segmenter expects.
func (r *Reader) extractPDFText(filePath string) (string, int, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var parts []string
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Keep going; a single broken page should not sink the document.
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}

		if totalLength+len(pageText) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				parts = append(parts, pageText[:remaining])
			}
			break
		}
		parts = append(parts, pageText)
		totalLength += len(pageText)
	}

	if len(parts) == 0 {
		return "", 0, fmt.Errorf("no text content could be extracted from PDF")
	}
	return strings.Join(parts, "\n\n"), pdfReader.NumPage(), nil
}

func (r *Reader) extractPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}

// NormalizeText collapses runs of horizontal whitespace and excess blank
// lines while preserving the line structure the segmenter relies on.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = runOfSpaces.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
