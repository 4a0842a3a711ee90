package document

// FileInfo describes one discoverable contract document on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// ReadRequest asks for the text of one contract document.
type ReadRequest struct {
	Path string `json:"path"`
}

// Metadata carries extraction bookkeeping for a loaded document.
type Metadata struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	SizeBytes int64  `json:"size_bytes"`
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	PageCount int    `json:"page_count,omitempty"`
}

// ReadResult is the outcome of loading a contract document.
type ReadResult struct {
	Content  string   `json:"content"`
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
}

// ValidateRequest asks whether a file is a loadable contract document.
type ValidateRequest struct {
	Path string `json:"path"`
}

// ValidateResult reports validation outcome with a message on failure.
type ValidateResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// SearchRequest asks for contract documents under a directory, optionally
// filtered by a fuzzy filename query.
type SearchRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// SearchResult lists the matching contract documents.
type SearchResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
