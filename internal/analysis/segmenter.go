package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Bounds applied while carving clauses.
const (
	minClauseContentLength = 20
	maxClauseTitleLength   = 200
	maxClauseContentLength = 2000
)

// Segmenter splits raw contract text into ordered clause skeletons using
// the catalog's heading conventions.
type Segmenter struct {
	catalog *Catalog
}

// NewSegmenter creates a segmenter reading the given catalog.
func NewSegmenter(catalog *Catalog) *Segmenter {
	return &Segmenter{catalog: catalog}
}

// headingCandidate is one heading match before carving.
type headingCandidate struct {
	id    string
	title string
	start int
	end   int
}

// Segment finds clause boundaries and carves clause bodies between
// consecutive headings. Zero boundaries yields an empty, valid result.
// Category and extraction fields are left for the extractor to fill.
func (s *Segmenter) Segment(text string) []Clause {
	candidates := s.findCandidates(text)

	// Stable sort keeps discovery order (convention order) for the rare
	// same-offset overlap, which makes segmentation deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	clauses := make([]Clause, 0, len(candidates))
	for i, cand := range candidates {
		bodyEnd := len(text)
		if i+1 < len(candidates) {
			bodyEnd = candidates[i+1].start
		}
		content := strings.TrimSpace(text[cand.end:bodyEnd])

		// A heading with almost no body is a spurious match, e.g. a lone
		// digit inside a sentence.
		if len(content) < minClauseContentLength {
			continue
		}

		clauses = append(clauses, Clause{
			ID:      cand.id,
			Title:   truncate(cand.title, maxClauseTitleLength),
			Content: truncate(content, maxClauseContentLength),
		})
	}

	return clauses
}

// findCandidates collects heading matches from every convention over the
// full text.
func (s *Segmenter) findCandidates(text string) []headingCandidate {
	var candidates []headingCandidate

	for _, re := range s.catalog.headingPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			id := ""
			if m[2] >= 0 {
				id = strings.TrimSpace(text[m[2]:m[3]])
			}
			if id == "" {
				continue
			}
			title := ""
			if len(m) > 5 && m[4] >= 0 {
				title = strings.TrimSpace(text[m[4]:m[5]])
			}
			candidates = append(candidates, headingCandidate{
				id:    id,
				title: title,
				start: m[0],
				end:   m[1],
			})
		}
	}

	return candidates
}

// truncate caps a string at max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
