package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Per-keyword contribution cap and indicator bookkeeping limits.
const (
	maxKeywordContribution = 5
	patternMatchScore      = 10
	maxKeyIndicators       = 10
	patternIndicatorWidth  = 30
)

// confidenceCeiling is the fraction of a profile's maximum possible score
// treated as full confidence. Real contracts rarely hit every keyword, so
// 30% of the maximum already indicates a strong match.
const confidenceCeiling = 0.3

// Classifier determines the contract type of a document by scoring it
// against every contract profile in the catalog.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier creates a classifier reading the given catalog.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

type profileScore struct {
	score      int
	indicators []string
}

// Classify scores the text against every contract profile and returns the
// best match with a normalized confidence. Documents matching no profile
// come back as Unknown with zero confidence.
func (c *Classifier) Classify(text string) Classification {
	textLower := strings.ToLower(text)

	var (
		best      *contractProfile
		bestScore profileScore
	)
	for i := range c.catalog.contractProfiles {
		profile := &c.catalog.contractProfiles[i]
		ps := scoreProfile(profile, text, textLower)
		if ps.score > bestScore.score {
			best = profile
			bestScore = ps
		}
	}

	if best == nil {
		return Classification{
			ContractType:  ContractTypeUnknown,
			Confidence:    0.0,
			KeyIndicators: []string{},
		}
	}

	maxPossible := len(best.Keywords)*maxKeywordContribution + len(best.Patterns)*patternMatchScore
	confidence := math.Min(1.0, float64(bestScore.score)/(float64(maxPossible)*confidenceCeiling))

	return Classification{
		ContractType:  best.Type,
		Confidence:    math.Round(confidence*100) / 100,
		SubType:       c.determineSubType(textLower, best),
		KeyIndicators: bestScore.indicators,
	}
}

// scoreProfile accumulates keyword counts (capped per keyword) and flat
// pattern bonuses, recording up to 10 matched indicators.
func scoreProfile(profile *contractProfile, text, textLower string) profileScore {
	var ps profileScore

	for _, keyword := range profile.Keywords {
		count := strings.Count(textLower, keyword)
		if count == 0 {
			continue
		}
		if count > maxKeywordContribution {
			count = maxKeywordContribution
		}
		ps.score += count
		ps.indicators = append(ps.indicators, keyword)
	}

	for i, re := range profile.Patterns {
		if re.MatchString(text) {
			ps.score += patternMatchScore
			ps.indicators = append(ps.indicators,
				fmt.Sprintf("[pattern: %s...]", truncate(profile.RawPatterns[i], patternIndicatorWidth)))
		}
	}

	if len(ps.indicators) > maxKeyIndicators {
		ps.indicators = ps.indicators[:maxKeyIndicators]
	}
	return ps
}

// determineSubType picks the sub-type whose name appears literally in the
// text, falling back to type-specific heuristics and finally the profile's
// first listed sub-type.
func (c *Classifier) determineSubType(textLower string, profile *contractProfile) string {
	for _, subType := range profile.SubTypes {
		if strings.Contains(textLower, strings.ToLower(subType)) {
			return subType
		}
	}

	switch profile.Type {
	case "Employment Agreement":
		switch {
		case strings.Contains(textLower, "probation"):
			return "Probationary"
		case strings.Contains(textLower, "fixed term") || strings.Contains(textLower, "fixed-term"):
			return "Fixed-term"
		case strings.Contains(textLower, "executive") || strings.Contains(textLower, "managing director"):
			return "Executive"
		default:
			return "Full-time"
		}
	case "Lease Agreement":
		switch {
		case strings.Contains(textLower, "residential") || strings.Contains(textLower, "house") || strings.Contains(textLower, "apartment"):
			return "Residential"
		case strings.Contains(textLower, "commercial") || strings.Contains(textLower, "office") || strings.Contains(textLower, "shop"):
			return "Commercial"
		case strings.Contains(textLower, "leave and license"):
			return "Leave and License"
		default:
			return "Commercial"
		}
	case "Non-Disclosure Agreement":
		if strings.Contains(textLower, "mutual") {
			return "Mutual NDA"
		}
		return "One-way NDA"
	}

	if len(profile.SubTypes) > 0 {
		return profile.SubTypes[0]
	}
	return ""
}

// TypeScore is one entry of the full scoring breakdown across profiles.
type TypeScore struct {
	ContractType string  `json:"contract_type"`
	Score        float64 `json:"score"`
}

// AllScores returns a coarse presence-based score for every profile the text
// touches, sorted descending. Keywords count 1, patterns count 5.
func (c *Classifier) AllScores(text string) []TypeScore {
	textLower := strings.ToLower(text)

	var scores []TypeScore
	for i := range c.catalog.contractProfiles {
		profile := &c.catalog.contractProfiles[i]
		score := 0
		for _, keyword := range profile.Keywords {
			if strings.Contains(textLower, keyword) {
				score++
			}
		}
		for _, re := range profile.Patterns {
			if re.MatchString(text) {
				score += 5
			}
		}
		if score > 0 {
			scores = append(scores, TypeScore{ContractType: profile.Type, Score: float64(score)})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}
