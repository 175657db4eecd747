// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting is a single job listing. Values are never updated in place.
type JobPosting struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// ExtractedInfo holds keyword-derived hints about a job description.
// Responsibilities and Benefits are reserved and always empty.
type ExtractedInfo struct {
	Skills           []string          `json:"skills"`
	Requirements     []string          `json:"requirements"`
	Responsibilities []string          `json:"responsibilities"`
	Benefits         []string          `json:"benefits"`
	Categories       map[string]string `json:"categories,omitempty"` // skill -> vocabulary category
}

// NewExtractedInfo returns an ExtractedInfo with all slices initialized,
// so it always serializes with empty arrays rather than null.
func NewExtractedInfo() ExtractedInfo {
	return ExtractedInfo{
		Skills:           []string{},
		Requirements:     []string{},
		Responsibilities: []string{},
		Benefits:         []string{},
	}
}

// Evaluation is one answered question from a mock interview.
type Evaluation struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Feedback   string `json:"feedback"`
	QuickScore int    `json:"quick_score"`
}
