package ingestion

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// MinLength is the minimum number of characters preprocessed text must keep.
	MinLength = 50
	// MaxLength is the character limit applied before the truncation marker.
	MaxLength = 8000
	// TruncationMarker is appended to text cut at MaxLength.
	TruncationMarker = "\n\n[Description truncated due to length...]"
)

const jobTemplate = `Job Title: %s
Company: %s
Location: %s

Job Description:
%s`

// PreprocessJob renders a posting into a single cleaned, length-bounded string
// ready for prompting. It returns a *ValidationError when the cleaned text is
// shorter than MinLength characters.
func PreprocessJob(job types.JobPosting) (string, error) {
	full := strings.TrimSpace(fmt.Sprintf(jobTemplate, job.Title, job.Company, job.Location, job.Description))
	return bound(CleanText(full), "job")
}

// PrepareDescription applies the same cleaning, validation and truncation to
// free-form job text (pasted, read from a file or fetched from a URL).
func PrepareDescription(raw string) (string, error) {
	return bound(CleanText(raw), "job_description")
}

// bound enforces the minimum-length gate and the MaxLength truncation.
// Lengths are counted in characters, not bytes.
func bound(cleaned string, field string) (string, error) {
	n := utf8.RuneCountInString(cleaned)
	if n < MinLength {
		return "", &ValidationError{Field: field, Length: n, Min: MinLength}
	}
	if n > MaxLength {
		cleaned = truncateRunes(cleaned, MaxLength) + TruncationMarker
	}
	return cleaned, nil
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
