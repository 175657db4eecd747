// Package skills extracts keyword-based skill and experience hints from job text.
package skills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Term is a vocabulary entry matched by lower-case substring.
type Term struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// Vocabulary is the configurable term list and experience patterns.
// Terms are tested in order; patterns are tried in order and the first
// pattern with any match wins.
type Vocabulary struct {
	Terms              []Term   `yaml:"terms" json:"terms"`
	ExperiencePatterns []string `yaml:"experience_patterns" json:"experience_patterns"`
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Terms: []Term{
			{Name: "python", Category: "language"},
			{Name: "sql", Category: "data"},
			{Name: "java", Category: "language"},
			{Name: "javascript", Category: "language"},
			{Name: "react", Category: "framework"},
			{Name: "aws", Category: "cloud"},
			{Name: "machine learning", Category: "data science"},
			{Name: "data analysis", Category: "analytics"},
			{Name: "tableau", Category: "visualization"},
			{Name: "excel", Category: "tool"},
		},
		ExperiencePatterns: []string{
			`(\d+)\+?\s*years?`,
			`(\d+)-(\d+)\s*years?`,
		},
	}
}

// LoadVocabulary reads a YAML vocabulary file. Patterns omitted from the file
// fall back to the defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}
	if len(v.Terms) == 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s defines no terms", path)
	}
	if len(v.ExperiencePatterns) == 0 {
		v.ExperiencePatterns = DefaultVocabulary().ExperiencePatterns
	}
	return v, nil
}
