package skills

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/interview-coach/internal/types"
)

// Extractor matches a compiled Vocabulary against job descriptions.
// It is safe for concurrent use.
type Extractor struct {
	terms    []Term
	patterns []*regexp.Regexp
}

// NewExtractor compiles the vocabulary's experience patterns.
func NewExtractor(v Vocabulary) (*Extractor, error) {
	patterns := make([]*regexp.Regexp, 0, len(v.ExperiencePatterns))
	for _, p := range v.ExperiencePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid experience pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	terms := make([]Term, len(v.Terms))
	for i, t := range v.Terms {
		terms[i] = Term{Name: strings.ToLower(t.Name), Category: t.Category}
	}
	return &Extractor{terms: terms, patterns: patterns}, nil
}

// Extract returns the skills found in description, title-cased in vocabulary
// order, and at most one experience requirement. It never fails.
func (e *Extractor) Extract(description string) types.ExtractedInfo {
	info := types.NewExtractedInfo()
	text := strings.ToLower(description)

	// Casers are stateful, so one per call
	title := cases.Title(language.English)
	for _, term := range e.terms {
		if term.Name == "" || !strings.Contains(text, term.Name) {
			continue
		}
		name := title.String(term.Name)
		info.Skills = append(info.Skills, name)
		if term.Category != "" {
			if info.Categories == nil {
				info.Categories = make(map[string]string)
			}
			info.Categories[name] = term.Category
		}
	}

	for _, re := range e.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		groups := m[1:]
		if len(groups) == 0 {
			groups = m[:1]
		}
		info.Requirements = append(info.Requirements, fmt.Sprintf("Experience: %s years", strings.Join(groups, "-")))
		break
	}

	return info
}

var defaultExtractor = sync.OnceValue(func() *Extractor {
	e, err := NewExtractor(DefaultVocabulary())
	if err != nil {
		panic(err)
	}
	return e
})

// ExtractKeyInfo runs the default vocabulary over description.
func ExtractKeyInfo(description string) types.ExtractedInfo {
	return defaultExtractor().Extract(description)
}
