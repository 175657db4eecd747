// Package jobs serves the built-in catalog of sample job postings.
package jobs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/interview-coach/internal/types"
)

//go:embed sample_jobs.yaml
var sampleJobsYAML []byte

// fallbackCount is how many postings a search with no matches returns.
const fallbackCount = 2

// ErrNotFound is returned when a posting index is out of range.
var ErrNotFound = errors.New("job posting not found")

// Catalog is an immutable, ordered list of postings.
type Catalog struct {
	postings []types.JobPosting
}

type catalogFile struct {
	Postings []types.JobPosting `yaml:"postings"`
}

// NewCatalog copies postings into a new Catalog.
func NewCatalog(postings []types.JobPosting) *Catalog {
	return &Catalog{postings: append([]types.JobPosting(nil), postings...)}
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse job catalog: %w", err)
	}
	return NewCatalog(f.Postings), nil
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the process-wide sample catalog. It is built once.
var DefaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(sampleJobsYAML)
	if err != nil {
		panic(err)
	}
	return c
})

// Len returns the number of postings.
func (c *Catalog) Len() int {
	return len(c.postings)
}

// All returns a copy of every posting in catalog order.
func (c *Catalog) All() []types.JobPosting {
	return append([]types.JobPosting(nil), c.postings...)
}

// Get returns the posting at index i.
func (c *Catalog) Get(i int) (types.JobPosting, error) {
	if i < 0 || i >= len(c.postings) {
		return types.JobPosting{}, fmt.Errorf("%w: index %d (have %d)", ErrNotFound, i, len(c.postings))
	}
	return c.postings[i], nil
}

// IndexOf returns the catalog index of p, or -1 when it is not in the catalog.
func (c *Catalog) IndexOf(p types.JobPosting) int {
	for i, candidate := range c.postings {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Search filters postings case-insensitively. An empty query or location
// matches everything; the query is tested against title and description, the
// location against the posting location. When nothing matches, the first two
// postings are returned instead, so the result is never empty for a non-empty
// catalog.
func (c *Catalog) Search(query, location string) []types.JobPosting {
	if query == "" && location == "" {
		return c.All()
	}

	q := strings.ToLower(query)
	loc := strings.ToLower(location)

	var matches []types.JobPosting
	for _, job := range c.postings {
		queryMatch := q == "" ||
			strings.Contains(strings.ToLower(job.Title), q) ||
			strings.Contains(strings.ToLower(job.Description), q)
		locationMatch := loc == "" || strings.Contains(strings.ToLower(job.Location), loc)

		if queryMatch && locationMatch {
			matches = append(matches, job)
		}
	}

	if len(matches) == 0 {
		return append([]types.JobPosting(nil), c.postings[:min(fallbackCount, len(c.postings))]...)
	}
	return matches
}

// Search runs Catalog.Search on the default catalog.
func Search(query, location string) []types.JobPosting {
	return DefaultCatalog().Search(query, location)
}
