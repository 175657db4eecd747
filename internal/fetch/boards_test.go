package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBoard(t *testing.T) {
	tests := []struct {
		url  string
		want Board
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", BoardGreenhouse},
		{"https://jobs.lever.co/acme/abc", BoardLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/1", BoardWorkday},
		{"https://jobs.ashbyhq.com/Felix/0d65c993", BoardAshby},
		{"https://jobs.smartrecruiters.com/Acme/1", BoardSmartRecruiters},
		{"https://example.com/careers/1", BoardUnknown},
		{"::not a url", BoardUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBoard(tt.url))
		})
	}
}

func TestBoardSelectors(t *testing.T) {
	content, noise := BoardSelectors(BoardGreenhouse)
	assert.Equal(t, ".job__description.body", content[0])
	assert.Contains(t, content, "main") // generic selectors appended
	assert.Contains(t, noise, "form")
	assert.Contains(t, noise, ".voluntary-self-id")

	content, noise = BoardSelectors(BoardUnknown)
	assert.Equal(t, JobPostingSelectors(), content)
	assert.Equal(t, commonNoise, noise)
}
