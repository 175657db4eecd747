package fetch

import (
	"net/url"
	"strings"
)

// Board is a known job board / applicant tracking system.
type Board string

// Known boards.
const (
	BoardGreenhouse      Board = "greenhouse"
	BoardLever           Board = "lever"
	BoardWorkday         Board = "workday"
	BoardAshby           Board = "ashby"
	BoardSmartRecruiters Board = "smartrecruiters"
	BoardUnknown         Board = "unknown"
)

type boardRule struct {
	board    Board
	hosts    []string
	selector []string
	noise    []string
}

var boardRules = []boardRule{
	{
		board:    BoardGreenhouse,
		hosts:    []string{"greenhouse.io"},
		selector: []string{".job__description.body", ".job__description", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section"},
	},
	{
		board:    BoardLever,
		hosts:    []string{"lever.co"},
		selector: []string{".posting-page", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".posting-apply"},
	},
	{
		board:    BoardWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		selector: []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']"},
	},
	{
		board:    BoardAshby,
		hosts:    []string{"ashbyhq.com"},
		selector: []string{"._descriptionText", "main"},
	},
	{
		board:    BoardSmartRecruiters,
		hosts:    []string{"smartrecruiters.com"},
		selector: []string{".job-sections", "main"},
	},
}

// commonNoise applies to every board.
var commonNoise = []string{
	"form",
	".application-form",
	".apply-button-container",
	".eeo-statement",
	".legal-disclosure",
	".social-share",
	".cookie-consent",
}

// DetectBoard identifies the job board from a posting URL.
func DetectBoard(urlStr string) Board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(parsed.Host)
	for _, rule := range boardRules {
		for _, h := range rule.hosts {
			if strings.Contains(host, h) {
				return rule.board
			}
		}
	}
	return BoardUnknown
}

// BoardSelectors returns content and noise selectors for a board.
// Unknown boards get the generic JobPostingSelectors.
func BoardSelectors(board Board) (content []string, noise []string) {
	noise = append([]string{}, commonNoise...)
	for _, rule := range boardRules {
		if rule.board == board {
			return append(rule.selector, JobPostingSelectors()...), append(noise, rule.noise...)
		}
	}
	return JobPostingSelectors(), noise
}
