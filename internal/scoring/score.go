// Package scoring rates interview answers with a fixed set of heuristics.
package scoring

import (
	"strings"
	"unicode"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10

	shortAnswerWords = 20
	longAnswerWords  = 50
)

var (
	exampleMarkers   = []string{"example", "instance", "specifically", "when i"}
	structureMarkers = []string{"first", "then", "finally", "resulted"}
)

// Rule is one heuristic's contribution to a score.
type Rule struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Result is a score together with the rules that produced it.
type Result struct {
	Score     int    `json:"score"`
	WordCount int    `json:"word_count"`
	Rules     []Rule `json:"rules"`
}

// ScoreAnswer returns a quick 1-10 score for an answer: base 5, -2 under 20
// words, +1 over 50 words, and +1 each for example phrasing, a digit and
// sequencing words.
func ScoreAnswer(answer string) int {
	return Breakdown(answer).Score
}

// Breakdown scores an answer and reports every rule that fired.
func Breakdown(answer string) Result {
	words := len(strings.Fields(answer))
	lower := strings.ToLower(answer)

	res := Result{WordCount: words, Rules: []Rule{{Name: "base", Points: baseScore}}}
	switch {
	case words < shortAnswerWords:
		res.Rules = append(res.Rules, Rule{Name: "short answer", Points: -2})
	case words > longAnswerWords:
		res.Rules = append(res.Rules, Rule{Name: "detailed answer", Points: 1})
	}
	if containsAny(lower, exampleMarkers) {
		res.Rules = append(res.Rules, Rule{Name: "specific example", Points: 1})
	}
	if strings.IndexFunc(answer, unicode.IsDigit) >= 0 {
		res.Rules = append(res.Rules, Rule{Name: "metrics", Points: 1})
	}
	if containsAny(lower, structureMarkers) {
		res.Rules = append(res.Rules, Rule{Name: "structure", Points: 1})
	}

	total := 0
	for _, r := range res.Rules {
		total += r.Points
	}
	res.Score = min(max(total, minScore), maxScore)
	return res
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
