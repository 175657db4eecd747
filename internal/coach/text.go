package coach

import (
	"strings"
	"unicode/utf8"
)

// minQuestionLength drops numbering fragments and headings.
const minQuestionLength = 10

// SplitQuestions splits generated questions on newlines, trimming each line
// and dropping blank lines and lines shorter than ten characters.
func SplitQuestions(text string) []string {
	questions := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < minQuestionLength {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}

// CoverLetterFilename returns the download name for a company's cover letter.
// Path separators in the company name are replaced so the name stays a
// single file.
func CoverLetterFilename(company string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(company))
	return "cover_letter_" + name + ".txt"
}
