package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQuestions(t *testing.T) {
	text := "Here are your questions:\n\n1. Tell me about a time you led a project.\n  2. How do you optimize SQL?  \n3. Why?\n\n\n"

	assert.Equal(t, []string{
		"Here are your questions:",
		"1. Tell me about a time you led a project.",
		"2. How do you optimize SQL?",
	}, SplitQuestions(text))
}

func TestSplitQuestions_Empty(t *testing.T) {
	assert.Empty(t, SplitQuestions(""))
	assert.NotNil(t, SplitQuestions("short"))
}

func TestSplitQuestions_ExactlyTenCharacters(t *testing.T) {
	assert.Equal(t, []string{"0123456789"}, SplitQuestions("012345678\n0123456789"))
}

func TestCoverLetterFilename(t *testing.T) {
	assert.Equal(t, "cover_letter_TechCorp.txt", CoverLetterFilename("TechCorp"))
	assert.Equal(t, "cover_letter_Acme Inc.txt", CoverLetterFilename(" Acme Inc "))
	assert.Equal(t, "cover_letter_A_B_C.txt", CoverLetterFilename(`A/B\C`))
}
