package main

import (
	"strings"
)

// AnswerSheetEntry is one question of a finished quiz run as collected
// by the UI. Selected is nil when the user skipped the question.
type AnswerSheetEntry struct {
	QuestionID uint
	Selected   *string
}

type gradedAnswer struct {
	QuestionID uint
	Selected   *string // normalized, nil when skipped
	Correct    string
	IsCorrect  bool
}

type tally struct {
	Total    int
	Answered int
	Correct  int
}

func normalizeLetter(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// gradeAnswers scores one sheet against the correct letters. Any
// present selection counts as answered, even if it is not a valid
// option letter; it just cannot be correct then.
func gradeAnswers(sheet []AnswerSheetEntry, correctByID map[uint]string) []gradedAnswer {
	graded := make([]gradedAnswer, 0, len(sheet))
	for _, entry := range sheet {
		correct := normalizeLetter(correctByID[entry.QuestionID])

		var selected *string
		if entry.Selected != nil {
			letter := normalizeLetter(*entry.Selected)
			selected = &letter
		}

		graded = append(graded, gradedAnswer{
			QuestionID: entry.QuestionID,
			Selected:   selected,
			Correct:    correct,
			IsCorrect:  selected != nil && *selected == correct,
		})
	}
	return graded
}

func countGraded(graded []gradedAnswer) tally {
	t := tally{Total: len(graded)}
	for _, g := range graded {
		if g.Selected != nil {
			t.Answered++
		}
		if g.IsCorrect {
			t.Correct++
		}
	}
	return t
}

func scorePercent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) * 100.0 / float64(total)
}
