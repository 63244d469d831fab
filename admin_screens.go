package main

import (
	"context"
	"errors"
	"fmt"
)

func (a *App) adminScreen(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n--- Manage questions ---")
		fmt.Fprintln(a.out, "[1] List  [2] Add  [3] Edit  [4] Delete  [Enter] Back")
		choice, ok := a.readLine()
		if !ok || choice == "" {
			return
		}

		switch choice {
		case "1":
			a.listQuestionsScreen(ctx)
		case "2":
			a.editQuestionScreen(ctx, 0)
		case "3":
			id, ok := a.promptUint("Question id: ")
			if !ok {
				return
			}
			a.editQuestionScreen(ctx, id)
		case "4":
			a.deleteQuestionScreen(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown choice.")
		}
	}
}

func (a *App) listQuestionsScreen(ctx context.Context) {
	rows, err := a.store.ListQuestions(ctx, 0)
	if err != nil {
		a.fail(err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No questions yet.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "#%-4d [%s] %-18s %s\n", r.ID, r.CorrectAnswer, r.Category, r.QuestionText)
	}
}

// editQuestionScreen creates a question when id is 0 and edits an
// existing one otherwise, prefilling prompts from the current row.
func (a *App) editQuestionScreen(ctx context.Context, id uint) {
	var current Question
	if id != 0 {
		q, err := a.store.QuestionByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				fmt.Fprintln(a.out, "No such question.")
			} else {
				a.fail(err)
			}
			return
		}
		current = *q
	}

	categories, err := a.store.Categories(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "[%d] %s\n", c.ID, c.Name)
	}

	in := QuestionInput{
		CategoryID:    current.CategoryID,
		QuestionText:  current.QuestionText,
		OptionA:       current.OptionA,
		OptionB:       current.OptionB,
		OptionC:       current.OptionC,
		OptionD:       current.OptionD,
		CorrectAnswer: current.CorrectAnswer,
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Question text", &in.QuestionText},
		{"Option A", &in.OptionA},
		{"Option B", &in.OptionB},
		{"Option C", &in.OptionC},
		{"Option D", &in.OptionD},
		{"Correct letter (A-D)", &in.CorrectAnswer},
	}

	catText, ok := a.prompt(fmt.Sprintf("Category id [%d]: ", in.CategoryID))
	if !ok {
		return
	}
	if catText != "" {
		if _, err := fmt.Sscanf(catText, "%d", &in.CategoryID); err != nil {
			fmt.Fprintln(a.out, "Not a number.")
			return
		}
	}

	for _, f := range fields {
		text, ok := a.prompt(fmt.Sprintf("%s [%s]: ", f.label, *f.dst))
		if !ok {
			return
		}
		if text != "" {
			*f.dst = text
		}
	}

	if id == 0 {
		question, err := a.store.CreateQuestion(ctx, in)
		if err != nil {
			a.fail(err)
			return
		}
		fmt.Fprintf(a.out, "Created question #%d.\n", question.ID)
		return
	}

	if err := a.store.UpdateQuestion(ctx, id, in); err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintf(a.out, "Updated question #%d.\n", id)
}

func (a *App) deleteQuestionScreen(ctx context.Context) {
	id, ok := a.promptUint("Question id: ")
	if !ok {
		return
	}

	err := a.store.DeleteQuestion(ctx, id)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Deleted question #%d.\n", id)
	case errors.Is(err, ErrNotFound):
		fmt.Fprintln(a.out, "No such question.")
	case errors.Is(err, ErrConstraintViolation):
		fmt.Fprintln(a.out, "Question is referenced by recorded attempts and cannot be deleted.")
	default:
		a.fail(err)
	}
}
