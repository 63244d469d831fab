package main

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndListQuestions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	category, seeded := seedQuiz(t, store)

	created, err := store.CreateQuestion(ctx, QuestionInput{
		CategoryID:    category.ID,
		QuestionText:  "Largest planet?",
		OptionA:       "Jupiter",
		OptionB:       "Saturn",
		OptionC:       "Earth",
		OptionD:       "Neptune",
		CorrectAnswer: "a", // normalized to A
	})
	if err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if created.CorrectAnswer != "A" {
		t.Errorf("CorrectAnswer = %q, want normalized %q", created.CorrectAnswer, "A")
	}

	rows, err := store.ListQuestions(ctx, 0)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(rows) != len(seeded)+1 {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(seeded)+1)
	}
	// Newest first.
	if rows[0].ID != created.ID {
		t.Errorf("rows[0].ID = %d, want newest %d", rows[0].ID, created.ID)
	}
	if rows[0].Category != category.Name {
		t.Errorf("rows[0].Category = %q, want %q", rows[0].Category, category.Name)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	category, _ := seedQuiz(t, store)

	base := QuestionInput{
		CategoryID:    category.ID,
		QuestionText:  "Valid?",
		OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: "A",
	}

	bad := base
	bad.CorrectAnswer = "E"
	if _, err := store.CreateQuestion(ctx, bad); err == nil {
		t.Errorf("expected validation error for correct answer E")
	}

	bad = base
	bad.QuestionText = ""
	if _, err := store.CreateQuestion(ctx, bad); err == nil {
		t.Errorf("expected validation error for empty question text")
	}

	bad = base
	bad.CategoryID = 424242
	if _, err := store.CreateQuestion(ctx, bad); !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("unknown category: err = %v, want ErrConstraintViolation", err)
	}
}

func TestUpdateQuestion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	category, questions := seedQuiz(t, store)

	in := QuestionInput{
		CategoryID:    category.ID,
		QuestionText:  "Edited text",
		OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: "D",
	}
	if err := store.UpdateQuestion(ctx, questions[0].ID, in); err != nil {
		t.Fatalf("UpdateQuestion failed: %v", err)
	}

	got, err := store.QuestionByID(ctx, questions[0].ID)
	if err != nil {
		t.Fatalf("QuestionByID failed: %v", err)
	}
	if got.QuestionText != "Edited text" || got.CorrectAnswer != "D" {
		t.Errorf("question not updated: %+v", got)
	}

	if err := store.UpdateQuestion(ctx, 99999, in); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := mustRegister(t, store, "demo")
	category, questions := seedQuiz(t, store)

	if err := store.DeleteQuestion(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}

	// A question referenced by a recorded attempt must stay.
	sheet := []AnswerSheetEntry{{QuestionID: questions[0].ID, Selected: strptr("B")}}
	if _, err := store.RecordAttempt(ctx, user.ID, category.ID, sheet); err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}
	if err := store.DeleteQuestion(ctx, questions[0].ID); !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("referenced question: err = %v, want ErrConstraintViolation", err)
	}

	// An unreferenced one goes away.
	if err := store.DeleteQuestion(ctx, questions[1].ID); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if _, err := store.QuestionByID(ctx, questions[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted question still readable: err = %v", err)
	}
}

func TestQuizQuestionsDraw(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	category, questions := seedQuiz(t, store)

	other := Category{Name: "Other"}
	if err := store.db.Create(&other).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	drawn, err := store.QuizQuestions(ctx, category.ID, 2)
	if err != nil {
		t.Fatalf("QuizQuestions failed: %v", err)
	}
	if len(drawn) != 2 {
		t.Fatalf("len(drawn) = %d, want 2", len(drawn))
	}
	for _, q := range drawn {
		if q.CategoryID != category.ID {
			t.Errorf("question %d from category %d, want %d", q.ID, q.CategoryID, category.ID)
		}
	}

	all, err := store.QuizQuestions(ctx, category.ID, 100)
	if err != nil {
		t.Fatalf("QuizQuestions failed: %v", err)
	}
	if len(all) != len(questions) {
		t.Errorf("len(all) = %d, want %d", len(all), len(questions))
	}

	none, err := store.QuizQuestions(ctx, other.ID, 10)
	if err != nil {
		t.Fatalf("QuizQuestions failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("empty category returned %d questions", len(none))
	}
}

func TestCategoriesSortedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Zoology", "Algebra", "Music"} {
		if err := store.db.Create(&Category{Name: name}).Error; err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("len = %d, want 3", len(categories))
	}
	if categories[0].Name != "Algebra" || categories[2].Name != "Zoology" {
		t.Errorf("categories not sorted by name: %v", categories)
	}
}
