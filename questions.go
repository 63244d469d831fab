package main

import (
	"context"

	"gorm.io/gorm/clause"
)

func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var categories []Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

func (s *Store) HasCategories(ctx context.Context) (bool, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

// QuizQuestions draws a random subset for one quiz run.
func (s *Store) QuizQuestions(ctx context.Context, categoryID uint, limit int) ([]Question, error) {
	if limit < 1 {
		limit = 1
	}

	db, cancel := s.session(ctx)
	defer cancel()

	var questions []Question
	if err := db.Where("category_id = ?", categoryID).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

// --- Admin surface ---

// AdminQuestion is the lightweight row shown in the management list.
type AdminQuestion struct {
	ID            uint
	Category      string
	QuestionText  string
	CorrectAnswer string
}

func (s *Store) ListQuestions(ctx context.Context, limit int) ([]AdminQuestion, error) {
	if limit <= 0 {
		limit = 200
	}

	db, cancel := s.session(ctx)
	defer cancel()

	var rows []AdminQuestion
	if err := db.Table("questions q").
		Select("q.id, c.name AS category, q.question_text, q.correct_answer").
		Joins("JOIN categories c ON c.id = q.category_id").
		Order("q.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (s *Store) QuestionByID(ctx context.Context, id uint) (*Question, error) {
	db, cancel := s.session(ctx)
	defer cancel()

	var question Question
	if err := db.First(&question, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &question, nil
}

type QuestionInput struct {
	CategoryID    uint   `validate:"required"`
	QuestionText  string `validate:"required"`
	OptionA       string `validate:"required"`
	OptionB       string `validate:"required"`
	OptionC       string `validate:"required"`
	OptionD       string `validate:"required"`
	CorrectAnswer string `validate:"required,oneof=A B C D"`
}

func (s *Store) CreateQuestion(ctx context.Context, in QuestionInput) (*Question, error) {
	in.CorrectAnswer = normalizeLetter(in.CorrectAnswer)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	question := Question{
		CategoryID:    in.CategoryID,
		QuestionText:  in.QuestionText,
		OptionA:       in.OptionA,
		OptionB:       in.OptionB,
		OptionC:       in.OptionC,
		OptionD:       in.OptionD,
		CorrectAnswer: in.CorrectAnswer,
	}

	db, cancel := s.session(ctx)
	defer cancel()
	if err := db.Omit(clause.Associations).Create(&question).Error; err != nil {
		return nil, classify(err)
	}
	return &question, nil
}

func (s *Store) UpdateQuestion(ctx context.Context, id uint, in QuestionInput) error {
	in.CorrectAnswer = normalizeLetter(in.CorrectAnswer)
	if err := validate.Struct(in); err != nil {
		return err
	}

	db, cancel := s.session(ctx)
	defer cancel()

	res := db.Model(&Question{}).Where("id = ?", id).Updates(map[string]any{
		"category_id":    in.CategoryID,
		"question_text":  in.QuestionText,
		"option_a":       in.OptionA,
		"option_b":       in.OptionB,
		"option_c":       in.OptionC,
		"option_d":       in.OptionD,
		"correct_answer": in.CorrectAnswer,
	})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteQuestion removes a question. Questions referenced by recorded
// attempt answers are protected by the FK and come back as
// ErrConstraintViolation; history stays intact.
func (s *Store) DeleteQuestion(ctx context.Context, id uint) error {
	db, cancel := s.session(ctx)
	defer cancel()

	res := db.Delete(&Question{}, "id = ?", id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
