package main

import (
	"time"
)

// --- Users ---

type User struct {
	ID           uint   `gorm:"primaryKey"`
	PublicID     string `gorm:"uniqueIndex;size:36;not null"` // UUID, safe to show outside the DB
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// --- Categories & questions ---

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:128;not null"`
	Description string
	CreatedAt   time.Time
}

type Question struct {
	ID            uint     `gorm:"primaryKey"`
	CategoryID    uint     `gorm:"index;not null"`
	QuestionText  string   `gorm:"not null"`
	OptionA       string   `gorm:"not null"`
	OptionB       string   `gorm:"not null"`
	OptionC       string   `gorm:"not null"`
	OptionD       string   `gorm:"not null"`
	CorrectAnswer string   `gorm:"size:1;not null;check:chk_questions_correct_answer,correct_answer IN ('A','B','C','D')"`
	Category      Category `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// --- Attempts ---

// QuizAttempt is append-only: one row per finished quiz run, never
// updated afterwards.
type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null"`
	CategoryID     uint      `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	CorrectCount   int       `gorm:"not null"`
	AnsweredCount  int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index;not null"`

	User     User                `gorm:"constraint:OnDelete:CASCADE"`
	Category Category            `gorm:"constraint:OnDelete:CASCADE"`
	Answers  []QuizAttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

// QuizAttemptAnswer snapshots the correct letter at scoring time, so a
// later edit of the question does not rewrite history.
type QuizAttemptAnswer struct {
	ID             uint    `gorm:"primaryKey"`
	AttemptID      uint    `gorm:"index;not null"`
	QuestionID     uint    `gorm:"not null"`
	SelectedLetter *string `gorm:"size:8"` // nil = unanswered
	CorrectLetter  string  `gorm:"size:1;not null"`
	IsCorrect      bool    `gorm:"not null"`

	Question Question
}
