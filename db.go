package main

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		// Let gorm map driver errors to ErrDuplicatedKey /
		// ErrForeignKeyViolated where the dialect supports it.
		TranslateError: true,
	}

	if cfg.DBDSN != "" {
		return gorm.Open(postgres.Open(cfg.DBDSN), gormCfg)
	}

	path := cfg.DBPath
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}

	// A desktop process is the only writer; one connection keeps SQLite
	// (and the in-memory DB used by tests) well-behaved.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Question{},
		&QuizAttempt{},
		&QuizAttemptAnswer{},
	)
}
