package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath        string        // SQLite file, used when DBDSN is empty
	DBDSN         string        // PostgreSQL DSN; takes precedence when set
	SeedFile      string        // optional JSON seed override
	RecentLimit   int           // rows shown in "recent activity"
	QuestionLimit int           // questions drawn per quiz run
	QueryTimeout  time.Duration // per-operation DB deadline
}

// LoadConfig reads the environment, after loading a .env file if one
// sits next to the process. Real environment variables always win.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:        envStr("QUIZ_DB_PATH", "quiz.db"),
		DBDSN:         os.Getenv("QUIZ_DB_DSN"),
		SeedFile:      envStr("QUIZ_SEED_FILE", "data/seed.json"),
		RecentLimit:   envInt("QUIZ_RECENT_LIMIT", 5),
		QuestionLimit: envInt("QUIZ_QUESTION_LIMIT", 10),
		QueryTimeout:  envDuration("QUIZ_QUERY_TIMEOUT", 5*time.Second),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
