// internal/config/config.go
//
// Environment-driven configuration for the wordmatch server and TUI.
// Values come from the process environment; main loads an optional .env
// first via godotenv. Every key has a development default.
//
//   PORT               HTTP listen port              (5175)
//   LOG_LEVEL          zerolog level                 (info)
//   DB_PATH            sqlite file for results       (./data/wordmatch.db)
//   JWT_SECRET         learner cookie signing key    (dev_secret_change_me)
//   LEARNER_TTL_DAYS   learner cookie lifetime       (180)
//   CLIENT_ORIGIN      CORS origin                   (http://localhost:5173)
//   NODE_ENV           "production" → Secure cookies
//   DAILY_SALT         daily round HMAC salt         (local_dev_salt)
//   ROUND_SIZE         pairs per round, 0 = all      (0)
//   CANVAS_WIDTH       surface width in px           (1000)
//   BOX_WIDTH          word band width in px         (200)
//   WORD_HEIGHT        row height in px              (50)

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordmatch/internal/match"
)

// Config is the resolved process configuration.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	DBPath       string
	JWTSecret    string
	LearnerTTL   time.Duration
	ClientOrigin string
	Production   bool
	DailySalt    string
	RoundSize    int
	Layout       match.Layout
}

// Load reads an optional .env file (missing is fine) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv resolves Config from the current environment only.
func FromEnv() Config {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     lvl,
		DBPath:       getEnv("DB_PATH", "./data/wordmatch.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		LearnerTTL:   time.Duration(envInt("LEARNER_TTL_DAYS", 180)) * 24 * time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		RoundSize:    envInt("ROUND_SIZE", 0),
		Layout: match.Layout{
			Width:     envFloat("CANVAS_WIDTH", match.DefaultWidth),
			BandWidth: envFloat("BOX_WIDTH", match.DefaultBandWidth),
			RowHeight: envFloat("WORD_HEIGHT", match.DefaultRowHeight),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

func envFloat(k string, def float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil && f > 0 {
		return f
	}
	return def
}
