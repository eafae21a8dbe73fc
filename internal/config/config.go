package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAdminSecret = "vika"

type Config struct {
	DatabasePath string
	AdminSecret  string

	// open/ping deadline and SQLite busy timeout
	DBTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	// a missing .env is fine; real environment variables win over it
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		DatabasePath: getenv("HOTELRES_DB", "reservations.db"),
		AdminSecret:  getenv("HOTELRES_ADMIN_SECRET", DefaultAdminSecret),
	}

	timeoutSec, err := strconv.Atoi(getenv("HOTELRES_DB_TIMEOUT_SECONDS", "5"))
	if err != nil || timeoutSec < 1 {
		return Config{}, fmt.Errorf("invalid HOTELRES_DB_TIMEOUT_SECONDS")
	}
	cfg.DBTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
