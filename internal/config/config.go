package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	BaseURL string // backend API root, always with a trailing slash
	DBDSN   string // local session store (token + carts)
	LogFile string
}

func Load() Config {
	// Local overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:5000/api/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tiendita.db"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, BaseURL: base, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.BaseURL, cfg.DBDSN, cfg.LogFile)
	return cfg
}
