package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDSN       string
	LogFile     string
	AdminEmails []string
}

func Load() Config {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not load .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "decoyauction.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./decoyauction.log"
	}
	admins := ParseAdminEmails(os.Getenv("ADMIN_EMAILS"))

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AdminEmails: admins}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ADMIN_EMAILS=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, strings.Join(cfg.AdminEmails, ","))
	return cfg
}

// ParseAdminEmails splits a comma-separated allow-list, trimming blanks.
// Falls back to the two default admin accounts when unset.
func ParseAdminEmails(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"rich@decoyauction.test", "osahara@decoyauction.test"}
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
