package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort   string
	DBDSN     string
	UploadDir string

	EmailUser  string
	EmailPass  string
	SMTPHost   string
	SMTPPort   int
	AdminEmail string
	FromName   string

	JWTSecret string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = getenv("APP_PORT", "5000")
	Env.DBDSN = os.Getenv("DB_DSN")
	Env.UploadDir = getenv("UPLOAD_DIR", "./uploads")

	Env.EmailUser = os.Getenv("EMAIL_USER")
	Env.EmailPass = os.Getenv("EMAIL_PASS")
	Env.SMTPHost = os.Getenv("SMTP_HOST")
	Env.SMTPPort = getenvInt("SMTP_PORT", 587)
	Env.AdminEmail = os.Getenv("ADMIN_EMAIL")
	Env.FromName = getenv("FROM_NAME", "Khayalethu Student Accommodation")

	Env.JWTSecret = os.Getenv("JWT_SECRET")
}

// MailConfigured reports whether SMTP credentials are present; without them
// the notifier degrades to logging.
func MailConfigured() bool {
	return Env.EmailUser != "" && Env.EmailPass != ""
}

func GetJWTSecret() string {
	if Env.JWTSecret != "" {
		return Env.JWTSecret
	}
	return os.Getenv("JWT_SECRET")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
