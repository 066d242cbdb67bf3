package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func GetDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := Env("DATABASE_PORT", "5432")
	DATABASE_SSLMODE := Env("DATABASE_SSLMODE", "disable")
	DATABASE_TIMEZONE := Env("DATABASE_TIMEZONE", "Asia/Kolkata")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Env returns the variable or fallback when it is unset or blank.
func Env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func APIEnv() string {
	return Env("API_ENV", "local")
}

func IsLocal() bool {
	return APIEnv() == "local"
}

func Port() string {
	return Env("PORT", "8080")
}

func AllowedOrigins() []string {
	return strings.Split(Env("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
}

// InventoryBackend is "sql" (default) or "firestore".
func InventoryBackend() string {
	return Env("INVENTORY_BACKEND", "sql")
}

func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func AdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

func AdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}

const ADMIN_TOKEN_TTL = 8 * time.Hour

func QRCSecret() string {
	return os.Getenv("API_QRC_SECRET")
}

func TicketsBucket() string {
	return os.Getenv("TICKETS_BUCKET")
}

const TICKET_LINK_TTL = time.Hour

func SMTPHost() string {
	return Env("SMTP_HOST", "smtp-relay.brevo.com")
}

func SMTPPort() int {
	return envInt("SMTP_PORT", 587)
}

func SMTPUsername() string {
	return os.Getenv("SMTP_USERNAME")
}

func SMTPPassword() string {
	return os.Getenv("SMTP_PASSWORD")
}

func MailFrom() string {
	return Env("MAIL_FROM", "no-reply@travelbook.app")
}

func MailFromName() string {
	return Env("MAIL_FROM_NAME", "Travelbook")
}

const (
	OTP_TTL          = 10 * time.Minute
	OTP_MAX_ATTEMPTS = 5
)
