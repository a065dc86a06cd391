package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	AdminAPIKey   string
	RedisAddr     string
	RedisPass     string
	RedisDB       int
	CloudinaryURL string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	MailFrom      string
	AllowOrigins  string
	Debug         bool
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() *Config {
	_ = godotenv.Load()
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	smtpPort, _ := strconv.Atoi(getenv("SMTP_PORT", "587"))
	return &Config{
		Port:          getenv("PORT", "5000"),
		MongoURI:      getenv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "GOG"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      smtpPort,
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		MailFrom:      getenv("MAIL_FROM", os.Getenv("SMTP_USER")),
		AllowOrigins:  getenv("ALLOW_ORIGINS", "*"),
		Debug:         os.Getenv("DEBUG") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
