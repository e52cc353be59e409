package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config là cấu hình của ứng dụng, đọc từ biến môi trường
type Config struct {
	Env             string        `env:"ENV" envDefault:"dev"`
	Port            string        `env:"PORT" envDefault:"8083"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DB              DBConfig      `envPrefix:"DB_"`
	Redis           RedisConfig   `envPrefix:"REDIS_"`
	JWTSecret       string        `env:"JWT_SECRET,notEmpty"`
	LandlordAccount string        `env:"LANDLORD_ACCOUNT"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	AuditSchedule   string        `env:"AUDIT_SCHEDULE" envDefault:"@hourly"`
	RoomCacheTTL    time.Duration `env:"ROOM_CACHE_TTL" envDefault:"10m"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type DBConfig struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME"`
	SSLMode  string `env:"SSLMODE" envDefault:"require"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Username string `env:"USER"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DSN trả về chuỗi kết nối postgres, ưu tiên DATABASE_URL
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Ho_Chi_Minh",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode)
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// Load nạp file .env (nếu có) rồi parse cấu hình
func Load() (*Config, error) {
	LoadEnv()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
