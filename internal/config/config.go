package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Rates holds the dashboard estimation constants. The revenue figure is an
// estimate per seated guest, not billing data.
type Rates struct {
	RevenuePerGuest int
	TotalCapacity   int
}

func DefaultRates() Rates {
	return Rates{RevenuePerGuest: 50, TotalCapacity: 100}
}

// Storage holds the S3-compatible object storage settings (Cloudflare R2).
type Storage struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func (s Storage) Configured() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != "" && s.Bucket != ""
}

type Config struct {
	Port         string
	StaticDir    string
	DatabaseURL  string
	JWTSecret    string
	AllowOrigins []string
	Rates        Rates
	Storage      Storage
}

// Load reads configuration from the environment. In non-production a .env
// file is loaded first if present. DATABASE_URL and the R2 settings are
// optional; the server falls back to the in-memory store without them.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:        getenv("PORT", "3000"),
		StaticDir:   getenv("STATIC_DIR", "build"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Rates: Rates{
			RevenuePerGuest: getint("REVENUE_PER_GUEST", DefaultRates().RevenuePerGuest),
			TotalCapacity:   getint("TOTAL_CAPACITY", DefaultRates().TotalCapacity),
		},
		Storage: Storage{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}

	origins := getenv("ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
