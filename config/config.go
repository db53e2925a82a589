package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	StoreDriver       string
	StorePath         string
	AdminPassword     string
	AdminPasswordHash string
	MaxLoginAttempts  int
	LockoutDuration   time.Duration
	LogMode           string
	LogFile           string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		StoreDriver:      "sqlite",
		StorePath:        "data/storefront.db",
		AdminPassword:    "0805",
		MaxLoginAttempts: 3,
		LockoutDuration:  5 * time.Minute,
		LogMode:          "development",
	}

	if driver := os.Getenv("STORE_DRIVER"); driver != "" {
		config.StoreDriver = driver
	}
	if path := os.Getenv("STORE_PATH"); path != "" {
		config.StorePath = path
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		config.AdminPassword = pass
	}
	config.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if mode := os.Getenv("LOG_MODE"); mode != "" {
		config.LogMode = mode
	}
	config.LogFile = os.Getenv("LOG_FILE")

	if raw := os.Getenv("MAX_LOGIN_ATTEMPTS"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("MAX_LOGIN_ATTEMPTS noto'g'ri formatda: %v", err)
		}
		config.MaxLoginAttempts = parsed
	}

	if raw := os.Getenv("LOCKOUT_MINUTES"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("LOCKOUT_MINUTES noto'g'ri formatda: %v", err)
		}
		config.LockoutDuration = time.Duration(parsed) * time.Minute
	}

	// Validatsiya
	if config.MaxLoginAttempts <= 0 {
		return nil, fmt.Errorf("MAX_LOGIN_ATTEMPTS musbat bo'lishi kerak")
	}
	if config.LockoutDuration <= 0 {
		return nil, fmt.Errorf("LOCKOUT_MINUTES musbat bo'lishi kerak")
	}
	if config.StoreDriver != "memory" && config.StorePath == "" {
		return nil, fmt.Errorf("STORE_PATH bo'sh")
	}

	return config, nil
}
