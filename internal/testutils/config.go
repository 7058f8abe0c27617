package testutils

import (
	"github.com/jackdo69/photo-sharing-server/internal/config"
)

// TestJWTSecret is the signing secret used by TestConfig.
const TestJWTSecret = "test_secret"

// TestConfig returns a configuration suitable for unit tests:
// cheap bcrypt, rate limiting off, local storage under dir.
func TestConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      "5000",
			Mode:      config.ModeTest,
			MaxBodyMB: 2,
		},
		Database: config.DatabaseConfig{Type: "sqlite", Filename: ":memory:"},
		JWT: config.JWTConfig{
			Secret:          TestJWTSecret,
			ExpirationHours: 1,
			Issuer:          "photo-sharing-server",
		},
		Security: config.SecurityConfig{BcryptCost: 4},
		Storage: config.StorageConfig{
			Driver: "local",
			Local: config.LocalStorageConfig{
				Path:         dir,
				URLPrefix:    "/uploads/images/",
				CacheControl: "public, max-age=60",
			},
		},
		Upload: config.UploadConfig{
			MaxSizeMB:         10,
			AllowedExtensions: ".jpg,.jpeg,.png,.gif,.webp,.bmp",
		},
		Redis:     config.RedisConfig{Prefix: "photo_share_test"},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Log:       config.LogConfig{Level: "error"},
	}
}
