package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// 用于管理应用配置

const (
	// EnvPrefix 环境变量前缀，例如 server.port 对应 PHOTO_SHARE_SERVER_PORT
	EnvPrefix = "PHOTO_SHARE"

	// DevJWTSecret 仅在开发模式下使用的默认密钥
	DevJWTSecret = "photo_share_dev_secret"

	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Security  SecurityConfig  `mapstructure:"security"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	Mode            string        `mapstructure:"mode" validate:"required,oneof=debug release test"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	MaxBodyMB       int           `mapstructure:"max_body_mb" validate:"min=0"`
	Pprof           bool          `mapstructure:"pprof"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type" validate:"required,oneof=sqlite mysql postgres"`
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours" validate:"min=1"`
	Issuer          string `mapstructure:"issuer"`
}

// TTL 返回令牌有效期
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

type StorageConfig struct {
	Driver string             `mapstructure:"driver" validate:"required,oneof=local s3"`
	Local  LocalStorageConfig `mapstructure:"local"`
	S3     S3StorageConfig    `mapstructure:"s3"`
}

type LocalStorageConfig struct {
	Path         string `mapstructure:"path"`
	URLPrefix    string `mapstructure:"url_prefix"`
	CacheControl string `mapstructure:"cache_control"`
}

type S3StorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type UploadConfig struct {
	MaxSizeMB         int    `mapstructure:"max_size_mb" validate:"min=1"`
	AllowedExtensions string `mapstructure:"allowed_extensions"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	AuthRPS     float64 `mapstructure:"auth_rps" validate:"min=0"`
	AuthBurst   int     `mapstructure:"auth_burst" validate:"min=0"`
	UploadRPS   float64 `mapstructure:"upload_rps" validate:"min=0"`
	UploadBurst int     `mapstructure:"upload_burst" validate:"min=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// Load 读取配置目录下的 config.yaml，并叠加环境变量覆盖。
// 返回的 *Config 由调用方持有并逐层传递，不再使用全局配置。
func Load(configDir string) (*Config, error) {
	v, err := newViper(configDir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("配置解析失败: %w", err)
	}

	if err := enforceJWTSecretSafety(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}

	if cfg.Storage.Driver == "s3" && cfg.Storage.S3.Bucket == "" {
		return nil, errors.New("配置校验失败: storage.s3.bucket 不能为空")
	}

	return &cfg, nil
}

func newViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	configDir = strings.TrimSpace(configDir)
	if configDir == "" {
		configDir = "config"
	}

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		slog.Warn("⚠️  未找到配置文件，将仅使用环境变量或默认值", "dir", configDir)
	}

	// 所有环境变量必须以 PHOTO_SHARE_ 开头，层级分隔符 "." 替换为 "_"
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", ModeDebug)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_body_mb", 2)
	v.SetDefault("server.pprof", false)

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/photo_sharing.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "photos-sharing")
	v.SetDefault("database.ssl", false)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 1)
	v.SetDefault("jwt.issuer", "photo-sharing-server")

	v.SetDefault("security.bcrypt_cost", 12)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local.path", "uploads/images")
	v.SetDefault("storage.local.url_prefix", "/uploads/images/")
	v.SetDefault("storage.local.cache_control", "public, max-age=86400")
	v.SetDefault("storage.s3.endpoint", "storage.googleapis.com")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "")
	v.SetDefault("storage.s3.use_ssl", true)
	v.SetDefault("storage.s3.public_base_url", "https://storage.googleapis.com")

	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.allowed_extensions", ".jpg,.jpeg,.png,.gif,.webp,.bmp")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "photo_share")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("rate_limit.upload_rps", 2)
	v.SetDefault("rate_limit.upload_burst", 5)

	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "")
}

func enforceJWTSecretSafety(cfg *Config) error {
	if cfg.Server.Mode == ModeRelease {
		if cfg.JWT.Secret == "" || cfg.JWT.Secret == DevJWTSecret {
			return errors.New("[安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret，请设置环境变量 PHOTO_SHARE_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
		return nil
	}
	if cfg.JWT.Secret == "" {
		slog.Warn("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		cfg.JWT.Secret = DevJWTSecret
	}
	return nil
}
