package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const appDir = "bankist"

type Config struct {
	Port string

	JWTSecret string
	JWTExpiry time.Duration

	Redis RedisConfig

	SessionTimeout    time.Duration
	ResetSortOnLogout bool
	SeedFile          string

	QRCodeTTL time.Duration

	BankBIC  string
	BankName string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load reads configuration from path, or from $XDG_CONFIG_HOME/bankist/config.yaml
// when path is empty. Environment variables override file values. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if path == "" {
		if found, err := xdg.SearchConfigFile(appDir + "/config.yaml"); err == nil {
			path = found
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			log.Printf("Config file not found, using defaults: %v", err)
		} else {
			log.Printf("Loaded config from %s", v.ConfigFileUsed())
		}
	}

	cfg := &Config{
		Port:      v.GetString("server.port"),
		JWTSecret: v.GetString("jwt.secret_key"),
		JWTExpiry: time.Duration(v.GetInt("jwt.expiry_hours")) * time.Hour,
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		SessionTimeout:    v.GetDuration("session.timeout"),
		ResetSortOnLogout: v.GetBool("session.reset_sort_on_logout"),
		SeedFile:          v.GetString("seed.file"),
		QRCodeTTL:         v.GetDuration("qr.ttl"),
		BankBIC:           v.GetString("bank.bic"),
		BankName:          v.GetString("bank.name"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt.secret_key must not be empty")
	}
	return cfg, nil
}

// SeedPath resolves the accounts file to load. An empty result means the
// built-in seed.
func (c *Config) SeedPath() string {
	if c.SeedFile != "" {
		return c.SeedFile
	}
	if found, err := xdg.SearchConfigFile(appDir + "/accounts.yml"); err == nil {
		return found
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("jwt.secret_key", "bankist-dev-secret")
	v.SetDefault("jwt.expiry_hours", 24)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.timeout", 5*time.Minute)
	v.SetDefault("session.reset_sort_on_logout", false)
	v.SetDefault("seed.file", "")
	v.SetDefault("qr.ttl", 5*time.Minute)
	v.SetDefault("bank.bic", "BNKSPTPL")
	v.SetDefault("bank.name", "Bankist")
}

func bindEnv(v *viper.Viper) {
	v.AutomaticEnv()

	v.BindEnv("server.port", "PORT")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("session.timeout", "SESSION_TIMEOUT")
	v.BindEnv("session.reset_sort_on_logout", "SESSION_RESET_SORT_ON_LOGOUT")
	v.BindEnv("seed.file", "SEED_FILE")
	v.BindEnv("qr.ttl", "QR_CODE_TTL")
	v.BindEnv("bank.bic", "BANK_BIC")
	v.BindEnv("bank.name", "BANK_NAME")
}
