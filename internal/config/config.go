package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Admin    AdminConfig    `yaml:"admin"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Upload   UploadConfig   `yaml:"upload"`
	Captcha  CaptchaConfig  `yaml:"captcha"`
	Redis    RedisConfig    `yaml:"redis"`
	Digest   DigestConfig   `yaml:"digest"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

// AdminConfig holds the studio-side settings: where form notifications go
// and the credentials used to seed the first admin account.
type AdminConfig struct {
	Email           string `yaml:"email"` // recipient of notifications and digests
	DefaultPassword string `yaml:"default_password"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"` // empty disables outbound email
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	UseTLS   bool   `yaml:"use_tls"`
}

type UploadConfig struct {
	Dir       string `yaml:"dir"`
	BaseURL   string `yaml:"base_url"`
	MaxSizeMB int64  `yaml:"max_size_mb"`
}

type CaptchaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
}

// RedisConfig for the optional async mail queue
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DigestConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Time         string `yaml:"time"`          // HH:MM, server local time
	WorkdaysOnly bool   `yaml:"workdays_only"` // skip weekends and public holidays
	Country      string `yaml:"country"`       // holiday calendar, e.g. "NL"; "NONE" skips weekends only
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.overrideFromEnv()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "atelier.db",
		},
		JWT: JWTConfig{
			Secret:     "atelier-secret-key-change-in-production",
			ExpireHour: 24,
		},
		Admin: AdminConfig{
			Email:           "studio@atelier.example",
			DefaultPassword: "admin",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		Upload: UploadConfig{
			Dir:       "uploads",
			BaseURL:   "/uploads",
			MaxSizeMB: 5,
		},
		Captcha: CaptchaConfig{
			Enabled: false,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			DB:      0,
		},
		Digest: DigestConfig{
			Enabled:      true,
			Time:         "08:00",
			WorkdaysOnly: true,
			Country:      "NONE",
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		c.Admin.Email = email
	}
	if password := os.Getenv("ADMIN_DEFAULT_PASSWORD"); password != "" {
		c.Admin.DefaultPassword = password
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		c.SMTP.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.SMTP.Port = p
		}
	}
	if username := os.Getenv("SMTP_USERNAME"); username != "" {
		c.SMTP.Username = username
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		c.SMTP.Password = password
	}
	if from := os.Getenv("SMTP_FROM"); from != "" {
		c.SMTP.From = from
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		c.Upload.Dir = dir
	}
	if secret := os.Getenv("CAPTCHA_SECRET"); secret != "" {
		c.Captcha.Enabled = true
		c.Captcha.Secret = secret
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Redis.DB = n
		}
	}
	if at := os.Getenv("DIGEST_TIME"); at != "" {
		c.Digest.Time = at
	}
	if country := os.Getenv("DIGEST_COUNTRY"); country != "" {
		c.Digest.Country = country
	}
}
