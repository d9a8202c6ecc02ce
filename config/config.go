package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	DB struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"db"`
	JWT struct {
		Secret   string `yaml:"secret"`
		Issuer   string `yaml:"issuer"`
		Audience string `yaml:"audience"`
	} `yaml:"jwt"`
	Log struct {
		FilePath   string `yaml:"file_path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	RateLimit struct {
		PerSecond float64 `yaml:"per_second"`
		Burst     int     `yaml:"burst"`
	} `yaml:"rate_limit"`
	MigrationsDir string `yaml:"migrations_dir"`
}

func Load(env string) (*Config, error) {
	if env == "" {
		env = "local"
	}

	configPath := filepath.Join("config", "envs", env+".yaml")

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	// Override with Environment Variables (Docker Support)
	if secret := os.Getenv("API_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		cfg.JWT.Issuer = issuer
	}
	if audience := os.Getenv("JWT_AUDIENCE"); audience != "" {
		cfg.JWT.Audience = audience
	}

	// Database Overrides
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		cfg.DB.Port = port
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = filepath.Join("db", "migrations")
	}

	return &cfg, nil
}
