package config

import "time"

const (
	defaultJWTSecret     = "your-secret-key-change-this-in-production"
	defaultJWTExpiration = 24 * time.Hour
)

type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Expiration time.Duration `yaml:"expiration"`
}
