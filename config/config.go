package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Seed      SeedConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	ConnAttempts  int
	ConnRetryWait time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type SeedConfig struct {
	// Secret gates POST /seed/once. Empty disables the endpoint entirely.
	Secret string
}

type RateLimitConfig struct {
	Requests  int
	Per       time.Duration
	BlockTime time.Duration
}

// ErrMissingJWTSecret makes an unconfigured signing secret a startup failure
// instead of a per-request 500.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine as long as the environment carries the values.
	_ = viper.ReadInConfig()

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		jwtExpiry = 12 * time.Hour
	}

	connAttempts := viper.GetInt("DB_CONN_ATTEMPTS")
	if connAttempts <= 0 {
		connAttempts = 10
	}

	connRetryWait, err := time.ParseDuration(viper.GetString("DB_CONN_RETRY_WAIT"))
	if err != nil {
		connRetryWait = 3 * time.Second
	}

	rateRequests := viper.GetInt("RATE_LIMIT_REQUESTS")
	if rateRequests <= 0 {
		rateRequests = 100
	}

	ratePer, err := time.ParseDuration(viper.GetString("RATE_LIMIT_PER"))
	if err != nil {
		ratePer = time.Minute
	}

	rateBlock, err := time.ParseDuration(viper.GetString("RATE_LIMIT_BLOCK"))
	if err != nil {
		rateBlock = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			ConnAttempts:  connAttempts,
			ConnRetryWait: connRetryWait,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: jwtExpiry,
		},
		Seed: SeedConfig{
			Secret: viper.GetString("SEED_SECRET"),
		},
		RateLimit: RateLimitConfig{
			Requests:  rateRequests,
			Per:       ratePer,
			BlockTime: rateBlock,
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}

	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return config, nil
}
