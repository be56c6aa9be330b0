// Package config предоставляет структуры и функции для загрузки конфигурации сервиса.
//
// Конфиг читается из YAML-файла (CONFIG_PATH), после чего переменные
// окружения переопределяют значения из файла. Файл .env, если он есть,
// подгружается в окружение заранее.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Источники проверки сессии для HTTP-приложения.
const (
	SessionSourceLocal = "local"
	SessionSourceGRPC  = "grpc"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string          `yaml:"env" env:"ENV" env-default:"local"`
	GRPCAuthAddress         string          `yaml:"grpc_auth_address" env:"GRPC_AUTH_ADDRESS" env-default:"localhost:50051"`
	SessionSource           string          `yaml:"session_source" env:"SESSION_SOURCE" env-default:"local"`
	StorageConnectionString string          `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	MigrationsPath          string          `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	Redis                   RedisConnection `yaml:"redis_connection"`
	RabbitMQ                RabbitMQ        `yaml:"rabbitmq"`
	HTTPServer              HTTPServer      `yaml:"http_server"`
	JWTToken                JWTToken        `yaml:"jwttoken"`
	Pricing                 Pricing         `yaml:"pricing"`
	RateLimit               RateLimit       `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP  string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP  time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	SecureCookie bool          `yaml:"secure_cookie" env:"HTTP_SECURE_COOKIE" env-default:"false"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	Addr        string        `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env-default:"0"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
	PlansTTL    time.Duration `yaml:"plans_ttl" env-default:"1h"`
}

// RabbitMQ структура для настройки публикации событий.
// Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange   string        `yaml:"exchange" env-default:"subscriptions"`
	Retries    int           `yaml:"retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// JWTToken структура для работы с сессионным токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"6h"`
}

// Pricing структура с параметрами расчёта прибыли.
type Pricing struct {
	CostPerVisit float64 `yaml:"cost_per_visit" env:"COST_PER_VISIT" env-default:"10"`
}

// RateLimit структура для ограничения частоты попыток входа.
type RateLimit struct {
	LoginRPS   float64 `yaml:"login_rps" env-default:"1"`
	LoginBurst int     `yaml:"login_burst" env-default:"5"`
}

// Load читает конфиг из файла path и переменных окружения и проверяет его.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if path == "" {
		return nil, fmt.Errorf("%s: config path is not set", op)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	// .env необязателен
	_ = godotenv.Load()

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Validate проверяет взаимные ограничения значений.
func (c *Config) Validate() error {
	var errs []error
	if c.SessionSource != SessionSourceLocal && c.SessionSource != SessionSourceGRPC {
		errs = append(errs, fmt.Errorf("session_source must be %q or %q, got %q",
			SessionSourceLocal, SessionSourceGRPC, c.SessionSource))
	}
	if len(c.JWTToken.JWTSecretKey) < 8 {
		errs = append(errs, errors.New("jwt_secret_key must be at least 8 characters"))
	}
	if c.JWTToken.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if c.Pricing.CostPerVisit < 0 {
		errs = append(errs, errors.New("cost_per_visit must be non-negative"))
	}
	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		errs = append(errs, errors.New("rate_limit values must be positive"))
	}
	return errors.Join(errs...)
}

// String печатает конфиг без секретов.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"SessionSource: %s\n"+
			"GRPCAuthAddress: %s\n"+
			"MigrationsPath: %s\n"+
			"Redis:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  PlansTTL: %s\n"+
			"RabbitMQ:\n"+
			"  Enabled: %t\n"+
			"  Exchange: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Pricing:\n"+
			"  CostPerVisit: %g\n",
		c.Env,
		c.SessionSource,
		c.GRPCAuthAddress,
		c.MigrationsPath,
		c.Redis.Addr,
		c.Redis.DB,
		c.Redis.PlansTTL,
		c.RabbitMQ.URL != "",
		c.RabbitMQ.Exchange,
		c.HTTPServer.AddressHTTP,
		c.HTTPServer.TimeoutHTTP,
		c.HTTPServer.IdleTimeout,
		c.JWTToken.TokenTTL,
		c.Pricing.CostPerVisit,
	)
}
