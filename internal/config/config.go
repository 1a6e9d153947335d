package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Storage  StorageConfig  `yaml:"storage"`
	Mongo    MongoConfig    `yaml:"mongo"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tokens   TokensConfig   `yaml:"tokens"`
	Sessions SessionsConfig `yaml:"sessions"`
	Hash     HashConfig     `yaml:"hash"`
	Roles    RolesConfig    `yaml:"roles"`
	Notifier NotifierConfig `yaml:"notifier"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"./storage/authsvc.db"`
	DSN    string `yaml:"dsn" env:"STORAGE_DSN"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"authsvc"`
}

type GRPCConfig struct {
	Port    int           `yaml:"port" env:"GRPC_PORT" env-default:"44044"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT" env-default:"5s"`
}

type MetricsConfig struct {
	Port int `yaml:"port" env:"METRICS_PORT" env-default:"0"`
}

type TokensConfig struct {
	SigningKey string        `yaml:"signing_key" env:"TOKENS_SIGNING_KEY"`
	AccessTTL  time.Duration `yaml:"access_ttl" env:"TOKENS_ACCESS_TTL" env-default:"20m"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env:"TOKENS_REFRESH_TTL" env-default:"256h"`
}

type SessionsConfig struct {
	MaxPerAccount int `yaml:"max_per_account" env:"SESSIONS_MAX_PER_ACCOUNT" env-default:"5"`
}

type HashConfig struct {
	Cost int `yaml:"cost" env:"HASH_COST" env-default:"10"`
}

type RolesConfig struct {
	Elevated string `yaml:"elevated" env:"ROLES_ELEVATED" env-default:"moderator"`
	Default  string `yaml:"default" env:"ROLES_DEFAULT" env-default:"default"`
}

// NotifierConfig points at the sender service. An empty BaseURL makes
// notifications log-only.
type NotifierConfig struct {
	BaseURL     string        `yaml:"base_url" env:"NOTIFIER_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"NOTIFIER_TIMEOUT" env-default:"5s"`
	SourceEmail string        `yaml:"source_email" env:"NOTIFIER_SOURCE_EMAIL"`
}

// MustLoad reads the config from the --config flag or CONFIG_PATH and panics
// on any error.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file not found: %s", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to read config: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for sqlite"))
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for postgres"))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("mongo.uri and mongo.database are required for mongodb"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	if c.Tokens.SigningKey == "" {
		errs = append(errs, errors.New("tokens.signing_key is required"))
	}
	if c.Tokens.AccessTTL <= 0 {
		errs = append(errs, errors.New("tokens.access_ttl must be positive"))
	}
	if c.Tokens.RefreshTTL <= 0 {
		errs = append(errs, errors.New("tokens.refresh_ttl must be positive"))
	}
	if c.Sessions.MaxPerAccount < 1 {
		errs = append(errs, errors.New("sessions.max_per_account must be at least 1"))
	}
	if c.Hash.Cost < bcrypt.MinCost || c.Hash.Cost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("hash.cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Roles.Elevated == "" || c.Roles.Default == "" {
		errs = append(errs, errors.New("roles.elevated and roles.default are required"))
	}
	if c.Roles.Elevated == c.Roles.Default {
		errs = append(errs, errors.New("roles.elevated must differ from roles.default"))
	}

	return errors.Join(errs...)
}

// fetchConfigPath prefers the --config flag over CONFIG_PATH.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
