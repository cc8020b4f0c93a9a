package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "RIF"

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	BodyLimit   string   `mapstructure:"body_limit"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxConns        int32         `mapstructure:"max_conns"`
	Schema          string        `mapstructure:"schema"`
	ReferenceSchema string        `mapstructure:"reference_schema"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

type AuthConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddr, ":8080")
	v.SetDefault(constants.ViperServerCORSOrigins, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperServerBodyLimit, "2M")

	v.SetDefault(constants.ViperDBDSN, "")
	v.SetDefault(constants.ViperDBMaxConns, 10)
	v.SetDefault(constants.ViperDBSchema, "rifiiorg")
	v.SetDefault(constants.ViperDBReferenceSchema, "dbo")
	v.SetDefault(constants.ViperDBConnectTimeout, 30*time.Second)

	v.SetDefault(constants.ViperSecretKey, "")
	v.SetDefault(constants.ViperAuthCookieName, constants.CookieKeyAuthToken)
	v.SetDefault(constants.ViperAuthTokenTTL, 24*time.Hour)

	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogFile, "")
	v.SetDefault(constants.ViperLogMaxSizeMB, 100)
	v.SetDefault(constants.ViperLogMaxBackups, 3)
	v.SetDefault(constants.ViperLogMaxAgeDays, 30)
}

// Load reads the configuration and validates it.
func Load(configFile string) (*Config, error) {
	cfg, err := Read(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read merges .env (if any), the optional config file and RIF_* environment variables,
// in increasing order of precedence, without validating the result.
func Read(configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%s is required", constants.ViperDBDSN))
	}
	if c.Auth.Secret == "" {
		errs = append(errs, fmt.Errorf("%s is required", constants.ViperSecretKey))
	}
	if c.DB.Schema == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", constants.ViperDBSchema))
	}
	return errors.Join(errs...)
}
