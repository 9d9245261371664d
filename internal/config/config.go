// Package config loads kospell settings from flags, environment, .env and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/kospell/internal/speller"
	"github.com/valpere/kospell/internal/translator"
)

const EnvPrefix = "KOSPELL"

type SpellerConfig struct {
	URL         string `mapstructure:"url"`
	PassportKey string `mapstructure:"passport_key"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	DeepL   translator.ServiceConfig `mapstructure:"deepl"`
	Speller SpellerConfig            `mapstructure:"speller"`
	HTTP    HTTPConfig               `mapstructure:"http"`
	Log     LogConfig                `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("deepl.api_key", "")
	v.SetDefault("deepl.url", translator.DefaultDeepLURL)
	v.SetDefault("speller.url", speller.DefaultNaverURL)
	v.SetDefault("speller.passport_key", "")
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance wired for kospell: defaults, KOSPELL_* env
// variables and the plain DEEPL_API_KEY variable.
func New() (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("deepl.api_key", EnvPrefix+"_DEEPL_API_KEY", "DEEPL_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	return v, nil
}

// LoadDotEnv reads a .env file into the process environment. A missing file
// is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ReadFile merges a config file into v. With an empty path kospell.yaml is
// looked up in the working directory and in $HOME (as .kospell.yaml); not
// finding one is fine.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("kospell")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !isNotFound(err) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(".kospell")
		v.AddConfigPath(home)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

// Load decodes v into a Config and applies the shared HTTP timeout to the
// DeepL service settings.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.DeepL.Timeout <= 0 {
		cfg.DeepL.Timeout = cfg.HTTP.Timeout
	}
	return &cfg, nil
}
