// Package config loads strkit settings from a YAML file, STRKIT_* environment
// variables and command-line flags, in viper's usual precedence order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/strkit/rollhash"
)

// Keys understood by Load.
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyHashBase        = "hash.base"
	KeyHashModulus     = "hash.modulus"
	KeyPasswordModulus = "password.modulus"
)

// DefaultPasswordModulus is the modulus of forbidden-substring counts.
const DefaultPasswordModulus uint64 = 1_000_000_007

// EnvPrefix prefixes every environment override, e.g. STRKIT_HASH_BASE.
const EnvPrefix = "STRKIT"

// ErrInvalidConfig indicates a setting that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config holds the resolved settings.
type Config struct {
	LogLevel        string
	LogFormat       string
	HashBase        uint64
	HashModulus     uint64
	PasswordModulus uint64
}

// HashOptions converts the hash settings into rollhash options.
func (c Config) HashOptions() []rollhash.Option {
	return []rollhash.Option{rollhash.WithBase(c.HashBase), rollhash.WithModulus(c.HashModulus)}
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyHashBase, rollhash.DefaultBase)
	v.SetDefault(KeyHashModulus, rollhash.Wraparound)
	v.SetDefault(KeyPasswordModulus, DefaultPasswordModulus)
}

// Load resolves the configuration into a Config. When file is empty,
// $HOME/.strkit.yaml is read if present; an explicitly named file must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".strkit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read default file: %w", err)
			}
		}
	}

	cfg := Config{
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		HashBase:        v.GetUint64(KeyHashBase),
		HashModulus:     v.GetUint64(KeyHashModulus),
		PasswordModulus: v.GetUint64(KeyPasswordModulus),
	}

	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	if c.PasswordModulus == 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyPasswordModulus)
	}
	if c.HashBase < 2 {
		return fmt.Errorf("%w: %s must be at least 2", ErrInvalidConfig, KeyHashBase)
	}
	if c.HashModulus == 1 || (c.HashModulus != 0 && c.HashBase >= c.HashModulus) {
		return fmt.Errorf("%w: %s must be 0 (2^64) or a modulus above %s", ErrInvalidConfig, KeyHashModulus, KeyHashBase)
	}

	return nil
}
