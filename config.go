package dangerous

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config provides environment-based configuration for a signer.
type Config struct {
	SecretKey string `env:"SIGNER_SECRET_KEY,required"`
	Salt      string `env:"SIGNER_SALT" envDefault:""`
	Separator string `env:"SIGNER_SEPARATOR" envDefault:"."`
}

// LoadConfig populates a Config from the environment, reading a .env
// file first when one is present in the working directory.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse signer config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a Signer from configuration. Explicit options
// override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Signer, error) {
	if cfg.SecretKey == "" {
		return nil, ErrNoSecretKey
	}

	configOpts := make([]Option, 0, len(opts)+2)
	if cfg.Salt != "" {
		configOpts = append(configOpts, WithSalt(cfg.Salt))
	}
	if cfg.Separator != "" {
		if len(cfg.Separator) != 1 {
			return nil, fmt.Errorf("%w: %q is not a single byte", ErrInvalidSeparator, cfg.Separator)
		}
		sep, err := NewSeparator(cfg.Separator[0])
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithSeparator(sep))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.SecretKey, configOpts...), nil
}
