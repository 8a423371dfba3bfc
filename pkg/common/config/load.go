package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/imdario/mergo"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator adds the "wei" tag: a positive whole number written in decimal.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("wei", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive() && d.Equal(d.Truncate(0))
	})
	return v
}

// ErrNoPrivateKey is returned when neither private_key nor private_key_env
// yield a signing key.
var ErrNoPrivateKey = errors.New("chain.private_key is empty")

// Load reads the YAML file at path, fills unset fields from Default(),
// substitutes ${VAR} references and validates the result. A missing file is
// not an error: the defaults are returned instead.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return finalize(cfg)
}

// Parse is Load for in-memory YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return finalize(cfg)
}

func finalize(cfg Config) (*Config, error) {
	if err := mergo.Merge(&cfg, Default()); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	cfg.Chain.RPCURL = substituteEnvVars(cfg.Chain.RPCURL)
	cfg.Chain.Auth.Value = substituteEnvVars(cfg.Chain.Auth.Value)
	cfg.Nats.Password = substituteEnvVars(cfg.Nats.Password)

	// private_key_env wins over the inline key so a deployment can override
	// the development default without editing the file.
	if cfg.Chain.PrivateKeyEnv != "" {
		if v := os.Getenv(cfg.Chain.PrivateKeyEnv); v != "" {
			cfg.Chain.PrivateKey = v
		}
	}
	cfg.Chain.PrivateKey = strings.TrimSpace(substituteEnvVars(cfg.Chain.PrivateKey))
	if cfg.Chain.PrivateKey == "" {
		return nil, ErrNoPrivateKey
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("struct validation failed: %w", err)
	}
	return &cfg, nil
}

func substituteEnvVars(s string) string {
	if s == "" {
		return s
	}
	for {
		start := strings.Index(s, "${")
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], "}")
		if end == -1 {
			break
		}
		end += start
		varName := s[start+2 : end]
		envValue := os.Getenv(varName)
		s = strings.ReplaceAll(s, "${"+varName+"}", envValue)
	}
	return s
}
