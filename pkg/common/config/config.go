package config

import (
	"time"
)

type Env string

const (
	DevEnv  Env = "dev"
	ProdEnv Env = "prod"
	StgEnv  Env = "stag"
)

type Config struct {
	Environment Env          `yaml:"env"    validate:"required,oneof=dev prod stag"`
	Version     string       `yaml:"version"`
	Log         LogConfig    `yaml:"log"`
	Server      ServerConfig `yaml:"server"`
	Chain       ChainConfig  `yaml:"chain"`
	Nats        NatsConfig   `yaml:"nats"`
}

type LogConfig struct {
	Level      string `yaml:"level"       validate:"omitempty,oneof=debug info warn error"`
	TimeFormat string `yaml:"time_format"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"            validate:"required,min=1,max=65535"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// ChainConfig describes the single node connection and the signing account
// every contract call goes through.
type ChainConfig struct {
	RPCURL        string        `yaml:"rpc_url"         validate:"required,url"`
	PrivateKey    string        `yaml:"private_key"`
	PrivateKeyEnv string        `yaml:"private_key_env"`
	ChainID       int64         `yaml:"chain_id"        validate:"min=0"`
	GasPrice      string        `yaml:"gas_price"       validate:"required,wei"`
	GasLimit      uint64        `yaml:"gas_limit"       validate:"required,gt=0"`
	Timeout       time.Duration `yaml:"timeout"`
	Auth          AuthConfig    `yaml:"auth"`
	Throttle      Throttle      `yaml:"throttle"`
}

type AuthConfig struct {
	Type  string `yaml:"type"  validate:"omitempty,oneof=header query"`
	Key   string `yaml:"key"   validate:"required_with=Type"`
	Value string `yaml:"value"`
}

type Throttle struct {
	RPS   int `yaml:"rps"   validate:"min=0"`
	Burst int `yaml:"burst" validate:"min=0"`
}

type NatsConfig struct {
	URL      string        `yaml:"url"      validate:"omitempty,url"`
	Subject  string        `yaml:"subject"  validate:"required_with=URL"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	TLS      NatsTLSConfig `yaml:"tls"`
}

type NatsTLSConfig struct {
	ClientCert string `yaml:"client_cert"`
	ClientKey  string `yaml:"client_key"`
	CACert     string `yaml:"ca_cert"`
}

// Enabled reports whether receipt events should be published.
func (n NatsConfig) Enabled() bool {
	return n.URL != ""
}
