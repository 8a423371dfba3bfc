package config

const (
	DefaultRPCURL = "http://localhost:8545"
	// DefaultPrivateKey is the well-known development account key. Never use it
	// against a public network.
	DefaultPrivateKey  = "791780e5a2a1d297594ea1f5411c423b7f5486b0d899ba5c5734c8bfabe6db55"
	DefaultGasPrice    = "20000000000"
	DefaultGasLimit    = 6721975
	DefaultPort        = 8080
	DefaultNatsSubject = "gateway.receipts"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Environment: DevEnv,
		Version:     "1.0.0",
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Port:    DefaultPort,
		},
		Chain: ChainConfig{
			RPCURL:     DefaultRPCURL,
			PrivateKey: DefaultPrivateKey,
			GasPrice:   DefaultGasPrice,
			GasLimit:   DefaultGasLimit,
		},
		Nats: NatsConfig{
			Subject: DefaultNatsSubject,
		},
	}
}
