package infra

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/retry"
)

// GetNATSConnection connects to the configured server, retrying with
// exponential backoff until ctx is done. Production connections use mutual TLS.
func GetNATSConnection(ctx context.Context, natsConfig config.NatsConfig, environment config.Env) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("contract-gateway"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("Disconnected from NATS", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ErrorHandler(natsErrHandler),
	}

	natsURL := natsConfig.URL
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	if environment == config.ProdEnv {
		clientCert := natsConfig.TLS.ClientCert
		clientKey := natsConfig.TLS.ClientKey
		caCert := natsConfig.TLS.CACert

		if clientCert == "" {
			clientCert = filepath.Join(".", "certs", "client-cert.pem")
		}
		if clientKey == "" {
			clientKey = filepath.Join(".", "certs", "client-key.pem")
		}
		if caCert == "" {
			caCert = filepath.Join(".", "certs", "rootCA.pem")
		}
		opts = append(opts,
			nats.ClientCert(clientCert, clientKey),
			nats.RootCAs(caCert),
		)
	}
	if natsConfig.Username != "" {
		opts = append(opts, nats.UserInfo(natsConfig.Username, natsConfig.Password))
	}

	var nc *nats.Conn
	err := retry.Exponential(ctx, func() error {
		conn, err := nats.Connect(natsURL, opts...)
		if errors.Is(err, nats.ErrAuthorization) {
			return retry.Permanent(err)
		}
		if err != nil {
			return err
		}
		nc = conn
		return nil
	}, retry.ExponentialConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		OnRetry: func(err error, next time.Duration) {
			logger.Warn("NATS connect failed, retrying", "url", natsURL, "error", err, "next", next)
		},
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to NATS", "url", nc.ConnectedUrl())
	return nc, nil
}

func natsErrHandler(nc *nats.Conn, sub *nats.Subscription, natsErr error) {
	if sub == nil {
		logger.Error("NATS error", "error", natsErr)
		return
	}
	logger.Error("NATS error", "error", natsErr, "subject", sub.Subject)
}
