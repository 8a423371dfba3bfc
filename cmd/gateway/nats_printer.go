package main

import (
	"context"

	"github.com/nats-io/nats.go"

	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/infra"
)

func runNatsPrinter(ctx context.Context, cfg *config.Config) error {
	nc, err := infra.GetNATSConnection(ctx, cfg.Nats, cfg.Environment)
	if err != nil {
		return err
	}
	defer nc.Close()

	subject := cfg.Nats.Subject + ".>"
	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		logger.Info("Received event", "subject", msg.Subject, "payload", string(msg.Data))
	})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Unsubscribe() }()

	logger.Info("Subscribed", "subject", subject)
	<-ctx.Done()
	return nil
}
