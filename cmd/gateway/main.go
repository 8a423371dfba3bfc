package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/common/logger"
)

var version = "dev"

// --- CLI definitions --- //

type CLI struct {
	Serve       ServeCmd       `cmd:"" default:"withargs" help:"Run the HTTP gateway."`
	Sender      SenderCmd      `cmd:"" help:"Print the signing account derived from the configured key."`
	NATSPrinter NATSPrinterCmd `cmd:"" name:"nats-printer" help:"Print gateway events published on NATS."`
	Version     VersionCmd     `cmd:"" help:"Print the version."`
}

type ServeCmd struct {
	ConfigPath string `help:"Path to config file." default:"configs/config.yaml" name:"config" type:"path"`
	Port       int    `help:"Override server.port." name:"port"`
	Debug      bool   `help:"Enable debug logs." name:"debug"`
}

type SenderCmd struct {
	ConfigPath string `help:"Path to config file." default:"configs/config.yaml" name:"config" type:"path"`
}

type NATSPrinterCmd struct {
	ConfigPath string `help:"Path to config file." default:"configs/config.yaml" name:"config" type:"path"`
	NATSURL    string `help:"Override nats.url." name:"nats-url"`
}

type VersionCmd struct{}

func (c *ServeCmd) Run() error {
	cfg, err := loadConfig(c.ConfigPath, c.Debug)
	if err != nil {
		return err
	}
	if c.Port > 0 {
		cfg.Server.Port = c.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runGateway(ctx, cfg)
}

func (c *SenderCmd) Run() error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	key, err := chain.ParsePrivateKey(cfg.Chain.PrivateKey)
	if err != nil {
		return err
	}
	fmt.Println(chain.NewProvider(nil, key).Sender().Hex())
	return nil
}

func (c *NATSPrinterCmd) Run() error {
	cfg, err := loadConfig(c.ConfigPath, false)
	if err != nil {
		return err
	}
	if c.NATSURL != "" {
		cfg.Nats.URL = c.NATSURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runNatsPrinter(ctx, cfg)
}

func (c *VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gateway"),
		kong.Description("REST gateway for the SimpleStorage and ZHX contracts."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		logger.Fatal("Command failed", "command", ctx.Command(), "error", err)
	}
}

func loadConfig(path string, debug bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = logger.ParseLevel("debug")
	}
	timeFormat := cfg.Log.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	logger.Init(&logger.Options{
		Level:      level,
		TimeFormat: timeFormat,
	})
	logger.Info("Config loaded", "env", cfg.Environment, "path", path)
	return cfg, nil
}
