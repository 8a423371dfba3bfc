package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"

	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/ratelimiter"
)

// Backend is everything the gateway needs from a node: calls, transactions,
// log filtering and receipts.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// GasPolicy is the fixed legacy gas price and limit applied to every
// transaction.
type GasPolicy struct {
	Price *big.Int
	Limit uint64
}

// Provider signs and submits transactions for a single account. Submissions
// are serialised so consecutive transactions get consecutive nonces.
type Provider struct {
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address
	gas     GasPolicy
	closer  func()

	chainMu sync.Mutex
	chainID *big.Int

	sendMu sync.Mutex
}

type Option func(*Provider)

// WithChainID pins the chain id instead of asking the node.
func WithChainID(id *big.Int) Option {
	return func(p *Provider) {
		if id != nil && id.Sign() > 0 {
			p.chainID = new(big.Int).Set(id)
		}
	}
}

func WithGasPolicy(gas GasPolicy) Option {
	return func(p *Provider) { p.gas = gas }
}

func withCloser(fn func()) Option {
	return func(p *Provider) { p.closer = fn }
}

func NewProvider(backend Backend, key *ecdsa.PrivateKey, opts ...Option) *Provider {
	p := &Provider{
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dial connects to the node described by cfg.
func Dial(ctx context.Context, cfg config.ChainConfig) (*Provider, error) {
	key, err := ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	price, err := ParseGasPrice(cfg.GasPrice)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &transport{
			base:    http.DefaultTransport,
			auth:    cfg.Auth,
			limiter: ratelimiter.New(cfg.Throttle.RPS, cfg.Throttle.Burst),
		},
	}
	rpcClient, err := rpc.DialOptions(ctx, cfg.RPCURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	client := ethclient.NewClient(rpcClient)

	p := NewProvider(client, key,
		WithChainID(big.NewInt(cfg.ChainID)),
		WithGasPolicy(GasPolicy{Price: price, Limit: cfg.GasLimit}),
		withCloser(client.Close),
	)
	logger.Info("Connected to node",
		"url", cfg.RPCURL,
		"sender", p.from.Hex(),
		"gas_price", decimal.NewFromBigInt(price, 0).Shift(-9).String()+" gwei",
		"gas_limit", cfg.GasLimit,
	)
	return p, nil
}

// ParsePrivateKey accepts a hex key with or without the 0x prefix.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, errors.New("private key is empty")
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// ParseGasPrice parses a positive wei amount written in decimal.
func ParseGasPrice(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid gas price %q: %w", s, err)
	}
	if !d.IsPositive() || !d.Equal(d.Truncate(0)) {
		return nil, fmt.Errorf("invalid gas price %q: must be a positive integer", s)
	}
	return d.BigInt(), nil
}

func (p *Provider) Backend() Backend { return p.backend }

// Sender is the account every transaction is signed by.
func (p *Provider) Sender() common.Address { return p.from }

// ChainID returns the configured chain id, or asks the node once and caches
// the answer. A failed lookup is not cached.
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	p.chainMu.Lock()
	defer p.chainMu.Unlock()

	if p.chainID != nil {
		return p.chainID, nil
	}
	id, err := p.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	p.chainID = id
	return id, nil
}

func (p *Provider) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx, From: p.from}
}

// TransactOpts returns signing options carrying the static gas policy.
func (p *Provider) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	if p.gas.Price != nil && p.gas.Price.Sign() > 0 {
		opts.GasPrice = new(big.Int).Set(p.gas.Price)
	}
	opts.GasLimit = p.gas.Limit
	return opts, nil
}

// SendFunc builds, signs and sends one transaction.
type SendFunc func(opts *bind.TransactOpts) (*types.Transaction, error)

// Submit sends the transaction built by fn without waiting for it to be mined.
func (p *Provider) Submit(ctx context.Context, fn SendFunc) (*types.Transaction, error) {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	opts, err := p.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := fn(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Transaction submitted", "tx", tx.Hash().Hex(), "nonce", tx.Nonce())
	return tx, nil
}

// WaitMined blocks until tx has a receipt. A receipt with failed status is
// returned together with a *TxFailedError.
func (p *Provider) WaitMined(ctx context.Context, tx *types.Transaction) (*Receipt, error) {
	r, err := bind.WaitMined(ctx, p.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}
	receipt := newReceipt(r)
	if r.Status != types.ReceiptStatusSuccessful {
		return receipt, &TxFailedError{Hash: r.TxHash, Status: r.Status, GasUsed: r.GasUsed}
	}
	logger.Debug("Transaction mined",
		slog.String("tx", receipt.TxHash.Hex()),
		slog.String("block", receipt.BlockNumber.String()),
		slog.Uint64("gas_used", receipt.GasUsed),
	)
	return receipt, nil
}

// Execute submits a transaction and waits for its receipt.
func (p *Provider) Execute(ctx context.Context, fn SendFunc) (*Receipt, error) {
	tx, err := p.Submit(ctx, fn)
	if err != nil {
		return nil, err
	}
	return p.WaitMined(ctx, tx)
}

func (p *Provider) Close() {
	if p.closer != nil {
		p.closer()
	}
}
