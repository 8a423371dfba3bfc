// Package chaintest runs providers against an in-process simulated chain.
package chaintest

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/fystack/contract-gateway/internal/chain"
)

var (
	GasPrice = big.NewInt(20_000_000_000)
	GasLimit = uint64(6_721_975)
)

// Chain is a simulated node plus a funded signing account.
type Chain struct {
	Sim      *simulated.Backend
	Key      *ecdsa.PrivateKey
	Provider *chain.Provider
	// ChainID is reported by the simulated node itself.
	ChainID *big.Int
}

// committingClient mines a block for every transaction it sends so receipts
// are available immediately.
type committingClient struct {
	simulated.Client
	sim *simulated.Backend
}

func (c *committingClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.sim.Commit()
	return nil
}

// New starts a simulated chain funded for one freshly generated account.
// Every transaction is mined as soon as it is sent.
func New(t testing.TB) *Chain {
	t.Helper()
	c := start(t)
	c.Provider = newProvider(&committingClient{Client: c.Sim.Client(), sim: c.Sim}, c.Key)
	return c
}

// NewManual is like New but leaves transactions pending until the test
// calls Sim.Commit.
func NewManual(t testing.TB) *Chain {
	t.Helper()
	c := start(t)
	c.Provider = newProvider(c.Sim.Client(), c.Key)
	return c
}

func start(t testing.TB) *Chain {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	funds := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	sim := simulated.NewBackend(types.GenesisAlloc{
		crypto.PubkeyToAddress(key.PublicKey): {Balance: funds},
	})
	t.Cleanup(func() { _ = sim.Close() })

	id, err := sim.Client().ChainID(context.Background())
	require.NoError(t, err)
	return &Chain{Sim: sim, Key: key, ChainID: id}
}

func newProvider(backend chain.Backend, key *ecdsa.PrivateKey) *chain.Provider {
	return chain.NewProvider(backend, key, chain.WithGasPolicy(chain.GasPolicy{
		Price: GasPrice,
		Limit: GasLimit,
	}))
}
