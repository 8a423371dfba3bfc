package chain_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/chain/chaintest"
)

const devKey = "791780e5a2a1d297594ea1f5411c423b7f5486b0d899ba5c5734c8bfabe6db55"

func TestParsePrivateKey(t *testing.T) {
	plain, err := chain.ParsePrivateKey(devKey)
	require.NoError(t, err)

	prefixed, err := chain.ParsePrivateKey("0x" + devKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(plain.PublicKey), crypto.PubkeyToAddress(prefixed.PublicKey))

	_, err = chain.ParsePrivateKey("")
	assert.Error(t, err)
	_, err = chain.ParsePrivateKey("0xzz")
	assert.Error(t, err)
}

func TestParseGasPrice(t *testing.T) {
	price, err := chain.ParseGasPrice("20000000000")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(20_000_000_000), price)

	for _, bad := range []string{"", "abc", "-1", "1.5", "0", "0.0"} {
		_, err := chain.ParseGasPrice(bad)
		assert.Error(t, err, bad)
	}
}

func TestProvider_ChainIDFromNode(t *testing.T) {
	c := chaintest.New(t)

	id, err := c.Provider.ChainID(context.Background())
	require.NoError(t, err)
	assert.Zero(t, c.ChainID.Cmp(id), "got %s, node reports %s", id, c.ChainID)
	assert.Equal(t, crypto.PubkeyToAddress(c.Key.PublicKey), c.Provider.Sender())
}

func TestProvider_TransactOptsCarryGasPolicy(t *testing.T) {
	c := chaintest.New(t)

	opts, err := c.Provider.TransactOpts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, c.Provider.Sender(), opts.From)
	assert.Equal(t, chaintest.GasPrice, opts.GasPrice)
	assert.Equal(t, chaintest.GasLimit, opts.GasLimit)
}

func TestProvider_PinnedChainIDSkipsNode(t *testing.T) {
	key, err := chain.ParsePrivateKey(devKey)
	require.NoError(t, err)

	p := chain.NewProvider(&receiptBackend{}, key, chain.WithChainID(big.NewInt(5)))
	id, err := p.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), id.Int64())
}

func TestProvider_ChainIDErrorNotCached(t *testing.T) {
	key, err := chain.ParsePrivateKey(devKey)
	require.NoError(t, err)

	backend := &receiptBackend{chainErr: errors.New("connection refused")}
	p := chain.NewProvider(backend, key)

	_, err = p.ChainID(context.Background())
	require.Error(t, err)

	backend.chainErr = nil
	id, err := p.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1337), id.Int64())
}

func TestProvider_WaitMinedFailedStatus(t *testing.T) {
	key, err := chain.ParsePrivateKey(devKey)
	require.NoError(t, err)

	tx := types.NewTx(&types.LegacyTx{Nonce: 7, Gas: 21000, GasPrice: big.NewInt(1)})
	backend := &receiptBackend{receipt: &types.Receipt{
		TxHash:      tx.Hash(),
		Status:      types.ReceiptStatusFailed,
		GasUsed:     23_456,
		BlockNumber: big.NewInt(12),
	}}
	p := chain.NewProvider(backend, key)

	receipt, err := p.WaitMined(context.Background(), tx)
	require.Error(t, err)

	var failed *chain.TxFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, tx.Hash(), failed.Hash)
	assert.Contains(t, err.Error(), "has failed with status: 0x0. Gas used: 23456")

	require.NotNil(t, receipt)
	assert.Equal(t, "0x0", receipt.StatusHex())
	assert.False(t, receipt.Succeeded())
	assert.Equal(t, "12", receipt.BlockNumber.String())
}

func TestProvider_WaitMinedSuccess(t *testing.T) {
	key, err := chain.ParsePrivateKey(devKey)
	require.NoError(t, err)

	tx := types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)})
	contract := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	backend := &receiptBackend{receipt: &types.Receipt{
		TxHash:          tx.Hash(),
		Status:          types.ReceiptStatusSuccessful,
		GasUsed:         21_000,
		BlockNumber:     big.NewInt(3),
		ContractAddress: contract,
	}}
	p := chain.NewProvider(backend, key)

	receipt, err := p.WaitMined(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, "0x1", receipt.StatusHex())
	assert.Equal(t, contract, receipt.ContractAddress)
	assert.Equal(t, uint64(21_000), receipt.GasUsed)
}

// receiptBackend answers receipt and chain id lookups; everything else panics
// through the nil embedded interface.
type receiptBackend struct {
	chain.Backend
	receipt  *types.Receipt
	chainErr error
}

func (b *receiptBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return b.receipt, nil
}

func (b *receiptBackend) ChainID(context.Context) (*big.Int, error) {
	if b.chainErr != nil {
		return nil, b.chainErr
	}
	return big.NewInt(1337), nil
}
