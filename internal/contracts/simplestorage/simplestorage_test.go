package simplestorage

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fystack/contract-gateway/internal/chain/chaintest"
)

func TestDeploy_StartsAtZero(t *testing.T) {
	c := chaintest.New(t)
	ctx := context.Background()

	s, receipt, err := Deploy(ctx, c.Provider)
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, s.Address())
	assert.Equal(t, s.Address(), receipt.ContractAddress)
	assert.Equal(t, "0x1", receipt.StatusHex())

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())
}

func TestSetThenGet(t *testing.T) {
	c := chaintest.New(t)
	ctx := context.Background()

	s, _, err := Deploy(ctx, c.Provider)
	require.NoError(t, err)

	receipt, err := s.Set(ctx, big.NewInt(42))
	require.NoError(t, err)
	assert.True(t, receipt.Succeeded())
	assert.Greater(t, receipt.GasUsed, uint64(0))
	assert.Equal(t, 1, receipt.BlockNumber.Sign())

	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int64())

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	_, err = s.Set(ctx, max)
	require.NoError(t, err)

	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, max, v)
}

func TestBind_SharesStateWithDeployed(t *testing.T) {
	c := chaintest.New(t)
	ctx := context.Background()

	deployed, _, err := Deploy(ctx, c.Provider)
	require.NoError(t, err)
	_, err = deployed.Set(ctx, big.NewInt(7))
	require.NoError(t, err)

	loaded, err := Bind(deployed.Address(), c.Provider)
	require.NoError(t, err)
	v, err := loaded.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int64())
}

func TestGet_NoCode(t *testing.T) {
	c := chaintest.New(t)

	s, err := Bind(common.HexToAddress("0x1111111111111111111111111111111111111111"), c.Provider)
	require.NoError(t, err)

	_, err = s.Get(context.Background())
	assert.ErrorIs(t, err, bind.ErrNoCode)
}
