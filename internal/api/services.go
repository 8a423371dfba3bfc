package api

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/contracts/zhx"
	"github.com/fystack/contract-gateway/internal/service"
)

// StorageService is implemented by *service.StorageService.
type StorageService interface {
	Deploy(ctx context.Context) (common.Address, error)
	Load(address common.Address) error
	Address() (common.Address, bool)
	Value(ctx context.Context) (*big.Int, common.Address, error)
	SetValue(ctx context.Context, value *big.Int) (*chain.Receipt, common.Address, error)
}

// TokenService is implemented by *service.TokenService.
type TokenService interface {
	Deploy(ctx context.Context) (common.Address, error)
	Load(address common.Address) error
	Address() (common.Address, bool)
	Sender() common.Address
	Info(ctx context.Context) (*service.TokenInfo, common.Address, error)
	Mint(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error)
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, common.Address, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, common.Address, error)
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (*chain.Receipt, common.Address, error)
	TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error)
	Burn(ctx context.Context, amount *big.Int) (*chain.Receipt, common.Address, error)
	Transfers(ctx context.Context, r zhx.Range, from, to []common.Address) ([]zhx.TransferEvent, common.Address, error)
	Approvals(ctx context.Context, r zhx.Range, owner, spender []common.Address) ([]zhx.ApprovalEvent, common.Address, error)
}

var (
	_ StorageService = (*service.StorageService)(nil)
	_ TokenService   = (*service.TokenService)(nil)
)
