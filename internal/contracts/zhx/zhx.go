// Package zhx binds the ZHX mintable ERC20 token.
package zhx

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/fystack/contract-gateway/internal/chain"
)

const ABI = `[
	{"type":"constructor","inputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"Approval","anonymous":false,"inputs":[
		{"name":"owner","type":"address","indexed":true},
		{"name":"spender","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}]},
	{"type":"function","name":"allowance","stateMutability":"view",
		"inputs":[{"name":"_owner","type":"address"},{"name":"_spender","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable",
		"inputs":[{"name":"_spender","type":"address"},{"name":"_value","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
		"inputs":[{"name":"_owner","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"burn","stateMutability":"nonpayable",
		"inputs":[{"name":"_amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"decimals","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable",
		"inputs":[{"name":"_to","type":"address"},{"name":"_amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"name","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
		"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable",
		"inputs":[{"name":"_from","type":"address"},{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]}
]`

var parsedABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(ABI))
})

// Token is a handle to one deployed ZHX contract. Every transaction is signed
// by the provider's account.
type Token struct {
	address  common.Address
	contract *bind.BoundContract
	provider *chain.Provider
}

// Deploy creates a new token and waits for the creation receipt.
func Deploy(ctx context.Context, p *chain.Provider) (*Token, *chain.Receipt, error) {
	parsed, err := parsedABI()
	if err != nil {
		return nil, nil, err
	}

	var (
		address common.Address
		bound   *bind.BoundContract
	)
	receipt, err := p.Execute(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		addr, tx, c, err := bind.DeployContract(opts, parsed, common.FromHex(Bin), p.Backend())
		address, bound = addr, c
		return tx, err
	})
	if err != nil {
		return nil, receipt, err
	}
	return &Token{address: address, contract: bound, provider: p}, receipt, nil
}

// Bind attaches to an existing contract. The address is not checked for code.
func Bind(address common.Address, p *chain.Provider) (*Token, error) {
	parsed, err := parsedABI()
	if err != nil {
		return nil, err
	}
	backend := p.Backend()
	return &Token{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		provider: p,
	}, nil
}

func (t *Token) Address() common.Address { return t.address }

func (t *Token) call(ctx context.Context, method string, args ...any) (any, error) {
	var out []any
	if err := t.contract.Call(t.provider.CallOpts(ctx), &out, method, args...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New(method + ": empty result")
	}
	return out[0], nil
}

func (t *Token) callBig(ctx context.Context, method string, args ...any) (*big.Int, error) {
	v, err := t.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(v, new(big.Int)).(*big.Int), nil
}

func (t *Token) callString(ctx context.Context, method string) (string, error) {
	v, err := t.call(ctx, method)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(v, new(string)).(*string), nil
}

func (t *Token) Name(ctx context.Context) (string, error) {
	return t.callString(ctx, "name")
}

func (t *Token) Symbol(ctx context.Context) (string, error) {
	return t.callString(ctx, "symbol")
}

func (t *Token) Decimals(ctx context.Context) (uint8, error) {
	v, err := t.call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(v, new(uint8)).(*uint8), nil
}

func (t *Token) TotalSupply(ctx context.Context) (*big.Int, error) {
	return t.callBig(ctx, "totalSupply")
}

func (t *Token) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return t.callBig(ctx, "balanceOf", owner)
}

func (t *Token) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	return t.callBig(ctx, "allowance", owner, spender)
}

func (t *Token) transact(ctx context.Context, method string, args ...any) (*chain.Receipt, error) {
	return t.provider.Execute(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return t.contract.Transact(opts, method, args...)
	})
}

func (t *Token) Mint(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, error) {
	return t.transact(ctx, "mint", to, amount)
}

func (t *Token) Transfer(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, error) {
	return t.transact(ctx, "transfer", to, amount)
}

func (t *Token) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*chain.Receipt, error) {
	return t.transact(ctx, "approve", spender, amount)
}

// TransferFrom moves tokens from an owner who approved the sender.
func (t *Token) TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) (*chain.Receipt, error) {
	return t.transact(ctx, "transferFrom", from, to, amount)
}

// Burn destroys amount tokens held by the sender.
func (t *Token) Burn(ctx context.Context, amount *big.Int) (*chain.Receipt, error) {
	return t.transact(ctx, "burn", amount)
}
