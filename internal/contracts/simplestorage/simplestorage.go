// Package simplestorage binds a contract holding a single uint256 slot.
package simplestorage

import (
	"context"
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
	{"type":"function","name":"set","stateMutability":"nonpayable",
		"inputs":[{"name":"x","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"get","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

// Bin deploys a 66 byte runtime that stores set(x) in slot 0 and returns it
// from get(). Unknown selectors and value transfers revert.
const Bin = "0x604280600b6000396000f3" +
	"6004361060215760003560e01c806360fe47b11460265780636d4ce63c146032575b600080fd5b" +
	"34602157600435600055005b3460215760005460005260206000f3"

var parsedABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(ABI))
})

type Storage struct {
	address  common.Address
	contract *bind.BoundContract
	provider *chain.Provider
}

// Deploy creates a new storage contract. The stored value starts at zero.
func Deploy(ctx context.Context, p *chain.Provider) (*Storage, *chain.Receipt, error) {
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
	return &Storage{address: address, contract: bound, provider: p}, receipt, nil
}

func Bind(address common.Address, p *chain.Provider) (*Storage, error) {
	parsed, err := parsedABI()
	if err != nil {
		return nil, err
	}
	backend := p.Backend()
	return &Storage{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		provider: p,
	}, nil
}

func (s *Storage) Address() common.Address { return s.address }

func (s *Storage) Get(ctx context.Context) (*big.Int, error) {
	var out []any
	if err := s.contract.Call(s.provider.CallOpts(ctx), &out, "get"); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (s *Storage) Set(ctx context.Context, value *big.Int) (*chain.Receipt, error) {
	return s.provider.Execute(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.Transact(opts, "set", value)
	})
}
