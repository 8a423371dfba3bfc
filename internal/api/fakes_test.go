package api

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/contracts/zhx"
	"github.com/fystack/contract-gateway/internal/service"
)

// fakeToken records every call that would reach the chain.
type fakeToken struct {
	mu       sync.Mutex
	address  *common.Address
	sender   common.Address
	calls    []string
	err      error
	receipt  *chain.Receipt
	balance  *big.Int
	info     *service.TokenInfo
	transfer []zhx.TransferEvent
	lastArgs []any
}

func newFakeToken() *fakeToken {
	return &fakeToken{
		sender: common.HexToAddress("0x627306090abaB3A6e1400e9345bC60c78a8BEf57"),
		receipt: &chain.Receipt{
			TxHash:      common.HexToHash("0xfeed"),
			BlockNumber: big.NewInt(12),
			GasUsed:     51234,
			Status:      1,
		},
		balance: big.NewInt(0),
	}
}

func (f *fakeToken) record(name string, args ...any) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.lastArgs = args
	if f.address == nil {
		return common.Address{}, service.ErrContractNotLoaded
	}
	return *f.address, f.err
}

func (f *fakeToken) chainCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeToken) set(addr common.Address) {
	f.mu.Lock()
	f.address = &addr
	f.mu.Unlock()
}

func (f *fakeToken) Deploy(context.Context) (common.Address, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "deploy")
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return common.Address{}, err
	}
	addr := common.HexToAddress("0x00000000000000000000000000000000000d3b10")
	f.set(addr)
	return addr, nil
}

func (f *fakeToken) Load(address common.Address) error {
	f.set(address)
	return nil
}

func (f *fakeToken) Address() (common.Address, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.address == nil {
		return common.Address{}, false
	}
	return *f.address, true
}

func (f *fakeToken) Sender() common.Address { return f.sender }

func (f *fakeToken) Info(context.Context) (*service.TokenInfo, common.Address, error) {
	addr, err := f.record("info")
	return f.info, addr, err
}

func (f *fakeToken) Mint(_ context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	addr, err := f.record("mint", to, amount)
	return f.receipt, addr, err
}

func (f *fakeToken) Transfer(_ context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	addr, err := f.record("transfer", to, amount)
	return f.receipt, addr, err
}

func (f *fakeToken) BalanceOf(_ context.Context, owner common.Address) (*big.Int, common.Address, error) {
	addr, err := f.record("balanceOf", owner)
	return f.balance, addr, err
}

func (f *fakeToken) Allowance(_ context.Context, owner, spender common.Address) (*big.Int, common.Address, error) {
	addr, err := f.record("allowance", owner, spender)
	return f.balance, addr, err
}

func (f *fakeToken) Approve(_ context.Context, spender common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	addr, err := f.record("approve", spender, amount)
	return f.receipt, addr, err
}

func (f *fakeToken) TransferFrom(_ context.Context, from, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	addr, err := f.record("transferFrom", from, to, amount)
	return f.receipt, addr, err
}

func (f *fakeToken) Burn(_ context.Context, amount *big.Int) (*chain.Receipt, common.Address, error) {
	addr, err := f.record("burn", amount)
	return f.receipt, addr, err
}

func (f *fakeToken) Transfers(_ context.Context, r zhx.Range, from, to []common.Address) ([]zhx.TransferEvent, common.Address, error) {
	addr, err := f.record("transfers", r, from, to)
	return f.transfer, addr, err
}

func (f *fakeToken) Approvals(_ context.Context, r zhx.Range, owner, spender []common.Address) ([]zhx.ApprovalEvent, common.Address, error) {
	addr, err := f.record("approvals", r, owner, spender)
	return nil, addr, err
}

type fakeStorage struct {
	mu      sync.Mutex
	address *common.Address
	value   *big.Int
	calls   []string
	err     error
}

func (f *fakeStorage) Deploy(context.Context) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "deploy")
	if f.err != nil {
		return common.Address{}, f.err
	}
	addr := common.HexToAddress("0x00000000000000000000000000000000000005e7")
	f.address = &addr
	f.value = big.NewInt(0)
	return addr, nil
}

func (f *fakeStorage) Load(address common.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.address = &address
	return nil
}

func (f *fakeStorage) Address() (common.Address, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.address == nil {
		return common.Address{}, false
	}
	return *f.address, true
}

func (f *fakeStorage) Value(context.Context) (*big.Int, common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "get")
	if f.address == nil {
		return nil, common.Address{}, service.ErrContractNotLoaded
	}
	return f.value, *f.address, f.err
}

func (f *fakeStorage) SetValue(_ context.Context, v *big.Int) (*chain.Receipt, common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "set")
	if f.address == nil {
		return nil, common.Address{}, service.ErrContractNotLoaded
	}
	if f.err != nil {
		return nil, *f.address, f.err
	}
	f.value = v
	return &chain.Receipt{TxHash: common.HexToHash("0x42"), BlockNumber: big.NewInt(3), GasUsed: 43000, Status: 1}, *f.address, nil
}

var errNode = errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
