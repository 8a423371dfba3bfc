package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/contracts/zhx"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/events"
)

type TokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

type TokenService struct {
	provider *chain.Provider
	slot     Slot[*zhx.Token]
	pub      publisher
}

func NewTokenService(p *chain.Provider, emitter events.Emitter) *TokenService {
	return &TokenService{
		provider: p,
		pub:      newPublisher(emitter, events.ContractZHX),
	}
}

// Deploy creates a new token and makes it the loaded one. Like
// StorageService.Deploy it ignores ctx cancellation.
func (s *TokenService) Deploy(ctx context.Context) (common.Address, error) {
	logger.Info("Deploying ZHX contract...")
	token, receipt, err := zhx.Deploy(context.WithoutCancel(ctx), s.provider)
	if err != nil {
		return common.Address{}, err
	}
	s.slot.Set(token.Address(), token)
	logger.Info("ZHX contract deployed", "address", token.Address().Hex(), "tx", receipt.TxHash.Hex())
	s.pub.publish(events.TypeDeployed, token.Address(), receipt, nil)
	return token.Address(), nil
}

func (s *TokenService) Load(address common.Address) error {
	logger.Info("Loading ZHX contract", "address", address.Hex())
	token, err := zhx.Bind(address, s.provider)
	if err != nil {
		return err
	}
	s.slot.Set(address, token)
	s.pub.publish(events.TypeLoaded, address, nil, nil)
	return nil
}

func (s *TokenService) Address() (common.Address, bool) {
	return s.slot.Address()
}

// Sender is the signing account. It does not depend on the loaded token.
func (s *TokenService) Sender() common.Address {
	return s.provider.Sender()
}

func (s *TokenService) Info(ctx context.Context) (*TokenInfo, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	info := &TokenInfo{}
	if info.Name, err = token.Name(ctx); err != nil {
		return nil, address, err
	}
	if info.Symbol, err = token.Symbol(ctx); err != nil {
		return nil, address, err
	}
	if info.Decimals, err = token.Decimals(ctx); err != nil {
		return nil, address, err
	}
	if info.TotalSupply, err = token.TotalSupply(ctx); err != nil {
		return nil, address, err
	}
	return info, address, nil
}

func (s *TokenService) Mint(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Mint tokens", "amount", amount.String(), "to", to.Hex(), "contract", address.Hex())
	receipt, err := token.Mint(ctx, to, amount)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeMint, address, receipt, map[string]string{
		"to":     to.Hex(),
		"amount": amount.String(),
	})
	return receipt, address, nil
}

func (s *TokenService) Transfer(ctx context.Context, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Transfer tokens", "amount", amount.String(), "to", to.Hex(), "contract", address.Hex())
	receipt, err := token.Transfer(ctx, to, amount)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeTransfer, address, receipt, map[string]string{
		"from":   s.provider.Sender().Hex(),
		"to":     to.Hex(),
		"amount": amount.String(),
	})
	return receipt, address, nil
}

func (s *TokenService) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Query balance", "owner", owner.Hex(), "contract", address.Hex())
	balance, err := token.BalanceOf(ctx, owner)
	return balance, address, err
}

func (s *TokenService) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Query allowance", "owner", owner.Hex(), "spender", spender.Hex(), "contract", address.Hex())
	allowance, err := token.Allowance(ctx, owner, spender)
	return allowance, address, err
}

func (s *TokenService) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Approve tokens", "amount", amount.String(), "spender", spender.Hex(), "contract", address.Hex())
	receipt, err := token.Approve(ctx, spender, amount)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeApprove, address, receipt, map[string]string{
		"owner":   s.provider.Sender().Hex(),
		"spender": spender.Hex(),
		"amount":  amount.String(),
	})
	return receipt, address, nil
}

func (s *TokenService) TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) (*chain.Receipt, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("TransferFrom tokens", "from", from.Hex(), "to", to.Hex(), "amount", amount.String(), "contract", address.Hex())
	receipt, err := token.TransferFrom(ctx, from, to, amount)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeTransferFrom, address, receipt, map[string]string{
		"from":   from.Hex(),
		"to":     to.Hex(),
		"amount": amount.String(),
	})
	return receipt, address, nil
}

func (s *TokenService) Burn(ctx context.Context, amount *big.Int) (*chain.Receipt, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Burn tokens", "amount", amount.String(), "contract", address.Hex())
	receipt, err := token.Burn(ctx, amount)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeBurn, address, receipt, map[string]string{
		"amount": amount.String(),
	})
	return receipt, address, nil
}

func (s *TokenService) Transfers(ctx context.Context, r zhx.Range, from, to []common.Address) ([]zhx.TransferEvent, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	evs, err := token.FilterTransfer(ctx, r, from, to)
	return evs, address, err
}

func (s *TokenService) Approvals(ctx context.Context, r zhx.Range, owner, spender []common.Address) ([]zhx.ApprovalEvent, common.Address, error) {
	token, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	evs, err := token.FilterApproval(ctx, r, owner, spender)
	return evs, address, err
}
