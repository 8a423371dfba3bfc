package service

import (
	"context"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/contracts/simplestorage"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/events"
)

type StorageService struct {
	provider *chain.Provider
	slot     Slot[*simplestorage.Storage]
	pub      publisher
}

func NewStorageService(p *chain.Provider, emitter events.Emitter) *StorageService {
	return &StorageService{
		provider: p,
		pub:      newPublisher(emitter, events.ContractStorage),
	}
}

// Deploy creates a new contract and makes it the loaded one. The deployment
// is not tied to ctx cancellation: once submitted, the contract is bound when
// it is mined even if the caller has gone away.
func (s *StorageService) Deploy(ctx context.Context) (common.Address, error) {
	logger.Info("Deploying SimpleStorage contract...")
	contract, receipt, err := simplestorage.Deploy(context.WithoutCancel(ctx), s.provider)
	if err != nil {
		return common.Address{}, err
	}
	s.slot.Set(contract.Address(), contract)
	logger.Info("SimpleStorage contract deployed", "address", contract.Address().Hex(), "tx", receipt.TxHash.Hex())
	s.pub.publish(events.TypeDeployed, contract.Address(), receipt, nil)
	return contract.Address(), nil
}

// Load binds to an existing address without checking it holds code.
func (s *StorageService) Load(address common.Address) error {
	logger.Info("Loading SimpleStorage contract", "address", address.Hex())
	contract, err := simplestorage.Bind(address, s.provider)
	if err != nil {
		return err
	}
	s.slot.Set(address, contract)
	s.pub.publish(events.TypeLoaded, address, nil, nil)
	return nil
}

func (s *StorageService) Address() (common.Address, bool) {
	return s.slot.Address()
}

// Value reads the stored integer and the address it was read from.
func (s *StorageService) Value(ctx context.Context) (*big.Int, common.Address, error) {
	contract, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Getting value from contract", "address", address.Hex())
	v, err := contract.Get(ctx)
	if err != nil {
		return nil, address, err
	}
	return v, address, nil
}

func (s *StorageService) SetValue(ctx context.Context, value *big.Int) (*chain.Receipt, common.Address, error) {
	contract, address, err := s.slot.Get()
	if err != nil {
		return nil, common.Address{}, err
	}
	logger.Info("Setting value in contract", "value", value.String(), "address", address.Hex())
	receipt, err := contract.Set(ctx, value)
	if err != nil {
		return receipt, address, err
	}
	s.pub.publish(events.TypeSet, address, receipt, map[string]string{"value": value.String()})
	return receipt, address, nil
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
