package service

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// binding pairs a contract handle with its address so both are swapped
// together.
type binding[T any] struct {
	address  common.Address
	contract T
}

// Slot holds at most one loaded contract. The last Set wins; there is no way
// back to the empty state.
type Slot[T any] struct {
	mu  sync.RWMutex
	cur *binding[T]
}

func (s *Slot[T]) Set(address common.Address, contract T) {
	s.mu.Lock()
	s.cur = &binding[T]{address: address, contract: contract}
	s.mu.Unlock()
}

// Get returns the current binding or ErrContractNotLoaded.
func (s *Slot[T]) Get() (T, common.Address, error) {
	s.mu.RLock()
	cur := s.cur
	s.mu.RUnlock()

	if cur == nil {
		var zero T
		return zero, common.Address{}, ErrContractNotLoaded
	}
	return cur.contract, cur.address, nil
}

func (s *Slot[T]) Address() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return common.Address{}, false
	}
	return s.cur.address, true
}
