package zhx

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

type TransferEvent struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

type ApprovalEvent struct {
	Owner   common.Address
	Spender common.Address
	Value   *big.Int
	Raw     types.Log
}

// Range bounds a log query. A nil To means the latest block.
type Range struct {
	From uint64
	To   *uint64
}

func (r Range) filterOpts(ctx context.Context) *bind.FilterOpts {
	return &bind.FilterOpts{Start: r.From, End: r.To, Context: ctx}
}

func addressRule(addrs []common.Address) []any {
	rule := make([]any, 0, len(addrs))
	for _, a := range addrs {
		rule = append(rule, a)
	}
	return rule
}

// FilterTransfer returns Transfer logs in r, optionally narrowed to the given
// senders and recipients.
func (t *Token) FilterTransfer(ctx context.Context, r Range, from, to []common.Address) ([]TransferEvent, error) {
	logs, sub, err := t.contract.FilterLogs(r.filterOpts(ctx), "Transfer", addressRule(from), addressRule(to))
	if err != nil {
		return nil, err
	}
	var events []TransferEvent
	err = collect(logs, sub, func(l types.Log) error {
		ev, err := t.ParseTransfer(l)
		if err != nil {
			return err
		}
		events = append(events, *ev)
		return nil
	})
	return events, err
}

// FilterApproval returns Approval logs in r, optionally narrowed to the given
// owners and spenders.
func (t *Token) FilterApproval(ctx context.Context, r Range, owner, spender []common.Address) ([]ApprovalEvent, error) {
	logs, sub, err := t.contract.FilterLogs(r.filterOpts(ctx), "Approval", addressRule(owner), addressRule(spender))
	if err != nil {
		return nil, err
	}
	var events []ApprovalEvent
	err = collect(logs, sub, func(l types.Log) error {
		ev, err := t.ParseApproval(l)
		if err != nil {
			return err
		}
		events = append(events, *ev)
		return nil
	})
	return events, err
}

func (t *Token) ParseTransfer(l types.Log) (*TransferEvent, error) {
	ev := &TransferEvent{Raw: l}
	if err := t.contract.UnpackLog(ev, "Transfer", l); err != nil {
		return nil, err
	}
	return ev, nil
}

func (t *Token) ParseApproval(l types.Log) (*ApprovalEvent, error) {
	ev := &ApprovalEvent{Raw: l}
	if err := t.contract.UnpackLog(ev, "Approval", l); err != nil {
		return nil, err
	}
	return ev, nil
}

// TransferEvents decodes the Transfer logs carried by a receipt's logs.
func (t *Token) TransferEvents(logs []*types.Log) []TransferEvent {
	var events []TransferEvent
	for _, l := range logs {
		if l == nil || l.Address != t.address {
			continue
		}
		ev, err := t.ParseTransfer(*l)
		if err != nil {
			continue
		}
		events = append(events, *ev)
	}
	return events
}

// collect drains a finished log subscription. The producer closes the error
// channel only after every log has been buffered.
func collect(logs <-chan types.Log, sub event.Subscription, fn func(types.Log) error) error {
	defer sub.Unsubscribe()
	for {
		select {
		case l := <-logs:
			if err := fn(l); err != nil {
				return err
			}
		case err := <-sub.Err():
			if err != nil {
				return err
			}
			for {
				select {
				case l := <-logs:
					if err := fn(l); err != nil {
						return err
					}
				default:
					return nil
				}
			}
		}
	}
}
