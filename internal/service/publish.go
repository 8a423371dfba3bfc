package service

import (
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/events"
)

type publisher struct {
	emitter  events.Emitter
	contract string
	log      *slog.Logger
}

func newPublisher(emitter events.Emitter, contract string) publisher {
	if emitter == nil {
		emitter = events.Nop()
	}
	return publisher{
		emitter:  emitter,
		contract: contract,
		log:      logger.With("contract", contract),
	}
}

// publish never fails the caller; the chain state already changed.
func (p publisher) publish(typ string, address common.Address, r *chain.Receipt, data any) {
	ev := events.NewEvent(p.contract, typ, address.Hex())
	if r != nil {
		ev.TxHash = r.TxHash.Hex()
		ev.BlockNumber = r.BlockNumber.String()
		ev.GasUsed = formatUint(r.GasUsed)
	}
	ev.Data = data
	if err := p.emitter.Emit(ev); err != nil {
		p.log.Warn("Failed to publish gateway event",
			"type", typ,
			"error", err,
		)
	}
}
