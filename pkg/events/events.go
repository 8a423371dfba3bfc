package events

import (
	"time"
)

const (
	TypeDeployed     = "deployed"
	TypeLoaded       = "loaded"
	TypeSet          = "set"
	TypeMint         = "mint"
	TypeTransfer     = "transfer"
	TypeApprove      = "approve"
	TypeTransferFrom = "transferFrom"
	TypeBurn         = "burn"
)

const (
	ContractStorage = "simplestorage"
	ContractZHX     = "zhx"
)

// GatewayEvent is published once per successful state change made through
// the gateway.
type GatewayEvent struct {
	Type        string `json:"type"`
	Contract    string `json:"contract"`
	Address     string `json:"address"`
	TxHash      string `json:"txHash,omitempty"`
	BlockNumber string `json:"blockNumber,omitempty"`
	GasUsed     string `json:"gasUsed,omitempty"`
	Data        any    `json:"data,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

func NewEvent(contract, typ, address string) GatewayEvent {
	return GatewayEvent{
		Type:      typ,
		Contract:  contract,
		Address:   address,
		Timestamp: time.Now().UTC().Unix(),
	}
}

// Subject is the full subject an event is published on.
func (e GatewayEvent) Subject(prefix string) string {
	return prefix + "." + e.Contract + "." + e.Type
}
