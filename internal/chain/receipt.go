package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Receipt is the part of a transaction receipt the gateway reports.
type Receipt struct {
	TxHash          common.Hash
	BlockNumber     *big.Int
	GasUsed         uint64
	Status          uint64
	ContractAddress common.Address
	Logs            []*types.Log
}

func newReceipt(r *types.Receipt) *Receipt {
	block := new(big.Int)
	if r.BlockNumber != nil {
		block.Set(r.BlockNumber)
	}
	return &Receipt{
		TxHash:          r.TxHash,
		BlockNumber:     block,
		GasUsed:         r.GasUsed,
		Status:          r.Status,
		ContractAddress: r.ContractAddress,
		Logs:            r.Logs,
	}
}

// StatusHex renders the status the way nodes do: "0x1" or "0x0".
func (r *Receipt) StatusHex() string {
	return hexutil.EncodeUint64(r.Status)
}

func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// TxFailedError reports a transaction that was mined but reverted.
type TxFailedError struct {
	Hash    common.Hash
	Status  uint64
	GasUsed uint64
}

func (e *TxFailedError) Error() string {
	return fmt.Sprintf("transaction %s has failed with status: %s. Gas used: %d",
		e.Hash.Hex(), hexutil.EncodeUint64(e.Status), e.GasUsed)
}
