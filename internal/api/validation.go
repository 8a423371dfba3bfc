package api

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ethAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

const zeroAddress = "0x0000000000000000000000000000000000000000"

const (
	msgNotLoaded       = "Contract not deployed or loaded. Call /api/zhx/deploy or /api/zhx/load first."
	msgInvalidAmount   = "Invalid amount"
	msgAmountPositive  = "Amount must be positive"
	msgAmountTooLarge  = "Amount exceeds uint256"
	msgInvalidValue    = "Invalid value. Expect a non-negative integer."
	msgInvalidContract = "Invalid contract address. Expect 0x + 40 hex chars."
	msgInvalidAddress  = "Invalid address. Expect 0x + 40 hex chars."
	msgNoContract      = "No contract loaded"
	msgLoaded          = "Contract loaded successfully"
)

// maxUint256 is 2^256 - 1.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func invalidAddressMsg(role string) string {
	return "Invalid " + role + " address. Expect 0x + 40 hex chars."
}

// parseAddress checks the 0x + 40 hex format. The zero address is accepted
// only when allowZero is set.
func parseAddress(s string, allowZero bool) (common.Address, bool) {
	if !ethAddress.MatchString(s) {
		return common.Address{}, false
	}
	if !allowZero && strings.EqualFold(s, zeroAddress) {
		return common.Address{}, false
	}
	return common.HexToAddress(s), true
}

// parseAmount parses a base-10 token amount that must be positive and fit in
// a uint256. The returned string is the error message for the caller.
func parseAmount(s string) (*big.Int, string) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, msgInvalidAmount
	}
	if v.Sign() <= 0 {
		return nil, msgAmountPositive
	}
	if v.Cmp(maxUint256) > 0 {
		return nil, msgAmountTooLarge
	}
	return v, ""
}

// parseValue parses a storage value in [0, 2^256-1].
func parseValue(s string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return nil, false
	}
	return v, true
}
