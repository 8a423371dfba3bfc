package api

import (
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fystack/contract-gateway/internal/contracts/zhx"
	"github.com/fystack/contract-gateway/internal/service"
)

type TokenInfoResponse struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	Decimals             uint8  `json:"decimals"`
	TotalSupply          string `json:"totalSupply"`
	TotalSupplyFormatted string `json:"totalSupplyFormatted"`
	ContractAddress      string `json:"contractAddress"`
}

type TransferEventResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	BlockNumber     string `json:"blockNumber"`
	TransactionHash string `json:"transactionHash"`
	LogIndex        uint   `json:"logIndex"`
}

type ApprovalEventResponse struct {
	Owner           string `json:"owner"`
	Spender         string `json:"spender"`
	Value           string `json:"value"`
	BlockNumber     string `json:"blockNumber"`
	TransactionHash string `json:"transactionHash"`
	LogIndex        uint   `json:"logIndex"`
}

type EventsResponse[T any] struct {
	Events          []T    `json:"events"`
	ContractAddress string `json:"contractAddress"`
}

type TokenHandler struct {
	svc TokenService
}

func NewTokenHandler(svc TokenService) *TokenHandler {
	return &TokenHandler{svc: svc}
}

func (h *TokenHandler) Register(r gin.IRouter) {
	g := r.Group("/api/zhx")
	g.POST("/deploy", h.Deploy)
	g.POST("/load", h.Load)
	g.POST("/mint", h.Mint)
	g.POST("/transfer", h.Transfer)
	g.GET("/balanceOf", h.BalanceOf)
	g.GET("/allowance", h.Allowance)
	g.POST("/approve", h.Approve)
	g.POST("/transferFrom", h.TransferFrom)
	g.POST("/burn", h.Burn)
	g.GET("/info", h.Info)
	g.GET("/events/transfer", h.TransferEvents)
	g.GET("/events/approval", h.ApprovalEvents)
	g.GET("/sender", h.Sender)
	g.GET("/address", h.Address)
}

func (h *TokenHandler) Deploy(c *gin.Context) {
	address, err := h.svc.Deploy(c.Request.Context())
	if err != nil {
		writeChainError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, AddressResponse{ContractAddress: address.Hex()})
}

func (h *TokenHandler) Load(c *gin.Context) {
	params, ok := requireParams(c, "address")
	if !ok {
		return
	}
	address, ok := parseAddress(params["address"], true)
	if !ok {
		writeError(c, http.StatusBadRequest, msgInvalidContract)
		return
	}
	if err := h.svc.Load(address); err != nil {
		writeChainError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, AddressResponse{Message: msgLoaded, ContractAddress: address.Hex()})
}

// loaded rejects the request when no token is bound.
func (h *TokenHandler) loaded(c *gin.Context) bool {
	if _, ok := h.svc.Address(); !ok {
		writeError(c, http.StatusBadRequest, msgNotLoaded)
		return false
	}
	return true
}

// addresses validates each named parameter in order, reporting the first
// failure with the message for its role.
func (h *TokenHandler) addresses(c *gin.Context, params map[string]string, roles ...[2]string) ([]common.Address, bool) {
	out := make([]common.Address, 0, len(roles))
	for _, role := range roles {
		addr, ok := parseAddress(params[role[0]], false)
		if !ok {
			writeError(c, http.StatusBadRequest, invalidAddressMsg(role[1]))
			return nil, false
		}
		out = append(out, addr)
	}
	return out, true
}

func (h *TokenHandler) amount(c *gin.Context, s string) (*big.Int, bool) {
	v, msg := parseAmount(s)
	if msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return nil, false
	}
	return v, true
}

func (h *TokenHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrContractNotLoaded) {
		writeError(c, http.StatusBadRequest, msgNotLoaded)
		return
	}
	writeChainError(c, http.StatusBadRequest, err)
}

func (h *TokenHandler) Mint(c *gin.Context) {
	params, ok := requireParams(c, "to", "amount")
	if !ok || !h.loaded(c) {
		return
	}
	addrs, ok := h.addresses(c, params, [2]string{"to", "recipient"})
	if !ok {
		return
	}
	amount, ok := h.amount(c, params["amount"])
	if !ok {
		return
	}
	receipt, contract, err := h.svc.Mint(c.Request.Context(), addrs[0], amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, contract.Hex()))
}

func (h *TokenHandler) Transfer(c *gin.Context) {
	params, ok := requireParams(c, "to", "amount")
	if !ok || !h.loaded(c) {
		return
	}
	addrs, ok := h.addresses(c, params, [2]string{"to", "recipient"})
	if !ok {
		return
	}
	amount, ok := h.amount(c, params["amount"])
	if !ok {
		return
	}
	receipt, contract, err := h.svc.Transfer(c.Request.Context(), addrs[0], amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, contract.Hex()))
}

func (h *TokenHandler) BalanceOf(c *gin.Context) {
	params, ok := requireParams(c, "address")
	if !ok || !h.loaded(c) {
		return
	}
	owner, ok := parseAddress(params["address"], true)
	if !ok {
		writeError(c, http.StatusBadRequest, msgInvalidAddress)
		return
	}
	balance, contract, err := h.svc.BalanceOf(c.Request.Context(), owner)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"balance":         balance.String(),
		"contractAddress": contract.Hex(),
	})
}

func (h *TokenHandler) Allowance(c *gin.Context) {
	params, ok := requireParams(c, "owner", "spender")
	if !ok || !h.loaded(c) {
		return
	}
	addrs, ok := h.addresses(c, params, [2]string{"owner", "owner"}, [2]string{"spender", "spender"})
	if !ok {
		return
	}
	allowance, contract, err := h.svc.Allowance(c.Request.Context(), addrs[0], addrs[1])
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"allowance":       allowance.String(),
		"contractAddress": contract.Hex(),
	})
}

func (h *TokenHandler) Approve(c *gin.Context) {
	params, ok := requireParams(c, "spender", "amount")
	if !ok || !h.loaded(c) {
		return
	}
	addrs, ok := h.addresses(c, params, [2]string{"spender", "spender"})
	if !ok {
		return
	}
	amount, ok := h.amount(c, params["amount"])
	if !ok {
		return
	}
	receipt, contract, err := h.svc.Approve(c.Request.Context(), addrs[0], amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, contract.Hex()))
}

func (h *TokenHandler) TransferFrom(c *gin.Context) {
	params, ok := requireParams(c, "from", "to", "amount")
	if !ok || !h.loaded(c) {
		return
	}
	addrs, ok := h.addresses(c, params, [2]string{"from", "from"}, [2]string{"to", "to"})
	if !ok {
		return
	}
	amount, ok := h.amount(c, params["amount"])
	if !ok {
		return
	}
	receipt, contract, err := h.svc.TransferFrom(c.Request.Context(), addrs[0], addrs[1], amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, contract.Hex()))
}

func (h *TokenHandler) Burn(c *gin.Context) {
	params, ok := requireParams(c, "amount")
	if !ok || !h.loaded(c) {
		return
	}
	amount, ok := h.amount(c, params["amount"])
	if !ok {
		return
	}
	receipt, contract, err := h.svc.Burn(c.Request.Context(), amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, contract.Hex()))
}

func (h *TokenHandler) Info(c *gin.Context) {
	if !h.loaded(c) {
		return
	}
	info, contract, err := h.svc.Info(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenInfoResponse{
		Name:                 info.Name,
		Symbol:               info.Symbol,
		Decimals:             info.Decimals,
		TotalSupply:          info.TotalSupply.String(),
		TotalSupplyFormatted: decimal.NewFromBigInt(info.TotalSupply, -int32(info.Decimals)).String(),
		ContractAddress:      contract.Hex(),
	})
}

// eventFilter reads fromBlock, toBlock and two optional address filters.
func (h *TokenHandler) eventFilter(c *gin.Context, first, second string) (zhx.Range, []common.Address, []common.Address, bool) {
	var r zhx.Range
	if s, ok := c.GetQuery("fromBlock"); ok {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Invalid fromBlock")
			return r, nil, nil, false
		}
		r.From = v
	}
	if s, ok := c.GetQuery("toBlock"); ok {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v < r.From {
			writeError(c, http.StatusBadRequest, "Invalid toBlock")
			return r, nil, nil, false
		}
		r.To = &v
	}

	filters := make([][]common.Address, 2)
	for i, name := range []string{first, second} {
		s, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		addr, ok := parseAddress(s, true)
		if !ok {
			writeError(c, http.StatusBadRequest, invalidAddressMsg(name))
			return r, nil, nil, false
		}
		filters[i] = []common.Address{addr}
	}
	return r, filters[0], filters[1], true
}

func (h *TokenHandler) TransferEvents(c *gin.Context) {
	if !h.loaded(c) {
		return
	}
	r, from, to, ok := h.eventFilter(c, "from", "to")
	if !ok {
		return
	}
	evs, contract, err := h.svc.Transfers(c.Request.Context(), r, from, to)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EventsResponse[TransferEventResponse]{
		Events: lo.Map(evs, func(ev zhx.TransferEvent, _ int) TransferEventResponse {
			return TransferEventResponse{
				From:            ev.From.Hex(),
				To:              ev.To.Hex(),
				Value:           ev.Value.String(),
				BlockNumber:     strconv.FormatUint(ev.Raw.BlockNumber, 10),
				TransactionHash: ev.Raw.TxHash.Hex(),
				LogIndex:        ev.Raw.Index,
			}
		}),
		ContractAddress: contract.Hex(),
	})
}

func (h *TokenHandler) ApprovalEvents(c *gin.Context) {
	if !h.loaded(c) {
		return
	}
	r, owner, spender, ok := h.eventFilter(c, "owner", "spender")
	if !ok {
		return
	}
	evs, contract, err := h.svc.Approvals(c.Request.Context(), r, owner, spender)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EventsResponse[ApprovalEventResponse]{
		Events: lo.Map(evs, func(ev zhx.ApprovalEvent, _ int) ApprovalEventResponse {
			return ApprovalEventResponse{
				Owner:           ev.Owner.Hex(),
				Spender:         ev.Spender.Hex(),
				Value:           ev.Value.String(),
				BlockNumber:     strconv.FormatUint(ev.Raw.BlockNumber, 10),
				TransactionHash: ev.Raw.TxHash.Hex(),
				LogIndex:        ev.Raw.Index,
			}
		}),
		ContractAddress: contract.Hex(),
	})
}

func (h *TokenHandler) Sender(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sender": h.svc.Sender().Hex()})
}

func (h *TokenHandler) Address(c *gin.Context) {
	address, ok := h.svc.Address()
	if !ok {
		c.JSON(http.StatusOK, AddressResponse{Message: msgNoContract})
		return
	}
	c.JSON(http.StatusOK, AddressResponse{ContractAddress: address.Hex()})
}
