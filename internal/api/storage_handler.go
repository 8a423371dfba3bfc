package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fystack/contract-gateway/internal/service"
)

type StorageHandler struct {
	svc StorageService
}

func NewStorageHandler(svc StorageService) *StorageHandler {
	return &StorageHandler{svc: svc}
}

func (h *StorageHandler) Register(r gin.IRouter) {
	g := r.Group("/api/storage")
	g.POST("/deploy", h.Deploy)
	g.POST("/load", h.Load)
	g.GET("/value/get", h.GetValue)
	g.POST("/value/set", h.SetValue)
	g.GET("/address", h.Address)
}

func (h *StorageHandler) Deploy(c *gin.Context) {
	address, err := h.svc.Deploy(c.Request.Context())
	if err != nil {
		writeChainError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, AddressResponse{ContractAddress: address.Hex()})
}

func (h *StorageHandler) Load(c *gin.Context) {
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
		writeChainError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, AddressResponse{Message: msgLoaded, ContractAddress: address.Hex()})
}

func (h *StorageHandler) GetValue(c *gin.Context) {
	value, address, err := h.svc.Value(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"value":           value.String(),
		"contractAddress": address.Hex(),
	})
}

func (h *StorageHandler) SetValue(c *gin.Context) {
	params, ok := requireParams(c, "value")
	if !ok {
		return
	}
	value, ok := parseValue(params["value"])
	if !ok {
		writeError(c, http.StatusBadRequest, msgInvalidValue)
		return
	}
	receipt, address, err := h.svc.SetValue(c.Request.Context(), value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newReceiptResponse(receipt, address.Hex()))
}

func (h *StorageHandler) Address(c *gin.Context) {
	address, ok := h.svc.Address()
	if !ok {
		c.JSON(http.StatusOK, AddressResponse{Message: msgNoContract})
		return
	}
	c.JSON(http.StatusOK, AddressResponse{ContractAddress: address.Hex()})
}

// fail reports storage errors as server errors, including the unloaded state.
func (h *StorageHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrContractNotLoaded) {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	writeChainError(c, http.StatusInternalServerError, err)
}
