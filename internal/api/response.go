package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/pkg/common/logger"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type AddressResponse struct {
	ContractAddress string `json:"contractAddress,omitempty"`
	Message         string `json:"message,omitempty"`
}

type ReceiptResponse struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber"`
	GasUsed         string `json:"gasUsed"`
	Status          string `json:"status"`
	ContractAddress string `json:"contractAddress"`
}

func newReceiptResponse(r *chain.Receipt, contract string) ReceiptResponse {
	return ReceiptResponse{
		TransactionHash: r.TxHash.Hex(),
		BlockNumber:     r.BlockNumber.String(),
		GasUsed:         formatUint(r.GasUsed),
		Status:          r.StatusHex(),
		ContractAddress: contract,
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}

// writeChainError reports a failed chain call with the message of the first
// error below the gateway's own annotations.
func writeChainError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	logger.Warn("Chain call failed",
		"path", c.FullPath(),
		"request_id", GetRequestID(c),
		"error", err,
	)
	writeError(c, status, rootCause(err).Error())
}

// annotationType is the type fmt.Errorf returns for a single %w.
var annotationType = reflect.TypeOf(fmt.Errorf("%w", errors.New("")))

// rootCause strips "operation: %w" layers. Errors from the node client, such
// as *url.Error or rpc errors, are kept whole.
func rootCause(err error) error {
	for reflect.TypeOf(err) == annotationType {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// requireParams rejects requests missing any of the named parameters.
func requireParams(c *gin.Context, names ...string) (map[string]string, bool) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		v, ok := param(c, name)
		if !ok {
			writeError(c, http.StatusBadRequest, "Required parameter '"+name+"' is not present.")
			return nil, false
		}
		out[name] = v
	}
	return out, true
}

// param reads a value from the query string, then from a form body.
func param(c *gin.Context, name string) (string, bool) {
	if v, ok := c.GetQuery(name); ok {
		return v, true
	}
	return c.GetPostForm(name)
}
