package chain

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
)

var (
	ErrSignerNotConfigured = errors.New("signer url not configured")
	ErrEmptyResponse       = errors.New("empty response")
)

// Client reads through the LCD REST api and writes through the signer service.
type Client interface {
	domain.Gateway
	domain.Deployer
}

type ClientCfg struct {
	HttpClient http.Client
	// LcdUrl serves smart queries and blocks
	LcdUrl string
	// SignerUrl holds the key and broadcasts transactions
	SignerUrl string
	Timeout   time.Duration

	GasLimit uint64
	GasPrice string

	// RetryAttempts bounds the retries of a failed read
	RetryAttempts int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

// lcdError is the grpc-gateway error body.
type lcdError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type smartQueryResponse struct {
	Data json.RawMessage `json:"data"`
}

type latestBlockResponse struct {
	Block struct {
		Header struct {
			Height string `json:"height"`
		} `json:"header"`
	} `json:"block"`
}

type executeRequest struct {
	Contract domain.Address  `json:"contract"`
	Msg      json.RawMessage `json:"msg"`
	Funds    []domain.Coin   `json:"funds"`
	GasLimit uint64          `json:"gas_limit,omitempty"`
	GasPrice string          `json:"gas_price,omitempty"`
}

type uploadRequest struct {
	WasmByteCode []byte `json:"wasm_byte_code"`
	GasLimit     uint64 `json:"gas_limit,omitempty"`
	GasPrice     string `json:"gas_price,omitempty"`
}

type instantiateRequest struct {
	CodeId   domain.CodeId   `json:"code_id,string"`
	Label    string          `json:"label"`
	Admin    domain.Address  `json:"admin,omitempty"`
	Msg      json.RawMessage `json:"msg"`
	GasLimit uint64          `json:"gas_limit,omitempty"`
	GasPrice string          `json:"gas_price,omitempty"`
}

type addressResponse struct {
	Address domain.Address `json:"address"`
}

type broadcastResponse struct {
	TxResponse      txResponse     `json:"tx_response"`
	CodeId          string         `json:"code_id,omitempty"`
	ContractAddress domain.Address `json:"contract_address,omitempty"`
}

// txResponse follows cosmos.base.abci.v1beta1.TxResponse, numbers as strings.
type txResponse struct {
	TxHash    domain.TxHash  `json:"txhash"`
	Height    string         `json:"height"`
	Code      uint32         `json:"code"`
	RawLog    string         `json:"raw_log"`
	GasWanted string         `json:"gas_wanted"`
	GasUsed   string         `json:"gas_used"`
	Events    []domain.Event `json:"events"`
}

func (r *txResponse) toResult(ctx bCtx.Ctx) *domain.TxResult {
	return &domain.TxResult{
		TxHash:    r.TxHash,
		Height:    parseInt(ctx, "height", r.Height),
		GasUsed:   parseInt(ctx, "gas_used", r.GasUsed),
		GasWanted: parseInt(ctx, "gas_wanted", r.GasWanted),
		Events:    r.Events,
	}
}

// parseInt reads a numeric tx field; an empty or malformed value is reported as 0.
func parseInt(ctx bCtx.Ctx, field, s string) int64 {
	if s == "" {
		return 0
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "field": field, "value": s}).Warn("strconv.ParseInt failed")
		return 0
	}
	return i
}
