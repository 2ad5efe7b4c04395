package domain

import (
	"encoding/json"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
)

// WasmMsg is a contract message. On the wire it becomes {"<Tag>": <body>},
// where body is the json encoding of the message value itself.
type WasmMsg interface {
	Tag() string
}

// EncodeMsg builds the single-key envelope for msg.
func EncodeMsg(msg WasmMsg) ([]byte, error) {
	return json.Marshal(map[string]WasmMsg{msg.Tag(): msg})
}

// Gateway reaches the ledger. Query and Height are reads and may be retried on
// network errors; Execute submits a signed transaction and is never retried.
type Gateway interface {
	Query(ctx bCtx.Ctx, contract Address, msg WasmMsg) (json.RawMessage, error)
	Execute(ctx bCtx.Ctx, contract Address, msg WasmMsg, funds []Coin) (*TxResult, error)
	Height(ctx bCtx.Ctx) (uint64, error)
}

// Deployer uploads and instantiates contract code through the signer.
type Deployer interface {
	Sender(ctx bCtx.Ctx) (Address, error)
	Upload(ctx bCtx.Ctx, wasm []byte) (CodeId, *TxResult, error)
	Instantiate(ctx bCtx.Ctx, codeId CodeId, label string, admin Address, msg interface{}) (Address, *TxResult, error)
}
