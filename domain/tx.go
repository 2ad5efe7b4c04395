package domain

// TxResult is the outcome of a broadcast transaction.
type TxResult struct {
	TxHash    TxHash  `json:"txhash"`
	Height    int64   `json:"height"`
	GasUsed   int64   `json:"gas_used"`
	GasWanted int64   `json:"gas_wanted"`
	Events    []Event `json:"events"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EventTypeWasm is emitted by contract executions
const EventTypeWasm = "wasm"

// TxReport keeps the parts of a TxResult shown to the user.
type TxReport struct {
	TxHash    TxHash      `json:"txHash"`
	Height    int64       `json:"height"`
	GasUsed   int64       `json:"gasUsed"`
	GasWanted int64       `json:"gasWanted"`
	Events    []WasmEvent `json:"events"`
}

type WasmEvent struct {
	Attributes []Attribute `json:"attributes"`
}

// NewTxReport keeps only wasm events. A result without events yields an empty list.
func NewTxReport(res *TxResult) *TxReport {
	report := &TxReport{
		TxHash:    res.TxHash,
		Height:    res.Height,
		GasUsed:   res.GasUsed,
		GasWanted: res.GasWanted,
		Events:    []WasmEvent{},
	}
	for _, e := range res.Events {
		if e.Type != EventTypeWasm {
			continue
		}
		attrs := make([]Attribute, len(e.Attributes))
		copy(attrs, e.Attributes)
		report.Events = append(report.Events, WasmEvent{Attributes: attrs})
	}
	return report
}

// Attribute returns the first wasm attribute with the given key.
func (r *TxReport) Attribute(key string) (string, bool) {
	for _, e := range r.Events {
		for _, a := range e.Attributes {
			if a.Key == key {
				return a.Value, true
			}
		}
	}
	return "", false
}
