package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTxReport(t *testing.T) {
	req := require.New(t)

	res := &TxResult{
		TxHash:  "ABCDEF",
		Height:  1234,
		GasUsed: 180000,
		Events: []Event{
			{Type: "message", Attributes: []Attribute{{Key: "sender", Value: "xion1buyer"}}},
			{Type: "wasm", Attributes: []Attribute{
				{Key: "_contract_address", Value: "xion1market"},
				{Key: "action", Value: "finish"},
			}},
			{Type: "transfer", Attributes: []Attribute{{Key: "amount", Value: "10uxion"}}},
		},
	}

	report := NewTxReport(res)
	req.Equal(TxHash("ABCDEF"), report.TxHash)
	req.Equal(int64(1234), report.Height)
	req.Equal(int64(180000), report.GasUsed)
	req.Len(report.Events, 1)
	req.Equal("finish", report.Events[0].Attributes[1].Value)

	action, ok := report.Attribute("action")
	req.True(ok)
	req.Equal("finish", action)
	_, ok = report.Attribute("amount")
	req.False(ok)
}

func TestNewTxReportWithoutEvents(t *testing.T) {
	req := require.New(t)
	report := NewTxReport(&TxResult{TxHash: "00", Height: 1})
	req.NotNil(report.Events)
	req.Empty(report.Events)
}

func TestAddressShort(t *testing.T) {
	req := require.New(t)
	req.Equal("xion1qwe...lzxcvbnm", Address("xion1qwertyuiopasdfghjklzxcvbnm").Short(8))
	req.Equal("xion1", Address("xion1").Short(8))
	req.True(Address("XION1ABC").Equals("xion1abc"))
}
