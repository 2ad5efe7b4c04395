package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"contract:xion1abc", "step:query"}, parseTag([]string{"contract", "xion1abc", "step", "query"}))
	req.Panics(func() { parseTag([]string{"odd"}) })
}

func TestLogClientFallback(t *testing.T) {
	req := require.New(t)
	met := New("chain", WithoutPodName())
	req.NotPanics(func() {
		met.BumpSum("query.err", 1, "kind", "NotFound")
		met.BumpTime("query.time").End()
	})
	_, ok := nextClient().(*LogClient)
	req.True(ok, "no datadog host configured")
}
