package ctx

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "listingID", "listing-1")
	ts.Equal("listing-1", ctx.Value("listingID"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"contract": "xion1abc",
		"step":     "query",
	})
	ts.Equal("xion1abc", ctx.Value("contract"))
	ts.Equal("query", ctx.Value("step"))
}

func (ts *testsuite) TestWithCancel() {
	ctx, cancel := WithCancel(Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.Equal(context.Canceled, Sleep(ctx, 100*time.Millisecond))
}

func (ts *testsuite) TestTimeout() {
	ctx, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	ts.Equal(context.DeadlineExceeded, Sleep(ctx, 100*time.Millisecond))
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}

func (ts *testsuite) TestSleep() {
	start := time.Now()
	ts.NoError(Sleep(Background(), 20*time.Millisecond))
	ts.GreaterOrEqual(time.Since(start), 20*time.Millisecond)

	ts.NoError(Sleep(Background(), 0))
}

func (ts *testsuite) TestWithSignal() {
	ctx, stop := WithSignal(Background(), syscall.SIGUSR1)
	defer stop()
	ts.NoError(ctx.Err())
	stop()
	ts.Error(ctx.Err())
}
