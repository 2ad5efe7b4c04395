package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/service/cache/provider"
	"github.com/x-xyz/xionmarket/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Admin string `json:"admin"`
	Denom string `json:"denom"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "config",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "xion1market"
		v = value{"xion1admin", "uxion"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, "config:"+k, sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, "config:"+k)
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSetAndDel() {
	var (
		k = "xion1market"
		v = value{"xion1admin", "uxion"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, "config:"+k)
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "xion1market"
		v     = value{"xion1admin", "uxion"}
		c     = &value{}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errGetter := errors.New("getter failed")
	c := &value{}

	err := ts.im.GetByFunc(mockCtx, "xion1market", c, func() (interface{}, error) {
		return nil, errGetter
	})
	ts.Equal(errGetter, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "xion1market", c))
}

func (ts *testsuite) TestGetByFuncTypeMismatch() {
	c := &value{}

	err := ts.im.GetByFunc(mockCtx, "xion1market", c, func() (interface{}, error) {
		return value{"xion1admin", "uxion"}, nil
	})
	ts.True(errors.Is(err, ErrTypeMismatch))
	ts.Equal(value{}, *c)
	ts.True(errors.Is(ts.im.Get(mockCtx, "xion1market", c), provider.ErrNotFound))
}
