package chain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/backoff"
	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/base/metrics"
	"github.com/x-xyz/xionmarket/domain"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:    cfg.HttpClient,
		lcdUrl:    strings.TrimRight(cfg.LcdUrl, "/"),
		signerUrl: strings.TrimRight(cfg.SignerUrl, "/"),
		timeout:   cfg.Timeout,
		gasLimit:  cfg.GasLimit,
		gasPrice:  cfg.GasPrice,
		attempts:  cfg.RetryAttempts,
		delay:     cfg.RetryDelay,
		maxDelay:  cfg.RetryMaxDelay,
		met:       metrics.New("chain", metrics.WithoutPodName()),
	}
}

type client struct {
	client    http.Client
	lcdUrl    string
	signerUrl string
	timeout   time.Duration
	gasLimit  uint64
	gasPrice  string
	attempts  int
	delay     time.Duration
	maxDelay  time.Duration
	met       metrics.Service
}

func (c *client) Query(ctx bCtx.Ctx, contract domain.Address, msg domain.WasmMsg) (json.RawMessage, error) {
	defer c.met.BumpTime("query.time", "msg", msg.Tag()).End()

	body, err := domain.EncodeMsg(msg)
	if err != nil {
		ctx.WithField("err", err).Error("domain.EncodeMsg failed")
		return nil, err
	}
	url := fmt.Sprintf("%s/cosmwasm/wasm/v1/contract/%s/smart/%s", c.lcdUrl, contract, base64.URLEncoding.EncodeToString(body))

	var resp smartQueryResponse
	if err := c.read(ctx, url, &resp); err != nil {
		c.met.BumpSum("query.err", 1, "msg", msg.Tag(), "kind", domain.KindName(err))
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"msg":      string(body),
		}).Error("query failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, xerrors.Errorf("query %s: %w", msg.Tag(), ErrEmptyResponse)
	}
	return resp.Data, nil
}

func (c *client) Height(ctx bCtx.Ctx) (uint64, error) {
	var resp latestBlockResponse
	if err := c.read(ctx, c.lcdUrl+"/cosmos/base/tendermint/v1beta1/blocks/latest", &resp); err != nil {
		ctx.WithField("err", err).Error("latest block failed")
		return 0, err
	}
	height, err := strconv.ParseUint(resp.Block.Header.Height, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "height": resp.Block.Header.Height}).Error("strconv.ParseUint failed")
		return 0, err
	}
	return height, nil
}

// read is a GET retried on network errors only.
func (c *client) read(ctx bCtx.Ctx, url string, out interface{}) error {
	return backoff.Retry(ctx, backoff.NewExponential(c.delay, c.maxDelay), c.attempts, domain.IsRetriable, func() error {
		data, err := c.do(ctx, http.MethodGet, url, nil)
		if err != nil {
			if domain.IsRetriable(err) {
				ctx.WithFields(log.Fields{"err": err, "url": url}).Warn("read failed, retrying")
			}
			return err
		}
		if err := json.Unmarshal(data, out); err != nil {
			ctx.WithField("err", err).Error("json.Unmarshal failed")
			return err
		}
		return nil
	})
}

func (c *client) Execute(ctx bCtx.Ctx, contract domain.Address, msg domain.WasmMsg, funds []domain.Coin) (*domain.TxResult, error) {
	defer c.met.BumpTime("execute.time", "msg", msg.Tag()).End()

	body, err := domain.EncodeMsg(msg)
	if err != nil {
		ctx.WithField("err", err).Error("domain.EncodeMsg failed")
		return nil, err
	}
	if funds == nil {
		funds = []domain.Coin{}
	}
	ctx.WithFields(log.Fields{
		"contract": contract,
		"msg":      string(body),
		"funds":    funds,
	}).Info("executing")

	res, err := c.broadcast(ctx, "/execute", executeRequest{
		Contract: contract,
		Msg:      body,
		Funds:    funds,
		GasLimit: c.gasLimit,
		GasPrice: c.gasPrice,
	})
	if err != nil {
		c.met.BumpSum("execute.err", 1, "msg", msg.Tag(), "kind", domain.KindName(err))
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("execute failed")
		return nil, err
	}
	return res.TxResponse.toResult(ctx), nil
}

func (c *client) Sender(ctx bCtx.Ctx) (domain.Address, error) {
	if c.signerUrl == "" {
		return "", ErrSignerNotConfigured
	}
	var resp addressResponse
	if err := c.read(ctx, c.signerUrl+"/address", &resp); err != nil {
		ctx.WithField("err", err).Error("signer address failed")
		return "", err
	}
	return resp.Address, nil
}

func (c *client) Upload(ctx bCtx.Ctx, wasm []byte) (domain.CodeId, *domain.TxResult, error) {
	res, err := c.broadcast(ctx, "/upload", uploadRequest{
		WasmByteCode: wasm,
		GasLimit:     c.gasLimit,
		GasPrice:     c.gasPrice,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "size": len(wasm)}).Error("upload failed")
		return 0, nil, err
	}
	codeId, err := strconv.ParseUint(res.CodeId, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "codeId": res.CodeId}).Error("strconv.ParseUint failed")
		return 0, nil, err
	}
	return domain.CodeId(codeId), res.TxResponse.toResult(ctx), nil
}

func (c *client) Instantiate(ctx bCtx.Ctx, codeId domain.CodeId, label string, admin domain.Address, msg interface{}) (domain.Address, *domain.TxResult, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return "", nil, err
	}
	res, err := c.broadcast(ctx, "/instantiate", instantiateRequest{
		CodeId:   codeId,
		Label:    label,
		Admin:    admin,
		Msg:      body,
		GasLimit: c.gasLimit,
		GasPrice: c.gasPrice,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "codeId": codeId}).Error("instantiate failed")
		return "", nil, err
	}
	if res.ContractAddress.IsEmpty() {
		return "", nil, xerrors.Errorf("instantiate: %w", ErrEmptyResponse)
	}
	return res.ContractAddress, res.TxResponse.toResult(ctx), nil
}

// broadcast posts a signed write. It is sent once: a timed out broadcast may still land.
func (c *client) broadcast(ctx bCtx.Ctx, path string, req interface{}) (*broadcastResponse, error) {
	if c.signerUrl == "" {
		return nil, ErrSignerNotConfigured
	}
	payload, err := json.Marshal(req)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}
	data, err := c.do(ctx, http.MethodPost, c.signerUrl+path, payload)
	if err != nil {
		return nil, err
	}
	res := &broadcastResponse{}
	if err := json.Unmarshal(data, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if res.TxResponse.Code != 0 {
		return nil, domain.ClassifyContractError(res.TxResponse.RawLog)
	}
	if res.TxResponse.TxHash == "" {
		return nil, xerrors.Errorf("%s: %w", path, ErrEmptyResponse)
	}
	return res, nil
}

// do returns the body of a 200 response. Transport failures and gateway
// statuses become network errors; error bodies with a message are contract errors.
func (c *client) do(ctx bCtx.Ctx, method, url string, payload []byte) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewNetworkError(err.Error())
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkError(err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return nil, domain.NewNetworkError(fmt.Sprintf("%s: status %d", url, resp.StatusCode))
	}

	lcdErr := lcdError{}
	if err := json.Unmarshal(body, &lcdErr); err == nil && lcdErr.Message != "" {
		return nil, domain.ClassifyContractError(lcdErr.Message)
	}
	return nil, domain.NewNetworkError(fmt.Sprintf("%s: status %d", url, resp.StatusCode))
}
