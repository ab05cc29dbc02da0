package opensea

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
)

const apiV2 = "https://api.opensea.io/api/v2"

type impl struct {
	client  http.Client
	timeout time.Duration
	apikey  string
}

func New(cfg *ClientCfg) Client {
	return &impl{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
	}
}

func (im *impl) GetOrders(ctx bCtx.Ctx, chain string, optFns ...GetOrdersOptionsFunc) (*OrdersResp, error) {
	opts, err := ParseGetOrdersOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("opensea.ParseGetOrdersOptions failed")
		return nil, err
	}

	qs := url.Values{}
	if opts.AssetContract != nil {
		qs.Set("asset_contract_address", opts.AssetContract.ToLowerStr())
	}
	if opts.Limit != nil {
		qs.Set("limit", fmt.Sprintf("%d", *opts.Limit))
	}
	if opts.Cursor != nil && *opts.Cursor != "" {
		qs.Set("cursor", *opts.Cursor)
	}

	reqUrl := fmt.Sprintf("%s/orders/%s/seaport/listings", apiV2, chain)
	if len(qs) > 0 {
		reqUrl += "?" + qs.Encode()
	}

	body, err := im.get(ctx, reqUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("opensea.get failed")
		return nil, domain.ErrUpstream
	}

	resp := &OrdersResp{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(resp); err != nil {
		ctx.WithField("err", err).Error("json.Decode failed")
		return nil, domain.ErrUpstream
	}
	return resp, nil
}

func (im *impl) get(ctx bCtx.Ctx, reqUrl string) ([]byte, error) {
	timeoutCtx, cancel := bCtx.WithTimeout(ctx, im.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if im.apikey != "" {
		req.Header.Set("X-API-KEY", im.apikey)
	}

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}
	return io.ReadAll(resp.Body)
}
