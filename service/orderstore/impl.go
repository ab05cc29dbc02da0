package orderstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/listing"
)

type impl struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
}

func New(cfg *ClientCfg) Client {
	return &impl{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
	}
}

type createOrderResp struct {
	Success bool                    `json:"success"`
	Order   *listing.CreatedSummary `json:"order"`
	Error   string                  `json:"error"`
}

type getOrdersResp struct {
	Success bool           `json:"success"`
	Orders  []probe.Object `json:"orders"`
	Error   string         `json:"error"`
}

func (im *impl) CreateOrder(ctx bCtx.Ctx, payload *listing.CreateListingPayload) (*listing.CreatedSummary, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	respBody, status, err := im.do(ctx, http.MethodPost, im.baseUrl+"/order", body)
	if err != nil {
		ctx.WithField("err", err).Error("orderstore.do failed")
		return nil, err
	}

	resp := &createOrderResp{}
	if err := json.Unmarshal(respBody, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if status != http.StatusOK || !resp.Success {
		ctx.WithFields(log.Fields{
			"status": status,
			"error":  resp.Error,
		}).Error("create order rejected")
		return nil, fmt.Errorf("create order: %s: %w", resp.Error, ErrStatusCodeNotOk)
	}
	return resp.Order, nil
}

func (im *impl) GetOrders(ctx bCtx.Ctx, page int, limit int) ([]probe.Object, error) {
	reqUrl := fmt.Sprintf("%s/orders?page=%d&limit=%d", im.baseUrl, page, limit)
	respBody, status, err := im.do(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		ctx.WithField("err", err).Error("orderstore.do failed")
		return nil, err
	}
	if status != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}

	resp := &getOrdersResp{}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(resp); err != nil {
		ctx.WithField("err", err).Error("json.Decode failed")
		return nil, err
	}
	if !resp.Success {
		return nil, domain.ErrUpstream
	}
	return resp.Orders, nil
}

func (im *impl) do(ctx bCtx.Ctx, method, reqUrl string, body []byte) ([]byte, int, error) {
	timeoutCtx, cancel := bCtx.WithTimeout(ctx, im.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(timeoutCtx, method, reqUrl, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := im.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return respBody, resp.StatusCode, nil
}
