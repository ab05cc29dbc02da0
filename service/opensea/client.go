package opensea

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/base/ptr"
	"github.com/bearhustle/goapi/domain"
)

var ErrStatusCodeNotOk = errors.New("http.status != 200")

type GetOrdersOptions struct {
	AssetContract *domain.Address
	Limit         *int
	Cursor        *string
}

type GetOrdersOptionsFunc func(*GetOrdersOptions) error

func ParseGetOrdersOptions(opts ...GetOrdersOptionsFunc) (GetOrdersOptions, error) {
	opt := GetOrdersOptions{}
	for _, f := range opts {
		err := f(&opt)
		if err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithAssetContract(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.AssetContract = &address
		return nil
	}
}

func WithLimit(limit int) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Limit = ptr.Int(limit)
		return nil
	}
}

func WithCursor(c string) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Cursor = ptr.String(c)
		return nil
	}
}

// OrdersResp is one page of the v2 orders endpoint. Order payloads stay
// loosely typed because their shape varies across protocol versions.
type OrdersResp struct {
	Next   string         `json:"next"`
	Cursor string         `json:"cursor"`
	Orders []probe.Object `json:"orders"`
}

// NextCursor resolves the continuation token over its known aliases.
func (r *OrdersResp) NextCursor() string {
	if r.Next != "" {
		return r.Next
	}
	return r.Cursor
}

type Client interface {
	// GetOrders fetches one page of sell orders for the configured chain.
	GetOrders(ctx bCtx.Ctx, chain string, opts ...GetOrdersOptionsFunc) (*OrdersResp, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
}
