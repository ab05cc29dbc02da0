package orderstore

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/domain/listing"
)

var ErrStatusCodeNotOk = errors.New("http.status != 200")

// Client talks to the order store over its public HTTP surface.
type Client interface {
	CreateOrder(ctx bCtx.Ctx, payload *listing.CreateListingPayload) (*listing.CreatedSummary, error)
	// GetOrders returns one page of stored listings, newest first. Rows come
	// back loosely typed so callers can resolve fields over their aliases.
	GetOrders(ctx bCtx.Ctx, page int, limit int) ([]probe.Object, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
}
