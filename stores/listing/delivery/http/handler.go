package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/delivery"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/listing"
)

type handler struct {
	listing listing.UseCase
}

// New will initialize the order store endpoints
func New(e *echo.Echo, us listing.UseCase) {
	h := &handler{listing: us}

	e.POST("/order", h.createOrder)
	e.GET("/orders", h.getOrders)
	e.GET("/api/status", h.status)
}

func (h *handler) createOrder(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	payload := &listing.CreateListingPayload{}
	if err := c.Bind(payload); err != nil {
		context.WithField("err", err).Warn("bind create payload failed")
		return delivery.MakeErrorResp(c, http.StatusBadRequest, domain.ErrMissingParameters)
	}

	summary, err := h.listing.Create(context, payload)
	if err != nil {
		context.WithFields(log.Fields{
			"err":     err,
			"tokenId": payload.TokenId.Val,
		}).Error("listing.Create failed")
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeOrderResp(c, http.StatusOK, summary)
}

func (h *handler) getOrders(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 12)

	var seller *domain.Address
	if addr := c.QueryParam("address"); addr != "" {
		a := domain.Address(addr)
		seller = &a
	}

	orders, err := h.listing.Search(context, page, limit, seller)
	if err != nil {
		context.WithField("err", err).Error("listing.Search failed")
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeOrdersResp(c, http.StatusOK, orders)
}

// status is the liveness probe
func (h *handler) status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
