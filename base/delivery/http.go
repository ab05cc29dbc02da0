package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bearhustle/goapi/domain"
)

// genericError is what callers see for any failure that is not their fault.
// Storage and other internal detail stays in the server logs.
const genericError = "Server error"

type SuccessResponse struct {
	Success bool        `json:"success"`
	Order   interface{} `json:"order,omitempty"`
	Orders  interface{} `json:"orders,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MakeOrderResp wraps a single created order summary.
func MakeOrderResp(c echo.Context, status int, order interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Order: order})
}

// MakeOrdersResp wraps a page of orders.
func MakeOrdersResp(c echo.Context, status int, orders interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Orders: orders})
}

// MakeErrorResp maps domain errors onto http statuses. Client-fixable
// validation failures keep their message; everything else collapses to a
// generic message.
func MakeErrorResp(c echo.Context, status int, err error) error {
	msg := genericError
	switch {
	case errors.Is(err, domain.ErrMissingParameters):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrBadParamInput):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	}
	return c.JSON(status, ErrorResponse{Success: false, Error: msg})
}
