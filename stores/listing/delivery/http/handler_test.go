package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/listing"
	"github.com/bearhustle/goapi/domain/listing/mocks"
)

func newEcho(uc listing.UseCase) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)
	return e
}

func TestCreateOrder(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Create", mock.Anything, mock.Anything).Return(&listing.CreatedSummary{
		Id:      "abc123",
		TokenId: "42",
		Price:   "1.5",
		Seller:  "0xABC",
	}, nil)
	e := newEcho(uc)

	body := `{"tokenId":"42","price":"1.5","sellerAddress":"0xABC","seaportOrder":{"parameters":{}}}`
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Order   struct {
			Id      string `json:"id"`
			TokenId string `json:"tokenId"`
		} `json:"order"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.True(resp.Success)
	req.Equal("abc123", resp.Order.Id)
	req.Equal("42", resp.Order.TokenId)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrMissingParameters)
	e := newEcho(uc)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(`{"price":"1"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusBadRequest, rec.Code)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.False(resp.Success)
	req.Equal("Missing parameters", resp.Error)
}

func TestCreateOrderStorageFailureHidesDetail(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrStorage)
	e := newEcho(uc)

	body := `{"tokenId":"1","price":"1","sellerAddress":"0xabc","seaportOrder":{}}`
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusInternalServerError, rec.Code)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.False(resp.Success)
	req.Equal("Server error", resp.Error)
}

func TestGetOrders(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	uc.On("Search", mock.Anything, 2, 5, mock.Anything).
		Run(func(args mock.Arguments) {
			seller := args.Get(3).(*domain.Address)
			require.NotNil(t, seller)
			require.Equal(t, domain.Address("0xAbC"), *seller)
		}).
		Return([]listing.Listing{{Id: "1", TokenId: "42"}}, nil)
	e := newEcho(uc)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/orders?page=2&limit=5&address=0xAbC", nil)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Orders  []struct {
			Id string `json:"id"`
		} `json:"orders"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.True(resp.Success)
	req.Len(resp.Orders, 1)
	req.Equal("1", resp.Orders[0].Id)
}

func TestGetOrdersDefaults(t *testing.T) {
	req := require.New(t)
	uc := &mocks.UseCase{}
	var gotSeller *domain.Address
	sellerSeen := false
	uc.On("Search", mock.Anything, 1, 12, mock.Anything).
		Run(func(args mock.Arguments) {
			gotSeller, _ = args.Get(3).(*domain.Address)
			sellerSeen = true
		}).
		Return([]listing.Listing{}, nil)
	e := newEcho(uc)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusOK, rec.Code)
	req.True(sellerSeen)
	req.Nil(gotSeller)
}

func TestStatus(t *testing.T) {
	req := require.New(t)
	e := newEcho(&mocks.UseCase{})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Ok   bool   `json:"ok"`
		Time string `json:"time"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.True(resp.Ok)
	req.NotEmpty(resp.Time)
}
