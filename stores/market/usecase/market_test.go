package usecase

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/market"
	orderstoreMocks "github.com/bearhustle/goapi/service/orderstore/mocks"
	"github.com/bearhustle/goapi/service/seaport"
	seaportMocks "github.com/bearhustle/goapi/service/seaport/mocks"
	walletMocks "github.com/bearhustle/goapi/service/wallet/mocks"
)

const buyerAddress = domain.Address("0x00000000000000000000000000000000000000ee")

type marketTestSuite struct {
	suite.Suite

	ctx        bCtx.Ctx
	orderStore *orderstoreMocks.Client
	seaport    *seaportMocks.Client
	wallet     *walletMocks.Client
	uc         *marketUseCase
}

func (s *marketTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.orderStore = &orderstoreMocks.Client{}
	s.seaport = &seaportMocks.Client{}
	s.wallet = &walletMocks.Client{}
	s.uc = NewMarketUseCase(&MarketUseCaseCfg{
		OrderStore: s.orderStore,
		Seaport:    s.seaport,
		Wallet:     s.wallet,
		ChainId:    domain.ChainId(11155111),
		PageLimit:  12,
	}).(*marketUseCase)
}

func TestMarketTestSuite(t *testing.T) {
	suite.Run(t, new(marketTestSuite))
}

func (s *marketTestSuite) connect() {
	s.wallet.On("RequestAccounts", mock.Anything).
		Return([]domain.Address{buyerAddress}, nil).Once()
	s.wallet.On("SwitchChain", mock.Anything, domain.ChainId(11155111)).
		Return(nil).Once()
	account, err := s.uc.Connect(s.ctx)
	s.Require().NoError(err)
	s.Equal(buyerAddress, account)
	s.True(s.uc.Connected())
}

func (s *marketTestSuite) TestConnectDisconnectLifecycle() {
	s.False(s.uc.Connected())
	s.connect()

	s.uc.Disconnect(s.ctx)
	s.False(s.uc.Connected())
}

func (s *marketTestSuite) TestBuyWithoutSessionMakesNoNetworkCalls() {
	item := &market.Item{TokenId: "42", Order: json.RawMessage(`{"parameters": {}}`)}
	_, err := s.uc.Buy(s.ctx, item)
	s.Require().ErrorIs(err, domain.ErrWalletNotConnected)

	s.seaport.AssertNotCalled(s.T(), "FulfillOrder", mock.Anything, mock.Anything, mock.Anything)
	s.orderStore.AssertNotCalled(s.T(), "GetOrders", mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketTestSuite) TestBuyExecutesActionWaitsAndRefreshes() {
	s.connect()

	tx := types.NewTx(&types.LegacyTx{Nonce: 7})
	descriptor := json.RawMessage(`{"parameters": {"consideration": []}}`)

	s.seaport.On("FulfillOrder", mock.Anything, descriptor, buyerAddress).
		Return(&seaport.Fulfillment{
			Actions: []seaport.Action{{
				Description: "fulfill order",
				Execute: func(ctx bCtx.Ctx) (*types.Transaction, error) {
					return tx, nil
				},
			}},
		}, nil).Once()
	s.seaport.On("WaitMined", mock.Anything, tx).Return(nil).Once()
	// Refresh of the last loaded page follows the confirmed purchase.
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).
		Return([]probe.Object{}, nil).Once()

	txHash, err := s.uc.Buy(s.ctx, &market.Item{TokenId: "42", Order: descriptor})
	s.Require().NoError(err)
	s.Equal(domain.TxHash(tx.Hash().Hex()), txHash)
	s.False(s.uc.buying)

	s.seaport.AssertExpectations(s.T())
	s.orderStore.AssertExpectations(s.T())
}

func (s *marketTestSuite) TestBuyUsesDirectTransactionHandle() {
	s.connect()

	tx := types.NewTx(&types.LegacyTx{Nonce: 8})
	descriptor := json.RawMessage(`{"parameters": {}}`)

	s.seaport.On("FulfillOrder", mock.Anything, descriptor, buyerAddress).
		Return(&seaport.Fulfillment{Tx: tx}, nil).Once()
	s.seaport.On("WaitMined", mock.Anything, tx).Return(nil).Once()
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).
		Return([]probe.Object{}, nil).Once()

	txHash, err := s.uc.Buy(s.ctx, &market.Item{TokenId: "43", Order: descriptor})
	s.Require().NoError(err)
	s.Equal(domain.TxHash(tx.Hash().Hex()), txHash)
}

func (s *marketTestSuite) TestBuyWithoutDescriptorFails() {
	s.connect()

	_, err := s.uc.Buy(s.ctx, &market.Item{TokenId: "42"})
	s.Require().ErrorIs(err, domain.ErrNoOrderDescriptor)
	s.False(s.uc.buying)
}

func (s *marketTestSuite) TestBuyResetsInFlightGuardOnFailure() {
	s.connect()

	descriptor := json.RawMessage(`{"parameters": {}}`)
	s.seaport.On("FulfillOrder", mock.Anything, descriptor, buyerAddress).
		Return(nil, domain.ErrFulfillment).Once()

	_, err := s.uc.Buy(s.ctx, &market.Item{TokenId: "42", Order: descriptor})
	s.Require().ErrorIs(err, domain.ErrFulfillment)
	s.False(s.uc.buying)

	// A later attempt is not blocked by the failed one.
	s.seaport.On("FulfillOrder", mock.Anything, descriptor, buyerAddress).
		Return(nil, domain.ErrFulfillment).Once()
	_, err = s.uc.Buy(s.ctx, &market.Item{TokenId: "42", Order: descriptor})
	s.Require().ErrorIs(err, domain.ErrFulfillment)
}

func (s *marketTestSuite) decodeRow(raw string) probe.Object {
	obj, err := probe.Decode([]byte(raw))
	s.Require().NoError(err)
	return obj
}

func (s *marketTestSuite) TestLoadListingsRendersRows() {
	rows := []probe.Object{
		s.decodeRow(`{
			"tokenId": "42",
			"price": "1.5",
			"image": "https://img/42.png",
			"seller": "0xseller",
			"orderHash": "0xhash",
			"onChain": true,
			"seaportOrder": {"parameters": {"consideration": []}}
		}`),
		s.decodeRow(`{"token_id": 7, "metadata": {"image": "ipfs://7"}}`),
		s.decodeRow(`{"price": "1"}`),
	}
	s.orderStore.On("GetOrders", mock.Anything, 2, 12).Return(rows, nil).Once()

	items, err := s.uc.LoadListings(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	s.Equal("42", items[0].TokenId)
	s.Equal("1.5", items[0].Price)
	s.Equal("https://img/42.png", items[0].Image)
	s.Equal(domain.Address("0xseller"), items[0].Seller)
	s.Equal(domain.OrderHash("0xhash"), items[0].OrderHash)
	s.True(items[0].OnChain)
	s.JSONEq(`{"parameters": {"consideration": []}}`, string(items[0].Order))

	// token id resolved over an alias, price missing entirely
	s.Equal("7", items[1].TokenId)
	s.Equal(market.NotListed, items[1].Price)
	s.Equal("ipfs://7", items[1].Image)
	s.False(items[1].OnChain)
}

func (s *marketTestSuite) TestLoadListingsStoredPriceIsVerbatim() {
	// Stored prices are display amounts already; no unit conversion applies.
	rows := []probe.Object{
		s.decodeRow(`{"tokenId": "42", "price": "1.5"}`),
		s.decodeRow(`{"tokenId": "43", "price": 0}`),
		s.decodeRow(`{"tokenId": "44", "list_price": "12"}`),
	}
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).Return(rows, nil).Once()

	items, err := s.uc.LoadListings(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("1.5", items[0].Price)
	s.Equal("0", items[1].Price)
	s.Equal("12", items[2].Price)
}

func (s *marketTestSuite) TestLoadListingsPriceFallsBackToDescriptor() {
	rows := []probe.Object{
		s.decodeRow(`{
			"tokenId": "9",
			"seaportOrder": {"parameters": {"consideration": [{"endAmount": "250000000000000000"}]}}
		}`),
	}
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).Return(rows, nil).Once()

	items, err := s.uc.LoadListings(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("0.25", items[0].Price)
}

func (s *marketTestSuite) TestLoadListingsImagePrecedence() {
	rows := []probe.Object{
		s.decodeRow(`{"tokenId": "1", "image": "direct.png", "metadata": {"image": "meta.png"}, "image_url": "url.png"}`),
		s.decodeRow(`{"tokenId": "2", "metadata": {"image": "meta.png"}, "image_url": "url.png"}`),
		s.decodeRow(`{"tokenId": "3", "image_url": "url.png"}`),
	}
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).Return(rows, nil).Once()

	items, err := s.uc.LoadListings(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("direct.png", items[0].Image)
	s.Equal("meta.png", items[1].Image)
	s.Equal("url.png", items[2].Image)
}

func (s *marketTestSuite) TestLoadListingsTextDescriptorPassthrough() {
	rows := []probe.Object{
		s.decodeRow(`{"tokenId": "3", "seaportOrder": "{\"parameters\": {\"offer\": []}}"}`),
		s.decodeRow(`{"tokenId": "4", "seaportOrder": "not json at all"}`),
	}
	s.orderStore.On("GetOrders", mock.Anything, 1, 12).Return(rows, nil).Once()

	items, err := s.uc.LoadListings(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.JSONEq(`{"parameters": {"offer": []}}`, string(items[0].Order))
	s.Nil(items[1].Order)
}

func (s *marketTestSuite) TestParseOrderPrice() {
	price := ParseOrderPrice(json.RawMessage(`{"parameters": {"consideration": [
		{"endAmount": "1000000000000000000"},
		{"endAmount": "50000000000000000"}
	]}}`))
	s.Require().NotNil(price)
	s.Equal("1", price.String())

	// startAmount and amount aliases
	price = ParseOrderPrice(json.RawMessage(`{"consideration": [{"startAmount": "500000000000000000"}]}`))
	s.Require().NotNil(price)
	s.Equal("0.5", price.String())

	price = ParseOrderPrice(json.RawMessage(`{"consideration": [{"amount": 2000000000000000000}]}`))
	s.Require().NotNil(price)
	s.Equal("2", price.String())

	s.Nil(ParseOrderPrice(json.RawMessage(`not json`)))
	s.Nil(ParseOrderPrice(json.RawMessage(`{"parameters": {}}`)))
	s.Nil(ParseOrderPrice(json.RawMessage(`{"parameters": {"consideration": []}}`)))
	s.Nil(ParseOrderPrice(json.RawMessage(`{"parameters": {"consideration": [{"endAmount": "abc"}]}}`)))
}
