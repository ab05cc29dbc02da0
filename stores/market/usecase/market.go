package usecase

import (
	"encoding/json"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/market"
	"github.com/bearhustle/goapi/service/orderstore"
	"github.com/bearhustle/goapi/service/seaport"
	"github.com/bearhustle/goapi/service/wallet"
)

const defaultPageLimit = 12

// weiDecimals converts raw chain amounts to the native display unit.
const weiDecimals = 18

type MarketUseCaseCfg struct {
	OrderStore orderstore.Client
	Seaport    seaport.Client
	Wallet     wallet.Client

	ChainId   domain.ChainId
	PageLimit int
}

type marketUseCase struct {
	orderStore orderstore.Client
	seaport    seaport.Client
	wallet     wallet.Client

	chainId   domain.ChainId
	pageLimit int

	mu        sync.Mutex
	connected bool
	account   domain.Address
	buying    bool
	lastPage  int
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) market.UseCase {
	uc := &marketUseCase{
		orderStore: cfg.OrderStore,
		seaport:    cfg.Seaport,
		wallet:     cfg.Wallet,
		chainId:    cfg.ChainId,
		pageLimit:  cfg.PageLimit,
		lastPage:   1,
	}
	if uc.pageLimit <= 0 {
		uc.pageLimit = defaultPageLimit
	}
	return uc
}

func (uc *marketUseCase) Connect(c bCtx.Ctx) (domain.Address, error) {
	accounts, err := uc.wallet.RequestAccounts(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.RequestAccounts failed")
		return domain.EmptyAddress, err
	}
	if len(accounts) == 0 {
		return domain.EmptyAddress, domain.ErrWalletNotConnected
	}

	// Chain mismatches are reported by the wallet, not fatal here.
	if err := uc.wallet.SwitchChain(c, uc.chainId); err != nil {
		c.WithField("err", err).Warn("wallet.SwitchChain failed")
	}

	uc.mu.Lock()
	uc.connected = true
	uc.account = accounts[0]
	uc.mu.Unlock()

	c.WithField("account", accounts[0]).Info("wallet connected")
	return accounts[0], nil
}

func (uc *marketUseCase) Disconnect(c bCtx.Ctx) {
	uc.mu.Lock()
	uc.connected = false
	uc.account = domain.EmptyAddress
	uc.mu.Unlock()
	c.Info("wallet disconnected")
}

func (uc *marketUseCase) Connected() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.connected
}

func (uc *marketUseCase) LoadListings(c bCtx.Ctx, page int) ([]market.Item, error) {
	if page < 1 {
		page = 1
	}
	rows, err := uc.orderStore.GetOrders(c, page, uc.pageLimit)
	if err != nil {
		c.WithField("err", err).Error("orderstore.GetOrders failed")
		return nil, err
	}

	uc.mu.Lock()
	uc.lastPage = page
	uc.mu.Unlock()

	items := make([]market.Item, 0, len(rows))
	for _, row := range rows {
		item, ok := renderItem(row)
		if !ok {
			c.Debug("listing without token id, skipping")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (uc *marketUseCase) Buy(c bCtx.Ctx, item *market.Item) (domain.TxHash, error) {
	if !uc.Connected() {
		return "", domain.ErrWalletNotConnected
	}

	uc.mu.Lock()
	if uc.buying {
		uc.mu.Unlock()
		return "", domain.ErrPurchaseInFlight
	}
	uc.buying = true
	account := uc.account
	uc.mu.Unlock()
	defer func() {
		uc.mu.Lock()
		uc.buying = false
		uc.mu.Unlock()
	}()

	if len(item.Order) == 0 {
		return "", domain.ErrNoOrderDescriptor
	}

	fulfillment, err := uc.seaport.FulfillOrder(c, item.Order, account)
	if err != nil {
		c.WithField("err", err).Error("seaport.FulfillOrder failed")
		return "", err
	}

	tx := fulfillment.Tx
	for _, action := range fulfillment.Actions {
		tx, err = uc.executeAction(c, action)
		if err != nil {
			return "", err
		}
	}
	if tx == nil {
		return "", domain.ErrFulfillment
	}

	if err := uc.seaport.WaitMined(c, tx); err != nil {
		return "", err
	}

	txHash := domain.TxHash(tx.Hash().Hex())
	c.WithFields(log.Fields{
		"tokenId": item.TokenId,
		"tx":      txHash,
	}).Info("purchase confirmed")

	// Best effort refresh so the next render reflects the sale.
	uc.mu.Lock()
	lastPage := uc.lastPage
	uc.mu.Unlock()
	if _, err := uc.LoadListings(c, lastPage); err != nil {
		c.WithField("err", err).Warn("listing refresh failed")
	}
	return txHash, nil
}

func (uc *marketUseCase) executeAction(c bCtx.Ctx, action seaport.Action) (*types.Transaction, error) {
	tx, err := action.Execute(c)
	if err != nil {
		c.WithFields(log.Fields{
			"action": action.Description,
			"err":    err,
		}).Error("fulfillment action failed")
		return nil, err
	}
	return tx, nil
}

// renderItem maps one stored row onto a display item. Field names are probed
// over their known aliases.
func renderItem(row probe.Object) (market.Item, bool) {
	tokenId, ok := row.String("tokenId", "tokenid", "token_id", "token")
	if !ok {
		return market.Item{}, false
	}

	descriptor := descriptorOf(row)

	// Stored prices are already display amounts; only descriptor amounts
	// are raw chain units.
	price := market.NotListed
	if raw, ok := row.String("price", "list_price"); ok {
		price = raw
	} else if descriptor != nil {
		if d := ParseOrderPrice(descriptor); d != nil {
			price = d.String()
		}
	}

	image, ok := row.String("image")
	if !ok {
		image, ok = row.PathString("metadata", "image")
	}
	if !ok {
		image, _ = row.String("image_url")
	}

	seller, _ := row.String("seller", "sellerAddress", "maker")
	orderHash, _ := row.String("orderHash", "order_hash", "hash")
	onChain, _ := row["onChain"].(bool)

	return market.Item{
		TokenId:   tokenId,
		Price:     price,
		Image:     image,
		Seller:    domain.Address(seller),
		Order:     descriptor,
		OrderHash: domain.OrderHash(orderHash),
		OnChain:   onChain,
	}, true
}

// descriptorOf extracts the stored order descriptor. Rows carry it either as
// a nested object or as pre-serialized JSON text.
func descriptorOf(row probe.Object) json.RawMessage {
	v, ok := row["seaportOrder"]
	if !ok || v == nil {
		return nil
	}
	if obj, ok := probe.FromValue(v); ok {
		raw, err := obj.Raw()
		if err != nil {
			return nil
		}
		return raw
	}
	if s, ok := v.(string); ok && json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	return nil
}

// ParseOrderPrice pulls the first consideration amount out of an order
// descriptor and converts it to the display unit. Any failure yields nil.
func ParseOrderPrice(descriptor json.RawMessage) *decimal.Decimal {
	obj, err := probe.Decode(descriptor)
	if err != nil {
		return nil
	}
	params, ok := obj.Object("parameters")
	if !ok {
		params = obj
	}
	consideration, ok := params.Objects("consideration")
	if !ok || len(consideration) == 0 {
		return nil
	}
	amount, ok := consideration[0].String("endAmount", "startAmount", "amount")
	if !ok {
		return nil
	}
	return displayAmount(amount)
}

func displayAmount(wei string) *decimal.Decimal {
	d, err := decimal.NewFromString(wei)
	if err != nil {
		return nil
	}
	display := d.Shift(-weiDecimals)
	return &display
}
