package usecase

import (
	"encoding/json"
	"time"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/base/probe"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/importer"
	"github.com/bearhustle/goapi/domain/listing"
	"github.com/bearhustle/goapi/service/opensea"
	"github.com/bearhustle/goapi/service/orderstore"
)

const (
	defaultPageLimit = 50
	defaultItemDelay = 200 * time.Millisecond
	defaultPageDelay = 500 * time.Millisecond

	// Makers occasionally arrive without an address field upstream.
	unknownSeller = domain.Address("unknown")
)

type ImporterUseCaseCfg struct {
	OpenSea    opensea.Client
	OrderStore orderstore.Client

	Chain               string
	AssetContract       domain.Address
	MarketplaceContract domain.Address

	PageLimit int
	// Delays throttle upstream traffic. Zero picks the defaults.
	ItemDelay time.Duration
	PageDelay time.Duration
}

type importerUseCase struct {
	openSea    opensea.Client
	orderStore orderstore.Client

	chain               string
	assetContract       domain.Address
	marketplaceContract domain.Address

	pageLimit int
	itemDelay time.Duration
	pageDelay time.Duration
}

func NewImporterUseCase(cfg *ImporterUseCaseCfg) importer.UseCase {
	uc := &importerUseCase{
		openSea:             cfg.OpenSea,
		orderStore:          cfg.OrderStore,
		chain:               cfg.Chain,
		assetContract:       cfg.AssetContract,
		marketplaceContract: cfg.MarketplaceContract,
		pageLimit:           cfg.PageLimit,
		itemDelay:           cfg.ItemDelay,
		pageDelay:           cfg.PageDelay,
	}
	if uc.pageLimit <= 0 {
		uc.pageLimit = defaultPageLimit
	}
	if uc.itemDelay <= 0 {
		uc.itemDelay = defaultItemDelay
	}
	if uc.pageDelay <= 0 {
		uc.pageDelay = defaultPageDelay
	}
	return uc
}

func (im *importerUseCase) Run(c bCtx.Ctx) (*importer.Report, error) {
	report := &importer.Report{}
	cursor := ""
	for page := 1; ; page++ {
		opts := []opensea.GetOrdersOptionsFunc{
			opensea.WithAssetContract(im.assetContract),
			opensea.WithLimit(im.pageLimit),
		}
		if cursor != "" {
			opts = append(opts, opensea.WithCursor(cursor))
		}
		resp, err := im.openSea.GetOrders(c, im.chain, opts...)
		if err != nil {
			c.WithFields(log.Fields{
				"page": page,
				"err":  err,
			}).Error("opensea.GetOrders failed")
			return report, domain.ErrUpstream
		}
		if len(resp.Orders) == 0 {
			break
		}

		for _, order := range resp.Orders {
			report.Scanned++
			payload, ok := im.normalize(c, order)
			if !ok {
				continue
			}
			_, err := im.orderStore.CreateOrder(c, payload)
			// every post attempt is throttled, rejected ones included
			time.Sleep(im.itemDelay)
			if err != nil {
				c.WithFields(log.Fields{
					"tokenId": payload.TokenId.Val,
					"err":     err,
				}).Warn("orderstore.CreateOrder failed")
				continue
			}
			report.Sent++
		}

		cursor = resp.NextCursor()
		if cursor == "" {
			break
		}
		time.Sleep(im.pageDelay)
	}

	c.WithFields(log.Fields{
		"scanned": report.Scanned,
		"sent":    report.Sent,
	}).Info("sync run finished")
	return report, nil
}

// normalize maps one upstream order onto a create payload. Orders with no
// resolvable asset or token id are skipped.
func (im *importerUseCase) normalize(c bCtx.Ctx, order probe.Object) (*listing.CreateListingPayload, bool) {
	asset, ok := im.assetOf(order)
	if !ok {
		c.Debug("order without asset, skipping")
		return nil, false
	}
	tokenId, ok := asset.String("identifier", "token_id", "tokenId", "id")
	if !ok {
		c.Debug("asset without token id, skipping")
		return nil, false
	}

	image, ok := asset.String("image_url", "image", "thumbnail")
	if !ok {
		image, _ = asset.PathString("metadata", "image")
	}

	seller, ok := order.PathString("maker", "address")
	if !ok {
		seller, ok = order.String("maker")
	}
	if !ok {
		seller = string(unknownSeller)
	}

	orderHash, ok := order.String("order_hash", "hash")
	if !ok {
		orderHash = tokenId + "-" + seller
	}

	price, ok := order.PathString("price", "current", "value")
	if !ok {
		price, ok = order.String("current_price")
	}
	if !ok {
		price = "0"
	}

	descriptor, ok := order.Object("protocol_data", "protocolData")
	if !ok {
		descriptor = order
	}
	raw, err := descriptor.Raw()
	if err != nil {
		c.WithField("err", err).Warn("descriptor serialization failed, skipping")
		return nil, false
	}

	return &listing.CreateListingPayload{
		TokenId:             listing.FlexString{Val: tokenId},
		Price:               listing.FlexString{Val: price},
		SellerAddress:       domain.Address(seller),
		SeaportOrder:        json.RawMessage(raw),
		OrderHash:           domain.OrderHash(orderHash),
		Image:               image,
		MarketplaceContract: im.marketplaceContract,
	}, true
}

func (im *importerUseCase) assetOf(order probe.Object) (probe.Object, bool) {
	if asset, ok := order.Object("criteria"); ok {
		if meta, ok := asset.Object("metadata"); ok {
			return meta, true
		}
	}
	if asset, ok := order.Object("asset"); ok {
		return asset, true
	}
	if assets, ok := order.Objects("assets"); ok && len(assets) > 0 {
		return assets[0], true
	}
	return nil, false
}
