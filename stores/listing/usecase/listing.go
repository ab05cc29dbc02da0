package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/listing"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
	// contract addresses stamped onto rows that do not carry their own
	NftContract         domain.Address
	MarketplaceContract domain.Address
}

type impl struct {
	repo                listing.Repo
	nftContract         domain.Address
	marketplaceContract domain.Address
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:                cfg.ListingRepo,
		nftContract:         cfg.NftContract.ToLower(),
		marketplaceContract: cfg.MarketplaceContract.ToLower(),
	}
}

func (im *impl) Create(ctx bCtx.Ctx, payload *listing.CreateListingPayload) (*listing.CreatedSummary, error) {
	if err := validate(payload); err != nil {
		return nil, err
	}

	marketplace := payload.MarketplaceContract
	if marketplace.IsEmpty() {
		marketplace = im.marketplaceContract
	}

	now := time.Now().UTC()
	l := &listing.Listing{
		Id:                  uuid.NewString(),
		TokenId:             domain.TokenId(payload.TokenId.Val),
		Price:               payload.Price.Val,
		NftContract:         im.nftContract,
		MarketplaceContract: marketplace.ToLower(),
		Seller:              payload.SellerAddress.ToLower(),
		SeaportOrder:        json.RawMessage(payload.SerializedOrder()),
		OrderHash:           payload.OrderHash,
		OnChain:             payload.OrderHash != "",
		Image:               payload.Image,
		CreatedAt:           now,
	}

	if err := im.repo.Insert(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": l.TokenId,
			"seller":  l.Seller,
		}).Error("repo.Insert failed")
		return nil, err
	}

	return &listing.CreatedSummary{
		Id:        l.Id,
		TokenId:   payload.TokenId.Val,
		Price:     payload.Price.Val,
		Seller:    payload.SellerAddress,
		CreatedAt: now,
	}, nil
}

// validate enforces the create contract: tokenId, sellerAddress and the order
// descriptor are required; price is required unless it is exactly zero.
func validate(payload *listing.CreateListingPayload) error {
	if payload.TokenId.Val == "" {
		return domain.ErrMissingParameters
	}
	// a price of exactly 0 arrives as "0" and is accepted; only an absent or
	// empty price is a missing parameter
	if payload.Price.Val == "" {
		return domain.ErrMissingParameters
	}
	if payload.SellerAddress.IsEmpty() {
		return domain.ErrMissingParameters
	}
	if payload.SerializedOrder() == "" {
		return domain.ErrMissingParameters
	}
	return nil
}

func (im *impl) Search(ctx bCtx.Ctx, page int, limit int, seller *domain.Address) ([]listing.Listing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := int32((page - 1) * limit)

	opts := []listing.FindAllOptionsFunc{listing.WithPagination(offset, int32(limit))}
	if seller != nil && !seller.IsEmpty() {
		opts = append(opts, listing.WithSeller(*seller))
	}

	res, err := im.repo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"page": page,
		}).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
