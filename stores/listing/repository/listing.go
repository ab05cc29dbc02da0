package repository

import (
	"encoding/json"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/domain/listing"
)

const tableOrders = "orders"

type listingRepoImpl struct {
	pool *pgxpool.Pool
}

func NewListingRepo(pool *pgxpool.Pool) listing.Repo {
	return &listingRepoImpl{pool: pool}
}

func (im *listingRepoImpl) Insert(ctx ctx.Ctx, l *listing.Listing) error {
	const stmt = `
		INSERT INTO orders (
			id, token_id, price, nft_contract, marketplace_contract,
			seller, seaport_order, order_hash, on_chain, image, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var orderHash *string
	if l.OrderHash != "" {
		s := string(l.OrderHash)
		orderHash = &s
	}
	var image *string
	if l.Image != "" {
		image = &l.Image
	}

	_, err := im.pool.Exec(ctx, stmt,
		l.Id, l.TokenId.String(), l.Price,
		l.NftContract.ToLowerStr(), l.MarketplaceContract.ToLowerStr(),
		l.Seller.ToLowerStr(), string(l.SeaportOrder),
		orderHash, l.OnChain, image, l.CreatedAt,
	)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  l.Id,
		}).Error("insert order failed")
		return domain.ErrStorage
	}
	return nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	stmt := `
		SELECT id, token_id, price, nft_contract, marketplace_contract,
			seller, seaport_order, order_hash, on_chain, image, created_at
		FROM orders`
	args := []interface{}{}

	if options.Seller != nil {
		args = append(args, options.Seller.ToLowerStr())
		stmt += ` WHERE seller = $` + strconv.Itoa(len(args))
	}

	stmt += ` ORDER BY created_at DESC`

	if options.Limit != nil {
		args = append(args, *options.Limit)
		stmt += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if options.Offset != nil {
		args = append(args, *options.Offset)
		stmt += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := im.pool.Query(ctx, stmt, args...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"stmt": stmt,
		}).Error("query orders failed")
		return nil, domain.ErrStorage
	}
	defer rows.Close()

	res := []listing.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			ctx.WithField("err", err).Error("scan order failed")
			return nil, domain.ErrStorage
		}
		res = append(res, l)
	}
	if err := rows.Err(); err != nil {
		ctx.WithField("err", err).Error("iterate orders failed")
		return nil, domain.ErrStorage
	}

	return res, nil
}

func scanListing(row pgx.Row) (listing.Listing, error) {
	var (
		l            listing.Listing
		tokenId      string
		seaportOrder string
		orderHash    *string
		image        *string
	)
	err := row.Scan(
		&l.Id, &tokenId, &l.Price, &l.NftContract, &l.MarketplaceContract,
		&l.Seller, &seaportOrder, &orderHash, &l.OnChain, &image, &l.CreatedAt,
	)
	if err != nil {
		return listing.Listing{}, err
	}

	l.TokenId = domain.TokenId(tokenId)
	if orderHash != nil {
		l.OrderHash = domain.OrderHash(*orderHash)
	}
	if image != nil {
		l.Image = *image
	}
	// stored descriptors come back as structured JSON when they parse; the
	// raw text is passed through otherwise so one bad row cannot hide a page
	if json.Valid([]byte(seaportOrder)) {
		l.SeaportOrder = json.RawMessage(seaportOrder)
	} else {
		quoted, _ := json.Marshal(seaportOrder)
		l.SeaportOrder = quoted
	}
	return l, nil
}
