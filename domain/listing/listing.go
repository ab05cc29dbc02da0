package listing

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/ptr"
	"github.com/bearhustle/goapi/domain"
)

// Listing is one write-once sell-offer snapshot. Rows are never updated or
// deleted; staleness is the consuming client's concern.
type Listing struct {
	Id                  string           `json:"id"`
	TokenId             domain.TokenId   `json:"tokenId"`
	Price               string           `json:"price"`
	NftContract         domain.Address   `json:"nftContract"`
	MarketplaceContract domain.Address   `json:"marketplaceContract"`
	Seller              domain.Address   `json:"seller"`
	SeaportOrder        json.RawMessage  `json:"seaportOrder,omitempty"`
	OrderHash           domain.OrderHash `json:"orderHash,omitempty"`
	OnChain             bool             `json:"onChain"`
	Image               string           `json:"image,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// FlexString accepts a JSON string or number. Numeric token ids and prices
// arrive in both forms depending on the producer.
type FlexString struct {
	Val string
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &f.Val)
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	f.Val = n.String()
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Val)
}

// CreateListingPayload is the POST /order request body.
type CreateListingPayload struct {
	TokenId             FlexString       `json:"tokenId"`
	Price               FlexString       `json:"price"`
	SellerAddress       domain.Address   `json:"sellerAddress"`
	SeaportOrder        json.RawMessage  `json:"seaportOrder"`
	OrderHash           domain.OrderHash `json:"orderHash"`
	Image               string           `json:"image"`
	MarketplaceContract domain.Address   `json:"marketplaceContract"`
}

// SerializedOrder returns the descriptor as stored text: serialized JSON for
// structured payloads, the inner text for payloads given as a JSON string.
func (p CreateListingPayload) SerializedOrder() string {
	raw := bytes.TrimSpace(p.SeaportOrder)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// CreatedSummary echoes the created row back to the caller.
type CreatedSummary struct {
	Id        string         `json:"id"`
	TokenId   string         `json:"tokenId"`
	Price     string         `json:"price"`
	Seller    domain.Address `json:"seller"`
	CreatedAt time.Time      `json:"createdAt"`
}

type FindAllOptions struct {
	Seller *domain.Address
	Offset *int32
	Limit  *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		lowered := seller.ToLower()
		options.Seller = &lowered
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = ptr.Int32(offset)
		options.Limit = ptr.Int32(limit)
		return nil
	}
}

type Repo interface {
	Insert(ctx.Ctx, *Listing) error
	// FindAll returns rows ordered by createdAt descending.
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Listing, error)
}

type UseCase interface {
	Create(c ctx.Ctx, payload *CreateListingPayload) (*CreatedSummary, error)
	// Search clamps page to >=1 and limit to [1,100] and resolves the page.
	Search(c ctx.Ctx, page int, limit int, seller *domain.Address) ([]Listing, error)
}
